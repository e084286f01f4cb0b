// Package table holds the Entry Tables that drive generation: the ordered
// lists of Vulkan entry points, each optionally gated by preprocessor
// conditions, plus blank markers that only insert an empty line.
//
// The built-in tables are compiled in and returned as fresh copies, so no
// caller can alter what another caller sees. A YAML file can replace any
// of them by name:
//
//	version: "1"
//	tables:
//	  instance:
//	    - [vkDestroyInstance]
//	    - []
//	    - [vkCreateXcbSurfaceKHR, VK_USE_PLATFORM_XCB_KHR]
//	  device:
//	    - [vkAcquireDrmDisplayEXT, VK_USE_PLATFORM_WAYLAND_KHR, VK_EXT_acquire_drm_display]
//
// Each entry is a flow sequence: the function name first, then its guard
// tokens. An empty sequence is a blank marker.
package table
