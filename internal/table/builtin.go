package table

// Table names used by the built-in tables and by YAML overrides.
const (
	InstanceName   = "instance"
	DeviceName     = "device"
	ExtensionsName = "extensions"
)

// Instance returns the instance-level entry points.
func Instance() Table {
	return Table{Name: InstanceName, Entries: []Entry{
		Fn("vkDestroyInstance"),
		Fn("vkGetDeviceProcAddr"),
		Fn("vkCreateDevice"),
		Fn("vkDestroySurfaceKHR"),
		Blank(),
		Fn("vkCreateDebugReportCallbackEXT"),
		Fn("vkDestroyDebugReportCallbackEXT"),
		Blank(),
		Fn("vkEnumeratePhysicalDevices"),
		Fn("vkGetPhysicalDeviceProperties"),
		Fn("vkGetPhysicalDeviceProperties2"),
		Fn("vkGetPhysicalDeviceFeatures2"),
		Fn("vkGetPhysicalDeviceMemoryProperties"),
		Fn("vkGetPhysicalDeviceQueueFamilyProperties"),
		Fn("vkGetPhysicalDeviceSurfaceCapabilitiesKHR"),
		Fn("vkGetPhysicalDeviceSurfaceFormatsKHR"),
		Fn("vkGetPhysicalDeviceSurfacePresentModesKHR"),
		Fn("vkGetPhysicalDeviceSurfaceSupportKHR"),
		Fn("vkGetPhysicalDeviceFormatProperties"),
		Fn("vkEnumerateDeviceExtensionProperties"),
		Fn("vkGetPhysicalDeviceImageFormatProperties2"),
		Blank(),
		Fn("vkCreateDisplayPlaneSurfaceKHR", "VK_USE_PLATFORM_DISPLAY_KHR"),
		Fn("vkGetDisplayPlaneCapabilitiesKHR", "VK_USE_PLATFORM_DISPLAY_KHR"),
		Fn("vkGetPhysicalDeviceDisplayPropertiesKHR", "VK_USE_PLATFORM_DISPLAY_KHR"),
		Fn("vkGetPhysicalDeviceDisplayPlanePropertiesKHR", "VK_USE_PLATFORM_DISPLAY_KHR"),
		Fn("vkGetDisplayModePropertiesKHR", "VK_USE_PLATFORM_DISPLAY_KHR"),
		Fn("vkReleaseDisplayEXT", "VK_USE_PLATFORM_DISPLAY_KHR"),
		Blank(),
		Fn("vkCreateXcbSurfaceKHR", "VK_USE_PLATFORM_XCB_KHR"),
		Blank(),
		Fn("vkCreateWaylandSurfaceKHR", "VK_USE_PLATFORM_WAYLAND_KHR"),
		Blank(),
		Fn("vkAcquireDrmDisplayEXT", "VK_USE_PLATFORM_WAYLAND_KHR", "VK_EXT_acquire_drm_display"),
		Fn("vkGetDrmDisplayEXT", "VK_USE_PLATFORM_WAYLAND_KHR", "VK_EXT_acquire_drm_display"),
		Blank(),
		Fn("vkGetRandROutputDisplayEXT", "VK_USE_PLATFORM_XLIB_XRANDR_EXT"),
		Fn("vkAcquireXlibDisplayEXT", "VK_USE_PLATFORM_XLIB_XRANDR_EXT"),
		Blank(),
		Fn("vkCreateAndroidSurfaceKHR", "VK_USE_PLATFORM_ANDROID_KHR"),
		Blank(),
		Fn("vkCreateWin32SurfaceKHR", "VK_USE_PLATFORM_WIN32_KHR"),
	}}
}

// Device returns the device-level entry points.
func Device() Table {
	return Table{Name: DeviceName, Entries: []Entry{
		Fn("vkDestroyDevice"),
		Fn("vkDeviceWaitIdle"),
		Fn("vkAllocateMemory"),
		Fn("vkFreeMemory"),
		Fn("vkMapMemory"),
		Fn("vkUnmapMemory"),
		Blank(),
		Fn("vkCreateBuffer"),
		Fn("vkDestroyBuffer"),
		Fn("vkBindBufferMemory"),
		Blank(),
		Fn("vkCreateImage"),
		Fn("vkDestroyImage"),
		Fn("vkBindImageMemory"),
		Blank(),
		Fn("vkGetBufferMemoryRequirements"),
		Fn("vkFlushMappedMemoryRanges"),
		Fn("vkGetImageMemoryRequirements"),
		Fn("vkGetImageMemoryRequirements2KHR"),
		Fn("vkGetImageSubresourceLayout"),
		Blank(),
		Fn("vkCreateImageView"),
		Fn("vkDestroyImageView"),
		Blank(),
		Fn("vkCreateSampler"),
		Fn("vkDestroySampler"),
		Blank(),
		Fn("vkCreateShaderModule"),
		Fn("vkDestroyShaderModule"),
		Blank(),
		Fn("vkCreateCommandPool"),
		Fn("vkDestroyCommandPool"),
		Blank(),
		Fn("vkAllocateCommandBuffers"),
		Fn("vkBeginCommandBuffer"),
		Fn("vkCmdPipelineBarrier"),
		Fn("vkCmdBeginRenderPass"),
		Fn("vkCmdSetScissor"),
		Fn("vkCmdSetViewport"),
		Fn("vkCmdClearColorImage"),
		Fn("vkCmdEndRenderPass"),
		Fn("vkCmdBindDescriptorSets"),
		Fn("vkCmdBindPipeline"),
		Fn("vkCmdBindVertexBuffers"),
		Fn("vkCmdBindIndexBuffer"),
		Fn("vkCmdDraw"),
		Fn("vkCmdDrawIndexed"),
		Fn("vkCmdDispatch"),
		Fn("vkCmdCopyBuffer"),
		Fn("vkCmdCopyBufferToImage"),
		Fn("vkCmdCopyImage"),
		Fn("vkCmdCopyImageToBuffer"),
		Fn("vkEndCommandBuffer"),
		Fn("vkFreeCommandBuffers"),
		Blank(),
		Fn("vkCreateRenderPass"),
		Fn("vkDestroyRenderPass"),
		Blank(),
		Fn("vkCreateFramebuffer"),
		Fn("vkDestroyFramebuffer"),
		Blank(),
		Fn("vkCreatePipelineCache"),
		Fn("vkDestroyPipelineCache"),
		Blank(),
		Fn("vkResetDescriptorPool"),
		Fn("vkCreateDescriptorPool"),
		Fn("vkDestroyDescriptorPool"),
		Blank(),
		Fn("vkAllocateDescriptorSets"),
		Fn("vkFreeDescriptorSets"),
		Blank(),
		Fn("vkCreateComputePipelines"),
		Fn("vkCreateGraphicsPipelines"),
		Fn("vkDestroyPipeline"),
		Blank(),
		Fn("vkCreatePipelineLayout"),
		Fn("vkDestroyPipelineLayout"),
		Blank(),
		Fn("vkCreateDescriptorSetLayout"),
		Fn("vkUpdateDescriptorSets"),
		Fn("vkDestroyDescriptorSetLayout"),
		Blank(),
		Fn("vkGetDeviceQueue"),
		Fn("vkQueueSubmit"),
		Fn("vkQueueWaitIdle"),
		Blank(),
		Fn("vkCreateSemaphore"),
		Fn("vkSignalSemaphoreKHR", "VK_KHR_timeline_semaphore"),
		Fn("vkDestroySemaphore"),
		Blank(),
		Fn("vkCreateFence"),
		Fn("vkWaitForFences"),
		Fn("vkGetFenceStatus"),
		Fn("vkDestroyFence"),
		Fn("vkResetFences"),
		Blank(),
		Fn("vkCreateSwapchainKHR"),
		Fn("vkDestroySwapchainKHR"),
		Fn("vkGetSwapchainImagesKHR"),
		Fn("vkAcquireNextImageKHR"),
		Fn("vkQueuePresentKHR"),
		Blank(),
		Fn("vkGetMemoryWin32HandleKHR", "VK_USE_PLATFORM_WIN32_KHR"),
		Fn("vkImportSemaphoreWin32HandleKHR", "VK_USE_PLATFORM_WIN32_KHR"),
		Fn("vkImportFenceWin32HandleKHR", "VK_USE_PLATFORM_WIN32_KHR"),
		Fn("vkGetMemoryFdKHR", "!defined(VK_USE_PLATFORM_WIN32_KHR)"),
		Blank(),
		Fn("vkImportSemaphoreFdKHR", "!defined(VK_USE_PLATFORM_WIN32_KHR)"),
		Fn("vkGetSemaphoreFdKHR", "!defined(VK_USE_PLATFORM_WIN32_KHR)"),
		Blank(),
		Fn("vkImportFenceFdKHR", "!defined(VK_USE_PLATFORM_WIN32_KHR)"),
		Fn("vkGetFenceFdKHR", "!defined(VK_USE_PLATFORM_WIN32_KHR)"),
		Fn("vkGetMemoryAndroidHardwareBufferANDROID", "VK_USE_PLATFORM_ANDROID_KHR"),
		Fn("vkGetAndroidHardwareBufferPropertiesANDROID", "VK_USE_PLATFORM_ANDROID_KHR"),
		Blank(),
		Fn("vkGetPastPresentationTimingGOOGLE"),
	}}
}

// Extensions returns the device extensions whose availability is tracked
// with a flag member.
func Extensions() Table {
	return Table{Name: ExtensionsName, Entries: []Entry{
		Fn("GOOGLE_display_timing"),
		Fn("EXT_global_priority"),
		Fn("EXT_robustness2"),
	}}
}

// Builtin returns the compiled-in table with the given name.
func Builtin(name string) (Table, bool) {
	switch name {
	case InstanceName:
		return Instance(), true
	case DeviceName:
		return Device(), true
	case ExtensionsName:
		return Extensions(), true
	default:
		return Table{}, false
	}
}
