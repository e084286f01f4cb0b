// Package gen turns an Entry Table into the lines of one generated region.
//
// The block generator walks the table once, opening an #if block when the
// effective guard of a named entry changes and closing it when the guard
// changes again or the table ends. Blank markers only emit an empty line;
// they never open or close a block, so two runs with the same guard that
// are separated by blank markers share one block.
//
// What each entry turns into is decided by a Formatter. The Emitter enum
// names the formatters used for vk_helpers.{h,c}:
//   - struct member declarations (PFN_x x;)
//   - instance-level loader calls (GET_INS_PROC)
//   - device-level loader calls (GET_DEV_PROC)
//   - extension availability flags (bool has_x;)
package gen
