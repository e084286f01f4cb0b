// Package driver regenerates the sentinel-delimited regions of target
// files. Jobs naming the same file are applied to one in-memory copy, so
// every file is read once and written at most once; the write goes to a
// temporary file that is renamed over the target, so a failed run never
// leaves a half-written file behind.
package driver
