// Package diagnostic provides structured errors and warnings found while
// validating Entry Tables before any file is touched.
//
// Key capabilities:
//   - Empty or malformed guard tokens
//   - Duplicate entry names within a table
//   - Cosmetic blank-marker quirks (leading, trailing, doubled)
package diagnostic
