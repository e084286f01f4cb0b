// Package patch replaces the generated region of a hand-maintained text
// file. A region is delimited by a begin and an end sentinel line; the
// sentinels and everything outside them are passed through untouched.
package patch
