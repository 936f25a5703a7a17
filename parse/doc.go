// Package parse provides vcfg parsing support.
//
// Parsing is a single recursive-descent pass over an in-memory
// buffer. The default mode is best-effort and non-validating:
// malformed fragments are skipped, their bytes consumed, and the
// overall parse still succeeds; parsing stops quietly at the first
// byte no recognizer accepts. The Strict option turns those
// conditions into positioned errors.
package parse
