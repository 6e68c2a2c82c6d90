// Package dferrors provides structured error types for the datafixers
// engine's failure taxonomy (spec §7).
//
// Each error category has its own struct type implementing Error, Unwrap,
// and Is, so callers can use errors.As to recover field-level detail
// instead of parsing the message string, and errors.Is to quickly check
// against the package-level sentinels.
//
// # Usage with errors.Is and errors.As
//
//	_, err := dynamic.SplitPath("a..b")
//	var ip *dferrors.InvalidPathError
//	if errors.As(err, &ip) {
//	    // ip.Path, ip.Reason carry the rejection detail
//	}
//
// The structured types are returned as error values by dynamic.SplitPath,
// Dynamic.TrySet and Dynamic.TryMerge. The DynamicOps readers and editors
// return a result.DataResult instead, which keeps only the Error() text of
// the structured error as its message, so errors.As does not apply there.
package dferrors
