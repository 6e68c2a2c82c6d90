// Package result provides the DataResult monadic error channel used
// throughout the datafixers engine, along with the small set of
// general-purpose value types (Either, Pair, Unit) that the rest of the
// engine builds on.
//
// DataResult[A] carries either a successful value or an error paired with
// an optional best-effort partial value, so that a failing step never has
// to choose between "stop everything" and "silently drop data". See
// DataResult for the composition laws.
package result
