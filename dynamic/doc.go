// Package dynamic provides the backend-agnostic value abstraction the
// engine migrates: DynamicOps[T] (the per-format adapter, spec §4.2) and
// Dynamic[T] (an ops+value pair with a uniform navigation/editing API,
// spec §4.3).
//
// Concrete backends live in the dynjson, dynyaml, dyntoml, and dynnbt
// subpackages; this package only defines the contract and the
// format-agnostic operations built on top of it.
package dynamic
