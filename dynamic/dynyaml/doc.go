// Package dynyaml implements dynamic.Ops[any] over YAML documents decoded
// by go.yaml.in/yaml/v4 into plain Go values (map[string]any, []any,
// string, bool, int, float64, nil) — the same generic shape dynjson uses,
// so the engine never special-cases YAML's richer node model. Scalar
// style (quoted vs. bare, block vs. flow) is not preserved across a
// round trip; this is a documented limitation, not a spec invariant.
package dynyaml
