// Package dyntoml implements dynamic.Ops[any] over TOML documents decoded
// by github.com/pelletier/go-toml/v2 into the same generic shape dynjson
// and dynyaml use (map[string]any, []any, string, bool, int64, float64).
// It exists primarily to demonstrate that the engine's core is genuinely
// format-agnostic beyond JSON/YAML (spec §1, §6).
package dyntoml
