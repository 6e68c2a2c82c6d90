package dyntoml

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
)

// Decode parses TOML bytes into a dynamic.Dynamic[any]. The document root
// is always a table, so the resulting value is always a map[string]any.
func Decode(data []byte) (dynamic.Dynamic[any], error) {
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return dynamic.Dynamic[any]{}, err
	}
	return dynamic.New[any](Ops{}, any(v)), nil
}

// Encode serializes d back to TOML. d.Value must be a map[string]any,
// since TOML has no concept of a bare scalar or list document root.
func Encode(d dynamic.Dynamic[any]) ([]byte, error) {
	m, ok := d.Value.(map[string]any)
	if !ok {
		m = map[string]any{}
	}
	return toml.Marshal(m)
}
