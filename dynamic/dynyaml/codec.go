package dynyaml

import (
	"go.yaml.in/yaml/v4"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
)

// Decode parses YAML bytes into a dynamic.Dynamic[any].
func Decode(data []byte) (dynamic.Dynamic[any], error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return dynamic.Dynamic[any]{}, err
	}
	return dynamic.New[any](Ops{}, v), nil
}

// Encode serializes d back to YAML.
func Encode(d dynamic.Dynamic[any]) ([]byte, error) {
	return yaml.Marshal(d.Value)
}
