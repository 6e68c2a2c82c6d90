package dynjson

import (
	"bytes"
	"encoding/json"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
)

// Decode parses JSON bytes into a dynamic.Dynamic[any] using the standard
// library decoder, preserving number precision via json.Number so that
// round-tripping a large int64 through the engine never loses bits.
func Decode(data []byte) (dynamic.Dynamic[any], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return dynamic.Dynamic[any]{}, err
	}
	return dynamic.New[any](Ops{}, v), nil
}

// Encode serializes d back to JSON using the standard library encoder.
func Encode(d dynamic.Dynamic[any]) ([]byte, error) {
	return json.Marshal(d.Value)
}
