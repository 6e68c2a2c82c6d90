package dynjson

import (
	segjson "github.com/segmentio/encoding/json"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
)

// FastOps is dynamic.Ops[any], identical to Ops except that its Decode/
// Encode round trip goes through github.com/segmentio/encoding/json
// instead of the standard library. rules.ApplyJSON (spec §4.5.4) uses this
// adapter to fuse a scripted batch of edits into a single backend
// encode/decode cycle without paying the reflection cost of the stdlib
// encoder twice.
type FastOps struct {
	Ops
}

// NewFast returns a FastOps instance.
func NewFast() FastOps { return FastOps{} }

// Name implements dynamic.Ops.
func (FastOps) Name() string { return "json-fast" }

// DecodeFast parses JSON bytes using segmentio/encoding/json.
func DecodeFast(data []byte) (dynamic.Dynamic[any], error) {
	var v any
	if err := segjson.Unmarshal(data, &v); err != nil {
		return dynamic.Dynamic[any]{}, err
	}
	return dynamic.New[any](FastOps{}, v), nil
}

// EncodeFast serializes d using segmentio/encoding/json.
func EncodeFast(d dynamic.Dynamic[any]) ([]byte, error) {
	return segjson.Marshal(d.Value)
}

var _ dynamic.Ops[any] = FastOps{}
