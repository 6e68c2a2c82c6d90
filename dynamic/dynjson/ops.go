package dynjson

import (
	"encoding/json"
	"fmt"

	"github.com/aether-framework/aether-datafixers-sub003/dferrors"
	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/result"
)

// Ops is the standard-library-backed dynamic.Ops[any] adapter for JSON
// documents. The zero value is ready to use.
type Ops struct{}

// New returns a JSON Ops instance.
func New() Ops { return Ops{} }

// Name implements dynamic.Ops.
func (Ops) Name() string { return "json" }

// Empty implements dynamic.Ops.
func (Ops) Empty() any { return nil }

// CreateBool implements dynamic.Ops.
func (Ops) CreateBool(b bool) any { return b }

// CreateInt implements dynamic.Ops.
func (Ops) CreateInt(i int32) any { return i }

// CreateLong implements dynamic.Ops.
func (Ops) CreateLong(i int64) any { return i }

// CreateFloat implements dynamic.Ops.
func (Ops) CreateFloat(f float32) any { return f }

// CreateDouble implements dynamic.Ops.
func (Ops) CreateDouble(f float64) any { return f }

// CreateString implements dynamic.Ops.
func (Ops) CreateString(s string) any { return s }

// CreateList implements dynamic.Ops.
func (Ops) CreateList(items []any) any {
	out := make([]any, len(items))
	copy(out, items)
	return out
}

// CreateMap implements dynamic.Ops. Entry keys are coerced to strings via
// GetString since JSON objects only support string keys.
func (o Ops) CreateMap(entries []dynamic.MapEntry[any]) any {
	m := make(map[string]any, len(entries))
	for _, e := range entries {
		k, ok := o.GetString(e.Key).Result()
		if !ok {
			continue
		}
		m[k] = e.Value
	}
	return m
}

// TypeOf implements dynamic.Ops.
func (Ops) TypeOf(v any) dynamic.Kind {
	switch v.(type) {
	case nil:
		return dynamic.KindNull
	case bool:
		return dynamic.KindBool
	case string:
		return dynamic.KindString
	case []any:
		return dynamic.KindList
	case map[string]any:
		return dynamic.KindMap
	default:
		if isNumber(v) {
			return dynamic.KindNumber
		}
		return dynamic.KindNull
	}
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	default:
		return false
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			return i, true
		}
		f, err := n.Float64()
		return int64(f), err == nil
	default:
		return 0, false
	}
}

// GetBool implements dynamic.Ops.
func (Ops) GetBool(v any) result.DataResult[bool] {
	if b, ok := v.(bool); ok {
		return result.Success(b)
	}
	return result.Error[bool]((&dferrors.TypeMismatchError{Expected: "bool", Actual: fmt.Sprintf("%T", v)}).Error())
}

// GetInt implements dynamic.Ops.
func (Ops) GetInt(v any) result.DataResult[int32] {
	if i, ok := toInt64(v); ok {
		return result.Success(int32(i))
	}
	return result.Error[int32]((&dferrors.TypeMismatchError{Expected: "int32", Actual: fmt.Sprintf("%T", v)}).Error())
}

// GetLong implements dynamic.Ops.
func (Ops) GetLong(v any) result.DataResult[int64] {
	if i, ok := toInt64(v); ok {
		return result.Success(i)
	}
	return result.Error[int64]((&dferrors.TypeMismatchError{Expected: "int64", Actual: fmt.Sprintf("%T", v)}).Error())
}

// GetFloat implements dynamic.Ops.
func (Ops) GetFloat(v any) result.DataResult[float32] {
	if f, ok := toFloat64(v); ok {
		return result.Success(float32(f))
	}
	return result.Error[float32]((&dferrors.TypeMismatchError{Expected: "float32", Actual: fmt.Sprintf("%T", v)}).Error())
}

// GetDouble implements dynamic.Ops.
func (Ops) GetDouble(v any) result.DataResult[float64] {
	if f, ok := toFloat64(v); ok {
		return result.Success(f)
	}
	return result.Error[float64]((&dferrors.TypeMismatchError{Expected: "float64", Actual: fmt.Sprintf("%T", v)}).Error())
}

// GetString implements dynamic.Ops.
func (Ops) GetString(v any) result.DataResult[string] {
	if s, ok := v.(string); ok {
		return result.Success(s)
	}
	return result.Error[string]((&dferrors.TypeMismatchError{Expected: "string", Actual: fmt.Sprintf("%T", v)}).Error())
}

// GetMapEntries implements dynamic.Ops.
func (o Ops) GetMapEntries(v any) result.DataResult[[]dynamic.MapEntry[any]] {
	m, ok := v.(map[string]any)
	if !ok {
		return result.Error[[]dynamic.MapEntry[any]]((&dferrors.TypeMismatchError{Expected: "map", Actual: fmt.Sprintf("%T", v)}).Error())
	}
	entries := make([]dynamic.MapEntry[any], 0, len(m))
	for k, val := range m {
		entries = append(entries, dynamic.MapEntry[any]{Key: k, Value: val})
	}
	return result.Success(entries)
}

// GetListStream implements dynamic.Ops.
func (Ops) GetListStream(v any) result.DataResult[[]any] {
	l, ok := v.([]any)
	if !ok {
		return result.Error[[]any]((&dferrors.TypeMismatchError{Expected: "list", Actual: fmt.Sprintf("%T", v)}).Error())
	}
	out := make([]any, len(l))
	copy(out, l)
	return result.Success(out)
}

// GetMapValue implements dynamic.Ops.
func (o Ops) GetMapValue(v any, key any) result.DataResult[any] {
	m, ok := v.(map[string]any)
	if !ok {
		return result.Error[any]((&dferrors.TypeMismatchError{Expected: "map", Actual: fmt.Sprintf("%T", v)}).Error())
	}
	k, ok := o.GetString(key).Result()
	if !ok {
		return result.Error[any]("map key is not a string")
	}
	val, present := m[k]
	if !present {
		return result.Error[any]((&dferrors.FieldMissingError{Field: k}).Error())
	}
	return result.Success(val)
}

// IsMap implements dynamic.Ops.
func (Ops) IsMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// IsList implements dynamic.Ops.
func (Ops) IsList(v any) bool {
	_, ok := v.([]any)
	return ok
}

// Set implements dynamic.Ops. v must be a map.
func (o Ops) Set(v any, key any, value any) result.DataResult[any] {
	m, ok := v.(map[string]any)
	if !ok {
		return result.Error[any]((&dferrors.TypeMismatchError{Expected: "map", Actual: fmt.Sprintf("%T", v)}).Error())
	}
	k, ok := o.GetString(key).Result()
	if !ok {
		return result.Error[any]("map key is not a string")
	}
	nm := cloneMap(m)
	nm[k] = value
	return result.Success[any](nm)
}

// Remove implements dynamic.Ops. v must be a map.
func (o Ops) Remove(v any, key any) result.DataResult[any] {
	m, ok := v.(map[string]any)
	if !ok {
		return result.Error[any]((&dferrors.TypeMismatchError{Expected: "map", Actual: fmt.Sprintf("%T", v)}).Error())
	}
	k, ok := o.GetString(key).Result()
	if !ok {
		return result.Error[any]("map key is not a string")
	}
	nm := cloneMap(m)
	delete(nm, k)
	return result.Success[any](nm)
}

// MergeToMap implements dynamic.Ops: shallow right-biased merge.
func (Ops) MergeToMap(left any, right any) result.DataResult[any] {
	lm, lok := left.(map[string]any)
	rm, rok := right.(map[string]any)
	if !lok || !rok {
		side := "left"
		switch {
		case !lok && !rok:
			side = "both"
		case lok:
			side = "right"
		}
		return result.Error[any]((&dferrors.MergeConflictError{Side: side}).Error())
	}
	out := cloneMap(lm)
	for k, v := range rm {
		out[k] = v
	}
	return result.Success[any](out)
}

// MergeToList implements dynamic.Ops: concatenation.
func (Ops) MergeToList(left any, right any) result.DataResult[any] {
	ll, lok := left.([]any)
	rl, rok := right.([]any)
	if !lok || !rok {
		return result.Error[any]("merge_to_list: both operands must be lists")
	}
	out := make([]any, 0, len(ll)+len(rl))
	out = append(out, ll...)
	out = append(out, rl...)
	return result.Success[any](out)
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var _ dynamic.Ops[any] = Ops{}
