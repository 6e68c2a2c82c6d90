package dynnbt

import (
	"fmt"

	"github.com/aether-framework/aether-datafixers-sub003/dferrors"
	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/result"
)

// Ops is the in-memory NBT-flavored dynamic.Ops[Tag] adapter. Unlike
// dynjson/dynyaml/dyntoml it is instantiated over a concrete Tag type
// rather than any, since NBT's whole point is to keep byte/short/int/long
// and float/double distinct instead of collapsing them into one numeric
// kind.
type Ops struct{}

// New returns an NBT Ops instance.
func New() Ops { return Ops{} }

// Name implements dynamic.Ops.
func (Ops) Name() string { return "nbt" }

// Empty implements dynamic.Ops.
func (Ops) Empty() Tag { return Tag{Kind: TagEnd} }

// CreateBool implements dynamic.Ops. NBT has no boolean tag; by
// convention a bool is stored as TagByte (0 or 1), same as real NBT.
func (Ops) CreateBool(b bool) Tag {
	if b {
		return byteTag(1)
	}
	return byteTag(0)
}

// CreateInt implements dynamic.Ops.
func (Ops) CreateInt(i int32) Tag { return intTag(i) }

// CreateLong implements dynamic.Ops.
func (Ops) CreateLong(i int64) Tag { return longTag(i) }

// CreateFloat implements dynamic.Ops.
func (Ops) CreateFloat(f float32) Tag { return floatTag(f) }

// CreateDouble implements dynamic.Ops.
func (Ops) CreateDouble(f float64) Tag { return doubleTag(f) }

// CreateString implements dynamic.Ops.
func (Ops) CreateString(s string) Tag { return stringTag(s) }

// CreateList implements dynamic.Ops.
func (Ops) CreateList(items []Tag) Tag { return listTag(cloneList(items)) }

// CreateMap implements dynamic.Ops. Keys must be TagString; non-string
// keys are silently dropped, matching the lenient behavior of the other
// backends' CreateMap when a key can't be coerced.
func (Ops) CreateMap(entries []dynamic.MapEntry[Tag]) Tag {
	m := make(map[string]Tag, len(entries))
	for _, e := range entries {
		if e.Key.Kind == TagString {
			m[e.Key.Str] = e.Value
		}
	}
	return compoundTag(m)
}

// TypeOf implements dynamic.Ops.
func (Ops) TypeOf(v Tag) dynamic.Kind {
	switch v.Kind {
	case TagEnd:
		return dynamic.KindNull
	case TagByte, TagShort, TagInt, TagLong, TagFloat, TagDouble:
		return dynamic.KindNumber
	case TagString:
		return dynamic.KindString
	case TagList:
		return dynamic.KindList
	case TagCompound:
		return dynamic.KindMap
	default:
		return dynamic.KindNull
	}
}

func typeMismatch(expected string, v Tag) error {
	return &dferrors.TypeMismatchError{Expected: expected, Actual: fmt.Sprintf("Tag(kind=%d)", v.Kind)}
}

func toFloat64(v Tag) (float64, bool) {
	switch v.Kind {
	case TagByte:
		return float64(v.B), true
	case TagShort:
		return float64(v.S), true
	case TagInt:
		return float64(v.I), true
	case TagLong:
		return float64(v.L), true
	case TagFloat:
		return float64(v.F), true
	case TagDouble:
		return v.D, true
	default:
		return 0, false
	}
}

func toInt64(v Tag) (int64, bool) {
	switch v.Kind {
	case TagByte:
		return int64(v.B), true
	case TagShort:
		return int64(v.S), true
	case TagInt:
		return int64(v.I), true
	case TagLong:
		return v.L, true
	case TagFloat:
		return int64(v.F), true
	case TagDouble:
		return int64(v.D), true
	default:
		return 0, false
	}
}

// GetBool implements dynamic.Ops: any nonzero integral tag is true.
func (Ops) GetBool(v Tag) result.DataResult[bool] {
	if i, ok := toInt64(v); ok {
		return result.Success(i != 0)
	}
	return result.Error[bool](typeMismatch("bool", v).Error())
}

// GetInt implements dynamic.Ops.
func (Ops) GetInt(v Tag) result.DataResult[int32] {
	if i, ok := toInt64(v); ok {
		return result.Success(int32(i))
	}
	return result.Error[int32](typeMismatch("int32", v).Error())
}

// GetLong implements dynamic.Ops.
func (Ops) GetLong(v Tag) result.DataResult[int64] {
	if i, ok := toInt64(v); ok {
		return result.Success(i)
	}
	return result.Error[int64](typeMismatch("int64", v).Error())
}

// GetFloat implements dynamic.Ops.
func (Ops) GetFloat(v Tag) result.DataResult[float32] {
	if f, ok := toFloat64(v); ok {
		return result.Success(float32(f))
	}
	return result.Error[float32](typeMismatch("float32", v).Error())
}

// GetDouble implements dynamic.Ops.
func (Ops) GetDouble(v Tag) result.DataResult[float64] {
	if f, ok := toFloat64(v); ok {
		return result.Success(f)
	}
	return result.Error[float64](typeMismatch("float64", v).Error())
}

// GetString implements dynamic.Ops.
func (Ops) GetString(v Tag) result.DataResult[string] {
	if v.Kind == TagString {
		return result.Success(v.Str)
	}
	return result.Error[string](typeMismatch("string", v).Error())
}

// GetMapEntries implements dynamic.Ops.
func (Ops) GetMapEntries(v Tag) result.DataResult[[]dynamic.MapEntry[Tag]] {
	if v.Kind != TagCompound {
		return result.Error[[]dynamic.MapEntry[Tag]](typeMismatch("compound", v).Error())
	}
	entries := make([]dynamic.MapEntry[Tag], 0, len(v.Compound))
	for k, val := range v.Compound {
		entries = append(entries, dynamic.MapEntry[Tag]{Key: stringTag(k), Value: val})
	}
	return result.Success(entries)
}

// GetListStream implements dynamic.Ops.
func (Ops) GetListStream(v Tag) result.DataResult[[]Tag] {
	if v.Kind != TagList {
		return result.Error[[]Tag](typeMismatch("list", v).Error())
	}
	return result.Success(cloneList(v.List))
}

// GetMapValue implements dynamic.Ops.
func (Ops) GetMapValue(v Tag, key Tag) result.DataResult[Tag] {
	if v.Kind != TagCompound {
		return result.Error[Tag](typeMismatch("compound", v).Error())
	}
	if key.Kind != TagString {
		return result.Error[Tag]("map key is not a string tag")
	}
	val, present := v.Compound[key.Str]
	if !present {
		return result.Error[Tag]((&dferrors.FieldMissingError{Field: key.Str}).Error())
	}
	return result.Success(val)
}

// IsMap implements dynamic.Ops.
func (Ops) IsMap(v Tag) bool { return v.Kind == TagCompound }

// IsList implements dynamic.Ops.
func (Ops) IsList(v Tag) bool { return v.Kind == TagList }

// Set implements dynamic.Ops.
func (Ops) Set(v Tag, key Tag, value Tag) result.DataResult[Tag] {
	if v.Kind != TagCompound {
		return result.Error[Tag](typeMismatch("compound", v).Error())
	}
	if key.Kind != TagString {
		return result.Error[Tag]("map key is not a string tag")
	}
	nm := cloneCompound(v.Compound)
	nm[key.Str] = value
	return result.Success(compoundTag(nm))
}

// Remove implements dynamic.Ops.
func (Ops) Remove(v Tag, key Tag) result.DataResult[Tag] {
	if v.Kind != TagCompound {
		return result.Error[Tag](typeMismatch("compound", v).Error())
	}
	if key.Kind != TagString {
		return result.Error[Tag]("map key is not a string tag")
	}
	nm := cloneCompound(v.Compound)
	delete(nm, key.Str)
	return result.Success(compoundTag(nm))
}

// MergeToMap implements dynamic.Ops: shallow right-biased merge.
func (Ops) MergeToMap(left Tag, right Tag) result.DataResult[Tag] {
	if left.Kind != TagCompound || right.Kind != TagCompound {
		side := "left"
		switch {
		case left.Kind != TagCompound && right.Kind != TagCompound:
			side = "both"
		case left.Kind == TagCompound:
			side = "right"
		}
		return result.Error[Tag]((&dferrors.MergeConflictError{Side: side}).Error())
	}
	out := cloneCompound(left.Compound)
	for k, v := range right.Compound {
		out[k] = v
	}
	return result.Success(compoundTag(out))
}

// MergeToList implements dynamic.Ops: concatenation.
func (Ops) MergeToList(left Tag, right Tag) result.DataResult[Tag] {
	if left.Kind != TagList || right.Kind != TagList {
		return result.Error[Tag]("merge_to_list: both operands must be lists")
	}
	out := make([]Tag, 0, len(left.List)+len(right.List))
	out = append(out, left.List...)
	out = append(out, right.List...)
	return result.Success(listTag(out))
}

var _ dynamic.Ops[Tag] = Ops{}
