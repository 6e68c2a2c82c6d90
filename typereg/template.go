package typereg

// PrimitiveKind enumerates the scalar kinds a Primitive template may
// declare.
type PrimitiveKind int

const (
	KindBool PrimitiveKind = iota
	KindI32
	KindI64
	KindF32
	KindF64
	KindString
)

// String renders a PrimitiveKind for diagnostics.
func (k PrimitiveKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// TypeTemplate is the closed set of declarative shapes a type can take
// within one schema. It is informational — used for diffing and
// tooling — and is never consulted by the runtime rewrite engine.
type TypeTemplate interface {
	isTypeTemplate()
}

// Primitive declares a scalar leaf.
type Primitive struct {
	PKind PrimitiveKind
}

func (Primitive) isTypeTemplate() {}

// Field declares a named required slot.
type Field struct {
	Name     string
	Template TypeTemplate
}

func (Field) isTypeTemplate() {}

// Optional declares a named optional slot.
type Optional struct {
	Name     string
	Template TypeTemplate
}

func (Optional) isTypeTemplate() {}

// And declares a record (product) of sub-templates, typically a mix of
// Field and Optional.
type And struct {
	Templates []TypeTemplate
}

func (And) isTypeTemplate() {}

// List declares an ordered sequence of one element template.
type List struct {
	Element TypeTemplate
}

func (List) isTypeTemplate() {}

// TaggedChoice declares a discriminated union: the value of
// DiscriminatorField selects which Variants entry describes the rest of
// the shape.
type TaggedChoice struct {
	DiscriminatorField    string
	DiscriminatorTemplate TypeTemplate
	Variants              map[string]TypeTemplate
}

func (TaggedChoice) isTypeTemplate() {}

// Remainder captures all fields not otherwise enumerated by a sibling
// And's Field/Optional entries.
type Remainder struct{}

func (Remainder) isTypeTemplate() {}
