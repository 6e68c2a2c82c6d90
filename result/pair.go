package result

// Pair is a simple two-element product, used where the engine needs to
// carry two related values without declaring a bespoke struct — for
// example rules.SwapFields pairs two sibling field values to exchange
// them in one step.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair constructs a Pair.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Swap returns a new Pair with First and Second exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}
