package fallible

// Pair is an immutable two-slot container.
type Pair[F, S any] struct {
	first  F
	second S
}

func PairOf[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{first: first, second: second}
}

func (p Pair[F, S]) First() F {
	return p.first
}

func (p Pair[F, S]) Second() S {
	return p.second
}

// Unpack returns both slots, first then second.
func (p Pair[F, S]) Unpack() (F, S) {
	return p.first, p.second
}
