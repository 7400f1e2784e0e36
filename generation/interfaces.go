package generation

// Random is a uniform [0,1) source. Every stage of generation draws from the
// one passed in, so a seeded source makes the whole dungeon reproducible.
// random.Seeded and random.Sequence satisfy it.
type Random interface {
	Float64() float64
}
