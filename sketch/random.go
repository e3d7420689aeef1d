package sketch

// Random is the Park-Miller style generator used for hand-drawn jitter.
// The same seed always yields the same sequence.
type Random struct {
	seed int32
}

// NewRandom returns a generator for seed. Seed zero is replaced by one so
// output stays deterministic.
func NewRandom(seed int64) *Random {
	s := int32(seed)
	if s == 0 {
		s = 1
	}
	return &Random{seed: s}
}

// Next returns the next value in [0, 1).
func (r *Random) Next() float64 {
	r.seed = int32(uint32(48271) * uint32(r.seed))
	return float64(r.seed&0x7fffffff) / (1 << 31)
}
