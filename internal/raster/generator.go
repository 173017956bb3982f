package raster

// DefaultSeed is the initial state used when a Generator is seeded with 0.
const DefaultSeed uint64 = 0x853c49e6748fea9b

// Generator is a xorshift64* byte stream used for dithering. The sequence is
// fully determined by the seed. A Generator must not be shared between
// goroutines without external locking.
type Generator struct {
	state uint64
}

// NewGenerator returns a generator starting from seed. A zero seed would pin
// xorshift at zero forever, so it is replaced with DefaultSeed.
func NewGenerator(seed uint64) *Generator {
	g := &Generator{}
	g.Reset(seed)
	return g
}

// Reset rewinds the generator to the start of the sequence for seed.
func (g *Generator) Reset(seed uint64) {
	if seed == 0 {
		seed = DefaultSeed
	}
	g.state = seed
}

// Byte advances the state once and returns the low byte of the scrambled
// output.
func (g *Generator) Byte() uint8 {
	x := g.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	g.state = x
	return uint8(x * 0x2545F4914F6CDD1D)
}

// Fill draws len(buf) bytes in order.
func (g *Generator) Fill(buf []uint8) {
	for i := range buf {
		buf[i] = g.Byte()
	}
}
