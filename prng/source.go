package prng

import (
	"math/rand"
	"sync"
)

// Source is the contract every uniform generator satisfies.
//
//   - Seed resets the stream; identical seeds yield identical streams.
//     Implementations report rejected seeds with an error matching ErrDomain
//     and leave their state untouched in that case.
//   - Random advances the stream by one step and returns a value in [0,1).
//     The upper bound is strict: Randint and Choice depend on it.
type Source interface {
	Seed(value int64) error
	Random() float64
}

// Locked serializes access to an underlying Source with a mutex.
// Each Seed/Random call is atomic; a multi-draw operation such as Gauss may
// interleave with draws from other goroutines, which keeps every individual
// draw valid but makes the global order scheduler-dependent.
type Locked struct {
	mu  sync.Mutex
	src Source
}

var _ Source = (*Locked)(nil)

// NewLocked wraps src. Panics on nil: a nil source is a programmer error.
func NewLocked(src Source) *Locked {
	if src == nil {
		panic("prng: NewLocked(nil)")
	}
	return &Locked{src: src}
}

// Seed reseeds the wrapped source under the lock.
func (l *Locked) Seed(value int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Seed(value)
}

// Random draws from the wrapped source under the lock.
func (l *Locked) Random() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Random()
}

// two63 and two64 scale a [0,1) draw onto the integer ranges math/rand expects.
// The largest float64 below 1 times either constant stays strictly below it.
const (
	two63 = float64(1 << 63)
	two64 = two63 * 2
)

// mathSource adapts a Source to math/rand.Source64.
type mathSource struct {
	src Source
}

var _ rand.Source64 = (*mathSource)(nil)

// NewMathSource exposes src as a math/rand.Source64 so code written against
// *rand.Rand can consume a validated stream:
//
//	r := rand.New(prng.NewMathSource(g))
//
// The integer outputs carry the precision of one Random draw (for the lcg
// presets: 31 significant bits). Seed errors cannot be reported through the
// rand.Source interface; a rejected seed leaves the stream unchanged.
func NewMathSource(src Source) rand.Source64 {
	if src == nil {
		panic("prng: NewMathSource(nil)")
	}
	return &mathSource{src: src}
}

// Int63 returns a non-negative int64 derived from a single draw.
func (m *mathSource) Int63() int64 {
	return int64(m.src.Random() * two63)
}

// Uint64 returns a uint64 derived from a single draw.
func (m *mathSource) Uint64() uint64 {
	return uint64(m.src.Random() * two64)
}

// Seed forwards to the wrapped source.
func (m *mathSource) Seed(seed int64) {
	_ = m.src.Seed(seed)
}
