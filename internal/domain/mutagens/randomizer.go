package mutagens

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"unicode"
	"unicode/utf8"
)

// DefaultLengthSpread is the half-width of the replacement length window.
const DefaultLengthSpread = 30

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// RandomizationPolicy controls how replacement strings are generated.
type RandomizationPolicy struct {
	// Spread bounds the replacement length to [max(0, n-Spread), n+Spread).
	Spread int
	// SinglePass emits the registered candidate itself instead of a second
	// randomization derived from it.
	SinglePass bool
}

// DefaultRandomizationPolicy returns the policy used when nothing is configured.
func DefaultRandomizationPolicy() RandomizationPolicy {
	return RandomizationPolicy{Spread: DefaultLengthSpread}
}

// Validate reports whether the policy yields a non-empty length window.
func (p RandomizationPolicy) Validate() error {
	if p.Spread <= 0 {
		return fmt.Errorf("length spread must be positive, got %d", p.Spread)
	}

	return nil
}

// NewSeededSource returns a deterministic random source for seed.
func NewSeededSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// NewUnseededSource returns a random source seeded from the runtime generator.
func NewUnseededSource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}

// Randomizer generates adversarial replacement strings. Calls are serialized,
// so one instance may be shared by concurrent traversals.
type Randomizer struct {
	mu     sync.Mutex
	rng    *rand.Rand
	spread int
}

// NewRandomizer builds a Randomizer drawing from source. A spread below one is
// raised to one so the length window is never empty.
func NewRandomizer(spread int, source rand.Source) *Randomizer {
	spread = max(1, spread)

	if source == nil {
		source = NewUnseededSource()
	}

	return &Randomizer{
		rng:    rand.New(source),
		spread: spread,
	}
}

// LengthWindow returns the half-open range the replacement length is drawn from.
func (r *Randomizer) LengthWindow(original string) (minLen, maxLen int) {
	length := utf8.RuneCountInString(original)

	return max(0, length-r.spread), length + r.spread
}

// Generate returns a random string whose rune count lies in LengthWindow(original).
// Runes are drawn uniformly from [0, unicode.MaxRune), redrawing surrogates.
func (r *Randomizer) Generate(original string) string {
	minLen, maxLen := r.LengthWindow(original)

	r.mu.Lock()
	defer r.mu.Unlock()

	newLen := minLen + r.rng.IntN(maxLen-minLen)

	runes := make([]rune, newLen)
	for i := range runes {
		runes[i] = r.nextRune()
	}

	return string(runes)
}

func (r *Randomizer) nextRune() rune {
	for {
		c := rune(r.rng.Int32N(unicode.MaxRune))
		if c < surrogateMin || c > surrogateMax {
			return c
		}
	}
}
