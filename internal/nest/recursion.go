package nest

import "errors"

// ErrBudgetExceeded is returned when an expansion asks for more node
// primitives than its budget allows. It is an expected outcome for
// large anchor counts and depths.
var ErrBudgetExceeded = errors.New("nest: drawing budget exceeded")

const (
	DefaultCeiling = 100000
	DefaultScale   = 0.5
	radiusShrink   = 0.75
	redFade        = 0.02
)

// Recursion is the per-call state of an expansion. It is passed by
// value so sibling branches never see each other's reductions.
type Recursion struct {
	Level  int
	Scale  float32
	Radius float32
}

// Reduce returns the state one level further down.
func (r Recursion) Reduce(factor float32) Recursion {
	r.Level--
	r.Scale *= factor
	r.Radius *= radiusShrink
	return r
}

// Continue reports whether a node at this state has children.
func (r Recursion) Continue() bool {
	return r.Level > 0
}

// Attenuate fades the red channel by the remaining level.
func (r Recursion) Attenuate(c Color) Color {
	level := r.Level
	if level < 0 {
		level = 0
	}
	c.R -= float32(level) * redFade
	if c.R < 0 {
		c.R = 0
	}
	return c
}

// Budget counts node primitives for one render pass. It is owned by the
// pass and handed down the recursion by pointer.
type Budget struct {
	ceiling int
	count   int
}

func NewBudget(ceiling int) *Budget {
	return &Budget{ceiling: ceiling}
}

// Spend reserves one primitive. It fails without reserving anything
// once the ceiling has been reached, so Count never exceeds Ceiling.
func (b *Budget) Spend() error {
	if b.count >= b.ceiling {
		return ErrBudgetExceeded
	}
	b.count++
	return nil
}

func (b *Budget) Count() int {
	return b.count
}

func (b *Budget) Ceiling() int {
	return b.ceiling
}
