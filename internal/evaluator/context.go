package evaluator

import "github.com/m-ou-se/configtaal/internal/value"

// context is the per-evaluation stack of object frames, innermost last. It
// is seeded from the engine's prelude and grows only while evaluating an
// object literal, which pushes one frame for the duration of its own value
// expressions and pops it again before returning.
type context struct {
	frames []*value.Object
}

func newContext(prelude []*value.Object) *context {
	frames := make([]*value.Object, len(prelude))
	copy(frames, prelude)
	return &context{frames: frames}
}

func (c *context) push(o *value.Object) { c.frames = append(c.frames, o) }

func (c *context) pop() { c.frames = c.frames[:len(c.frames)-1] }

// resolve searches the stack from innermost frame outward, returning the
// first hit.
func (c *context) resolve(name string) (value.Value, bool) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if v, ok := c.frames[i].Get(name); ok {
			return v, true
		}
	}
	return value.Value{}, false
}
