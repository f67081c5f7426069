package transform

import (
	"github.com/ngplug/cli/internal/core"
)

// Func transforms a build configuration. It may mutate cfg in place and
// return it, or return a replacement.
type Func func(cfg *core.Configuration) (*core.Configuration, error)

// Chain is an ordered sequence of transforms.
type Chain []Func

// Apply runs every transform in order, feeding each the result of the
// previous one. The first error stops the chain.
func (c Chain) Apply(cfg *core.Configuration) (*core.Configuration, error) {
	for _, fn := range c {
		if fn == nil {
			continue
		}
		next, err := fn(cfg)
		if err != nil {
			return nil, err
		}
		if next != nil {
			cfg = next
		}
	}
	return cfg, nil
}

// Prepend returns a new chain starting with fn.
func (c Chain) Prepend(fn Func) Chain {
	out := make(Chain, 0, len(c)+1)
	out = append(out, fn)
	return append(out, c...)
}
