package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngplug/cli/internal/core"
)

func recordMode(order *[]string, mode string) Func {
	return func(cfg *core.Configuration) (*core.Configuration, error) {
		*order = append(*order, mode)
		cfg.Mode = mode
		return cfg, nil
	}
}

func TestChainApply(t *testing.T) {
	t.Run("runs in order", func(t *testing.T) {
		var order []string
		chain := Chain{recordMode(&order, "first"), nil, recordMode(&order, "second")}

		got, err := chain.Apply(&core.Configuration{})
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
		assert.Equal(t, "second", got.Mode)
	})

	t.Run("replacement configuration flows on", func(t *testing.T) {
		replacement := &core.Configuration{Mode: "replaced"}
		chain := Chain{
			func(*core.Configuration) (*core.Configuration, error) { return replacement, nil },
			func(cfg *core.Configuration) (*core.Configuration, error) {
				assert.Same(t, replacement, cfg)
				return nil, nil
			},
		}

		got, err := chain.Apply(&core.Configuration{})
		require.NoError(t, err)
		assert.Same(t, replacement, got)
	})

	t.Run("stops at first error", func(t *testing.T) {
		var order []string
		boom := errors.New("boom")
		chain := Chain{
			recordMode(&order, "first"),
			func(*core.Configuration) (*core.Configuration, error) { return nil, boom },
			recordMode(&order, "never"),
		}

		_, err := chain.Apply(&core.Configuration{})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"first"}, order)
	})

	t.Run("empty chain", func(t *testing.T) {
		cfg := &core.Configuration{}
		got, err := Chain(nil).Apply(cfg)
		require.NoError(t, err)
		assert.Same(t, cfg, got)
	})
}

func TestChainPrepend(t *testing.T) {
	var order []string
	base := Chain{recordMode(&order, "caller")}
	chain := base.Prepend(recordMode(&order, "plugin"))

	_, err := chain.Apply(&core.Configuration{})
	require.NoError(t, err)
	assert.Equal(t, []string{"plugin", "caller"}, order)
	assert.Len(t, base, 1)
}
