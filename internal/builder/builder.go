// Package builder runs plugin builds: it patches the configuration an
// executor is about to build and clears the generated entry point after
// every build result.
//
// Each Run owns its options and entry point, so concurrent builds of
// different entry files do not interfere.
package builder

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/ngplug/cli/internal/core"
	"github.com/ngplug/cli/internal/entrypoint"
	"github.com/ngplug/cli/internal/output"
	"github.com/ngplug/cli/internal/transform"
)

// Request is what an executor receives for one build.
type Request struct {
	// Options are the plugin options, with DeleteOutputPath forced off.
	Options core.PluginOptions

	// Transforms must be applied, in order, to the executor's configuration
	// before compilation starts.
	Transforms transform.Chain
}

// Executor builds a configuration and reports results as events.
//
// Execute applies req.Transforms synchronously and returns their error, if
// any. The event channel is closed by the executor when it is done.
type Executor interface {
	Execute(ctx context.Context, req Request) (<-chan core.Event, error)
}

// Builder wraps an Executor with plugin semantics.
type Builder struct {
	exec Executor
	fs   afero.Fs
}

// Option configures a Builder.
type Option func(*Builder)

// WithFs sets the filesystem the entry point is written to.
func WithFs(fs afero.Fs) Option {
	return func(b *Builder) {
		b.fs = fs
	}
}

// New creates a Builder delegating to exec.
func New(exec Executor, opts ...Option) *Builder {
	b := &Builder{exec: exec}
	for _, opt := range opts {
		opt(b)
	}
	if b.fs == nil {
		b.fs = afero.NewOsFs()
	}
	return b
}

// Run starts one plugin build. The patcher runs before transforms. Every
// event from the executor is forwarded unchanged after the entry point has
// been cleared.
//
// When ctx is cancelled, forwarding stops but the executor's remaining
// events are still drained so the entry point is cleared.
func (b *Builder) Run(ctx context.Context, opts core.PluginOptions, transforms transform.Chain) (<-chan core.Event, error) {
	opts.DeleteOutputPath = false

	store := entrypoint.NewStore(b.fs)
	patcher := transform.NewPatcher(opts, store)
	log := output.PluginLogger(opts.PluginName)

	req := Request{
		Options:    opts,
		Transforms: transforms.Prepend(patcher.Transform),
	}

	events, err := b.exec.Execute(ctx, req)
	if err != nil {
		clearEntryPoint(log, store)
		return nil, err
	}

	out := make(chan core.Event)
	go func() {
		defer close(out)
		forward := true
		for ev := range events {
			clearEntryPoint(log, store)
			if !forward {
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				log.Debug("build cancelled, draining events", "err", ctx.Err())
				forward = false
			}
		}
	}()
	return out, nil
}

func clearEntryPoint(log *log.Logger, store *entrypoint.Store) {
	err := store.Clear()
	switch {
	case err == nil:
		log.Debug("entry point cleared", "path", store.Path())
	case errors.Is(err, entrypoint.ErrNoEntryPoint):
	default:
		log.Error("clearing entry point", "err", err)
	}
}
