// Package esbuild builds configurations in-process with the esbuild Go API.
package esbuild

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/ngplug/cli/internal/builder"
	"github.com/ngplug/cli/internal/core"
	"github.com/ngplug/cli/internal/output"
)

// Executor implements builder.Executor with esbuild.
type Executor struct {
	base  *core.Configuration
	color bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithColor enables ANSI colors in formatted build messages.
func WithColor(color bool) Option {
	return func(e *Executor) {
		e.color = color
	}
}

// New creates an Executor building clones of base.
func New(base *core.Configuration, opts ...Option) *Executor {
	e := &Executor{base: base}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute implements builder.Executor. Transforms, translation and output
// path removal happen before it returns; the build itself runs in the
// background and reports exactly one event.
func (e *Executor) Execute(ctx context.Context, req builder.Request) (<-chan core.Event, error) {
	cfg, err := req.Transforms.Apply(e.base.Clone())
	if err != nil {
		return nil, err
	}

	opts, err := translate(cfg)
	if err != nil {
		return nil, fmt.Errorf("translating configuration: %w", err)
	}

	if req.Options.DeleteOutputPath {
		dir := opts.Outdir
		if dir == "" {
			dir = filepath.Dir(opts.Outfile)
		}
		output.Debug("deleting output path", "path", dir)
		if err := os.RemoveAll(dir); err != nil {
			return nil, fmt.Errorf("deleting output path %s: %w", dir, err)
		}
	}

	bctx, cerr := api.Context(opts)
	if cerr != nil {
		return nil, fmt.Errorf("creating build context: %s", strings.Join(e.format(cerr.Errors, api.ErrorMessage), "\n"))
	}

	events := make(chan core.Event, 1)
	go func() {
		defer close(events)
		defer bctx.Dispose()

		stop := context.AfterFunc(ctx, bctx.Cancel)
		defer stop()

		if err := ctx.Err(); err != nil {
			events <- core.Event{Errors: []string{fmt.Sprintf("build cancelled: %v", err)}}
			return
		}

		start := time.Now()
		result := bctx.Rebuild()
		events <- e.event(result, time.Since(start))
	}()
	return events, nil
}

func (e *Executor) event(result api.BuildResult, d time.Duration) core.Event {
	ev := core.Event{
		Success:  len(result.Errors) == 0,
		Errors:   e.format(result.Errors, api.ErrorMessage),
		Warnings: e.format(result.Warnings, api.WarningMessage),
		Duration: d,
	}
	for _, f := range result.OutputFiles {
		ev.OutputFiles = append(ev.OutputFiles, f.Path)
	}
	return ev
}

func (e *Executor) format(msgs []api.Message, kind api.MessageKind) []string {
	if len(msgs) == 0 {
		return nil
	}
	formatted := api.FormatMessages(msgs, api.FormatMessagesOptions{
		Kind:  kind,
		Color: e.color,
	})
	for i, m := range formatted {
		formatted[i] = strings.TrimRight(m, "\n")
	}
	return formatted
}
