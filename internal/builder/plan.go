package builder

import (
	"context"
	"path/filepath"
	"time"

	"github.com/ngplug/cli/internal/core"
)

// PlanExecutor applies the transform chain without building. It reports the
// effective configuration and the file a real build would emit.
type PlanExecutor struct {
	// Base is cloned for every request; it is never modified.
	Base *core.Configuration
}

// Execute implements Executor.
func (p *PlanExecutor) Execute(ctx context.Context, req Request) (<-chan core.Event, error) {
	start := time.Now()
	cfg, err := req.Transforms.Apply(p.Base.Clone())
	if err != nil {
		return nil, err
	}

	ev := core.Event{
		Success:       true,
		Duration:      time.Since(start),
		Configuration: cfg,
	}
	if cfg.Output.Filename != "" {
		ev.OutputFiles = []string{filepath.Join(cfg.Context, cfg.Output.Path, cfg.Output.Filename)}
	}

	events := make(chan core.Event, 1)
	events <- ev
	close(events)
	return events, nil
}
