package provisioning

import (
	"fmt"
	"time"
)

// Phase is one step of an orchestrator run.
type Phase interface {
	Name() string
	Provision(ctx *Context) error
}

// RunPhases executes all phases sequentially, fail-fast. The first phase
// error aborts the remaining sequence; no partial-state cleanup is
// attempted.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()

	for i, phase := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.Observer.Printf("[%s] starting", name)

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Printf("[%s] failed: %v", name, err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.Printf("[%s] completed in %v", name, time.Since(phaseStart).Round(time.Millisecond))
	}

	ctx.Observer.Printf("Run completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
