package provisioning

import (
	"context"

	"github.com/mattgen/gridup/internal/config"
	"github.com/mattgen/gridup/internal/platform/gce"
)

// Context wraps all dependencies needed by a provisioning phase.
type Context struct {
	context.Context
	Spec     *config.ClusterSpec
	Cloud    gce.CloudManager
	Observer Observer
}

// NewContext creates a new provisioning context.
func NewContext(ctx context.Context, spec *config.ClusterSpec, cloud gce.CloudManager) *Context {
	return &Context{
		Context:  ctx,
		Spec:     spec,
		Cloud:    cloud,
		Observer: NewConsoleObserver(),
	}
}
