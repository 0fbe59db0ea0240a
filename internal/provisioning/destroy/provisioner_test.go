package destroy

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/mattgen/gridup/internal/config"
	"github.com/mattgen/gridup/internal/platform/gce"
	"github.com/mattgen/gridup/internal/provisioning"
	gridtesting "github.com/mattgen/gridup/internal/testing"
)

func newTestContext(spec *config.ClusterSpec, cloud gce.CloudManager) *provisioning.Context {
	return provisioning.NewContext(context.Background(), spec, cloud)
}

// End-to-end scenario: masterCount=1, executionCount=3, plain down.
// Exactly 4 instance deletes, zero disk deletes, execution hosts
// strictly before the master.
func TestProvision_DownWithoutFull(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().
		WithMasterCount(1).
		WithExecutionCount(3).
		WithResourceSnapshot("bundle-A").
		Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	err := NewProvisioner(false).Provision(ctx)
	require.NoError(t, err)

	deletes := mock.CallsMatching("delete-instance:")
	require.Len(t, deletes, 4)
	assert.Empty(t, mock.CallsMatching("delete-disk:"))

	// Ordering invariant: every execution delete before the master delete.
	masterPos := -1
	lastExecPos := -1
	for i, call := range deletes {
		if strings.Contains(call, "grid-master-") {
			masterPos = i
		} else {
			lastExecPos = i
		}
	}
	require.NotEqual(t, -1, masterPos)
	assert.Greater(t, masterPos, lastExecPos,
		"master must be deleted after every execution host")
}

func TestProvision_DownFullDeletesDisks(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().
		WithMasterCount(1).
		WithExecutionCount(3).
		WithResourceSnapshot("bundle-A").
		Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	err := NewProvisioner(true).Provision(ctx)
	require.NoError(t, err)

	assert.Len(t, mock.CallsMatching("delete-instance:"), 4)
	// 3×(exec boot + data) + master boot + data + resource.
	assert.Len(t, mock.CallsMatching("delete-disk:"), 9)
	assert.Contains(t, mock.Calls, "delete-disk:grid-master-0-resource")

	// The resource disk deletion must come after every execution
	// instance has released its attachment.
	resourcePos := -1
	lastExecInstancePos := -1
	for i, call := range mock.Calls {
		if call == "delete-disk:grid-master-0-resource" {
			resourcePos = i
		}
		if strings.HasPrefix(call, "delete-instance:grid-exec-") {
			lastExecInstancePos = i
		}
	}
	assert.Greater(t, resourcePos, lastExecInstancePos)
}

// A half-torn-down cluster must not abort the run.
func TestProvision_MissingResourcesAreWarnings(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().
		WithResourceSnapshot("bundle-A").
		Build()
	notFound := &googleapi.Error{Code: http.StatusNotFound, Message: "not found"}
	mock := &gce.MockClient{
		DeleteInstanceFunc: func(_ context.Context, _ string) error { return notFound },
		DeleteDiskFunc:     func(_ context.Context, _ string) error { return notFound },
	}
	ctx := newTestContext(spec, mock)

	err := NewProvisioner(true).Provision(ctx)
	require.NoError(t, err)

	// Every delete is still attempted.
	assert.Len(t, mock.CallsMatching("delete-instance:"), 4)
	assert.Len(t, mock.CallsMatching("delete-disk:"), 9)
}
