package disks

import (
	"context"
	"net/http"
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

func masterIdentity(spec *config.ClusterSpec) config.HostIdentity {
	return spec.Masters()[0]
}

func TestCreate_FullFalse_NoDiskCalls(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().WithResourceSnapshot("bundle-A").Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	err := NewManager().Create(ctx, masterIdentity(spec), false)
	require.NoError(t, err)
	assert.Empty(t, mock.Calls)
}

func TestCreate_MasterWithResourceDisk(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().WithResourceSnapshot("bundle-A").Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	err := NewManager().Create(ctx, masterIdentity(spec), true)
	require.NoError(t, err)

	require.Len(t, mock.CreatedDisks, 3)
	assert.Equal(t, "grid-master-0", mock.CreatedDisks[0].Name)
	assert.Equal(t, spec.Master.BootImage, mock.CreatedDisks[0].SourceImage)
	assert.Equal(t, "grid-master-0-data", mock.CreatedDisks[1].Name)
	assert.Equal(t, int64(200), mock.CreatedDisks[1].SizeGB)
	assert.Equal(t, "grid-master-0-resource", mock.CreatedDisks[2].Name)
	assert.Equal(t, "bundle-A", mock.CreatedDisks[2].SourceSnapshot)
}

func TestCreate_MasterWithoutResourceSnapshot(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	err := NewManager().Create(ctx, masterIdentity(spec), true)
	require.NoError(t, err)
	require.Len(t, mock.CreatedDisks, 2)
}

// Execution hosts never get a resource disk of their own, even when a
// snapshot is configured.
func TestCreate_ExecutionHostHasNoResourceDisk(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().WithResourceSnapshot("bundle-A").Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	err := NewManager().Create(ctx, spec.Executors()[0], true)
	require.NoError(t, err)

	require.Len(t, mock.CreatedDisks, 2)
	assert.Equal(t, "grid-exec-1", mock.CreatedDisks[0].Name)
	assert.Equal(t, "grid-exec-1-data", mock.CreatedDisks[1].Name)
	assert.Equal(t, int64(100), mock.CreatedDisks[1].SizeGB)
}

// An existing disk must surface as an error, not be masked.
func TestCreate_AlreadyExistsFailsFast(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().Build()
	mock := &gce.MockClient{
		CreateDiskFunc: func(_ context.Context, _ gce.DiskCreateOpts) error {
			return &googleapi.Error{Code: http.StatusConflict, Message: "already exists"}
		},
	}
	ctx := newTestContext(spec, mock)

	err := NewManager().Create(ctx, masterIdentity(spec), true)
	require.Error(t, err)
	assert.True(t, gce.IsAlreadyExists(err))
	// Fail-fast: the data disk create is never attempted.
	assert.Len(t, mock.CreatedDisks, 1)
}

func TestDelete_FullFalse_NoDiskCalls(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().WithResourceSnapshot("bundle-A").Build()
	mock := &gce.MockClient{}
	ctx := newTestContext(spec, mock)

	NewManager().Delete(ctx, masterIdentity(spec), false)
	assert.Empty(t, mock.Calls)
}

func TestDelete_MissingDisksContinue(t *testing.T) {
	spec := gridtesting.NewSpecBuilder().WithResourceSnapshot("bundle-A").Build()
	mock := &gce.MockClient{
		DeleteDiskFunc: func(_ context.Context, _ string) error {
			return &googleapi.Error{Code: http.StatusNotFound, Message: "not found"}
		},
	}
	ctx := newTestContext(spec, mock)

	// Must not abort: all three deletes are attempted.
	NewManager().Delete(ctx, masterIdentity(spec), true)
	assert.Len(t, mock.CallsMatching("delete-disk:"), 3)
}
