// Package gce provides a wrapper around the Google Compute Engine API.
//
// The wrapper exposes narrow interfaces for the disk and instance
// operations the orchestrator needs. RealClient implements them against
// the compute/v1 service with per-operation timeouts and retry; MockClient
// implements them in-memory with recorded calls for tests.
package gce
