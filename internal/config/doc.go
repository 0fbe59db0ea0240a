// Package config loads and validates the cluster spec.
//
// The spec is an immutable value: loaded once per invocation, validated
// up front (including the host-name patterns, so malformed patterns are
// rejected before any provider call), then passed through every layer
// explicitly. There is no process-wide configuration state.
package config
