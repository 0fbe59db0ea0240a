package compute

import (
	"bytes"
	"fmt"
	"text/template"
)

// The startup script is run by the provider's own agent on every boot.
// It only fetches and executes the gridup-node binary; all bring-up
// logic lives in the agent so it can be tested off-host.
const startupScriptTemplate = `#!/bin/bash
set -euo pipefail

AGENT=/usr/local/bin/gridup-node
if [ ! -x "$AGENT" ]; then
  curl -fsSL -o "$AGENT" "{{ .AgentURL }}"
  chmod 0755 "$AGENT"
fi
exec "$AGENT"
`

var startupScriptTmpl = template.Must(template.New("startup").Parse(startupScriptTemplate))

type startupScriptData struct {
	AgentURL string
}

// renderStartupScript renders the boot-time script embedded into each
// instance's metadata.
func renderStartupScript(agentURL string) (string, error) {
	var buf bytes.Buffer
	if err := startupScriptTmpl.Execute(&buf, startupScriptData{AgentURL: agentURL}); err != nil {
		return "", fmt.Errorf("failed to render startup script: %w", err)
	}
	return buf.String(), nil
}
