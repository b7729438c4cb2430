package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVerifyCommand_Pass(t *testing.T) {
	out, _, err := execute(t, "verify", "--max-size", "3", "--run-token", "cli-run")
	require.NoError(t, err)

	assert.Contains(t, out, "verification run cli-run")
	assert.Contains(t, out, "ranks: 0..3")
	assert.Contains(t, out, "result: PASS")
}

func TestVerifyCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "verify", "--max-size", "2", "--run-token", "tok-1")
	require.NoError(t, err)

	assert.Contains(t, out, `"status": "ok"`)
	assert.Contains(t, out, `"trace_id": "tok-1"`)
	assert.Contains(t, out, `"run_token": "tok-1"`)
}

func TestVerifyCommand_Scenario(t *testing.T) {
	path := writeScenario(t, `
name: cli-smoke
min_size: 0
max_size: 2
words: true
cross_check: true
run_token: cli-scenario
expected_counts: [1, 2, 7]
`)

	out, _, err := execute(t, "verify", "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, out, "verification run cli-scenario")
	assert.Contains(t, out, "result: PASS")
}

func TestVerifyCommand_ScenarioCountMismatch(t *testing.T) {
	path := writeScenario(t, `
name: cli-mismatch
min_size: 0
max_size: 2
run_token: cli-mismatch
expected_counts: [1, 2, 8]
`)

	out, _, err := execute(t, "verify", "--scenario", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "scenario expected 8")
	assert.Contains(t, out, "result: FAIL (1 failures)")
}

func TestVerifyCommand_BadRange(t *testing.T) {
	out, _, err := execute(t, "verify", "--max-size", "9")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E002]")
}

func TestVerifyCommand_MissingScenarioFile(t *testing.T) {
	out, _, err := execute(t, "verify", "--scenario", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E003]")
}

func TestVerifyCommand_VerboseScenarioLog(t *testing.T) {
	path := writeScenario(t, `
name: cli-verbose
min_size: 0
max_size: 1
`)

	_, errOut, err := execute(t, "-v", "verify", "--scenario", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, `Running scenario "cli-verbose"`)
}
