package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodesCommand_ListsRankTwo(t *testing.T) {
	out, _, err := execute(t, "codes", "--size", "2")
	require.NoError(t, err)

	want := "(0,0)\n(0,1)\n(0,2)\n(1,-1)\n(1,0)\n(1,1)\n(1,2)\n" +
		"7 elements of rank 2\n"
	assert.Equal(t, want, out)
}

func TestRooksCommand_ListsRankTwo(t *testing.T) {
	out, _, err := execute(t, "rooks", "--size", "2")
	require.NoError(t, err)

	want := "(0,0)\n(0,1)\n(0,2)\n(1,0)\n(1,2)\n(2,0)\n(2,1)\n" +
		"7 elements of rank 2\n"
	assert.Equal(t, want, out)
}

func TestCodesCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "codes", "--size", "1")
	require.NoError(t, err)

	assert.Contains(t, out, `"count":2`)
	assert.Contains(t, out, `"items":["(0)","(1)"]`)
}

func TestRooksCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "rooks", "--size", "1")
	require.NoError(t, err)

	assert.Contains(t, out, `"count":2`)
	assert.Contains(t, out, `"items":["(0)","(1)"]`)
}

func TestListCommands_RejectOversize(t *testing.T) {
	for _, name := range []string{"codes", "rooks"} {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, name, "--size", "10")
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error [E002]")
		})
	}
}

func TestListCommands_EmptyRank(t *testing.T) {
	out, _, err := execute(t, "codes", "--size", "0")
	require.NoError(t, err)
	assert.Equal(t, "()\n1 elements of rank 0\n", out)
}
