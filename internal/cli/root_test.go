package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the full command tree against buffers and returns what
// landed on stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "rookzero", cmd.Use)
	assert.Contains(t, cmd.Long, "0-rook monoid")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"verify", "codes", "rooks", "count", "act", "word", "canon"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestVerifyCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	verifyCmd, _, err := cmd.Find([]string{"verify"})
	require.NoError(t, err)

	minFlag := verifyCmd.Flags().Lookup("min-size")
	require.NotNil(t, minFlag)
	assert.Equal(t, "0", minFlag.DefValue)

	maxFlag := verifyCmd.Flags().Lookup("max-size")
	require.NotNil(t, maxFlag)
	assert.Equal(t, "5", maxFlag.DefValue)

	wordsFlag := verifyCmd.Flags().Lookup("words")
	require.NotNil(t, wordsFlag)
	assert.Equal(t, "true", wordsFlag.DefValue)

	crossFlag := verifyCmd.Flags().Lookup("cross-check")
	require.NotNil(t, crossFlag)
	assert.Equal(t, "true", crossFlag.DefValue)

	require.NotNil(t, verifyCmd.Flags().Lookup("run-token"))
	require.NotNil(t, verifyCmd.Flags().Lookup("scenario"))
}

func TestActCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	actCmd, _, err := cmd.Find([]string{"act"})
	require.NoError(t, err)

	require.NotNil(t, actCmd.Flags().Lookup("code"))
	require.NotNil(t, actCmd.Flags().Lookup("gen"))
	require.NotNil(t, actCmd.Flags().Lookup("file"))

	traceFlag := actCmd.Flags().Lookup("trace")
	require.NotNil(t, traceFlag)
	assert.Equal(t, "false", traceFlag.DefValue)
}

func TestCountCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	countCmd, _, err := cmd.Find([]string{"count"})
	require.NoError(t, err)

	maxFlag := countCmd.Flags().Lookup("max")
	require.NotNil(t, maxFlag)
	assert.Equal(t, "9", maxFlag.DefValue)

	triangleFlag := countCmd.Flags().Lookup("triangle")
	require.NotNil(t, triangleFlag)
	assert.Equal(t, "false", triangleFlag.DefValue)
}

func TestListCommandFlags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"codes", "rooks"} {
		t.Run(name, func(t *testing.T) {
			listCmd, _, err := cmd.Find([]string{name})
			require.NoError(t, err)

			sizeFlag := listCmd.Flags().Lookup("size")
			require.NotNil(t, sizeFlag)
			assert.Equal(t, "3", sizeFlag.DefValue)
		})
	}
}

func TestFormatValidation(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))

	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
	assert.False(t, isValidFormat("TEXT"))
}

func TestFormatValidationIntegration(t *testing.T) {
	_, _, err := execute(t, "--format", "yaml", "codes", "--size", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
