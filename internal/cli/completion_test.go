package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a fresh root command for testing.
// This prevents test pollution from the package-level command tree.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pgmon",
		Short: "PostgreSQL monitoring dashboard for your terminal",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	// Verify basic bash completion structure
	assert.Contains(t, output, "# bash completion for pgmon")
	assert.Contains(t, output, "__pgmon_debug")
	assert.Contains(t, output, "complete -o default -F __start_pgmon pgmon")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "#compdef pgmon")
}

func TestCompletionFishGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenFishCompletion(&buf, true)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "fish completion for pgmon")
}
