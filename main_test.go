package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOnlyOne(t *testing.T) {
	assert.True(t, isOnlyOne())
	assert.True(t, isOnlyOne(false, false))
	assert.True(t, isOnlyOne(false, true, false))
	assert.False(t, isOnlyOne(true, false, true))
}

func TestFormatFlagsExclusive(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--json", "--yaml"})

	err := rootCmd.Execute()
	require.ErrorIs(t, err, errFormatFlags)
}

func TestWithDash(t *testing.T) {
	var got []string

	rootCmd := newRootCmd()
	rootCmd.RunE = nil
	rootCmd.Run = func(c *cobra.Command, args []string) {
		got = withDash(c, args)
	}
	rootCmd.SetArgs([]string{"main", "--", "docs"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, []string{"main", "--", "docs"}, got)
}

func TestWithoutDash(t *testing.T) {
	var got []string

	rootCmd := newRootCmd()
	rootCmd.RunE = nil
	rootCmd.Run = func(c *cobra.Command, args []string) {
		got = withDash(c, args)
	}
	rootCmd.SetArgs([]string{"main", "dev"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, []string{"main", "dev"}, got)
}
