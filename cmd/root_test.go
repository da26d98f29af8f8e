package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearOnResetOverride(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().Bool("clear-on-reset", false, "")
		return c
	}

	assert.Nil(t, clearOnResetOverride(newCmd()), "unset flag defers to the profile")

	for _, tc := range []struct {
		args []string
		want bool
	}{
		{[]string{"--clear-on-reset"}, true},
		{[]string{"--clear-on-reset=true"}, true},
		{[]string{"--clear-on-reset=false"}, false},
	} {
		c := newCmd()
		require.NoError(t, c.Flags().Parse(tc.args))
		got := clearOnResetOverride(c)
		require.NotNil(t, got, tc.args)
		assert.Equal(t, tc.want, *got, tc.args)
	}
}
