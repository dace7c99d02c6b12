// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cobrautils

import (
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestExactArgs(t *testing.T) {
	require := require.New(t)
	cmd := &cobra.Command{Use: "show"}
	cmd.SetOut(io.Discard)
	validate := ExactArgs(1)
	require.NoError(validate(cmd, []string{"deployment.json"}))
	err := validate(cmd, nil)
	require.ErrorContains(err, `"show" requires 1 argument(s), received 0`)
}

func TestCommandSuiteUsage(t *testing.T) {
	cmd := &cobra.Command{Use: "suite"}
	cmd.SetOut(io.Discard)
	require.NoError(t, CommandSuiteUsage(cmd, nil))
	require.ErrorContains(t, CommandSuiteUsage(cmd, []string{"bogus"}), `unknown command "bogus"`)
}
