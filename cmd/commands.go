// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

// Command names exported for testing
const (
	// DeployCmd is the deploy command name
	DeployCmd = "deploy"

	// ShowCmd is the show command name
	ShowCmd = "show"

	// ConfigCmd is the config command name
	ConfigCmd = "config"
)
