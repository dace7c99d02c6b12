// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package application

import (
	"os"
	"path/filepath"
	"testing"

	luxlog "github.com/luxfi/log"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *Lendctl {
	app := New()
	app.Setup(t.TempDir(), luxlog.NewNoOpLogger())
	return app
}

func TestPaths(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)
	require.Equal(filepath.Join(ap.GetBaseDir(), "logs"), ap.GetLogDir())
	require.Equal(filepath.Join(ap.GetBaseDir(), "config.json"), ap.GetConfigFilePath())
}

func TestConfigFileExists(t *testing.T) {
	require := require.New(t)
	ap := newTestApp(t)
	require.False(ap.ConfigFileExists())
	require.NoError(os.WriteFile(ap.GetConfigFilePath(), []byte("{}"), 0o600))
	require.True(ap.ConfigFileExists())
}
