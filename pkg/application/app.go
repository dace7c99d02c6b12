// Copyright (C) 2022, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"os"
	"path/filepath"

	"github.com/luxfi/lendctl/pkg/constants"
	luxlog "github.com/luxfi/log"
)

// Lendctl carries the process wide state shared by all commands
type Lendctl struct {
	Log     luxlog.Logger
	baseDir string
}

func New() *Lendctl {
	return &Lendctl{Log: luxlog.NewNoOpLogger()}
}

func (app *Lendctl) Setup(baseDir string, log luxlog.Logger) {
	app.baseDir = baseDir
	app.Log = log
}

func (app *Lendctl) GetBaseDir() string {
	return app.baseDir
}

func (app *Lendctl) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

// GetConfigFilePath is where the config file lives when --config is not given
func (app *Lendctl) GetConfigFilePath() string {
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

func (app *Lendctl) ConfigFileExists() bool {
	_, err := os.Stat(app.GetConfigFilePath())
	return err == nil
}
