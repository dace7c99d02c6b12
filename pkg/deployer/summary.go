// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/luxfi/filesystem/perms"
	"gopkg.in/yaml.v3"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision,
// e.g. 2025-03-01T12:00:00.000Z
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Summary describes a finished deployment
type Summary struct {
	Network         string `json:"network" yaml:"network"`
	ProjectContract string `json:"projectContract" yaml:"projectContract"`
	MockToken       string `json:"mockToken" yaml:"mockToken"`
	Deployer        string `json:"deployer" yaml:"deployer"`
	Timestamp       string `json:"timestamp" yaml:"timestamp"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// JSON renders the summary as indented JSON
func (s Summary) JSON() string {
	// a struct of strings always marshals
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}

// WriteSummary stores [s] at [path], as YAML for .yaml/.yml files and JSON otherwise
func WriteSummary(path string, s Summary) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(s)
	default:
		data, err = json.MarshalIndent(s, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode deployment summary: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, perms.ReadWriteExecute); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, perms.ReadWrite); err != nil {
		return fmt.Errorf("failed to write deployment summary: %w", err)
	}
	return nil
}

// ReadSummary loads a summary written by WriteSummary
func ReadSummary(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, err
	}
	var s Summary
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("invalid deployment summary %s: %w", path, err)
	}
	return s, nil
}
