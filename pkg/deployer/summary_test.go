// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testSummary() Summary {
	return Summary{
		Network:         "localhost",
		ProjectContract: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		MockToken:       "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		Deployer:        "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		Timestamp:       FormatTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 6e6, time.UTC)),
	}
}

func TestFormatTimestamp(t *testing.T) {
	require := require.New(t)
	ts := FormatTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 6e6, time.FixedZone("PST", -8*3600)))
	require.Equal("2025-01-02T11:04:05.006Z", ts)

	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(err)
	require.Equal(time.UTC, parsed.Location())
}

func TestSummaryJSONKeys(t *testing.T) {
	require := require.New(t)
	var fields map[string]string
	require.NoError(json.Unmarshal([]byte(testSummary().JSON()), &fields))
	require.Len(fields, 5)
	for _, k := range []string{"network", "projectContract", "mockToken", "deployer", "timestamp"} {
		require.Contains(fields, k)
	}
	require.Equal("2025-01-02T03:04:05.006Z", fields["timestamp"])
}

func TestWriteReadSummary(t *testing.T) {
	for _, name := range []string{"deployment.json", "deployment.yaml", "nested/dir/deployment.yml", "deployment"} {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			path := filepath.Join(t.TempDir(), name)
			require.NoError(WriteSummary(path, testSummary()))

			got, err := ReadSummary(path)
			require.NoError(err)
			require.Equal(testSummary(), got)
		})
	}
}

func TestWriteSummaryYAMLKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deployment.yaml")
	require.NoError(t, WriteSummary(path, testSummary()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "projectContract: ")
	require.Contains(t, string(data), "0x5FbDB2315678afecb367f032d93F642f64180aa3")
}

func TestReadSummaryErrors(t *testing.T) {
	require := require.New(t)
	_, err := ReadSummary(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = ReadSummary(path)
	require.ErrorContains(err, "invalid deployment summary")
}
