package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSVFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBatchCmd(t *testing.T) {
	// Setup
	path := writeCSVFile(t, "name,lat,lon\n"+
		"mountain view,37.422,-122.0841\n"+
		"new york,40.72470580906875,-73.99975952911369\n"+
		"origin,0,0\n")

	// Execute
	out, err := run(t, "batch", "--file", path, "--lat-col", "1", "--lon-col", "2", "-p", "8", "--workers", "2")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "name,lat,lon,geohash\n"+
		"mountain view,37.422,-122.0841,9q9hvumn\n"+
		"new york,40.72470580906875,-73.99975952911369,dr5rsjen\n"+
		"origin,0,0,s0000000\n", out)
}

func TestBatchCmd_PreservesOrder(t *testing.T) {
	// Setup
	content := "lat,lon\n"
	for i := 0; i < 200; i++ {
		content += "40.72470580906875,-73.99975952911369\n0,0\n"
	}
	path := writeCSVFile(t, content)

	// Execute
	out, err := run(t, "batch", "-f", path, "-p", "1", "-w", "8")

	// Assert
	require.NoError(t, err)
	expected := "lat,lon,geohash\n"
	for i := 0; i < 200; i++ {
		expected += "40.72470580906875,-73.99975952911369,d\n0,0,s\n"
	}
	assert.Equal(t, expected, out)
}

func TestBatchCmd_Errors(t *testing.T) {
	valid := writeCSVFile(t, "lat,lon\n1,2\n")

	tests := []struct {
		name        string
		content     string
		args        []string
		expectError string
	}{
		{
			name:        "missing file flag",
			args:        []string{"batch", "-p", "5"},
			expectError: "--file flag is required",
		},
		{
			name:        "missing precision",
			args:        []string{"batch", "-f", valid},
			expectError: "precision is required",
		},
		{
			name:        "no workers",
			args:        []string{"batch", "-f", valid, "-p", "5", "-w", "0"},
			expectError: "--workers must be at least 1",
		},
		{
			name:        "missing file",
			args:        []string{"batch", "-f", filepath.Join(t.TempDir(), "missing.csv"), "-p", "5"},
			expectError: "failed to open file",
		},
		{
			name:        "bad latitude",
			content:     "lat,lon\n1,2\nabc,3\n",
			expectError: "line 3: invalid latitude: abc",
		},
		{
			name:        "out of range longitude",
			content:     "lat,lon\n1,-200\n",
			expectError: "line 2: service: failed to encode coordinates: longitude must be >= -180",
		},
		{
			name:        "short record",
			content:     "lat,lon\n1\n",
			expectError: "line 2: invalid record length: 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.content != "" {
				args = []string{"batch", "-f", writeCSVFile(t, tt.content), "-p", "5"}
			}

			_, err := run(t, args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}
