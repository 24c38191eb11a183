package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/kaw393939/qrgen/internal/adapters/config"
	"github.com/kaw393939/qrgen/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty working directory with no overrides set
func inTempDir(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		config.KeyDirectory, config.KeyFillColor, config.KeyBackColor, config.KeyLogoPath,
		config.KeyDebug, config.KeyLogToFile, config.KeyLogsDir, config.KeyTimeZone,
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(func() { logger.Log = nil })

	wd := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(wd))
	t.Setenv("PWD", wd)
	t.Cleanup(func() { _ = os.Chdir(old) })
	return wd
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		env    map[string]string
		want   int
		stderr bool
	}{
		{name: "help", args: []string{"--help"}, want: 0},
		{name: "unknown flag", args: []string{"--nope"}, want: 2, stderr: true},
		{name: "missing flag value", args: []string{"--url"}, want: 2, stderr: true},
		{name: "bad time zone", env: map[string]string{config.KeyTimeZone: "Not/AZone"}, want: 1, stderr: true},
		{name: "invalid url still exits 0", args: []string{"--url", "not-a-url"}, want: 0},
		{name: "render failure still exits 0", env: map[string]string{config.KeyFillColor: "not-a-color"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var stderr bytes.Buffer
			assert.Equal(t, tt.want, run(tt.args, &stderr))
			if tt.stderr {
				assert.Contains(t, stderr.String(), "error:")
			} else {
				assert.Empty(t, stderr.String())
			}
		})
	}
}

func TestRunWritesQRCode(t *testing.T) {
	wd := inTempDir(t)

	var stderr bytes.Buffer
	require.Equal(t, 0, run(nil, &stderr))

	entries, err := os.ReadDir(filepath.Join(wd, "qr_codes"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, regexp.MustCompile(`^QRCode_\d{14}\.png$`), entries[0].Name())
}
