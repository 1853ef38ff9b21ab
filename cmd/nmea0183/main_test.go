package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nmea0183/internal/app"
)

const (
	hdtLine = "$GPHDT,75.5664,T*36"
	vtgLine = "$GNVTG,134.395,T,134.395,M,0.019,N,0.035,K,A*33"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, "", "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: "+app.Version)
}

func TestEncodeCommand(t *testing.T) {
	out, err := execute(t, "", "encode", "GPHDT,75.5664,T", "$GNVTG,134.395,T,134.395,M,0.019,N,0.035,K,A")
	require.NoError(t, err)
	assert.Equal(t, hdtLine+"\n"+vtgLine+"\n", out)

	_, err = execute(t, "", "encode")
	assert.Error(t, err)
}

func TestChecksumCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		errMsg   string
	}{
		{
			name:     "valid",
			args:     []string{hdtLine},
			expected: hdtLine + ": ok\n",
		},
		{
			name:     "mismatch",
			args:     []string{hdtLine, "$GPHDT,75.5664,T*37"},
			expected: "$GPHDT,75.5664,T*37: mismatch, computed 36, stated 37\n",
			errMsg:   "1 of 2 sentences failed verification",
		},
		{
			name:     "malformed",
			args:     []string{"$GPHDT,75.5664,T"},
			expected: "malformed",
			errMsg:   "1 of 1 sentences failed verification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", append([]string{"checksum"}, tt.args...)...)
			assert.Contains(t, out, tt.expected)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestDecodeCommand(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		out, err := execute(t, "", "decode", hdtLine, "$GPHDT,75.5664,T*37")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "GPHDT heading=75.5664°T", lines[0])
		assert.Contains(t, lines[1], "checksum mismatch")
		assert.Contains(t, lines[1], "computed 36, stated 37")
	})

	t.Run("stdin", func(t *testing.T) {
		stdin := hdtLine + "\r\n" + "$GPTXT,01,01,02,hello*2F\r\n" + vtgLine + "\r\n"
		out, err := execute(t, stdin, "decode")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "GPHDT heading=75.5664°T", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "ignored "))
		assert.Equal(t, "GNVTG track=134.395°T speed=0.019kn/0.035km/h", lines[2])
	})
}

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "nmea0183.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
source:
  kind: serial
  device: /dev/ttyS1
  baud: 9600
capture:
  dir: /srv/capture
`), 0644))

	tests := []struct {
		name   string
		args   []string
		check  func(t *testing.T, c app.Config)
		errMsg string
	}{
		{
			name:  "defaults",
			args:  nil,
			check: func(t *testing.T, c app.Config) {
				assert.Equal(t, app.DefaultConfig().Source, c.Source)
				assert.False(t, c.Verbose)
			},
		},
		{
			name:  "file values",
			args:  []string{"--config", configPath},
			check: func(t *testing.T, c app.Config) {
				assert.Equal(t, "/dev/ttyS1", c.Source.Device)
				assert.Equal(t, 9600, c.Source.Baud)
				assert.Equal(t, "/srv/capture", c.Capture.Dir)
			},
		},
		{
			name:  "flags override file",
			args:  []string{"-c", configPath, "-b", "38400", "--capture", "-l", dir, "-v"},
			check: func(t *testing.T, c app.Config) {
				assert.Equal(t, "/dev/ttyS1", c.Source.Device)
				assert.Equal(t, 38400, c.Source.Baud)
				assert.True(t, c.Capture.Enable)
				assert.Equal(t, dir, c.Capture.Dir)
				assert.True(t, c.Verbose)
			},
		},
		{
			name:  "path implies file source",
			args:  []string{"--path", "track.nmea"},
			check: func(t *testing.T, c app.Config) {
				assert.Equal(t, "file", c.Source.Kind)
				assert.Equal(t, "track.nmea", c.Source.Path)
			},
		},
		{
			name:  "address implies tcp source",
			args:  []string{"-a", "localhost:10110"},
			check: func(t *testing.T, c app.Config) {
				assert.Equal(t, "tcp", c.Source.Kind)
				assert.Equal(t, "localhost:10110", c.Source.Address)
			},
		},
		{
			name:   "explicit source wins",
			args:   []string{"--source", "TCP", "--path", "track.nmea"},
			errMsg: "source.address is required",
		},
		{
			name:   "missing config file",
			args:   []string{"--config", filepath.Join(dir, "absent.yaml")},
			errMsg: "absent.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{Use: "nmea0183"}
			var f flags
			addRootFlags(cmd, &f)
			require.NoError(t, cmd.ParseFlags(tt.args))

			config, err := resolveConfig(cmd, f)
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
				return
			}
			require.NoError(t, err)
			tt.check(t, config)
		})
	}
}
