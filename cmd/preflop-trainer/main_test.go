package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/preflop-trainer/internal/config"
)

func TestCheckRange(t *testing.T) {
	tests := []struct {
		name    string
		cmd     CheckRangeCmd
		want    []string
		wantErr string
	}{
		{
			name: "in range",
			cmd:  CheckRangeCmd{RangeStr: "TT+,AKs:0.5", HandStr: "AKs"},
			want: []string{"Hand", "AKs", "is in range with frequency: 50.00%"},
		},
		{
			name: "expanded pair",
			cmd:  CheckRangeCmd{RangeStr: "TT+", HandStr: "QQ"},
			want: []string{"is in range with frequency: 100.00%"},
		},
		{
			name: "not in range",
			cmd:  CheckRangeCmd{RangeStr: "TT+", HandStr: "99"},
			want: []string{"99", "NOT", "in range."},
		},
		{
			name: "expand",
			cmd:  CheckRangeCmd{RangeStr: "QQ+", HandStr: "KAs", Expand: true},
			want: []string{"Range (3 classes):", "QQ,KK,AA", "AKs", "NOT"},
		},
		{
			name:    "bad range",
			cmd:     CheckRangeCmd{RangeStr: "AK", HandStr: "AKs"},
			wantErr: "error parsing range string",
		},
		{
			name:    "bad hand",
			cmd:     CheckRangeCmd{RangeStr: "AA", HandStr: "AX"},
			wantErr: "error parsing hand string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := tt.cmd.run(&out, log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestCheckRangeDebugLogging(t *testing.T) {
	var out, logs bytes.Buffer
	cmd := CheckRangeCmd{RangeStr: "QQ+,AKs:0.5", HandStr: "AKs"}
	require.NoError(t, cmd.run(&out, log.NewWithOptions(&logs, log.Options{Level: log.DebugLevel})))

	assert.Contains(t, logs.String(), "Parsed range")
	assert.Contains(t, logs.String(), "classes=4")
	assert.NotContains(t, out.String(), "Parsed range", "logs stay off stdout")
}

func TestValidateFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "ranges.toml")
	require.NoError(t, os.WriteFile(good, config.ExampleRanges, 0o644))

	narrow := filepath.Join(dir, "narrow.hcl")
	require.NoError(t, os.WriteFile(narrow, []byte(`
open "BTN" {
  range = "22+"
}
allowed_spot_types = ["Open_BTN"]
`), 0o644))

	empty := filepath.Join(dir, "empty.toml")
	require.NoError(t, os.WriteFile(empty, []byte("[generic]\nallowed_spot_types = []\n"), 0o644))

	loader := config.NewLoader(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}))
	files := []string{good, narrow, empty}
	strategies, err := loadAll(context.Background(), loader, files)
	require.NoError(t, err)
	require.Len(t, strategies, 3)

	var out bytes.Buffer
	printValidation(&out, files, strategies)
	assert.Contains(t, out.String(), good)
	assert.Contains(t, out.String(), "BBDefense_SB")
	assert.Contains(t, out.String(), "Open_BTN          13 classes")
	assert.Contains(t, out.String(), "no situations enabled")
}

func TestValidateFailure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[unopened_raise.UTG]\nrange = \"AK\"\n"), 0o644))

	loader := config.NewLoader(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}))
	_, err := loadAll(context.Background(), loader, []string{bad})
	assert.ErrorContains(t, err, "bad.toml")
}
