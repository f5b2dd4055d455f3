package acronyms_test

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command"
	"github.com/lwmacct/260119-go-pkg-macroctx/internal/command/acronyms"
	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/macros"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(logger)
		macros.SetAcronyms(macros.DefaultAcronyms())
	})

	var out bytes.Buffer
	root := &cli.Command{
		Name:      command.AppName,
		Flags:     command.GlobalFlags(),
		Commands:  []*cli.Command{acronyms.NewCommand()},
		Writer:    &out,
		ErrWriter: io.Discard,
	}
	err := root.Run(context.Background(), append([]string{command.AppName}, args...))

	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "macroctx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestList_Defaults(t *testing.T) {
	out, err := run(t, "--config", writeConfig(t, "{}\n"), "acronyms", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "YAGNI: You Aint Gonna Need It")
	assert.Contains(t, out, "usb: Universal Serial Bus")
	assert.Less(t, strings.Index(out, "YAGNI"), strings.Index(out, "usb"))
}

func TestList_MissingConfigFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "typo.yaml")

	out, err := run(t, "--config", missing, "acronyms", "list")
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, out)
}

func TestList_ConfigAndFlags(t *testing.T) {
	cfg := writeConfig(t, "acronyms:\n  table:\n    rss: Really Simple Syndication\n    usb: USB\n")

	out, err := run(t, "--config", cfg, "-A", "css=Cascading Style Sheets", "acronyms", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "rss: Really Simple Syndication")
	assert.Contains(t, out, "css: Cascading Style Sheets")
	assert.Contains(t, out, "usb: USB")
	assert.Contains(t, out, "YAGNI: You Aint Gonna Need It")
}

func TestLookup(t *testing.T) {
	cfg := writeConfig(t, "acronyms:\n  table:\n    rss: Really Simple Syndication\n")

	tests := []struct {
		name    string
		term    string
		want    string
		wantErr error
	}{
		{name: "default entry", term: "usb", want: "Universal Serial Bus\n"},
		{name: "uppercase term", term: "USB", want: "Universal Serial Bus\n"},
		{name: "configured entry", term: "rss", want: "Really Simple Syndication\n"},
		{name: "missing", term: "html", wantErr: macros.ErrUnknownAcronym},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "--config", cfg, "acronyms", "lookup", tt.term)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, out)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestLookup_MissingArgument(t *testing.T) {
	_, err := run(t, "acronyms", "lookup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing <term>")
}
