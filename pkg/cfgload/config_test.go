package cfgload_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/cfgload"
)

type serverConfig struct {
	Addr string `json:"addr"`
}

type testConfig struct {
	Name    string            `json:"name"`
	Timeout time.Duration     `json:"timeout"`
	Tags    map[string]string `json:"tags"`
	Server  serverConfig      `json:"server"`
	Ignored string            `json:"-"`
}

func defaultTestConfig() testConfig {
	return testConfig{
		Name:    "default",
		Timeout: 30 * time.Second,
		Tags:    map[string]string{"a": "default"},
		Server:  serverConfig{Addr: ":8080"},
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := cfgload.Load(defaultTestConfig(), cfgload.WithConfigPaths("does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultTestConfig(), *cfg)
}

func TestLoad_RequiredFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "typo.yaml")

	_, err := cfgload.Load(defaultTestConfig(), cfgload.WithConfigPaths(missing), cfgload.WithRequiredFile())
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "typo.yaml")

	path := writeFile(t, "app.yaml", "name: present\n")
	cfg, err := cfgload.Load(defaultTestConfig(), cfgload.WithConfigPaths(path), cfgload.WithRequiredFile())
	require.NoError(t, err)
	assert.Equal(t, "present", cfg.Name)
}

func TestLoad_FileFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name:    "yaml",
			file:    "config.yaml",
			content: "name: from-file\ntimeout: 5s\ntags:\n  b: file\nserver:\n  addr: \":9000\"\n",
		},
		{
			name:    "json",
			file:    "config.json",
			content: `{"name": "from-file", "timeout": "5s", "tags": {"b": "file"}, "server": {"addr": ":9000"}}`,
		},
		{
			name:    "toml",
			file:    "config.toml",
			content: "name = \"from-file\"\ntimeout = \"5s\"\n\n[tags]\nb = \"file\"\n\n[server]\naddr = \":9000\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			cfg, err := cfgload.Load(defaultTestConfig(), cfgload.WithConfigPaths(path))
			require.NoError(t, err)
			assert.Equal(t, "from-file", cfg.Name)
			assert.Equal(t, 5*time.Second, cfg.Timeout)
			assert.Equal(t, ":9000", cfg.Server.Addr)
			assert.Equal(t, map[string]string{"a": "default", "b": "file"}, cfg.Tags)
		})
	}
}

func TestLoad_FirstExistingFileWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "second.yaml"), []byte("name: second\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "third.yaml"), []byte("name: third\n"), 0o600))

	cfg, err := cfgload.Load(defaultTestConfig(),
		cfgload.WithBaseDir(dir),
		cfgload.WithConfigPaths("first.yaml", "second.yaml", "third.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Name)
}

func TestLoad_Expansion(t *testing.T) {
	t.Setenv("CFGLOAD_TEST_NAME", "expanded")
	path := writeFile(t, "config.yaml", "name: ${CFGLOAD_TEST_NAME}\nserver:\n  addr: \"${CFGLOAD_TEST_ADDR:-:7000}\"\n")

	cfg, err := cfgload.Load(defaultTestConfig(), cfgload.WithConfigPaths(path))
	require.NoError(t, err)
	assert.Equal(t, "expanded", cfg.Name)
	assert.Equal(t, ":7000", cfg.Server.Addr)

	raw, err := cfgload.Load(defaultTestConfig(), cfgload.WithConfigPaths(path), cfgload.WithoutExpansion())
	require.NoError(t, err)
	assert.Equal(t, "${CFGLOAD_TEST_NAME}", raw.Name)
}

func TestLoad_ExpansionError(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: ${CFGLOAD_TEST_REQUIRED:?must be set}\n")

	_, err := cfgload.Load(defaultTestConfig(), cfgload.WithConfigPaths(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be set")
}

func TestLoad_InvalidRoot(t *testing.T) {
	path := writeFile(t, "config.yaml", "- a\n- b\n")

	_, err := cfgload.Load(defaultTestConfig(), cfgload.WithConfigPaths(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root must be an object")
}

func TestLoad_EnvPrefix(t *testing.T) {
	t.Setenv("CFGLOAD_TEST_SERVER_ADDR", ":6000")
	t.Setenv("CFGLOAD_TEST_TIMEOUT", "1m")
	t.Setenv("CFGLOAD_TEST_TAGS", "ignored")

	cfg, err := cfgload.Load(defaultTestConfig(),
		cfgload.WithConfigPaths("does-not-exist.yaml"),
		cfgload.WithEnvPrefix("CFGLOAD_TEST_"),
	)
	require.NoError(t, err)
	assert.Equal(t, ":6000", cfg.Server.Addr)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, map[string]string{"a": "default"}, cfg.Tags)
}

func TestLoadCmd_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: from-file\ntags:\n  b: file\n")

	var cfg *testConfig
	cmd := &cli.Command{
		Name: "app",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "server-addr"},
			&cli.DurationFlag{Name: "timeout"},
			&cli.StringMapFlag{Name: "tags"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var err error
			cfg, err = cfgload.LoadCmd(cmd, defaultTestConfig(), "", cfgload.WithConfigPaths(path))

			return err
		},
	}

	err := cmd.Run(context.Background(), []string{"app", "--server-addr", ":1234", "--tags", "b=flag", "--tags", "c=3"})
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "from-file", cfg.Name, "unset flag must not override file")
	assert.Equal(t, ":1234", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, map[string]string{"a": "default", "b": "flag", "c": "3"}, cfg.Tags)
}

func TestLoadValues(t *testing.T) {
	yamlPath := writeFile(t, "ns.yaml", "title: Home\ncrumbs:\n  - index\n  - home\n")
	tomlPath := writeFile(t, "uv.toml", "lang = \"en\"\n")
	jsonPath := writeFile(t, "uv.json", `{"lang": "en", "draft": true}`)

	ns, err := cfgload.LoadValues(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Home", "crumbs": []any{"index", "home"}}, ns)

	uv, err := cfgload.LoadValues(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"lang": "en"}, uv)

	uv, err = cfgload.LoadValues(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"lang": "en", "draft": true}, uv)

	empty, err := cfgload.LoadValues("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = cfgload.LoadValues(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			want := defaultTestConfig()
			want.Tags["usb"] = "Universal Serial Bus"

			require.NoError(t, cfgload.WriteFile(path, want))

			got, err := cfgload.Load(testConfig{}, cfgload.WithConfigPaths(path))
			require.NoError(t, err)
			assert.Equal(t, want, *got)
		})
	}
}

func TestMarshalYAML(t *testing.T) {
	data, err := cfgload.MarshalYAML(defaultTestConfig())
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "name: default")
	assert.Contains(t, out, "timeout: 30s")
	assert.NotContains(t, out, "Ignored")
}

func TestFindProjectRoot(t *testing.T) {
	root, err := cfgload.FindProjectRoot(0)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}

func TestDefaultPaths(t *testing.T) {
	assert.Equal(t, []string{"config.yaml", "config/config.yaml"}, cfgload.DefaultPaths())

	paths := cfgload.DefaultPaths("macroctx")
	assert.Equal(t, ".macroctx.yaml", paths[0])
	assert.Contains(t, paths, "/etc/macroctx/config.yaml")
}
