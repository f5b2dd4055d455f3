package cfgload

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260119-go-pkg-macroctx/pkg/templexp"
)

// ErrProjectRootNotFound 表示调用方源码所在目录向上找不到 go.mod。
var ErrProjectRootNotFound = errors.New("cfgload: project root not found")

// DefaultPaths 返回默认配置文件的搜索顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		paths = append(paths, "."+name+".yaml")
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// FindProjectRoot 从调用方源文件所在目录向上查找 go.mod。
//
// skip 含义同 runtime.Caller：0 表示 FindProjectRoot 的直接调用方。
func FindProjectRoot(skip int) (string, error) {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", ErrProjectRootNotFound
	}

	dir := filepath.Dir(file)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrProjectRootNotFound
		}
		dir = parent
	}
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义；map 字段逐层合并而不是整体替换。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	return load(defaultConfig, 2, opts...)
}

// LoadCmd 是 [Load] 的 CLI 便捷版本，注入 [WithCommand]，appName 非空时注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	base := []Option{WithCommand(cmd)}
	if appName != "" {
		base = append(base, WithAppName(appName))
	}

	return load(defaultConfig, 2, append(base, opts...)...)
}

// load 是内部加载实现，callerSkip 为相对 load 的调用栈层数。
func load[T any](defaultConfig T, callerSkip int, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if !o.baseDirSet {
		if root, err := FindProjectRoot(callerSkip); err == nil {
			o.baseDir = root
		}
	}
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths(o.appName)
	}

	configMap := structToMap(defaultConfig)

	// 配置文件：按顺序搜索，命中首个即停止
	fileMap, path, err := o.readFirstFile()
	if err != nil {
		return nil, err
	}
	if fileMap != nil {
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path, "expansion", !o.noExpansion)
	} else {
		slog.Debug("No config file found, using defaults", "paths", len(o.configPaths))
	}

	if o.envPrefix != "" {
		applyEnv(configMap, o.envPrefix, collectLeaves(defaultConfig))
	}

	if o.cmd != nil {
		applyFlags(o.cmd, configMap, collectLeaves(defaultConfig))
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// readFirstFile 返回首个可读配置文件的内容；全部不存在时返回 (nil, "", nil)。
//
// 设置 [WithRequiredFile] 时首个路径读取失败即返回错误。
func (o *options) readFirstFile() (map[string]any, string, error) {
	for _, p := range o.configPaths {
		if o.baseDir != "" && !filepath.IsAbs(p) {
			p = filepath.Join(o.baseDir, p)
		}

		content, err := os.ReadFile(p) //nolint:gosec // path is from trusted config
		if err != nil {
			if o.requireFile {
				return nil, "", fmt.Errorf("read config file %s: %w", p, err)
			}

			continue
		}

		if !o.noExpansion {
			expanded, expandErr := templexp.ExpandEnv(string(content))
			if expandErr != nil {
				return nil, "", fmt.Errorf("expand %s: %w", p, expandErr)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(p, content)
		if err != nil {
			return nil, "", fmt.Errorf("parse config file %s: %w", p, err)
		}

		return fileMap, p, nil
	}

	return nil, "", nil
}

// LoadValues 读取 YAML/JSON/TOML 文件为映射，用于页面 namespace / uservalues。
//
// 不做 ${...} 展开；path 为空时返回空映射。
func LoadValues(path string) (map[string]any, error) {
	if path == "" {
		return map[string]any{}, nil
	}

	content, err := os.ReadFile(path) //nolint:gosec // path is user supplied on purpose
	if err != nil {
		return nil, fmt.Errorf("read values %s: %w", path, err)
	}

	values, err := parseConfigBytes(path, content)
	if err != nil {
		return nil, fmt.Errorf("parse values %s: %w", path, err)
	}

	return values, nil
}
