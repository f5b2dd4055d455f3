package cfgload

import "github.com/urfave/cli/v3"

// options 配置加载选项。
type options struct {
	appName     string // 应用名称，用于生成默认配置路径
	cmd         *cli.Command
	configPaths []string
	baseDir     string // 相对路径的解析基准
	baseDirSet  bool   // 区分显式设置的空字符串与未设置
	envPrefix   string
	noExpansion bool // 禁用配置文件的 ${...} 展开（默认启用）
	requireFile bool // 配置文件必须存在
}

// Option 配置加载选项函数。
type Option func(*options)

// WithCommand 绑定 CLI 命令，显式设置的 flags 覆盖配置（最高优先级）。
func WithCommand(cmd *cli.Command) Option {
	return func(o *options) {
		o.cmd = cmd
	}
}

// WithAppName 设置应用名称，用于生成默认搜索路径（见 [DefaultPaths]）。
func WithAppName(name string) Option {
	return func(o *options) {
		o.appName = name
	}
}

// WithConfigPaths 设置配置文件搜索路径。
//
// 按顺序查找，命中首个文件即停止；空字符串会被忽略。
func WithConfigPaths(paths ...string) Option {
	return func(o *options) {
		for _, p := range paths {
			if p != "" {
				o.configPaths = append(o.configPaths, p)
			}
		}
	}
}

// WithRequiredFile 要求 [WithConfigPaths] 中的首个路径必须可读，否则 Load 返回错误。
//
// 用于用户显式指定的配置文件；默认搜索路径不受影响。
func WithRequiredFile() Option {
	return func(o *options) {
		o.requireFile = true
	}
}

// WithBaseDir 设置相对路径的解析基准。
//
// 默认基准为项目根目录（go.mod 所在目录）；空字符串表示当前工作目录。
func WithBaseDir(path string) Option {
	return func(o *options) {
		o.baseDir = path
		o.baseDirSet = true
	}
}

// WithEnvPrefix 启用环境变量前缀解析。
//
// 示例 (前缀为 "MACROCTX_")：
//   - MACROCTX_LOG_LEVEL → log.level
//   - MACROCTX_PAGE_NAMESPACE → page.namespace
//
// map 类型的 key（如 acronyms.table）不参与环境变量绑定。
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutExpansion 禁用配置文件的 ${...} 展开，保留原始字符串。
func WithoutExpansion() Option {
	return func(o *options) {
		o.noExpansion = true
	}
}
