// Package cfgload 提供分层的配置加载。
//
// 支持 YAML/JSON/TOML，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，三种格式共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// map 字段（例如缩写表）在各层之间逐项合并：配置文件中的条目扩展默认值，
// CLI 的 key=value 再覆盖同名条目。
//
// # 快速开始
//
//	cfg, err := cfgload.LoadCmd(cmd, config.DefaultConfig(), "macroctx",
//	    cfgload.WithEnvPrefix("MACROCTX_"),
//	)
//
// # 配置文件
//
// 扩展名决定解析器：.json → JSON，.toml → TOML，其余 → YAML。
// 解析前执行 ${...} 展开（见 templexp 包），可用 [WithoutExpansion] 禁用：
//
//	# .macroctx.yaml
//	acronyms:
//	  table:
//	    rss: "Really Simple Syndication"
//	page:
//	  uservalues: "${SITE_DIR:-.}/uservalues.yaml"
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - page.namespace → --page-namespace
//   - acronyms.table → --acronyms-table
//
// # 输出
//
// [MarshalYAML] / [MarshalJSON] 渲染当前配置，[WriteFile] 原子写入文件。
// [LoadValues] 复用同一套解析器读取任意映射文件。
package cfgload
