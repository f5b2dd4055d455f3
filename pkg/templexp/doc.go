// Package templexp 提供字符串的 Shell 参数展开。
//
// 该包仅处理 ${...} 语法，用于配置文件中的环境变量引用，
// 以及预览引用 namespace 的 uservalues。不执行命令、不引入模板引擎。
//
// # 设计参考
//
//   - Bash 参数展开: https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
//
// # 语义说明
//
//  1. 仅做字符串层面的替换（不解析 $VAR）
//  2. 支持嵌套展开与 "$$" 字面量
//  3. ":=" 赋值仅作用于当前展开过程，不会写回变量来源
//  4. 无法识别的表达式保持原样
//
// # 变量来源
//
//   - [Expand] - 显式传入的 map[string]string
//   - [ExpandEnv] - 当前环境变量快照
//   - [ExpandValues] - 页面映射（map[string]any），值经 fmt.Sprint 转为字符串
//
// # 快速开始
//
//	content := `title: "${SITE_TITLE:-My Site}"`
//	expanded, err := templexp.ExpandEnv(content)
//
//	footer, err := templexp.ExpandValues(`${title} (${lang:-en})`, namespace)
package templexp
