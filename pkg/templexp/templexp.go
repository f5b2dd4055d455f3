package templexp

import (
	"fmt"
	"maps"
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 变量来源
// ═══════════════════════════════════════════════════════════════════════════

// environVars 生成当前环境变量快照。
func environVars() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok {
			vars[name] = value
		}
	}

	return vars
}

// stringifyValues 将页面映射转换为字符串变量，nil 值视为未设置。
func stringifyValues(values map[string]any) map[string]string {
	vars := make(map[string]string, len(values))
	for name, value := range values {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			vars[name] = v
		default:
			vars[name] = fmt.Sprint(v)
		}
	}

	return vars
}

// ═══════════════════════════════════════════════════════════════════════════
// 表达式解析
// ═══════════════════════════════════════════════════════════════════════════

// param 是 ${...} 内部解析后的表达式。
type param struct {
	name string
	op   string // "", "-", ":-", "+", ":+", "?", ":?", "=", ":="
	word string
}

// colon 表示操作符是否带冒号（将空值视为未设置）。
func (p param) colon() bool {
	return strings.HasPrefix(p.op, ":")
}

func isNameStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

func parseParam(expr string) (param, bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return param{}, false
	}

	end := 1
	for end < len(expr) && isNameChar(expr[end]) {
		end++
	}
	p := param{name: expr[:end]}
	rest := expr[end:]
	if rest == "" {
		return p, true
	}

	opLen := 1
	if rest[0] == ':' {
		opLen = 2
	}
	if len(rest) < opLen || !strings.ContainsRune("-+?=", rune(rest[opLen-1])) {
		return param{}, false
	}
	p.op, p.word = rest[:opLen], rest[opLen:]

	return p, true
}

// closingBrace 返回与 start 之前的 "${" 匹配的 "}" 位置，不存在时返回 -1。
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}

	return -1
}

// ═══════════════════════════════════════════════════════════════════════════
// 展开
// ═══════════════════════════════════════════════════════════════════════════

// expander 持有单次展开的变量表，":=" 只写入这份数据。
type expander struct {
	vars map[string]string
}

func (e *expander) word(word string) (string, error) {
	if !strings.Contains(word, "${") {
		return word, nil
	}

	return e.text(word)
}

// eval 计算单个表达式；ok 为 false 表示无法识别，调用方保留原文。
func (e *expander) eval(expr string) (out string, ok bool, err error) {
	p, ok := parseParam(expr)
	if !ok {
		return "", false, nil
	}

	val, set := e.vars[p.name]
	// unset 按操作符语义判断：带冒号时空值同样视为未设置
	unset := !set || (p.colon() && val == "")

	switch strings.TrimPrefix(p.op, ":") {
	case "":
		return val, true, nil
	case "-":
		if unset {
			out, err = e.word(p.word)
			return out, err == nil, err
		}
		return val, true, nil
	case "+":
		if unset {
			return "", true, nil
		}
		out, err = e.word(p.word)
		return out, err == nil, err
	case "?":
		if unset {
			if p.word == "" {
				return "", false, fmt.Errorf("templexp: %s: parameter null or not set", p.name)
			}
			return "", false, fmt.Errorf("templexp: %s: %s", p.name, p.word)
		}
		return val, true, nil
	case "=":
		if unset {
			out, err = e.word(p.word)
			if err != nil {
				return "", false, err
			}
			e.vars[p.name] = out
			return out, true, nil
		}
		return val, true, nil
	}

	return "", false, nil
}

func (e *expander) text(text string) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' || i+1 >= len(text) {
			buf.WriteByte(text[i])
			i++
			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2
			continue
		case '{':
		default:
			buf.WriteByte('$')
			i++
			continue
		}

		end := closingBrace(text, i+2)
		if end == -1 {
			buf.WriteByte('$')
			i++
			continue
		}

		out, ok, err := e.eval(text[i+2 : end])
		if err != nil {
			return "", err
		}
		if ok {
			buf.WriteString(out)
		} else {
			buf.WriteString(text[i : end+1])
		}
		i = end + 1
	}

	return buf.String(), nil
}

// Expand 以 vars 为变量来源执行 Shell 参数展开。
//
// 支持语法：
//   - ${VAR} - 变量替换，未设置时为空
//   - ${VAR:-default} / ${VAR-default} - fallback
//   - ${VAR:+alt} / ${VAR+alt} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - ${VAR:=default} / ${VAR=default} - 赋值（仅作用于本次展开）
//   - $$ - 字面量 $
//
// vars 不会被修改。仅在必填校验失败时返回 error。
func Expand(text string, vars map[string]string) (string, error) {
	e := &expander{vars: maps.Clone(vars)}
	if e.vars == nil {
		e.vars = map[string]string{}
	}

	return e.text(text)
}

// ExpandEnv 以当前环境变量为变量来源执行展开，用于配置文件。
func ExpandEnv(text string) (string, error) {
	e := &expander{vars: environVars()}
	return e.text(text)
}

// ExpandValues 以页面映射为变量来源执行展开。
//
// 非字符串值经 fmt.Sprint 转换，nil 值视为未设置。
func ExpandValues(text string, values map[string]any) (string, error) {
	e := &expander{vars: stringifyValues(values)}
	return e.text(text)
}
