package cfgload

import (
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"
)

// leaf 是配置结构体中的叶子字段。
type leaf struct {
	key string // 点分 key，如 page.namespace
	typ reflect.Type
}

// flagName 返回 key 对应的 CLI flag 名称：仅将 "." 替换为 "-"。
func (l leaf) flagName() string {
	return strings.ReplaceAll(l.key, ".", "-")
}

// envName 返回 key 对应的环境变量名称：大写，"." 与 "-" 转为 "_"。
func (l leaf) envName(prefix string) string {
	return prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(l.key))
}

// collectLeaves 以 json tag 为准递归收集叶子字段。
func collectLeaves(cfg any) []leaf {
	var leaves []leaf
	collectLeavesRecursive(reflect.TypeOf(cfg), "", &leaves)

	return leaves
}

func collectLeavesRecursive(typ reflect.Type, prefix string, leaves *[]leaf) {
	if typ == nil {
		return
	}
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" || field.PkgPath != "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if isStructType(field.Type) {
			collectLeavesRecursive(field.Type, key, leaves)
			continue
		}
		*leaves = append(*leaves, leaf{key: key, typ: field.Type})
	}
}

// applyEnv 将非空的前缀环境变量写入配置 map。
func applyEnv(config map[string]any, prefix string, leaves []leaf) {
	for _, l := range leaves {
		if l.typ.Kind() == reflect.Map {
			continue
		}

		name := l.envName(prefix)
		if val := os.Getenv(name); val != "" {
			setByPath(config, l.key, val)
			slog.Debug("Loaded env binding", "env", name, "path", l.key)
		}
	}
}

// applyFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// map 类型的 flag 与已有值逐项合并，其余类型直接覆盖。
func applyFlags(cmd *cli.Command, config map[string]any, leaves []leaf) {
	for _, l := range leaves {
		name := l.flagName()
		if !cmd.IsSet(name) {
			continue
		}

		val, ok := readFlag(cmd, name, l.typ)
		if !ok {
			continue
		}

		if m, isMap := val.(map[string]string); isMap {
			dst, _ := getByPath(config, l.key).(map[string]any)
			if dst == nil {
				dst = make(map[string]any, len(m))
				setByPath(config, l.key, dst)
			}
			for k, v := range m {
				dst[k] = v
			}

			continue
		}

		setByPath(config, l.key, val)
	}
}

// readFlag 按字段类型读取 CLI 值。
//
// 支持：string, bool, int, int64, float64, time.Duration, []string, map[string]string。
func readFlag(cmd *cli.Command, name string, typ reflect.Type) (any, bool) {
	if typ == durationType {
		return cmd.Duration(name), true
	}

	switch typ.Kind() {
	case reflect.String:
		return cmd.String(name), true
	case reflect.Bool:
		return cmd.Bool(name), true
	case reflect.Int:
		return cmd.Int(name), true
	case reflect.Int64:
		return cmd.Int64(name), true
	case reflect.Float64:
		return cmd.Float64(name), true
	case reflect.Slice:
		if typ.Elem().Kind() == reflect.String {
			return cmd.StringSlice(name), true
		}
	case reflect.Map:
		if typ.Key().Kind() == reflect.String && typ.Elem().Kind() == reflect.String {
			return cmd.StringMap(name), true
		}
	default:
	}

	return nil, false
}
