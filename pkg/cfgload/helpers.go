package cfgload

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// errRootNotObject 表示文件顶层不是对象。
var errRootNotObject = errors.New("root must be an object")

func configTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType && typ != timeType
}

// ═══════════════════════════════════════════════════════════════════════════
// 结构体 → map
// ═══════════════════════════════════════════════════════════════════════════

func structToMap(cfg any) map[string]any {
	out, _ := toAny(reflect.ValueOf(cfg)).(map[string]any)
	if out == nil {
		return map[string]any{}
	}

	return out
}

// toAny 将反射值转换为 map/slice/标量组成的通用结构，结构体按 json tag 展开。
func toAny(val reflect.Value) any {
	if !val.IsValid() {
		return nil
	}
	if val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil
		}
		return toAny(val.Elem())
	}

	switch {
	case isStructType(val.Type()):
		typ := val.Type()
		out := make(map[string]any, typ.NumField())
		for i := range typ.NumField() {
			field := typ.Field(i)
			key := configTagName(field)
			if key == "" || field.PkgPath != "" {
				continue
			}
			out[key] = toAny(val.Field(i))
		}
		return out
	case val.Kind() == reflect.Slice:
		if val.IsNil() {
			return nil
		}
		out := make([]any, val.Len())
		for i := range val.Len() {
			out[i] = toAny(val.Index(i))
		}
		return out
	case val.Kind() == reflect.Map:
		if val.IsNil() {
			return nil
		}
		out := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = toAny(iter.Value())
		}
		return out
	default:
		return val.Interface()
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 文件解析
// ═══════════════════════════════════════════════════════════════════════════

// parseConfigBytes 按扩展名选择解析器：.json → JSON，.toml → TOML，其余 → YAML。
func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(content, &raw)
	case ".toml":
		var doc map[string]any
		err = toml.Unmarshal(content, &doc)
		raw = doc
	default:
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	switch normalized := normalizeMapKeys(raw).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return normalized, nil
	default:
		return nil, errRootNotObject
	}
}

// normalizeMapKeys 将 map[any]any 统一为 map[string]any。
func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		if typed == nil {
			return nil
		}
		for key, value := range typed {
			typed[key] = normalizeMapKeys(value)
		}
		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprint(key)] = normalizeMapKeys(value)
		}
		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}
		return typed
	default:
		return val
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// map 操作
// ═══════════════════════════════════════════════════════════════════════════

// mergeMaps 将 src 递归合并到 dst，嵌套 map 逐项合并。
func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMaps(dstMap, srcMap)
			continue
		}

		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

func getByPath(src map[string]any, path string) any {
	var current any = src
	for part := range strings.SplitSeq(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[part]
	}

	return current
}

func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
