package cfgload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	yamlv3 "go.yaml.in/yaml/v3"
)

// MarshalYAML 按 json tag 将配置渲染为 YAML，key 有序，time.Duration 输出为 "30s" 形式。
func MarshalYAML(cfg any) ([]byte, error) {
	data, err := yamlv3.Marshal(displayValue(structToMap(cfg)))
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return data, nil
}

// MarshalJSON 按 json tag 将配置渲染为缩进 JSON。
func MarshalJSON(cfg any) ([]byte, error) {
	data, err := json.MarshalIndent(displayValue(structToMap(cfg)), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}

	return append(data, '\n'), nil
}

// WriteFile 原子写入配置文件，按扩展名选择 JSON 或 YAML。
//
// 写入通过临时文件 + rename 完成，失败时不会留下半写的文件。
func WriteFile(path string, cfg any) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = MarshalJSON(cfg)
	} else {
		data, err = MarshalYAML(cfg)
	}
	if err != nil {
		return err
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	return nil
}

func displayValue(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = displayValue(v)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = displayValue(v)
		}
		return out
	case time.Duration:
		return typed.String()
	default:
		return val
	}
}
