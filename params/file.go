package params

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

/*
覆盖值文件示例，每个指标一组参数，参数可以写单个值，也可以写一个列表（每个叠加实例一项）：

indicators:
  rsi:
    period: [14, 21]
    color: ["#e91e63", "#2196f3"]
  sma:
    period: 20
*/

// File 是覆盖值文件的结构
type File struct {
	Indicators map[string]Overrides `yaml:"indicators"`
}

// ParseOverrides 解析 YAML 格式的覆盖值，返回指标名到覆盖值的映射
func ParseOverrides(data []byte) (map[string]Overrides, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	if file.Indicators == nil {
		file.Indicators = make(map[string]Overrides)
	}
	return file.Indicators, nil
}

// LoadOverrides 从文件读取覆盖值
func LoadOverrides(path string) (map[string]Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}
	return ParseOverrides(data)
}

// ParseAssignment 解析命令行上的一条覆盖值，格式是 指标.参数=值，值按 YAML 解析，
// 所以 `rsi.period=14` 和 `rsi.period=[14,21]` 都可以
func ParseAssignment(assignment string) (indicator, name string, value Value, err error) {
	key, raw, ok := strings.Cut(assignment, "=")
	if !ok {
		return "", "", Value{}, fmt.Errorf("%q: missing '='", assignment)
	}
	indicator, name, ok = strings.Cut(strings.TrimSpace(key), ".")
	if !ok || indicator == "" || name == "" {
		return "", "", Value{}, fmt.Errorf("%q: key must be indicator.parameter", assignment)
	}
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return "", "", Value{}, fmt.Errorf("%q: %w", assignment, err)
	}
	return indicator, name, value, nil
}

// Apply 把一组 指标.参数=值 合并进已有的覆盖值，同一个键后面的覆盖前面的
func Apply(overrides map[string]Overrides, assignments []string) error {
	for _, assignment := range assignments {
		indicator, name, value, err := ParseAssignment(assignment)
		if err != nil {
			return err
		}
		if overrides[indicator] == nil {
			overrides[indicator] = make(Overrides)
		}
		overrides[indicator][name] = value
	}
	return nil
}
