package params

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Value 是一个参数值，要么是单个值（scalar），要么是按位置排列的一组值（sequence），
// 一组值里每一项对应一个叠加在图上的指标实例。
// 不管是哪种，内部都统一存成一个序列，单个值就是长度为1的序列
type Value struct {
	items  []any
	scalar bool
}

// Scalar 创建一个单值参数
func Scalar(v any) Value {
	return Value{items: []any{v}, scalar: true}
}

// Sequence 创建一个按实例位置排列的参数
func Sequence(vs ...any) Value {
	items := make([]any, len(vs))
	copy(items, vs)
	return Value{items: items}
}

// Floats 是 Sequence 的 float64 便捷写法
func Floats(vs ...float64) Value {
	items := make([]any, len(vs))
	for i, v := range vs {
		items[i] = v
	}
	return Value{items: items}
}

// IsScalar 返回这个值是否是单值写法
func (v Value) IsScalar() bool {
	return v.scalar
}

// Len 返回序列的长度，单值是1
func (v Value) Len() int {
	return len(v.items)
}

// Values 返回规范化以后的序列，调用方拿到的是副本
func (v Value) Values() []any {
	out := make([]any, len(v.items))
	copy(out, v.items)
	return out
}

// Floats 把每一项都转成 float64，转不了的项是 NaN
func (v Value) Floats() []float64 {
	out := make([]float64, len(v.items))
	for i, item := range v.items {
		out[i] = toFloat(item)
	}
	return out
}

// toFloat 把任意值转成 float64，失败时返回 NaN
func toFloat(item any) float64 {
	f, err := cast.ToFloat64E(item)
	if err != nil {
		return math.NaN()
	}
	return f
}

// UnmarshalYAML 让配置文件里同一个键既可以写 `period: 14`，也可以写 `period: [14, 21]`
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var item any
		if err := node.Decode(&item); err != nil {
			return err
		}
		*v = Scalar(item)
	case yaml.SequenceNode:
		var items []any
		if err := node.Decode(&items); err != nil {
			return err
		}
		*v = Sequence(items...)
	default:
		return fmt.Errorf("line %d: parameter must be a scalar or a list", node.Line)
	}
	return nil
}

// MarshalYAML 按原来的写法输出，单值不会变成列表
func (v Value) MarshalYAML() (any, error) {
	if v.scalar && len(v.items) == 1 {
		return v.items[0], nil
	}
	return v.items, nil
}
