// Package params 负责把指标定义里声明的参数和调用方的覆盖值合并起来，
// 并且让同一个定义下叠加的多个指标实例各自按位置取到自己的参数。
package params

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"

	"github.com/itqwq/indikator/tools/log"
)

// ErrDuplicateParam 同一个定义里出现了重名的参数
var ErrDuplicateParam = errors.New("duplicate parameter")

// Spec 声明一个参数的名字和默认值
type Spec struct {
	Name    string
	Default Value
}

// Definition 是一个指标的参数定义，参数按声明顺序排列，名字不能重复
type Definition struct {
	Name  string
	specs []Spec
}

// NewDefinition 创建参数定义，有重名参数时返回 ErrDuplicateParam
func NewDefinition(name string, specs ...Spec) (*Definition, error) {
	seen := make(map[string]struct{}, len(specs))
	for _, spec := range specs {
		if _, ok := seen[spec.Name]; ok {
			return nil, fmt.Errorf("%s: %w: %s", name, ErrDuplicateParam, spec.Name)
		}
		seen[spec.Name] = struct{}{}
	}

	def := &Definition{Name: name, specs: make([]Spec, len(specs))}
	copy(def.specs, specs)
	return def, nil
}

// MustDefinition 和 NewDefinition 一样，出错时 panic，用在包级别的定义上
func MustDefinition(name string, specs ...Spec) *Definition {
	def, err := NewDefinition(name, specs...)
	if err != nil {
		panic(err)
	}
	return def
}

// Specs 按声明顺序返回参数
func (d *Definition) Specs() []Spec {
	out := make([]Spec, len(d.specs))
	copy(out, d.specs)
	return out
}

// Overrides 是调用方传进来的覆盖值，键是参数名
type Overrides map[string]Value

// Resolved 是合并以后的参数，只包含定义里声明过的键
type Resolved struct {
	order      []string
	values     map[string]Value
	overridden map[string]bool
}

// Resolve 合并参数：定义里的每个参数，有覆盖值就用覆盖值，没有就用默认值。
// 定义里没有的键会被忽略，定义决定有哪些键
func Resolve(def *Definition, overrides Overrides) Resolved {
	resolved := Resolved{
		values:     make(map[string]Value, len(def.specs)),
		overridden: make(map[string]bool, len(overrides)),
	}
	for _, spec := range def.specs {
		value := spec.Default
		if override, ok := overrides[spec.Name]; ok {
			value = override
			resolved.overridden[spec.Name] = true
		}
		resolved.order = append(resolved.order, spec.Name)
		resolved.values[spec.Name] = value
	}

	for key := range overrides {
		if _, ok := resolved.values[key]; !ok {
			log.WithField("indicator", def.Name).Debugf("ignoring unknown parameter %q", key)
		}
	}
	return resolved
}

// Names 按定义的顺序返回参数名
func (r Resolved) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Value 返回某个参数合并以后的值
func (r Resolved) Value(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Instances 返回叠加实例的数量，也就是覆盖值里最长的那个序列的长度，至少是1。
// 默认值不参与计数，默认值写成序列（比如一组调色板颜色）只是给每个实例备好各自的值
func (r Resolved) Instances() int {
	count := 1
	for name := range r.overridden {
		if n := r.values[name].Len(); n > count {
			count = n
		}
	}
	return count
}

// Float 返回第 instance 个实例的数值参数，参数不存在时返回 NaN
func (r Resolved) Float(name string, instance int) float64 {
	v, ok := r.values[name]
	if !ok {
		return math.NaN()
	}
	return Pick(v.Floats(), instance)
}

// Int 返回第 instance 个实例的整数参数（四舍五入），参数不存在或不是数字时返回0
func (r Resolved) Int(name string, instance int) int {
	f := r.Float(name, instance)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(math.Round(f))
}

// String 返回第 instance 个实例的字符串参数，比如颜色
func (r Resolved) String(name string, instance int) string {
	v, ok := r.values[name]
	if !ok {
		return ""
	}
	item, ok := pickItem(v.items, instance)
	if !ok {
		return ""
	}
	return cast.ToString(item)
}

// ResolveNumericArray 取出某个参数的数值序列：单个值变成只有一项的序列，
// 没有覆盖值时用 fallback，每一项都转成数字（转不了的是 NaN）
func ResolveNumericArray(overrides Overrides, name string, fallback []float64) []float64 {
	if v, ok := overrides[name]; ok {
		return v.Floats()
	}
	out := make([]float64, len(fallback))
	copy(out, fallback)
	return out
}

// Pick 返回序列里第 instance 个值，没有这一项时返回最后一个值。
// 这样 N 个叠加实例可以共用一个参数序列，值比实例少的时候后面的实例都用最后一个值。
// 空序列返回 NaN
func Pick(seq []float64, instance int) float64 {
	v, ok := pickItem(seq, instance)
	if !ok {
		return math.NaN()
	}
	return v
}

// pickItem 是 Pick 的泛型实现，空序列时 ok 为 false
func pickItem[T any](seq []T, instance int) (item T, ok bool) {
	if len(seq) == 0 {
		return item, false
	}
	if instance >= 0 && instance < len(seq) {
		return seq[instance], true
	}
	return seq[len(seq)-1], true
}
