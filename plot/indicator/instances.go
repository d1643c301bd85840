package indicator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
)

// ErrUnknownIndicator 没有这个名字的指标
var ErrUnknownIndicator = errors.New("unknown indicator")

// palette 是叠加实例默认的颜色，第 i 个实例用第 i 个颜色，超出时用最后一个
var palette = params.Sequence("#2196f3", "#e91e63", "#4caf50", "#ff9800", "#9c27b0")

// builder 用合并好的参数创建第 instance 个实例
type builder func(resolved params.Resolved, instance int) plot.Indicator

type factory struct {
	definition *params.Definition
	build      builder
}

// registry 指标名到定义和构造函数的映射，名字都是小写
var registry = map[string]factory{
	"sma":        {smaDefinition, buildSMA},
	"ema":        {emaDefinition, buildEMA},
	"wma":        {wmaDefinition, buildWMA},
	"linreg":     {linregDefinition, buildLinReg},
	"rsi":        {rsiDefinition, buildRSI},
	"stoch":      {stochDefinition, buildStoch},
	"atr":        {atrDefinition, buildATR},
	"vwma":       {vwmaDefinition, buildVWMA},
	"macd":       {macdDefinition, buildMACD},
	"supertrend": {supertrendDefinition, buildSuperTrend},
	"bb":         {bbDefinition, buildBollingerBands},
	"cci":        {cciDefinition, buildCCI},
	"obv":        {obvDefinition, buildOBV},
	"willr":      {willrDefinition, buildWillR},
}

// Names 返回所有可用指标的名字，按字母排序
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// Definition 返回某个指标的参数定义
func Definition(name string) (*params.Definition, bool) {
	f, ok := registry[name]
	if !ok {
		return nil, false
	}
	return f.definition, true
}

// New 按名字创建指标。同一个定义加上覆盖值会展开成多个叠加的实例：
// 覆盖值里最长的序列有几项就有几个实例，每个实例按自己的位置取参数，不够的用最后一个值
func New(name string, overrides params.Overrides) ([]plot.Indicator, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndicator, name)
	}

	resolved := params.Resolve(f.definition, overrides)
	return lo.Times(resolved.Instances(), func(instance int) plot.Indicator {
		return f.build(resolved, instance)
	}), nil
}
