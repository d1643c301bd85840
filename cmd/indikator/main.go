package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	ta "github.com/itqwq/indikator/indicator"
	"github.com/itqwq/indikator/feed"
	"github.com/itqwq/indikator/model"
	"github.com/itqwq/indikator/params"
	"github.com/itqwq/indikator/plot"
	"github.com/itqwq/indikator/plot/indicator"
	"github.com/itqwq/indikator/report"
	"github.com/itqwq/indikator/tools/log"
)

// 读取K线和指标的公共选项，compute 和 describe 都用
var sourceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    "eg. ./btc.csv",
		Required: true,
	},
	&cli.StringFlag{
		Name:    "pair",
		Aliases: []string{"p"},
		Usage:   "eg. BTCUSDT",
	},
	&cli.StringSliceFlag{
		Name:     "indicator",
		Aliases:  []string{"n"},
		Usage:    "eg. rsi (repeat for more)",
		Required: true,
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML file with parameter overrides",
	},
	&cli.StringSliceFlag{
		Name:    "set",
		Aliases: []string{"s"},
		Usage:   "eg. rsi.period=[14,21]",
	},
}

// load 读取K线文件和覆盖值，创建命令行里列出的所有指标
func load(c *cli.Context) (*model.Dataframe, []plot.Indicator, error) {
	df, err := feed.LoadCSV(c.String("input"), c.String("pair"))
	if err != nil {
		return nil, nil, err
	}

	overrides := make(map[string]params.Overrides)
	if path := c.String("config"); path != "" {
		if overrides, err = params.LoadOverrides(path); err != nil {
			return nil, nil, err
		}
	}
	if err := params.Apply(overrides, c.StringSlice("set")); err != nil {
		return nil, nil, err
	}

	var indicators []plot.Indicator
	for _, name := range c.StringSlice("indicator") {
		instances, err := indicator.New(name, overrides[name])
		if err != nil {
			return nil, nil, err
		}
		indicators = append(indicators, instances...)
	}

	log.WithFields(log.Fields{
		"candles":    df.Len(),
		"indicators": len(indicators),
	}).Debug("data loaded")
	return df, indicators, nil
}

// formatDefault 单个值直接打印，序列打印成 [a b c]，一眼能看出哪些参数会展开成多个实例
func formatDefault(value params.Value) string {
	if value.IsScalar() {
		return fmt.Sprint(value.Values()[0])
	}
	return fmt.Sprint(value.Values())
}

func main() {
	app := &cli.App{
		Name:     "indikator",
		HelpName: "indikator",
		Usage:    "Technical indicators for OHLCV data",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logs",
			},
		},
		Before: func(c *cli.Context) error {
			log.Setup(os.Stderr, c.Bool("debug"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:     "list",
				HelpName: "list",
				Usage:    "List indicators and their default parameters",
				Action: func(c *cli.Context) error {
					for _, name := range indicator.Names() {
						definition, _ := indicator.Definition(name)
						fmt.Fprintf(c.App.Writer, "%s\n", name)
						for _, spec := range definition.Specs() {
							fmt.Fprintf(c.App.Writer, "  %-12s %s\n", spec.Name, formatDefault(spec.Default))
						}
					}
					return nil
				},
			},
			{
				Name:     "compute",
				HelpName: "compute",
				Usage:    "Compute indicators over a CSV file",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:    "last",
						Aliases: []string{"l"},
						Usage:   "only print the last N candles (0 prints all)",
						Value:   20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "print the plot data as JSON",
					},
				}, sourceFlags...),
				Action: func(c *cli.Context) error {
					df, indicators, err := load(c)
					if err != nil {
						return err
					}

					plotted := plot.Export(df, indicators...)
					if c.Bool("json") {
						encoder := json.NewEncoder(c.App.Writer)
						encoder.SetIndent("", "  ")
						return encoder.Encode(plotted)
					}
					report.Values(c.App.Writer, df, indicators, c.Int("last"))
					return nil
				},
			},
			{
				Name:     "describe",
				HelpName: "describe",
				Usage:    "Distribution of indicator values",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "bins",
						Usage: "histogram bins",
						Value: report.DefaultOptions.Bins,
					},
					&cli.IntFlag{
						Name:  "samples",
						Usage: "bootstrap samples",
						Value: report.DefaultOptions.Samples,
					},
					&cli.Float64Flag{
						Name:  "confidence",
						Usage: "eg. 0.95",
						Value: report.DefaultOptions.Confidence,
					},
				}, sourceFlags...),
				Action: func(c *cli.Context) error {
					df, indicators, err := load(c)
					if err != nil {
						return err
					}

					plot.Export(df, indicators...)
					return report.Describe(c.App.Writer, indicators, report.Options{
						Bins:       c.Int("bins"),
						Samples:    c.Int("samples"),
						Confidence: c.Float64("confidence"),
					})
				},
			},
			{
				Name:     "sine",
				HelpName: "sine",
				Usage:    "Generate a sine wave",
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:    "amplitude",
						Aliases: []string{"a"},
						Value:   1,
					},
					&cli.Float64SliceFlag{
						Name:     "period",
						Aliases:  []string{"t"},
						Usage:    "one value for a constant period, or one value per point",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Usage:   fmt.Sprintf("number of points (default %d)", ta.DefaultSineLength),
					},
				},
				Action: func(c *cli.Context) error {
					periods := c.Float64Slice("period")
					var wave []float64
					if len(periods) == 1 {
						wave = ta.SineWaveConst(c.Float64("amplitude"), periods[0], c.Int("length"))
					} else {
						wave = ta.SineWave(c.Float64("amplitude"), periods, c.Int("length"))
					}
					report.Sine(c.App.Writer, wave)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.CheckErr(log.ErrorLevel, err)
		os.Exit(1)
	}
}
