// Command graphs renders line, bar, scatter and pie charts
// from delimited data strings into SVG (or PNG) files.
//
//	graphs line "1:1,2:4,3:9" --title Squares
//	graphs bar "10,20,15" --png -o revenue.png
//	graphs pie "25,25,50" --open
package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neutron-modules/graphs/chartdata"
	"github.com/neutron-modules/graphs/chartio"
	"github.com/neutron-modules/graphs/chartraster"
	"github.com/neutron-modules/graphs/chartsvg"
)

var (
	logger zerolog.Logger

	title   string
	xlabel  string
	ylabel  string
	width   int
	height  int
	color   string
	noGrid  bool
	output  string
	pngOut  bool
	open    bool
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "graphs",
		Short:         "Render simple SVG charts from delimited data",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).With().Timestamp().Logger()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&title, "title", "", "chart title")
	flags.StringVar(&xlabel, "xlabel", "", "horizontal axis label")
	flags.StringVar(&ylabel, "ylabel", "", "vertical axis label")
	flags.IntVar(&width, "width", 0, "canvas width in pixels")
	flags.IntVar(&height, "height", 0, "canvas height in pixels")
	flags.StringVar(&color, "color", "", "primary data color")
	flags.BoolVar(&noGrid, "no-grid", false, "omit the background grid")
	flags.StringVarP(&output, "output", "o", "", "output file path (default: graph_<type>.svg)")
	flags.BoolVar(&pngOut, "png", false, "rasterize the chart to PNG instead of SVG")
	flags.BoolVar(&open, "open", false, "open the written file in the default viewer")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		chartCommand("line", "Render coordinate pairs as a line chart", chartio.LineFile,
			func(data string, out io.Writer, cfg chartsvg.Config) error {
				return chartsvg.LineChart(out, cfg, chartdata.ParsePoints(data))
			}),
		chartCommand("bar", "Render values or coordinate pairs as a bar chart", chartio.BarFile,
			func(data string, out io.Writer, cfg chartsvg.Config) error {
				return chartsvg.BarChart(out, cfg, barPoints(data))
			}),
		chartCommand("scatter", "Render coordinate pairs as a scatter plot", chartio.ScatterFile,
			func(data string, out io.Writer, cfg chartsvg.Config) error {
				return chartsvg.ScatterPlot(out, cfg, chartdata.ParsePoints(data))
			}),
		chartCommand("pie", "Render values as a pie chart", chartio.PieFile,
			func(data string, out io.Writer, cfg chartsvg.Config) error {
				return chartsvg.PieChart(out, cfg, chartdata.ParseValues(data))
			}),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// barPoints accepts both input grammars of the bar chart.
func barPoints(data string) []chartdata.Point {
	if chartdata.HasPairs(data) {
		return chartdata.ParsePoints(data)
	}
	return chartdata.IndexPoints(chartdata.ParseValues(data))
}

func chartCommand(kind, short, defaultFile string, render func(string, io.Writer, chartsvg.Config) error) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <data>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc bytes.Buffer
			if err := render(args[0], &doc, flagConfig()); err != nil {
				return err
			}
			path := output
			if path == "" {
				path = defaultFile
				if pngOut {
					path = strings.TrimSuffix(path, ".svg") + ".png"
				}
			}
			size := doc.Len()
			if err := writeDocument(path, &doc); err != nil {
				return err
			}
			logger.Debug().Str("file", path).Int("bytes", size).Msg("chart written")
			if open {
				if err := chartio.OpenViewer(path); err != nil {
					logger.Debug().Err(err).Msg("viewer launch failed")
				}
			}
			return nil
		},
	}
}

func writeDocument(path string, doc *bytes.Buffer) error {
	if !pngOut {
		return chartio.WriteFile(path, doc.Bytes())
	}
	var img bytes.Buffer
	if err := chartraster.ToPNG(doc, &img); err != nil {
		return err
	}
	return chartio.WriteFile(path, img.Bytes())
}

func flagConfig() chartsvg.Config {
	cfg := chartsvg.DefaultConfig()
	if title != "" {
		cfg.Title = title
	}
	if xlabel != "" {
		cfg.XLabel = xlabel
	}
	if ylabel != "" {
		cfg.YLabel = ylabel
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if color != "" {
		cfg.Color = color
	}
	if noGrid {
		cfg.ShowGrid = false
	}
	return cfg
}
