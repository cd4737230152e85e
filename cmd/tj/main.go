// Package main provides the CLI entry point for tj.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/tj-go/pkg/tj"
	"github.com/ukaji3/tj-go/pkg/tj/graph"
	"github.com/ukaji3/tj-go/pkg/tj/table"
)

// envPrefix prefixes the environment variable of every flag, e.g. TJ_GRAPH_HEIGHT.
const envPrefix = "TJ"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "tj [file]",
		Short: "Print JSON as a colorized table or a terminal graph",
		Long: `tj reads JSON (a document, an array of objects, or a stream of
concatenated values) from a file or stdin and prints it as an aligned,
colorized table, or plots its numeric columns as a line graph.

Every flag can also be set with a TJ_ environment variable, for example
TJ_GRAPH_HEIGHT=30.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP("boolean", "b", tj.DefaultBooleanColor, "Boolean color")
	flags.String("false", "", "Color of false (default: boolean color)")
	flags.StringP("negative", "z", tj.DefaultNegativeColor, "Negative number color")
	flags.StringP("number", "n", "", "Number color")
	flags.StringP("unixtime", "u", tj.DefaultUnixTimeColor, "Unix time color (empty disables conversion)")
	flags.StringP("msunixtime", "v", tj.DefaultMsUnixTimeColor, "Millisecond unix time color (empty disables conversion)")
	flags.StringP("even", "e", tj.DefaultEvenColor, "Even line background color")
	flags.StringP("odd", "o", tj.DefaultOddColor, "Odd line background color")
	flags.String("header", tj.DefaultHeaderColor, "Header background color")
	flags.String("unixstart", tj.DefaultUnixStart, "Earliest date shown as unix time")
	flags.String("unixend", tj.DefaultUnixEnd, "Latest date shown as unix time")
	flags.IntSliceP("columns", "c", nil, "Columns to show, 1-based, in order (e.g. 3,1)")
	flags.String("mode", string(tj.ModeTable), "Output mode: table, graph, xy")
	flags.Bool("graph", false, "Plot numeric columns as a line graph (same as --mode graph)")
	flags.Bool("xy", false, "Plot the first two numeric columns as x and y (same as --mode xy)")
	flags.Int("width", 0, "Terminal width (default: detected, or 80)")
	flags.Int("graph-height", graph.GraphRows, "Graph height in rows")
	flags.Int("xy-height", graph.XYRows, "XY graph height in rows")
	flags.String("xlsx", "", "Read records from an xlsx file instead of JSON")
	flags.String("sheet", "", "Worksheet of --xlsx (default: first sheet)")
	flags.Bool("verbose", false, "Log debug output to stderr")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return rootCmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))

	opts, err := loadOptions(cmd, v)
	if err != nil {
		return err
	}
	opts.Logger = logger

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && opts.XLSXPath == "" {
		f, err := os.Open(args[0])
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", tj.ErrFileNotFound, args[0])
		}
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out, err := tj.Render(in, opts)
	if err != nil {
		level.Error(logger).Log("msg", "render failed", "err", err)
		return err
	}

	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// loadOptions builds render options from flags, falling back to TJ_
// environment variables and then to flag defaults.
func loadOptions(cmd *cobra.Command, v *viper.Viper) (tj.Options, error) {
	opts := tj.DefaultOptions()

	mode, err := tj.ParseMode(v.GetString("mode"))
	if err != nil {
		return opts, err
	}

	graphMode, xyMode := v.GetBool("graph"), v.GetBool("xy")
	switch {
	case graphMode && xyMode:
		return opts, fmt.Errorf("--graph and --xy cannot be used together")
	case graphMode && mode != tj.ModeTable && mode != tj.ModeGraph,
		xyMode && mode != tj.ModeTable && mode != tj.ModeXY:
		return opts, fmt.Errorf("--graph and --xy cannot be used together with --mode %s", mode)
	case graphMode:
		mode = tj.ModeGraph
	case xyMode:
		mode = tj.ModeXY
	}
	opts.Mode = mode

	start, err := table.ParseDate(v.GetString("unixstart"))
	if err != nil {
		return opts, fmt.Errorf("unixstart: %w", err)
	}
	end, err := table.ParseDate(v.GetString("unixend"))
	if err != nil {
		return opts, fmt.Errorf("unixend: %w", err)
	}

	opts.Table = table.Options{
		Boolean:    v.GetString("boolean"),
		False:      v.GetString("false"),
		Negative:   v.GetString("negative"),
		Number:     v.GetString("number"),
		UnixTime:   v.GetString("unixtime"),
		MsUnixTime: v.GetString("msunixtime"),
		Even:       v.GetString("even"),
		Odd:        v.GetString("odd"),
		Header:     v.GetString("header"),
		UnixStart:  start,
		UnixEnd:    end,
	}

	opts.Columns, err = columns(cmd, v)
	if err != nil {
		return opts, err
	}

	opts.Width = v.GetInt("width")
	opts.GraphHeight = v.GetInt("graph-height")
	opts.XYHeight = v.GetInt("xy-height")
	opts.XLSXPath = v.GetString("xlsx")
	opts.Sheet = v.GetString("sheet")
	return opts, nil
}

// columns returns the --columns flag, or TJ_COLUMNS as a comma or space
// separated list when the flag is not set.
func columns(cmd *cobra.Command, v *viper.Viper) ([]int, error) {
	if cmd.Flags().Changed("columns") {
		return cmd.Flags().GetIntSlice("columns")
	}

	fields := strings.FieldsFunc(v.GetString("columns"), func(r rune) bool {
		return r == ',' || r == ' '
	})
	result := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid column %q: %w", f, err)
		}
		result = append(result, n)
	}
	return result, nil
}

func newLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}
