package tj

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/tj-go/pkg/tj/graph"
	"github.com/ukaji3/tj-go/pkg/tj/parser"
	"github.com/xuri/excelize/v2"
)

var escapes = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plainLines(s string) []string {
	return strings.Split(escapes.ReplaceAllString(s, ""), "\n")
}

func plainOptions(mode Mode) Options {
	opts := DefaultOptions()
	opts.Mode = mode
	opts.Width = 60
	return opts
}

func TestRenderTable(t *testing.T) {
	out, err := Render(strings.NewReader(`[{"a":1,"b":"x"},{"a":-2}]`), plainOptions(ModeTable))
	require.NoError(t, err)

	assert.Equal(t, []string{
		" a  ｜ b ",
		" 1  ｜ x ",
		" -2 ｜   ",
	}, plainLines(out))
}

func TestRenderTableSelectColumns(t *testing.T) {
	opts := plainOptions(ModeTable)
	opts.Columns = []int{2, 1, 5}

	out, err := Render(strings.NewReader(`{"a":1,"b":"x"}`), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{
		" b ｜ a ｜  ",
		" x ｜ 1 ｜  ",
	}, plainLines(out))
}

func TestRenderTableEmptyInput(t *testing.T) {
	out, err := Render(strings.NewReader(""), plainOptions(ModeTable))
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderGraph(t *testing.T) {
	input := "{\"t\":\"a\",\"v\":1}\n{\"t\":\"b\",\"v\":2}\n{\"t\":\"c\",\"v\":3}\n{\"t\":\"d\",\"v\":2}\n{\"t\":\"e\",\"v\":1}\n"

	out, err := Render(strings.NewReader(input), plainOptions(ModeGraph))
	require.NoError(t, err)

	expected, err := graph.DrawGraph([][]float64{{1, 2, 3, 2, 1}}, []string{"v"}, 60)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
	assert.Len(t, strings.Split(out, "\n"), graph.GraphRows+2)
}

func TestRenderGraphHeight(t *testing.T) {
	opts := plainOptions(ModeGraph)
	opts.GraphHeight = 8

	out, err := Render(strings.NewReader(`{"a":1,"b":5} {"a":2,"b":4} {"a":3,"b":3}`), opts)
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[9], "\x1b[38;5;8ma")
	assert.Contains(t, lines[9], "\x1b[38;5;9mb")
}

func TestRenderXY(t *testing.T) {
	opts := plainOptions(ModeXY)

	out, err := Render(strings.NewReader(`[{"name":"p","x":0,"y":0,"z":7},{"name":"q","x":1,"y":1,"z":8},{"name":"r","x":2,"y":0,"z":9}]`), opts)
	require.NoError(t, err)

	expected, err := graph.DrawXYWith(
		[][2]float64{{0, 0}, {1, 1}, {2, 0}},
		[]string{"x", "y"},
		graph.DrawOptions{Columns: 60, Rows: graph.XYRows},
	)
	require.NoError(t, err)
	assert.Equal(t, expected, out)
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mode  Mode
		err   error
	}{
		{"graph without numbers", `{"a":"x"}`, ModeGraph, ErrEmptyInput},
		{"xy with one number", `{"a":1,"b":"x"} {"a":2,"b":"y"}`, ModeXY, ErrEmptyInput},
		{"flat graph", `{"a":1} {"a":1}`, ModeGraph, graph.ErrDegenerateRange},
		{"invalid json", `{"a":`, ModeTable, parser.ErrInvalidJSON},
		{"invalid mode", `{"a":1}`, Mode("pie"), ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(strings.NewReader(tt.input), plainOptions(tt.mode))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)

			var re *RenderError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.mode, re.Mode)
		})
	}
}

func TestRenderXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "k"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "n"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "one"))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", 1))

	path := filepath.Join(t.TempDir(), "in.xlsx")
	require.NoError(t, f.SaveAs(path))

	opts := plainOptions(ModeTable)
	opts.XLSXPath = path
	out, err := Render(nil, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{" k   ｜ n ", " one ｜ 1 "}, plainLines(out))
}

func TestRenderXLSXNotFound(t *testing.T) {
	opts := plainOptions(ModeTable)
	opts.XLSXPath = filepath.Join(t.TempDir(), "missing.xlsx")

	_, err := Render(nil, opts)
	assert.True(t, errors.Is(err, ErrFileNotFound), "got %v", err)
}

func TestRenderLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	opts := plainOptions(ModeGraph)
	opts.Logger = log.NewLogfmtLogger(&buf)

	_, err := Render(strings.NewReader(`[{"v":1},{"v":2}]`), opts)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="decoded input" records=2 columns=1`)
	assert.Contains(t, buf.String(), `msg="drawing graph" series=1 columns=60 rows=19`)
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"table", "graph", "xy"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	_, err := ParseMode("bar")
	assert.True(t, errors.Is(err, ErrInvalidMode))
}

func TestColumnsOfNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, graph.DefaultColumns, columnsOf(int(f.Fd())))
}
