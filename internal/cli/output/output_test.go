package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/edudash/pkg/core"
)

func sampleTable() *core.ResultTable {
	return &core.ResultTable{
		Columns: []string{"country", "adult_literacy"},
		Rows: [][]any{
			{"Norland", 99.0},
			{"Chad, Republic of", nil},
		},
	}
}

func TestMode(t *testing.T) {
	assert.Equal(t, ModeJSON, Mode("json"))
	assert.Equal(t, ModeMarkdown, Mode("markdown"))
	assert.Equal(t, ModeAuto, Mode(""))
	assert.Equal(t, ModeAuto, Mode("xml"))
}

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{ModeJSON, true, ModeJSON},
		{ModeText, false, ModeText},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_PlainWrites(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Header(1, "Countries")
	r.KeyValue("Store", "mysql://localhost:3306/Global_literacy")
	r.Success("done")
	r.Error("boom")

	assert.Equal(t, "COUNTRIES\nStore: mysql://localhost:3306/Global_literacy\ndone\n", out.String())
	assert.Equal(t, "boom\n", errOut.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "## Gallery", FormatHeader(2, "Gallery"))
	assert.Equal(t, "# x", FormatHeader(0, "x"))
	assert.Equal(t, "**Rows:** 5", FormatKeyValue("Rows", "5"))
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"table", []string{"COUNTRY", "Norland", "99", "NULL"}},
		{"md", []string{"| country | adult_literacy |", "| Norland | 99 |"}},
		{"csv", []string{"country,adult_literacy", `"Chad, Republic of",NULL`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, RenderTable(&buf, sampleTable(), tt.format))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestRenderTable_JSONKeepsNulls(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleTable(), "json"))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Norland", got[0]["country"])
	assert.Nil(t, got[1]["adult_literacy"])
}

func TestRenderTable_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, sampleTable(), "yaml"))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, 99.0, got[0]["adult_literacy"])
	assert.True(t, strings.HasPrefix(buf.String(), "- "))
}

func TestRenderTable_UnknownFormat(t *testing.T) {
	err := RenderTable(&bytes.Buffer{}, sampleTable(), "xml")
	assert.EqualError(t, err, `unknown format "xml"`)
}

func TestRenderer_StatusLine(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeText)

	r.StatusLine("literacy_rates", "success", "12 rows")
	r.StatusLine("gdp_schooling", "skipped", "")
	r.StatusLine("illiteracy_population", "failed", "bad year")

	assert.Equal(t, "✓ literacy_rates  12 rows\n- gdp_schooling\n✗ illiteracy_population  bad year\n", out.String())
}

func TestNewStyles_NoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyles(&buf, false)

	assert.Equal(t, "boom", s.Error.Render("boom"))
	assert.Equal(t, "Chad", s.Header.Render("Chad"))
}
