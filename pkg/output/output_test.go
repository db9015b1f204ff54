package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/registry"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testCatalog(t *testing.T) CatalogView {
	t.Helper()
	table, err := registry.Build([]registry.TaggedHandler[string]{
		registry.Tag("b.fixed", "fixed_discount", "Fixed discount", "fixed"),
		registry.Tag("a.percentage", "percentage_discount", "Percentage discount", "percentage"),
		registry.Tag("c.percentage", "percentage_discount", "Percentage off", "percentage_v2"),
	})
	require.NoError(t, err)
	return NewCatalogView(table, func(h string) string { return h })
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"term", FormatTerminal},
		{"TEXT", FormatText},
		{"plain", FormatText},
		{"json", FormatJSON},
		{"yml", FormatYAML},
		{"toml", FormatTOML},
		{"md", FormatMarkdown},
		{"markdown", FormatMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputFormat))
}

func TestFormat_String(t *testing.T) {
	for _, name := range FormatNames() {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	assert.Equal(t, "unknown", Format(99).String())
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
}

func TestNewRenderer_ResolvesFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, FormatText, NewRenderer(&buf, FormatAuto, false).Format())
	assert.Equal(t, FormatText, NewRenderer(&buf, FormatTerminal, true).Format())
	assert.Equal(t, FormatJSON, NewRenderer(&buf, FormatJSON, true).Format())
}

func TestNewCatalogView(t *testing.T) {
	view := testCatalog(t)

	require.Len(t, view.Actions, 2)
	assert.Equal(t, ActionRow{Type: "fixed_discount", Label: "Fixed discount", Handler: "fixed", Provider: "b.fixed"}, view.Actions[0])
	assert.Equal(t, ActionRow{Type: "percentage_discount", Label: "Percentage off", Handler: "percentage_v2", Provider: "c.percentage"}, view.Actions[1])

	require.Len(t, view.Overrides, 1)
	assert.Equal(t, "a.percentage", view.Overrides[0].PreviousID)
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatText, true)
	require.NoError(t, r.Render(testCatalog(t)))

	out := buf.String()
	assert.Contains(t, out, "Promotion actions")
	assert.Contains(t, out, "fixed_discount")
	assert.Contains(t, out, "Percentage off")
	assert.Contains(t, out, "Overrides")
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_TextEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatText, true).Render(CatalogView{}))
	assert.Contains(t, buf.String(), "No actions registered")
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatJSON, true).Render(testCatalog(t)))

	var doc struct {
		Actions []struct {
			Type  string `json:"type"`
			Label string `json:"label"`
		} `json:"actions"`
		Overrides []map[string]string `json:"overrides"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Actions, 2)
	assert.Equal(t, "Fixed discount", doc.Actions[0].Label)
	assert.Equal(t, "c.percentage", doc.Overrides[0]["id"])
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatYAML, true).Render(PriceView{
		Source:          "product.xhtml",
		CrossedOutPrice: "$20.00",
		NewPrice:        "$15.00",
	}))

	var doc map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "$20.00", doc["crossed_out_price"])
	assert.Equal(t, "$15.00", doc["new_price"])
}

func TestRender_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatTOML, true).Render(testCatalog(t)))
	assert.Contains(t, buf.String(), "[[actions]]")

	var doc CatalogView
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Actions, 2)
	assert.Equal(t, "percentage_discount", doc.Actions[1].Type)
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatMarkdown, true).Render(ActionView{
		Type:        "fixed_discount",
		Label:       "Fixed discount",
		Handler:     "fixed_discount",
		Provider:    "catalogpromo.action.fixed_discount",
		Description: "Takes a fixed amount | per channel",
	}))

	out := buf.String()
	assert.Contains(t, out, "## Fixed discount")
	assert.Contains(t, out, "| FIELD | VALUE |")
	assert.Contains(t, out, "| --- | --- |")
	assert.Contains(t, out, `fixed amount \| per channel`)
}

func TestRender_CheckView(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatText, true)
	require.NoError(t, r.Render(CheckView{
		Type:          "percentage_discount",
		Configuration: map[string]interface{}{"percentage": 1.5},
		Error:         "percentage must be at most 1",
	}))
	assert.Contains(t, buf.String(), "Configuration is invalid: percentage must be at most 1")

	buf.Reset()
	require.NoError(t, r.Render(CheckView{Type: "fixed_discount", Valid: true}))
	assert.Contains(t, buf.String(), "Configuration is valid")
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrActionNotFound, "no action registered for type 'bogus'").
		WithDetail("type", "bogus")

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatJSON, true).RenderError(err))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "ACTION_NOT_FOUND", doc["code"])
	assert.Equal(t, map[string]interface{}{"type": "bogus"}, doc["details"])

	buf.Reset()
	require.NoError(t, NewRenderer(&buf, FormatText, true).RenderError(err))
	assert.Equal(t, "Error: "+err.Error()+"\n", buf.String())
}

func TestRenderMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, FormatYAML, true).RenderMessage("done"))
	assert.Equal(t, "message: done\n", buf.String())
}

func TestLoadStyles(t *testing.T) {
	styles := DefaultStyles()
	for _, name := range []string{"Title", "Success", "Error", "Warning"} {
		_, ok := styles[name]
		assert.True(t, ok, "style %s should exist", name)
	}

	_, err := LoadStyles([]byte("colors: ["))
	assert.Error(t, err)

	assert.Equal(t, "plain", styles.Get("Missing").Render("plain"))
}
