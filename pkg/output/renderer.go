package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/logging"
	"github.com/charmbracelet/glamour"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Renderer writes views to an io.Writer in a single format
type Renderer struct {
	writer  io.Writer
	format  Format
	noColor bool
	styles  Styles
}

// NewRenderer creates a renderer for w. FormatAuto is resolved against w
// when it is a file and falls back to text otherwise. noColor downgrades
// term output to text and disables glamour styling.
func NewRenderer(w io.Writer, format Format, noColor bool) *Renderer {
	if format == FormatAuto {
		format = FormatText
		if file, ok := w.(*os.File); ok {
			format = DetectFormat(file)
		}
	}
	if noColor && format == FormatTerminal {
		format = FormatText
	}

	logger := logging.GetLogger("output")
	logger.Debug().
		Str("format", format.String()).
		Bool("noColor", noColor).
		Msg("Creating renderer")

	return &Renderer{
		writer:  w,
		format:  format,
		noColor: noColor,
		styles:  DefaultStyles(),
	}
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes v in the renderer's format
func (r *Renderer) Render(v View) error {
	switch r.format {
	case FormatJSON, FormatYAML, FormatTOML:
		return r.encode(v)
	case FormatMarkdown:
		return r.write(r.markdown(v.Sections()))
	case FormatTerminal, FormatText:
		out, err := r.text(v.Sections())
		if err != nil {
			return err
		}
		return r.write(out)
	default:
		return errors.Newf(errors.ErrOutputFormat, "unsupported format: %s", r.format)
	}
}

// RenderError writes err, including its code and details for structured formats
func (r *Renderer) RenderError(err error) error {
	if r.format.Structured() {
		doc := map[string]interface{}{
			"error": err.Error(),
			"code":  string(errors.GetErrorCode(err)),
		}
		if details := errors.GetErrorDetails(err); len(details) > 0 {
			doc["details"] = details
		}
		return r.encode(doc)
	}
	if r.format == FormatMarkdown {
		return r.write(r.markdownString(fmt.Sprintf("**Error:** %s\n", err.Error())))
	}
	return r.write(r.style("Error", "Error:") + " " + err.Error())
}

// RenderMessage writes a plain message
func (r *Renderer) RenderMessage(msg string) error {
	if r.format.Structured() {
		return r.encode(map[string]string{"message": msg})
	}
	return r.write(msg)
}

func (r *Renderer) encode(v interface{}) error {
	var err error
	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.writer)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(v)
	case FormatYAML:
		encoder := yaml.NewEncoder(r.writer)
		encoder.SetIndent(2)
		if err = encoder.Encode(v); err == nil {
			err = encoder.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(r.writer).Encode(v)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputFormat, "failed to encode %s output", r.format)
	}
	return nil
}

func (r *Renderer) write(s string) error {
	_, err := fmt.Fprintln(r.writer, strings.TrimRight(s, "\n"))
	return err
}

// style applies the named style in term format only
func (r *Renderer) style(name, s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return r.styles.Get(name).Render(s)
}

func (r *Renderer) text(sections []Section) (string, error) {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if s.Title != "" {
			b.WriteString(r.style("Title", s.Title))
			b.WriteString("\n")
		}
		if len(s.Header) > 0 {
			data := pterm.TableData{s.Header}
			data = append(data, s.Rows...)
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return "", errors.Wrap(err, errors.ErrOutputFormat, "failed to render table")
			}
			if r.format == FormatText {
				table = pterm.RemoveColorFromString(table)
			}
			b.WriteString(table)
			b.WriteString("\n")
		}
		for _, line := range s.Lines {
			b.WriteString(r.statusLine(s.Status, line))
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func (r *Renderer) statusLine(status, line string) string {
	switch status {
	case "success":
		return r.style("Success", line)
	case "warning":
		return r.style("Warning", line)
	case "error":
		return r.style("Error", line)
	default:
		return line
	}
}

func (r *Renderer) markdown(sections []Section) string {
	var b strings.Builder
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if s.Title != "" {
			fmt.Fprintf(&b, "## %s\n\n", s.Title)
		}
		if len(s.Header) > 0 {
			writeMarkdownRow(&b, s.Header)
			sep := make([]string, len(s.Header))
			for j := range sep {
				sep[j] = "---"
			}
			writeMarkdownRow(&b, sep)
			for _, row := range s.Rows {
				writeMarkdownRow(&b, row)
			}
			b.WriteString("\n")
		}
		for _, line := range s.Lines {
			fmt.Fprintf(&b, "%s\n", line)
		}
	}
	return r.markdownString(b.String())
}

// markdownString styles md through glamour unless color is disabled.
// Rendering failures fall back to the raw markdown.
func (r *Renderer) markdownString(md string) string {
	if r.noColor {
		return md
	}
	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(escaped, " | "))
}
