package output

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/catalogpromo/pkg/registry"
)

// Section is one titled block of a view: an optional table followed by
// free lines
type Section struct {
	Title  string
	Header []string
	Rows   [][]string
	Lines  []string
	// Status selects the style of Lines: success, warning, error or empty
	Status string
}

// View is a renderable result
type View interface {
	Sections() []Section
}

// ActionRow is one line of the label table
type ActionRow struct {
	Type     string `json:"type" yaml:"type" toml:"type"`
	Label    string `json:"label" yaml:"label" toml:"label"`
	Handler  string `json:"handler" yaml:"handler" toml:"handler"`
	Provider string `json:"provider" yaml:"provider" toml:"provider"`
}

// CatalogView lists the registered action types with their labels
type CatalogView struct {
	Actions   []ActionRow         `json:"actions" yaml:"actions" toml:"actions"`
	Overrides []registry.Override `json:"overrides,omitempty" yaml:"overrides,omitempty" toml:"overrides,omitempty"`
}

// NewCatalogView builds the view of table in lexical type order.
// handlerName names the handler of each row.
func NewCatalogView[H any](table *registry.Table[H], handlerName func(H) string) CatalogView {
	view := CatalogView{
		Actions:   make([]ActionRow, 0, table.Len()),
		Overrides: table.Overrides(),
	}
	for _, typ := range table.SortedTypes() {
		row := ActionRow{Type: typ}
		row.Label, _ = table.Label(typ)
		row.Provider, _ = table.Provider(typ)
		if h, err := table.Lookup(typ); err == nil && handlerName != nil {
			row.Handler = handlerName(h)
		}
		view.Actions = append(view.Actions, row)
	}
	return view
}

func (v CatalogView) Sections() []Section {
	actions := Section{
		Title:  "Promotion actions",
		Header: []string{"TYPE", "LABEL", "HANDLER", "PROVIDER"},
	}
	for _, a := range v.Actions {
		actions.Rows = append(actions.Rows, []string{a.Type, a.Label, a.Handler, a.Provider})
	}
	if len(v.Actions) == 0 {
		actions.Header = nil
		actions.Lines = []string{"No actions registered"}
		actions.Status = "warning"
	}

	sections := []Section{actions}
	if len(v.Overrides) > 0 {
		sections = append(sections, overridesSection(v.Overrides))
	}
	return sections
}

func overridesSection(overrides []registry.Override) Section {
	s := Section{
		Title:  "Overrides",
		Header: []string{"TYPE", "REPLACED", "BY"},
	}
	for _, o := range overrides {
		s.Rows = append(s.Rows, []string{o.Type, o.PreviousID, o.ID})
	}
	return s
}

// ActionView describes a single registered action
type ActionView struct {
	Type        string `json:"type" yaml:"type" toml:"type"`
	Label       string `json:"label" yaml:"label" toml:"label"`
	Handler     string `json:"handler" yaml:"handler" toml:"handler"`
	Provider    string `json:"provider" yaml:"provider" toml:"provider"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

func (v ActionView) Sections() []Section {
	return []Section{{
		Title:  v.Label,
		Header: []string{"FIELD", "VALUE"},
		Rows: [][]string{
			{"type", v.Type},
			{"handler", v.Handler},
			{"provider", v.Provider},
			{"description", v.Description},
		},
	}}
}

// CheckView reports the outcome of validating an action configuration
type CheckView struct {
	Type          string                 `json:"type" yaml:"type" toml:"type"`
	Configuration map[string]interface{} `json:"configuration" yaml:"configuration" toml:"configuration"`
	Valid         bool                   `json:"valid" yaml:"valid" toml:"valid"`
	Error         string                 `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

func (v CheckView) Sections() []Section {
	s := Section{Title: fmt.Sprintf("Configuration check: %s", v.Type)}
	if len(v.Configuration) > 0 {
		s.Header = []string{"KEY", "VALUE"}
		keys := make([]string, 0, len(v.Configuration))
		for k := range v.Configuration {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			s.Rows = append(s.Rows, []string{k, fmt.Sprint(v.Configuration[k])})
		}
	}
	if v.Valid {
		s.Lines = []string{"Configuration is valid"}
		s.Status = "success"
	} else {
		s.Lines = []string{"Configuration is invalid: " + v.Error}
		s.Status = "error"
	}
	return []Section{s}
}

// ValidateView summarizes a successful catalog build
type ValidateView struct {
	Actions   int                 `json:"actions" yaml:"actions" toml:"actions"`
	Strict    bool                `json:"strict" yaml:"strict" toml:"strict"`
	Overrides []registry.Override `json:"overrides,omitempty" yaml:"overrides,omitempty" toml:"overrides,omitempty"`
}

func (v ValidateView) Sections() []Section {
	summary := Section{
		Title:  "Catalog",
		Lines:  []string{fmt.Sprintf("%d action(s) registered", v.Actions)},
		Status: "success",
	}
	if len(v.Overrides) > 0 {
		summary.Lines = append(summary.Lines, fmt.Sprintf("%d type(s) overridden by later providers", len(v.Overrides)))
		summary.Status = "warning"
		return []Section{summary, overridesSection(v.Overrides)}
	}
	return []Section{summary}
}

// PriceView holds the prices read from a product page
type PriceView struct {
	Source          string `json:"source" yaml:"source" toml:"source"`
	CrossedOutPrice string `json:"crossed_out_price" yaml:"crossed_out_price" toml:"crossed_out_price"`
	NewPrice        string `json:"new_price" yaml:"new_price" toml:"new_price"`
}

func (v PriceView) Sections() []Section {
	return []Section{{
		Title:  v.Source,
		Header: []string{"ELEMENT", "TEXT"},
		Rows: [][]string{
			{"crossed_out_price", v.CrossedOutPrice},
			{"new_price", v.NewPrice},
		},
	}}
}
