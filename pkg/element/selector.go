package element

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

// Selector types
const (
	SelectorCSS   = "css"
	SelectorXPath = "xpath"
)

// Selector locates elements in a document
type Selector struct {
	Type    string `json:"type" yaml:"type"`
	Locator string `json:"locator" yaml:"locator"`
}

func (s Selector) String() string {
	return s.Type + "=" + s.Locator
}

// CSS returns a css selector
func CSS(locator string) Selector {
	return Selector{Type: SelectorCSS, Locator: locator}
}

// XPath returns an xpath selector
func XPath(locator string) Selector {
	return Selector{Type: SelectorXPath, Locator: locator}
}

// Definitions maps element names to selectors
type Definitions map[string]Selector

// ParseDefinitions reads definitions from configuration values. A string
// value is a css locator; a table holds exactly one selector type key.
func ParseDefinitions(raw map[string]interface{}) (Definitions, error) {
	defs := make(Definitions, len(raw))
	for name, value := range raw {
		switch v := value.(type) {
		case string:
			defs[name] = CSS(v)
		case map[string]interface{}:
			if len(v) != 1 {
				return nil, errors.Newf(errors.ErrSelectorInvalid, "element '%s' must declare exactly one selector type", name).
					WithDetail("name", name)
			}
			for typ, locator := range v {
				s, ok := locator.(string)
				if !ok {
					return nil, errors.Newf(errors.ErrSelectorInvalid, "element '%s' locator must be a string", name).
						WithDetail("name", name)
				}
				defs[name] = Selector{Type: typ, Locator: s}
			}
		default:
			return nil, errors.Newf(errors.ErrSelectorInvalid, "element '%s' has unsupported definition %T", name, value).
				WithDetail("name", name)
		}
	}
	return defs, nil
}

// substitute replaces parameter keys in locator, preferring the longest
// key at each position. Replaced text is not scanned again.
func substitute(locator string, params map[string]string) string {
	if len(params) == 0 {
		return locator
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, params[k])
	}
	return strings.NewReplacer(pairs...).Replace(locator)
}

// Locator is a resolved selector ready to run against a document
type Locator struct {
	Selector Selector
	find     func(doc *Document) []*html.Node
}

// FindAll returns every element of doc matched by the locator, in
// document order
func (l Locator) FindAll(doc *Document) []*html.Node {
	return l.find(doc)
}

// Find returns the first matched element of doc, or nil
func (l Locator) Find(doc *Document) *html.Node {
	if found := l.FindAll(doc); len(found) > 0 {
		return found[0]
	}
	return nil
}

func compile(s Selector) (Locator, error) {
	switch s.Type {
	case SelectorXPath:
		path, err := etree.CompilePath(s.Locator)
		if err != nil {
			return Locator{}, errors.Wrapf(err, errors.ErrSelectorInvalid, "invalid xpath %q", s.Locator).
				WithDetail("selector", s.String())
		}
		return Locator{Selector: s, find: func(doc *Document) []*html.Node {
			matched := doc.tree.FindElementsPath(path)
			nodes := make([]*html.Node, 0, len(matched))
			for _, el := range matched {
				if n, ok := doc.nodes[el]; ok {
					nodes = append(nodes, n)
				}
			}
			return nodes
		}}, nil
	case SelectorCSS, "":
		s.Type = SelectorCSS
		sel, err := cascadia.Compile(s.Locator)
		if err != nil {
			return Locator{}, errors.Wrapf(err, errors.ErrSelectorInvalid, "invalid css selector %q", s.Locator).
				WithDetail("selector", s.String())
		}
		return Locator{Selector: s, find: func(doc *Document) []*html.Node {
			return sel.MatchAll(doc.root)
		}}, nil
	default:
		return Locator{}, errors.Newf(errors.ErrSelectorInvalid, "unsupported selector type '%s'", s.Type).
			WithDetail("selector", s.String())
	}
}
