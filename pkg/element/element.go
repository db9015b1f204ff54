package element

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/arthur-debert/catalogpromo/pkg/logging"
	"golang.org/x/net/html"
)

// Element is the base page object. It resolves named element
// definitions against the document of its session.
type Element struct {
	session     Session
	definitions Definitions
	parameters  map[string]string

	mu       sync.Mutex
	document *Document
}

// New creates a page object over session. parameters are free-form
// values the page object can read back with Parameter.
func New(session Session, definitions Definitions, parameters map[string]string) *Element {
	if definitions == nil {
		definitions = Definitions{}
	}
	return &Element{
		session:     session,
		definitions: definitions,
		parameters:  parameters,
	}
}

// Session returns the session the element reads documents from
func (e *Element) Session() Session {
	return e.session
}

// Parameter returns a constructor parameter, or "" when unset
func (e *Element) Parameter(name string) string {
	return e.parameters[name]
}

// DefinedElements returns the element names in lexical order
func (e *Element) DefinedElements() []string {
	names := make([]string, 0, len(e.definitions))
	for name := range e.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Document returns the session document, read once and cached
func (e *Element) Document() (*Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.document == nil {
		doc, err := e.session.Document()
		if err != nil {
			return nil, err
		}
		e.document = doc
	}
	return e.document, nil
}

// ResolveLocator substitutes params into the selector defined for name
// and compiles it
func (e *Element) ResolveLocator(name string, params map[string]string) (Locator, error) {
	def, ok := e.definitions[name]
	if !ok {
		defined := e.DefinedElements()
		return Locator{}, errors.Newf(errors.ErrElementUndefined,
			"element named %q is not defined, the defined ones are: %s", name, strings.Join(defined, ", ")).
			WithDetails(map[string]interface{}{"name": name, "defined": defined})
	}
	return compile(Selector{Type: def.Type, Locator: substitute(def.Locator, params)})
}

// GetElement returns the first node matching the element named name
func (e *Element) GetElement(name string, params map[string]string) (*html.Node, error) {
	locator, err := e.ResolveLocator(name, params)
	if err != nil {
		return nil, err
	}
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}

	node := locator.Find(doc)
	if node == nil {
		logger := logging.GetLogger("element")
		logger.Debug().
			Str("name", name).
			Str("selector", locator.Selector.String()).
			Msg("Element not found")
		return nil, errors.Newf(errors.ErrElementNotFound, "element named %q with parameters %s not found", name, formatParams(params)).
			WithDetails(map[string]interface{}{
				"name":     name,
				"selector": locator.Selector.String(),
			})
	}
	return node, nil
}

// HasElement reports whether the element named name is present
func (e *Element) HasElement(name string, params map[string]string) (bool, error) {
	locator, err := e.ResolveLocator(name, params)
	if err != nil {
		return false, err
	}
	doc, err := e.Document()
	if err != nil {
		return false, err
	}
	return locator.Find(doc) != nil, nil
}

// Text returns the normalized text of the element named name
func (e *Element) Text(name string, params map[string]string) (string, error) {
	node, err := e.GetElement(name, params)
	if err != nil {
		return "", err
	}
	return textContent(node), nil
}

func formatParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, params[k]))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
