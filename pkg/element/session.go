package element

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/arthur-debert/catalogpromo/pkg/errors"
	"github.com/beevik/etree"
	"golang.org/x/net/html"
)

// Document is a parsed page snapshot. CSS selectors run on the HTML
// tree, XPath selectors on an etree mirror of it.
type Document struct {
	root  *html.Node
	tree  *etree.Document
	nodes map[*etree.Element]*html.Node
}

// ParseDocument parses an HTML snapshot. Unclosed and void tags are
// handled the way a browser handles them.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return newDocument(root), nil
}

func newDocument(root *html.Node) *Document {
	d := &Document{
		root:  root,
		tree:  etree.NewDocument(),
		nodes: make(map[*etree.Element]*html.Node),
	}
	d.mirror(&d.tree.Element, root)
	return d
}

// Root returns the document node of the HTML tree
func (d *Document) Root() *html.Node {
	return d.root
}

func (d *Document) mirror(parent *etree.Element, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			el := parent.CreateElement(c.Data)
			for _, attr := range c.Attr {
				el.CreateAttr(attr.Key, attr.Val)
			}
			d.nodes[el] = c
			d.mirror(el, c)
		case html.TextNode:
			parent.CreateText(c.Data)
		}
	}
}

// Session supplies the document a page object works on
type Session interface {
	Document() (*Document, error)
}

// DocumentSession serves an already parsed document
type DocumentSession struct {
	doc *Document
}

// NewDocumentSession wraps doc
func NewDocumentSession(doc *Document) *DocumentSession {
	return &DocumentSession{doc: doc}
}

func (s *DocumentSession) Document() (*Document, error) {
	return s.doc, nil
}

// ParseString parses an HTML snapshot into a DocumentSession
func ParseString(content string) (*DocumentSession, error) {
	doc, err := ParseDocument(strings.NewReader(content))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to parse page snapshot")
	}
	return NewDocumentSession(doc), nil
}

// FileSession reads an HTML snapshot from disk on first use
type FileSession struct {
	path string

	once sync.Once
	doc  *Document
	err  error
}

// NewFileSession creates a session for the snapshot at path
func NewFileSession(path string) *FileSession {
	return &FileSession{path: path}
}

func (s *FileSession) Document() (*Document, error) {
	s.once.Do(func() {
		s.doc, s.err = s.read()
	})
	return s.doc, s.err
}

func (s *FileSession) read() (*Document, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to read page snapshot %s", s.path).
			WithDetail("path", s.path)
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to parse page snapshot %s", s.path).
			WithDetail("path", s.path)
	}
	return doc, nil
}

// textContent returns the whitespace-normalized text below n
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
