package udt

import (
	"github.com/npillmayer/udt/dom"
	"github.com/npillmayer/udt/dom/style/css"
	"github.com/npillmayer/udt/dom/style/cssom"
	"github.com/npillmayer/udt/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/udt/lexer"
	"github.com/npillmayer/udt/markup"
	"github.com/npillmayer/udt/template"
	"github.com/npillmayer/udt/tree"
)

// Compiler compiles documents.
type Compiler struct {
	Options     Options
	Types       *dom.Registry      // node types
	Stylesheets *cssom.Registry    // named stylesheets for @import
	Templates   *template.Registry // templates shared by all documents
}

// New creates a compiler with the built-in node types, an empty
// stylesheet registry and an empty template registry. Named stylesheets
// ending in ".css" are parsed as plain CSS.
func New(opts Options) *Compiler {
	sheets := cssom.NewRegistry()
	sheets.SetFormat(".css", douceuradapter.Parse)
	return &Compiler{
		Options:     opts,
		Types:       dom.DefaultRegistry(),
		Stylesheets: sheets,
		Templates:   template.NewRegistry(nil),
	}
}

// Document is a compiled document.
type Document struct {
	File       string
	Root       *dom.Node         // nil for an empty document
	StyleSheet *cssom.StyleSheet // rules of the style block, imports included
	Templates  *template.Registry
}

// Lookup finds the node with a given id.
func (doc *Document) Lookup(id string) *dom.Node {
	if doc == nil || doc.Root == nil {
		return nil
	}
	return doc.Root.Lookup(id)
}

// WithClass returns the nodes of a class, in document order.
func (doc *Document) WithClass(class string) []*dom.Node {
	return doc.collect(dom.NodeHasClass(class))
}

// WithTag returns the nodes carrying a tag, in document order.
func (doc *Document) WithTag(tag string) []*dom.Node {
	return doc.collect(dom.NodeHasTag(tag))
}

func (doc *Document) collect(predicate tree.Predicate[*dom.Node]) []*dom.Node {
	if doc == nil || doc.Root == nil {
		return nil
	}
	nodes := dom.NodesWith(doc.Root, predicate)
	if predicate(&doc.Root.Node) {
		nodes = append([]*dom.Node{doc.Root}, nodes...)
	}
	return nodes
}

// Compile compiles a document. file is used for diagnostics only.
func (c *Compiler) Compile(src, file string) (*Document, error) {
	parsed, err := markup.ParseText(src, file, c.Options.Tags)
	if err != nil {
		return nil, err
	}
	doc := &Document{File: file, StyleSheet: cssom.NewStyleSheet()}
	if parsed.HasStyle {
		if doc.StyleSheet, err = cssom.Parse(parsed.Style, file, c.Stylesheets); err != nil {
			return nil, err
		}
	}
	if doc.Templates, err = c.declare(parsed, template.NewRegistry(c.Templates)); err != nil {
		return nil, err
	}
	if parsed.Root == nil {
		tracer().P("file", file).Infof("document is empty")
		return doc, nil
	}
	root, err := template.Expand(parsed.Root, doc.Templates, c.Options.MaxExpansionDepth)
	if err != nil {
		return nil, err
	}
	if doc.Root, err = dom.Build(root, c.Types, c.Options.UniqueIDs); err != nil {
		return nil, err
	}
	if err = css.Resolve(doc.Root, doc.StyleSheet, c.Types); err != nil {
		return nil, err
	}
	tracer().P("file", file).Debugf("compiled document with %d style rules", len(doc.StyleSheet.Rules()))
	return doc, nil
}

// DeclareTemplates parses a document consisting of template declarations
// only and adds the templates to the shared template registry.
func (c *Compiler) DeclareTemplates(src, file string) error {
	parsed, err := markup.ParseText(src, file, c.Options.Tags)
	if err != nil {
		return err
	}
	if parsed.Root != nil {
		return lexer.Errorf(lexer.SemanticError, file, parsed.Root.Pos,
			"template library contains element <%s>", parsed.Root.Name)
	}
	if parsed.HasStyle {
		return lexer.Errorf(lexer.SemanticError, file, parsed.StylePos,
			"template library contains a style block")
	}
	_, err = c.declare(parsed, c.Templates)
	return err
}

func (c *Compiler) declare(parsed *markup.Document, reg *template.Registry) (*template.Registry, error) {
	for _, el := range parsed.Templates {
		t, err := template.Declare(el, c.Types.Exists)
		if err != nil {
			return nil, err
		}
		if err = reg.Define(t); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
