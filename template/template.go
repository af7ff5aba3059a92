package template

import (
	"errors"
	"sort"
	"strings"

	"github.com/npillmayer/udt/expr"
	"github.com/npillmayer/udt/lexer"
	"github.com/npillmayer/udt/markup"
)

// Element names with special meaning inside a template declaration.
const (
	ArgumentTag = "argument"
	SlotTag     = "slot"
	SlotAttr    = "slot"
)

var (
	// ErrArgumentNotDefined is returned if a template argument has neither a
	// value supplied by the caller nor a default.
	ErrArgumentNotDefined = errors.New("template argument not defined")
	// ErrFixedID is returned for elements inside a template body with an id
	// not depending on an argument.
	ErrFixedID = errors.New("fixed id inside template")
	// ErrCycle is returned for templates referencing themselves.
	ErrCycle = errors.New("template references itself")
	// ErrDuplicateTemplate is returned if a template name is declared twice
	// in the same scope.
	ErrDuplicateTemplate = errors.New("duplicate template")
)

// Argument is a declared template argument.
type Argument struct {
	Name       string
	Default    string
	HasDefault bool
}

// Template is a named, parametrized blueprint of an element subtree.
type Template struct {
	Name string
	Args []Argument
	Body []*markup.Element // top-level elements of the body, never modified
	File string
	Pos  lexer.Pos
}

// Arg returns the declaration of an argument (case-insensitive).
func (t *Template) Arg(name string) (Argument, bool) {
	for _, a := range t.Args {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return Argument{}, false
}

// Declare creates a template from a template declaration element.
// isNodeType reports names of registered node types, which templates must
// not shadow. It may be nil.
func Declare(el *markup.Element, isNodeType func(string) bool) (*Template, error) {
	nameAttr := el.Attr("name")
	if nameAttr == nil || nameAttr.Text() == "" || nameAttr.Kind == markup.AttrImplicit {
		return nil, lexer.Errorf(lexer.SemanticError, el.File, el.Pos, "template declaration without a name")
	}
	if len(el.Attrs) > 1 {
		for _, a := range el.Attrs {
			if !strings.EqualFold(a.Name, "name") {
				return nil, lexer.Errorf(lexer.SemanticError, el.File, a.Pos,
					"template declaration does not take attribute %s", a.Name)
			}
		}
	}
	t := &Template{Name: nameAttr.Text(), File: el.File, Pos: el.Pos}
	if isNodeType != nil && isNodeType(t.Name) {
		return nil, lexer.Errorf(lexer.SemanticError, el.File, nameAttr.Pos,
			"template %s shadows node type of the same name", t.Name)
	}
	if el.Text != "" {
		return nil, lexer.Errorf(lexer.SemanticError, el.File, el.Pos,
			"template %s contains text outside of any element", t.Name)
	}
	for _, ch := range el.Children {
		if !ch.Is(ArgumentTag) {
			t.Body = append(t.Body, ch)
			continue
		}
		arg, err := declareArgument(t, ch)
		if err != nil {
			return nil, err
		}
		t.Args = append(t.Args, arg)
	}
	if len(t.Body) == 0 {
		return nil, lexer.Errorf(lexer.SemanticError, el.File, el.Pos, "template %s has an empty body", t.Name)
	}
	for _, b := range t.Body {
		if err := checkIDs(t, b); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("declared template %s with %d arguments", t.Name, len(t.Args))
	return t, nil
}

func declareArgument(t *Template, el *markup.Element) (Argument, error) {
	var arg Argument
	for _, a := range el.Attrs {
		switch strings.ToLower(a.Name) {
		case "name":
			arg.Name = a.Text()
		case "default":
			arg.Default, arg.HasDefault = a.Text(), true
		default:
			return arg, lexer.Errorf(lexer.SemanticError, el.File, a.Pos,
				"template %s: argument does not take attribute %s", t.Name, a.Name)
		}
	}
	if arg.Name == "" {
		return arg, lexer.Errorf(lexer.SemanticError, el.File, el.Pos,
			"template %s: argument without a name", t.Name)
	}
	if len(el.Children) > 0 || el.Text != "" {
		return arg, lexer.Errorf(lexer.SemanticError, el.File, el.Pos,
			"template %s: argument %s must be empty", t.Name, arg.Name)
	}
	if _, dup := t.Arg(arg.Name); dup {
		return arg, lexer.Errorf(lexer.SemanticError, el.File, el.Pos,
			"template %s: duplicate argument %s", t.Name, arg.Name)
	}
	return arg, nil
}

// checkIDs rejects literal ids. A template may be stamped out more than
// once, so ids have to be derived from arguments.
func checkIDs(t *Template, body *markup.Element) (err error) {
	body.Walk(func(el *markup.Element) bool {
		if err != nil {
			return false
		}
		if id := el.Attr("id"); id != nil && !expr.HasPlaceholder(id.Text()) {
			err = lexer.Wrap(ErrFixedID, lexer.SemanticError, el.File, id.Pos,
				"template %s: id %q of element <%s> does not depend on an argument", t.Name, id.Text(), el.Name)
		}
		return true
	})
	return
}

// Registry holds template declarations. A registry may be layered over a
// parent registry, e.g. a document's templates over templates shared
// between documents. Lookups fall back to the parent, declarations never
// touch it.
//
// Registries are not synchronized. Populate shared registries before
// compiling documents concurrently.
type Registry struct {
	parent    *Registry
	templates map[string]*Template
}

// NewRegistry creates an empty registry on top of parent, which may be nil.
func NewRegistry(parent *Registry) *Registry {
	return &Registry{parent: parent, templates: make(map[string]*Template)}
}

// Define adds a template to the registry. Declaring a name twice in the
// same registry is an error; shadowing a template of the parent is not.
func (r *Registry) Define(t *Template) error {
	key := strings.ToLower(t.Name)
	if prev, ok := r.templates[key]; ok {
		return lexer.Wrap(ErrDuplicateTemplate, lexer.SemanticError, t.File, t.Pos,
			"template %s already declared at %s:%s", t.Name, prev.File, prev.Pos)
	}
	r.templates[key] = t
	return nil
}

// Lookup finds a template by name (case-insensitive).
func (r *Registry) Lookup(name string) (*Template, bool) {
	for reg := r; reg != nil; reg = reg.parent {
		if t, ok := reg.templates[strings.ToLower(name)]; ok {
			return t, true
		}
	}
	return nil, false
}

// Names returns the names of all templates visible from r, sorted.
func (r *Registry) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for reg := r; reg != nil; reg = reg.parent {
		for key, t := range reg.templates {
			if !seen[key] {
				seen[key] = true
				names = append(names, t.Name)
			}
		}
	}
	sort.Strings(names)
	return names
}
