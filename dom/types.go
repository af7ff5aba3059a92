package dom

import (
	"fmt"
	"sort"

	"github.com/npillmayer/udt/binding"
	"github.com/npillmayer/udt/expr"
)

// NodeType is a constructible node variant.
type NodeType interface {
	// Name returns the canonical type name.
	Name() string
	// New creates a fresh variant record.
	New() any
	// Has tells if the variant exposes a property.
	Has(property string) bool
	// Bind converts v to the type of a property and sets it on variant.
	Bind(variant any, property string, v expr.Value) error
	// Properties returns the names of all properties.
	Properties() []string
}

// NewType creates a node type whose variant records are of type *V, with
// properties described by table.
func NewType[V any](name string, create func() *V, table *binding.Table[*V]) NodeType {
	return &nodeType[V]{name: name, create: create, table: table}
}

type nodeType[V any] struct {
	name   string
	create func() *V
	table  *binding.Table[*V]
}

func (t *nodeType[V]) Name() string { return t.name }

func (t *nodeType[V]) New() any {
	if t.create == nil {
		return new(V)
	}
	return t.create()
}

func (t *nodeType[V]) Has(property string) bool {
	_, ok := t.table.Lookup(property)
	return ok
}

func (t *nodeType[V]) Bind(variant any, property string, v expr.Value) error {
	rec, ok := variant.(*V)
	if !ok {
		return fmt.Errorf("node type %s cannot bind to variant %T", t.name, variant)
	}
	if t.table == nil {
		return fmt.Errorf("%w: %s", binding.ErrNoSuchProperty, property)
	}
	return t.table.Bind(rec, property, v)
}

func (t *nodeType[V]) Properties() []string {
	if t.table == nil {
		return nil
	}
	return t.table.Names()
}

// Registry maps element names to node types. Element names are normalized
// the way property names are: case-insensitive, hyphens ignored.
//
// A registry is not synchronized; register all types before compiling
// documents concurrently.
type Registry struct {
	types map[string]NodeType
}

// NewRegistry creates an empty node type registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]NodeType)}
}

// Register makes a node type known under its name and additional aliases.
// Registering a name twice is an error.
func (r *Registry) Register(t NodeType, aliases ...string) error {
	names := append([]string{t.Name()}, aliases...)
	for _, name := range names {
		if _, dup := r.types[binding.Normalize(name)]; dup {
			return fmt.Errorf("node type %s already registered", name)
		}
	}
	for _, name := range names {
		r.types[binding.Normalize(name)] = t
	}
	tracer().Debugf("registered node type %s %v", t.Name(), aliases)
	return nil
}

// Lookup finds the node type for an element name.
func (r *Registry) Lookup(name string) (NodeType, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.types[binding.Normalize(name)]
	return t, ok
}

// Exists reports whether an element name denotes a node type.
func (r *Registry) Exists(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Canonical returns the canonical type name for an element name or alias.
func (r *Registry) Canonical(name string) (string, bool) {
	t, ok := r.Lookup(name)
	if !ok {
		return "", false
	}
	return t.Name(), true
}

// Names returns all registered element names, aliases included, in
// normalized form.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry creates a registry with the built-in node types
// node (alias n), text, image, button and scroll.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}
	must(r.Register(ContainerType, "n"))
	must(r.Register(TextType))
	must(r.Register(ImageType))
	must(r.Register(ButtonType))
	must(r.Register(ScrollType))
	return r
}
