package binding

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/udt/expr"
)

// ErrNoSuchProperty is returned if a name does not match any property.
var ErrNoSuchProperty = errors.New("no such property")

// ErrReadOnly is returned when binding to a property without a setter.
var ErrReadOnly = errors.New("property is read-only")

// Kind is the declared type of a property.
type Kind uint8

// Property kinds. Composite kinds are converted by the style package.
const (
	KindAny Kind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindEnum
	KindColor
	KindColorQuad
	KindRadii
	KindInsets
	KindSize
	KindVec2
	KindAnchor
	KindFlow
	KindGradient
)

var kindNames = [...]string{
	"any", "string", "int", "uint", "float", "bool", "enum", "color",
	"color quad", "corner radii", "insets", "size", "vec2", "anchor",
	"flow", "gradient",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Converter converts an expression value to the Go type of a property.
type Converter func(expr.Value) (any, error)

// Descriptor describes a single property of objects of type O.
type Descriptor[O any] struct {
	Name    string
	Kind    Kind
	Convert Converter
	Get     func(O) any
	Set     func(O, any) error // nil for read-only properties
}

// Prop creates a descriptor for a property of Go type T.
// A nil setter makes the property read-only.
func Prop[O any, T any](name string, kind Kind, conv func(expr.Value) (T, error),
	get func(O) T, set func(O, T)) *Descriptor[O] {
	//
	d := &Descriptor[O]{
		Name: name,
		Kind: kind,
		Convert: func(v expr.Value) (any, error) {
			return conv(v)
		},
		Get: func(o O) any {
			return get(o)
		},
	}
	if set != nil {
		d.Set = func(o O, x any) error {
			t, ok := x.(T)
			if !ok {
				var zero T
				return fmt.Errorf("property %s expects %T, got %T", name, zero, x)
			}
			set(o, t)
			return nil
		}
	}
	return d
}

// Table maps normalized property names to descriptors. Tables are built
// once and are read-only afterwards; they may be shared between goroutines.
type Table[O any] struct {
	props map[string]*Descriptor[O]
}

// NewTable creates a descriptor table. Later descriptors replace earlier
// ones with the same normalized name.
func NewTable[O any](descs ...*Descriptor[O]) *Table[O] {
	t := &Table[O]{props: make(map[string]*Descriptor[O], len(descs))}
	for _, d := range descs {
		t.props[Normalize(d.Name)] = d
	}
	return t
}

// Normalize folds a property name to lower case and strips hyphens.
func Normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", ""))
}

// Lookup finds the descriptor for a property name.
func (t *Table[O]) Lookup(name string) (*Descriptor[O], bool) {
	if t == nil {
		return nil, false
	}
	d, ok := t.props[Normalize(name)]
	return d, ok
}

// Names returns the declared property names in lexical order.
func (t *Table[O]) Names() []string {
	names := make([]string, 0, len(t.props))
	for _, d := range t.props {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// Bind converts v to the type of property name and sets it on obj.
// Errors wrap ErrNoSuchProperty, ErrReadOnly or the conversion failure.
func (t *Table[O]) Bind(obj O, name string, v expr.Value) error {
	d, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchProperty, name)
	}
	if d.Set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnly, d.Name)
	}
	x, err := d.Convert(v)
	if err != nil {
		return fmt.Errorf("cannot convert %s to %s for property %s: %w", v, d.Kind, d.Name, err)
	}
	tracer().Debugf("bind %s = %v", d.Name, x)
	return d.Set(obj, x)
}

// Assign sets an already converted value on obj.
func (t *Table[O]) Assign(obj O, name string, x any) error {
	d, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchProperty, name)
	}
	if d.Set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnly, d.Name)
	}
	return d.Set(obj, x)
}
