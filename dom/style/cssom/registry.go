package cssom

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownStylesheet is returned for imports of unregistered names.
var ErrUnknownStylesheet = errors.New("unknown stylesheet")

// ErrImportCycle is returned for stylesheets importing themselves, directly
// or through other stylesheets.
var ErrImportCycle = errors.New("stylesheet imports itself")

// Format parses the source text of a named stylesheet. name is used for
// diagnostics. Imports of the stylesheet have to be resolved with ld.
type Format func(src, name string, ld *Loader) (*StyleSheet, error)

// Registry holds named stylesheet sources. Names are case-insensitive.
//
// A registry is not synchronized. Clients have to populate it before
// compiling documents concurrently, or guard it with a lock. Loading
// stylesheets does not modify the registry.
type Registry struct {
	sources map[string]string
	formats map[string]Format
}

// NewRegistry creates an empty registry. Stylesheets are parsed with
// ParseText, unless a different format has been set for the suffix of
// their name.
func NewRegistry() *Registry {
	return &Registry{
		sources: make(map[string]string),
		formats: make(map[string]Format),
	}
}

// Register stores the source text of a stylesheet under name, replacing
// an existing one.
func (reg *Registry) Register(name, src string) {
	reg.sources[strings.ToLower(name)] = src
}

// Unregister removes a stylesheet.
func (reg *Registry) Unregister(name string) {
	delete(reg.sources, strings.ToLower(name))
}

// Exists checks for a stylesheet called name.
func (reg *Registry) Exists(name string) bool {
	if reg == nil {
		return false
	}
	_, ok := reg.sources[strings.ToLower(name)]
	return ok
}

// Get returns the source text of a stylesheet.
func (reg *Registry) Get(name string) (string, error) {
	if reg != nil {
		if src, ok := reg.sources[strings.ToLower(name)]; ok {
			return src, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStylesheet, name)
}

// Names returns the names of all registered stylesheets, sorted.
func (reg *Registry) Names() []string {
	if reg == nil {
		return nil
	}
	names := make([]string, 0, len(reg.sources))
	for n := range reg.sources {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SetFormat selects the parser for stylesheets whose names end in suffix,
// e.g. ".css". If more than one suffix matches a name, the longest one
// wins.
func (reg *Registry) SetFormat(suffix string, f Format) {
	reg.formats[strings.ToLower(suffix)] = f
}

// format returns the format for a lower-case stylesheet name.
func (reg *Registry) format(key string) (string, Format) {
	suffix, format := "", Format(parseFormat)
	for s, f := range reg.formats {
		if strings.HasSuffix(key, s) && len(s) > len(suffix) {
			suffix, format = s, f
		}
	}
	return suffix, format
}

// Load parses the stylesheet registered as name.
func (reg *Registry) Load(name string) (*StyleSheet, error) {
	return reg.NewLoader().Load(name)
}

// NewLoader creates a loader for the imports of a single stylesheet.
// reg may be nil.
func (reg *Registry) NewLoader() *Loader {
	return &Loader{reg: reg, visiting: make(map[string]bool)}
}

// Loader resolves imports against a registry. It remembers the
// stylesheets currently being loaded to detect import cycles. A loader
// belongs to a single parse and must not be shared between goroutines.
type Loader struct {
	reg      *Registry
	visiting map[string]bool
}

// Exists checks for a stylesheet called name.
func (ld *Loader) Exists(name string) bool {
	return ld != nil && ld.reg.Exists(name)
}

// Load parses the stylesheet registered as name. A stylesheet importing
// itself, directly or through other stylesheets, is an error.
func (ld *Loader) Load(name string) (*StyleSheet, error) {
	if ld == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStylesheet, name)
	}
	key := strings.ToLower(name)
	if ld.visiting[key] {
		return nil, fmt.Errorf("%w: %q", ErrImportCycle, name)
	}
	src, err := ld.reg.Get(name)
	if err != nil {
		return nil, err
	}
	ld.visiting[key] = true
	defer delete(ld.visiting, key)
	suffix, f := ld.reg.format(key)
	tracer().Debugf("loading stylesheet %q, format suffix %q", name, suffix)
	return f(src, name, ld)
}
