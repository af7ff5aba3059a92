package css

import (
	"fmt"
	"strconv"
	"strings"
)

// tagsAttr is the attribute of shadow elements holding a node's tags.
const tagsAttr = "data-tags"

// Translate rewrites a stylesheet selector into a selector cascadia
// understands. Type names are replaced by their canonical, lower-case
// form, as reported by canonical. If canonical is nil, type names are
// lower-cased only.
func Translate(sel string, canonical func(string) (string, bool)) (string, error) {
	compounds := strings.Fields(sel)
	if len(compounds) == 0 {
		return "", fmt.Errorf("empty selector")
	}
	out := make([]string, len(compounds))
	for i, c := range compounds {
		t, err := translateCompound(c, canonical)
		if err != nil {
			return "", fmt.Errorf("selector %q: %w", sel, err)
		}
		out[i] = t
	}
	return strings.Join(out, " "), nil
}

// translateCompound translates a compound selector like "node#a.b:c".
func translateCompound(c string, canonical func(string) (string, bool)) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(c) {
		marker := c[i]
		start := i
		if marker == '#' || marker == '.' || marker == ':' {
			start++
		}
		end := start
		for end < len(c) && !strings.ContainsRune("#.:", rune(c[end])) {
			end++
		}
		name := c[start:end]
		if name == "" {
			return "", fmt.Errorf("missing name after %q", marker)
		}
		switch marker {
		case '#', '.':
			b.WriteByte(marker)
			b.WriteString(name)
		case ':':
			b.WriteString("[" + tagsAttr + "~=" + strconv.Quote(name) + "]")
		default:
			if i > 0 {
				return "", fmt.Errorf("type name %s must start a compound selector", name)
			}
			typ := strings.ToLower(name)
			if canonical != nil {
				t, ok := canonical(name)
				if !ok {
					return "", fmt.Errorf("unknown node type %s", name)
				}
				typ = strings.ToLower(t)
			}
			b.WriteString(typ)
		}
		i = end
	}
	return b.String(), nil
}
