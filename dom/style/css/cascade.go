package css

import (
	"fmt"
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/udt/dom"
	"github.com/npillmayer/udt/dom/style"
	"github.com/npillmayer/udt/dom/style/cssom"
	"github.com/npillmayer/udt/lexer"
)

// Cascade holds the compiled rules of a stylesheet.
type Cascade struct {
	rules []compiledRule
}

type compiledRule struct {
	rule  *cssom.Rule
	sel   cascadia.Sel
	spec  cascadia.Specificity
	index int // position in the stylesheet
}

// Compile compiles the selectors of all rules of a stylesheet. Type names
// in selectors are resolved with the node type registry types, which may
// be nil.
func Compile(sheet *cssom.StyleSheet, types *dom.Registry) (*Cascade, error) {
	var canonical func(string) (string, bool)
	if types != nil {
		canonical = types.Canonical
	}
	c := &Cascade{}
	for i, r := range sheet.Rules() {
		translated, err := Translate(r.Selector, canonical)
		if err != nil {
			return nil, lexer.Wrap(err, lexer.SemanticError, r.File, r.Pos, "cannot apply style rule")
		}
		sel, err := cascadia.Parse(translated)
		if err != nil {
			return nil, lexer.Wrap(err, lexer.SyntaxError, r.File, r.Pos,
				"invalid selector %q", r.Selector)
		}
		c.rules = append(c.rules, compiledRule{
			rule:  r,
			sel:   sel,
			spec:  sel.Specificity(),
			index: i,
		})
	}
	tracer().Debugf("compiled %d style rules", len(c.rules))
	return c, nil
}

// Resolve compiles sheet and sets the resolved style of every node of the
// tree rooted at root.
func Resolve(root *dom.Node, sheet *cssom.StyleSheet, types *dom.Registry) error {
	c, err := Compile(sheet, types)
	if err != nil {
		return err
	}
	c.Apply(root)
	return nil
}

// Apply sets the resolved style of every node of the tree rooted at root.
func (c *Cascade) Apply(root *dom.Node) {
	if root == nil {
		return
	}
	sh := newShadow(root)
	root.Walk(func(n *dom.Node, _ int) error {
		n.Style = c.styleFor(n, sh)
		return nil
	})
}

// Matching returns the rules matching n, in order of application.
func (c *Cascade) Matching(n *dom.Node) []*cssom.Rule {
	root := n
	for p := n.ParentNode(); p != nil; p = p.ParentNode() {
		root = p
	}
	matches := c.matching(n, newShadow(root))
	rules := make([]*cssom.Rule, len(matches))
	for i, m := range matches {
		rules[i] = m.rule
	}
	return rules
}

func (c *Cascade) matching(n *dom.Node, sh *shadow) []compiledRule {
	el := sh.element(n)
	var matches []compiledRule
	for _, r := range c.rules {
		if r.sel.Match(el) {
			matches = append(matches, r)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].spec.Less(matches[j].spec)
	})
	return matches
}

func (c *Cascade) styleFor(n *dom.Node, sh *shadow) *style.Style {
	st := style.Default()
	for _, m := range c.matching(n, sh) {
		tracer().Debugf("%s matches %s", n, m)
		st.Merge(m.rule.Style)
	}
	st.Merge(n.Inline)
	return st
}

func (r compiledRule) String() string {
	return fmt.Sprintf("%s %v #%d", r.rule.Selector, r.spec, r.index)
}
