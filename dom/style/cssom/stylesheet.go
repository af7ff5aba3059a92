package cssom

import (
	"strings"

	"github.com/npillmayer/udt/dom/style"
	"github.com/npillmayer/udt/lexer"
)

// StyleSheet is an ordered list of style rules. The zero value is an empty
// stylesheet.
type StyleSheet struct {
	rules []*Rule
}

// Rule connects a selector to a style. Styles of rules are not modified
// after parsing; rules may therefore be shared between stylesheets.
type Rule struct {
	Selector string
	Style    *style.Style
	File     string
	Pos      lexer.Pos
}

// NewStyleSheet creates a stylesheet from a list of rules.
func NewStyleSheet(rules ...*Rule) *StyleSheet {
	return &StyleSheet{rules: rules}
}

// AppendRules appends all rules of other to sheet. Rules are shared, not
// copied.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.rules...)
}

// AddRule appends a single rule.
func (sheet *StyleSheet) AddRule(r *Rule) {
	sheet.rules = append(sheet.rules, r)
}

// Empty is true if the stylesheet does not contain any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// Rules returns the rules of a stylesheet in declaration order.
func (sheet *StyleSheet) Rules() []*Rule {
	if sheet == nil {
		return nil
	}
	return sheet.rules
}

func (sheet *StyleSheet) String() string {
	var b strings.Builder
	for _, r := range sheet.Rules() {
		b.WriteString(r.Selector)
		b.WriteByte(' ')
		b.WriteString(r.Style.String())
		b.WriteByte('\n')
	}
	return b.String()
}
