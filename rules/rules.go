package rules

import (
	"fmt"
	"regexp"

	"github.com/gobwas/glob"
)

// A Rule is a single substitution: every occurrence of Pattern in the
// document is replaced with the literal text Replace. A rule only fires on
// files whose path matches Scope.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
	Scope   glob.Glob

	scope string
}

// NewRule compiles 'pattern' as a regular expression and 'scope' as a path
// glob. An empty scope matches every path.
func NewRule(name, pattern, replace, scope string) (Rule, error) {
	rgx, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %s: %w", name, err)
	}
	var g glob.Glob
	if scope != "" {
		g, err = glob.Compile(scope)
		if err != nil {
			return Rule{}, fmt.Errorf("rule %s: %w", name, err)
		}
	}
	return Rule{
		Name:    name,
		Pattern: rgx,
		Replace: replace,
		Scope:   g,
		scope:   scope,
	}, nil
}

// MustRule is NewRule for the built-in rules, whose patterns are known to
// compile.
func MustRule(name, pattern, replace, scope string) Rule {
	r, err := NewRule(name, pattern, replace, scope)
	if err != nil {
		panic(err)
	}
	return r
}

// Matches reports whether this rule applies to the file at 'path'.
func (r *Rule) Matches(path string) bool {
	if r.Scope == nil {
		return true
	}
	return r.Scope.Match(path)
}

func (r Rule) String() string {
	s := fmt.Sprintf("%s: s|%s|%s|", r.Name, r.Pattern, r.Replace)
	if r.scope != "" {
		s += " (" + r.scope + ")"
	}
	return s
}

// A RuleSet is an ordered list of rules. Rules are always applied in the
// order they were added.
type RuleSet struct {
	Rules []Rule
}

func NewRuleSet(rules ...Rule) *RuleSet {
	return &RuleSet{
		Rules: rules,
	}
}

func (rs *RuleSet) Add(r Rule) {
	rs.Rules = append(rs.Rules, r)
}

// Default returns the built-in rules: populate the empty react-helmet title
// tag, and swap the .ico favicon link for the .png one.
func Default() *RuleSet {
	return NewRuleSet(
		MustRule("title",
			`<title data-rh="true"></title>`,
			`<title data-rh="true">Die Stats</title>`,
			"dist/*.html"),
		MustRule("favicon",
			`<link rel="icon" href="/favicon.ico" />`,
			`<link rel="icon" type="image/png" href="/favicon.png" />`,
			"dist/*.html"),
	)
}
