package rules

import (
	"fmt"
	"io"
)

var tools = []Tool{
	&ListTool{},
	&RulesTool{},
	&StatusTool{},
}

// A Tool inspects the document or the rules without rewriting anything.
type Tool interface {
	Run(rs *RuleSet, doc []byte, path string, args []string) error
	String() string
}

type ListTool struct {
	W io.Writer
}

func (t *ListTool) Run(rs *RuleSet, doc []byte, path string, args []string) error {
	for _, tl := range tools {
		fmt.Fprintln(t.W, tl)
	}

	return nil
}

func (t *ListTool) String() string {
	return "list - list all available tools"
}

type RulesTool struct {
	W io.Writer
}

func (t *RulesTool) Run(rs *RuleSet, doc []byte, path string, args []string) error {
	for _, r := range rs.Rules {
		fmt.Fprintln(t.W, r)
	}

	return nil
}

func (t *RulesTool) String() string {
	return "rules - show the substitution rules"
}

// StatusTool reports, per rule, how many matches the current document has,
// and whether the document is the output recorded by the last run.
type StatusTool struct {
	W  io.Writer
	Db *Database
}

func (t *StatusTool) Run(rs *RuleSet, doc []byte, path string, args []string) error {
	for _, r := range rs.Rules {
		count := 0
		if r.Matches(path) {
			count = len(r.Pattern.FindAllIndex(doc, -1))
		}
		if count == 1 {
			fmt.Fprintf(t.W, "%s: 1 match\n", r.Name)
		} else {
			fmt.Fprintf(t.W, "%s: %d matches\n", r.Name, count)
		}
	}
	if t.Db.UpToDate(path, doc) {
		fmt.Fprintf(t.W, "%s: patched\n", path)
	} else {
		fmt.Fprintf(t.W, "%s: not patched\n", path)
	}

	return nil
}

func (t *StatusTool) String() string {
	return "status - show rule matches and patch state for the target"
}
