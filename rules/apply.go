package rules

import "fmt"

// A Result records what a single rule did during one application pass. A
// count of zero means the pattern matched nowhere, which is benign: the
// document passes through untouched.
type Result struct {
	Rule  Rule
	Count int
}

func (res Result) String() string {
	switch res.Count {
	case 0:
		return res.Rule.Name + ": no match"
	case 1:
		return res.Rule.Name + ": 1 replacement"
	default:
		return fmt.Sprintf("%s: %d replacements", res.Rule.Name, res.Count)
	}
}

// Apply runs every rule in order against doc, which is the content of the
// file at 'path'. Each rule sees the output of the previous one. Rules
// whose scope does not match the path are skipped with a zero count. The
// patched document is returned along with one result per rule.
func (rs *RuleSet) Apply(doc []byte, path string) ([]byte, []Result) {
	results := make([]Result, 0, len(rs.Rules))
	for _, r := range rs.Rules {
		var count int
		if r.Matches(path) {
			doc, count = r.apply(doc)
		}
		results = append(results, Result{Rule: r, Count: count})
	}
	return doc, results
}

func (r *Rule) apply(doc []byte) ([]byte, int) {
	count := len(r.Pattern.FindAllIndex(doc, -1))
	if count == 0 {
		return doc, 0
	}
	return r.Pattern.ReplaceAllLiteral(doc, []byte(r.Replace)), count
}
