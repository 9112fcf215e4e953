package rules

// A Printer reports per-rule progress while a document is being patched.
type Printer interface {
	// SetSteps gives the total number of rules that will be reported.
	SetSteps(steps int)
	// Print reports one rule's summary. 'step' counts from 1.
	Print(name, summary string, step int)
	// Done marks a rule as finished.
	Done(name string)
}
