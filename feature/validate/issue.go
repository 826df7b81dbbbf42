package validate

import "fmt"

// Severity classifies an issue.
type Severity int

const (
	// Warning marks an informational deviation that never fails the run.
	Warning Severity = iota
	// Error marks a violated invariant; any error fails the run.
	Error
)

// String returns the severity prefix used in reports.
func (s Severity) String() string {
	if s == Error {
		return "ERROR"
	}
	return "WARNING"
}

// Issue is one finding produced by a rule.
type Issue struct {
	Severity Severity
	// Entity names the offending entity, when one exists.
	Entity  string
	Message string
}

// String renders the issue as a severity-prefixed report line.
func (i Issue) String() string {
	if i.Entity != "" {
		return fmt.Sprintf("%s: [%s] %s", i.Severity, i.Entity, i.Message)
	}
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}

// errorf builds an error-severity issue.
func errorf(entity, format string, args ...any) Issue {
	return Issue{Severity: Error, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

// warnf builds a warning-severity issue.
func warnf(entity, format string, args ...any) Issue {
	return Issue{Severity: Warning, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

// Report is the aggregated outcome of a validation run.
type Report struct {
	Issues []Issue
}

// Failed reports whether the run produced at least one error.
func (r *Report) Failed() bool {
	for _, issue := range r.Issues {
		if issue.Severity == Error {
			return true
		}
	}
	return false
}

// Counts returns the number of errors and warnings.
func (r *Report) Counts() (errors, warnings int) {
	for _, issue := range r.Issues {
		if issue.Severity == Error {
			errors++
		} else {
			warnings++
		}
	}
	return errors, warnings
}

// Lines renders every issue as a severity-prefixed string, in rule order.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		lines = append(lines, issue.String())
	}
	return lines
}
