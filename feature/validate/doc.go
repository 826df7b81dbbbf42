// Package validate checks the merged dataset against the referential and
// domain invariants it must satisfy before publication.
//
// Checks are modeled as independent, stateless rules sharing one contract:
// evaluate the complete dataset, return zero or more issues. The registry
// runs every rule unconditionally and concatenates the results, so a single
// run surfaces as many problems as possible; no rule short-circuits
// another. The run fails if at least one error-severity issue exists.
// Warnings are reported but never fail the run.
//
// Rules never stop at the first bad record. A violated invariant becomes an
// issue and evaluation continues.
package validate
