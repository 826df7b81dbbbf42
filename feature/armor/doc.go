// Package armor groups flat armor records into ordered armor sets.
//
// Records pass a strict inclusion filter (named, set-bearing, ordinary
// armor type, gendered, ordered, craftable), are grouped by set id, and the
// resulting sets are sorted by rank then by the minimum sort order of their
// members. Rank derives from the binary variant field: 0 is low rank,
// anything else is high rank. A future master-rank tier is not modeled;
// every nonzero variant collapses to high rank for now.
package armor
