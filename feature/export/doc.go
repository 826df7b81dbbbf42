// Package export publishes the merged dataset to the relational database
// consumed by the companion apps.
//
// The schema is a flattened projection of the dataset: one row per entity
// with its canonical English name, plus a shared translations table for
// the other languages. Export assumes a validated dataset; it performs no
// integrity checking of its own.
package export
