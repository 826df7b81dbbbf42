// Package loader is the input layer of the build pipeline.
//
// The binary game files are decoded out-of-band into plain JSON documents:
// flat record arrays with stable integer ids and index fields, side-tables
// keyed by (category, id), and localized text blocks mapping an integer key
// to per-language strings. This package defines the in-memory record model
// for those documents and reads them from the configured data directory.
//
// Nothing here interprets the records; assembly and validation live in the
// feature packages.
package loader
