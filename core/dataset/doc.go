// Package dataset defines the merged in-memory data model that the
// assemblers produce and the validation engine and exporters consume.
//
// Every entity collection is a datamap.Map, so each is queryable by id and
// by per-language display name and iterates in insertion order. All
// cross-entity references inside the payload structs are canonical English
// display names; resolving them against the owning collection is the
// validation engine's job.
package dataset
