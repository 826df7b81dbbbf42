// Package weapons reconstructs the weapon upgrade forests from flat decoded
// records and binds the assembled nodes into dataset weapon entries.
//
// # Assembly
//
// The flat weapon records only carry ids; lineage lives in the upgrade
// side-table, where each entry holds up to four descendant slots. A slot is
// either 0 (empty) or an index into the upgrade table itself; the table's
// ordinal positions, not weapon ids, are the address space. The assembler
// resolves slots in order, attaches children, and propagates the tree-group
// label onto the first child of every mid-tree node, because the game UI
// shows no branch split before the final tier.
//
// A descendant index that does not resolve to a known weapon aborts
// assembly for that weapon type; everything else (missing recipes, missing
// tree labels) stays optional.
//
// # Binding
//
// The Binder walks assembled trees and decodes the per-type attribute
// extensions: elements and elderseal, phials, shelling, kinsect boosts,
// hunting horn notes, sharpness profiles, bow coatings, and bowgun ammo
// configurations.
package weapons
