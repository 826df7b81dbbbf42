// Package gamecfg holds the game-wide domain constants that the assemblers
// and validation rules share: weapon type groupings, per-type attack
// multipliers, supported ranks, armor parts, and the supported language set.
//
// The constants are bundled into a single immutable Config value that is
// passed explicitly into every consumer instead of being read from package
// globals, so tests can substitute a reduced configuration.
package gamecfg
