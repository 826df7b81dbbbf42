package weapons

import (
	"fmt"

	"hunterdb/core/gamecfg"
	"hunterdb/core/loader"

	"go.uber.org/zap"
)

// PlaceholderName is the string the text blocks carry for unused entries.
// Records resolving to it are not real weapons and produce no node.
const PlaceholderName = "Invalid Message"

// DescendantError is the fatal construction error raised when an upgrade
// descendant slot cannot be resolved to an existing weapon node.
type DescendantError struct {
	Type     gamecfg.WeaponType
	WeaponID int
	Slot     int
	Index    int
}

func (e *DescendantError) Error() string {
	return fmt.Sprintf("weapons: %s weapon %d: descendant slot %d index %d does not resolve to a known weapon",
		e.Type, e.WeaponID, e.Slot, e.Index)
}

// Tables holds the crafting and upgrade side-tables shared by all weapon
// types. The upgrade table keeps its original order because descendant
// slots address it by position.
type Tables struct {
	craft    map[tableKey]*loader.RecipeRecord
	upgrades []loader.UpgradeRecord
	byKey    map[tableKey]*loader.UpgradeRecord
}

type tableKey struct {
	wtype gamecfg.WeaponType
	id    int
}

// NewTables indexes the side-tables by (weapon type, weapon id). The equip
// type field of each entry selects the weapon type via the configured
// equip-type ordering.
func NewTables(cfg gamecfg.Config, craft []loader.RecipeRecord, upgrades []loader.UpgradeRecord) (*Tables, error) {
	t := &Tables{
		craft:    make(map[tableKey]*loader.RecipeRecord),
		upgrades: upgrades,
		byKey:    make(map[tableKey]*loader.UpgradeRecord),
	}

	for i := range craft {
		entry := &craft[i]
		if entry.EquipType < 0 || entry.EquipType >= len(cfg.WeaponTypes) {
			return nil, fmt.Errorf("weapons: craft entry for weapon %d has unknown equip type %d",
				entry.EquipID, entry.EquipType)
		}
		key := tableKey{cfg.WeaponTypes[entry.EquipType], entry.EquipID}
		t.craft[key] = entry
	}

	// Later entries win; the table contains superseded duplicates.
	for i := range upgrades {
		entry := &t.upgrades[i]
		if entry.EquipType < 0 || entry.EquipType >= len(cfg.WeaponTypes) {
			return nil, fmt.Errorf("weapons: upgrade entry for weapon %d has unknown equip type %d",
				entry.EquipID, entry.EquipType)
		}
		key := tableKey{cfg.WeaponTypes[entry.EquipType], entry.EquipID}
		t.byKey[key] = entry
	}

	return t, nil
}

// Assembler builds weapon trees from flat records and the side-tables.
type Assembler struct {
	cfg    gamecfg.Config
	tables *Tables
	log    *zap.Logger
}

// NewAssembler creates an assembler over the given side-tables.
func NewAssembler(cfg gamecfg.Config, tables *Tables, log *zap.Logger) *Assembler {
	return &Assembler{cfg: cfg, tables: tables, log: log}
}

// Assemble builds the upgrade forest for one weapon type. It returns a
// *DescendantError (wrapped) if any descendant slot cannot be resolved;
// anomalies short of that are represented as absent optional fields.
func (a *Assembler) Assemble(src *loader.WeaponSource) (*Tree, error) {
	tree := newTree(src.Type)
	descendants := make(map[int][4]int)

	// First pass: create nodes for every named record.
	for _, record := range src.Records {
		name := src.Names[record.NameIndex]

		key := tableKey{src.Type, record.ID}
		craft := a.tables.craft[key]
		if craft != nil && craft.Items[0].Quantity == 0 {
			craft = nil
		}

		var upgrade *loader.RecipeRecord
		if entry := a.tables.byKey[key]; entry != nil {
			descendants[record.ID] = entry.Descendants
			// Keep the descendant slots even when the recipe itself is
			// unused; lineage and ingredients are independent.
			if entry.Items[0].Quantity != 0 {
				upgrade = &entry.RecipeRecord
			}
		}

		if name.En() == "" || name.En() == PlaceholderName {
			continue
		}

		treeName := ""
		if record.TreeID != 0 {
			treeName = src.TreeNames[record.TreeID].En()
		}

		tree.add(&Node{
			ID:       record.ID,
			Type:     src.Type,
			Name:     name,
			TreeName: treeName,
			Craft:    craft,
			Upgrade:  upgrade,
			Record:   record,
			parent:   noParent,
		})
	}

	// Second pass: connect descendants through the upgrade table.
	for _, id := range tree.order {
		node := tree.nodes[id]
		slots, ok := descendants[node.ID]
		if !ok || slots == [4]int{} {
			continue
		}

		// A zero first slot means the node is itself the final tier.
		isLast := slots[0] == 0

		for slot, idx := range slots {
			if idx == 0 {
				continue
			}
			if idx < 0 || idx >= len(a.tables.upgrades) {
				return nil, fmt.Errorf("assembling %s tree: %w", src.Type,
					&DescendantError{Type: src.Type, WeaponID: node.ID, Slot: slot, Index: idx})
			}
			childID := a.tables.upgrades[idx].EquipID
			child, ok := tree.nodes[childID]
			if !ok {
				return nil, fmt.Errorf("assembling %s tree: %w", src.Type,
					&DescendantError{Type: src.Type, WeaponID: node.ID, Slot: slot, Index: idx})
			}
			child.parent = node.ID
			node.children = append(node.children, childID)
		}

		// Mid-tree nodes pass their tree label to the first declared child;
		// the game UI shows no branch split before the final tier.
		if !isLast && len(node.children) > 0 {
			tree.nodes[node.children[0]].TreeName = node.TreeName
		}
	}

	tree.finish()

	if a.log != nil {
		a.log.Debug("assembled weapon tree",
			zap.String("weapon_type", string(src.Type)),
			zap.Int("nodes", tree.Len()),
			zap.Int("roots", len(tree.roots)),
			zap.Int("isolated", len(tree.isolated)))
	}
	return tree, nil
}
