package weapons

import (
	"fmt"
	"math"

	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
	"hunterdb/core/loader"
)

var elementNames = []string{
	"", "Fire", "Water", "Ice", "Thunder", "Dragon",
	"Poison", "Paralysis", "Sleep", "Blast",
}

var eldersealNames = []string{"", "low", "average", "high"}

// Charge blade phial types by wep1 id.
var cbPhials = []string{"impact", "power element"}

type saxePhial struct {
	kind  string
	power int
}

// Switch axe phial types by wep1 id, obtained via trial and error.
var saxePhials = map[int]saxePhial{
	0:  {"power", 0},
	1:  {"power element", 0},
	6:  {"dragon", 300},
	8:  {"dragon", 420},
	13: {"exhaust", 120},
	14: {"exhaust", 150},
	15: {"exhaust", 180},
	16: {"exhaust", 210},
	23: {"paralysis", 180},
	24: {"paralysis", 210},
	25: {"paralysis", 240},
	26: {"paralysis", 270},
	36: {"poison", 300},
	38: {"poison", 420},
}

// Insect glaive kinsect boosts by wep1 id.
var glaiveBoosts = []string{"sever", "blunt", "element", "speed", "stamina", "health"}

// Hunting horn note colors by note index.
var noteColors = []string{"P", "R", "O", "Y", "G", "B", "C", "W"}

// Weapons whose element fields are known-bad in the source data and are
// left unset rather than bound.
var elementDataSkip = map[string]bool{
	"Twin Nails":   true,
	"Fire and Ice": true,
}

// Binder turns assembled weapon nodes into dataset weapon entries,
// decoding the per-type attribute extensions.
type Binder struct {
	cfg        gamecfg.Config
	sharpness  *SharpnessReader
	ammo       *AmmoBuilder
	notes      map[int]loader.NoteRecord
	coatings   map[int]loader.CoatingRecord
	items      *loader.ItemNamer
	skills     *loader.SkillNamer
	categories map[string]string
}

// NewBinder assembles a Binder. categories tags weapons (by English name)
// with a special category and may be nil.
func NewBinder(
	cfg gamecfg.Config,
	sharpness *SharpnessReader,
	ammo *AmmoBuilder,
	notes map[int]loader.NoteRecord,
	coatings map[int]loader.CoatingRecord,
	items *loader.ItemNamer,
	skills *loader.SkillNamer,
	categories map[string]string,
) *Binder {
	return &Binder{
		cfg:        cfg,
		sharpness:  sharpness,
		ammo:       ammo,
		notes:      notes,
		coatings:   coatings,
		items:      items,
		skills:     skills,
		categories: categories,
	}
}

// Bind inserts every node of a tree into the dataset: tree-connected nodes
// in crafting order first, then isolated nodes in encounter order.
func (b *Binder) Bind(d *dataset.Data, tree *Tree) error {
	for _, node := range tree.Crafted() {
		if err := b.bindNode(d, tree, node); err != nil {
			return err
		}
	}
	for _, node := range tree.Isolated() {
		if err := b.bindNode(d, tree, node); err != nil {
			return err
		}
	}
	return nil
}

func (b *Binder) bindNode(d *dataset.Data, tree *Tree, node *Node) error {
	record := node.Record
	nameEn := node.Name.En()

	w := dataset.Weapon{
		Type:     node.Type,
		Category: b.categories[nameEn],
		Rarity:   record.Rarity + 1,
		Affinity: record.Affinity,
		Defense:  record.Defense,
		Slots:    [3]int{record.GemSlot1Lvl, record.GemSlot2Lvl, record.GemSlot3Lvl},
	}

	multiplier := b.cfg.WeaponMultiplier[node.Type]
	w.Attack = int(math.Round(float64(record.RawDamage) * multiplier))

	if parent := tree.Parent(node); parent != nil {
		w.Previous = parent.Name.En()
	}

	if record.Elderseal < 0 || record.Elderseal >= len(eldersealNames) {
		return fmt.Errorf("weapons: %s: unexpected elderseal value %d", nameEn, record.Elderseal)
	}
	w.Elderseal = eldersealNames[record.Elderseal]

	if !elementDataSkip[nameEn] {
		hidden := record.HiddenElementID != 0
		elementID := record.ElementID
		elementAtk := record.ElementDamage
		if hidden {
			elementID = record.HiddenElementID
			elementAtk = record.HiddenElementDamage
		}
		if elementID < 0 || elementID >= len(elementNames) {
			return fmt.Errorf("weapons: %s: unexpected element id %d", nameEn, elementID)
		}
		w.ElementHidden = hidden
		w.Element1 = elementNames[elementID]
		w.Element1Atk = elementAtk * 10
	}

	if record.SkillID != 0 {
		w.Skill = b.skills.NameFor(record.SkillID).En()
	}

	switch {
	case b.cfg.IsMelee(node.Type):
		if err := b.bindMeleeExt(&w, node); err != nil {
			return err
		}
		sharpness, err := b.sharpness.For(record)
		if err != nil {
			return fmt.Errorf("weapons: %s: %w", nameEn, err)
		}
		w.Sharpness = sharpness

	case b.cfg.IsGun(node.Type):
		treeName := node.TreeName
		if w.Category == "Kulve" {
			treeName = "Kulve"
		}
		configName, err := b.ammo.ConfigFor(node.Type, treeName, record)
		if err != nil {
			return fmt.Errorf("weapons: %s: %w", nameEn, err)
		}
		w.AmmoConfig = configName

	default: // bow
		coating, ok := b.coatings[record.SpecialAmmoType]
		if !ok {
			return fmt.Errorf("weapons: %s: no coating row %d", nameEn, record.SpecialAmmoType)
		}
		w.Bow = &dataset.BowCoatings{
			Close:     coating.CloseRange > 0,
			Power:     coating.Power > 0,
			Paralysis: coating.Paralysis > 0,
			Poison:    coating.Poison > 0,
			Sleep:     coating.Sleep > 0,
			Blast:     coating.Blast > 0,
		}
	}

	if node.Craft != nil {
		w.Craft = append(w.Craft, dataset.Recipe{
			Type:  "Create",
			Items: b.convertRecipe(node.Craft),
		})
	}
	if node.Upgrade != nil {
		w.Craft = append(w.Craft, dataset.Recipe{
			Type:  "Upgrade",
			Items: b.convertRecipe(node.Upgrade),
		})
	}

	id := d.Weapons.Len() + 1
	if _, err := d.Weapons.Insert(id, node.Name, w); err != nil {
		return fmt.Errorf("weapons: %s: %w", nameEn, err)
	}
	return nil
}

// bindMeleeExt decodes the wep1 extension field, whose meaning depends on
// the weapon type.
func (b *Binder) bindMeleeExt(w *dataset.Weapon, node *Node) error {
	record := node.Record
	nameEn := node.Name.En()

	switch node.Type {
	case gamecfg.ChargeBlade:
		if record.Wep1ID < 0 || record.Wep1ID >= len(cbPhials) {
			return fmt.Errorf("weapons: %s: unexpected phial value %d", nameEn, record.Wep1ID)
		}
		w.Phial = cbPhials[record.Wep1ID]

	case gamecfg.SwitchAxe:
		phial, ok := saxePhials[record.Wep1ID]
		if !ok {
			return fmt.Errorf("weapons: %s: unexpected phial value %d", nameEn, record.Wep1ID)
		}
		w.Phial = phial.kind
		w.PhialPower = phial.power

	case gamecfg.Gunlance:
		// First 5 values are normal, second 5 wide, third 5 long.
		kinds := []string{"normal", "wide", "long"}
		kind := record.Wep1ID / 5
		if kind < 0 || kind >= len(kinds) {
			return fmt.Errorf("weapons: %s: unexpected shelling value %d", nameEn, record.Wep1ID)
		}
		w.Shelling = kinds[kind]
		w.ShellingLevel = record.Wep1ID%5 + 1

	case gamecfg.InsectGlaive:
		if record.Wep1ID < 0 || record.Wep1ID >= len(glaiveBoosts) {
			return fmt.Errorf("weapons: %s: unexpected kinsect value %d", nameEn, record.Wep1ID)
		}
		w.KinsectBonus = glaiveBoosts[record.Wep1ID]

	case gamecfg.HuntingHorn:
		row, ok := b.notes[record.Wep1ID]
		if !ok {
			return fmt.Errorf("weapons: %s: no note row %d", nameEn, record.Wep1ID)
		}
		notes := ""
		for _, note := range row.Notes {
			if note < 0 || note >= len(noteColors) {
				return fmt.Errorf("weapons: %s: unexpected note value %d", nameEn, note)
			}
			notes += noteColors[note]
		}
		w.Notes = notes
	}
	return nil
}

// convertRecipe resolves a recipe record's ingredients to item names,
// dropping empty slots.
func (b *Binder) convertRecipe(recipe *loader.RecipeRecord) []dataset.RecipeItem {
	var items []dataset.RecipeItem
	for _, ingredient := range recipe.Items {
		if ingredient.Quantity == 0 {
			continue
		}
		items = append(items, dataset.RecipeItem{
			Item:     b.items.NameFor(ingredient.ItemID).En(),
			Quantity: ingredient.Quantity,
		})
	}
	return items
}
