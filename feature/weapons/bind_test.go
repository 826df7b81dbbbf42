package weapons

import (
	"testing"

	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
	"hunterdb/core/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureBinder() *Binder {
	sharpness := NewSharpnessReader(map[int]loader.SharpnessRecord{
		1: {ID: 1, Red: 50, Orange: 100, Yellow: 150, Green: 200, Blue: 250, White: 350, Purple: 400},
	})
	ammo := NewAmmoBuilder(fixtureShells())
	notes := map[int]loader.NoteRecord{
		4: {ID: 4, Notes: [3]int{1, 3, 5}},
	}
	coatings := map[int]loader.CoatingRecord{
		0: {ID: 0, CloseRange: 1, Power: 1, Poison: 1},
	}
	items := loader.NewItemNamer(loader.TextBlock{
		100: name("Iron Ore"),
		101: name("Monster Bone S"),
	})
	skills := loader.NewSkillNamer(loader.TextBlock{
		7: name("Attack Boost"),
	})
	categories := map[string]string{"Taroth Blaze": "Kulve"}

	return NewBinder(gamecfg.Default(), sharpness, ammo, notes, coatings, items, skills, categories)
}

// singleNodeTree builds a finished one-node tree for direct bind tests.
func singleNodeTree(wtype gamecfg.WeaponType, node *Node) *Tree {
	tree := newTree(wtype)
	node.Type = wtype
	node.parent = noParent
	tree.add(node)
	tree.finish()
	return tree
}

func TestBindMeleeWeapon(t *testing.T) {
	binder := fixtureBinder()
	d := dataset.New()

	tree := singleNodeTree(gamecfg.GreatSword, &Node{
		ID:       1,
		Name:     name("Buster Sword I"),
		TreeName: "Ore",
		Craft: &loader.RecipeRecord{
			Items: [4]loader.Ingredient{{ItemID: 100, Quantity: 1}, {ItemID: 101, Quantity: 2}},
		},
		Record: loader.WeaponRecord{
			ID: 1, Rarity: 0, RawDamage: 100, Affinity: -10, Defense: 5,
			ElementID: 5, ElementDamage: 12, Elderseal: 2,
			GemSlot1Lvl: 1, SkillID: 7, KireID: 1, Handicraft: 5,
		},
	})
	require.NoError(t, binder.Bind(d, tree))

	entry, ok := d.Weapons.EntryOf("en", "Buster Sword I")
	require.True(t, ok)
	w := entry.Data

	assert.Equal(t, 1, entry.ID)
	assert.Equal(t, gamecfg.GreatSword, w.Type)
	assert.Equal(t, 1, w.Rarity, "stored rarity is zero-based")
	assert.Equal(t, 480, w.Attack, "display attack is raw damage times the class multiplier")
	assert.Equal(t, -10, w.Affinity)
	assert.Equal(t, [3]int{1, 0, 0}, w.Slots)
	assert.Empty(t, w.Previous)

	assert.Equal(t, "Dragon", w.Element1)
	assert.Equal(t, 120, w.Element1Atk)
	assert.False(t, w.ElementHidden)
	assert.Equal(t, "average", w.Elderseal)
	assert.Equal(t, "Attack Boost", w.Skill)

	require.NotNil(t, w.Sharpness)
	assert.True(t, w.Sharpness.Maxed)

	require.Len(t, w.Craft, 1)
	assert.Equal(t, "Create", w.Craft[0].Type)
	assert.Equal(t, []dataset.RecipeItem{
		{Item: "Iron Ore", Quantity: 1},
		{Item: "Monster Bone S", Quantity: 2},
	}, w.Craft[0].Items)
}

func TestBindHiddenElement(t *testing.T) {
	binder := fixtureBinder()
	d := dataset.New()

	tree := singleNodeTree(gamecfg.GreatSword, &Node{
		ID:   1,
		Name: name("Sleepy Blade"),
		Record: loader.WeaponRecord{
			ID: 1, RawDamage: 100,
			ElementID: 0, HiddenElementID: 8, HiddenElementDamage: 24,
			KireID: 1,
		},
	})
	require.NoError(t, binder.Bind(d, tree))

	entry, _ := d.Weapons.EntryOf("en", "Sleepy Blade")
	assert.True(t, entry.Data.ElementHidden)
	assert.Equal(t, "Sleep", entry.Data.Element1)
	assert.Equal(t, 240, entry.Data.Element1Atk)
}

func TestBindPreviousFromTree(t *testing.T) {
	binder := fixtureBinder()
	d := dataset.New()

	tree := newTree(gamecfg.GreatSword)
	parent := &Node{
		ID: 1, Type: gamecfg.GreatSword, Name: name("Buster Sword I"),
		TreeName: "Ore", parent: noParent,
		Record: loader.WeaponRecord{ID: 1, RawDamage: 100, KireID: 1, Handicraft: 5},
	}
	child := &Node{
		ID: 2, Type: gamecfg.GreatSword, Name: name("Buster Sword II"),
		TreeName: "Ore", parent: 1,
		Record: loader.WeaponRecord{ID: 2, RawDamage: 110, KireID: 1, Handicraft: 5},
	}
	parent.children = []int{2}
	tree.add(parent)
	tree.add(child)
	tree.finish()

	require.NoError(t, binder.Bind(d, tree))

	entry, ok := d.Weapons.EntryOf("en", "Buster Sword II")
	require.True(t, ok)
	assert.Equal(t, "Buster Sword I", entry.Data.Previous)
	assert.Equal(t, 2, entry.ID, "crafting order assigns sequential ids")
}

func TestBindBow(t *testing.T) {
	binder := fixtureBinder()
	d := dataset.New()

	tree := singleNodeTree(gamecfg.Bow, &Node{
		ID:   1,
		Name: name("Hunter's Bow I"),
		Record: loader.WeaponRecord{
			ID: 1, RawDamage: 100, SpecialAmmoType: 0,
		},
	})
	require.NoError(t, binder.Bind(d, tree))

	entry, _ := d.Weapons.EntryOf("en", "Hunter's Bow I")
	require.NotNil(t, entry.Data.Bow)
	assert.True(t, entry.Data.Bow.Close)
	assert.True(t, entry.Data.Bow.Power)
	assert.True(t, entry.Data.Bow.Poison)
	assert.False(t, entry.Data.Bow.Paralysis)
	assert.Nil(t, entry.Data.Sharpness)
}

func TestBindBowgun(t *testing.T) {
	binder := fixtureBinder()

	t.Run("TreeNamedConfig", func(t *testing.T) {
		d := dataset.New()
		tree := singleNodeTree(gamecfg.LightBowgun, &Node{
			ID:       1,
			Name:     name("Chain Blitz I"),
			TreeName: "Ore Tree",
			Record:   loader.WeaponRecord{ID: 1, RawDamage: 100, ShellTableID: 1},
		})
		require.NoError(t, binder.Bind(d, tree))

		entry, _ := d.Weapons.EntryOf("en", "Chain Blitz I")
		assert.Equal(t, "LBG Ore", entry.Data.AmmoConfig)
	})

	t.Run("KulveOverridesTreeLabel", func(t *testing.T) {
		d := dataset.New()
		tree := singleNodeTree(gamecfg.LightBowgun, &Node{
			ID:     2,
			Name:   name("Taroth Blaze"),
			Record: loader.WeaponRecord{ID: 2, RawDamage: 100, ShellTableID: 2},
		})
		require.NoError(t, binder.Bind(d, tree))

		entry, _ := d.Weapons.EntryOf("en", "Taroth Blaze")
		assert.Equal(t, "Kulve", entry.Data.Category)
		assert.Equal(t, "LBG Kulve", entry.Data.AmmoConfig)
	})
}

func TestBindMeleeExtensions(t *testing.T) {
	binder := fixtureBinder()

	bind := func(t *testing.T, wtype gamecfg.WeaponType, wep1 int) dataset.Weapon {
		t.Helper()
		w := dataset.Weapon{}
		node := &Node{Type: wtype, Name: name("Test"), Record: loader.WeaponRecord{Wep1ID: wep1}}
		require.NoError(t, binder.bindMeleeExt(&w, node))
		return w
	}

	t.Run("ChargeBladePhial", func(t *testing.T) {
		w := bind(t, gamecfg.ChargeBlade, 0)
		assert.Equal(t, "impact", w.Phial)
	})

	t.Run("SwitchAxePhial", func(t *testing.T) {
		w := bind(t, gamecfg.SwitchAxe, 6)
		assert.Equal(t, "dragon", w.Phial)
		assert.Equal(t, 300, w.PhialPower)
	})

	t.Run("GunlanceShelling", func(t *testing.T) {
		w := bind(t, gamecfg.Gunlance, 7)
		assert.Equal(t, "wide", w.Shelling)
		assert.Equal(t, 3, w.ShellingLevel)
	})

	t.Run("InsectGlaiveBoost", func(t *testing.T) {
		w := bind(t, gamecfg.InsectGlaive, 3)
		assert.Equal(t, "speed", w.KinsectBonus)
	})

	t.Run("HuntingHornNotes", func(t *testing.T) {
		w := bind(t, gamecfg.HuntingHorn, 4)
		assert.Equal(t, "RYB", w.Notes)
	})

	t.Run("UnknownPhial", func(t *testing.T) {
		w := dataset.Weapon{}
		node := &Node{Type: gamecfg.SwitchAxe, Name: name("Test"), Record: loader.WeaponRecord{Wep1ID: 99}}
		assert.Error(t, binder.bindMeleeExt(&w, node))
	})
}

func TestBindSkipsKnownBadElementData(t *testing.T) {
	binder := fixtureBinder()
	d := dataset.New()

	tree := singleNodeTree(gamecfg.DualBlades, &Node{
		ID:   1,
		Name: name("Fire and Ice"),
		Record: loader.WeaponRecord{
			ID: 1, RawDamage: 100, ElementID: 1, ElementDamage: 10, KireID: 1,
		},
	})
	require.NoError(t, binder.Bind(d, tree))

	entry, _ := d.Weapons.EntryOf("en", "Fire and Ice")
	assert.Empty(t, entry.Data.Element1)
	assert.Zero(t, entry.Data.Element1Atk)
}
