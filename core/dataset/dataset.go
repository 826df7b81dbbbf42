package dataset

import (
	"hunterdb/core/datamap"
	"hunterdb/core/gamecfg"
)

// RecipeItem is one ingredient line of a crafting recipe, referencing the
// item by its English name.
type RecipeItem struct {
	Item     string
	Quantity int
}

// Recipe is a weapon crafting recipe. Type is "Create" for from-scratch
// recipes and "Upgrade" for recipes applied to the previous weapon.
type Recipe struct {
	Type  string
	Items []RecipeItem
}

// SkillRef is a reference to a skill with a point or level value.
type SkillRef struct {
	Skill  string
	Points int
}

// Item is a carryable item, material, or ammo definition.
type Item struct {
	Rarity      int
	Category    string
	Subcategory string
	SellPrice   int
	Points      int
	CarryLimit  int
	Description datamap.Localized
}

// Combination is a crafting combination of two items into a result,
// all referenced by English name. First-only combinations leave Second empty.
type Combination struct {
	Result string
	First  string
	Second string
}

// LocationItem is one gatherable item within a location. ItemLang names the
// language the Item reference is written in.
type LocationItem struct {
	ItemLang string
	Item     string
}

// Location is a hunting locale with its gatherable items.
type Location struct {
	Items []LocationItem
}

// SkillLevel is one effect tier of a skill.
type SkillLevel struct {
	Level       int
	Description string
}

// Skill is an equipment skill with its declared effect levels.
type Skill struct {
	Levels []SkillLevel
}

// Weakness maps an element or ailment name to its effectiveness stars.
type Weakness map[string]int

// MonsterReward is one drop table row for a monster.
type MonsterReward struct {
	Item       string
	Rank       string
	Condition  string
	Stack      int
	Percentage int
}

// Monster is a huntable monster. Weaknesses maps a state name (the "normal"
// state is required for non-small monsters) to its weakness table; a nil map
// means the monster declares no weaknesses at all.
type Monster struct {
	Size       string
	Weaknesses map[string]Weakness
	Rewards    []MonsterReward
}

// RewardCondition carries no payload; the collection exists purely as the
// canonical name index for reward condition references.
type RewardCondition struct{}

// Charm is a crafted charm, optionally upgraded from a previous charm.
type Charm struct {
	Previous string
	Skills   []SkillRef
}

// ArmorPiece is a single equippable armor piece.
type ArmorPiece struct {
	Part   gamecfg.ArmorPart
	Rank   string
	Order  int
	Recipe []RecipeItem
	Skills []SkillRef
}

// ArmorSet is a named group of armor pieces, at most one per part.
// Pieces maps the part to the piece's English name.
type ArmorSet struct {
	Rank    string
	Order   int
	Monster string
	Pieces  map[gamecfg.ArmorPart]string
}

// SetBonus is an armor set bonus granting skills at piece thresholds.
type SetBonus struct {
	Skills []SkillRef
}

// Sharpness is a weapon sharpness profile. Values are the pool sizes of
// each color at maximum handicraft; Maxed marks blades that gain nothing
// from handicraft.
type Sharpness struct {
	Maxed  bool
	Red    int
	Orange int
	Yellow int
	Green  int
	Blue   int
	White  int
	Purple int
}

// Reduce removes the given amount of sharpness from the profile, draining
// the highest colors first. Used to step a maximum-handicraft profile down
// to the weapon's base bar.
func (s *Sharpness) Reduce(amount int) {
	pools := []*int{&s.Purple, &s.White, &s.Blue, &s.Green, &s.Yellow, &s.Orange, &s.Red}
	for _, pool := range pools {
		if amount <= 0 {
			return
		}
		take := *pool
		if take > amount {
			take = amount
		}
		*pool -= take
		amount -= take
	}
}

// BowCoatings lists which coatings a bow can load.
type BowCoatings struct {
	Close     bool
	Power     bool
	Paralysis bool
	Poison    bool
	Sleep     bool
	Blast     bool
}

// Bullet is the configuration of one ammo type within an ammo config.
// Rapid is nil for ammo types that can never rapid-fire; Recoil is nil when
// the bullet is unusable or the type has no recoil (wyvern ammo).
type Bullet struct {
	Name   string
	Clip   int
	Rapid  *bool
	Recoil *int
	Reload string
}

// AmmoConfig is a bowgun ammo configuration shared between weapons.
type AmmoConfig struct {
	Deviation string
	Special   string
	Bullets   []Bullet
}

// Weapon is a fully bound weapon entry.
type Weapon struct {
	Type          gamecfg.WeaponType
	Category      string
	Previous      string
	Rarity        int
	Attack        int
	Affinity      int
	Defense       int
	Slots         [3]int
	Element1      string
	Element1Atk   int
	Element2      string
	Element2Atk   int
	ElementHidden bool
	Elderseal     string
	Phial         string
	PhialPower    int
	Shelling      string
	ShellingLevel int
	KinsectBonus  string
	Notes         string
	Skill         string
	Sharpness     *Sharpness
	AmmoConfig    string
	Bow           *BowCoatings
	Craft         []Recipe
}

// Data is the complete merged dataset for one build run.
type Data struct {
	Items            *datamap.Map[Item]
	Combinations     []Combination
	Locations        *datamap.Map[Location]
	Skills           *datamap.Map[Skill]
	Monsters         *datamap.Map[Monster]
	RewardConditions *datamap.Map[RewardCondition]
	Charms           *datamap.Map[Charm]
	Armor            *datamap.Map[ArmorPiece]
	ArmorSets        *datamap.Map[ArmorSet]
	SetBonuses       *datamap.Map[SetBonus]
	Weapons          *datamap.Map[Weapon]
	AmmoConfigs      *datamap.Map[AmmoConfig]
}

// New returns a Data with every collection allocated and empty.
func New() *Data {
	return &Data{
		Items:            datamap.New[Item](),
		Locations:        datamap.New[Location](),
		Skills:           datamap.New[Skill](),
		Monsters:         datamap.New[Monster](),
		RewardConditions: datamap.New[RewardCondition](),
		Charms:           datamap.New[Charm](),
		Armor:            datamap.New[ArmorPiece](),
		ArmorSets:        datamap.New[ArmorSet](),
		SetBonuses:       datamap.New[SetBonus](),
		Weapons:          datamap.New[Weapon](),
		AmmoConfigs:      datamap.New[AmmoConfig](),
	}
}
