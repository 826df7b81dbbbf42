package gamecfg

// WeaponType identifies one of the fourteen weapon classes.
type WeaponType string

const (
	GreatSword     WeaponType = "great-sword"
	LongSword      WeaponType = "long-sword"
	SwordAndShield WeaponType = "sword-and-shield"
	DualBlades     WeaponType = "dual-blades"
	Hammer         WeaponType = "hammer"
	HuntingHorn    WeaponType = "hunting-horn"
	Lance          WeaponType = "lance"
	Gunlance       WeaponType = "gunlance"
	SwitchAxe      WeaponType = "switch-axe"
	ChargeBlade    WeaponType = "charge-blade"
	InsectGlaive   WeaponType = "insect-glaive"
	Bow            WeaponType = "bow"
	HeavyBowgun    WeaponType = "heavy-bowgun"
	LightBowgun    WeaponType = "light-bowgun"
)

// Rank identifiers for armor and monster reward data.
const (
	RankLow  = "LR"
	RankHigh = "HR"
)

// ArmorPart identifies the equip slot an armor piece occupies.
type ArmorPart string

const (
	PartHead  ArmorPart = "head"
	PartChest ArmorPart = "chest"
	PartArms  ArmorPart = "arms"
	PartWaist ArmorPart = "waist"
	PartLegs  ArmorPart = "legs"
	PartCharm ArmorPart = "charm"
)

// Config bundles the domain constants consumed by the assemblers and the
// validation registry. Treat a Config as immutable once constructed.
type Config struct {
	// WeaponTypes lists all weapon types in equip-type order. The position
	// of a type in this slice is the equip_type value used by the craft and
	// upgrade side-tables.
	WeaponTypes []WeaponType

	// MeleeTypes is the set of weapon types that carry sharpness data.
	MeleeTypes map[WeaponType]bool

	// GunTypes is the set of bowgun types that carry ammo configurations.
	GunTypes map[WeaponType]bool

	// WeaponMultiplier maps each weapon type to its display attack
	// multiplier. Dividing display attack by this value yields true attack.
	WeaponMultiplier map[WeaponType]float64

	// SupportedRanks lists the ranks reward tables may reference.
	SupportedRanks []string

	// ArmorParts lists the parts an armor set may contain, excluding charms.
	ArmorParts []ArmorPart

	// EquipSlotParts maps the armor record equip_slot field to a part.
	EquipSlotParts []ArmorPart

	// UncappedConditions is the set of reward conditions whose percentage
	// totals may exceed 100.
	UncappedConditions map[string]bool

	// Languages lists the supported language codes, "en" first.
	Languages []string
}

// Default returns the Config for the supported game data.
func Default() Config {
	return Config{
		WeaponTypes: []WeaponType{
			GreatSword, SwordAndShield, DualBlades, LongSword,
			Hammer, HuntingHorn, Lance, Gunlance, SwitchAxe,
			ChargeBlade, InsectGlaive, Bow, HeavyBowgun, LightBowgun,
		},
		MeleeTypes: map[WeaponType]bool{
			GreatSword: true, LongSword: true, SwordAndShield: true,
			DualBlades: true, Hammer: true, HuntingHorn: true,
			Lance: true, Gunlance: true, SwitchAxe: true,
			ChargeBlade: true, InsectGlaive: true,
		},
		GunTypes: map[WeaponType]bool{
			LightBowgun: true, HeavyBowgun: true,
		},
		WeaponMultiplier: map[WeaponType]float64{
			GreatSword:     4.8,
			LongSword:      3.3,
			SwordAndShield: 1.4,
			DualBlades:     1.4,
			Hammer:         5.2,
			HuntingHorn:    4.2,
			Lance:          2.3,
			Gunlance:       2.3,
			SwitchAxe:      3.5,
			ChargeBlade:    3.6,
			InsectGlaive:   3.1,
			Bow:            1.2,
			HeavyBowgun:    1.5,
			LightBowgun:    1.3,
		},
		SupportedRanks: []string{RankLow, RankHigh},
		ArmorParts: []ArmorPart{
			PartHead, PartChest, PartArms, PartWaist, PartLegs,
		},
		EquipSlotParts: []ArmorPart{
			PartHead, PartChest, PartArms, PartWaist, PartLegs, PartCharm,
		},
		UncappedConditions: map[string]bool{
			"Quest Reward (Bronze)": true,
		},
		Languages: []string{
			"en", "ja", "fr", "de", "it", "es",
			"pt", "pl", "ru", "ko", "zh", "ar",
		},
	}
}

// IsMelee reports whether the weapon type carries sharpness data.
func (c *Config) IsMelee(t WeaponType) bool { return c.MeleeTypes[t] }

// IsGun reports whether the weapon type carries an ammo configuration.
func (c *Config) IsGun(t WeaponType) bool { return c.GunTypes[t] }

// RankOrder returns the sort ordinal of a rank, low before high.
func RankOrder(rank string) int {
	if rank == RankLow {
		return 0
	}
	return 1
}
