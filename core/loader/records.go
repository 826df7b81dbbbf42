package loader

// WeaponRecord is one flat weapon entry. Melee-only fields (sharpness,
// handicraft, wep1) are zero for bowguns and vice versa; the assembler and
// binder know which fields apply to which weapon type.
type WeaponRecord struct {
	ID        int `json:"id"`
	TreeID    int `json:"tree_id"`
	NameIndex int `json:"name_index"`

	Rarity    int `json:"rarity"`
	RawDamage int `json:"raw_damage"`
	Defense   int `json:"defense"`
	Affinity  int `json:"affinity"`

	ElementID           int `json:"element_id"`
	ElementDamage       int `json:"element_damage"`
	HiddenElementID     int `json:"hidden_element_id"`
	HiddenElementDamage int `json:"hidden_element_damage"`
	Elderseal           int `json:"elderseal"`

	GemSlot1Lvl int `json:"gem_slot1_lvl"`
	GemSlot2Lvl int `json:"gem_slot2_lvl"`
	GemSlot3Lvl int `json:"gem_slot3_lvl"`

	SkillID int `json:"skill_id"`

	// Melee
	KireID     int `json:"kire_id"`
	Handicraft int `json:"handicraft"`
	Wep1ID     int `json:"wep1_id"`

	// Bowgun
	ShellTableID    int `json:"shell_table_id"`
	Deviation       int `json:"deviation"`
	SpecialAmmoType int `json:"special_ammo_type"`
}

// Ingredient is one item/quantity pair of a recipe record. A zero quantity
// in the first slot marks the whole recipe as unused.
type Ingredient struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// RecipeRecord is a crafting side-table entry keyed by (equip type, equip id).
type RecipeRecord struct {
	EquipType int           `json:"equip_type"`
	EquipID   int           `json:"equip_id"`
	Items     [4]Ingredient `json:"items"`
}

// UpgradeRecord is an upgrade side-table entry. Each descendant slot is
// either 0 (empty) or an index into the upgrade table itself, not a weapon
// id; the table's ordinal positions are the address space.
type UpgradeRecord struct {
	RecipeRecord
	Descendants [4]int `json:"descendants"`
}

// ArmorRecord is one flat armor entry.
type ArmorRecord struct {
	ID        int `json:"id"`
	NameIndex int `json:"name_index"`
	SetID     int `json:"set_id"`
	Type      int `json:"type"`
	Gender    int `json:"gender"`
	Order     int `json:"order"`
	Variant   int `json:"variant"`
	EquipSlot int `json:"equip_slot"`

	Skills [3]SkillSlot `json:"skills"`
}

// SkillSlot is a skill grant on an armor record. SkillID 0 means empty.
type SkillSlot struct {
	SkillID int `json:"skill_id"`
	Points  int `json:"points"`
}

// SharpnessRecord carries the raw sharpness pools of one kire table row.
// Values are cumulative end positions, not pool sizes.
type SharpnessRecord struct {
	ID     int `json:"id"`
	Red    int `json:"red"`
	Orange int `json:"orange"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
	Blue   int `json:"blue"`
	White  int `json:"white"`
	Purple int `json:"purple"`
}

// ShellBullet is the raw clip/recoil/reload tuple for one bullet type of a
// shell table row.
type ShellBullet struct {
	Capacity int `json:"capacity"`
	Recoil   int `json:"recoil"`
	Reload   int `json:"reload"`
}

// ShellRecord is one shell (ammo) table row, keyed by bullet type name.
type ShellRecord struct {
	ID      int                    `json:"id"`
	Bullets map[string]ShellBullet `json:"bullets"`
}

// NoteRecord is one hunting horn note table row.
type NoteRecord struct {
	ID    int    `json:"id"`
	Notes [3]int `json:"notes"`
}

// CoatingRecord is one bow coating table row. Nonzero means usable.
type CoatingRecord struct {
	ID         int `json:"id"`
	CloseRange int `json:"close_range"`
	Power      int `json:"power"`
	Paralysis  int `json:"paralysis"`
	Poison     int `json:"poison"`
	Sleep      int `json:"sleep"`
	Blast      int `json:"blast"`
}
