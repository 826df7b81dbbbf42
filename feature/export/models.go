package export

// Item is the items table row.
type Item struct {
	ID       int    `gorm:"primaryKey"`
	NameEn   string `gorm:"column:name_en;index"`
	Rarity   int
	Category string
}

// Skill is the skills table row.
type Skill struct {
	ID     int    `gorm:"primaryKey"`
	NameEn string `gorm:"column:name_en;index"`
	MaxLvl int    `gorm:"column:max_level"`
}

// Monster is the monsters table row.
type Monster struct {
	ID     int    `gorm:"primaryKey"`
	NameEn string `gorm:"column:name_en;index"`
	Size   string
}

// MonsterReward is one reward table row.
type MonsterReward struct {
	ID         int `gorm:"primaryKey;autoIncrement"`
	MonsterID  int `gorm:"index"`
	ItemEn     string
	Rank       string
	Condition  string
	Stack      int
	Percentage int
}

// ArmorSet is the armor sets table row.
type ArmorSet struct {
	ID      int    `gorm:"primaryKey"`
	NameEn  string `gorm:"column:name_en;index"`
	Rank    string
	Order   int    `gorm:"column:sort_order"`
	Monster string `gorm:"column:monster_en"`
}

// ArmorPiece is the armor table row.
type ArmorPiece struct {
	ID     int    `gorm:"primaryKey"`
	NameEn string `gorm:"column:name_en;index"`
	Part   string
	Rank   string
	Order  int `gorm:"column:sort_order"`
}

// Weapon is the weapons table row.
type Weapon struct {
	ID         int    `gorm:"primaryKey"`
	NameEn     string `gorm:"column:name_en;index"`
	WeaponType string `gorm:"column:weapon_type"`
	PreviousEn string `gorm:"column:previous_en"`
	Rarity     int
	Attack     int
	Affinity   int
	Element1   string
	Element1A  int    `gorm:"column:element1_attack"`
	Elderseal  string
	AmmoConfig string `gorm:"column:ammo_config"`
}

// Translation is one localized name row; Entity names the owning table.
type Translation struct {
	ID       int    `gorm:"primaryKey;autoIncrement"`
	Entity   string `gorm:"index:idx_translation,priority:1"`
	EntityID int    `gorm:"index:idx_translation,priority:2"`
	Language string
	Name     string
}
