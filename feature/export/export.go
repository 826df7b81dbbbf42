package export

import (
	"fmt"

	"hunterdb/core/datamap"
	"hunterdb/core/dataset"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates the export schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Item{}, &Skill{}, &Monster{}, &MonsterReward{},
		&ArmorSet{}, &ArmorPiece{}, &Weapon{}, &Translation{},
	)
}

// Export writes the merged dataset into the database. Tables are written
// in a fixed order; each table is one batched insert.
func Export(db *gorm.DB, d *dataset.Data, log *zap.Logger) error {
	var translations []Translation

	collect := func(entity string, id int, name datamap.Localized) {
		for lang, value := range name {
			if lang == "en" || value == "" {
				continue
			}
			translations = append(translations, Translation{
				Entity:   entity,
				EntityID: id,
				Language: lang,
				Name:     value,
			})
		}
	}

	items := make([]Item, 0, d.Items.Len())
	for _, e := range d.Items.Entries() {
		items = append(items, Item{
			ID:       e.ID,
			NameEn:   e.Name.En(),
			Rarity:   e.Data.Rarity,
			Category: e.Data.Category,
		})
		collect("item", e.ID, e.Name)
	}

	skills := make([]Skill, 0, d.Skills.Len())
	for _, e := range d.Skills.Entries() {
		skills = append(skills, Skill{
			ID:     e.ID,
			NameEn: e.Name.En(),
			MaxLvl: len(e.Data.Levels),
		})
		collect("skill", e.ID, e.Name)
	}

	monsters := make([]Monster, 0, d.Monsters.Len())
	var rewards []MonsterReward
	for _, e := range d.Monsters.Entries() {
		monsters = append(monsters, Monster{
			ID:     e.ID,
			NameEn: e.Name.En(),
			Size:   e.Data.Size,
		})
		collect("monster", e.ID, e.Name)
		for _, reward := range e.Data.Rewards {
			rewards = append(rewards, MonsterReward{
				MonsterID:  e.ID,
				ItemEn:     reward.Item,
				Rank:       reward.Rank,
				Condition:  reward.Condition,
				Stack:      reward.Stack,
				Percentage: reward.Percentage,
			})
		}
	}

	armorSets := make([]ArmorSet, 0, d.ArmorSets.Len())
	for _, e := range d.ArmorSets.Entries() {
		armorSets = append(armorSets, ArmorSet{
			ID:      e.ID,
			NameEn:  e.Name.En(),
			Rank:    e.Data.Rank,
			Order:   e.Data.Order,
			Monster: e.Data.Monster,
		})
		collect("armorset", e.ID, e.Name)
	}

	armorPieces := make([]ArmorPiece, 0, d.Armor.Len())
	for _, e := range d.Armor.Entries() {
		armorPieces = append(armorPieces, ArmorPiece{
			ID:     e.ID,
			NameEn: e.Name.En(),
			Part:   string(e.Data.Part),
			Rank:   e.Data.Rank,
			Order:  e.Data.Order,
		})
		collect("armor", e.ID, e.Name)
	}

	weapons := make([]Weapon, 0, d.Weapons.Len())
	for _, e := range d.Weapons.Entries() {
		weapons = append(weapons, Weapon{
			ID:         e.ID,
			NameEn:     e.Name.En(),
			WeaponType: string(e.Data.Type),
			PreviousEn: e.Data.Previous,
			Rarity:     e.Data.Rarity,
			Attack:     e.Data.Attack,
			Affinity:   e.Data.Affinity,
			Element1:   e.Data.Element1,
			Element1A:  e.Data.Element1Atk,
			Elderseal:  e.Data.Elderseal,
			AmmoConfig: e.Data.AmmoConfig,
		})
		collect("weapon", e.ID, e.Name)
	}

	steps := []struct {
		table string
		rows  any
		count int
	}{
		{"items", items, len(items)},
		{"skills", skills, len(skills)},
		{"monsters", monsters, len(monsters)},
		{"monster_rewards", rewards, len(rewards)},
		{"armor_sets", armorSets, len(armorSets)},
		{"armor_pieces", armorPieces, len(armorPieces)},
		{"weapons", weapons, len(weapons)},
		{"translations", translations, len(translations)},
	}

	for _, step := range steps {
		if step.count == 0 {
			continue
		}
		if err := db.Create(step.rows).Error; err != nil {
			return fmt.Errorf("export: insert %s: %w", step.table, err)
		}
		if log != nil {
			log.Info("exported table",
				zap.String("table", step.table),
				zap.Int("rows", step.count))
		}
	}
	return nil
}
