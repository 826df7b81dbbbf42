package loader

import (
	"fmt"

	"hunterdb/core/datamap"
	"hunterdb/core/dataset"
)

// Curated holds the human-authored entity collections that accompany the
// decoded binary records: monsters, skills, items, and the other reference
// data the validation engine cross-checks against.
type Curated struct {
	Items            []CuratedEntry[dataset.Item]            `json:"items"`
	Combinations     []dataset.Combination                   `json:"combinations"`
	Locations        []CuratedEntry[dataset.Location]        `json:"locations"`
	Skills           []CuratedEntry[dataset.Skill]           `json:"skills"`
	Monsters         []CuratedEntry[dataset.Monster]         `json:"monsters"`
	RewardConditions []CuratedEntry[dataset.RewardCondition] `json:"reward_conditions"`
	Charms           []CuratedEntry[dataset.Charm]           `json:"charms"`
	SetBonuses       []CuratedEntry[dataset.SetBonus]        `json:"set_bonuses"`

	// SetMonsters tags an armor set (by English name) with the monster it
	// is crafted from, for sets that have one.
	SetMonsters map[string]string `json:"set_monsters"`

	// WeaponCategories tags weapons (by English name) with a special
	// category, e.g. "Kulve" for uncraftable drops.
	WeaponCategories map[string]string `json:"weapon_categories"`
}

// CuratedEntry pairs an id and localized name with an entity payload.
type CuratedEntry[T any] struct {
	ID   int               `json:"id"`
	Name datamap.Localized `json:"name"`
	Data T                 `json:"data"`
}

// LoadCurated reads every curated collection from the data directory.
func LoadCurated(cfg Config) (*Curated, error) {
	out := &Curated{}
	if err := readJSON(cfg.Dir, "curated.json", out); err != nil {
		return nil, err
	}
	return out, nil
}

// Apply inserts the curated collections into a dataset. Insertion order
// follows document order so downstream output stays deterministic.
func (c *Curated) Apply(d *dataset.Data) error {
	if err := insertAll(d.Items, c.Items); err != nil {
		return fmt.Errorf("items: %w", err)
	}
	if err := insertAll(d.Locations, c.Locations); err != nil {
		return fmt.Errorf("locations: %w", err)
	}
	if err := insertAll(d.Skills, c.Skills); err != nil {
		return fmt.Errorf("skills: %w", err)
	}
	if err := insertAll(d.Monsters, c.Monsters); err != nil {
		return fmt.Errorf("monsters: %w", err)
	}
	if err := insertAll(d.RewardConditions, c.RewardConditions); err != nil {
		return fmt.Errorf("reward conditions: %w", err)
	}
	if err := insertAll(d.Charms, c.Charms); err != nil {
		return fmt.Errorf("charms: %w", err)
	}
	if err := insertAll(d.SetBonuses, c.SetBonuses); err != nil {
		return fmt.Errorf("set bonuses: %w", err)
	}
	d.Combinations = append(d.Combinations, c.Combinations...)
	return nil
}

func insertAll[T any](m *datamap.Map[T], entries []CuratedEntry[T]) error {
	for _, e := range entries {
		if _, err := m.Insert(e.ID, e.Name, e.Data); err != nil {
			return err
		}
	}
	return nil
}
