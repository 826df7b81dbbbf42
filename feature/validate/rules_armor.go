package validate

import (
	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
)

// ArmorRule verifies structural uniqueness of armor sets and referential
// integrity of armor data: no piece in two sets, every piece in exactly one
// set, set monster references resolve, recipe items and skills exist, and
// set bonuses grant real skills. A set without any member pieces is only a
// warning.
type ArmorRule struct{}

func (*ArmorRule) Name() string { return "armor" }

func (*ArmorRule) Evaluate(d *dataset.Data, cfg gamecfg.Config) []Issue {
	var issues []Issue

	// Pieces already claimed by a set, by armor id.
	encountered := make(map[int]bool)

	parts := make([]gamecfg.ArmorPart, 0, len(cfg.ArmorParts)+1)
	parts = append(parts, cfg.ArmorParts...)
	parts = append(parts, gamecfg.PartCharm)

	for _, set := range d.ArmorSets.Entries() {
		setName := set.Name.En()

		if monster := set.Data.Monster; monster != "" && !d.Monsters.HasName("en", monster) {
			issues = append(issues, errorf(setName, "invalid monster %s", monster))
		}

		memberless := true
		for _, part := range parts {
			armorName, ok := set.Data.Pieces[part]
			if !ok || armorName == "" {
				continue
			}
			memberless = false

			armorID, ok := d.Armor.IDOf("en", armorName)
			if !ok {
				issues = append(issues, errorf(setName, "invalid armor %s", armorName))
				continue
			}
			if encountered[armorID] {
				issues = append(issues, errorf(setName, "duplicated armor %s", armorName))
				continue
			}
			encountered[armorID] = true
		}

		if memberless {
			issues = append(issues, warnf(setName, "armor set has no armor entries"))
		}
	}

	for _, armor := range d.Armor.Entries() {
		name := armor.Name.En()

		if !encountered[armor.ID] {
			issues = append(issues, errorf(name, "armor is not in an armor set"))
		}
		for _, ingredient := range armor.Data.Recipe {
			if !d.Items.HasName("en", ingredient.Item) {
				issues = append(issues, errorf(name, "item %s in armor recipe does not exist", ingredient.Item))
			}
		}
		for _, ref := range armor.Data.Skills {
			if !d.Skills.HasName("en", ref.Skill) {
				issues = append(issues, errorf(name, "skill %s in armor does not exist", ref.Skill))
			}
		}
	}

	for _, bonus := range d.SetBonuses.Entries() {
		for _, ref := range bonus.Data.Skills {
			if !d.Skills.HasName("en", ref.Skill) {
				issues = append(issues, errorf(bonus.Name.En(),
					"skill %s in set bonus does not exist", ref.Skill))
			}
		}
	}

	return issues
}
