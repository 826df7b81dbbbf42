package armor

import (
	"fmt"

	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
	"hunterdb/core/loader"
)

// Bind inserts assembled sets and their member pieces into the dataset,
// in set order. setMonsters optionally tags sets (by English name) with the
// monster they are crafted from.
func Bind(d *dataset.Data, sets []*Set, items *loader.ItemNamer, skills *loader.SkillNamer, setMonsters map[string]string) error {
	for _, set := range sets {
		pieces := make(map[gamecfg.ArmorPart]string, len(set.Pieces))

		for _, piece := range set.Pieces {
			pieces[piece.Part] = piece.Name.En()

			entry := dataset.ArmorPiece{
				Part:  piece.Part,
				Rank:  piece.Rank(),
				Order: piece.Record.Order,
			}
			for _, ingredient := range piece.Recipe.Items {
				if ingredient.Quantity == 0 {
					continue
				}
				entry.Recipe = append(entry.Recipe, dataset.RecipeItem{
					Item:     items.NameFor(ingredient.ItemID).En(),
					Quantity: ingredient.Quantity,
				})
			}
			for _, slot := range piece.Record.Skills {
				if slot.SkillID == 0 {
					continue
				}
				entry.Skills = append(entry.Skills, dataset.SkillRef{
					Skill:  skills.NameFor(slot.SkillID).En(),
					Points: slot.Points,
				})
			}

			id := d.Armor.Len() + 1
			if _, err := d.Armor.Insert(id, piece.Name, entry); err != nil {
				return fmt.Errorf("armor: %s: %w", piece.Name.En(), err)
			}
		}

		id := d.ArmorSets.Len() + 1
		_, err := d.ArmorSets.Insert(id, set.Name, dataset.ArmorSet{
			Rank:    set.Rank(),
			Order:   set.Order,
			Monster: setMonsters[set.Name.En()],
			Pieces:  pieces,
		})
		if err != nil {
			return fmt.Errorf("armor: set %s: %w", set.Name.En(), err)
		}
	}
	return nil
}
