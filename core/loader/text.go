package loader

import (
	"hunterdb/core/datamap"
	"hunterdb/core/dataset"
)

// ItemNamer resolves item ids to localized names and remembers which ids
// were referenced, in first-encounter order. The encountered set drives the
// item completion pass after a build.
type ItemNamer struct {
	text        TextBlock
	encountered []int
	seen        map[int]bool
}

// NewItemNamer wraps an item text block.
func NewItemNamer(text TextBlock) *ItemNamer {
	return &ItemNamer{text: text, seen: make(map[int]bool)}
}

// NameFor returns the localized name of an item and records the encounter.
func (n *ItemNamer) NameFor(itemID int) datamap.Localized {
	if !n.seen[itemID] {
		n.seen[itemID] = true
		n.encountered = append(n.encountered, itemID)
	}
	return n.text[itemID]
}

// Encountered returns every item id passed to NameFor, in first-encounter
// order.
func (n *ItemNamer) Encountered() []int {
	return n.encountered
}

// CompleteItems inserts every named item the binders encountered that is
// missing from the item collection, in first-encounter order. Recipes may
// reference materials the curated collections never mention; without this
// pass those references fail validation. It returns the number of items
// added.
func CompleteItems(d *dataset.Data, items *ItemNamer) (int, error) {
	added := 0
	for _, id := range items.Encountered() {
		name := items.text[id]
		if name.En() == "" || d.Items.HasName("en", name.En()) {
			continue
		}
		if _, err := d.Items.Insert(d.Items.MaxID()+1, name, dataset.Item{}); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// SkillNamer resolves skill tree ids to localized names.
type SkillNamer struct {
	text TextBlock
}

// NewSkillNamer wraps a skill text block.
func NewSkillNamer(text TextBlock) *SkillNamer {
	return &SkillNamer{text: text}
}

// NameFor returns the localized name of a skill tree.
func (n *SkillNamer) NameFor(skillID int) datamap.Localized {
	return n.text[skillID]
}
