package validate

import (
	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
)

// ItemsRule verifies that every item referenced by a crafting combination
// exists in the item index.
type ItemsRule struct{}

func (*ItemsRule) Name() string { return "items" }

func (*ItemsRule) Evaluate(d *dataset.Data, _ gamecfg.Config) []Issue {
	var issues []Issue
	for _, combo := range d.Combinations {
		for _, item := range []string{combo.Result, combo.First, combo.Second} {
			if item == "" {
				continue
			}
			if !d.Items.HasName("en", item) {
				issues = append(issues, errorf(item, "item in combinations doesn't exist"))
			}
		}
	}
	return issues
}

// LocationsRule verifies that every item listed in a location exists in the
// item index for the language the reference is written in.
type LocationsRule struct{}

func (*LocationsRule) Name() string { return "locations" }

func (*LocationsRule) Evaluate(d *dataset.Data, _ gamecfg.Config) []Issue {
	var issues []Issue
	for _, location := range d.Locations.Entries() {
		for _, item := range location.Data.Items {
			if !d.Items.HasName(item.ItemLang, item.Item) {
				issues = append(issues, errorf(location.Name.En(),
					"location item %s (%s) doesn't exist", item.Item, item.ItemLang))
			}
		}
	}
	return issues
}

// CharmsRule verifies that every charm's upgrade predecessor exists.
type CharmsRule struct{}

func (*CharmsRule) Name() string { return "charms" }

func (*CharmsRule) Evaluate(d *dataset.Data, _ gamecfg.Config) []Issue {
	var issues []Issue
	for _, charm := range d.Charms.Entries() {
		previous := charm.Data.Previous
		if previous != "" && !d.Charms.HasName("en", previous) {
			issues = append(issues, errorf(charm.Name.En(),
				"previous charm %s does not exist", previous))
		}
		for _, ref := range charm.Data.Skills {
			if !d.Skills.HasName("en", ref.Skill) {
				issues = append(issues, errorf(charm.Name.En(),
					"skill %s in charm does not exist", ref.Skill))
			}
		}
	}
	return issues
}
