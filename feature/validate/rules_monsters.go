package validate

import (
	"fmt"

	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
)

// MonstersRule verifies weakness completeness: every monster that is not
// small must declare a weakness table, and a declared table must contain
// the "normal" state. An entirely absent table is only a warning.
type MonstersRule struct{}

func (*MonstersRule) Name() string { return "monsters" }

func (*MonstersRule) Evaluate(d *dataset.Data, _ gamecfg.Config) []Issue {
	var issues []Issue
	for _, monster := range d.Monsters.Entries() {
		if monster.Data.Size == "small" {
			continue
		}
		name := monster.Name.En()

		if monster.Data.Weaknesses == nil {
			issues = append(issues, warnf(name, "large monster does not contain a weakness entry"))
			continue
		}
		if _, ok := monster.Data.Weaknesses["normal"]; !ok {
			issues = append(issues, errorf(name, "invalid weaknesses, normal is a required state"))
		}
	}
	return issues
}

// RewardsRule verifies monster reward tables: reward conditions, items, and
// ranks must resolve, and the percentages of each (monster, rank,
// condition) group must sum to exactly 100, or at least 100 for uncapped
// conditions. Reference failures skip the percentage check for that
// monster, and every finding is de-duplicated so a violating group yields
// one issue, not one per record.
type RewardsRule struct{}

func (*RewardsRule) Name() string { return "monster-rewards" }

func (*RewardsRule) Evaluate(d *dataset.Data, cfg gamecfg.Config) []Issue {
	var issues []Issue
	seen := make(map[string]bool)

	add := func(issue Issue) {
		key := issue.String()
		if seen[key] {
			return
		}
		seen[key] = true
		issues = append(issues, issue)
	}

	supported := make(map[string]bool, len(cfg.SupportedRanks))
	for _, rank := range cfg.SupportedRanks {
		supported[rank] = true
	}

	for _, monster := range d.Monsters.Entries() {
		rewards := monster.Data.Rewards
		if len(rewards) == 0 {
			continue
		}
		name := monster.Name.En()

		valid := true
		for _, reward := range rewards {
			if !d.RewardConditions.HasName("en", reward.Condition) {
				add(errorf(name, "invalid reward condition %s", reward.Condition))
				valid = false
			}
			if !d.Items.HasName("en", reward.Item) {
				add(errorf(name, "reward item %s doesn't exist", reward.Item))
				valid = false
			}
			if !supported[reward.Rank] {
				add(errorf(name, "unsupported rank %s in rewards", reward.Rank))
				valid = false
			}
		}
		if !valid {
			continue
		}

		type groupKey struct {
			rank      string
			condition string
		}
		sums := make(map[groupKey]int)
		var order []groupKey
		for _, reward := range rewards {
			key := groupKey{reward.Rank, reward.Condition}
			if _, ok := sums[key]; !ok {
				order = append(order, key)
			}
			sums[key] += reward.Percentage
		}

		for _, key := range order {
			sum := sums[key]
			group := fmt.Sprintf("(rank %s condition %s)", key.rank, key.condition)
			if cfg.UncappedConditions[key.condition] {
				if sum < 100 {
					add(errorf(name, "reward %%'s %s do not sum to at least 100", group))
				}
			} else if sum != 100 {
				add(errorf(name, "reward %%'s %s do not sum to 100", group))
			}
		}
	}
	return issues
}
