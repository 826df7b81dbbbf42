package validate

import (
	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
)

// SkillsRule verifies that every skill's declared effect levels form the
// contiguous range 1..N, where N is the number of declared levels.
type SkillsRule struct{}

func (*SkillsRule) Name() string { return "skills" }

func (*SkillsRule) Evaluate(d *dataset.Data, _ gamecfg.Config) []Issue {
	var issues []Issue
	for _, skill := range d.Skills.Entries() {
		name := skill.Name.En()
		expectedMax := len(skill.Data.Levels)

		encountered := make(map[int]bool)
		for _, level := range skill.Data.Levels {
			if level.Level < 1 || level.Level > expectedMax {
				issues = append(issues, errorf(name, "out of range effect level %d", level.Level))
				continue
			}
			encountered[level.Level] = true
		}
		if len(encountered) != expectedMax {
			issues = append(issues, errorf(name, "missing effect levels"))
		}
	}
	return issues
}
