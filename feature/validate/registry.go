package validate

import (
	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"

	"go.uber.org/zap"
)

// Rule is a single validation check. Rules are stateless; Evaluate reads
// the dataset and the shared domain configuration and returns its findings.
type Rule interface {
	Name() string
	Evaluate(d *dataset.Data, cfg gamecfg.Config) []Issue
}

// Registry holds the rules to run against a dataset.
type Registry struct {
	cfg   gamecfg.Config
	rules []Rule
	log   *zap.Logger
}

// NewRegistry creates a registry preloaded with the standard rule set.
func NewRegistry(cfg gamecfg.Config, log *zap.Logger) *Registry {
	r := &Registry{cfg: cfg, log: log}
	r.Register(
		&ItemsRule{},
		&LocationsRule{},
		&MonstersRule{},
		&RewardsRule{},
		&SkillsRule{},
		&ArmorRule{},
		&WeaponsRule{},
		&AmmoRule{},
		&CharmsRule{},
	)
	return r
}

// Register appends rules to the registry.
func (r *Registry) Register(rules ...Rule) {
	r.rules = append(r.rules, rules...)
}

// Run evaluates every rule against the dataset. All rules run
// unconditionally; their issues are concatenated in registration order.
func (r *Registry) Run(d *dataset.Data) *Report {
	report := &Report{}
	for _, rule := range r.rules {
		issues := rule.Evaluate(d, r.cfg)
		report.Issues = append(report.Issues, issues...)

		if r.log != nil {
			r.log.Debug("rule evaluated",
				zap.String("rule", rule.Name()),
				zap.Int("issues", len(issues)))
		}
	}
	return report
}
