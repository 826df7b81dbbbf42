package validate

import (
	"math"

	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
)

// WeaponsRule verifies per-weapon domain attributes: craftability, recipe
// item references, sharpness on melee weapons, notes on hunting horns,
// coating data on bows, ammo configs on bowguns, element attack values, and
// the dragon/elderseal pairing. A non-integral derived true attack is
// reported as a warning only.
type WeaponsRule struct{}

func (*WeaponsRule) Name() string { return "weapons" }

func (*WeaponsRule) Evaluate(d *dataset.Data, cfg gamecfg.Config) []Issue {
	var issues []Issue

	for _, weapon := range d.Weapons.Entries() {
		name := weapon.Name.En()
		w := weapon.Data

		if w.Category != "Kulve" {
			if len(w.Craft) == 0 {
				issues = append(issues, errorf(name, "weapon does not have any recipes"))
			}
			for _, recipe := range w.Craft {
				for _, ingredient := range recipe.Items {
					if !d.Items.HasName("en", ingredient.Item) {
						issues = append(issues, errorf(name,
							"invalid item %s in a recipe", ingredient.Item))
					}
				}
			}
		}

		if cfg.IsMelee(w.Type) && w.Sharpness == nil {
			issues = append(issues, errorf(name, "melee weapon does not have a sharpness value"))
		}
		if w.Type == gamecfg.HuntingHorn && w.Notes == "" {
			issues = append(issues, errorf(name, "hunting horn is missing a notes value"))
		}
		if w.Type == gamecfg.Bow && w.Bow == nil {
			issues = append(issues, errorf(name, "weapon is missing bow data"))
		}
		if cfg.IsGun(w.Type) {
			// Only one of the two ammo findings can apply to a weapon.
			if w.AmmoConfig == "" {
				issues = append(issues, errorf(name, "weapon is missing ammo config"))
			} else if !d.AmmoConfigs.HasName("en", w.AmmoConfig) {
				issues = append(issues, errorf(name, "weapon has invalid ammo config"))
			}
		}

		if w.Element1 != "" && w.Element1Atk == 0 {
			issues = append(issues, errorf(name, "weapon has an element but is missing an attack value"))
		}

		// Dragon element (or phial) and elderseal must co-occur.
		hasElderseal := w.Elderseal != ""
		isDragon := w.Element1 == "Dragon" || w.Element2 == "Dragon" || w.Phial == "dragon"
		if hasElderseal && !isDragon {
			issues = append(issues, errorf(name, "weapon has elderseal but no dragon element"))
		}
		if isDragon && !hasElderseal {
			issues = append(issues, errorf(name, "weapon has a dragon element but no elderseal"))
		}

		if multiplier := cfg.WeaponMultiplier[w.Type]; multiplier > 0 {
			trueAttack := float64(w.Attack) / multiplier
			if trueAttack != math.Trunc(trueAttack) {
				issues = append(issues, warnf(name,
					"weapon has a suspicious true attack value %.2f", trueAttack))
			}
		}
	}

	return issues
}

// AmmoRule verifies every ammo configuration's bullet states: a bullet with
// a zero clip must not rapid-fire and must carry no recoil or reload value;
// a usable bullet must declare a reload value, and a recoil level where the
// bullet type has one.
type AmmoRule struct{}

func (*AmmoRule) Name() string { return "ammo-configs" }

func (*AmmoRule) Evaluate(d *dataset.Data, _ gamecfg.Config) []Issue {
	var issues []Issue

	for _, config := range d.AmmoConfigs.Entries() {
		name := config.Name.En()

		for _, bullet := range config.Data.Bullets {
			if bullet.Clip == 0 {
				if bullet.Rapid != nil && *bullet.Rapid {
					issues = append(issues, errorf(name, "invalid rapid value for %s", bullet.Name))
				}
				if bullet.Recoil != nil && *bullet.Recoil != 0 {
					issues = append(issues, errorf(name, "invalid recoil value for %s", bullet.Name))
				}
				if bullet.Reload != "" {
					issues = append(issues, errorf(name, "invalid reload value for %s", bullet.Name))
				}
				continue
			}

			if bullet.Name != "wyvern" && (bullet.Recoil == nil || *bullet.Recoil == 0) {
				issues = append(issues, errorf(name, "missing recoil value for %s", bullet.Name))
			}
			if bullet.Reload == "" {
				issues = append(issues, errorf(name, "missing reload value for %s", bullet.Name))
			}
		}
	}

	return issues
}
