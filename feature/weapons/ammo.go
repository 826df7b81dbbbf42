package weapons

import (
	"fmt"
	"reflect"
	"strings"

	"hunterdb/core/datamap"
	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
	"hunterdb/core/loader"
)

// BulletTypes lists every bullet type of a shell table row, in display
// order.
var BulletTypes = []string{
	"normal1", "normal2", "normal3", "pierce1", "pierce2", "pierce3",
	"spread1", "spread2", "spread3", "sticky1", "sticky2", "sticky3",
	"cluster1", "cluster2", "cluster3", "recover1", "recover2",
	"poison1", "poison2", "paralysis1", "paralysis2", "sleep1", "sleep2",
	"exhaust1", "exhaust2", "flaming", "water", "freeze", "thunder", "dragon",
	"slicing", "wyvern", "demon", "armor", "tranq",
}

// Bullet type prefixes that can never rapid-fire.
var noRapidPrefixes = []string{
	"sticky", "cluster",
	"recover", "poison", "paralysis", "sleep", "slicing",
	"dragon", "demon", "armor", "tranq", "wyvern",
}

var deviationNames = []string{"None", "Low", "Average", "High"}

var specialAmmoNames = []string{"Wyvernblast", "Wyvernheart", "Wyvernsnipe"}

func bulletHasRapid(name string) bool {
	for _, prefix := range noRapidPrefixes {
		if strings.HasPrefix(name, prefix) {
			return false
		}
	}
	return true
}

// decodeRecoil maps a raw recoil value to (rapid fire, recoil level).
// The table is hardcoded; the source data is not self-describing and a few
// values disagree with their apparent grouping.
func decodeRecoil(val int) (bool, int, error) {
	switch val {
	case 0:
		return false, 1, nil
	case 18:
		return false, 1, nil // mortar
	case 10:
		return false, -1, nil // auto-reload/singleshot
	case 1, 2, 3:
		return false, 2, nil
	case 14, 27:
		return false, 2, nil // mortar
	case 4, 5, 7, 11, 20, 24, 32:
		return false, 3, nil
	case 15, 16, 22, 23, 26:
		return false, 3, nil // mortar
	case 6, 8, 9, 12, 13, 19, 21, 25:
		return false, 4, nil
	case 28, 29, 30:
		return true, 2, nil
	case 31, 33:
		return true, 3, nil
	case 17:
		return false, 0, nil // wyvern
	}
	return false, 0, fmt.Errorf("weapons: unexpected recoil value %d", val)
}

// decodeReload maps a raw reload value to its display speed, or "" for
// values with no known mapping.
func decodeReload(val int) string {
	switch val {
	case 17:
		return "fast"
	case 0, 1, 14, 18:
		return "normal"
	case 2, 3, 4, 5, 11, 15, 16:
		return "slow"
	case 6, 7, 8, 9, 10, 12, 13:
		return "very slow"
	}
	return ""
}

// AmmoBuilder synthesizes named ammo configurations from shell table rows.
// Identical configurations reached from different weapons share one name;
// distinct configurations landing on the same candidate name get a numeric
// suffix.
type AmmoBuilder struct {
	shells  map[int]loader.ShellRecord
	configs map[string]*dataset.AmmoConfig
	order   []string
}

// NewAmmoBuilder wraps a loaded shell table.
func NewAmmoBuilder(shells map[int]loader.ShellRecord) *AmmoBuilder {
	return &AmmoBuilder{
		shells:  shells,
		configs: make(map[string]*dataset.AmmoConfig),
	}
}

// ConfigFor returns the ammo configuration name for a bowgun record,
// creating and registering the configuration on first sight.
func (b *AmmoBuilder) ConfigFor(wtype gamecfg.WeaponType, tree string, record loader.WeaponRecord) (string, error) {
	shell, ok := b.shells[record.ShellTableID]
	if !ok {
		return "", fmt.Errorf("weapons: no shell table row %d", record.ShellTableID)
	}
	if record.Deviation < 0 || record.Deviation >= len(deviationNames) {
		return "", fmt.Errorf("weapons: unexpected deviation value %d", record.Deviation)
	}
	if record.SpecialAmmoType < 0 || record.SpecialAmmoType >= len(specialAmmoNames) {
		return "", fmt.Errorf("weapons: unexpected special ammo value %d", record.SpecialAmmoType)
	}

	config := &dataset.AmmoConfig{
		Deviation: deviationNames[record.Deviation],
		Special:   specialAmmoNames[record.SpecialAmmoType],
	}

	for _, btype := range BulletTypes {
		raw := shell.Bullets[btype]

		var (
			rapid  bool
			recoil *int
			reload string
		)
		if raw.Capacity != 0 {
			var level int
			var err error
			rapid, level, err = decodeRecoil(raw.Recoil)
			if err != nil {
				return "", err
			}
			recoil = &level
			reload = decodeReload(raw.Reload)
		}

		bullet := dataset.Bullet{
			Name:   btype,
			Clip:   raw.Capacity,
			Reload: reload,
		}
		if bulletHasRapid(btype) {
			bullet.Rapid = &rapid
		}
		if btype != "wyvern" {
			bullet.Recoil = recoil
		}
		config.Bullets = append(config.Bullets, bullet)
	}

	return b.register(wtype, tree, config)
}

// register finds or creates the shared name for a configuration.
func (b *AmmoBuilder) register(wtype gamecfg.WeaponType, tree string, config *dataset.AmmoConfig) (string, error) {
	short := "HBG"
	if wtype == gamecfg.LightBowgun {
		short = "LBG"
	}
	tree = strings.ReplaceAll(tree, " Tree", "")
	tree = strings.ReplaceAll(tree, " Element", "")
	base := short + " " + tree

	for i := 1; i < 1000; i++ {
		name := base
		if i > 1 {
			name = fmt.Sprintf("%s %d", base, i)
		}

		existing, ok := b.configs[name]
		if !ok {
			b.configs[name] = config
			b.order = append(b.order, name)
			return name, nil
		}
		if reflect.DeepEqual(existing, config) {
			return name, nil
		}
	}
	return "", fmt.Errorf("weapons: no suitable ammo config name for %q", base)
}

// Apply inserts every registered configuration into the dataset, in
// creation order, with sequential ids.
func (b *AmmoBuilder) Apply(d *dataset.Data) error {
	for _, name := range b.order {
		id := d.AmmoConfigs.Len() + 1
		_, err := d.AmmoConfigs.Insert(id, datamap.Localized{"en": name}, *b.configs[name])
		if err != nil {
			return err
		}
	}
	return nil
}
