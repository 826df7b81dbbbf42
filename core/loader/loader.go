package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"hunterdb/core/datamap"
	"hunterdb/core/gamecfg"

	"github.com/goccy/go-json"
)

// Config holds configuration for the decoded game-data inputs.
type Config struct {
	// Dir is the directory holding the decoded record files.
	Dir string `mapstructure:"dir" default:"./data"`
}

// TextBlock is a decoded localized text block: index -> language -> string.
type TextBlock map[int]datamap.Localized

// readJSON decodes one JSON document from the data directory.
func readJSON(dir, name string, out any) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// WeaponSource bundles the per-type inputs of the weapon tree assembler.
type WeaponSource struct {
	Type      gamecfg.WeaponType
	Records   []WeaponRecord
	Names     TextBlock
	TreeNames TextBlock
}

// LoadWeaponSource reads the flat weapon records and text blocks for one
// weapon type.
func LoadWeaponSource(cfg Config, wtype gamecfg.WeaponType) (*WeaponSource, error) {
	src := &WeaponSource{Type: wtype}
	if err := readJSON(cfg.Dir, fmt.Sprintf("weapons/%s.json", wtype), &src.Records); err != nil {
		return nil, err
	}
	if err := readJSON(cfg.Dir, fmt.Sprintf("text/weapon_%s.json", wtype), &src.Names); err != nil {
		return nil, err
	}
	if err := readJSON(cfg.Dir, "text/weapon_series.json", &src.TreeNames); err != nil {
		return nil, err
	}
	return src, nil
}

// LoadWeaponCraft reads the weapon crafting side-table.
func LoadWeaponCraft(cfg Config) ([]RecipeRecord, error) {
	var out []RecipeRecord
	if err := readJSON(cfg.Dir, "weapons/craft.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadWeaponUpgrades reads the weapon upgrade side-table. Order matters:
// descendant slots address this table by position.
func LoadWeaponUpgrades(cfg Config) ([]UpgradeRecord, error) {
	var out []UpgradeRecord
	if err := readJSON(cfg.Dir, "weapons/upgrade.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadSharpness reads the sharpness (kire) table keyed by row id.
func LoadSharpness(cfg Config) (map[int]SharpnessRecord, error) {
	var rows []SharpnessRecord
	if err := readJSON(cfg.Dir, "weapons/sharpness.json", &rows); err != nil {
		return nil, err
	}
	out := make(map[int]SharpnessRecord, len(rows))
	for _, r := range rows {
		out[r.ID] = r
	}
	return out, nil
}

// LoadShells reads the shell (ammo) table keyed by row id.
func LoadShells(cfg Config) (map[int]ShellRecord, error) {
	var rows []ShellRecord
	if err := readJSON(cfg.Dir, "weapons/shells.json", &rows); err != nil {
		return nil, err
	}
	out := make(map[int]ShellRecord, len(rows))
	for _, r := range rows {
		out[r.ID] = r
	}
	return out, nil
}

// LoadNotes reads the hunting horn note table keyed by row id.
func LoadNotes(cfg Config) (map[int]NoteRecord, error) {
	var rows []NoteRecord
	if err := readJSON(cfg.Dir, "weapons/notes.json", &rows); err != nil {
		return nil, err
	}
	out := make(map[int]NoteRecord, len(rows))
	for _, r := range rows {
		out[r.ID] = r
	}
	return out, nil
}

// LoadCoatings reads the bow coating table keyed by row id.
func LoadCoatings(cfg Config) (map[int]CoatingRecord, error) {
	var rows []CoatingRecord
	if err := readJSON(cfg.Dir, "weapons/coatings.json", &rows); err != nil {
		return nil, err
	}
	out := make(map[int]CoatingRecord, len(rows))
	for _, r := range rows {
		out[r.ID] = r
	}
	return out, nil
}

// ArmorSource bundles the inputs of the armor series assembler.
type ArmorSource struct {
	Records  []ArmorRecord
	Names    TextBlock
	SetNames TextBlock
	Craft    map[int]RecipeRecord
}

// LoadArmorSource reads the flat armor records, text blocks, and the armor
// crafting side-table (keyed by armor id).
func LoadArmorSource(cfg Config) (*ArmorSource, error) {
	src := &ArmorSource{}
	if err := readJSON(cfg.Dir, "armor/armor.json", &src.Records); err != nil {
		return nil, err
	}
	if err := readJSON(cfg.Dir, "text/armor.json", &src.Names); err != nil {
		return nil, err
	}
	if err := readJSON(cfg.Dir, "text/armor_series.json", &src.SetNames); err != nil {
		return nil, err
	}

	var craft []RecipeRecord
	if err := readJSON(cfg.Dir, "armor/craft.json", &craft); err != nil {
		return nil, err
	}
	src.Craft = make(map[int]RecipeRecord, len(craft))
	for _, entry := range craft {
		src.Craft[entry.EquipID] = entry
	}
	return src, nil
}

// LoadItemText reads the item text block keyed directly by item id.
func LoadItemText(cfg Config) (TextBlock, error) {
	var out TextBlock
	if err := readJSON(cfg.Dir, "text/items.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadSkillText reads the skill tree text block keyed by skill id.
func LoadSkillText(cfg Config) (TextBlock, error) {
	var out TextBlock
	if err := readJSON(cfg.Dir, "text/skills.json", &out); err != nil {
		return nil, err
	}
	return out, nil
}
