package cmd

import (
	"fmt"

	"hunterdb/core/config"
	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
	"hunterdb/core/loader"
	"hunterdb/feature/armor"
	"hunterdb/feature/weapons"

	"go.uber.org/zap"
)

// buildResult is the outcome of one assembly run: the merged dataset plus
// the diagnostic listings gathered along the way.
type buildResult struct {
	Data *dataset.Data

	// CraftedLines lists tree-connected weapons in crafting order,
	// "name,type" per line. IsolatedLines lists weapons with no tree
	// connection, in encounter order.
	CraftedLines  []string
	IsolatedLines []string
}

// buildDataset runs the full assembly pipeline: curated collections first,
// then every weapon tree, then the armor series.
func buildDataset(cfg *config.Config, gc gamecfg.Config, log *zap.Logger) (*buildResult, error) {
	d := dataset.New()

	curated, err := loader.LoadCurated(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to load curated collections: %w", err)
	}
	if err := curated.Apply(d); err != nil {
		return nil, fmt.Errorf("failed to merge curated collections: %w", err)
	}

	itemText, err := loader.LoadItemText(cfg.Data)
	if err != nil {
		return nil, err
	}
	skillText, err := loader.LoadSkillText(cfg.Data)
	if err != nil {
		return nil, err
	}
	items := loader.NewItemNamer(itemText)
	skills := loader.NewSkillNamer(skillText)

	result := &buildResult{Data: d}
	if err := buildWeapons(cfg, gc, d, curated, items, skills, result, log); err != nil {
		return nil, err
	}
	if err := buildArmor(cfg, gc, d, curated, items, skills, log); err != nil {
		return nil, err
	}

	// Recipes may reference materials the curated collections never mention;
	// pull those in so the references resolve.
	added, err := loader.CompleteItems(d, items)
	if err != nil {
		return nil, fmt.Errorf("failed to complete item collection: %w", err)
	}
	log.Info("item collection completed",
		zap.Int("added", added),
		zap.Int("items", d.Items.Len()))

	return result, nil
}

func buildWeapons(
	cfg *config.Config,
	gc gamecfg.Config,
	d *dataset.Data,
	curated *loader.Curated,
	items *loader.ItemNamer,
	skills *loader.SkillNamer,
	result *buildResult,
	log *zap.Logger,
) error {
	craft, err := loader.LoadWeaponCraft(cfg.Data)
	if err != nil {
		return err
	}
	upgrades, err := loader.LoadWeaponUpgrades(cfg.Data)
	if err != nil {
		return err
	}
	tables, err := weapons.NewTables(gc, craft, upgrades)
	if err != nil {
		return err
	}

	sharpnessRows, err := loader.LoadSharpness(cfg.Data)
	if err != nil {
		return err
	}
	shells, err := loader.LoadShells(cfg.Data)
	if err != nil {
		return err
	}
	notes, err := loader.LoadNotes(cfg.Data)
	if err != nil {
		return err
	}
	coatings, err := loader.LoadCoatings(cfg.Data)
	if err != nil {
		return err
	}

	assembler := weapons.NewAssembler(gc, tables, log)
	ammo := weapons.NewAmmoBuilder(shells)
	binder := weapons.NewBinder(gc, weapons.NewSharpnessReader(sharpnessRows),
		ammo, notes, coatings, items, skills, curated.WeaponCategories)

	for _, wtype := range gc.WeaponTypes {
		src, err := loader.LoadWeaponSource(cfg.Data, wtype)
		if err != nil {
			return err
		}

		tree, err := assembler.Assemble(src)
		if err != nil {
			return err
		}
		if err := binder.Bind(d, tree); err != nil {
			return err
		}

		for _, node := range tree.Crafted() {
			result.CraftedLines = append(result.CraftedLines,
				fmt.Sprintf("%s,%s", node.Name.En(), wtype))
		}
		for _, node := range tree.Isolated() {
			result.IsolatedLines = append(result.IsolatedLines,
				fmt.Sprintf("%s,%s", node.Name.En(), wtype))
		}
	}

	if err := ammo.Apply(d); err != nil {
		return fmt.Errorf("failed to register ammo configs: %w", err)
	}

	log.Info("weapons assembled",
		zap.Int("weapons", d.Weapons.Len()),
		zap.Int("ammo_configs", d.AmmoConfigs.Len()),
		zap.Int("isolated", len(result.IsolatedLines)))
	return nil
}

func buildArmor(
	cfg *config.Config,
	gc gamecfg.Config,
	d *dataset.Data,
	curated *loader.Curated,
	items *loader.ItemNamer,
	skills *loader.SkillNamer,
	log *zap.Logger,
) error {
	src, err := loader.LoadArmorSource(cfg.Data)
	if err != nil {
		return err
	}

	sets, err := armor.AssembleSeries(gc, src, log)
	if err != nil {
		return err
	}
	if err := armor.Bind(d, sets, items, skills, curated.SetMonsters); err != nil {
		return err
	}

	log.Info("armor assembled",
		zap.Int("sets", d.ArmorSets.Len()),
		zap.Int("pieces", d.Armor.Len()))
	return nil
}
