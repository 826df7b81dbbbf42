package weapons

import (
	"testing"

	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"
	"hunterdb/core/loader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureShells() map[int]loader.ShellRecord {
	return map[int]loader.ShellRecord{
		1: {ID: 1, Bullets: map[string]loader.ShellBullet{
			"normal1": {Capacity: 3, Recoil: 1, Reload: 0},
			"wyvern":  {Capacity: 1, Recoil: 17, Reload: 17},
			"sticky1": {Capacity: 0},
		}},
		2: {ID: 2, Bullets: map[string]loader.ShellBullet{
			"normal1": {Capacity: 6, Recoil: 28, Reload: 2},
		}},
	}
}

func TestAmmoBuilderConfigFor(t *testing.T) {
	builder := NewAmmoBuilder(fixtureShells())

	ammoName, err := builder.ConfigFor(gamecfg.LightBowgun, "Ore Tree",
		loader.WeaponRecord{ShellTableID: 1, Deviation: 1, SpecialAmmoType: 0})
	require.NoError(t, err)
	assert.Equal(t, "LBG Ore", ammoName, "tree suffixes are stripped from config names")

	config := builder.configs[ammoName]
	require.NotNil(t, config)
	assert.Equal(t, "Low", config.Deviation)
	assert.Equal(t, "Wyvernblast", config.Special)
	require.Len(t, config.Bullets, len(BulletTypes))

	byName := make(map[string]dataset.Bullet, len(config.Bullets))
	for _, b := range config.Bullets {
		byName[b.Name] = b
	}

	t.Run("UsableBullet", func(t *testing.T) {
		b := byName["normal1"]
		assert.Equal(t, 3, b.Clip)
		require.NotNil(t, b.Rapid)
		assert.False(t, *b.Rapid)
		require.NotNil(t, b.Recoil)
		assert.Equal(t, 2, *b.Recoil)
		assert.Equal(t, "normal", b.Reload)
	})

	t.Run("WyvernHasNoRecoil", func(t *testing.T) {
		b := byName["wyvern"]
		assert.Equal(t, 1, b.Clip)
		assert.Nil(t, b.Rapid, "wyvern ammo can never rapid-fire")
		assert.Nil(t, b.Recoil)
		assert.Equal(t, "fast", b.Reload)
	})

	t.Run("UnusableBullet", func(t *testing.T) {
		b := byName["sticky1"]
		assert.Equal(t, 0, b.Clip)
		assert.Nil(t, b.Rapid)
		assert.Nil(t, b.Recoil)
		assert.Empty(t, b.Reload)
	})

	t.Run("AbsentBulletTypes", func(t *testing.T) {
		b := byName["tranq"]
		assert.Equal(t, 0, b.Clip)
	})
}

func TestAmmoBuilderNaming(t *testing.T) {
	builder := NewAmmoBuilder(fixtureShells())

	first, err := builder.ConfigFor(gamecfg.LightBowgun, "Ore Tree",
		loader.WeaponRecord{ShellTableID: 1})
	require.NoError(t, err)

	t.Run("IdenticalConfigSharesName", func(t *testing.T) {
		again, err := builder.ConfigFor(gamecfg.LightBowgun, "Ore Tree",
			loader.WeaponRecord{ShellTableID: 1})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	})

	t.Run("DistinctConfigGetsSuffix", func(t *testing.T) {
		other, err := builder.ConfigFor(gamecfg.LightBowgun, "Ore Tree",
			loader.WeaponRecord{ShellTableID: 2})
		require.NoError(t, err)
		assert.Equal(t, "LBG Ore 2", other)
	})

	t.Run("HeavyBowgunPrefix", func(t *testing.T) {
		heavy, err := builder.ConfigFor(gamecfg.HeavyBowgun, "Ore Tree",
			loader.WeaponRecord{ShellTableID: 1})
		require.NoError(t, err)
		assert.Equal(t, "HBG Ore", heavy)
	})

	t.Run("UnknownShellRow", func(t *testing.T) {
		_, err := builder.ConfigFor(gamecfg.LightBowgun, "Ore Tree",
			loader.WeaponRecord{ShellTableID: 9})
		assert.Error(t, err)
	})
}

func TestAmmoBuilderApply(t *testing.T) {
	builder := NewAmmoBuilder(fixtureShells())

	_, err := builder.ConfigFor(gamecfg.LightBowgun, "Ore", loader.WeaponRecord{ShellTableID: 1})
	require.NoError(t, err)
	_, err = builder.ConfigFor(gamecfg.HeavyBowgun, "Bone", loader.WeaponRecord{ShellTableID: 2})
	require.NoError(t, err)

	d := dataset.New()
	require.NoError(t, builder.Apply(d))

	entries := d.AmmoConfigs.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, "LBG Ore", entries[0].Name.En())
	assert.Equal(t, 2, entries[1].ID)
	assert.Equal(t, "HBG Bone", entries[1].Name.En())
}

func TestDecodeRecoil(t *testing.T) {
	rapid, level, err := decodeRecoil(29)
	require.NoError(t, err)
	assert.True(t, rapid)
	assert.Equal(t, 2, level)

	rapid, level, err = decodeRecoil(10)
	require.NoError(t, err)
	assert.False(t, rapid)
	assert.Equal(t, -1, level, "auto-reload rows carry a sentinel level")

	_, _, err = decodeRecoil(99)
	assert.Error(t, err)
}

func TestDecodeReload(t *testing.T) {
	assert.Equal(t, "fast", decodeReload(17))
	assert.Equal(t, "normal", decodeReload(0))
	assert.Equal(t, "slow", decodeReload(4))
	assert.Equal(t, "very slow", decodeReload(13))
	assert.Empty(t, decodeReload(99))
}

func TestBulletHasRapid(t *testing.T) {
	assert.True(t, bulletHasRapid("normal2"))
	assert.True(t, bulletHasRapid("flaming"))
	assert.False(t, bulletHasRapid("sticky3"))
	assert.False(t, bulletHasRapid("wyvern"))
}
