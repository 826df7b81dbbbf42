package export

import (
	"testing"

	"hunterdb/core/datamap"
	"hunterdb/core/dataset"
	"hunterdb/core/gamecfg"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	// Each table write must be one visible INSERT, not a wrapped transaction.
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func fixtureData(t *testing.T) *dataset.Data {
	t.Helper()
	d := dataset.New()

	_, err := d.Items.Insert(1, datamap.Localized{"en": "Iron Ore", "ja": "鉄鉱石"}, dataset.Item{Rarity: 4})
	require.NoError(t, err)

	_, err = d.Weapons.Insert(1, datamap.Localized{"en": "Buster Sword I"}, dataset.Weapon{
		Type: gamecfg.GreatSword, Rarity: 1, Attack: 480,
	})
	require.NoError(t, err)

	return d
}

func TestExport(t *testing.T) {
	db, mock := setupMockDB(t)
	d := fixtureData(t)

	mock.ExpectExec("INSERT INTO `items`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `weapons`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `translations`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, Export(db, d, zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet(), "tables must be written in fixed order, skipping empty ones")
}

func TestExportCollectsTranslations(t *testing.T) {
	db, mock := setupMockDB(t)
	d := dataset.New()

	_, err := d.Items.Insert(1, datamap.Localized{"en": "Herb", "fr": "Herbe", "de": ""}, dataset.Item{})
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO `items`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO `translations`").
		WithArgs("item", 1, "fr", "Herbe").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, Export(db, d, zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet(),
		"English names and empty translations must not produce translation rows")
}

func TestExportPropagatesInsertErrors(t *testing.T) {
	db, mock := setupMockDB(t)
	d := fixtureData(t)

	mock.ExpectExec("INSERT INTO `items`").
		WillReturnError(assert.AnError)

	err := Export(db, d, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items")
}

func TestExportEmptyDataset(t *testing.T) {
	db, mock := setupMockDB(t)

	require.NoError(t, Export(db, dataset.New(), zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet(), "an empty dataset issues no statements")
}
