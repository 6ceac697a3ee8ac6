package database

import (
	"testing"
	"time"

	"crm-service/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPruneSyncRuns(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	old := &models.SyncRun{Kind: models.SyncKindCustomers, Status: models.SyncStatusCompleted, StartedAt: time.Now().UTC().Add(-48 * time.Hour)}
	recent := &models.SyncRun{Kind: models.SyncKindOrders, Status: models.SyncStatusCompleted}
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, db.Create(recent).Error)

	deleted, err := db.PruneSyncRuns(24 * time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []models.SyncRun
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, recent.ID, remaining[0].ID)
}

func TestSeedProducts_SkipsExistingSlugs(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	require.NoError(t, db.Create(&models.Product{Slug: "mug", Name: "Mug", Price: decimal.NewFromInt(5)}).Error)

	err := db.SeedProducts([]models.Product{
		{Slug: "mug", Name: "Other mug", Price: decimal.NewFromInt(9)},
		{Slug: "cap", Name: "Cap", Price: decimal.NewFromInt(12)},
	})
	require.NoError(t, err)

	var products []models.Product
	require.NoError(t, db.Order("slug").Find(&products).Error)
	require.Len(t, products, 2)
	assert.Equal(t, "cap", products[0].Slug)
	assert.Equal(t, "Mug", products[1].Name)
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)
	assert.NoError(t, db.HealthCheck())
}

func TestSeedProducts_DefaultCatalog(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	require.NoError(t, db.SeedProducts(DefaultProducts()))
	require.NoError(t, db.SeedProducts(DefaultProducts()))

	var premium models.Product
	require.NoError(t, db.Where("slug = ?", "premium-box").First(&premium).Error)
	assert.True(t, premium.Price.Equal(decimal.NewFromInt(100)))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(len(DefaultProducts())), count)
}
