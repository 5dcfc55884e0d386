package db

import (
	"github.com/halwyn/gutlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FoodCacheRepository struct {
	database *gorm.DB
}

func NewFoodCacheRepository(database *gorm.DB) *FoodCacheRepository {
	return &FoodCacheRepository{database: database}
}

func (repo *FoodCacheRepository) FindByName(normalizedName string) (models.CachedFood, bool, error) {
	cached := models.CachedFood{}
	result := repo.database.Where("name = ?", normalizedName).Limit(1).Find(&cached)
	if result.Error != nil {
		return models.CachedFood{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CachedFood{}, false, nil
	}
	return cached, true, nil
}

// Upsert keeps one cached row per normalized name.
func (repo *FoodCacheRepository) Upsert(cached *models.CachedFood) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "category", "notes"}),
	}).Create(cached).Error
}

func (repo *FoodCacheRepository) ListAll() ([]models.CachedFood, error) {
	rows := make([]models.CachedFood, 0)
	if err := repo.database.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
