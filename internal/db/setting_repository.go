package db

import (
	"github.com/halwyn/gutlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	database *gorm.DB
}

func NewSettingRepository(database *gorm.DB) *SettingRepository {
	return &SettingRepository{database: database}
}

func (repo *SettingRepository) FindByKey(key string) (models.AppSetting, bool, error) {
	setting := models.AppSetting{}
	result := repo.database.Where("key = ?", key).Limit(1).Find(&setting)
	if result.Error != nil {
		return models.AppSetting{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.AppSetting{}, false, nil
	}
	return setting, true, nil
}

func (repo *SettingRepository) Upsert(setting *models.AppSetting) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(setting).Error
}

func (repo *SettingRepository) Delete(key string) error {
	return repo.database.Where("key = ?", key).Delete(&models.AppSetting{}).Error
}

func (repo *SettingRepository) ListAll() ([]models.AppSetting, error) {
	rows := make([]models.AppSetting, 0)
	if err := repo.database.Order("key ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
