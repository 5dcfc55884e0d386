package db

import (
	"time"

	"github.com/halwyn/gutlog/internal/models"
	"gorm.io/gorm"
)

type LogEntryRepository struct {
	database *gorm.DB
}

func NewLogEntryRepository(database *gorm.DB) *LogEntryRepository {
	return &LogEntryRepository{database: database}
}

func (repo *LogEntryRepository) ListAll() ([]models.LogEntry, error) {
	entries := make([]models.LogEntry, 0)
	if err := repo.database.Order("timestamp ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListRecent returns entries newest-first, optionally capped at limit.
func (repo *LogEntryRepository) ListRecent(limit int) ([]models.LogEntry, error) {
	query := repo.database.Order("timestamp DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	entries := make([]models.LogEntry, 0)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *LogEntryRepository) ListRange(from time.Time, to time.Time) ([]models.LogEntry, error) {
	entries := make([]models.LogEntry, 0)
	if err := repo.database.
		Where("timestamp >= ? AND timestamp < ?", from, to).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *LogEntryRepository) ListByType(entryType string) ([]models.LogEntry, error) {
	entries := make([]models.LogEntry, 0)
	if err := repo.database.
		Where("type = ?", entryType).
		Order("timestamp DESC, id DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *LogEntryRepository) FindByID(id uint) (models.LogEntry, bool, error) {
	entry := models.LogEntry{}
	result := repo.database.Where("id = ?", id).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.LogEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LogEntry{}, false, nil
	}
	return entry, true, nil
}

// LatestByType returns the newest entry of the given type, or found=false.
func (repo *LogEntryRepository) LatestByType(entryType string) (models.LogEntry, bool, error) {
	entry := models.LogEntry{}
	result := repo.database.
		Where("type = ?", entryType).
		Order("timestamp DESC, id DESC").
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.LogEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LogEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *LogEntryRepository) Count(entryType string) (int64, error) {
	query := repo.database.Model(&models.LogEntry{})
	if entryType != "" {
		query = query.Where("type = ?", entryType)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *LogEntryRepository) Create(entry *models.LogEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *LogEntryRepository) Save(entry *models.LogEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *LogEntryRepository) Delete(id uint) error {
	return repo.database.Where("id = ?", id).Delete(&models.LogEntry{}).Error
}

func (repo *LogEntryRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.LogEntry{}).Error
}

// CreateBatch inserts every entry inside one transaction; a failure on any
// row rolls the whole batch back.
func (repo *LogEntryRepository) CreateBatch(entries []models.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for index := range entries {
			if err := tx.Create(&entries[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
