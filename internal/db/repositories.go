package db

import "gorm.io/gorm"

type Repositories struct {
	Entries   *LogEntryRepository
	FoodCache *FoodCacheRepository
	Settings  *SettingRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Entries:   NewLogEntryRepository(database),
		FoodCache: NewFoodCacheRepository(database),
		Settings:  NewSettingRepository(database),
	}
}
