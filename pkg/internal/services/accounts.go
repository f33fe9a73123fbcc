package services

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("account #%d: %w", id, ErrNotFound)
		}
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func GetAccountByName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("account %s: %w", name, ErrNotFound)
		}
		return account, fmt.Errorf("unable to get account by name: %v", err)
	}
	return account, nil
}

// EnsureAccount mirrors an identity from the account service, refreshing its profile fields.
func EnsureAccount(account models.Account) (models.Account, error) {
	if account.ID == 0 || len(account.Name) == 0 {
		return account, fmt.Errorf("account identity is incomplete")
	}

	if err := database.C.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "nick", "updated_at"}),
	}).Create(&account).Error; err != nil {
		return account, fmt.Errorf("unable to sync account: %v", err)
	}

	// Reload so fields kept by the upsert, like the description, come back too
	return GetAccountWithID(account.ID)
}
