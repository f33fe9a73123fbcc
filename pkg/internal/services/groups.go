package services

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"gorm.io/gorm"
)

func ListGroup() ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Order("title ASC").Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return group, fmt.Errorf("group %s: %w", slug, ErrNotFound)
		}
		return group, err
	}
	return group, nil
}

func GetGroupWithID(id uint) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("id = ?", id).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return group, fmt.Errorf("group #%d: %w", id, ErrNotFound)
		}
		return group, err
	}
	return group, nil
}

func NewGroup(title, slug, description string) (models.Group, error) {
	group := models.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	if err := checkForm(&group); err != nil {
		return group, err
	}
	if _, err := GetGroup(slug); err == nil {
		return group, NewValidationError("slug", "group with this slug already exists")
	}

	err := database.C.Save(&group).Error

	return group, err
}

// DeleteGroup removes the group, its posts stay with the group reference cleared.
func DeleteGroup(group models.Group) error {
	return database.C.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}
