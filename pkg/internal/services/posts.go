package services

import (
	"errors"
	"fmt"
	"time"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const PostListOrder = "published_at DESC, id DESC"

func FilterPostWithAuthor(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Where("author_id = ?", id)
}

func FilterPostWithGroup(tx *gorm.DB, id uint) *gorm.DB {
	return tx.Where("group_id = ?", id)
}

// FilterPostWithFollowing keeps posts written by authors the account follows.
func FilterPostWithFollowing(tx *gorm.DB, follower uint) *gorm.DB {
	following := database.C.Model(&models.Follow{}).
		Select("author_id").
		Where("follower_id = ?", follower)
	return tx.Where("author_id IN (?)", following)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, fmt.Errorf("post #%d: %w", id, ErrNotFound)
		}
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func CountAuthorPost(author uint) (int64, error) {
	return CountPost(FilterPostWithAuthor(database.C, author))
}

func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	var items []models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(PostListOrder).
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

func NewPost(author models.Account, form PostForm, image *models.PostImage) (models.Post, error) {
	if err := ValidateNewPost(&form); err != nil {
		return models.Post{}, err
	}

	item := models.Post{
		Text:        form.Text,
		Language:    DetectLanguage(form.Text),
		PublishedAt: time.Now(),
		AuthorID:    author.ID,
		Author:      author,
	}
	if form.GroupID != nil {
		group, err := GetGroupWithID(*form.GroupID)
		if err != nil {
			return item, NewValidationError("group", "select a valid group")
		}
		item.GroupID = &group.ID
		item.Group = &group
	}
	if image != nil {
		item.Image = datatypes.NewJSONType(*image)
	}

	log.Debug().Uint("author", author.ID).Msg("Posting a post...")
	start := time.Now()

	if err := database.C.Omit("Author", "Group").Create(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("post", item.ID).Str("label", TruncatePostText(item)).Dur("elapsed", time.Since(start)).Msg("The post is posted.")
	return item, nil
}

// EditPost updates the editable fields of a post owned by editor.
// Publication time and authorship never change.
func EditPost(editor models.Account, id uint, form PostForm, image *models.PostImage) (models.Post, error) {
	item, err := GetPost(database.C, id)
	if err != nil {
		return item, err
	}
	if item.AuthorID != editor.ID {
		return item, fmt.Errorf("post #%d belongs to another account: %w", id, ErrForbidden)
	}
	if err := ValidateEditPost(&form); err != nil {
		return item, err
	}

	var group *models.Group
	if form.GroupID != nil {
		found, err := GetGroupWithID(*form.GroupID)
		if err != nil {
			return item, NewValidationError("group", "select a valid group")
		}
		group = &found
	}

	item.Text = form.Text
	item.Language = DetectLanguage(form.Text)
	item.GroupID = nil
	item.Group = nil
	if group != nil {
		item.GroupID = &group.ID
	}
	if image != nil {
		item.Image = datatypes.NewJSONType(*image)
	} else if form.ClearImage {
		item.Image = datatypes.NewJSONType(models.PostImage{})
	}

	if err := database.C.Model(&item).
		Select("text", "language", "group_id", "image", "updated_at").
		Updates(&item).Error; err != nil {
		return item, err
	}

	item.Group = group
	log.Debug().Uint("post", item.ID).Str("label", TruncatePostText(item)).Msg("The post is edited.")
	return item, nil
}

const TruncatePostTextThreshold = 15

// TruncatePostText gives the short label of a post used in logs.
func TruncatePostText(post models.Post) string {
	if len([]rune(post.Text)) > TruncatePostTextThreshold {
		return string([]rune(post.Text)[:TruncatePostTextThreshold])
	}
	return post.Text
}
