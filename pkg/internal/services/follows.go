package services

import (
	"errors"
	"fmt"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"git.solsynth.dev/hypernet/journal/pkg/internal/monitoring"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetFollow looks up the edge from follower to author, a missing edge gives nil.
func GetFollow(tx *gorm.DB, follower, author uint) (*models.Follow, error) {
	var follow models.Follow
	if err := tx.Where("follower_id = ? AND author_id = ?", follower, author).First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow: %v", err)
	}
	return &follow, nil
}

func IsFollowing(follower, author uint) bool {
	follow, err := GetFollow(database.C, follower, author)
	if err != nil {
		log.Warn().Err(err).Uint("follower", follower).Uint("author", author).Msg("Unable to check follow status...")
		return false
	}
	return follow != nil
}

// FollowAccount creates the edge from viewer to the named account.
// Following yourself is ignored and gives a nil follow, following twice keeps a single edge.
func FollowAccount(viewer models.Account, username string) (*models.Follow, error) {
	target, err := GetAccountByName(username)
	if err != nil {
		monitoring.FollowOperations.WithLabelValues("follow", "not_found").Inc()
		return nil, err
	}
	if target.ID == viewer.ID {
		monitoring.FollowOperations.WithLabelValues("follow", "self").Inc()
		return nil, nil
	}

	var follow models.Follow
	err = database.C.Transaction(func(tx *gorm.DB) error {
		if existing, err := GetFollow(tx, viewer.ID, target.ID); err != nil {
			return err
		} else if existing != nil {
			follow = *existing
			return nil
		}

		follow = models.Follow{FollowerID: viewer.ID, AuthorID: target.ID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error; err != nil {
			return err
		}
		if follow.ID == 0 {
			// Lost the race against a concurrent follow, load the winner
			existing, err := GetFollow(tx, viewer.ID, target.ID)
			if err != nil {
				return err
			} else if existing == nil {
				return fmt.Errorf("follow vanished after conflict")
			}
			follow = *existing
		}
		return nil
	})
	if err != nil {
		monitoring.FollowOperations.WithLabelValues("follow", "error").Inc()
		return nil, fmt.Errorf("unable to follow %s: %v", username, err)
	}

	monitoring.FollowOperations.WithLabelValues("follow", "ok").Inc()
	follow.Author = target
	return &follow, nil
}

// UnfollowAccount removes the edge from viewer to the named account.
// Unfollowing yourself passes through, a missing edge is ErrNotFound.
func UnfollowAccount(viewer models.Account, username string) error {
	target, err := GetAccountByName(username)
	if err != nil {
		monitoring.FollowOperations.WithLabelValues("unfollow", "not_found").Inc()
		return err
	}
	if target.ID == viewer.ID {
		monitoring.FollowOperations.WithLabelValues("unfollow", "self").Inc()
		return nil
	}

	tx := database.C.
		Where("follower_id = ? AND author_id = ?", viewer.ID, target.ID).
		Delete(&models.Follow{})
	if tx.Error != nil {
		monitoring.FollowOperations.WithLabelValues("unfollow", "error").Inc()
		return fmt.Errorf("unable to unfollow %s: %v", username, tx.Error)
	}
	if tx.RowsAffected == 0 {
		monitoring.FollowOperations.WithLabelValues("unfollow", "not_found").Inc()
		return fmt.Errorf("follow on %s does not exist: %w", username, ErrNotFound)
	}

	monitoring.FollowOperations.WithLabelValues("unfollow", "ok").Inc()
	return nil
}

func CountFollower(author uint) (int64, error) {
	var count int64
	err := database.C.Model(&models.Follow{}).Where("author_id = ?", author).Count(&count).Error
	return count, err
}

func CountFollowing(follower uint) (int64, error) {
	var count int64
	err := database.C.Model(&models.Follow{}).Where("follower_id = ?", follower).Count(&count).Error
	return count, err
}
