package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// setupDatabase points database.C to a fresh sqlite file owned by the test.
func setupDatabase(t *testing.T) {
	t.Helper()

	viper.Set("database.driver", "sqlite")
	viper.Set("database.prefix", "")
	viper.Set("database.dsn", filepath.Join(t.TempDir(), "journal.db")+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	viper.Set("pagination.page_size", DefaultPageSize)

	require.NoError(t, database.NewGorm())
	require.NoError(t, database.RunMigration(database.C))

	t.Cleanup(func() {
		if db, err := database.C.DB(); err == nil {
			_ = db.Close()
		}
	})
}

func createAccount(t *testing.T, id uint, name string) models.Account {
	t.Helper()

	account, err := EnsureAccount(models.Account{
		BaseModel: models.BaseModel{ID: id},
		Name:      name,
		Nick:      name,
	})
	require.NoError(t, err)
	return account
}

func createGroup(t *testing.T, slug string) models.Group {
	t.Helper()

	group, err := NewGroup(fmt.Sprintf("Group %s", slug), slug, "A group for testing")
	require.NoError(t, err)
	return group
}

// createPost stores a post directly so the publication time is under the test's control.
func createPost(t *testing.T, author models.Account, group *models.Group, text string, publishedAt time.Time) models.Post {
	t.Helper()

	post := models.Post{
		Text:        text,
		Language:    "en",
		PublishedAt: publishedAt,
		AuthorID:    author.ID,
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	require.NoError(t, database.C.Omit("Author", "Group").Create(&post).Error)
	return post
}
