package services

import (
	"testing"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countFollow(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, database.C.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func TestFollowAccountIsIdempotent(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")
	kate := createAccount(t, 2, "kate")

	first, err := FollowAccount(leo, "kate")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, kate.ID, first.AuthorID)

	second, err := FollowAccount(leo, "kate")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)

	assert.Equal(t, int64(1), countFollow(t))
	assert.True(t, IsFollowing(leo.ID, kate.ID))
	assert.False(t, IsFollowing(kate.ID, leo.ID))
}

func TestFollowAccountSelf(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")

	follow, err := FollowAccount(leo, "leo")
	assert.NoError(t, err)
	assert.Nil(t, follow)
	assert.Equal(t, int64(0), countFollow(t))
}

func TestFollowAccountUnknown(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")

	_, err := FollowAccount(leo, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnfollowAccount(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")
	kate := createAccount(t, 2, "kate")

	assert.ErrorIs(t, UnfollowAccount(leo, "kate"), ErrNotFound)
	assert.ErrorIs(t, UnfollowAccount(leo, "nobody"), ErrNotFound)
	assert.NoError(t, UnfollowAccount(leo, "leo"))

	_, err := FollowAccount(leo, "kate")
	require.NoError(t, err)

	require.NoError(t, UnfollowAccount(leo, "kate"))
	assert.False(t, IsFollowing(leo.ID, kate.ID))
	assert.ErrorIs(t, UnfollowAccount(leo, "kate"), ErrNotFound)
}

func TestCountFollowerAndFollowing(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")
	kate := createAccount(t, 2, "kate")
	createAccount(t, 3, "max")

	for _, target := range []string{"kate", "max"} {
		_, err := FollowAccount(leo, target)
		require.NoError(t, err)
	}
	_, err := FollowAccount(kate, "max")
	require.NoError(t, err)

	following, err := CountFollowing(leo.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), following)

	followers, err := CountFollower(3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followers)
}

func TestGetFollow(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")
	kate := createAccount(t, 2, "kate")

	missing, err := GetFollow(database.C, leo.ID, kate.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := FollowAccount(leo, "kate")
	require.NoError(t, err)

	found, err := GetFollow(database.C, leo.ID, kate.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
}
