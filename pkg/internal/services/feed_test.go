package services

import (
	"fmt"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAllPostNewestFirst(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		createPost(t, leo, nil, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	first, err := ListAllPost(1)
	require.NoError(t, err)
	require.Len(t, first.Data, 10)
	assert.Equal(t, "post 11", first.Data[0].Text)
	assert.Equal(t, "post 2", first.Data[9].Text)
	assert.Equal(t, "leo", first.Data[0].Author.Name)
	assert.Equal(t, int64(12), first.Page.Count)
	assert.Equal(t, 2, first.Page.NumPages)

	second, err := ListAllPost(5)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Page.Number)
	assert.Equal(t, []string{"post 1", "post 0"}, lo.Map(second.Data, func(item models.Post, _ int) string {
		return item.Text
	}))
}

func TestListAllPostLastPartialPage(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 28; i++ {
		createPost(t, leo, nil, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	first, err := ListAllPost(1)
	require.NoError(t, err)
	assert.Len(t, first.Data, 10)

	last, err := ListAllPost(3)
	require.NoError(t, err)
	assert.Equal(t, 3, last.Page.NumPages)
	assert.False(t, last.Page.HasNext)
	require.Len(t, last.Data, 8)
	assert.Equal(t, "post 7", last.Data[0].Text)
	assert.Equal(t, "post 0", last.Data[7].Text)
}

func TestListAllPostSamePublicationTime(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")

	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	older := createPost(t, leo, nil, "older", at)
	newer := createPost(t, leo, nil, "newer", at)

	listing, err := ListAllPost(1)
	require.NoError(t, err)
	require.Len(t, listing.Data, 2)
	assert.Equal(t, newer.ID, listing.Data[0].ID)
	assert.Equal(t, older.ID, listing.Data[1].ID)
}

func TestListGroupPost(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")
	cats := createGroup(t, "cats")
	dogs := createGroup(t, "dogs")

	now := time.Now()
	createPost(t, leo, &cats, "meow", now)
	createPost(t, leo, &dogs, "woof", now.Add(time.Second))
	createPost(t, leo, nil, "plain", now.Add(2*time.Second))

	listing, err := ListGroupPost("cats", 1)
	require.NoError(t, err)
	assert.Equal(t, "cats", listing.Group.Slug)
	require.Len(t, listing.Data, 1)
	assert.Equal(t, "meow", listing.Data[0].Text)
	require.NotNil(t, listing.Data[0].Group)
	assert.Equal(t, cats.ID, listing.Data[0].Group.ID)

	_, err = ListGroupPost("birds", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAuthorPost(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")
	kate := createAccount(t, 2, "kate")

	now := time.Now()
	createPost(t, leo, nil, "first", now)
	createPost(t, leo, nil, "second", now.Add(time.Second))
	createPost(t, kate, nil, "other", now.Add(2*time.Second))

	anonymous, err := ListAuthorPost("leo", nil, 1)
	require.NoError(t, err)
	assert.Equal(t, leo.ID, anonymous.Author.ID)
	assert.Equal(t, int64(2), anonymous.PostCount)
	assert.Len(t, anonymous.Data, 2)
	assert.False(t, anonymous.Following)
	assert.True(t, anonymous.Subscribable)

	own, err := ListAuthorPost("leo", &leo, 1)
	require.NoError(t, err)
	assert.False(t, own.Subscribable)

	_, err = FollowAccount(kate, "leo")
	require.NoError(t, err)

	followed, err := ListAuthorPost("leo", &kate, 1)
	require.NoError(t, err)
	assert.True(t, followed.Following)
	assert.True(t, followed.Subscribable)
	assert.Equal(t, int64(1), followed.FollowerCount)
	assert.Equal(t, int64(0), followed.FollowingCount)

	_, err = ListAuthorPost("nobody", nil, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFollowedPost(t *testing.T) {
	setupDatabase(t)
	alice := createAccount(t, 1, "alice")
	bob := createAccount(t, 2, "bob")
	carol := createAccount(t, 3, "carol")

	now := time.Now()
	createPost(t, bob, nil, "bob one", now)
	createPost(t, carol, nil, "carol one", now.Add(time.Second))
	createPost(t, bob, nil, "bob two", now.Add(2*time.Second))
	createPost(t, alice, nil, "alice one", now.Add(3*time.Second))

	_, err := FollowAccount(alice, "bob")
	require.NoError(t, err)

	listing, err := ListFollowedPost(&alice, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob two", "bob one"}, lo.Map(listing.Data, func(item models.Post, _ int) string {
		return item.Text
	}))

	empty, err := ListFollowedPost(&carol, 1)
	require.NoError(t, err)
	assert.Empty(t, empty.Data)
	assert.Equal(t, 1, empty.Page.NumPages)

	_, err = ListFollowedPost(nil, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetPostDetail(t *testing.T) {
	setupDatabase(t)
	leo := createAccount(t, 1, "leo")
	kate := createAccount(t, 2, "kate")

	now := time.Now()
	post := createPost(t, leo, nil, "hello", now)
	createPost(t, leo, nil, "again", now.Add(time.Second))

	_, err := NewComment(kate, post.ID, CommentForm{Text: "first comment"})
	require.NoError(t, err)
	second, err := NewComment(leo, post.ID, CommentForm{Text: "second comment"})
	require.NoError(t, err)

	detail, err := GetPostDetail(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", detail.Post.Text)
	assert.Equal(t, int64(2), detail.PostCount)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, second.ID, detail.Comments[0].ID)
	assert.Equal(t, "leo", detail.Comments[0].Author.Name)

	_, err = GetPostDetail(post.ID + 100)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, database.C.Model(&models.Comment{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
