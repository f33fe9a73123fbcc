package services

import (
	"fmt"

	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"gorm.io/gorm"
)

// PostListing is one page of a post listing, newest first.
type PostListing struct {
	Page Page          `json:"page"`
	Data []models.Post `json:"data"`
}

type GroupListing struct {
	PostListing
	Group models.Group `json:"group"`
}

type AuthorListing struct {
	PostListing
	Author         models.Account `json:"author"`
	PostCount      int64          `json:"post_count"`
	FollowerCount  int64          `json:"follower_count"`
	FollowingCount int64          `json:"following_count"`
	// Following tells whether the viewer already follows the author.
	Following bool `json:"following"`
	// Subscribable is false when the viewer is the author, the follow control is hidden then.
	Subscribable bool `json:"subscribable"`
}

type PostDetail struct {
	Post      models.Post      `json:"post"`
	PostCount int64            `json:"post_count"`
	Comments  []models.Comment `json:"comments"`
}

// listPostPage runs prepare twice on fresh sessions, once to count and once to fetch the page.
func listPostPage(prepare func(tx *gorm.DB) *gorm.DB, requested int) (PostListing, error) {
	count, err := CountPost(prepare(database.C))
	if err != nil {
		return PostListing{}, fmt.Errorf("unable to count posts: %v", err)
	}

	page := NewPage(count, requested, PageSize())
	items, err := ListPost(prepare(database.C), page.Size, page.Offset())
	if err != nil {
		return PostListing{}, fmt.Errorf("unable to list posts: %v", err)
	}

	return PostListing{Page: page, Data: items}, nil
}

func ListAllPost(requested int) (PostListing, error) {
	return listPostPage(func(tx *gorm.DB) *gorm.DB {
		return tx
	}, requested)
}

func ListGroupPost(slug string, requested int) (GroupListing, error) {
	group, err := GetGroup(slug)
	if err != nil {
		return GroupListing{}, err
	}

	listing, err := listPostPage(func(tx *gorm.DB) *gorm.DB {
		return FilterPostWithGroup(tx, group.ID)
	}, requested)
	if err != nil {
		return GroupListing{}, err
	}

	return GroupListing{PostListing: listing, Group: group}, nil
}

// ListAuthorPost lists the posts of the named account. The viewer is optional.
func ListAuthorPost(username string, viewer *models.Account, requested int) (AuthorListing, error) {
	author, err := GetAccountByName(username)
	if err != nil {
		return AuthorListing{}, err
	}

	listing, err := listPostPage(func(tx *gorm.DB) *gorm.DB {
		return FilterPostWithAuthor(tx, author.ID)
	}, requested)
	if err != nil {
		return AuthorListing{}, err
	}

	out := AuthorListing{
		PostListing:  listing,
		Author:       author,
		PostCount:    listing.Page.Count,
		Subscribable: true,
	}
	if out.FollowerCount, err = CountFollower(author.ID); err != nil {
		return out, fmt.Errorf("unable to count followers: %v", err)
	}
	if out.FollowingCount, err = CountFollowing(author.ID); err != nil {
		return out, fmt.Errorf("unable to count following: %v", err)
	}
	if viewer != nil {
		out.Following = IsFollowing(viewer.ID, author.ID)
		out.Subscribable = viewer.ID != author.ID
	}

	return out, nil
}

func ListFollowedPost(viewer *models.Account, requested int) (PostListing, error) {
	if viewer == nil {
		return PostListing{}, ErrUnauthorized
	}

	return listPostPage(func(tx *gorm.DB) *gorm.DB {
		return FilterPostWithFollowing(tx, viewer.ID)
	}, requested)
}

func GetPostDetail(id uint) (PostDetail, error) {
	post, err := GetPost(database.C, id)
	if err != nil {
		return PostDetail{}, err
	}

	count, err := CountAuthorPost(post.AuthorID)
	if err != nil {
		return PostDetail{}, fmt.Errorf("unable to count author posts: %v", err)
	}
	comments, err := ListPostComment(post.ID)
	if err != nil {
		return PostDetail{}, fmt.Errorf("unable to list comments: %v", err)
	}

	return PostDetail{Post: post, PostCount: count, Comments: comments}, nil
}
