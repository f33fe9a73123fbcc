package services

import (
	"git.solsynth.dev/hypernet/journal/pkg/internal/database"
	"git.solsynth.dev/hypernet/journal/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

func ListPostComment(post uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := database.C.
		Where("post_id = ?", post).
		Preload("Author").
		Order("created_at DESC, id DESC").
		Find(&comments).Error

	return comments, err
}

func NewComment(author models.Account, post uint, form CommentForm) (models.Comment, error) {
	op, err := GetPost(database.C, post)
	if err != nil {
		return models.Comment{}, err
	}
	if err := ValidateNewComment(&form); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		Text:     form.Text,
		PostID:   op.ID,
		AuthorID: author.ID,
	}
	if err := database.C.Create(&comment).Error; err != nil {
		return comment, err
	}

	comment.Author = author
	log.Debug().Uint("post", op.ID).Uint("author", author.ID).Msg("Comment added to post.")
	return comment, nil
}
