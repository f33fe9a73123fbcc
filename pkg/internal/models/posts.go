package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Text        string                        `json:"text"`
	Language    string                        `json:"language"`
	Image       datatypes.JSONType[PostImage] `json:"image"`
	PublishedAt time.Time                     `json:"published_at" gorm:"index"`

	AuthorID uint      `json:"author_id" gorm:"index"`
	Author   Account   `json:"author"`
	GroupID  *uint     `json:"group_id" gorm:"index"`
	Group    *Group    `json:"group"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// PostImage references an uploaded file in the media directory.
// The zero value means the post has no image.
type PostImage struct {
	Path     string `json:"path"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

func (v PostImage) IsEmpty() bool {
	return len(v.Path) == 0
}
