package models

type Comment struct {
	BaseModel

	Text string `json:"text"`

	PostID   uint    `json:"post_id" gorm:"index"`
	AuthorID uint    `json:"author_id" gorm:"index"`
	Author   Account `json:"author"`
}
