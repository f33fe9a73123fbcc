package models

type Group struct {
	BaseModel

	Title       string `json:"title" gorm:"size:200" validate:"required,max=200"`
	Slug        string `json:"slug" gorm:"uniqueIndex" validate:"required,lowercase,max=64"`
	Description string `json:"description" validate:"required"`

	Posts []Post `json:"-" gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
}
