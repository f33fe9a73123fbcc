package models

// Account is the local mirror of an identity issued by the account service.
// The ID is the one carried by the token, not an auto increment value.
type Account struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex"`
	Nick        string `json:"nick"`
	Description string `json:"description"`

	Posts     []Post    `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments  []Comment `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Following []Follow  `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followers []Follow  `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
