package models

// Follow is a directed edge from a follower to an author.
// At most one edge exists per ordered pair.
type Follow struct {
	BaseModel

	FollowerID uint    `json:"follower_id" gorm:"index;uniqueIndex:idx_follow_pair"`
	Follower   Account `json:"follower"`
	AuthorID   uint    `json:"author_id" gorm:"index;uniqueIndex:idx_follow_pair"`
	Author     Account `json:"author"`
}
