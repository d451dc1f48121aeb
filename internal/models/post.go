package models

import (
	"time"
)

// MinPostTextLen is the minimum number of characters a post must contain.
const MinPostTextLen = 2

// Post is a single blog entry. A post always belongs to an author and may
// optionally belong to a group. Image holds an opaque reference issued by
// the media-storage collaborator.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	GroupID  *uint  `gorm:"index" json:"group_id"`
	Group    *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Image    string `json:"image"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
