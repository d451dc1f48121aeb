package models

import (
	"time"
)

// MinCommentTextLen is the minimum number of characters a comment must contain.
const MinCommentTextLen = 1

// Comment represents a comment on a post. Comments are deleted together
// with their post and with their author.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Post      Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
