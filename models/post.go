package models

import (
	"time"
)

type Post struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_posts_author_created,priority:2"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  uint      `json:"author_id" gorm:"not null;index:idx_posts_author_created,priority:1"`
	Author    User      `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments  []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
