package models

import "time"

// Comment is hard-deleted by admins, so no gorm soft-delete column here.
type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;index"`
	Article   *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID"`
	AuthorID  uint      `json:"author_id" gorm:"not null"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
