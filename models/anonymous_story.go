package models

import (
	"time"

	"gorm.io/gorm"
)

type StoryStatus string

const (
	StoryPending  StoryStatus = "pending"
	StoryApproved StoryStatus = "approved"
	StoryRejected StoryStatus = "rejected"
)

func (s StoryStatus) Valid() bool {
	switch s {
	case StoryPending, StoryApproved, StoryRejected:
		return true
	}
	return false
}

// AnonymousStory deliberately carries no author reference. ContactEmail is
// optional and never included in public responses.
type AnonymousStory struct {
	ID           uint           `json:"id" gorm:"primarykey"`
	Title        string         `json:"title" gorm:"not null"`
	Body         string         `json:"body" gorm:"type:text;not null"`
	Category     string         `json:"category"`
	ContactEmail string         `json:"-"`
	Status       StoryStatus    `json:"status" gorm:"default:'pending'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
