package models

import (
	"time"

	"gorm.io/gorm"
)

type AdStatus string

const (
	AdPending   AdStatus = "pending"
	AdApproved  AdStatus = "approved"
	AdPublished AdStatus = "published"
	AdRejected  AdStatus = "rejected"
)

func (s AdStatus) Valid() bool {
	switch s {
	case AdPending, AdApproved, AdPublished, AdRejected:
		return true
	}
	return false
}

// PubliclyVisible reports whether an ad in this status may be served to
// unauthenticated callers.
func (s AdStatus) PubliclyVisible() bool {
	return s == AdPublished || s == AdApproved
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
	PaymentFailed PaymentStatus = "failed"
)

type AdSubmission struct {
	ID               uint           `json:"id" gorm:"primarykey"`
	FirstName        string         `json:"first_name" gorm:"not null"`
	LastName         string         `json:"last_name" gorm:"not null"`
	Email            string         `json:"email" gorm:"not null;index"`
	Phone            string         `json:"phone" gorm:"not null"`
	Company          string         `json:"company"`
	BusinessType     string         `json:"business_type" gorm:"not null"`
	AdType           string         `json:"ad_type" gorm:"not null"`
	AdTitle          string         `json:"ad_title" gorm:"not null"`
	AdDescription    string         `json:"ad_description" gorm:"type:text;not null"`
	TargetAudience   string         `json:"target_audience"`
	Budget           string         `json:"budget"`
	Duration         string         `json:"duration" gorm:"not null"`
	StartDate        string         `json:"start_date"`
	ImageURL         string         `json:"image_url"`
	WebsiteURL       string         `json:"website_url"`
	Status           AdStatus       `json:"status" gorm:"default:'pending'"`
	PaymentStatus    PaymentStatus  `json:"payment_status" gorm:"default:'unpaid'"`
	PaymentReference string         `json:"payment_reference" gorm:"index"`
	AmountPaid       int64          `json:"amount_paid"`
	AdminNotes       string         `json:"admin_notes"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
}
