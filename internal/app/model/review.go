package model

import "time"

const (
	RatingMin = 1
	RatingMax = 5
)

// Review is a rating plus free text tied to exactly one approved
// Verification. TrekID and CompanyID are denormalized copies taken from the
// verification at creation, as is UserName from the acting user, so reviews
// stay renderable even if a reference later dangles.
type Review struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	UserName       string    `json:"userName"`
	TrekID         string    `json:"trekId"`
	CompanyID      string    `json:"companyId"`
	Rating         int       `json:"rating"` // 1-5
	Text           string    `json:"text"`
	Photos         []string  `json:"photos"`
	VerificationID string    `json:"verificationId"`
	CreatedAt      time.Time `json:"createdAt"`
}
