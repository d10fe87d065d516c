package entities

import (
	"fmt"
	"time"
)

// Default image paths used when a hospital has none uploaded
const (
	DefaultSmallImage = "hospital_images/default_mini_image.jpg"
	DefaultBigImage   = "hospital_images/default_big_image.jpg"
)

// Listing holds the fields hospitals and services share
type Listing struct {
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	AverageRank float64 `json:"average_rank" db:"average_rank"`
	CategoryID  *string `json:"category,omitempty" db:"category_id"`
}

// Hospital is a ranked, commentable hospital
type Hospital struct {
	ID string `json:"id" db:"id"`
	Listing
	Slug       string    `json:"slug" db:"slug"`
	WorkTime   string    `json:"work_time" db:"work_time"` // "Mon-Fri 8:00-22:00(a break 12:00-13:00), Sat 8:00-20:00, Sun Closed"
	SmallImage string    `json:"small_image" db:"small_image"`
	BigImage   string    `json:"big_image" db:"big_image"`
	IsOnMain   bool      `json:"is_on_main" db:"is_on_main"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Label is the short form shown in listings and logs
func (h *Hospital) Label() string {
	return fmt.Sprintf("%s (%s)", truncate(h.Name, labelWidth), formatRank(h.AverageRank))
}
