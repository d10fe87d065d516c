package entities

import (
	"fmt"
	"time"
)

// Service is a priced service offered by a hospital
type Service struct {
	ID string `json:"id" db:"id"`
	Listing
	PriceSpec
	HospitalID string    `json:"hospital" db:"hospital_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Label is the short form shown in listings and logs
func (s *Service) Label(hospitalName string) string {
	return fmt.Sprintf("%s - %s (%s)",
		truncate(s.Name, labelWidth),
		truncate(hospitalName, labelWidth),
		formatRank(s.AverageRank),
	)
}
