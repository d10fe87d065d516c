package entities

import (
	"strconv"
	"time"
)

const labelWidth = 20

// Attachment holds what comments and ranks share: the author, the
// timestamps and the single hospital-or-service target.
type Attachment struct {
	AuthorID  string    `json:"author"`
	Target    TargetRef `json:"target"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate runs the checks shared by comments and ranks
func (a *Attachment) Validate() error {
	return a.Target.Validate()
}

// TargetSummary is a read-only view of a target used for display
type TargetSummary struct {
	Target       TargetRef
	Name         string
	HospitalName string // owning hospital, set for services
}

// Describe renders "author - target", naming the owning hospital for services
func (s TargetSummary) Describe(authorName string) string {
	author := truncate(authorName, labelWidth)
	if s.Target.Kind == TargetService {
		return author + " - " + truncate(s.Name, labelWidth) + " (" + truncate(s.HospitalName, labelWidth) + ")"
	}
	return author + " - " + truncate(s.Name, labelWidth)
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	return string(runes[:width])
}

func formatRank(rank float64) string {
	if rank == 10 {
		return "10"
	}
	return strconv.FormatFloat(rank, 'f', 1, 64)
}
