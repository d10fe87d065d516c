package entities

import (
	"time"

	"github.com/google/uuid"
)

// TargetEventType represents what changed on a target
type TargetEventType string

const (
	EventRankCreated    TargetEventType = "rank_created"
	EventRankUpdated    TargetEventType = "rank_updated"
	EventRankDeleted    TargetEventType = "rank_deleted"
	EventRankRecomputed TargetEventType = "rank_recomputed"
	EventCommentChanged TargetEventType = "comment_changed"
	// EventCatalogChanged covers admin writes to categories, hospitals and services
	EventCatalogChanged TargetEventType = "catalog_changed"
)

// TargetEvent is published after a hospital or service, its ranks or its
// comments changed. AverageRank is set for rank events.
type TargetEvent struct {
	ID          string          `json:"id"`
	Type        TargetEventType `json:"type"`
	Target      *TargetRef      `json:"target,omitempty"`
	AverageRank float64         `json:"average_rank"`
	Timestamp   time.Time       `json:"timestamp"`
}

// NewTargetEvent creates a new event about target
func NewTargetEvent(eventType TargetEventType, target TargetRef, average float64) *TargetEvent {
	return &TargetEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		Target:      &target,
		AverageRank: average,
		Timestamp:   time.Now().UTC(),
	}
}

// NewCatalogEvent creates an event for a catalog write that is not bound to one target
func NewCatalogEvent() *TargetEvent {
	return &TargetEvent{
		ID:        uuid.New().String(),
		Type:      EventCatalogChanged,
		Timestamp: time.Now().UTC(),
	}
}

// IsRankEvent reports whether the event changed an average rank
func (e *TargetEvent) IsRankEvent() bool {
	switch e.Type {
	case EventRankCreated, EventRankUpdated, EventRankDeleted, EventRankRecomputed:
		return true
	}
	return false
}
