package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
)

func TestTargetEvent_IsRankEvent(t *testing.T) {
	target := entities.HospitalTarget("h1")

	for _, eventType := range []entities.TargetEventType{
		entities.EventRankCreated,
		entities.EventRankUpdated,
		entities.EventRankDeleted,
		entities.EventRankRecomputed,
	} {
		assert.True(t, entities.NewTargetEvent(eventType, target, 5).IsRankEvent(), eventType)
	}

	assert.False(t, entities.NewTargetEvent(entities.EventCommentChanged, target, 0).IsRankEvent())
	assert.False(t, entities.NewCatalogEvent().IsRankEvent())
}
