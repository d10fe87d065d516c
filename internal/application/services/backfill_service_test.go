package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/hospitalservices/internal/application/services"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/providers"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
	"github.com/zatekoja/hospitalservices/tests/mocks"
)

func TestBackfillService_RecomputeAll(t *testing.T) {
	hospitals := mocks.NewMockHospitalRepository(t)
	servicesRepo := mocks.NewMockServiceRepository(t)
	ledger := mocks.NewMockRankLedger(t)
	bus := mocks.NewMockEventBus(t)
	svc := services.NewBackfillService(hospitals, servicesRepo, ledger, bus, nil)

	bus.EXPECT().Publish(mock.Anything, providers.EventChannelCatalogUpdates, mock.MatchedBy(func(e *entities.TargetEvent) bool {
		return e.Type == entities.EventCatalogChanged && e.Target == nil
	})).Return(nil).Once()

	hospitals.EXPECT().List(mock.Anything, repositories.HospitalFilter{Limit: 200}).
		Return([]*entities.Hospital{{ID: "h1"}, {ID: "h2"}}, nil)
	servicesRepo.EXPECT().List(mock.Anything, repositories.ServiceFilter{Limit: 200}).
		Return([]*entities.Service{{ID: "s1"}}, nil)

	ledger.EXPECT().Recompute(mock.Anything, entities.HospitalTarget("h1")).Return(7.3, nil)
	ledger.EXPECT().Recompute(mock.Anything, entities.HospitalTarget("h2")).Return(0.0, nil)
	ledger.EXPECT().Recompute(mock.Anything, entities.ServiceTarget("s1")).Return(10.0, nil)

	report, err := svc.RecomputeAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, services.BackfillReport{Hospitals: 2, Services: 1}, report)
}

func TestBackfillService_RecomputeAll_StopsOnError(t *testing.T) {
	hospitals := mocks.NewMockHospitalRepository(t)
	servicesRepo := mocks.NewMockServiceRepository(t)
	ledger := mocks.NewMockRankLedger(t)
	svc := services.NewBackfillService(hospitals, servicesRepo, ledger, nil, nil)

	boom := errors.New("connection reset")
	hospitals.EXPECT().List(mock.Anything, mock.Anything).Return([]*entities.Hospital{{ID: "h1"}, {ID: "h2"}}, nil)
	ledger.EXPECT().Recompute(mock.Anything, entities.HospitalTarget("h1")).Return(0.0, boom)

	report, err := svc.RecomputeAll(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, report.Hospitals)
}

func TestBackfillService_RecomputeTarget(t *testing.T) {
	ledger := mocks.NewMockRankLedger(t)
	bus := mocks.NewMockEventBus(t)
	svc := services.NewBackfillService(nil, nil, ledger, bus, nil)

	ledger.EXPECT().Recompute(mock.Anything, entities.ServiceTarget("s1")).Return(6.7, nil).Twice()
	bus.EXPECT().Publish(mock.Anything, providers.EventChannelCatalogUpdates, mock.MatchedBy(func(e *entities.TargetEvent) bool {
		return e.Type == entities.EventRankRecomputed &&
			e.Target != nil && *e.Target == entities.ServiceTarget("s1") &&
			e.AverageRank == 6.7
	})).Return(nil).Twice()

	first, err := svc.RecomputeTarget(context.Background(), entities.ServiceTarget("s1"))
	require.NoError(t, err)
	second, err := svc.RecomputeTarget(context.Background(), entities.ServiceTarget("s1"))
	require.NoError(t, err)

	assert.Equal(t, 6.7, first)
	assert.Equal(t, first, second)
}

func TestBackfillService_RecomputeTarget_PublishFailureIsNotFatal(t *testing.T) {
	ledger := mocks.NewMockRankLedger(t)
	bus := mocks.NewMockEventBus(t)
	svc := services.NewBackfillService(nil, nil, ledger, bus, nil)

	ledger.EXPECT().Recompute(mock.Anything, entities.HospitalTarget("h1")).Return(4.5, nil)
	bus.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	average, err := svc.RecomputeTarget(context.Background(), entities.HospitalTarget("h1"))

	require.NoError(t, err)
	assert.Equal(t, 4.5, average)
}

func TestBackfillService_RecomputeAll_PublishesAfterPartialRun(t *testing.T) {
	hospitals := mocks.NewMockHospitalRepository(t)
	servicesRepo := mocks.NewMockServiceRepository(t)
	ledger := mocks.NewMockRankLedger(t)
	bus := mocks.NewMockEventBus(t)
	svc := services.NewBackfillService(hospitals, servicesRepo, ledger, bus, nil)

	boom := errors.New("connection reset")
	hospitals.EXPECT().List(mock.Anything, mock.Anything).Return([]*entities.Hospital{{ID: "h1"}, {ID: "h2"}}, nil)
	ledger.EXPECT().Recompute(mock.Anything, entities.HospitalTarget("h1")).Return(3.0, nil)
	ledger.EXPECT().Recompute(mock.Anything, entities.HospitalTarget("h2")).Return(0.0, boom)
	bus.EXPECT().Publish(mock.Anything, providers.EventChannelCatalogUpdates, mock.Anything).Return(nil).Once()

	report, err := svc.RecomputeAll(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, report.Hospitals)
}
