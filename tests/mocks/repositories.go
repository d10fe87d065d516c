package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
	"github.com/zatekoja/hospitalservices/internal/domain/repositories"
)

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

type MockCategoryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryRepository) EXPECT() *MockCategoryRepository_Expecter {
	return &MockCategoryRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, category
func (_m *MockCategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	ret := _m.Called(ctx, category)
	return ret.Error(0)
}

// Create is a helper method to define mock.On call
func (_e *MockCategoryRepository_Expecter) Create(ctx interface{}, category interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, category)
}

// GetBySlug provides a mock function with given fields: ctx, slug
func (_m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	ret := _m.Called(ctx, slug)
	var r0 *entities.Category
	if v := ret.Get(0); v != nil {
		r0 = v.(*entities.Category)
	}
	return r0, ret.Error(1)
}

// GetBySlug is a helper method to define mock.On call
func (_e *MockCategoryRepository_Expecter) GetBySlug(ctx interface{}, slug interface{}) *mock.Call {
	return _e.mock.On("GetBySlug", ctx, slug)
}

// List provides a mock function with given fields: ctx, search
func (_m *MockCategoryRepository) List(ctx context.Context, search string) ([]*entities.Category, error) {
	ret := _m.Called(ctx, search)
	var r0 []*entities.Category
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entities.Category)
	}
	return r0, ret.Error(1)
}

// List is a helper method to define mock.On call
func (_e *MockCategoryRepository_Expecter) List(ctx interface{}, search interface{}) *mock.Call {
	return _e.mock.On("List", ctx, search)
}

// Update provides a mock function with given fields: ctx, category
func (_m *MockCategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	ret := _m.Called(ctx, category)
	return ret.Error(0)
}

// Update is a helper method to define mock.On call
func (_e *MockCategoryRepository_Expecter) Update(ctx interface{}, category interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, category)
}

// Delete provides a mock function with given fields: ctx, slug
func (_m *MockCategoryRepository) Delete(ctx context.Context, slug string) error {
	ret := _m.Called(ctx, slug)
	return ret.Error(0)
}

// Delete is a helper method to define mock.On call
func (_e *MockCategoryRepository_Expecter) Delete(ctx interface{}, slug interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, slug)
}

// NewMockCategoryRepository creates a new instance of MockCategoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHospitalRepository is a mock implementation of repositories.HospitalRepository
type MockHospitalRepository struct {
	mock.Mock
}

type MockHospitalRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHospitalRepository) EXPECT() *MockHospitalRepository_Expecter {
	return &MockHospitalRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, hospital
func (_m *MockHospitalRepository) Create(ctx context.Context, hospital *entities.Hospital) error {
	ret := _m.Called(ctx, hospital)
	return ret.Error(0)
}

// Create is a helper method to define mock.On call
func (_e *MockHospitalRepository_Expecter) Create(ctx interface{}, hospital interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, hospital)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockHospitalRepository) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	ret := _m.Called(ctx, id)
	var r0 *entities.Hospital
	if v := ret.Get(0); v != nil {
		r0 = v.(*entities.Hospital)
	}
	return r0, ret.Error(1)
}

// GetByID is a helper method to define mock.On call
func (_e *MockHospitalRepository_Expecter) GetByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

// GetBySlug provides a mock function with given fields: ctx, slug
func (_m *MockHospitalRepository) GetBySlug(ctx context.Context, slug string) (*entities.Hospital, error) {
	ret := _m.Called(ctx, slug)
	var r0 *entities.Hospital
	if v := ret.Get(0); v != nil {
		r0 = v.(*entities.Hospital)
	}
	return r0, ret.Error(1)
}

// GetBySlug is a helper method to define mock.On call
func (_e *MockHospitalRepository_Expecter) GetBySlug(ctx interface{}, slug interface{}) *mock.Call {
	return _e.mock.On("GetBySlug", ctx, slug)
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockHospitalRepository) List(ctx context.Context, filter repositories.HospitalFilter) ([]*entities.Hospital, error) {
	ret := _m.Called(ctx, filter)
	var r0 []*entities.Hospital
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entities.Hospital)
	}
	return r0, ret.Error(1)
}

// List is a helper method to define mock.On call
func (_e *MockHospitalRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

// Update provides a mock function with given fields: ctx, hospital
func (_m *MockHospitalRepository) Update(ctx context.Context, hospital *entities.Hospital) error {
	ret := _m.Called(ctx, hospital)
	return ret.Error(0)
}

// Update is a helper method to define mock.On call
func (_e *MockHospitalRepository_Expecter) Update(ctx interface{}, hospital interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, hospital)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockHospitalRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// Delete is a helper method to define mock.On call
func (_e *MockHospitalRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockHospitalRepository creates a new instance of MockHospitalRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockHospitalRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHospitalRepository {
	m := &MockHospitalRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockServiceRepository is a mock implementation of repositories.ServiceRepository
type MockServiceRepository struct {
	mock.Mock
}

type MockServiceRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockServiceRepository) EXPECT() *MockServiceRepository_Expecter {
	return &MockServiceRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, service
func (_m *MockServiceRepository) Create(ctx context.Context, service *entities.Service) error {
	ret := _m.Called(ctx, service)
	return ret.Error(0)
}

// Create is a helper method to define mock.On call
func (_e *MockServiceRepository_Expecter) Create(ctx interface{}, service interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, service)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockServiceRepository) GetByID(ctx context.Context, id string) (*entities.Service, error) {
	ret := _m.Called(ctx, id)
	var r0 *entities.Service
	if v := ret.Get(0); v != nil {
		r0 = v.(*entities.Service)
	}
	return r0, ret.Error(1)
}

// GetByID is a helper method to define mock.On call
func (_e *MockServiceRepository_Expecter) GetByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockServiceRepository) List(ctx context.Context, filter repositories.ServiceFilter) ([]*entities.Service, error) {
	ret := _m.Called(ctx, filter)
	var r0 []*entities.Service
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entities.Service)
	}
	return r0, ret.Error(1)
}

// List is a helper method to define mock.On call
func (_e *MockServiceRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

// Update provides a mock function with given fields: ctx, service
func (_m *MockServiceRepository) Update(ctx context.Context, service *entities.Service) error {
	ret := _m.Called(ctx, service)
	return ret.Error(0)
}

// Update is a helper method to define mock.On call
func (_e *MockServiceRepository_Expecter) Update(ctx interface{}, service interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, service)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockServiceRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// Delete is a helper method to define mock.On call
func (_e *MockServiceRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockServiceRepository creates a new instance of MockServiceRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockServiceRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockServiceRepository {
	m := &MockServiceRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCommentRepository is a mock implementation of repositories.CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

type MockCommentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCommentRepository) EXPECT() *MockCommentRepository_Expecter {
	return &MockCommentRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, comment
func (_m *MockCommentRepository) Create(ctx context.Context, comment *entities.Comment) error {
	ret := _m.Called(ctx, comment)
	return ret.Error(0)
}

// Create is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) Create(ctx interface{}, comment interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, comment)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockCommentRepository) GetByID(ctx context.Context, id string) (*entities.Comment, error) {
	ret := _m.Called(ctx, id)
	var r0 *entities.Comment
	if v := ret.Get(0); v != nil {
		r0 = v.(*entities.Comment)
	}
	return r0, ret.Error(1)
}

// GetByID is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) GetByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockCommentRepository) List(ctx context.Context, filter repositories.AttachmentFilter) ([]*entities.Comment, error) {
	ret := _m.Called(ctx, filter)
	var r0 []*entities.Comment
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entities.Comment)
	}
	return r0, ret.Error(1)
}

// List is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

// Update provides a mock function with given fields: ctx, comment
func (_m *MockCommentRepository) Update(ctx context.Context, comment *entities.Comment) error {
	ret := _m.Called(ctx, comment)
	return ret.Error(0)
}

// Update is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) Update(ctx interface{}, comment interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, comment)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

// Delete is a helper method to define mock.On call
func (_e *MockCommentRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockCommentRepository creates a new instance of MockCommentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCommentRepository {
	m := &MockCommentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRankLedger is a mock implementation of repositories.RankLedger
type MockRankLedger struct {
	mock.Mock
}

type MockRankLedger_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRankLedger) EXPECT() *MockRankLedger_Expecter {
	return &MockRankLedger_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, rank
func (_m *MockRankLedger) Create(ctx context.Context, rank *entities.Rank) (float64, error) {
	ret := _m.Called(ctx, rank)
	var r0 float64
	if v := ret.Get(0); v != nil {
		r0 = v.(float64)
	}
	return r0, ret.Error(1)
}

// Create is a helper method to define mock.On call
func (_e *MockRankLedger_Expecter) Create(ctx interface{}, rank interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, rank)
}

// Update provides a mock function with given fields: ctx, rank
func (_m *MockRankLedger) Update(ctx context.Context, rank *entities.Rank) (float64, error) {
	ret := _m.Called(ctx, rank)
	var r0 float64
	if v := ret.Get(0); v != nil {
		r0 = v.(float64)
	}
	return r0, ret.Error(1)
}

// Update is a helper method to define mock.On call
func (_e *MockRankLedger_Expecter) Update(ctx interface{}, rank interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, rank)
}

// Delete provides a mock function with given fields: ctx, rank
func (_m *MockRankLedger) Delete(ctx context.Context, rank *entities.Rank) (float64, error) {
	ret := _m.Called(ctx, rank)
	var r0 float64
	if v := ret.Get(0); v != nil {
		r0 = v.(float64)
	}
	return r0, ret.Error(1)
}

// Delete is a helper method to define mock.On call
func (_e *MockRankLedger_Expecter) Delete(ctx interface{}, rank interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, rank)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockRankLedger) GetByID(ctx context.Context, id string) (*entities.Rank, error) {
	ret := _m.Called(ctx, id)
	var r0 *entities.Rank
	if v := ret.Get(0); v != nil {
		r0 = v.(*entities.Rank)
	}
	return r0, ret.Error(1)
}

// GetByID is a helper method to define mock.On call
func (_e *MockRankLedger_Expecter) GetByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockRankLedger) List(ctx context.Context, filter repositories.AttachmentFilter) ([]*entities.Rank, error) {
	ret := _m.Called(ctx, filter)
	var r0 []*entities.Rank
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entities.Rank)
	}
	return r0, ret.Error(1)
}

// List is a helper method to define mock.On call
func (_e *MockRankLedger_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

// Recompute provides a mock function with given fields: ctx, target
func (_m *MockRankLedger) Recompute(ctx context.Context, target entities.TargetRef) (float64, error) {
	ret := _m.Called(ctx, target)
	var r0 float64
	if v := ret.Get(0); v != nil {
		r0 = v.(float64)
	}
	return r0, ret.Error(1)
}

// Recompute is a helper method to define mock.On call
func (_e *MockRankLedger_Expecter) Recompute(ctx interface{}, target interface{}) *mock.Call {
	return _e.mock.On("Recompute", ctx, target)
}

// NewMockRankLedger creates a new instance of MockRankLedger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRankLedger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRankLedger {
	m := &MockRankLedger{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

type MockUserRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserRepository) EXPECT() *MockUserRepository_Expecter {
	return &MockUserRepository_Expecter{mock: &_m.Mock}
}

// Upsert provides a mock function with given fields: ctx, user
func (_m *MockUserRepository) Upsert(ctx context.Context, user *entities.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// Upsert is a helper method to define mock.On call
func (_e *MockUserRepository_Expecter) Upsert(ctx interface{}, user interface{}) *mock.Call {
	return _e.mock.On("Upsert", ctx, user)
}

// GetByIDs provides a mock function with given fields: ctx, ids
func (_m *MockUserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entities.User, error) {
	ret := _m.Called(ctx, ids)
	var r0 map[string]*entities.User
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]*entities.User)
	}
	return r0, ret.Error(1)
}

// GetByIDs is a helper method to define mock.On call
func (_e *MockUserRepository_Expecter) GetByIDs(ctx interface{}, ids interface{}) *mock.Call {
	return _e.mock.On("GetByIDs", ctx, ids)
}

// NewMockUserRepository creates a new instance of MockUserRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
