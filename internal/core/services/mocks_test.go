package services_test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/workorder_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUserIDsByRoles(ctx context.Context, roles []domain.Role) ([]string, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.Role, now time.Time) error {
	args := m.Called(ctx, userID, role, now)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// givenActor registers a profile lookup for userID. The lookup may be made any number of times.
func givenActor(repo *MockUserRepository, userID string, role domain.Role) {
	repo.On("FindUserByID", mock.Anything, userID).
		Return(&domain.User{UserID: userID, Email: userID + "@example.com", Role: role}, nil).
		Maybe()
}

// --- Mock WorkItemRepository ---
type MockWorkItemRepository struct {
	mock.Mock
}

var _ portsrepo.WorkItemRepositoryWithTx = (*MockWorkItemRepository)(nil)

func (m *MockWorkItemRepository) FindWorkItemByID(ctx context.Context, workItemID string) (*domain.WorkItem, error) {
	args := m.Called(ctx, workItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkItem), args.Error(1)
}

func (m *MockWorkItemRepository) ListWorkItems(ctx context.Context, filter domain.WorkItemFilter) ([]domain.WorkItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkItem), args.Error(1)
}

func (m *MockWorkItemRepository) ListArchivedWorkItems(ctx context.Context, limit int, nextToken *string) ([]domain.WorkItem, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.WorkItem), returnedNextToken, args.Error(2)
}

func (m *MockWorkItemRepository) FindProcessSteps(ctx context.Context, workItemID string) ([]domain.ProcessStep, error) {
	args := m.Called(ctx, workItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProcessStep), args.Error(1)
}

func (m *MockWorkItemRepository) SaveWorkItem(ctx context.Context, item domain.WorkItem, steps []domain.ProcessStep) error {
	args := m.Called(ctx, item, steps)
	return args.Error(0)
}

func (m *MockWorkItemRepository) FindWorkItemByIDForUpdate(ctx context.Context, tx pgx.Tx, workItemID string) (*domain.WorkItem, error) {
	args := m.Called(ctx, tx, workItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkItem), args.Error(1)
}

func (m *MockWorkItemRepository) UpdateWorkItemStateInTx(ctx context.Context, tx pgx.Tx, item domain.WorkItem) error {
	args := m.Called(ctx, tx, item)
	return args.Error(0)
}

func (m *MockWorkItemRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockWorkItemRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockWorkItemRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// expectTx sets up a transaction that may roll back (it always does, deferred) and
// optionally commits.
func expectTx(repo *MockWorkItemRepository, commit bool) {
	repo.On("Begin", mock.Anything).Return(nil, nil).Once()
	repo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	if commit {
		repo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	}
}

// --- Mock WorkItemUpdateRepository ---
type MockUpdateRepository struct {
	mock.Mock
}

var _ portsrepo.WorkItemUpdateRepositoryFacade = (*MockUpdateRepository)(nil)

func (m *MockUpdateRepository) FindUpdateByID(ctx context.Context, updateID string) (*domain.WorkItemUpdate, error) {
	args := m.Called(ctx, updateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkItemUpdate), args.Error(1)
}

func (m *MockUpdateRepository) ListUpdatesByWorkItem(ctx context.Context, workItemID string, state *domain.UpdateState) ([]domain.WorkItemUpdate, error) {
	args := m.Called(ctx, workItemID, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkItemUpdate), args.Error(1)
}

func (m *MockUpdateRepository) SaveUpdate(ctx context.Context, update domain.WorkItemUpdate) error {
	args := m.Called(ctx, update)
	return args.Error(0)
}

func (m *MockUpdateRepository) FindUpdateByIDForUpdate(ctx context.Context, tx pgx.Tx, updateID string) (*domain.WorkItemUpdate, error) {
	args := m.Called(ctx, tx, updateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkItemUpdate), args.Error(1)
}

func (m *MockUpdateRepository) ResolveUpdateInTx(ctx context.Context, tx pgx.Tx, updateID string, resolution domain.Resolution) error {
	args := m.Called(ctx, tx, updateID, resolution)
	return args.Error(0)
}

// --- Mock StatusHistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

var _ portsrepo.StatusHistoryRepositoryFacade = (*MockHistoryRepository)(nil)

func (m *MockHistoryRepository) ListHistoryByWorkItem(ctx context.Context, workItemID string) ([]domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, workItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusHistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) AppendHistoryInTx(ctx context.Context, tx pgx.Tx, entry domain.StatusHistoryEntry) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderGraph(ctx context.Context, orderID string) (*domain.OrderGraph, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderGraph), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, limit int, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveOrderItem(ctx context.Context, item domain.OrderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockOrderRepository) SaveOrderGraph(ctx context.Context, graph domain.OrderGraph) error {
	args := m.Called(ctx, graph)
	return args.Error(0)
}

// --- Mock catalog repositories ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockWorkshopRepository struct {
	mock.Mock
}

var _ portsrepo.WorkshopRepository = (*MockWorkshopRepository)(nil)

func (m *MockWorkshopRepository) SaveWorkshop(ctx context.Context, workshop domain.Workshop) error {
	args := m.Called(ctx, workshop)
	return args.Error(0)
}

func (m *MockWorkshopRepository) FindWorkshopByID(ctx context.Context, workshopID string) (*domain.Workshop, error) {
	args := m.Called(ctx, workshopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workshop), args.Error(1)
}

func (m *MockWorkshopRepository) ListWorkshops(ctx context.Context, includeInactive bool) ([]domain.Workshop, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workshop), args.Error(1)
}

// --- Mock attachment storage ---
type MockAttachmentRepository struct {
	mock.Mock
}

var _ portsrepo.AttachmentRepository = (*MockAttachmentRepository)(nil)

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	args := m.Called(ctx, attachment)
	return args.Error(0)
}

func (m *MockAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) ListAttachmentsByEntity(ctx context.Context, entityType domain.AttachmentEntityType, entityID string) ([]domain.Attachment, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}

func (m *MockAttachmentRepository) MarkAttachmentDeleted(ctx context.Context, attachmentID string, deletedBy string, reason *string, now time.Time) error {
	args := m.Called(ctx, attachmentID, deletedBy, reason, now)
	return args.Error(0)
}

type MockBlobStore struct {
	mock.Mock
}

var _ portsrepo.BlobStore = (*MockBlobStore)(nil)

func (m *MockBlobStore) Put(ctx context.Context, key string, contentType string, size int64, body io.Reader) error {
	args := m.Called(ctx, key, contentType, size, body)
	return args.Error(0)
}

func (m *MockBlobStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// --- Mock activity repositories ---
type MockAuditLogRepository struct {
	mock.Mock
}

var _ portsrepo.AuditLogRepository = (*MockAuditLogRepository)(nil)

func (m *MockAuditLogRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) ListAuditEntries(ctx context.Context, entityType *string, limit int, offset int) ([]domain.AuditLogEntry, error) {
	args := m.Called(ctx, entityType, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLogEntry), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

var _ portsrepo.NotificationRepository = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListNotificationsForUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

type MockDashboardRepository struct {
	mock.Mock
}

var _ portsrepo.DashboardRepository = (*MockDashboardRepository)(nil)

func (m *MockDashboardRepository) CountOpenWorkItemsByStatus(ctx context.Context) (map[domain.WorkItemStatus]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.WorkItemStatus]int), args.Error(1)
}

func (m *MockDashboardRepository) CountStaleOnHold(ctx context.Context, notUpdatedSince time.Time) (int, error) {
	args := m.Called(ctx, notUpdatedSince)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountPendingUpdates(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// recordingSink captures published events in order.
type recordingSink struct {
	mu     sync.Mutex
	events []domain.Event
}

var _ portssvc.EventSink = (*recordingSink)(nil)

func (r *recordingSink) Publish(_ context.Context, event domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingSink) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Event(nil), r.events...)
}

func (r *recordingSink) Types() []domain.EventType {
	var types []domain.EventType
	for _, e := range r.Events() {
		types = append(types, e.Type)
	}
	return types
}

// fixedClock returns a clock frozen at t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func statusPtr(s domain.WorkItemStatus) *domain.WorkItemStatus { return &s }
