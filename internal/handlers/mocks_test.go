package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, actorUserID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, actorUserID string, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, actorUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUserRole(ctx context.Context, actorUserID string, targetUserID string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, actorUserID, targetUserID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, actorUserID string, targetUserID string) error {
	args := m.Called(ctx, actorUserID, targetUserID)
	return args.Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, email string, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockTokenService) ParseAccessToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock WorkItemService ---
type MockWorkItemService struct {
	mock.Mock
}

func (m *MockWorkItemService) GetWorkItem(ctx context.Context, actorUserID string, workItemID string) (*domain.WorkItemWithSteps, error) {
	args := m.Called(ctx, actorUserID, workItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkItemWithSteps), args.Error(1)
}
func (m *MockWorkItemService) ListWorkItems(ctx context.Context, actorUserID string, filter domain.WorkItemFilter) ([]domain.WorkItem, error) {
	args := m.Called(ctx, actorUserID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkItem), args.Error(1)
}
func (m *MockWorkItemService) ListArchivedWorkItems(ctx context.Context, actorUserID string, limit int, nextToken *string) ([]domain.WorkItem, *string, error) {
	args := m.Called(ctx, actorUserID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.WorkItem), next, args.Error(2)
}
func (m *MockWorkItemService) ListHistory(ctx context.Context, actorUserID string, workItemID string) ([]domain.StatusHistoryEntry, error) {
	args := m.Called(ctx, actorUserID, workItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusHistoryEntry), args.Error(1)
}
func (m *MockWorkItemService) CreateWorkItem(ctx context.Context, actorUserID string, req dto.CreateWorkItemRequest) (*domain.WorkItem, error) {
	args := m.Called(ctx, actorUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkItem), args.Error(1)
}
func (m *MockWorkItemService) ApplyTransition(ctx context.Context, workItemID string, actorUserID string, req dto.TransitionRequest) (*domain.TransitionResult, error) {
	args := m.Called(ctx, workItemID, actorUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransitionResult), args.Error(1)
}

var _ portssvc.WorkItemSvcFacade = (*MockWorkItemService)(nil)

// --- Mock ApprovalService ---
type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) ResolveUpdate(ctx context.Context, updateID string, reviewerUserID string, req dto.ResolveUpdateRequest) (*domain.WorkItem, error) {
	args := m.Called(ctx, updateID, reviewerUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkItem), args.Error(1)
}
func (m *MockApprovalService) ListPendingUpdates(ctx context.Context, actorUserID string, workItemID string) ([]domain.WorkItemUpdate, error) {
	args := m.Called(ctx, actorUserID, workItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkItemUpdate), args.Error(1)
}
func (m *MockApprovalService) ListUpdates(ctx context.Context, actorUserID string, workItemID string, state *domain.UpdateState) ([]domain.WorkItemUpdate, error) {
	args := m.Called(ctx, actorUserID, workItemID, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkItemUpdate), args.Error(1)
}

var _ portssvc.ApprovalSvcFacade = (*MockApprovalService)(nil)

// --- Mock OrderService ---
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetOrder(ctx context.Context, actorUserID string, orderID string) (*domain.OrderGraph, error) {
	args := m.Called(ctx, actorUserID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderGraph), args.Error(1)
}
func (m *MockOrderService) ListOrders(ctx context.Context, actorUserID string, limit int, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, actorUserID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderService) CreateOrder(ctx context.Context, actorUserID string, req dto.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, actorUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderService) AddOrderItem(ctx context.Context, actorUserID string, orderID string, req dto.AddOrderItemRequest) (*domain.OrderItem, error) {
	args := m.Called(ctx, actorUserID, orderID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}
func (m *MockOrderService) CloneOrder(ctx context.Context, orderID string, actorUserID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

var _ portssvc.OrderSvcFacade = (*MockOrderService)(nil)

// --- Mock AttachmentService ---
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) UploadAttachment(ctx context.Context, actorUserID string, upload dto.AttachmentUpload) (*domain.Attachment, error) {
	args := m.Called(ctx, actorUserID, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attachment), args.Error(1)
}
func (m *MockAttachmentService) ListAttachments(ctx context.Context, actorUserID string, entityType domain.AttachmentEntityType, entityID string) ([]domain.Attachment, error) {
	args := m.Called(ctx, actorUserID, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attachment), args.Error(1)
}
func (m *MockAttachmentService) GetDownloadURL(ctx context.Context, actorUserID string, attachmentID string) (string, time.Time, error) {
	args := m.Called(ctx, actorUserID, attachmentID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
func (m *MockAttachmentService) DeleteAttachment(ctx context.Context, actorUserID string, attachmentID string, reason *string) error {
	args := m.Called(ctx, actorUserID, attachmentID, reason)
	return args.Error(0)
}

var _ portssvc.AttachmentSvcFacade = (*MockAttachmentService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetSummary(ctx context.Context, actorUserID string) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

func intPtr(i int) *int { return &i }
