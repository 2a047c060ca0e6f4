package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/SscSPs/workorder_tracker/internal/handlers"
	"github.com/SscSPs/workorder_tracker/internal/platform/config"
	"github.com/SscSPs/workorder_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string

	users       *MockUserService
	tokens      *MockTokenService
	workItems   *MockWorkItemService
	approvals   *MockApprovalService
	orders      *MockOrderService
	attachments *MockAttachmentService
	dashboard   *MockDashboardService
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(handlers.RegisterValidators())
}

func (s *HandlerTestSuite) SetupTest() {
	s.jwtSecret = "test-secret-key-that-is-long-enough"
	s.users = new(MockUserService)
	s.tokens = new(MockTokenService)
	s.workItems = new(MockWorkItemService)
	s.approvals = new(MockApprovalService)
	s.orders = new(MockOrderService)
	s.attachments = new(MockAttachmentService)
	s.dashboard = new(MockDashboardService)

	cfg := &config.Config{JWTSecret: s.jwtSecret, LoginRateLimit: "100-M"}
	services := &portssvc.ServiceContainer{
		User:       s.users,
		Token:      s.tokens,
		WorkItem:   s.workItems,
		Approval:   s.approvals,
		Order:      s.orders,
		Attachment: s.attachments,
		Dashboard:  s.dashboard,
	}

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, cfg, services, nil)
}

// token creates a signed bearer token for userID.
func (s *HandlerTestSuite) token(userID string) string {
	token, err := utils.GenerateJWT(userID, s.jwtSecret, time.Hour, "test")
	s.Require().NoError(err)
	return token
}

func (s *HandlerTestSuite) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.token(userID))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) decode(w *httptest.ResponseRecorder, into any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), into))
}

func (s *HandlerTestSuite) assertMocks() {
	mock.AssertExpectationsForObjects(s.T(), s.users, s.tokens, s.workItems, s.approvals, s.orders, s.attachments, s.dashboard)
}

// --- Test Cases ---

func (s *HandlerTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

func (s *HandlerTestSuite) TestProtectedRoutesRequireToken() {
	w := s.do(http.MethodGet, "/api/v1/work-items", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.workItems.AssertNotCalled(s.T(), "ListWorkItems", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: "u-1", Email: "a@b.io", Role: domain.RoleManager}
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s.users.On("AuthenticateUser", mock.Anything, "a@b.io", "secret-pass").Return(user, nil).Once()
	s.tokens.On("GenerateAccessToken", mock.Anything, user).Return("tok", expires, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "a@b.io", Password: "secret-pass"})

	s.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	s.decode(w, &resp)
	s.Equal("tok", resp.Token)
	s.True(expires.Equal(resp.ExpiresAt))
	s.assertMocks()
}

func (s *HandlerTestSuite) TestLogin_WrongPassword() {
	s.users.On("AuthenticateUser", mock.Anything, "a@b.io", "nope").
		Return(nil, apperrors.NewUnauthorizedError("invalid email or password")).Once()

	w := s.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "a@b.io", Password: "nope"})

	s.Equal(http.StatusUnauthorized, w.Code)
	s.tokens.AssertNotCalled(s.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestMe_ListsCapabilities() {
	s.users.On("GetUserByID", mock.Anything, "mm-1").
		Return(&domain.User{UserID: "mm-1", Email: "mm@b.io", Role: domain.RoleMiddleManager}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/me", "mm-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.MeResponse
	s.decode(w, &resp)
	s.Equal(domain.RoleMiddleManager, resp.Role)
	s.ElementsMatch(domain.CapabilitiesOf(domain.RoleMiddleManager), resp.Capabilities)
	s.NotContains(resp.Capabilities, domain.CapRevertStatus)
}

func (s *HandlerTestSuite) TestMe_MissingProfile() {
	s.users.On("GetUserByID", mock.Anything, "ghost").Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	w := s.do(http.MethodGet, "/api/v1/me", "ghost", nil)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlerTestSuite) TestApplyTransition_PendingReturnsAccepted() {
	req := dto.TransitionRequest{Status: domain.StatusDone, ProgressStep: intPtr(10)}
	status := domain.StatusDone
	update := &domain.WorkItemUpdate{UpdateID: "upd-1", WorkItemID: "wi-1", RequestedStatus: &status, State: domain.UpdatePending}
	s.workItems.On("ApplyTransition", mock.Anything, "wi-1", "worker-1", req).
		Return(&domain.TransitionResult{Pending: true, Update: update}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/work-items/wi-1/transitions", "worker-1", req)

	s.Equal(http.StatusAccepted, w.Code)
	var resp dto.TransitionResponse
	s.decode(w, &resp)
	s.True(resp.Pending)
	s.Require().NotNil(resp.Update)
	s.Equal("upd-1", resp.Update.UpdateID)
	s.Nil(resp.WorkItem)
	s.assertMocks()
}

func (s *HandlerTestSuite) TestApplyTransition_CommittedReturnsOK() {
	req := dto.TransitionRequest{Status: domain.StatusInProgress, ProgressStep: intPtr(3)}
	item := &domain.WorkItem{WorkItemID: "wi-1", CurrentStatus: domain.StatusInProgress, ProgressStep: 3}
	s.workItems.On("ApplyTransition", mock.Anything, "wi-1", "mgr-1", req).
		Return(&domain.TransitionResult{WorkItem: item}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/work-items/wi-1/transitions", "mgr-1", req)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.TransitionResponse
	s.decode(w, &resp)
	s.False(resp.Pending)
	s.Require().NotNil(resp.WorkItem)
	s.Equal(domain.StatusInProgress, resp.WorkItem.CurrentStatus)
}

func (s *HandlerTestSuite) TestApplyTransition_RejectsInvalidInput() {
	cases := map[string]map[string]any{
		"unknown status":      {"status": "FINISHED", "progressStep": 1},
		"missing status":      {"progressStep": 1},
		"progress above ten":  {"status": "IN_PROGRESS", "progressStep": 11},
		"negative progress":   {"status": "IN_PROGRESS", "progressStep": -1},
		"progress not number": {"status": "IN_PROGRESS", "progressStep": "half"},
		"missing progress":    {"status": "IN_PROGRESS"},
		"null progress":       {"status": "IN_PROGRESS", "progressStep": nil},
	}
	for name, body := range cases {
		s.Run(name, func() {
			w := s.do(http.MethodPost, "/api/v1/work-items/wi-1/transitions", "mgr-1", body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.workItems.AssertNotCalled(s.T(), "ApplyTransition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestApplyTransition_ErrorMapping() {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"unknown work item", apperrors.NewNotFoundError("work item not found"), http.StatusNotFound},
		{"no profile", apperrors.NewUnauthorizedError("no profile"), http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("nope"), http.StatusForbidden},
		{"store failure", errors.New("pq: connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.workItems.On("ApplyTransition", mock.Anything, "wi-1", "mgr-1", mock.Anything).Return(nil, tc.err).Once()

			w := s.do(http.MethodPost, "/api/v1/work-items/wi-1/transitions", "mgr-1",
				dto.TransitionRequest{Status: domain.StatusOnHold, ProgressStep: intPtr(2)})

			s.Equal(tc.code, w.Code)
			s.NotContains(w.Body.String(), "pq:")
		})
	}
}

func (s *HandlerTestSuite) TestArchiveRouteIsNotAWorkItemID() {
	next := "cursor-2"
	s.workItems.On("ListArchivedWorkItems", mock.Anything, "mgr-1", 20, (*string)(nil)).
		Return([]domain.WorkItem{{WorkItemID: "wi-9"}}, &next, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/work-items/archive", "mgr-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListArchiveResponse
	s.decode(w, &resp)
	s.Len(resp.WorkItems, 1)
	s.Require().NotNil(resp.NextToken)
	s.Equal("cursor-2", *resp.NextToken)
	s.workItems.AssertNotCalled(s.T(), "GetWorkItem", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestListUpdates_FiltersByState() {
	pending := domain.UpdatePending
	s.approvals.On("ListUpdates", mock.Anything, "mgr-1", "wi-1", &pending).
		Return([]domain.WorkItemUpdate{{UpdateID: "upd-1", State: domain.UpdatePending}}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/work-items/wi-1/updates?state=PENDING", "mgr-1", nil)

	s.Equal(http.StatusOK, w.Code)
	s.assertMocks()

	w = s.do(http.MethodGet, "/api/v1/work-items/wi-1/updates?state=MAYBE", "mgr-1", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestResolveUpdate() {
	approved := true
	req := dto.ResolveUpdateRequest{Approved: &approved}
	item := &domain.WorkItem{WorkItemID: "wi-1", CurrentStatus: domain.StatusDone, ProgressStep: 10}
	s.approvals.On("ResolveUpdate", mock.Anything, "upd-1", "mgr-1", req).Return(item, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/work-item-updates/upd-1/resolve", "mgr-1", req)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ResolveUpdateResponse
	s.decode(w, &resp)
	s.True(resp.Approved)
	s.Require().NotNil(resp.WorkItem)
	s.Equal(domain.StatusDone, resp.WorkItem.CurrentStatus)
}

func (s *HandlerTestSuite) TestResolveUpdate_RejectedHasNoWorkItem() {
	rejected := false
	req := dto.ResolveUpdateRequest{Approved: &rejected}
	s.approvals.On("ResolveUpdate", mock.Anything, "upd-1", "mgr-1", req).Return(nil, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/work-item-updates/upd-1/resolve", "mgr-1", req)

	s.Equal(http.StatusOK, w.Code)
	s.NotContains(w.Body.String(), "workItem")
}

func (s *HandlerTestSuite) TestResolveUpdate_AlreadyResolvedConflicts() {
	s.approvals.On("ResolveUpdate", mock.Anything, "upd-1", "mgr-1", mock.Anything).
		Return(nil, apperrors.NewConflictError("update already resolved")).Once()

	approved := true
	w := s.do(http.MethodPost, "/api/v1/work-item-updates/upd-1/resolve", "mgr-1", dto.ResolveUpdateRequest{Approved: &approved})

	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerTestSuite) TestResolveUpdate_DecisionRequired() {
	w := s.do(http.MethodPost, "/api/v1/work-item-updates/upd-1/resolve", "mgr-1", map[string]any{"reviewNote": "ok"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.approvals.AssertNotCalled(s.T(), "ResolveUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCloneOrder() {
	s.orders.On("CloneOrder", mock.Anything, "ord-1", "mgr-1").
		Return(&domain.Order{OrderID: "ord-2", OrderNumber: "A-100-COPY-1"}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/orders/ord-1/clone", "mgr-1", nil)

	s.Equal(http.StatusCreated, w.Code)
	var resp domain.Order
	s.decode(w, &resp)
	s.Equal("ord-2", resp.OrderID)
}

func (s *HandlerTestSuite) TestCloneOrder_ForbiddenAndMissing() {
	s.orders.On("CloneOrder", mock.Anything, "ord-1", "mm-1").Return(nil, apperrors.NewForbiddenError("role MIDDLE_MANAGER may not clone_orders")).Once()
	s.orders.On("CloneOrder", mock.Anything, "missing", "mgr-1").Return(nil, apperrors.NewNotFoundError("order not found")).Once()

	s.Equal(http.StatusForbidden, s.do(http.MethodPost, "/api/v1/orders/ord-1/clone", "mm-1", nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodPost, "/api/v1/orders/missing/clone", "mgr-1", nil).Code)
}

func (s *HandlerTestSuite) TestUploadAttachment() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	s.Require().NoError(mw.WriteField("entityType", "work_item"))
	s.Require().NoError(mw.WriteField("entityID", "wi-1"))
	part, err := mw.CreateFormFile("file", "drawing.pdf")
	s.Require().NoError(err)
	_, err = part.Write([]byte("%PDF-1.4"))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	s.attachments.On("UploadAttachment", mock.Anything, "worker-1", mock.MatchedBy(func(u dto.AttachmentUpload) bool {
		return u.EntityType == domain.AttachmentOnWorkItem && u.EntityID == "wi-1" &&
			u.Filename == "drawing.pdf" && u.SizeBytes == 8 && u.Body != nil
	})).Return(&domain.Attachment{AttachmentID: "att-1"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attachments", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token("worker-1"))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	s.assertMocks()
}

func (s *HandlerTestSuite) TestUploadAttachment_RequiresFile() {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	s.Require().NoError(mw.WriteField("entityType", "order"))
	s.Require().NoError(mw.WriteField("entityID", "ord-1"))
	s.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attachments", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.token("worker-1"))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestDeleteAttachment() {
	reason := "wrong file"
	s.attachments.On("DeleteAttachment", mock.Anything, "mgr-1", "att-1", &reason).Return(nil).Once()
	s.attachments.On("DeleteAttachment", mock.Anything, "mgr-1", "att-2", (*string)(nil)).Return(nil).Once()

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/attachments/att-1", "mgr-1", dto.DeleteAttachmentRequest{Reason: &reason}).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/api/v1/attachments/att-2", "mgr-1", nil).Code)
	s.assertMocks()
}

func (s *HandlerTestSuite) TestDownloadURL() {
	expires := time.Date(2030, 1, 1, 1, 0, 0, 0, time.UTC)
	s.attachments.On("GetDownloadURL", mock.Anything, "worker-1", "att-1").
		Return("https://bucket.example/signed", expires, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/attachments/att-1/url", "worker-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.AttachmentURLResponse
	s.decode(w, &resp)
	s.True(strings.HasPrefix(resp.URL, "https://"))
	s.True(expires.Equal(resp.ExpiresAt))
}

func (s *HandlerTestSuite) TestDashboard() {
	s.dashboard.On("GetSummary", mock.Anything, "mgr-1").Return(&domain.DashboardSummary{
		OpenByStatus:   map[domain.WorkItemStatus]int{domain.StatusNew: 2, domain.StatusOnHold: 1},
		TotalOpen:      3,
		StaleOnHold:    1,
		PendingUpdates: 4,
	}, nil).Once()

	w := s.do(http.MethodGet, "/api/v1/dashboard", "mgr-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp domain.DashboardSummary
	s.decode(w, &resp)
	s.Equal(3, resp.TotalOpen)
	s.Equal(4, resp.PendingUpdates)
}

func (s *HandlerTestSuite) TestCreateUser_ValidatesRole() {
	w := s.do(http.MethodPost, "/api/v1/users", "admin-1", map[string]any{
		"email": "new@b.io", "password": "long-enough", "role": "SUPERUSER",
	})

	s.Equal(http.StatusBadRequest, w.Code)
	s.users.AssertNotCalled(s.T(), "CreateUser", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---
func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
