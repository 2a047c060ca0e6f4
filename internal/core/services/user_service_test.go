package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/workorder_tracker/internal/apperrors"
	"github.com/SscSPs/workorder_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/workorder_tracker/internal/core/ports/services"
	"github.com/SscSPs/workorder_tracker/internal/core/services"
	"github.com/SscSPs/workorder_tracker/internal/dto"
	"github.com/SscSPs/workorder_tracker/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	sink     *recordingSink
	service  portssvc.UserSvcFacade
	now      time.Time
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.sink = &recordingSink{}
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	givenActor(s.userRepo, "admin-1", domain.RoleAdmin)
	givenActor(s.userRepo, "manager-1", domain.RoleManager)

	s.service = services.NewUserService(services.NewAccessService(s.userRepo), s.userRepo,
		services.WithEventSink(s.sink),
		services.WithClock(fixedClock(s.now)))
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreateUser_HashesPasswordAndNormalizesEmail() {
	ctx := context.Background()
	var saved domain.User
	s.userRepo.On("SaveUser", ctx, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := s.service.CreateUser(ctx, "admin-1", dto.CreateUserRequest{
		Email:    " Floor.Lead@Example.com ",
		Password: "s3cret-pass",
		Role:     domain.RoleMiddleManager,
	})

	s.Require().NoError(err)
	s.Equal("floor.lead@example.com", user.Email)
	s.Equal(domain.RoleMiddleManager, user.Role)
	s.NotEqual("s3cret-pass", saved.PasswordHash)
	s.True(utils.CheckPasswordHash("s3cret-pass", saved.PasswordHash))
	s.Equal([]domain.EventType{domain.EventUserCreated}, s.sink.Types())
}

func (s *UserServiceTestSuite) TestCreateUser_OnlyAdmins() {
	user, err := s.service.CreateUser(context.Background(), "manager-1", dto.CreateUserRequest{
		Email: "x@example.com", Password: "password1", Role: domain.RolePersonnel,
	})

	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrForbidden)
	s.userRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestCreateUser_UnknownRole() {
	user, err := s.service.CreateUser(context.Background(), "admin-1", dto.CreateUserRequest{
		Email: "x@example.com", Password: "password1", Role: "OWNER",
	})

	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestUpdateUserRole() {
	ctx := context.Background()
	target := &domain.User{UserID: "user-2", Email: "u2@example.com", Role: domain.RolePersonnel}
	s.userRepo.On("FindUserByID", ctx, "user-2").Return(target, nil).Once()
	s.userRepo.On("UpdateUserRole", ctx, "user-2", domain.RoleMiddleManager, s.now).Return(nil).Once()

	user, err := s.service.UpdateUserRole(ctx, "admin-1", "user-2", domain.RoleMiddleManager)

	s.Require().NoError(err)
	s.Equal(domain.RoleMiddleManager, user.Role)
	events := s.sink.Events()
	s.Require().Len(events, 1)
	s.Equal(domain.RolePersonnel, events[0].Before.(dto.UserResponse).Role)
	s.Equal(domain.RoleMiddleManager, events[0].After.(dto.UserResponse).Role)
}

func (s *UserServiceTestSuite) TestUpdateUserRole_CannotDemoteSelf() {
	user, err := s.service.UpdateUserRole(context.Background(), "admin-1", "admin-1", domain.RoleManager)

	s.Nil(user)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.userRepo.AssertNotCalled(s.T(), "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDeleteUser() {
	ctx := context.Background()
	s.userRepo.On("DeleteUser", ctx, "user-2").Return(nil).Once()

	s.Require().NoError(s.service.DeleteUser(ctx, "admin-1", "user-2"))
	s.ErrorIs(s.service.DeleteUser(ctx, "admin-1", "admin-1"), apperrors.ErrConflict)
	s.userRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	s.Require().NoError(err)
	stored := &domain.User{UserID: "user-3", Email: "pat@example.com", PasswordHash: hash, Role: domain.RolePersonnel}
	s.userRepo.On("FindUserByEmail", ctx, "pat@example.com").Return(stored, nil)
	s.userRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.NewNotFoundError("user not found"))

	user, err := s.service.AuthenticateUser(ctx, "Pat@Example.com", "correct horse")
	s.Require().NoError(err)
	s.Equal("user-3", user.UserID)

	_, err = s.service.AuthenticateUser(ctx, "pat@example.com", "wrong")
	s.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = s.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")
	s.ErrorIs(err, apperrors.ErrUnauthorized)
	s.NotErrorIs(err, apperrors.ErrNotFound)
}
