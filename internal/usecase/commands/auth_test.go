//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"event-booking-api/internal/infra"
	"event-booking-api/internal/pkg/clock"
	"event-booking-api/internal/pkg/jwt"
	"event-booking-api/internal/pkg/password"
	"event-booking-api/internal/usecase/commands"
	"event-booking-api/tests/common/builder"
	queriesmock "event-booking-api/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockUserReadStore
	uow           *fakeUoW
	jwtService    *jwt.Service
	cmds          commands.AuthCommands
	passwordHash  string
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPassword("password123")
	require.NoError(s.T(), err)
	s.passwordHash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockUserReadStore(s.mockCtrl)
	s.uow = newFakeUoW()
	s.jwtService = jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour, clock.NewRealClock())
	s.cmds = commands.NewAuthCommands(s.uow, s.mockReadStore, s.jwtService)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	req := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns token pair and updates last login", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(view, s.passwordHash, nil).Times(1)

		result, err := s.cmds.Login(context.Background(), req)
		require.NoError(s.T(), err)
		require.NotNil(s.T(), result)

		assert.Equal(s.T(), view.ID, result.UserID)
		require.NotNil(s.T(), result.TokenPair)
		assert.NotEmpty(s.T(), result.TokenPair.AccessToken)
		assert.NotEmpty(s.T(), result.TokenPair.RefreshToken)
		assert.Equal(s.T(), 1, s.uow.tx.users.lastLoginCalls)

		claims, err := s.jwtService.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(s.T(), err)
		assert.Equal(s.T(), view.ID, claims.UserID)
		assert.Equal(s.T(), jwt.TokenTypeAccess, claims.TokenType)
	})

	s.Run("unknown email maps to invalid credentials", func() {
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(nil, "", infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)).Times(1)

		result, err := s.cmds.Login(context.Background(), req)
		require.ErrorIs(s.T(), err, commands.ErrInvalidCredentials)
		assert.Nil(s.T(), result)
	})

	s.Run("wrong password maps to invalid credentials", func() {
		view := builder.NewUserBuilder().BuildReadModel()
		otherHash, err := password.HashPassword("different-password")
		require.NoError(s.T(), err)

		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(view, otherHash, nil).Times(1)

		result, err := s.cmds.Login(context.Background(), req)
		require.ErrorIs(s.T(), err, commands.ErrInvalidCredentials)
		assert.Nil(s.T(), result)
	})

	s.Run("inactive user", func() {
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		s.mockReadStore.EXPECT().FindByEmail(gomock.Any(), req.Email).
			Return(view, s.passwordHash, nil).Times(1)

		result, err := s.cmds.Login(context.Background(), req)
		require.ErrorIs(s.T(), err, commands.ErrUserInactive)
		assert.Nil(s.T(), result)
	})

	s.Run("malformed email fails validation", func() {
		badReq := req
		badReq.Email = "not-an-email"

		result, err := s.cmds.Login(context.Background(), badReq)
		require.ErrorIs(s.T(), err, commands.ErrAuthenticationFailed)
		assert.Nil(s.T(), result)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	view := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: issues a fresh token pair", func() {
		refreshToken, err := s.jwtService.GenerateRefreshToken(view.ID, view.Role)
		require.NoError(s.T(), err)

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		pair, err := s.cmds.RefreshToken(context.Background(), refreshToken)
		require.NoError(s.T(), err)
		require.NotNil(s.T(), pair)
		assert.NotEmpty(s.T(), pair.AccessToken)
		assert.NotEmpty(s.T(), pair.RefreshToken)
	})

	s.Run("access token is not accepted as refresh token", func() {
		accessToken, err := s.jwtService.GenerateAccessToken(view.ID, view.Role)
		require.NoError(s.T(), err)

		pair, err := s.cmds.RefreshToken(context.Background(), accessToken)
		require.ErrorIs(s.T(), err, commands.ErrTokenValidation)
		assert.Nil(s.T(), pair)
	})

	s.Run("garbage token", func() {
		pair, err := s.cmds.RefreshToken(context.Background(), "garbage")
		require.ErrorIs(s.T(), err, commands.ErrTokenValidation)
		assert.Nil(s.T(), pair)
	})

	s.Run("deactivated user cannot refresh", func() {
		inactive := builder.NewUserBuilder().AsInactive().BuildReadModel()
		refreshToken, err := s.jwtService.GenerateRefreshToken(inactive.ID, inactive.Role)
		require.NoError(s.T(), err)

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), inactive.ID).
			Return(inactive, nil).Times(1)

		pair, err := s.cmds.RefreshToken(context.Background(), refreshToken)
		require.ErrorIs(s.T(), err, commands.ErrUserInactive)
		assert.Nil(s.T(), pair)
	})
}
