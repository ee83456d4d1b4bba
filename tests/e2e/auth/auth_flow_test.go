//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "event-booking-api/internal/handler/dto/request"
	resdto "event-booking-api/internal/handler/dto/response"
	"event-booking-api/internal/pkg/cookie"
	"event-booking-api/tests/common/dbtest"
	"event-booking-api/tests/common/httptest"
	"event-booking-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	logoutURL  = "/api/auth/logout"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	// テスト用ユーザーを作成
	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", "participant")
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", "admin")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "participant")

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name         string
		email        string
		password     string
		expectedCode int
	}{
		{name: "有効な参加者ログイン", email: "test@example.com", password: "password123", expectedCode: http.StatusOK},
		{name: "有効な管理者ログイン", email: "admin@example.com", password: "password123", expectedCode: http.StatusOK},
		{name: "パスワード不一致", email: "test@example.com", password: "wrong-password", expectedCode: http.StatusUnauthorized},
		{name: "未登録メール", email: "nobody@example.com", password: "password123", expectedCode: http.StatusUnauthorized},
		{name: "無効化済みアカウント", email: "inactive@example.com", password: "password123", expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			body := reqdto.LoginRequest{Email: tt.email, Password: tt.password}
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
			s.Equal(tt.expectedCode, rec.Code, rec.Body.String())

			if tt.expectedCode != http.StatusOK {
				return
			}

			var resp resdto.LoginResponse
			s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
			s.NotEmpty(resp.AccessToken)
			s.NotEmpty(resp.RefreshToken)
			s.Equal(tt.email, resp.User.Email)

			accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenName)
			s.Require().NotNil(accessCookie)
			s.Equal(resp.AccessToken, accessCookie.Value)
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("アクセストークンで自分の情報を取得できる", func() {
		token := s.loginAs("test@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var me map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &me)
		s.Equal("test@example.com", me["email"])
		s.Equal("participant", me["role"])
	})

	s.Run("トークン無しは401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("不正トークンは401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "garbage-token")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *authSuite) TestRefresh() {
	s.Run("リフレッシュトークンで新しいトークンペアを取得できる", func() {
		body := reqdto.LoginRequest{Email: "test@example.com", Password: "password123"}
		loginRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
		s.Require().Equal(http.StatusOK, loginRec.Code)

		cookies := httptest.ExtractCookies(loginRec)
		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, refreshURL, nil, cookies, "")

		var resp resdto.RefreshResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.NotEmpty(resp.AccessToken)
		s.NotEmpty(resp.RefreshToken)
	})

	s.Run("トークン無しのリフレッシュは401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("アクセストークンをリフレッシュに流用できない", func() {
		token := s.loginAs("test@example.com")

		bodyMap := map[string]string{"refresh_token": token}
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, bodyMap, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでクッキーが無効化される", func() {
		token := s.loginAs("test@example.com")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenName)
		s.Require().NotNil(accessCookie)
		s.Empty(accessCookie.Value)
		s.Negative(accessCookie.MaxAge)
	})
}

func (s *authSuite) loginAs(email string) string {
	body := reqdto.LoginRequest{Email: email, Password: "password123"}
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp resdto.LoginResponse
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
	return resp.AccessToken
}
