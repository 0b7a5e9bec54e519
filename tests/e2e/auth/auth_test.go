//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"clinic-scheduler/internal/domain/user"
	"clinic-scheduler/internal/handler/dto/request"
	"clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/tests/common/authtest"
	"clinic-scheduler/tests/common/dbtest"
	"clinic-scheduler/tests/common/httptest"
	"clinic-scheduler/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.T(), s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
	dbtest.CreateTestUser(s.T(), s.DB, "doctor@example.com", string(user.RoleDoctor))
	dbtest.CreateTestUser(s.T(), s.DB, "patient@example.com", string(user.RolePatient))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RolePatient))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "admin@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "admin@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "admin@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken)
				require.Equal(t, "Bearer", loginRes.TokenType)
				require.Greater(t, loginRes.ExpiresIn, int64(0))
				require.NotNil(t, httptest.ExtractCookie(w, "access_token"))

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login not updated")
			}
		})
	}
}

func (s *authSuite) TestRegister() {
	s.Run("creates a patient account with its profile", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Email:    "new@example.com",
			Password: "password123",
			Name:     "New Patient",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotNil(t, res.User)
		require.Equal(t, string(user.RolePatient), res.User.Role)

		var name string
		err := s.DB.QueryRow(t.Context(), "SELECT p.name FROM patients p JOIN users u ON u.id = p.user_id WHERE u.email = $1", "new@example.com").Scan(&name)
		require.NoError(t, err)
		require.Equal(t, "New Patient", name)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, res.AccessToken)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("rejects a taken email", func() {
		t := s.T()

		reqBody := request.RegisterRequest{
			Email:    "patient@example.com",
			Password: "password123",
			Name:     "Someone",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
	}{
		{
			name: "valid token",
			setupToken: func() string {
				return authtest.LoginUser(s.T(), s.Router, "admin@example.com", "password123")
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "invalid token",
			setupToken:     func() string { return "invalid-token" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no token",
			setupToken:     func() string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			token := tt.setupToken()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
	}{
		{
			name: "admin",
			setupUser: func() (string, string, string) {
				email := "admin2@example.com"
				role := string(user.RoleAdmin)
				return email, role, authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "patient",
			setupUser: func() (string, string, string) {
				email := "patient2@example.com"
				role := string(user.RolePatient)
				return email, role, authtest.CreateAndLogin(s.T(), s.DB, s.Router, email, role)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid token",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "no token",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				body := w.Body.String()
				require.Contains(t, body, email)
				require.Contains(t, body, role)
				require.NotContains(t, body, "password")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", string(user.RoleAdmin))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRoleGuards() {
	s.Run("patients cannot reach admin endpoints", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "patient@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("admins reach admin endpoints", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/users", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}
