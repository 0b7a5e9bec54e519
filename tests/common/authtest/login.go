//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"clinic-scheduler/internal/handler/dto/request"
	"clinic-scheduler/tests/common/dbtest"
	"clinic-scheduler/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Extract access token from cookie
	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, "password123")
}

// CreateDoctorAndLogin creates a DOCTOR account owning a doctor profile and
// returns the profile id with an access token.
func CreateDoctorAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) (int64, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, "DOCTOR")
	doctorID := dbtest.CreateTestDoctor(t, db, "Dr. "+email, userID)
	return doctorID, LoginUser(t, router, email, "password123")
}

// CreatePatientAndLogin creates a PATIENT account with its patient profile.
func CreatePatientAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) (int64, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email, "PATIENT")
	patientID := dbtest.CreateTestPatient(t, db, "Patient "+email, email, userID)
	return patientID, LoginUser(t, router, email, "password123")
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
