//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"beautify-api/internal/handler/dto/request"
	"beautify-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// AdminPassword is the raw password the e2e config hashes for the admin
// account.
const AdminPassword = "testpass123"

func LoginAdmin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: AdminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}
