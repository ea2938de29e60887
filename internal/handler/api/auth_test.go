//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"beautify-api/internal/handler/api"
	resdto "beautify-api/internal/handler/dto/response"
	"beautify-api/internal/usecase"
	"beautify-api/tests/common/httptest"
	"beautify-api/tests/common/testutil"
	usecasemock "beautify-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase, 168*time.Hour)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := map[string]string{"email": "owner@example.com", "password": "correct-horse"}

	s.Run("success: returns 200 OK and sets the cookie", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), "owner@example.com", "correct-horse").
			Return(&usecase.LoginResult{
				AccessToken: "signed.jwt.token",
				Email:       "owner@example.com",
				Role:        usecase.RoleAdmin,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed.jwt.token", response.AccessToken)
		s.Equal(usecase.RoleAdmin, response.Role)

		cookies := rec.Result().Cookies()
		s.Require().NotEmpty(cookies)
		s.Equal("access_token", cookies[0].Name)
		s.Equal("signed.jwt.token", cookies[0].Value)
		s.True(cookies[0].HttpOnly)
	})

	s.Run("error: 401 on wrong credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), "owner@example.com", "correct-horse").
			Return(nil, usecase.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorMessage(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorMessage(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

		s.Equal(http.StatusNoContent, rec.Code)

		cookies := rec.Result().Cookies()
		s.Require().NotEmpty(cookies)
		s.Equal("access_token", cookies[0].Name)
		s.Less(cookies[0].MaxAge, 0)
	})
}
