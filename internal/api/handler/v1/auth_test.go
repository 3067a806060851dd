package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly-api/internal/api/handler/v1/response"
	"github.com/gatherly/gatherly-api/internal/config"
	"github.com/gatherly/gatherly-api/internal/domain"
	"github.com/gatherly/gatherly-api/internal/pkg/jwthelper"
	"github.com/gatherly/gatherly-api/internal/service"
)

type fakeAuthService struct {
	signupFunc func(ctx context.Context, user domain.User) (domain.User, error)
	loginFunc  func(ctx context.Context, email, password string) (domain.User, error)
}

func (f *fakeAuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	if f.signupFunc != nil {
		return f.signupFunc(ctx, user)
	}
	user.ID = 1
	return user, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	if f.loginFunc != nil {
		return f.loginFunc(ctx, email, password)
	}
	return domain.User{ID: 1, Email: email}, nil
}

func newAuthTestRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	conf := &config.APIConfig{
		JWTSigningKey:    "test-signing-key",
		JWTExpiryMinutes: 30,
	}
	handler := NewAuthHandler(conf, svc, &fakeUserService{})
	router.POST("/auth/register", handler.HandleRegister)
	router.POST("/auth/login", handler.HandleLogin)

	return router
}

func TestHandleRegister_Succeeds(t *testing.T) {
	router := newAuthTestRouter(&fakeAuthService{})

	body := `{"username":"ada","email":"ada@example.com","password":"passw0rd1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandleRegister_WeakPassword(t *testing.T) {
	router := newAuthTestRouter(&fakeAuthService{})

	body := `{"username":"ada","email":"ada@example.com","password":"short"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	svc := &fakeAuthService{
		signupFunc: func(_ context.Context, _ domain.User) (domain.User, error) {
			return domain.User{}, service.ErrUserEmailExists
		},
	}
	router := newAuthTestRouter(svc)

	body := `{"username":"ada","email":"taken@example.com","password":"passw0rd1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleLogin_ReturnsParsableToken(t *testing.T) {
	svc := &fakeAuthService{
		loginFunc: func(_ context.Context, email, _ string) (domain.User, error) {
			return domain.User{ID: 42, Email: email}, nil
		},
	}
	router := newAuthTestRouter(svc)

	body := `{"email":"ada@example.com","password":"passw0rd1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp response.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	userID, err := jwthelper.ParseToken([]byte("test-signing-key"), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestHandleLogin_WrongCredentials(t *testing.T) {
	svc := &fakeAuthService{
		loginFunc: func(_ context.Context, _, _ string) (domain.User, error) {
			return domain.User{}, service.ErrWrongPassword
		},
	}
	router := newAuthTestRouter(svc)

	body := `{"email":"ada@example.com","password":"wrong-pass1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
