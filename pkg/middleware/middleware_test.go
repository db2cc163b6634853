package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
	"github.com/vfg2006/visibility-audit-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/visibility-audit-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validator := mocks.NewMockAuthenticator(ctrl)

	tests := []struct {
		name           string
		method         string
		path           string
		authorization  string
		setup          func()
		expectedStatus int
	}{
		{
			name:           "Rota pública não exige token",
			method:         http.MethodPost,
			path:           "/v1/login",
			setup:          func() {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Preflight passa direto",
			method:         http.MethodOptions,
			path:           "/v1/partners",
			setup:          func() {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Sem header Authorization",
			method:         http.MethodGet,
			path:           "/v1/partners",
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header sem Bearer",
			method:         http.MethodGet,
			path:           "/v1/partners",
			authorization:  "Token abc",
			setup:          func() {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token inválido",
			method:        http.MethodGet,
			path:          "/v1/partners",
			authorization: "Bearer abc",
			setup: func() {
				validator.EXPECT().ValidateToken("abc").Return(nil, errors.New("assinatura inválida"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token válido",
			method:        http.MethodGet,
			path:          "/v1/partners",
			authorization: "Bearer good",
			setup: func() {
				validator.EXPECT().ValidateToken("good").Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(validator)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_StoresClaimsInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validator := mocks.NewMockAuthenticator(ctrl)
	validator.EXPECT().ValidateToken("good").Return(&domain.Claims{UserID: 9, UserRoleID: domain.RoleClient}, nil)

	var got *domain.Claims
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	AuthMiddleware(validator)(next).ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, 9, got.UserID)
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{"Admin acessa rota de admin", &domain.Claims{UserRoleID: domain.RoleAdmin}, AdminOnly(), http.StatusNoContent},
		{"Parceiro barrado em rota de admin", &domain.Claims{UserRoleID: domain.RolePartner}, AdminOnly(), http.StatusForbidden},
		{"Parceiro acessa rota de parceiro", &domain.Claims{UserRoleID: domain.RolePartner}, AdminOrPartner(), http.StatusNoContent},
		{"Cliente barrado em rota de parceiro", &domain.Claims{UserRoleID: domain.RoleClient}, AdminOrPartner(), http.StatusForbidden},
		{"Cliente acessa rota comum", &domain.Claims{UserRoleID: domain.RoleClient}, AllRoles(), http.StatusNoContent},
		{"Sem claims", nil, AllRoles(), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/anything", nil)
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		expectedOrigin string
		expectedCreds  string
	}{
		{
			name:           "preflight de origem liberada",
			origins:        []string{"http://localhost:5173/"},
			method:         http.MethodOptions,
			origin:         "http://localhost:5173",
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://localhost:5173",
			expectedCreds:  "true",
		},
		{
			name:           "origem desconhecida segue sem cabeçalhos",
			origins:        []string{"http://localhost:5173"},
			method:         http.MethodGet,
			origin:         "http://evil.example.com",
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "curinga libera sem credenciais",
			origins:        []string{"*"},
			method:         http.MethodGet,
			origin:         "http://qualquer.example.com",
			expectedStatus: http.StatusNoContent,
			expectedOrigin: "*",
		},
		{
			name:           "requisição sem origem",
			origins:        []string{"*"},
			method:         http.MethodGet,
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/partners", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			Cors(tt.origins)(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectedCreds, rec.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, correlationID)
}
