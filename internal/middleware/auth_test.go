package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
	"github.com/SscSPs/fuel_station_app/internal/middleware"
)

const (
	testSecret = "test-secret"
	testIssuer = "fsa-identity"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims middleware.IdentityClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() middleware.IdentityClaims {
	now := time.Now()
	return middleware.IdentityClaims{
		Role:       domain.RoleWorker,
		CompanyID:  "company-1",
		TerminalID: "terminal-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "worker-a",
			Issuer:    testIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(testSecret, testIssuer), func(c *gin.Context) {
		actor, ok := middleware.GetActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, actor)
	})
	return r
}

func doRequest(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS256, testSecret, validClaims())

	w := doRequest(newAuthRouter(), "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	var actor domain.Actor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &actor))
	assert.Equal(t, domain.Actor{UserID: "worker-a", Role: domain.RoleWorker, CompanyID: "company-1", TerminalID: "terminal-1"}, actor)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noCompany := validClaims()
	noCompany.CompanyID = ""

	noSubject := validClaims()
	noSubject.Subject = ""

	otherIssuer := validClaims()
	otherIssuer.Issuer = "someone-else"

	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{name: "missing header", header: "", wantMsg: "Authorization header required"},
		{name: "not bearer", header: "Basic abc", wantMsg: "Authorization header format must be Bearer {token}"},
		{name: "garbage token", header: "Bearer not.a.jwt", wantMsg: "Invalid token"},
		{name: "wrong secret", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, "other-secret", validClaims()), wantMsg: "Invalid token"},
		{name: "wrong algorithm", header: "Bearer " + signToken(t, jwt.SigningMethodHS512, testSecret, validClaims()), wantMsg: "Invalid token"},
		{name: "expired", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, expired), wantMsg: "Token has expired"},
		{name: "wrong issuer", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, otherIssuer), wantMsg: "Invalid token"},
		{name: "missing company", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, noCompany), wantMsg: "Invalid token claims"},
		{name: "missing subject", header: "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, noSubject), wantMsg: "Invalid token claims"},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}

func TestAuthMiddleware_NoIssuerCheck(t *testing.T) {
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(testSecret, ""), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	claims := validClaims()
	claims.Issuer = ""
	w := doRequest(r, "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, claims))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
