package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/config"
	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

var testKey = []byte("rahasia-test")

func buatToken(t *testing.T, userId int64, role string, exp time.Time) string {
	t.Helper()
	claims := &config.JWTClaims{
		UserID: userId,
		Nama:   "Budi",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testKey)
	assert.NoError(t, err)
	return token
}

func routerDenganAuth() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/aman", AuthMiddleware(testKey), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID, "role": user.Role})
	})
	r.GET("/admin", AuthMiddleware(testKey), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func TestAuthMiddlewareTanpaHeader(t *testing.T) {
	r := routerDenganAuth()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/aman", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareHeaderBukanBearer(t *testing.T) {
	r := routerDenganAuth()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/aman", nil)
	req.Header.Set("Authorization", "Basic abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareTokenKadaluarsa(t *testing.T) {
	r := routerDenganAuth()
	token := buatToken(t, 1, models.RoleUser, time.Now().Add(-time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/aman", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareTokenValid(t *testing.T) {
	r := routerDenganAuth()
	token := buatToken(t, 7, models.RoleUser, time.Now().Add(time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/aman", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}

func TestRequireAdminMenolakUserBiasa(t *testing.T) {
	r := routerDenganAuth()
	token := buatToken(t, 7, models.RoleUser, time.Now().Add(time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminMenerimaAdmin(t *testing.T) {
	r := routerDenganAuth()
	token := buatToken(t, 1, models.RoleAdmin, time.Now().Add(time.Hour))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
