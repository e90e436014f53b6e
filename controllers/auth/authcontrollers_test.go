package authcontroller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/config"
	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testKey = []byte("rahasia-test")

func routerAuth(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Presensi{}))

	h := NewAuthHandler(db, testKey)
	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r, db
}

func kirimJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterDanLogin(t *testing.T) {
	r, db := routerAuth(t)

	w := kirimJSON(r, "/api/auth/register",
		`{"nama":"Ali","email":"Ali@Example.com","password":"rahasia1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "ali@example.com").First(&user).Error)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "rahasia1", user.Password)

	w = kirimJSON(r, "/api/auth/login", `{"email":"ali@example.com","password":"rahasia1"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	tokenString, ok := resp["token"].(string)
	require.True(t, ok)

	claims := &config.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return testKey, nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, user.Id, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestRegisterEmailGanda(t *testing.T) {
	r, _ := routerAuth(t)

	body := `{"nama":"Ali","email":"ali@example.com","password":"rahasia1"}`
	require.Equal(t, http.StatusCreated, kirimJSON(r, "/api/auth/register", body).Code)

	w := kirimJSON(r, "/api/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "sudah terdaftar")
}

func TestRegisterRoleSembarangJadiUser(t *testing.T) {
	r, db := routerAuth(t)

	w := kirimJSON(r, "/api/auth/register",
		`{"nama":"Ali","email":"ali@example.com","password":"rahasia1","role":"superuser"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "ali@example.com").First(&user).Error)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestLoginPasswordSalah(t *testing.T) {
	r, _ := routerAuth(t)

	require.Equal(t, http.StatusCreated, kirimJSON(r, "/api/auth/register",
		`{"nama":"Ali","email":"ali@example.com","password":"rahasia1"}`).Code)

	w := kirimJSON(r, "/api/auth/login", `{"email":"ali@example.com","password":"salah"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginEmailTidakTerdaftar(t *testing.T) {
	r, _ := routerAuth(t)
	w := kirimJSON(r, "/api/auth/login", `{"email":"ghost@example.com","password":"apa saja"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
