package middlewares

import (
	"net/http"
	"strings"

	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/config"
	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const CurrentUserKey = "currentUser"

// AuthUser adalah identitas hasil verifikasi token yang dibawa di context
// request, menggantikan pembacaan klaim mentah di tiap controller.
type AuthUser struct {
	ID   int64
	Nama string
	Role string
}

// CurrentUser mengambil identitas yang dipasang AuthMiddleware.
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	v, exists := c.Get(CurrentUserKey)
	if !exists {
		return AuthUser{}, false
	}
	user, ok := v.(AuthUser)
	return user, ok
}

func AuthMiddleware(jwtKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Silahkan Login Terlebih Dahulu!"})
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Silahkan Login Terlebih Dahulu!"})
			return
		}

		claims := &config.JWTClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.NewValidationError("Metode Signing Tidak Valid", jwt.ValidationErrorSignatureInvalid)
			}
			return jwtKey, nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token Tidak Valid atau Sudah Kedaluwarsa!"})
			return
		}

		c.Set(CurrentUserKey, AuthUser{
			ID:   claims.UserID,
			Nama: claims.Nama,
			Role: claims.Role,
		})
		c.Next()
	}
}

// RequireAdmin dipasang setelah AuthMiddleware untuk rute khusus admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Akses ditolak: khusus admin."})
			return
		}
		c.Next()
	}
}
