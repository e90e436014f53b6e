package authcontroller

import (
	"net/http"
	"strings"
	"time"

	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/config"
	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB     *gorm.DB
	JWTKey []byte
}

func NewAuthHandler(db *gorm.DB, jwtKey []byte) *AuthHandler {
	return &AuthHandler{DB: db, JWTKey: jwtKey}
}

type RegisterRequest struct {
	Nama     string `json:"nama" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Role != models.RoleAdmin {
		req.Role = models.RoleUser
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email sudah terdaftar."})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	user := models.User{
		Nama:     req.Nama,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registrasi berhasil.",
		"data":    gin.H{"id": user.Id, "nama": user.Nama, "email": user.Email, "role": user.Role},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		switch err {
		case gorm.ErrRecordNotFound:
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau Password Tidak Sesuai"})
			return
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
			return
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Email atau Password Tidak Sesuai"})
		return
	}

	expTime := time.Now().Add(24 * time.Hour)
	claims := &config.JWTClaims{
		UserID: user.Id,
		Nama:   user.Nama,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "presensiku",
			ExpiresAt: jwt.NewNumericDate(expTime),
		},
	}

	tokenDeklarasi := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := tokenDeklarasi.SignedString(h.JWTKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Berhasil!", "token": token})
}
