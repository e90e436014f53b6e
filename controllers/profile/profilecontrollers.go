package profilecontroller

import (
	"errors"
	"net/http"

	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/middlewares"
	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	DB *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{DB: db}
}

func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	currentUser, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Sesi pengguna tidak valid"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, currentUser.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Pengguna Tidak Ditemukan!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": gin.H{
			"id":    user.Id,
			"nama":  user.Nama,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
