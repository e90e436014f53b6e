package laporancontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type LaporanHandler struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewLaporanHandler(db *gorm.DB) *LaporanHandler {
	return &LaporanHandler{DB: db, validate: validator.New()}
}

// GetDailyReport mengembalikan daftar presensi beserta identitas user.
// Filter nama memakai LIKE pada nama user; filter tanggal hanya aktif
// bila tanggalMulai DAN tanggalSelesai sama-sama dikirim.
func (h *LaporanHandler) GetDailyReport(c *gin.Context) {
	nama := c.Query("nama")
	tanggalMulai := c.Query("tanggalMulai")
	tanggalSelesai := c.Query("tanggalSelesai")

	query := h.DB.Model(&models.Presensi{}).Preload("User")

	if nama != "" {
		query = query.
			Joins("JOIN users ON users.id = presensi.user_id").
			Where("users.nama LIKE ?", "%"+nama+"%")
	}

	if tanggalMulai != "" && tanggalSelesai != "" {
		if h.validate.Var(tanggalMulai, "datetime=2006-01-02") != nil ||
			h.validate.Var(tanggalSelesai, "datetime=2006-01-02") != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Format tanggal tidak valid. Gunakan format YYYY-MM-DD"})
			return
		}

		mulai, _ := time.ParseInLocation("2006-01-02", tanggalMulai, time.Local)
		selesai, _ := time.ParseInLocation("2006-01-02", tanggalSelesai, time.Local)

		awalHari := mulai
		akhirHari := selesai.AddDate(0, 0, 1).Add(-time.Nanosecond)
		query = query.Where("presensi.check_in BETWEEN ? AND ?", awalHari, akhirHari)
	}

	var records []models.Presensi
	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil laporan", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reportDate": time.Now().Format("1/2/2006"),
		"data":       records,
	})
}

// GetOpenSessions menampilkan sesi yang masih terbuka lebih lama dari
// batas jam tertentu, untuk supervisor mengejar check-out yang terlewat.
func (h *LaporanHandler) GetOpenSessions(c *gin.Context) {
	batasJam, err := strconv.Atoi(c.DefaultQuery("batasJam", "12"))
	if err != nil || batasJam < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Parameter batasJam tidak valid."})
		return
	}

	batasWaktu := time.Now().Add(-time.Duration(batasJam) * time.Hour)

	var records []models.Presensi
	err = h.DB.Model(&models.Presensi{}).Preload("User").
		Where("check_out IS NULL AND check_in < ?", batasWaktu).
		Order("check_in asc").
		Find(&records).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil laporan", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"batasJam": batasJam,
		"data":     records,
	})
}
