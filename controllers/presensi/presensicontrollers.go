package presensicontroller

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/helper"
	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/middlewares"
	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PresensiHandler struct {
	DB        *gorm.DB
	UploadDir string
	OfficeLat float64
	OfficeLng float64
}

func NewPresensiHandler(db *gorm.DB, uploadDir string, officeLat, officeLng float64) *PresensiHandler {
	return &PresensiHandler{DB: db, UploadDir: uploadDir, OfficeLat: officeLat, OfficeLng: officeLng}
}

var (
	errSudahCheckIn    = errors.New("sudah check-in")
	errKoordinatKosong = errors.New("koordinat kosong")
)

func (h *PresensiHandler) namaUser(userId int64) string {
	var user models.User
	if err := h.DB.First(&user, userId).Error; err != nil {
		return "Pengguna"
	}
	return user.Nama
}

func formatPresensi(record models.Presensi, nama string) gin.H {
	var checkOut interface{}
	if record.CheckOut != nil {
		checkOut = helper.FormatWaktu(*record.CheckOut)
	}
	return gin.H{
		"id":        record.Id,
		"userId":    record.UserId,
		"nama":      nama,
		"checkIn":   helper.FormatWaktu(record.CheckIn),
		"checkOut":  checkOut,
		"latitude":  record.Latitude,
		"longitude": record.Longitude,
		"buktiFoto": helper.FotoURL(record.BuktiFoto),
	}
}

func (h *PresensiHandler) CheckIn(c *gin.Context) {
	currentUser, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Sesi pengguna tidak valid"})
		return
	}

	waktuSekarang := time.Now()
	latStr := c.PostForm("latitude")
	lngStr := c.PostForm("longitude")

	// Foto disimpan lebih dulu, meniru upload yang berjalan sebelum
	// handler pada sumber aslinya. Gagalnya pembuatan record tidak
	// membersihkan file (lihat DESIGN.md).
	var buktiFoto *string
	if file, err := c.FormFile("image"); err == nil {
		path, err := helper.SimpanBuktiFoto(c, file, h.UploadDir, currentUser.ID)
		if err != nil {
			if errors.Is(err, helper.ErrBukanGambar) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Hanya file gambar yang diperbolehkan!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan file", "error": err.Error()})
			return
		}
		buktiFoto = &path
	}

	var newRecord models.Presensi
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Presensi
		err := tx.Where("user_id = ? AND check_out IS NULL", currentUser.ID).First(&existing).Error
		if err == nil {
			return errSudahCheckIn
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if latStr == "" || lngStr == "" {
			return errKoordinatKosong
		}
		latitude, errLat := strconv.ParseFloat(latStr, 64)
		longitude, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			return errKoordinatKosong
		}

		newRecord = models.Presensi{
			UserId:    currentUser.ID,
			CheckIn:   waktuSekarang,
			Latitude:  latitude,
			Longitude: longitude,
			BuktiFoto: buktiFoto,
		}
		return tx.Create(&newRecord).Error
	})

	switch {
	case errors.Is(err, errSudahCheckIn):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Anda sudah melakukan check-in hari ini."})
		return
	case errors.Is(err, errKoordinatKosong):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Latitude dan longitude harus disediakan dalam request body"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	nama := h.namaUser(currentUser.ID)
	data := formatPresensi(newRecord, nama)
	data["jarakDariKantorM"] = math.Round(helper.Geolocation(
		h.OfficeLat, h.OfficeLng, newRecord.Latitude, newRecord.Longitude))

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Halo %s, check-in Anda berhasil pada pukul %s WIB",
			nama, helper.FormatJam(waktuSekarang)),
		"data": data,
	})
}

func (h *PresensiHandler) CheckOut(c *gin.Context) {
	currentUser, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Sesi pengguna tidak valid"})
		return
	}

	waktuSekarang := time.Now()

	var recordToUpdate models.Presensi
	err := h.DB.Where("user_id = ? AND check_out IS NULL", currentUser.ID).First(&recordToUpdate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tidak ditemukan catatan check-in yang aktif untuk Anda."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	recordToUpdate.CheckOut = &waktuSekarang
	if err := h.DB.Save(&recordToUpdate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	nama := h.namaUser(recordToUpdate.UserId)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Selamat jalan %s, check-out Anda berhasil pada pukul %s WIB",
			nama, helper.FormatJam(waktuSekarang)),
		"data": formatPresensi(recordToUpdate, nama),
	})
}

type UpdatePresensiRequest struct {
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
}

func (h *PresensiHandler) UpdatePresensi(c *gin.Context) {
	var req UpdatePresensiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validasi gagal", "error": err.Error()})
		return
	}

	var checkIn, checkOut *time.Time
	if req.CheckIn != nil {
		t, ok := helper.ParseISO8601(*req.CheckIn)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validasi gagal", "errors": []string{"Format tanggal checkIn tidak valid"}})
			return
		}
		checkIn = &t
	}
	if req.CheckOut != nil {
		t, ok := helper.ParseISO8601(*req.CheckOut)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validasi gagal", "errors": []string{"Format tanggal checkOut tidak valid"}})
			return
		}
		checkOut = &t
	}

	if checkIn == nil && checkOut == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Request body tidak berisi data yang valid untuk diupdate (checkIn atau checkOut).",
		})
		return
	}

	presensiId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Catatan presensi tidak ditemukan."})
		return
	}

	var recordToUpdate models.Presensi
	if err := h.DB.First(&recordToUpdate, presensiId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Catatan presensi tidak ditemukan."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	if checkIn != nil {
		recordToUpdate.CheckIn = *checkIn
	}
	if checkOut != nil {
		recordToUpdate.CheckOut = checkOut
	}
	if err := h.DB.Save(&recordToUpdate).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Data presensi berhasil diperbarui.",
		"data":    recordToUpdate,
	})
}

func (h *PresensiHandler) DeletePresensi(c *gin.Context) {
	currentUser, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Sesi pengguna tidak valid"})
		return
	}

	presensiId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Catatan presensi tidak ditemukan."})
		return
	}

	var recordToDelete models.Presensi
	if err := h.DB.First(&recordToDelete, presensiId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Catatan presensi tidak ditemukan."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	if recordToDelete.UserId != currentUser.ID && currentUser.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Akses ditolak: Anda bukan pemilik catatan ini."})
		return
	}

	if err := h.DB.Delete(&recordToDelete).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// PrediksiCheckout memperkirakan jam check-out hari ini dari riwayat
// sesi tertutup milik pengguna.
func (h *PresensiHandler) PrediksiCheckout(c *gin.Context) {
	currentUser, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Sesi pengguna tidak valid"})
		return
	}

	var openRecord models.Presensi
	if err := h.DB.Where("user_id = ? AND check_out IS NULL", currentUser.ID).First(&openRecord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Tidak ditemukan catatan check-in yang aktif untuk Anda."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}

	var riwayat []models.Presensi
	err := h.DB.Where("user_id = ? AND check_out IS NOT NULL", currentUser.ID).
		Order("id desc").Limit(10).Find(&riwayat).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Terjadi kesalahan pada server", "error": err.Error()})
		return
	}
	if len(riwayat) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Belum ada riwayat presensi untuk membuat prediksi."})
		return
	}

	history := make([]helper.SesiTertutup, 0, len(riwayat))
	for _, sesi := range riwayat {
		history = append(history, helper.SesiTertutup{CheckIn: sesi.CheckIn, CheckOut: *sesi.CheckOut})
	}

	prediksi, err := helper.PredictCheckoutTime(history, openRecord.CheckIn)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat prediksi", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"checkIn":          helper.FormatWaktu(openRecord.CheckIn),
		"prediksiCheckOut": prediksi,
		"basisSesi":        len(riwayat),
	})
}
