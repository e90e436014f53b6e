package helper

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var ErrBukanGambar = errors.New("hanya file gambar yang diperbolehkan")

// SimpanBuktiFoto menyimpan foto bukti check-in ke uploadDir dengan nama
// <userId>-<timestamp><ext> dan mengembalikan path relatifnya
// ("uploads/<nama file>"). Hanya file gambar yang diterima.
func SimpanBuktiFoto(c *gin.Context, file *multipart.FileHeader, uploadDir string, userId int64) (string, error) {
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrBukanGambar
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d-%d%s", userId, time.Now().UnixMilli(), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", err
	}

	// Path relatif yang disimpan di database selalu berprefiks "uploads/",
	// apa pun direktori fisiknya.
	return "uploads/" + filename, nil
}
