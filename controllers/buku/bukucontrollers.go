package bukucontroller

import (
	"net/http"
	"strconv"

	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/models"

	"github.com/gin-gonic/gin"
)

// Contoh CRUD sederhana di atas penyimpanan sementara yang disuntikkan.
type BukuHandler struct {
	Store *models.BukuStore
}

func NewBukuHandler(store *models.BukuStore) *BukuHandler {
	return &BukuHandler{Store: store}
}

type BukuRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (h *BukuHandler) GetAllBuku(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.All())
}

func (h *BukuHandler) GetBukuById(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}
	buku, found := h.Store.Find(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}
	c.JSON(http.StatusOK, buku)
}

func (h *BukuHandler) CreateBuku(c *gin.Context) {
	var req BukuRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and author are required"})
		return
	}
	c.JSON(http.StatusCreated, h.Store.Create(req.Title, req.Author))
}

func (h *BukuHandler) UpdateBuku(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}
	if _, found := h.Store.Find(id); !found {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}
	var req BukuRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Author == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and author are required"})
		return
	}
	buku, _ := h.Store.Update(id, req.Title, req.Author)
	c.JSON(http.StatusOK, buku)
}

func (h *BukuHandler) DeleteBuku(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}
	if !h.Store.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
