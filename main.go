package main

import (
	"log"
	"net/http"

	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/config"
	authcontroller "github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/controllers/auth"
	bukucontroller "github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/controllers/buku"
	laporancontroller "github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/controllers/laporan"
	presensicontroller "github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/controllers/presensi"
	profilecontroller "github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/controllers/profile"
	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/middlewares"
	"github.com/C-PPAW-TI503P-2025/PRKPAW-20230140107/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	if len(cfg.JWTKey) == 0 {
		log.Fatal("JWT_KEY must be set")
	}

	db := models.ConnectDatabase(cfg.DatabaseURL)

	router := setupRouter(db, cfg)

	log.Printf("Server is running on port %s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func setupRouter(db *gorm.DB, cfg config.Config) *gin.Engine {
	router := gin.Default()
	router.MaxMultipartMemory = 8 << 20

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authH := authcontroller.NewAuthHandler(db, cfg.JWTKey)
	presensiH := presensicontroller.NewPresensiHandler(db, cfg.UploadDir, cfg.OfficeLat, cfg.OfficeLng)
	laporanH := laporancontroller.NewLaporanHandler(db)
	profileH := profilecontroller.NewProfileHandler(db)
	bukuH := bukucontroller.NewBukuHandler(models.NewBukuStore())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Home Page for API")
	})
	router.Static("/uploads", cfg.UploadDir)

	router.POST("/api/auth/register", authH.Register)
	router.POST("/api/auth/login", authH.Login)

	buku := router.Group("/api/books")
	{
		buku.GET("", bukuH.GetAllBuku)
		buku.GET("/:id", bukuH.GetBukuById)
		buku.POST("", bukuH.CreateBuku)
		buku.PUT("/:id", bukuH.UpdateBuku)
		buku.DELETE("/:id", bukuH.DeleteBuku)
	}

	api := router.Group("/api")
	api.Use(middlewares.AuthMiddleware(cfg.JWTKey))
	{
		api.POST("/presensi/check-in", presensiH.CheckIn)
		api.POST("/presensi/check-out", presensiH.CheckOut)
		api.GET("/presensi/prediksi", presensiH.PrediksiCheckout)
		api.PUT("/presensi/:id", presensiH.UpdatePresensi)
		api.DELETE("/presensi/:id", presensiH.DeletePresensi)

		api.GET("/reports/daily", laporanH.GetDailyReport)
		api.GET("/reports/open-sessions", middlewares.RequireAdmin(), laporanH.GetOpenSessions)

		api.GET("/profile", profileH.GetUserProfile)
	}

	// Verb lain pada path terdaftar dijawab 405, bukan 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
	})

	return router
}
