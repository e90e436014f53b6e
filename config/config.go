package config

import (
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
)

// Config menampung seluruh konfigurasi server yang dibaca dari environment.
type Config struct {
	Port        string
	DatabaseURL string
	JWTKey      []byte
	UploadDir   string
	// Koordinat kantor, dipakai untuk menghitung jarak saat check-in.
	OfficeLat float64
	OfficeLng float64
}

// JWTClaims adalah isi token yang diterbitkan saat login.
type JWTClaims struct {
	UserID int64  `json:"id"`
	Nama   string `json:"nama"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func Load() Config {
	// .env opsional; di produksi semua nilai datang dari environment.
	_ = godotenv.Load()

	return Config{
		Port:        getEnv("PORT", "5101"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTKey:      []byte(os.Getenv("JWT_KEY")),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		OfficeLat:   getEnvFloat("OFFICE_LAT", -6.2),
		OfficeLng:   getEnvFloat("OFFICE_LNG", 106.816666),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}
