package models

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDatabase membuka koneksi MySQL dan menjalankan migrasi skema.
// Handle dikembalikan ke pemanggil, bukan disimpan sebagai variabel global,
// supaya controller menerima DB lewat injeksi.
func ConnectDatabase(dbURL string) *gorm.DB {
	if dbURL == "" {
		log.Fatal("Link Database Tidak Ada!")
	}

	db, err := gorm.Open(mysql.Open(dbURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Gagal Terhubung ke Database: %v", err)
	}

	if err := db.AutoMigrate(&User{}, &Presensi{}); err != nil {
		log.Fatalf("Gagal Migrasi Database: %v", err)
	}

	log.Println("Koneksi Database Berhasil.")
	return db
}
