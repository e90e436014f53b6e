package models

import "time"

// Presensi adalah satu sesi kehadiran. Sesi terbuka ditandai CheckOut == nil;
// per user hanya boleh ada satu sesi terbuka pada satu waktu.
type Presensi struct {
	Id        int64      `gorm:"primaryKey" json:"id"`
	UserId    int64      `gorm:"index;not null" json:"userId"`
	CheckIn   time.Time  `gorm:"not null" json:"checkIn"`
	CheckOut  *time.Time `json:"checkOut"`
	Latitude  float64    `gorm:"type:decimal(10,7)" json:"latitude"`
	Longitude float64    `gorm:"type:decimal(10,7)" json:"longitude"`
	BuktiFoto *string    `gorm:"type:varchar(255)" json:"buktiFoto"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	User User `gorm:"foreignKey:UserId" json:"user,omitempty"`
}

func (Presensi) TableName() string {
	return "presensi"
}
