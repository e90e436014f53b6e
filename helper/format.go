package helper

import (
	"strings"
	"time"
)

// Semua stempel waktu di response ditampilkan dalam zona Asia/Jakarta (WIB).
var jakarta = loadJakarta()

func loadJakarta() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// FormatWaktu menampilkan waktu lengkap beserta offset zona,
// misal "2024-01-02 08:30:00+07:00".
func FormatWaktu(t time.Time) string {
	return t.In(jakarta).Format("2006-01-02 15:04:05-07:00")
}

// FormatJam menampilkan jam untuk pesan sapaan, misal "08:30:00".
func FormatJam(t time.Time) string {
	return t.In(jakarta).Format("15:04:05")
}

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISO8601 menerima varian ISO-8601 yang umum dikirim klien:
// tanggal saja, tanggal+jam, atau lengkap dengan offset zona.
func ParseISO8601(value string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FotoURL mengembalikan path foto siap disajikan ke klien,
// diawali "/" bila belum absolut.
func FotoURL(path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	if strings.HasPrefix(*path, "/") || strings.Contains(*path, "://") {
		return path
	}
	url := "/" + *path
	return &url
}
