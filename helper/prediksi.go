package helper

import (
	"bytes"
	"fmt"
	"time"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/linear_models"
)

func waktuKeMenit(t time.Time) float64 {
	local := t.In(jakarta)
	return float64(local.Hour()*60 + local.Minute())
}

func menitKeJam(minutes float64) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := int(minutes/60) % 24
	mins := int(minutes) % 60
	return fmt.Sprintf("%02d:%02d", hours, mins)
}

// SesiTertutup adalah satu pasang check-in/check-out historis
// yang dipakai sebagai data latih.
type SesiTertutup struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// PredictCheckoutTime melatih regresi linear sederhana dari riwayat sesi
// tertutup lalu memprediksi jam check-out untuk jam check-in yang diberikan.
// Hasil berupa jam "HH:MM" dalam zona WIB.
func PredictCheckoutTime(history []SesiTertutup, checkIn time.Time) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("no training data available")
	}

	var csvBuffer bytes.Buffer
	csvBuffer.WriteString("jam_keluar,jam_masuk\n")
	for _, sesi := range history {
		csvBuffer.WriteString(fmt.Sprintf("%.2f,%.2f\n",
			waktuKeMenit(sesi.CheckOut), waktuKeMenit(sesi.CheckIn)))
	}

	instances, err := base.ParseCSVToInstancesFromReader(bytes.NewReader(csvBuffer.Bytes()), true)
	if err != nil {
		return "", fmt.Errorf("failed to parse training data: %w", err)
	}

	model := linear_models.NewLinearRegression()
	if err := model.Fit(instances); err != nil {
		return "", fmt.Errorf("failed to train model: %w", err)
	}

	predCSV := fmt.Sprintf("jam_keluar,jam_masuk\n0.0,%.2f\n", waktuKeMenit(checkIn))
	predInstances, err := base.ParseCSVToInstancesFromReader(bytes.NewReader([]byte(predCSV)), true)
	if err != nil {
		return "", fmt.Errorf("failed to parse prediction data: %w", err)
	}

	predictions, err := model.Predict(predInstances)
	if err != nil {
		return "", fmt.Errorf("prediction failed: %w", err)
	}

	classAttrs := predictions.AllClassAttributes()
	if len(classAttrs) == 0 {
		return "", fmt.Errorf("no class attribute in predictions")
	}

	classSpec := base.ResolveAttributes(predictions, classAttrs)[0]
	predictedMinutes := base.UnpackBytesToFloat(predictions.Get(classSpec, 0))

	return menitKeJam(predictedMinutes), nil
}
