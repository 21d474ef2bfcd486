package services

import (
	"fmt"
	"math"
	"time"

	"smartpark/models"
)

// DefaultHourlyRate 預設每小時費率（歐元）
const DefaultHourlyRate = 1.20

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeParking 計算停車時長與費用，一律以模擬時間點 ref 為「現在」。
// 出場時間為 nil 或晚於 ref 時，車輛視為還在場內，計算截至 ref 為止。
// 純函式：相同輸入必得相同輸出，不讀系統時鐘。
func ComputeParking(entry time.Time, exit *time.Time, ref time.Time, rate float64) (models.ParkingComputation, error) {
	comp := models.ParkingComputation{StillParked: true}

	end := ref
	if exit != nil && !exit.After(ref) {
		end = *exit
		comp.StillParked = false
		comp.ExitTime = *exit
	}

	raw := end.Sub(entry)
	if raw < 0 {
		// 入場時間晚於有效結束時間，資料本身有問題，直接回報
		return models.ParkingComputation{}, fmt.Errorf("%w: entry %s is after effective end %s",
			models.ErrNegativeDuration, entry.Format(models.TimeLayout), end.Format(models.TimeLayout))
	}

	comp.RawDuration = raw
	comp.DurationHours = round2(raw.Hours())
	comp.Price = round2(comp.DurationHours * rate)
	return comp, nil
}
