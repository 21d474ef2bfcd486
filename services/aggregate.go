package services

import (
	"strings"
	"time"

	"smartpark/models"
)

// ActiveVehicles 回傳出場時間為空的車輛。
// 注意：出場時間已登記但在模擬時間點之後的車輛「不會」出現在這裡，
// 即使 ResolveStatus 會說它還在場內。這個不一致是既有產品行為，
// 未經產品決策前不要修掉。
func ActiveVehicles(records []models.VehicleRecord) []models.VehicleRecord {
	var active []models.VehicleRecord
	for _, rec := range records {
		if rec.ExitTime == nil {
			active = append(active, rec)
		}
	}
	return active
}

// EntriesOn 回傳入場日期等於 date（"YYYY-MM-DD"）的車輛。
// 直接對原始入場字串做前綴比對，不做日曆解析。
func EntriesOn(records []models.VehicleRecord, date string) []models.VehicleRecord {
	var entries []models.VehicleRecord
	for _, rec := range records {
		if strings.HasPrefix(rec.EntryRaw, date) {
			entries = append(entries, rec)
		}
	}
	return entries
}

// LongestParked 找出精確停車時長最長的車輛；平手時取先出現者，
// 因此結果只在紀錄順序固定時才有決定性。
func LongestParked(records []models.VehicleRecord, ref time.Time, rate float64) (models.VehicleRecord, models.ParkingComputation, error) {
	var (
		longest     models.VehicleRecord
		longestComp models.ParkingComputation
		found       bool
	)

	for _, rec := range records {
		comp, err := ComputeParking(rec.EntryTime, rec.ExitTime, ref, rate)
		if err != nil {
			return models.VehicleRecord{}, models.ParkingComputation{}, err
		}
		if !found || comp.RawDuration > longestComp.RawDuration {
			longest = rec
			longestComp = comp
			found = true
		}
	}

	if !found {
		return models.VehicleRecord{}, models.ParkingComputation{}, models.ErrNoRecords
	}
	return longest, longestComp, nil
}
