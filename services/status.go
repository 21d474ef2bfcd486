package services

import (
	"time"

	"smartpark/models"
)

// ResolveStatus 以模擬時間點 ref 判斷車輛狀態與可揭露的出場資訊。
// 出場時間在 ref 之後的紀錄視為還在場內，出場時間不得揭露，
// 與 ComputeParking 的「還在場內」分支保持一致。
func ResolveStatus(rec models.VehicleRecord, ref time.Time) models.VehicleStatus {
	if rec.ExitTime == nil || rec.ExitTime.After(ref) {
		return models.VehicleStatus{Status: models.StatusPresent}
	}
	return models.VehicleStatus{
		Status:        models.StatusDeparted,
		DiscloseExit:  true,
		ExitTimeOfDay: rec.ExitTime.Format("15:04"),
	}
}
