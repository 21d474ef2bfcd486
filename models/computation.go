package models

import (
	"fmt"
	"time"
)

// StillParkedLabel 尚未出場時顯示的出場時間標籤
const StillParkedLabel = "still parked"

// 車輛狀態（以模擬時間點為準）
const (
	StatusPresent  = "present"
	StatusDeparted = "departed"
)

// ParkingComputation 計算結果：每次查詢重新計算，不做快取
type ParkingComputation struct {
	DurationHours float64       // 停車時數，四捨五入到小數兩位
	Price         float64       // 費用，四捨五入到小數兩位
	RawDuration   time.Duration // 精確時長，供 "Xh Ym" 顯示使用
	StillParked   bool          // true 表示模擬時間點時還在場內
	ExitTime      time.Time     // 僅在 StillParked == false 時有效
}

// ExitLabel 回傳出場時間標籤；還在場內時回傳固定標記
func (p ParkingComputation) ExitLabel() string {
	if p.StillParked {
		return StillParkedLabel
	}
	return p.ExitTime.Format(TimeLayout)
}

// PriceString 固定兩位小數的價格字串，下游一律引用這個值，不得重算
func (p ParkingComputation) PriceString() string {
	return fmt.Sprintf("%.2f", p.Price)
}

// DurationLabel 以 "Xh Ym" 呈現停車時長，分鐘以下無條件捨去
func (p ParkingComputation) DurationLabel() string {
	total := int(p.RawDuration.Minutes())
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// VehicleStatus 狀態解析結果
type VehicleStatus struct {
	Status        string // StatusPresent 或 StatusDeparted
	DiscloseExit  bool   // 是否可以揭露出場時間
	ExitTimeOfDay string // "HH:MM"，僅在 DiscloseExit 時有值
}
