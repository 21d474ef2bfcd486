package models

import (
	"fmt"
	"time"
)

// TimeLayout 停車資料的時間戳格式（例如 "2025-12-15 08:00"）
const TimeLayout = "2006-01-02 15:04"

// RawRecord 對應 parkdata.json 的原始欄位，尚未解析
type RawRecord struct {
	In          string  `json:"in" binding:"required"`
	Out         *string `json:"out"`
	ParkingSpot string  `json:"parking_spot"`
}

// VehicleRecord 車輛停車紀錄：載入後唯讀，程式執行期間不會變動
type VehicleRecord struct {
	Plate       string     // 正規化後的車牌，作為唯一鍵
	EntryTime   time.Time  // 入場時間，必填
	ExitTime    *time.Time // 出場時間，nil 表示尚未出場
	EntryRaw    string     // 原始入場時間字串，供日期前綴比對使用
	ParkingSpot string
}

// Parse 將原始資料轉為具名型別的紀錄，時間格式錯誤會立即回報
func (r RawRecord) Parse(plate string) (VehicleRecord, error) {
	entry, err := time.Parse(TimeLayout, r.In)
	if err != nil {
		return VehicleRecord{}, fmt.Errorf("%w: entry time %q for plate %s", ErrMalformedTimestamp, r.In, plate)
	}

	rec := VehicleRecord{
		Plate:       plate,
		EntryTime:   entry,
		EntryRaw:    r.In,
		ParkingSpot: r.ParkingSpot,
	}

	if r.Out != nil {
		exit, err := time.Parse(TimeLayout, *r.Out)
		if err != nil {
			return VehicleRecord{}, fmt.Errorf("%w: exit time %q for plate %s", ErrMalformedTimestamp, *r.Out, plate)
		}
		rec.ExitTime = &exit
	}

	return rec, nil
}
