package services

import (
	"fmt"
	"strings"
	"time"

	"smartpark/models"
)

// BuildFactEnvelope 組出固定格式的事實區塊，是 AI 助理唯一可用的資訊來源。
// 價格與時長一律引用計算結果，這裡不做任何重算；
// 出場時間只在車輛已出場時出現。
func BuildFactEnvelope(rec models.VehicleRecord, comp models.ParkingComputation, status models.VehicleStatus, ref time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vehicle: %s\n", rec.Plate)
	fmt.Fprintf(&b, "Status as of %s: %s\n", ref.Format("15:04"), status.Status)
	fmt.Fprintf(&b, "Entered at: %s\n", rec.EntryTime.Format("15:04"))
	fmt.Fprintf(&b, "Parked for: %s\n", comp.DurationLabel())
	fmt.Fprintf(&b, "Parking spot: %s\n", rec.ParkingSpot)
	fmt.Fprintf(&b, "Price: %s EUR\n", comp.PriceString())
	if status.DiscloseExit {
		fmt.Fprintf(&b, "It exited at %s.\n", status.ExitTimeOfDay)
	}
	return b.String()
}
