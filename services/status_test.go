package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"smartpark/models"
)

func record(t *testing.T, plate, entry, exit, spot string) models.VehicleRecord {
	t.Helper()
	raw := models.RawRecord{In: entry, ParkingSpot: spot}
	if exit != "" {
		raw.Out = &exit
	}
	rec, err := raw.Parse(plate)
	require.NoError(t, err)
	return rec
}

func TestResolveStatus(t *testing.T) {
	ref := time.Date(2025, 12, 15, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rec          models.VehicleRecord
		wantStatus   string
		wantDisclose bool
		wantExit     string
	}{
		{
			name:       "no exit record means present",
			rec:        record(t, "EL1234", "2025-12-15 08:00", "", "A1"),
			wantStatus: models.StatusPresent,
		},
		{
			name:         "exit before reference instant means departed",
			rec:          record(t, "MU5678", "2025-12-15 10:00", "2025-12-15 12:30", "B3"),
			wantStatus:   models.StatusDeparted,
			wantDisclose: true,
			wantExit:     "12:30",
		},
		{
			name:         "exit exactly at reference instant means departed",
			rec:          record(t, "K4321", "2025-12-15 12:00", "2025-12-15 16:00", "D1"),
			wantStatus:   models.StatusDeparted,
			wantDisclose: true,
			wantExit:     "16:00",
		},
		{
			name:       "future exit stays undisclosed and present",
			rec:        record(t, "HH9012", "2025-12-14 09:00", "2025-12-15 20:00", "C2"),
			wantStatus: models.StatusPresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := ResolveStatus(tt.rec, ref)
			require.Equal(t, tt.wantStatus, status.Status)
			require.Equal(t, tt.wantDisclose, status.DiscloseExit)
			require.Equal(t, tt.wantExit, status.ExitTimeOfDay)
		})
	}
}

// 計算器的「還在場內」分支與狀態解析必須一致：
// 對任何紀錄，StillParked 為真恰好等於狀態是 present。
func TestCalculatorAndResolverAgree(t *testing.T) {
	ref := time.Date(2025, 12, 15, 16, 0, 0, 0, time.UTC)

	records := []models.VehicleRecord{
		record(t, "EL1234", "2025-12-15 08:00", "", "A1"),
		record(t, "MU5678", "2025-12-15 10:00", "2025-12-15 12:30", "B3"),
		record(t, "HH9012", "2025-12-14 09:00", "2025-12-15 20:00", "C2"),
		record(t, "K4321", "2025-12-15 12:00", "2025-12-15 16:00", "D1"),
		record(t, "B777", "2025-12-13 18:45", "", "A4"),
	}

	for _, rec := range records {
		comp, err := ComputeParking(rec.EntryTime, rec.ExitTime, ref, DefaultHourlyRate)
		require.NoError(t, err)

		status := ResolveStatus(rec, ref)
		require.Equal(t, comp.StillParked, status.Status == models.StatusPresent,
			"calculator and resolver disagree for plate %s", rec.Plate)
		require.Equal(t, !comp.StillParked, status.DiscloseExit,
			"exit disclosure must follow the departed branch for plate %s", rec.Plate)
	}
}
