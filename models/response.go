package models

// 給前端用的回應結構

type VehicleDetailResponse struct {
	Plate         string  `json:"plate"`
	Status        string  `json:"status"`
	EntryTime     string  `json:"entry_time"`
	ExitTime      string  `json:"exit_time"`
	DurationHours float64 `json:"duration_hours"`
	Duration      string  `json:"duration"`
	Price         string  `json:"price"`
	ParkingSpot   string  `json:"parking_spot"`
}

// NewVehicleDetailResponse 組合紀錄、計算結果與狀態為單一回應
func NewVehicleDetailResponse(rec VehicleRecord, comp ParkingComputation, status VehicleStatus) VehicleDetailResponse {
	return VehicleDetailResponse{
		Plate:         rec.Plate,
		Status:        status.Status,
		EntryTime:     rec.EntryRaw,
		ExitTime:      comp.ExitLabel(),
		DurationHours: comp.DurationHours,
		Duration:      comp.DurationLabel(),
		Price:         comp.PriceString(),
		ParkingSpot:   rec.ParkingSpot,
	}
}

type AskResponse struct {
	Vehicle  VehicleDetailResponse `json:"vehicle"`
	Question string                `json:"question"`
	Answer   string                `json:"answer"`
	Facts    string                `json:"facts"`
	Warnings []string              `json:"warnings,omitempty"`
}

type ActiveVehicleResponse struct {
	Plate       string `json:"plate"`
	EntryTime   string `json:"entry_time"`
	ParkingSpot string `json:"parking_spot"`
}

func (v VehicleRecord) ToActiveResponse() ActiveVehicleResponse {
	return ActiveVehicleResponse{
		Plate:       v.Plate,
		EntryTime:   v.EntryRaw,
		ParkingSpot: v.ParkingSpot,
	}
}

type LongestParkedResponse struct {
	Plate         string  `json:"plate"`
	EntryTime     string  `json:"entry_time"`
	ExitTime      string  `json:"exit_time"`
	DurationHours float64 `json:"duration_hours"`
	ParkingSpot   string  `json:"parking_spot"`
}

func NewLongestParkedResponse(rec VehicleRecord, comp ParkingComputation) LongestParkedResponse {
	return LongestParkedResponse{
		Plate:         rec.Plate,
		EntryTime:     rec.EntryRaw,
		ExitTime:      comp.ExitLabel(),
		DurationHours: comp.DurationHours,
		ParkingSpot:   rec.ParkingSpot,
	}
}
