package store

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"smartpark/models"
	"smartpark/services"
)

// Store 唯讀的停車紀錄集合：啟動時載入一次，之後不會變動，
// 可以安全地被任意多個請求同時讀取。
type Store struct {
	records map[string]models.VehicleRecord
	order   []string // 檔案中的出現順序，讓彙總查詢有決定性
}

// Load 讀取 parkdata JSON 檔並建立索引。
// 車牌鍵在這裡正規化，時間字串在這裡解析完畢，之後的程式碼只碰具名型別。
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parkdata file: %w", err)
	}
	defer f.Close()

	st := &Store{records: make(map[string]models.VehicleRecord)}

	// 逐筆解碼以保留檔案中的順序（map 會打亂順序）
	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse parkdata file: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parkdata file must contain a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse parkdata file: %w", err)
		}
		rawPlate := keyTok.(string)

		var raw models.RawRecord
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse record for plate %s: %w", rawPlate, err)
		}

		plate := services.NormalizePlate(rawPlate)
		if _, exists := st.records[plate]; exists {
			return nil, fmt.Errorf("duplicate plate %s after normalization (raw key %q)", plate, rawPlate)
		}

		rec, err := raw.Parse(plate)
		if err != nil {
			return nil, err
		}

		st.records[plate] = rec
		st.order = append(st.order, plate)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse parkdata file: %w", err)
	}

	log.Printf("Loaded %d parking records from %s", len(st.order), path)
	return st, nil
}

// Get 以車牌查詢紀錄，輸入會先正規化
func (s *Store) Get(plate string) (models.VehicleRecord, bool) {
	rec, ok := s.records[services.NormalizePlate(plate)]
	return rec, ok
}

// Records 依載入順序回傳所有紀錄
func (s *Store) Records() []models.VehicleRecord {
	records := make([]models.VehicleRecord, len(s.order))
	for i, plate := range s.order {
		records[i] = s.records[plate]
	}
	return records
}

// Len 紀錄筆數
func (s *Store) Len() int {
	return len(s.order)
}
