package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"smartpark/models"
)

func writeParkdata(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parkdata.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeParkdata(t, `{
		"el 1234": {"in": "2025-12-15 08:00", "out": null, "parking_spot": "A1"},
		"MU 5678": {"in": "2025-12-15 10:00", "out": "2025-12-15 12:30", "parking_spot": "B3"},
		"B777":    {"in": "2025-12-13 18:45", "out": null, "parking_spot": "A4"}
	}`)

	st, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, st.Len())

	// 索引鍵已正規化，查詢輸入也會正規化
	rec, ok := st.Get("EL1234")
	require.True(t, ok)
	require.Equal(t, "EL1234", rec.Plate)
	require.Equal(t, "2025-12-15 08:00", rec.EntryRaw)
	require.Nil(t, rec.ExitTime)
	require.Equal(t, "A1", rec.ParkingSpot)

	rec, ok = st.Get("  mu 56 78 ")
	require.True(t, ok)
	require.Equal(t, "MU5678", rec.Plate)
	require.NotNil(t, rec.ExitTime)

	_, ok = st.Get("XX0000")
	require.False(t, ok)
}

func TestLoadPreservesFileOrder(t *testing.T) {
	path := writeParkdata(t, `{
		"ZZ 9": {"in": "2025-12-15 08:00", "out": null, "parking_spot": "A1"},
		"AA 1": {"in": "2025-12-15 09:00", "out": null, "parking_spot": "A2"},
		"MM 5": {"in": "2025-12-15 10:00", "out": null, "parking_spot": "A3"}
	}`)

	st, err := Load(path)
	require.NoError(t, err)

	plates := make([]string, 0, st.Len())
	for _, rec := range st.Records() {
		plates = append(plates, rec.Plate)
	}
	require.Equal(t, []string{"ZZ9", "AA1", "MM5"}, plates)
}

func TestLoadRejectsMalformedTimestamp(t *testing.T) {
	path := writeParkdata(t, `{
		"EL1234": {"in": "15.12.2025 08:00", "out": null, "parking_spot": "A1"}
	}`)

	_, err := Load(path)
	require.ErrorIs(t, err, models.ErrMalformedTimestamp)
}

func TestLoadRejectsDuplicateNormalizedPlates(t *testing.T) {
	// 兩個鍵正規化後相同
	path := writeParkdata(t, `{
		"EL 1234": {"in": "2025-12-15 08:00", "out": null, "parking_spot": "A1"},
		"el1234":  {"in": "2025-12-15 09:00", "out": null, "parking_spot": "A2"}
	}`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate plate")
}

func TestLoadRejectsNonObject(t *testing.T) {
	path := writeParkdata(t, `["not", "an", "object"]`)

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
