package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cryptopulse/internal/domain/models"
)

func ranked() []models.Summary {
	start := time.Date(2022, 1, 1, 4, 0, 0, 0, time.UTC)
	end := time.Date(2022, 1, 31, 20, 0, 0, 0, time.UTC)
	return []models.Summary{
		{Code: "ETH", StartTime: start, EndTime: end, Oldest: 3715.32, Newest: 2672.5, Min: 2336.52, Max: 3828.11},
		{Code: "BTC", StartTime: start, EndTime: end, Oldest: 46813.21, Newest: 38415.79, Min: 33276.59, Max: 47722.66},
	}
}

func TestForPath(t *testing.T) {
	cases := map[string]Saver{
		"out.parquet": ParquetSaver{},
		"out.CSV":     CSVSaver{},
		"a/b.json":    JSONSaver{},
	}
	for path, want := range cases {
		s, err := ForPath(path)
		require.NoError(t, err, path)
		assert.IsType(t, want, s, path)
	}

	_, err := ForPath("out.xlsx")
	assert.Error(t, err)
	_, err = ForPath("out")
	assert.Error(t, err)
}

func TestWriteFile_Parquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.parquet")
	require.NoError(t, WriteFile(path, ranked()))

	rows, err := parquet.ReadFile[Row](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "ETH", rows[0].Code)
	assert.Equal(t, "BTC", rows[1].Code)
	assert.Equal(t, int64(1641009600000), rows[1].StartTime)
	assert.InDelta(t, 0.4341, rows[1].NormalizedRange, 1e-4)
}

func TestWriteFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, WriteFile(path, ranked()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, recs, 3)
	assert.Equal(t, csvHeader, recs[0])
	assert.Equal(t, []string{"BTC", "1641009600000", "1643659200000", "46813.21", "38415.79", "33276.59", "47722.66"}, recs[2][:7])
}

func TestWriteFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, WriteFile(path, ranked()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var rows []Row
	require.NoError(t, json.Unmarshal(b, &rows))
	assert.Len(t, rows, 2)
}

func TestWriteFile_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	assert.Error(t, WriteFile(path, ranked()))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
