package export

import (
	"encoding/csv"
	"os"
	"strconv"
)

var csvHeader = []string{"code", "start_time", "end_time", "oldest", "newest", "min", "max", "normalized_range"}

// CSVSaver writes rows as CSV with a header line.
type CSVSaver struct{}

func (CSVSaver) Save(rows []Row, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.Code,
			strconv.FormatInt(r.StartTime, 10),
			strconv.FormatInt(r.EndTime, 10),
			formatFloat(r.Oldest),
			formatFloat(r.Newest),
			formatFloat(r.Min),
			formatFloat(r.Max),
			formatFloat(r.NormalizedRange),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
