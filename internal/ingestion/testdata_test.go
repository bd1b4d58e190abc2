package ingestion

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// btcJanuary holds one month of BTC prices out of chronological order.
const btcJanuary = `timestamp,symbol,price
1641009600000,BTC,46813.21
1643400000000,BTC,33276.59
1643670000000,BTC,38415.79
1641081600000,BTC,47722.66
`

func writePriceFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

// sliceReader replays fixed records.
type sliceReader struct {
	recs [][]string
	i    int
	err  error
}

func (s *sliceReader) Read() ([]string, error) {
	if s.i >= len(s.recs) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	r := s.recs[s.i]
	s.i++
	return r, nil
}
