package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/cryptopulse/internal/apperr"
	"github.com/guttosm/cryptopulse/internal/domain/models"
	"github.com/guttosm/cryptopulse/internal/logger"
)

// maxParallel caps concurrent file scans regardless of configuration.
const maxParallel = 16

// FileParser reads price files from a Folder and aggregates them.
type FileParser struct {
	folder *Folder
	agg    *Aggregator
}

// NewFileParser returns a FileParser over folder using loc for day filters.
func NewFileParser(folder *Folder, loc *time.Location) *FileParser {
	return &FileParser{folder: folder, agg: NewAggregator(loc)}
}

// Parse opens the file of code, skips its header line and aggregates the rest.
//
// Parameters:
//   - ctx:  checked between records; cancellation aborts the pass.
//   - code: asset code; also selects the file name.
//   - day:  optional calendar day filter.
//
// Returns the same outcomes as Aggregator.Aggregate. Core failures carry the
// file name as their source; malformed CSV fails with UnreadableSource and
// other read failures with SourceIO.
func (p *FileParser) Parse(ctx context.Context, code string, day *time.Time) (*models.Summary, error) {
	rc, err := p.folder.Open(code)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	name := p.folder.FileName(code)

	r := csv.NewReader(rc)
	r.FieldsPerRecord = -1 // column count is checked per record
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.ReuseRecord = true

	// Header line.
	last := 0
	if _, err := r.Read(); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, classify(err, name)
		}
	} else {
		last, _ = r.FieldPos(0)
	}

	s, err := p.agg.Aggregate(ctxReader{ctx: ctx, r: &lineGapReader{r: r, last: last}}, code, day)
	if err != nil {
		return nil, classify(err, name)
	}
	return s, nil
}

// Result is the outcome of one file in a Scan.
type Result struct {
	Code    string
	Summary *models.Summary
	Err     error
}

// Scan parses the file of every code concurrently.
//
// Behavior:
//   - Concurrency defaults to NumCPU when parallel <= 0 and is capped at 16.
//   - Per-code failures are reported in the matching Result; they never stop
//     the other files.
//   - Only context cancellation aborts the scan.
//
// Results keep the order of codes.
func (p *FileParser) Scan(ctx context.Context, codes []string, day *time.Time, parallel int) ([]Result, error) {
	limit := parallel
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	if limit > maxParallel {
		limit = maxParallel
	}

	log := logger.With("ingestion")
	log.Debug().Int("codes", len(codes)).Int("max_parallel", limit).Msg("scan start")
	start := time.Now()

	results := make([]Result, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, code := range codes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := p.Parse(gctx, code, day)
			if err != nil && isContextErr(err) {
				return err
			}
			results[i] = Result{Code: code, Summary: s, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn().Err(err).Dur("elapsed", time.Since(start)).Msg("scan aborted")
		return nil, err
	}

	log.Debug().Int("codes", len(codes)).Dur("elapsed", time.Since(start)).Msg("scan done")
	return results, nil
}

// classify attributes err to the file it came from.
func classify(err error, name string) error {
	if isContextErr(err) {
		return err
	}
	if e, ok := apperr.As(err); ok {
		if e.Source != "" {
			return e
		}
		return e.WithSource(name)
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return apperr.UnreadableSource(fmt.Errorf("line %d: %w", pe.Line, pe.Err)).WithSource(name)
	}
	return apperr.SourceIO(err).WithSource(name)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// lineGapReader fails on blank lines between records, which csv.Reader
// would otherwise skip. Blank lines after the last record are ignored.
type lineGapReader struct {
	r    *csv.Reader
	last int
}

func (g *lineGapReader) Read() ([]string, error) {
	rec, err := g.r.Read()
	if err != nil {
		return nil, err
	}
	line, _ := g.r.FieldPos(0)
	if g.last > 0 && line > g.last+1 {
		return nil, apperr.MalformedTimestampOrPrice(fmt.Errorf("line %d: empty record", g.last+1))
	}
	g.last = line
	return rec, nil
}

// ctxReader stops a RecordReader once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   RecordReader
}

func (c ctxReader) Read() ([]string, error) {
	if err := c.ctx.Err(); err != nil {
		return nil, err
	}
	return c.r.Read()
}
