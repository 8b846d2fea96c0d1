package search

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kailas-cloud/vitrine/internal/domain/search/result"
	"github.com/kailas-cloud/vitrine/internal/logger"
)

// Started describes a search as it was understood.
type Started struct {
	Query           string
	NormalizedQuery string
	Keywords        []string
	Page            int
	Limit           int
}

// Finished describes how a search ended. Err is set when the catalog
// could not be read.
type Finished struct {
	ResultsFound int
	Returned     int
	Elapsed      time.Duration
	Err          error
}

// Observer receives diagnostics at fixed points of a search. Implementations
// must not retain the ranked slice.
type Observer interface {
	SearchStarted(ctx context.Context, s Started)
	CandidatesFiltered(ctx context.Context, catalogSize int, ranked []result.Candidate)
	SearchFinished(ctx context.Context, f Finished)
}

// Observers fans every call out to each observer in order.
type Observers []Observer

func (os Observers) SearchStarted(ctx context.Context, s Started) {
	for _, o := range os {
		o.SearchStarted(ctx, s)
	}
}

func (os Observers) CandidatesFiltered(ctx context.Context, catalogSize int, ranked []result.Candidate) {
	for _, o := range os {
		o.CandidatesFiltered(ctx, catalogSize, ranked)
	}
}

func (os Observers) SearchFinished(ctx context.Context, f Finished) {
	for _, o := range os {
		o.SearchFinished(ctx, f)
	}
}

type nopObserver struct{}

func (nopObserver) SearchStarted(context.Context, Started)                      {}
func (nopObserver) CandidatesFiltered(context.Context, int, []result.Candidate) {}
func (nopObserver) SearchFinished(context.Context, Finished)                    {}

// DefaultLogTopN is how many leading candidates LogObserver reports.
const DefaultLogTopN = 5

// LogObserver writes search diagnostics to zap at debug level.
// The request-scoped logger from the context is preferred over the base one.
type LogObserver struct {
	base *zap.Logger
	topN int
}

// NewLogObserver creates a log observer. topN <= 0 uses DefaultLogTopN.
func NewLogObserver(base *zap.Logger, topN int) *LogObserver {
	if base == nil {
		base = zap.NewNop()
	}
	if topN <= 0 {
		topN = DefaultLogTopN
	}
	return &LogObserver{base: base, topN: topN}
}

func (l *LogObserver) log(ctx context.Context) *zap.Logger {
	return logger.FromContextOr(ctx, l.base)
}

// SearchStarted logs the query, its normalized form and keywords.
func (l *LogObserver) SearchStarted(ctx context.Context, s Started) {
	l.log(ctx).Debug("search started",
		zap.String("query", s.Query),
		zap.String("normalized_query", s.NormalizedQuery),
		zap.Strings("keywords", s.Keywords),
		zap.Int("page", s.Page),
		zap.Int("limit", s.Limit),
	)
}

// CandidatesFiltered logs the match count and the leading candidates.
func (l *LogObserver) CandidatesFiltered(ctx context.Context, catalogSize int, ranked []result.Candidate) {
	log := l.log(ctx)
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	n := min(l.topN, len(ranked))
	top := make([]topCandidate, n)
	for i := range n {
		p := ranked[i].Product()
		top[i] = topCandidate{id: p.ID, name: p.Name, score: ranked[i].Score()}
	}
	log.Debug("candidates filtered",
		zap.Int("catalog_size", catalogSize),
		zap.Int("matched", len(ranked)),
		zap.Array("top", topCandidates(top)),
	)
}

// SearchFinished logs the outcome. Failures are logged at warn.
func (l *LogObserver) SearchFinished(ctx context.Context, f Finished) {
	log := l.log(ctx)
	if f.Err != nil {
		log.Warn("search failed", zap.Error(f.Err), zap.Duration("elapsed", f.Elapsed))
		return
	}
	log.Debug("search finished",
		zap.Int("results_found", f.ResultsFound),
		zap.Int("returned", f.Returned),
		zap.Duration("elapsed", f.Elapsed),
	)
}

type topCandidate struct {
	id    int64
	name  string
	score int
}

func (c topCandidate) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("id", c.id)
	enc.AddString("name", c.name)
	enc.AddInt("score", c.score)
	return nil
}

type topCandidates []topCandidate

func (cs topCandidates) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, c := range cs {
		if err := enc.AppendObject(c); err != nil {
			return err
		}
	}
	return nil
}
