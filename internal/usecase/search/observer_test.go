package search

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/vitrine/internal/domain/product"
	"github.com/kailas-cloud/vitrine/internal/domain/search/result"
	"github.com/kailas-cloud/vitrine/internal/logger"
)

func TestLogObserver_TopN(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	o := NewLogObserver(zap.New(core), 2)

	ranked := []result.Candidate{
		result.New(product.Product{ID: 1, Name: "a"}, 30),
		result.New(product.Product{ID: 2, Name: "b"}, 20),
		result.New(product.Product{ID: 3, Name: "c"}, 10),
	}
	o.CandidatesFiltered(context.Background(), 7, ranked)

	entries := logs.FilterMessage("candidates filtered").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["catalog_size"] != int64(7) || fields["matched"] != int64(3) {
		t.Errorf("fields = %v", fields)
	}
	top, ok := fields["top"].([]interface{})
	if !ok || len(top) != 2 {
		t.Errorf("top = %#v, want 2 entries", fields["top"])
	}
}

func TestLogObserver_PrefersContextLogger(t *testing.T) {
	baseCore, baseLogs := observer.New(zapcore.DebugLevel)
	reqCore, reqLogs := observer.New(zapcore.DebugLevel)
	o := NewLogObserver(zap.New(baseCore), 0)

	ctx := logger.ContextWithLogger(context.Background(), zap.New(reqCore))
	o.SearchStarted(ctx, Started{Query: "vestido", NormalizedQuery: "vestido", Keywords: []string{"vestido"}})

	if baseLogs.Len() != 0 {
		t.Errorf("base logger got %d entries", baseLogs.Len())
	}
	if reqLogs.FilterMessage("search started").Len() != 1 {
		t.Errorf("request logger entries = %v", reqLogs.All())
	}
}

func TestLogObserver_FailureAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	o := NewLogObserver(zap.New(core), 0)

	o.SearchFinished(context.Background(), Finished{ResultsFound: 3})
	o.SearchFinished(context.Background(), Finished{Err: errors.New("boom")})

	if logs.Len() != 1 {
		t.Fatalf("entries = %d, want only the failure", logs.Len())
	}
	if e := logs.All()[0]; e.Level != zapcore.WarnLevel || e.Message != "search failed" {
		t.Errorf("entry = %+v", e)
	}
}

func TestObservers_FanOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	fan := Observers{a, b}

	fan.SearchStarted(context.Background(), Started{Query: "x"})
	fan.CandidatesFiltered(context.Background(), 4, nil)
	fan.SearchFinished(context.Background(), Finished{ResultsFound: 1})

	for i, o := range []*recordingObserver{a, b} {
		if len(o.started) != 1 || o.catalogSize != 4 || len(o.finished) != 1 {
			t.Errorf("observer %d = %+v", i, o)
		}
	}
}
