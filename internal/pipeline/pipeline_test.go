package pipeline

import (
	"reflect"
	"testing"

	"github.com/flashtools/flashlog/internal/buffer"
	"github.com/flashtools/flashlog/internal/filter"
	"github.com/flashtools/flashlog/internal/record"
)

func newPipeline(excluded []string, queueDepth int) *Pipeline {
	return New(filter.New(excluded), buffer.New(100), queueDepth)
}

func drain(p *Pipeline) []record.Record {
	var out []record.Record
	for {
		select {
		case rec := <-p.Records():
			out = append(out, rec)
		default:
			return out
		}
	}
}

func raws(recs []record.Record) []string {
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Raw
	}
	return out
}

func TestIngestStoresEverythingForwardsDisplayable(t *testing.T) {
	p := newPipeline(filter.DefaultExcludedSenders, 16)

	p.Ingest("14:23:45| ERROR Combat system error occurred")
	p.Ingest("14:23:45| Nanovor DownloadManager syncing")

	if got := p.BufferLen(); got != 2 {
		t.Fatalf("BufferLen() = %d, want 2 (excluded records still buffered)", got)
	}

	shown := drain(p)
	want := []string{"14:23:45| ERROR Combat system error occurred"}
	if !reflect.DeepEqual(raws(shown), want) {
		t.Fatalf("forwarded = %v, want %v", raws(shown), want)
	}
}

func TestKeywordFiltersForwarding(t *testing.T) {
	p := newPipeline(nil, 16)
	p.SetKeyword("attack")

	p.Ingest("14:23:46| Nanovor 1 started attack")
	p.Ingest("14:23:47| idle")

	shown := drain(p)
	want := []string{"14:23:46| Nanovor 1 started attack"}
	if !reflect.DeepEqual(raws(shown), want) {
		t.Fatalf("forwarded = %v, want %v", raws(shown), want)
	}
	if got := p.BufferLen(); got != 2 {
		t.Fatalf("BufferLen() = %d, want 2", got)
	}
}

func TestRefilterAgainstNewKeyword(t *testing.T) {
	p := newPipeline(nil, 16)
	p.SetKeyword("attack")
	p.Ingest("14:23:46| Nanovor 1 started attack")
	p.Ingest("14:23:47| idle")

	p.SetKeyword("idle")
	got := raws(p.Refilter())
	want := []string{"14:23:47| idle"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Refilter() = %v, want %v", got, want)
	}
	if p.BufferLen() != 2 {
		t.Fatalf("BufferLen() = %d, want buffer unchanged by refilter", p.BufferLen())
	}
}

func TestRefilterIdempotent(t *testing.T) {
	p := newPipeline(filter.DefaultExcludedSenders, 16)
	p.Ingest("14:23:45| ERROR Combat system error occurred")
	p.Ingest("14:23:45| Nanovor DownloadManager syncing")
	p.Ingest("14:23:47| idle")

	first := raws(p.Refilter())
	second := raws(p.Refilter())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Refilter() not idempotent: %v then %v", first, second)
	}
}

func TestClearBufferKeepsFilterSettings(t *testing.T) {
	p := newPipeline(nil, 16)
	p.SetKeyword("attack")
	p.SetExcludedSenders([]string{"combat"})
	p.Ingest("14:23:46| Nanovor 1 started attack")

	p.ClearBuffer()
	if p.BufferLen() != 0 {
		t.Fatalf("BufferLen() = %d, want 0 after clear", p.BufferLen())
	}
	if p.Keyword() != "attack" {
		t.Fatalf("Keyword() = %q, want settings untouched by clear", p.Keyword())
	}
	if got := p.ExcludedSenders(); !reflect.DeepEqual(got, []string{"combat"}) {
		t.Fatalf("ExcludedSenders() = %v, want [combat]", got)
	}
	if got := p.Refilter(); len(got) != 0 {
		t.Fatalf("Refilter() after clear = %v, want empty", got)
	}
}

func TestSlowSinkDropsFromDisplayOnly(t *testing.T) {
	p := newPipeline(nil, 1)

	p.Ingest("first")
	p.Ingest("second")
	p.Ingest("third")

	if got := p.Dropped(); got != 2 {
		t.Fatalf("Dropped() = %d, want 2", got)
	}
	if got := p.BufferLen(); got != 3 {
		t.Fatalf("BufferLen() = %d, want all 3 buffered", got)
	}

	// The dropped records are recoverable via refilter.
	got := raws(p.Refilter())
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Refilter() = %v, want %v", got, want)
	}
}
