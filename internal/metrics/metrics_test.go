package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder(t *testing.T) {
	r := New()
	r.Documents.Add(2)
	r.ChunkOutcome(10, 3)
	r.CacheLookup(true)
	r.CacheLookup(false)
	r.CacheLookup(false)
	r.Notations.WithLabelValues("Değişik").Inc()
	r.ObserveStage("extract", time.Now().Add(-time.Second))

	if got := testutil.ToFloat64(r.Documents); got != 2 {
		t.Errorf("documents = %v", got)
	}
	if got := testutil.ToFloat64(r.Chunks.WithLabelValues("dropped")); got != 3 {
		t.Errorf("dropped = %v", got)
	}
	if got := testutil.ToFloat64(r.CacheLookups.WithLabelValues("miss")); got != 2 {
		t.Errorf("misses = %v", got)
	}
	if n := testutil.CollectAndCount(r.StageDuration); n != 1 {
		t.Errorf("stage series = %d", n)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := New()
	r.Embeddings.Add(5)
	path := filepath.Join(t.TempDir(), "kvkkrag.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "kvkkrag_embeddings_total 5") {
		t.Errorf("textfile:\n%s", data)
	}
}
