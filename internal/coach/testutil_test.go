package coach

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"fitscan/internal/vision"
)

// fakeCompleter is an in-memory model API used for tests.
type fakeCompleter struct {
	mu    sync.Mutex
	reply string
	err   error
	block bool
	reqs  []vision.Request
}

func (f *fakeCompleter) Complete(ctx context.Context, req vision.Request) (string, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.reply, f.err
}

func (f *fakeCompleter) last(t *testing.T) vision.Request {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.reqs) == 0 {
		t.Fatalf("model api was not called")
	}
	return f.reqs[len(f.reqs)-1]
}

// newTestService returns a Service without simulated latency and with a
// fixed random seed.
func newTestService(ai Completer) *Service {
	cfg := Config{SimulationDelay: -1, Rand: rand.New(rand.NewPCG(1, 2))}
	if ai != nil {
		cfg.AI = ai
	}
	return New(cfg)
}

// testCtx returns a context with a short timeout, canceled on test cleanup.
func testCtx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return c
}

var jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}

func jpegUpload() Upload {
	return Upload{Filename: "photo.jpg", ContentType: "image/jpeg", Data: jpegHeader}
}
