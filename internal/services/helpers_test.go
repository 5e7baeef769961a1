package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/cosmiclearn/learning-service/internal/completion"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeCompleter records requests and answers with a fixed reply.
type fakeCompleter struct {
	mu        sync.Mutex
	available bool
	reply     string
	err       error
	requests  []completion.Request
}

func (f *fakeCompleter) Available() bool { return f.available }

func (f *fakeCompleter) Model() string { return "gpt-4o" }

func (f *fakeCompleter) Complete(_ context.Context, req completion.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.reply, f.err
}

func (f *fakeCompleter) calls() []completion.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]completion.Request, len(f.requests))
	copy(out, f.requests)
	return out
}
