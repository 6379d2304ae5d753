package testutil

import (
	"context"
	"net/http"
	"sync"
)

// StubLoop stands in for the scheduler loop. Run returns Err at once when set,
// otherwise it blocks until ctx is cancelled.
type StubLoop struct {
	Err error

	mu    sync.Mutex
	calls int
}

func (l *StubLoop) Run(ctx context.Context) error {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
	if l.Err != nil {
		return l.Err
	}
	<-ctx.Done()
	return nil
}

// Calls returns how many times Run was invoked.
func (l *StubLoop) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

// StubHTTPServer fakes a listener.
//
// ListenAndServe returns ListenErr immediately. With Block set and no ListenErr it
// behaves like net/http: it blocks until Shutdown and then returns http.ErrServerClosed.
// Shutdown waits on Hold (when non-nil) or ctx before returning ShutdownErr.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Block       bool
	Hold        chan struct{}

	once      sync.Once
	closed    chan struct{}
	mu        sync.Mutex
	listens   int
	shutdowns int
}

func (s *StubHTTPServer) init() {
	s.once.Do(func() { s.closed = make(chan struct{}) })
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.init()
	s.mu.Lock()
	s.listens++
	s.mu.Unlock()
	if s.ListenErr != nil || !s.Block {
		return s.ListenErr
	}
	<-s.closed
	return http.ErrServerClosed
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.init()
	s.mu.Lock()
	s.shutdowns++
	first := s.shutdowns == 1
	s.mu.Unlock()
	if first {
		close(s.closed)
	}
	if s.Hold != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Hold:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// ListenCalls returns how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listens
}

// ShutdownCalls returns how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdowns
}
