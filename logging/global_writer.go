package logging

import (
	"io"
	"os"
	"sync"
)

// sinkSwitch forwards writes to a target that can be replaced while loggers
// are using it.
type sinkSwitch struct {
	mu     sync.RWMutex
	target io.Writer
}

func (s *sinkSwitch) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target.Write(p)
}

func (s *sinkSwitch) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.target
	s.target = w
	return prev
}

var stderrSink = &sinkSwitch{target: os.Stderr}

// SetGlobalOutput redirects the stderr sink shared by every logger from
// NewLogger and returns a func that restores the previous target.
//
//	defer logging.SetGlobalOutput(io.Discard)()
func SetGlobalOutput(w io.Writer) (restore func()) {
	prev := stderrSink.swap(w)
	return func() { stderrSink.swap(prev) }
}

// GetGlobalOutput returns the shared stderr sink.
func GetGlobalOutput() io.Writer {
	return stderrSink
}
