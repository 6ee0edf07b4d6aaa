// Package xplm describes the slice of the X-Plane plugin API that the shim
// touches: plugin ids, inter-plugin message codes and the debug log.
package xplm

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// BufferSize is the size of each descriptor buffer the host passes to
// XPluginStart, including the terminating NUL.
const BufferSize = 256

// PluginID identifies a plugin loaded by the host.
type PluginID int32

const (
	// NoPluginID is returned by the host when a plugin cannot be found.
	NoPluginID PluginID = -1
	// XPlaneID is the id the simulator itself uses as a message sender.
	XPlaneID PluginID = 0
)

func (id PluginID) String() string {
	switch id {
	case NoPluginID:
		return "none"
	case XPlaneID:
		return "x-plane"
	default:
		return fmt.Sprintf("plugin-%d", int32(id))
	}
}

// Sink receives lines destined for the host log (Log.txt).
type Sink interface {
	DebugString(s string)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(s string)

// DebugString calls f(s).
func (f SinkFunc) DebugString(s string) { f(s) }

// WriterSink writes host log lines to an io.Writer.
type WriterSink struct {
	W io.Writer
}

// DebugString writes s unchanged.
func (w WriterSink) DebugString(s string) {
	_, _ = io.WriteString(w.W, s)
}

var (
	mu      sync.RWMutex
	current Sink = WriterSink{W: os.Stderr}
)

// SetSink replaces the process-wide host log sink and returns the previous one.
// A nil sink restores stderr.
func SetSink(s Sink) Sink {
	if s == nil {
		s = WriterSink{W: os.Stderr}
	}
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = s
	return prev
}

// CurrentSink returns the process-wide host log sink.
func CurrentSink() Sink {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// DebugString writes s to the host log verbatim. No newline is added.
func DebugString(s string) {
	CurrentSink().DebugString(s)
}

type sinkWriter struct {
	sink Sink
}

func (w sinkWriter) Write(p []byte) (int, error) {
	w.sink.DebugString(string(p))
	return len(p), nil
}

// Writer returns an io.Writer that forwards every write to sink as one
// host log line. A nil sink forwards to whatever sink is current at write time.
func Writer(sink Sink) io.Writer {
	if sink == nil {
		return sinkWriter{sink: SinkFunc(DebugString)}
	}
	return sinkWriter{sink: sink}
}
