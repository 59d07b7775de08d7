package sqldom

import (
	"bufio"
	"io"
	"strings"
)

// Sink is an indentation-aware text destination.
//
// Write errors are sticky: the first one is kept, reported by Err and Flush,
// and every later write is dropped. Writing after Close records
// ErrSinkUnavailable. Renderers only ever request one more or one less level
// of indentation; they never see the level itself.
type Sink interface {
	Write(text string)
	WriteLine(text string)
	NewLine()
	WriteTabs()
	Indent()
	Unindent()
	Flush() error
	Close() error
	Err() error
}

// output implements everything but the backing store.
type output struct {
	w      io.StringWriter
	level  int
	err    error
	closed bool
}

func (o *output) Write(text string) {
	if o.err != nil {
		return
	}
	if o.closed {
		o.err = ErrSinkUnavailable
		return
	}
	if text == "" {
		return
	}
	if _, err := o.w.WriteString(text); err != nil {
		o.err = err
	}
}

// WriteLine writes text followed by a newline.
func (o *output) WriteLine(text string) {
	o.Write(text)
	o.Write("\n")
}

// NewLine ends the current line.
func (o *output) NewLine() {
	o.Write("\n")
}

// WriteTabs writes one tab per indentation level.
func (o *output) WriteTabs() {
	if o.level > 0 {
		o.Write(strings.Repeat("\t", o.level))
	}
}

// Indent increases the indentation level.
func (o *output) Indent() {
	o.level++
}

// Unindent decreases the indentation level, stopping at zero.
func (o *output) Unindent() {
	if o.level > 0 {
		o.level--
	}
}

// Err returns the first error recorded by a write.
func (o *output) Err() error {
	return o.err
}

// BufferSink collects text in memory.
type BufferSink struct {
	output
	buf *strings.Builder
}

// NewBufferSink creates an empty in-memory sink.
func NewBufferSink() *BufferSink {
	buf := &strings.Builder{}
	return &BufferSink{output: output{w: buf}, buf: buf}
}

// String returns the text written so far.
func (s *BufferSink) String() string {
	return s.buf.String()
}

// Reset discards the text, the indentation level and any recorded error.
// A closed sink stays closed.
func (s *BufferSink) Reset() {
	s.buf.Reset()
	s.level = 0
	s.err = nil
}

// Flush reports the first write error. Buffered text needs no flushing.
func (s *BufferSink) Flush() error {
	return s.err
}

// Close releases the sink. The collected text stays readable through String.
func (s *BufferSink) Close() error {
	s.closed = true
	return s.err
}

// StreamSink writes text through a buffer to an io.Writer.
type StreamSink struct {
	output
	bw *bufio.Writer
}

// NewStreamSink creates a sink that forwards text to w. The caller keeps
// ownership of w; Close flushes but does not close it.
func NewStreamSink(w io.Writer) *StreamSink {
	bw := bufio.NewWriter(w)
	return &StreamSink{output: output{w: bw}, bw: bw}
}

// Flush pushes buffered text to the underlying writer.
func (s *StreamSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return ErrSinkUnavailable
	}
	if err := s.bw.Flush(); err != nil {
		s.err = err
	}
	return s.err
}

// Close flushes pending text and releases the sink.
func (s *StreamSink) Close() error {
	if s.closed {
		return s.err
	}
	err := s.Flush()
	s.closed = true
	return err
}
