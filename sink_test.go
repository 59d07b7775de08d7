package sqldom_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/mssql"
)

func TestBufferSink_Indentation(t *testing.T) {
	s := sqldom.NewBufferSink()
	s.WriteTabs()
	s.WriteLine("a")
	s.Indent()
	s.Indent()
	s.WriteTabs()
	s.WriteLine("b")
	s.Unindent()
	s.WriteTabs()
	s.Write("c")
	s.NewLine()

	assert.Equal(t, "a\n\t\tb\n\tc\n", s.String())
	assert.NoError(t, s.Flush())
}

func TestBufferSink_UnindentStopsAtZero(t *testing.T) {
	s := sqldom.NewBufferSink()
	s.Unindent()
	s.Unindent()
	s.Indent()
	s.WriteTabs()
	s.Write("x")
	assert.Equal(t, "\tx", s.String())
}

func TestBufferSink_Reset(t *testing.T) {
	s := sqldom.NewBufferSink()
	s.Indent()
	s.WriteTabs()
	s.Write("x")
	s.Reset()
	s.WriteTabs()
	s.Write("y")
	assert.Equal(t, "y", s.String())
}

func TestBufferSink_WriteAfterClose(t *testing.T) {
	s := sqldom.NewBufferSink()
	s.Write("kept")
	require.NoError(t, s.Close())

	s.Write("dropped")
	assert.Equal(t, "kept", s.String())
	assert.ErrorIs(t, s.Err(), sqldom.ErrSinkUnavailable)
	assert.ErrorIs(t, s.Flush(), sqldom.ErrSinkUnavailable)
}

func TestStreamSink_FlushesToWriter(t *testing.T) {
	var buf bytes.Buffer
	s := sqldom.NewStreamSink(&buf)
	s.WriteLine("SELECT")
	assert.Empty(t, buf.String(), "text stays buffered until flushed")

	require.NoError(t, s.Flush())
	assert.Equal(t, "SELECT\n", buf.String())

	s.Write("1")
	require.NoError(t, s.Close())
	assert.Equal(t, "SELECT\n1", buf.String())

	assert.ErrorIs(t, s.Flush(), sqldom.ErrSinkUnavailable)
	assert.NoError(t, s.Close(), "closing twice is harmless")
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestStreamSink_ErrorsAreSticky(t *testing.T) {
	s := sqldom.NewStreamSink(failingWriter{})
	s.Write("x")
	require.ErrorIs(t, s.Flush(), errDiskFull)

	s.Write("y")
	assert.ErrorIs(t, s.Err(), errDiskFull)
	assert.ErrorIs(t, s.Close(), errDiskFull)
}

func TestWriter_StreamsStatements(t *testing.T) {
	var buf bytes.Buffer
	w := sqldom.New(mssql.New(), sqldom.NewStreamSink(&buf))
	require.NoError(t, w.RenderAll(
		sqldom.CommentStatement{Lines: []string{"one"}},
		sqldom.CommentStatement{Lines: []string{"two"}},
	))
	require.NoError(t, w.Flush())
	assert.Equal(t, "-- one\n-- two\n", buf.String())
	assert.Equal(t, "mssql", w.Dialect().Name())
}
