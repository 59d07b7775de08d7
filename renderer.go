package sqldom

import (
	"context"
	"fmt"
	"log/slog"
)

// Writer renders syntax trees through one dialect into one sink.
// A Writer is not safe for concurrent use; the sink it wraps keeps the
// indentation state.
type Writer struct {
	dialect    Dialect
	sink       Sink
	logger     *slog.Logger
	expression *expressionRenderer
	statement  *statementRenderer
}

// Option configures a Writer.
type Option func(*Writer)

// WithLogger attaches a structured logger. Render calls are logged at debug
// level and failures at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Writer. It panics when d or s is nil.
func New(d Dialect, s Sink, opts ...Option) *Writer {
	if d == nil {
		panic("sqldom: nil dialect")
	}
	if s == nil {
		panic("sqldom: nil sink")
	}

	expr := &expressionRenderer{dialect: d, sink: s}
	clauses := &clauseRenderer{dialect: d, sink: s, expr: expr}
	w := &Writer{
		dialect:    d,
		sink:       s,
		logger:     slog.New(slog.DiscardHandler),
		expression: expr,
		statement:  &statementRenderer{dialect: d, sink: s, expr: expr, clauses: clauses},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Dialect returns the dialect the writer renders through.
func (w *Writer) Dialect() Dialect {
	return w.dialect
}

// Render writes one statement. Output already written before a failure stays
// in the sink.
func (w *Writer) Render(stmt Statement) error {
	return w.run(fmt.Sprintf("%T", stmt), func() error {
		return w.statement.render(stmt)
	})
}

// RenderAll writes statements in order and stops at the first failure.
func (w *Writer) RenderAll(stmts ...Statement) error {
	for _, stmt := range stmts {
		if err := w.Render(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RenderExpression writes one expression inline at the sink's current position.
func (w *Writer) RenderExpression(expr Expression) error {
	return w.run(fmt.Sprintf("%T", expr), func() error {
		return w.expression.render(expr)
	})
}

func (w *Writer) run(kind string, fn func() error) error {
	if err := w.sink.Err(); err != nil {
		return err
	}
	ctx := context.Background()
	w.logger.DebugContext(ctx, "render", "kind", kind, "dialect", w.dialect.Name())

	if err := fn(); err != nil {
		w.logger.WarnContext(ctx, "render failed", "kind", kind, "dialect", w.dialect.Name(), "error", err)
		return fmt.Errorf("render %s: %w", kind, err)
	}
	if err := w.sink.Err(); err != nil {
		w.logger.WarnContext(ctx, "sink write failed", "kind", kind, "error", err)
		return err
	}
	return nil
}

// Flush pushes buffered output to the sink's destination.
func (w *Writer) Flush() error {
	return w.sink.Flush()
}

// Close flushes and closes the sink.
func (w *Writer) Close() error {
	return w.sink.Close()
}

// String renders statements into a fresh buffer and returns the text.
func String(d Dialect, stmts ...Statement) (string, error) {
	sink := NewBufferSink()
	if err := New(d, sink).RenderAll(stmts...); err != nil {
		return "", err
	}
	return sink.String(), nil
}
