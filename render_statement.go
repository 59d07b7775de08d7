package sqldom

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/zoobzio/sqldom/internal/render"
)

// Soft deletes set this column instead of removing the row.
const (
	softDeleteColumn = "Deleted"
	softDeleteValue  = "0"
)

// statementRenderer writes whole statements, one clause per line.
type statementRenderer struct {
	dialect Dialect
	sink    Sink
	expr    *expressionRenderer
	clauses *clauseRenderer
}

func (r *statementRenderer) render(stmt Statement) error {
	switch s := derefStatement(stmt).(type) {
	case nil:
		return render.NewMissingChildError("statement list", "statement")
	case SelectStatement:
		return r.renderSelect(s)
	case InsertStatement:
		return r.renderInsert(s)
	case UpdateStatement:
		return r.renderUpdate(s)
	case DeleteStatement:
		return r.renderDelete(s)
	case CreateProcedureStatement:
		return r.renderCreateProcedure(s)
	case DeclareStatement:
		return r.renderDeclare(s)
	case CommentStatement:
		return r.renderComment(s)
	case LiteralStatement:
		r.renderLiteral(s)
		return nil
	default:
		return render.NewUnsupportedConstructError("", fmt.Sprintf("statement %T", stmt))
	}
}

func derefStatement(stmt Statement) Statement {
	if stmt == nil {
		return nil
	}
	v := reflect.ValueOf(stmt)
	if v.Kind() != reflect.Pointer {
		return stmt
	}
	if v.IsNil() {
		return nil
	}
	if s, ok := v.Elem().Interface().(Statement); ok {
		return s
	}
	return stmt
}

// line starts a new line at the current indentation with the given text.
func (r *statementRenderer) line(text string) {
	r.sink.WriteTabs()
	r.sink.Write(text)
}

// SELECT, FROM, WHERE. GROUP BY and ORDER BY are not modelled.
func (r *statementRenderer) renderSelect(s SelectStatement) error {
	if err := r.clauses.renderSelect(s.Select); err != nil {
		return err
	}
	if err := r.clauses.renderFrom(s.From); err != nil {
		return err
	}
	return r.clauses.renderWhere(s.Where)
}

func (r *statementRenderer) renderInsert(s InsertStatement) error {
	if len(s.Columns) == 0 {
		return render.NewMissingChildError("InsertStatement", "columns")
	}
	if len(s.Values) != len(s.Columns) {
		return render.NewMissingChildError("InsertStatement", "one value per column")
	}

	r.line(r.dialect.Insert() + " ")
	if err := r.expr.writeTableName(s.Table); err != nil {
		return err
	}
	r.sink.NewLine()
	if err := r.renderList("InsertStatement", s.Columns); err != nil {
		return err
	}
	r.line(r.dialect.Values())
	r.sink.NewLine()
	return r.renderList("InsertStatement", s.Values)
}

// renderList writes a parenthesized list with one indented item per line.
func (r *statementRenderer) renderList(node string, items []Expression) error {
	r.line(r.dialect.OpenParenthesis())
	r.sink.NewLine()
	r.sink.Indent()
	for i, item := range items {
		if absent(item) {
			r.sink.Unindent()
			return render.NewMissingChildError(node, fmt.Sprintf("list item %d", i+1))
		}
		r.sink.WriteTabs()
		if err := r.expr.render(item); err != nil {
			r.sink.Unindent()
			return err
		}
		if i < len(items)-1 {
			r.sink.Write(r.dialect.ListDelimiter())
		}
		r.sink.NewLine()
	}
	r.sink.Unindent()
	r.line(r.dialect.CloseParenthesis())
	r.sink.NewLine()
	return nil
}

func (r *statementRenderer) renderUpdate(s UpdateStatement) error {
	if len(s.Assignments) == 0 {
		return render.NewMissingChildError("UpdateStatement", "assignments")
	}

	r.line(r.dialect.Update() + " ")
	if err := r.expr.writeTableName(s.Table); err != nil {
		return err
	}
	r.sink.NewLine()
	r.line(r.dialect.Set())
	r.sink.NewLine()

	r.sink.Indent()
	for i, a := range s.Assignments {
		r.sink.WriteTabs()
		if err := r.expr.renderAssignment(a); err != nil {
			r.sink.Unindent()
			return err
		}
		if i < len(s.Assignments)-1 {
			r.sink.Write(r.dialect.ListDelimiter())
		}
		r.sink.NewLine()
	}
	r.sink.Unindent()

	return r.clauses.renderWhere(s.Where)
}

// renderDelete writes a DELETE in hard mode. Soft mode writes an UPDATE of the
// source table that sets the Deleted column instead; the source alias and lock
// hint are dropped and joins are rejected.
func (r *statementRenderer) renderDelete(s DeleteStatement) error {
	switch s.Mode {
	case HardDelete:
		r.line(r.dialect.Delete())
		r.sink.NewLine()
		if err := r.clauses.renderFrom(s.From); err != nil {
			return err
		}
	case SoftDelete:
		if len(s.From.Joins) > 0 {
			return render.NewUnsupportedConstructError("", "soft DELETE with joins",
				"filter the source table with a subquery in WHERE")
		}
		r.line(r.dialect.Update() + " ")
		if err := r.expr.writeTableName(s.From.Source); err != nil {
			return err
		}
		r.sink.NewLine()
		r.line(r.dialect.Set() + " ")
		if err := r.expr.writeName("DeleteStatement", softDeleteColumn); err != nil {
			return err
		}
		r.sink.Write(" " + r.dialect.AssignmentOperator() + " " + softDeleteValue)
		r.sink.NewLine()
	default:
		return render.NewUnsupportedConstructError("", fmt.Sprintf("delete mode %d", int(s.Mode)))
	}
	return r.clauses.renderWhere(s.Where)
}

func (r *statementRenderer) renderCreateProcedure(s CreateProcedureStatement) error {
	if s.Name == "" {
		return render.NewMissingChildError("CreateProcedureStatement", "name")
	}
	opening, err := r.dialect.CreateProcedure(s.Owner, s.Name)
	if err != nil {
		return err
	}
	r.line(opening)
	r.sink.NewLine()

	if len(s.Parameters) > 0 {
		r.sink.Indent()
		for i, p := range s.Parameters {
			r.sink.WriteTabs()
			if err := r.expr.renderParameterDefinition(p); err != nil {
				r.sink.Unindent()
				return err
			}
			if i < len(s.Parameters)-1 {
				r.sink.Write(r.dialect.ListDelimiter())
			}
			r.sink.NewLine()
		}
		r.sink.Unindent()
	}

	r.line(r.dialect.ProcedureBodyStart())
	r.sink.NewLine()
	r.line(r.dialect.BlockBegin())
	r.sink.NewLine()

	r.sink.Indent()
	for _, inner := range s.Body {
		if err := r.render(inner); err != nil {
			r.sink.Unindent()
			return err
		}
		r.sink.NewLine()
	}
	r.sink.Unindent()

	r.line(r.dialect.BlockEnd())
	r.sink.NewLine()
	return nil
}

func (r *statementRenderer) renderDeclare(s DeclareStatement) error {
	keyword, err := r.dialect.Declare()
	if err != nil {
		return err
	}
	r.line(keyword + " ")
	if err := r.expr.renderVariableDefinition(s.Variable); err != nil {
		return err
	}
	if !absent(s.Value) {
		r.sink.Write(" " + r.dialect.AssignmentOperator() + " ")
		if err := r.expr.render(s.Value); err != nil {
			return err
		}
	}
	r.sink.NewLine()
	return nil
}

func (r *statementRenderer) renderComment(s CommentStatement) error {
	switch len(s.Lines) {
	case 0:
		return render.NewMissingChildError("CommentStatement", "comment lines")
	case 1:
		r.sink.WriteTabs()
		r.expr.writeComment(s.Lines[0])
		r.sink.NewLine()
	default:
		r.line(r.dialect.CommentBlockStart())
		r.sink.NewLine()
		for _, text := range s.Lines {
			r.line(r.dialect.CommentBlockLinePrefix() + text)
			r.sink.NewLine()
		}
		r.line(r.dialect.CommentBlockEnd())
		r.sink.NewLine()
	}
	return nil
}

// renderLiteral writes each line of the text at the current indentation.
// Blank lines get no tabs.
func (r *statementRenderer) renderLiteral(s LiteralStatement) {
	for _, text := range strings.Split(s.Text, "\n") {
		text = strings.TrimRight(text, "\r")
		if text != "" {
			r.line(text)
		}
		r.sink.NewLine()
	}
}
