package sqldom

import "github.com/zoobzio/sqldom/internal/render"

// clauseRenderer writes FROM, SELECT and WHERE clauses as whole lines.
type clauseRenderer struct {
	dialect Dialect
	sink    Sink
	expr    *expressionRenderer
}

func (r *clauseRenderer) writeLockHint() error {
	hint, err := r.dialect.LockHint()
	if err != nil {
		return err
	}
	r.sink.Write(" " + hint)
	return nil
}

func (r *clauseRenderer) renderFrom(from FromClause) error {
	r.sink.WriteTabs()
	r.sink.Write(r.dialect.From() + " ")
	if err := r.expr.renderTableReference(from.Source); err != nil {
		return err
	}
	if from.NoLock {
		if err := r.writeLockHint(); err != nil {
			return err
		}
	}
	r.sink.NewLine()

	r.sink.Indent()
	defer r.sink.Unindent()
	for _, join := range from.Joins {
		if err := r.renderJoin(join); err != nil {
			return err
		}
	}
	return nil
}

func (r *clauseRenderer) renderJoin(join JoinClause) error {
	keyword := r.dialect.InnerJoin()
	if join.Left {
		keyword = r.dialect.LeftJoin()
	}
	op := join.Operator
	if op == "" {
		op = EQ
	}

	r.sink.WriteTabs()
	r.sink.Write(keyword + " ")
	if err := r.expr.renderTableReference(join.Table); err != nil {
		return err
	}
	if join.NoLock {
		if err := r.writeLockHint(); err != nil {
			return err
		}
	}
	r.sink.NewLine()

	r.sink.Indent()
	defer r.sink.Unindent()
	r.sink.WriteTabs()
	r.sink.Write(r.dialect.JoinOn() + " ")
	if err := r.expr.renderCondition(Condition{
		Left:     join.LeftColumn,
		Operator: op,
		Right:    join.RightColumn,
	}); err != nil {
		return err
	}
	r.sink.NewLine()
	return nil
}

func (r *clauseRenderer) renderSelect(sel SelectClause) error {
	if len(sel.Items) == 0 {
		return render.NewMissingChildError("SelectClause", "select items")
	}

	r.sink.WriteTabs()
	r.sink.Write(r.dialect.Select())
	switch {
	case sel.Distinct:
		r.sink.Write(" " + r.dialect.Distinct())
	case sel.Top > 0:
		top, err := r.dialect.Top(sel.Top)
		if err != nil {
			return err
		}
		r.sink.Write(" " + top)
	}
	r.sink.NewLine()

	last := lastRealItem(sel.Items)
	r.sink.Indent()
	defer r.sink.Unindent()
	for i, item := range sel.Items {
		r.sink.WriteTabs()
		if err := r.expr.render(item.Expression); err != nil {
			return err
		}
		if i < last && !item.NoDelimiter && !isBlank(item.Expression) {
			r.sink.Write(r.dialect.SelectItemDelimiter())
		}
		r.sink.NewLine()
	}
	return nil
}

// lastRealItem returns the index of the last item that produces SQL, or -1.
// Trailing comments and empty literals are skipped.
func lastRealItem(items []SelectItem) int {
	for i := len(items) - 1; i >= 0; i-- {
		if !isBlank(items[i].Expression) {
			return i
		}
	}
	return -1
}

// renderWhere writes nothing for a nil or empty clause. Conditions are
// parenthesized only when there is more than one.
func (r *clauseRenderer) renderWhere(where *WhereClause) error {
	if where == nil || len(where.Conditions) == 0 {
		return nil
	}

	r.sink.WriteTabs()
	r.sink.Write(r.dialect.Where())
	r.sink.NewLine()

	parenthesize := len(where.Conditions) > 1
	r.sink.Indent()
	defer r.sink.Unindent()
	for _, cond := range where.Conditions {
		cond.Parenthesize = parenthesize
		r.sink.WriteTabs()
		if err := r.expr.renderConditionList(cond); err != nil {
			return err
		}
		r.sink.NewLine()
	}
	return nil
}
