package sqldom

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/zoobzio/sqldom/internal/render"
)

// expressionRenderer writes expressions inline, without line breaks.
type expressionRenderer struct {
	dialect Dialect
	sink    Sink
}

// render writes expr. A nil expression writes nothing; composite arms check
// their required children themselves.
func (r *expressionRenderer) render(expr Expression) error {
	switch e := derefExpression(expr).(type) {
	case nil:
		return nil
	case Alias:
		return r.writeName("Alias", e.Name)
	case ColumnName:
		return r.writeName("ColumnName", e.Name)
	case DatabaseName:
		return r.writeName("DatabaseName", e.Name)
	case DatabaseOwnerName:
		return r.writeName("DatabaseOwnerName", e.Name)
	case TableName:
		return r.writeName("TableName", e.Name)
	case StoredProcedureName:
		return r.writeName("StoredProcedureName", e.Name)
	case Comment:
		r.writeComment(e.Text)
		return nil
	case Literal:
		r.sink.Write(e.Text)
		return nil
	case ParameterName:
		return r.writePrefixed("ParameterName", e.Name)
	case ParameterReference:
		return r.writePrefixed("ParameterReference", e.Name)
	case VariableName:
		return r.writePrefixed("VariableName", e.Name)
	case VariableReference:
		return r.writePrefixed("VariableReference", e.Name)
	case Condition:
		return r.renderCondition(e)
	case ConditionList:
		return r.renderConditionList(e)
	case SelectListItem:
		return r.renderSelectListItem(e)
	case TableReference:
		return r.renderTableReference(e)
	case TableColumnReference:
		return r.renderTableColumn(e)
	case DataTypeSpecification:
		return r.renderDataType(e)
	case ParameterDefinition:
		return r.renderParameterDefinition(e)
	case VariableDefinition:
		return r.renderVariableDefinition(e)
	case FunctionCall:
		return r.renderFunctionCall(e)
	case Assignment:
		return r.renderAssignment(e)
	default:
		return render.NewUnsupportedConstructError("", fmt.Sprintf("expression %T", expr))
	}
}

// derefExpression lets callers hand over variants by pointer.
func derefExpression(expr Expression) Expression {
	if expr == nil {
		return nil
	}
	v := reflect.ValueOf(expr)
	if v.Kind() != reflect.Pointer {
		return expr
	}
	if v.IsNil() {
		return nil
	}
	if e, ok := v.Elem().Interface().(Expression); ok {
		return e
	}
	return expr
}

// absent reports whether an expression is nil or a nil pointer.
func absent(expr Expression) bool {
	return derefExpression(expr) == nil
}

// writeName writes a delimited object name, doubling any end delimiter inside it.
func (r *expressionRenderer) writeName(node, name string) error {
	if name == "" {
		return render.NewMissingChildError(node, "name")
	}
	end := r.dialect.ObjectNameEnd()
	if end != "" {
		name = strings.ReplaceAll(name, end, end+end)
	}
	r.sink.Write(r.dialect.ObjectNameStart() + name + end)
	return nil
}

// writePrefixed writes a parameter or variable name, adding the dialect prefix
// only when the name does not carry it yet.
func (r *expressionRenderer) writePrefixed(node, name string) error {
	if name == "" {
		return render.NewMissingChildError(node, "name")
	}
	prefix := r.dialect.ParameterPrefix()
	if !strings.HasPrefix(name, prefix) {
		name = prefix + name
	}
	r.sink.Write(name)
	return nil
}

func (r *expressionRenderer) writeComment(text string) {
	r.sink.Write(r.dialect.CommentLineDelimiter())
	if text != "" {
		r.sink.Write(" " + text)
	}
}

func (r *expressionRenderer) renderCondition(c Condition) error {
	if absent(c.Left) {
		return render.NewMissingChildError("Condition", "left operand")
	}
	if absent(c.Right) {
		return render.NewMissingChildError("Condition", "right operand")
	}
	op, err := r.dialect.ComparisonOperator(c.Operator)
	if err != nil {
		return err
	}
	if err := r.render(c.Left); err != nil {
		return err
	}
	r.sink.Write(" " + op + " ")
	return r.render(c.Right)
}

func (r *expressionRenderer) renderConditionList(c ConditionList) error {
	if absent(c.Condition) {
		return render.NewMissingChildError("ConditionList", "condition")
	}
	logic := ""
	if c.Logic != LogicNone {
		var err error
		if logic, err = r.dialect.LogicalOperator(c.Logic); err != nil {
			return err
		}
	}
	if c.Parenthesize {
		r.sink.Write(r.dialect.OpenParenthesis())
	}
	if err := r.render(c.Condition); err != nil {
		return err
	}
	if c.Parenthesize {
		r.sink.Write(r.dialect.CloseParenthesis())
	}
	if logic != "" {
		r.sink.Write(" " + logic)
	}
	return nil
}

func (r *expressionRenderer) renderSelectListItem(item SelectListItem) error {
	if absent(item.Expression) {
		return nil
	}
	if err := r.render(item.Expression); err != nil {
		return err
	}
	if item.Alias != "" {
		r.sink.Write(" " + r.dialect.As() + " ")
		return r.writeName("SelectListItem", item.Alias)
	}
	return nil
}

// writeTableName writes [owner].[table] without alias, as UPDATE and INSERT targets need.
func (r *expressionRenderer) writeTableName(ref TableReference) error {
	if ref.Name == "" {
		return render.NewMissingChildError("TableReference", "table name")
	}
	if ref.Owner != "" {
		if err := r.writeName("TableReference", ref.Owner); err != nil {
			return err
		}
		r.sink.Write(".")
	}
	return r.writeName("TableReference", ref.Name)
}

func (r *expressionRenderer) renderTableReference(ref TableReference) error {
	if err := r.writeTableName(ref); err != nil {
		return err
	}
	if ref.Alias != "" {
		r.sink.Write(" " + r.dialect.As() + " ")
		return r.writeName("TableReference", ref.Alias)
	}
	return nil
}

func (r *expressionRenderer) renderTableColumn(ref TableColumnReference) error {
	if ref.Column == "" {
		return render.NewMissingChildError("TableColumnReference", "column name")
	}
	if ref.Table != "" {
		if err := r.writeName("TableColumnReference", ref.Table); err != nil {
			return err
		}
		r.sink.Write(".")
	}
	return r.writeName("TableColumnReference", ref.Column)
}

// renderDataType writes the dialect type name and its size suffix. The suffix
// rules depend only on the type, never on the dialect.
func (r *expressionRenderer) renderDataType(spec DataTypeSpecification) error {
	name, err := r.dialect.DataTypeName(spec.Type)
	if err != nil {
		return err
	}

	size := ""
	switch spec.Type.lengthCategory() {
	case lengthOptional:
		switch {
		case spec.MaxLength > 0:
			size = strconv.Itoa(spec.MaxLength)
		case spec.MaxLength == MaxLength && spec.Type.variableLength():
			if size, err = r.dialect.MaxSize(); err != nil {
				return err
			}
		}
	case lengthWide:
		switch {
		case spec.MaxLength == MaxLength:
			if size, err = r.dialect.MaxSize(); err != nil {
				return err
			}
		case spec.ANSIPadding:
			size = strconv.Itoa(spec.MaxLength / 2)
		default:
			size = strconv.Itoa(spec.MaxLength)
		}
	case lengthFixedTime:
		size = strconv.Itoa(dateTimeOffsetPrecision)
	case lengthPrecision:
		size = strconv.Itoa(spec.Precision) + "," + strconv.Itoa(spec.Scale)
	}

	r.sink.Write(name)
	if size != "" {
		r.sink.Write(r.dialect.OpenParenthesis() + size + r.dialect.CloseParenthesis())
	}
	return nil
}

func (r *expressionRenderer) renderParameterDefinition(p ParameterDefinition) error {
	if err := r.writePrefixed("ParameterDefinition", p.Name); err != nil {
		return err
	}
	r.sink.Write(" ")
	if err := r.renderDataType(p.Type); err != nil {
		return err
	}
	if !absent(p.Default) {
		r.sink.Write(" " + r.dialect.AssignmentOperator() + " ")
		if err := r.render(p.Default); err != nil {
			return err
		}
	}
	if p.Output {
		r.sink.Write(" " + r.dialect.Output())
	}
	return nil
}

func (r *expressionRenderer) renderVariableDefinition(v VariableDefinition) error {
	if err := r.writePrefixed("VariableDefinition", v.Name); err != nil {
		return err
	}
	r.sink.Write(" ")
	return r.renderDataType(v.Type)
}

func (r *expressionRenderer) renderFunctionCall(f FunctionCall) error {
	if f.Name == "" {
		return render.NewMissingChildError("FunctionCall", "name")
	}
	r.sink.Write(f.Name + r.dialect.OpenParenthesis())
	for i, arg := range f.Arguments {
		if absent(arg) {
			return render.NewMissingChildError("FunctionCall", fmt.Sprintf("argument %d", i+1))
		}
		if i > 0 {
			r.sink.Write(r.dialect.ListDelimiter() + " ")
		}
		if err := r.render(arg); err != nil {
			return err
		}
	}
	r.sink.Write(r.dialect.CloseParenthesis())
	return nil
}

func (r *expressionRenderer) renderAssignment(a Assignment) error {
	if absent(a.Target) {
		return render.NewMissingChildError("Assignment", "target")
	}
	if absent(a.Value) {
		return render.NewMissingChildError("Assignment", "value")
	}
	if err := r.render(a.Target); err != nil {
		return err
	}
	r.sink.Write(" " + r.dialect.AssignmentOperator() + " ")
	return r.render(a.Value)
}
