package sqldom

import "strings"

// Expression is a node rendered inline, as part of a line.
// The set of variants is closed; see the renderer for their text forms.
type Expression interface {
	expressionNode()
}

// Alias names a projected expression or a table source.
type Alias struct {
	Name string
}

// ColumnName is a bare, delimited column name.
type ColumnName struct {
	Name string
}

// Comment renders as a line comment. Inside a SELECT list it never takes a delimiter.
type Comment struct {
	Text string
}

// Condition compares two expressions.
type Condition struct {
	Left     Expression
	Operator Operator
	Right    Expression
}

// ConditionList is one entry of a WHERE list: a condition and the connective
// that follows it.
type ConditionList struct {
	Condition    Expression
	Logic        LogicOperator
	Parenthesize bool
}

// DatabaseName is a delimited database name.
type DatabaseName struct {
	Name string
}

// DatabaseOwnerName is a delimited schema/owner name.
type DatabaseOwnerName struct {
	Name string
}

// Literal is written verbatim.
type Literal struct {
	Text string
}

// ParameterName names a procedure parameter. The dialect prefix is added when missing.
type ParameterName struct {
	Name string
}

// ParameterReference uses a procedure parameter inside a statement.
type ParameterReference struct {
	Name string
}

// SelectListItem is a projected expression with an optional alias.
// A nil Expression renders nothing.
type SelectListItem struct {
	Expression Expression
	Alias      string
}

// TableReference is an owner-qualified table with an optional alias.
type TableReference struct {
	Owner string
	Name  string
	Alias string
}

// StoredProcedureName is a delimited procedure name.
type StoredProcedureName struct {
	Name string
}

// TableColumnReference is a column qualified by a table name or alias.
type TableColumnReference struct {
	Table  string
	Column string
}

// TableName is a bare, delimited table name.
type TableName struct {
	Name string
}

// DataTypeSpecification describes a scalar type together with its size.
//
// MaxLength is in the unit reported by the catalog: bytes for wide character
// types, which is why ANSIPadding halves it. MaxLength of -1 means MAX.
type DataTypeSpecification struct {
	Type        DataType
	MaxLength   int
	Precision   int
	Scale       int
	Nullable    bool
	ANSIPadding bool
}

// ParameterDefinition declares a procedure parameter.
type ParameterDefinition struct {
	Name    string
	Type    DataTypeSpecification
	Default Expression // optional
	Output  bool
}

// FunctionCall invokes a function by its undelimited name.
type FunctionCall struct {
	Name      string
	Arguments []Expression
}

// VariableDefinition declares a local variable and its type.
type VariableDefinition struct {
	Name string
	Type DataTypeSpecification
}

// VariableName names a local variable. The dialect prefix is added when missing.
type VariableName struct {
	Name string
}

// VariableReference uses a local variable inside a statement.
type VariableReference struct {
	Name string
}

// Assignment sets a target to a value, as in UPDATE ... SET.
type Assignment struct {
	Target Expression
	Value  Expression
}

func (Alias) expressionNode()                 {}
func (ColumnName) expressionNode()            {}
func (Comment) expressionNode()               {}
func (Condition) expressionNode()             {}
func (ConditionList) expressionNode()         {}
func (DatabaseName) expressionNode()          {}
func (DatabaseOwnerName) expressionNode()     {}
func (Literal) expressionNode()               {}
func (ParameterName) expressionNode()         {}
func (ParameterReference) expressionNode()    {}
func (SelectListItem) expressionNode()        {}
func (TableReference) expressionNode()        {}
func (StoredProcedureName) expressionNode()   {}
func (TableColumnReference) expressionNode()  {}
func (TableName) expressionNode()             {}
func (DataTypeSpecification) expressionNode() {}
func (ParameterDefinition) expressionNode()   {}
func (FunctionCall) expressionNode()          {}
func (VariableDefinition) expressionNode()    {}
func (VariableName) expressionNode()          {}
func (VariableReference) expressionNode()     {}
func (Assignment) expressionNode()            {}

// isBlank reports whether an expression produces no SQL of its own:
// comments, empty literals, and select items wrapping either.
func isBlank(expr Expression) bool {
	switch e := derefExpression(expr).(type) {
	case nil:
		return true
	case Comment:
		return true
	case Literal:
		return strings.TrimSpace(e.Text) == ""
	case SelectListItem:
		return isBlank(e.Expression)
	}
	return false
}
