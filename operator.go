package sqldom

// Operator represents a comparison between two expressions.
// The value is the portable spelling; dialects map it to their own.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	LIKE    Operator = "LIKE"
	NotLike Operator = "NOT LIKE"
	IS      Operator = "IS"
	IsNot   Operator = "IS NOT"
)

// LogicOperator is the connective written after a condition in a WHERE list.
type LogicOperator string

const (
	// LogicNone marks the last condition of a list; nothing is appended after it.
	LogicNone LogicOperator = ""
	AND       LogicOperator = "AND"
	OR        LogicOperator = "OR"
)
