package sqldom

import "github.com/zoobzio/sqldom/internal/render"

// Capabilities describes the optional constructs a dialect can express.
type Capabilities = render.Capabilities

// Dialect supplies the vocabulary of one SQL dialect. Implementations hold no
// state; every method returns the same text for the same input.
//
// Methods taking an enum or an optional construct return an
// UnsupportedConstructError when the dialect cannot express it.
type Dialect interface {
	// Name identifies the dialect in errors and logs.
	Name() string
	Capabilities() Capabilities

	AssignmentOperator() string
	OpenParenthesis() string
	CloseParenthesis() string
	ObjectNameStart() string
	ObjectNameEnd() string
	ParameterPrefix() string
	SelectItemDelimiter() string
	ListDelimiter() string

	CommentLineDelimiter() string
	CommentBlockStart() string
	CommentBlockLinePrefix() string
	CommentBlockEnd() string

	BlockBegin() string
	BlockEnd() string
	ProcedureBodyStart() string
	Output() string

	Insert() string
	Values() string
	Select() string
	Distinct() string
	Top(n int) (string, error)
	Delete() string
	Update() string
	Set() string
	From() string
	Where() string
	As() string
	JoinOn() string
	InnerJoin() string
	LeftJoin() string
	LockHint() (string, error)
	Declare() (string, error)

	ComparisonOperator(op Operator) (string, error)
	LogicalOperator(op LogicOperator) (string, error)
	DataTypeName(t DataType) (string, error)
	MaxSize() (string, error)
	CreateProcedure(owner, name string) (string, error)
}
