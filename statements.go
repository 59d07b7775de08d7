package sqldom

// Statement is a top-level node rendered as one or more whole lines.
type Statement interface {
	statementNode()
}

// CommentStatement renders one line comment, or a comment block for several lines.
type CommentStatement struct {
	Lines []string
}

// LiteralStatement is written verbatim, one output line per line of text.
type LiteralStatement struct {
	Text string
}

// CreateProcedureStatement defines a stored procedure.
type CreateProcedureStatement struct {
	Owner      string
	Name       string
	Parameters []ParameterDefinition
	Body       []Statement
}

// InsertStatement inserts one row. Columns and Values pair up by position.
type InsertStatement struct {
	Table   TableReference
	Columns []Expression
	Values  []Expression
}

// UpdateStatement assigns new values to the rows matched by Where.
type UpdateStatement struct {
	Table       TableReference
	Assignments []Assignment
	Where       *WhereClause
}

// DeleteMode selects how a DeleteStatement removes rows.
type DeleteMode int

const (
	// HardDelete removes rows physically.
	HardDelete DeleteMode = iota
	// SoftDelete rewrites the statement into an UPDATE of the Deleted flag.
	SoftDelete
)

// String returns the mode name.
func (m DeleteMode) String() string {
	switch m {
	case HardDelete:
		return "hard"
	case SoftDelete:
		return "soft"
	default:
		return "unknown"
	}
}

// DeleteStatement removes rows, or marks them deleted in SoftDelete mode.
// A soft delete updates the bare source table: its alias and NOLOCK hint are
// not written, so Where must use unqualified columns, and joins are an error.
type DeleteStatement struct {
	From  FromClause
	Where *WhereClause
	Mode  DeleteMode
}

// SelectStatement is SELECT ... FROM ... [WHERE ...].
type SelectStatement struct {
	Select SelectClause
	From   FromClause
	Where  *WhereClause
}

// DeclareStatement declares a local variable, optionally initialising it.
type DeclareStatement struct {
	Variable VariableDefinition
	Value    Expression // optional
}

func (CommentStatement) statementNode()         {}
func (LiteralStatement) statementNode()         {}
func (CreateProcedureStatement) statementNode() {}
func (InsertStatement) statementNode()          {}
func (UpdateStatement) statementNode()          {}
func (DeleteStatement) statementNode()          {}
func (SelectStatement) statementNode()          {}
func (DeclareStatement) statementNode()         {}
