package render

// ANSI supplies the keywords and punctuation every supported dialect shares.
// Dialects embed it and override what differs.
type ANSI struct{}

// AssignmentOperator returns "=" for SET and initializers.
func (ANSI) AssignmentOperator() string { return "=" }

// OpenParenthesis returns "(".
func (ANSI) OpenParenthesis() string { return "(" }

// CloseParenthesis returns ")".
func (ANSI) CloseParenthesis() string { return ")" }

// SelectItemDelimiter returns the separator written after each projected item.
func (ANSI) SelectItemDelimiter() string { return "," }

// ListDelimiter returns the separator for column, value and parameter lists.
func (ANSI) ListDelimiter() string { return "," }

// CommentLineDelimiter returns the single-line comment marker.
func (ANSI) CommentLineDelimiter() string { return "--" }

// CommentBlockStart opens a multi-line comment.
func (ANSI) CommentBlockStart() string { return "/*" }

// CommentBlockLinePrefix is written before each line inside a block comment.
func (ANSI) CommentBlockLinePrefix() string { return " * " }

// CommentBlockEnd closes a multi-line comment.
func (ANSI) CommentBlockEnd() string { return " */" }

// BlockBegin opens a statement block such as a procedure body.
func (ANSI) BlockBegin() string { return "BEGIN" }

// BlockEnd closes a statement block.
func (ANSI) BlockEnd() string { return "END" }

// Insert returns the INSERT keyword pair.
func (ANSI) Insert() string { return "INSERT INTO" }

// Values returns VALUES.
func (ANSI) Values() string { return "VALUES" }

// Select returns SELECT.
func (ANSI) Select() string { return "SELECT" }

// Distinct returns DISTINCT.
func (ANSI) Distinct() string { return "DISTINCT" }

// Delete returns DELETE.
func (ANSI) Delete() string { return "DELETE" }

// Update returns UPDATE.
func (ANSI) Update() string { return "UPDATE" }

// Set returns SET.
func (ANSI) Set() string { return "SET" }

// From returns FROM.
func (ANSI) From() string { return "FROM" }

// Where returns WHERE.
func (ANSI) Where() string { return "WHERE" }

// As returns the alias keyword.
func (ANSI) As() string { return "AS" }

// JoinOn returns the keyword introducing a join condition.
func (ANSI) JoinOn() string { return "ON" }

// InnerJoin returns INNER JOIN.
func (ANSI) InnerJoin() string { return "INNER JOIN" }

// LeftJoin returns LEFT JOIN.
func (ANSI) LeftJoin() string { return "LEFT JOIN" }
