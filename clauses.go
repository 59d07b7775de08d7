package sqldom

// FromClause names the source table of a SELECT or DELETE and the tables joined to it.
type FromClause struct {
	Source TableReference
	NoLock bool
	Joins  []JoinClause
}

// JoinClause joins a table on a single column comparison.
type JoinClause struct {
	Left        bool // LEFT JOIN instead of INNER JOIN
	Table       TableReference
	NoLock      bool
	LeftColumn  TableColumnReference
	Operator    Operator
	RightColumn TableColumnReference
}

// SelectClause is the projection list. Distinct wins over Top when both are set.
type SelectClause struct {
	Distinct bool
	Top      int
	Items    []SelectItem
}

// SelectItem pairs a projected expression with its delimiter policy.
// NoDelimiter suppresses the trailing delimiter even when more items follow.
type SelectItem struct {
	Expression  Expression
	NoDelimiter bool
}

// WhereClause is an ordered list of conditions. An empty list renders nothing.
type WhereClause struct {
	Conditions []ConditionList
}
