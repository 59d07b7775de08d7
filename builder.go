package sqldom

// Convenience constructors for the common node shapes. The node structs stay
// usable directly; these only save typing in generators and tests.

// Col returns a column name.
func Col(name string) ColumnName {
	return ColumnName{Name: name}
}

// TableCol returns a table-qualified column reference.
func TableCol(table, column string) TableColumnReference {
	return TableColumnReference{Table: table, Column: column}
}

// Table returns a reference to owner.name. Owner may be empty.
func Table(owner, name string) TableReference {
	return TableReference{Owner: owner, Name: name}
}

// As returns a copy of the reference with an alias.
func (t TableReference) As(alias string) TableReference {
	t.Alias = alias
	return t
}

// Param returns a parameter reference.
func Param(name string) ParameterReference {
	return ParameterReference{Name: name}
}

// Var returns a variable reference.
func Var(name string) VariableReference {
	return VariableReference{Name: name}
}

// Lit returns raw SQL text.
func Lit(text string) Literal {
	return Literal{Text: text}
}

// Eq compares left and right for equality.
func Eq(left, right Expression) Condition {
	return Condition{Left: left, Operator: EQ, Right: right}
}

// Cmp compares left and right with op.
func Cmp(left Expression, op Operator, right Expression) Condition {
	return Condition{Left: left, Operator: op, Right: right}
}

// Type returns a data type specification without length or precision.
func Type(t DataType) DataTypeSpecification {
	return DataTypeSpecification{Type: t, Nullable: true}
}

// Sized returns a data type specification with a maximum length. Use MaxLength
// for the unbounded form.
func Sized(t DataType, length int) DataTypeSpecification {
	return DataTypeSpecification{Type: t, MaxLength: length, Nullable: true}
}

// Numeric returns a data type specification with precision and scale.
func Numeric(t DataType, precision, scale int) DataTypeSpecification {
	return DataTypeSpecification{Type: t, Precision: precision, Scale: scale, Nullable: true}
}

// Set returns an assignment of value to the named column.
func Set(column string, value Expression) Assignment {
	return Assignment{Target: Col(column), Value: value}
}

// Items wraps expressions as select items with the default delimiter policy.
func Items(exprs ...Expression) []SelectItem {
	items := make([]SelectItem, len(exprs))
	for i, e := range exprs {
		items[i] = SelectItem{Expression: e}
	}
	return items
}

// Where joins conditions with logic. The last condition carries no connective.
// It returns nil when no conditions are given, which renders no WHERE clause.
func Where(logic LogicOperator, conds ...Expression) *WhereClause {
	if len(conds) == 0 {
		return nil
	}
	list := make([]ConditionList, len(conds))
	for i, c := range conds {
		list[i] = ConditionList{Condition: c, Logic: logic}
	}
	list[len(list)-1].Logic = LogicNone
	return &WhereClause{Conditions: list}
}
