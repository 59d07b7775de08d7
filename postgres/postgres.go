// Package postgres provides the PostgreSQL dialect for sqldom.
//
// Parameters render as @name, the placeholder form pgx.NamedArgs binds.
// PostgreSQL has no TOP, table lock hints, T-SQL procedures or DECLARE outside
// PL/pgSQL, so those constructs are rejected.
package postgres

import (
	"fmt"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/internal/render"
)

// Name identifies the dialect.
const Name = "postgres"

// Dialect implements sqldom.Dialect for PostgreSQL.
type Dialect struct {
	render.ANSI
}

// New creates a new PostgreSQL dialect.
func New() *Dialect {
	return &Dialect{}
}

var _ sqldom.Dialect = (*Dialect)(nil)

// Name returns "postgres".
func (d *Dialect) Name() string { return Name }

// Capabilities returns the optional constructs PostgreSQL supports through
// this dialect: none.
func (d *Dialect) Capabilities() sqldom.Capabilities {
	return sqldom.Capabilities{}
}

// ObjectNameStart returns the double quote PostgreSQL delimits identifiers with.
func (d *Dialect) ObjectNameStart() string { return `"` }

// ObjectNameEnd returns the closing double quote.
func (d *Dialect) ObjectNameEnd() string { return `"` }

// ParameterPrefix returns "@", the placeholder pgx.NamedArgs rewrites.
func (d *Dialect) ParameterPrefix() string { return "@" }

// ProcedureBodyStart returns AS. Unused while CreateProcedure is rejected.
func (d *Dialect) ProcedureBodyStart() string { return "AS" }

// Output marks an output parameter.
func (d *Dialect) Output() string { return "OUT" }

// Top always fails: PostgreSQL limits rows with LIMIT.
func (d *Dialect) Top(int) (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "TOP", "use LIMIT in a literal statement")
}

// LockHint always fails: PostgreSQL has no table lock hints.
func (d *Dialect) LockHint() (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "NOLOCK", "PostgreSQL readers never block on writers")
}

// Declare always fails outside PL/pgSQL.
func (d *Dialect) Declare() (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "DECLARE", "variables exist only inside PL/pgSQL blocks")
}

// MaxSize always fails: PostgreSQL has no (MAX) length.
func (d *Dialect) MaxSize() (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "MAX length", "use text or bytea")
}

// CreateProcedure always fails: T-SQL procedure bodies do not translate.
func (d *Dialect) CreateProcedure(string, string) (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "CREATE PROCEDURE", "render the inner statements directly")
}

// ComparisonOperator returns the PostgreSQL spelling of op.
func (d *Dialect) ComparisonOperator(op sqldom.Operator) (string, error) {
	switch op {
	case sqldom.EQ:
		return "=", nil
	case sqldom.NE:
		return "<>", nil
	case sqldom.GT:
		return ">", nil
	case sqldom.GE:
		return ">=", nil
	case sqldom.LT:
		return "<", nil
	case sqldom.LE:
		return "<=", nil
	case sqldom.LIKE:
		return "LIKE", nil
	case sqldom.NotLike:
		return "NOT LIKE", nil
	case sqldom.IS:
		return "IS", nil
	case sqldom.IsNot:
		return "IS NOT", nil
	default:
		return "", render.NewUnsupportedConstructError(Name, fmt.Sprintf("operator %q", string(op)))
	}
}

// LogicalOperator returns AND or OR.
func (d *Dialect) LogicalOperator(op sqldom.LogicOperator) (string, error) {
	switch op {
	case sqldom.AND:
		return "AND", nil
	case sqldom.OR:
		return "OR", nil
	default:
		return "", render.NewUnsupportedConstructError(Name, fmt.Sprintf("logical operator %q", string(op)))
	}
}

var typeNames = map[sqldom.DataType]string{
	sqldom.BigInt:           "BIGINT",
	sqldom.Bit:              "BOOLEAN",
	sqldom.Char:             "CHAR",
	sqldom.Date:             "DATE",
	sqldom.DateTime:         "TIMESTAMP",
	sqldom.DateTime2:        "TIMESTAMP",
	sqldom.DateTimeOffset:   "TIMESTAMPTZ",
	sqldom.Decimal:          "NUMERIC",
	sqldom.Float:            "FLOAT",
	sqldom.Image:            "BYTEA",
	sqldom.Int:              "INTEGER",
	sqldom.Money:            "MONEY",
	sqldom.NChar:            "CHAR",
	sqldom.NText:            "TEXT",
	sqldom.NVarChar:         "VARCHAR",
	sqldom.Real:             "REAL",
	sqldom.SmallDateTime:    "TIMESTAMP",
	sqldom.SmallInt:         "SMALLINT",
	sqldom.SmallMoney:       "MONEY",
	sqldom.SysName:          "VARCHAR",
	sqldom.Text:             "TEXT",
	sqldom.Time:             "TIME",
	sqldom.TinyInt:          "SMALLINT",
	sqldom.UniqueIdentifier: "UUID",
	sqldom.VarChar:          "VARCHAR",
	sqldom.XML:              "XML",
}

// unsupportedTypes carry a replacement hint.
var unsupportedTypes = map[sqldom.DataType]string{
	sqldom.Binary:    "bytea takes no length; use image",
	sqldom.VarBinary: "bytea takes no length; use image",
	sqldom.Timestamp: "row versions have no PostgreSQL equivalent",
	sqldom.Variant:   "use jsonb in a literal statement",
}

// DataTypeName returns the PostgreSQL name of t, with a hint for types
// that have no equivalent.
func (d *Dialect) DataTypeName(t sqldom.DataType) (string, error) {
	if name, ok := typeNames[t]; ok {
		return name, nil
	}
	construct := fmt.Sprintf("data type %q", string(t))
	if hint, ok := unsupportedTypes[t]; ok {
		return "", render.NewUnsupportedConstructError(Name, construct, hint)
	}
	return "", render.NewUnsupportedConstructError(Name, construct)
}
