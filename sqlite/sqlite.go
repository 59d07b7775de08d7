// Package sqlite provides the SQLite dialect for sqldom.
//
// Type names map to SQLite storage affinities. Parameters render as @name,
// which database/sql drivers bind from sql.Named arguments.
package sqlite

import (
	"fmt"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/internal/render"
)

// Name identifies the dialect.
const Name = "sqlite"

// Dialect implements sqldom.Dialect for SQLite.
type Dialect struct {
	render.ANSI
}

// New creates a new SQLite dialect.
func New() *Dialect {
	return &Dialect{}
}

var _ sqldom.Dialect = (*Dialect)(nil)

// Name returns "sqlite".
func (d *Dialect) Name() string { return Name }

// Capabilities returns the optional constructs SQLite supports: none.
func (d *Dialect) Capabilities() sqldom.Capabilities {
	return sqldom.Capabilities{}
}

// ObjectNameStart returns the double quote SQLite delimits identifiers with.
func (d *Dialect) ObjectNameStart() string { return `"` }

// ObjectNameEnd returns the closing double quote.
func (d *Dialect) ObjectNameEnd() string { return `"` }

// ParameterPrefix returns "@", bound by name from sql.Named.
func (d *Dialect) ParameterPrefix() string { return "@" }

// ProcedureBodyStart returns AS. Unused while CreateProcedure is rejected.
func (d *Dialect) ProcedureBodyStart() string { return "AS" }

// Output marks an output parameter.
func (d *Dialect) Output() string { return "OUTPUT" }

// Top always fails: SQLite limits rows with LIMIT.
func (d *Dialect) Top(int) (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "TOP", "use LIMIT in a literal statement")
}

// LockHint always fails: SQLite locks whole databases.
func (d *Dialect) LockHint() (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "NOLOCK")
}

// Declare always fails: SQLite has no variables.
func (d *Dialect) Declare() (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "DECLARE")
}

// MaxSize always fails: SQLite does not enforce lengths.
func (d *Dialect) MaxSize() (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "MAX length", "SQLite ignores lengths; leave MaxLength at 0")
}

// CreateProcedure always fails: SQLite has no stored procedures.
func (d *Dialect) CreateProcedure(string, string) (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "CREATE PROCEDURE", "render the inner statements directly")
}

// ComparisonOperator returns the SQLite spelling of op.
func (d *Dialect) ComparisonOperator(op sqldom.Operator) (string, error) {
	switch op {
	case sqldom.EQ:
		return "=", nil
	case sqldom.NE:
		return "!=", nil
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
	sqldom.BigInt:           "INTEGER",
	sqldom.Binary:           "BLOB",
	sqldom.Bit:              "INTEGER",
	sqldom.Char:             "TEXT",
	sqldom.Date:             "TEXT",
	sqldom.DateTime:         "TEXT",
	sqldom.DateTime2:        "TEXT",
	sqldom.DateTimeOffset:   "TEXT",
	sqldom.Decimal:          "NUMERIC",
	sqldom.Float:            "REAL",
	sqldom.Image:            "BLOB",
	sqldom.Int:              "INTEGER",
	sqldom.Money:            "NUMERIC",
	sqldom.NChar:            "TEXT",
	sqldom.NText:            "TEXT",
	sqldom.NVarChar:         "TEXT",
	sqldom.Real:             "REAL",
	sqldom.SmallDateTime:    "TEXT",
	sqldom.SmallInt:         "INTEGER",
	sqldom.SmallMoney:       "NUMERIC",
	sqldom.SysName:          "TEXT",
	sqldom.Text:             "TEXT",
	sqldom.Time:             "TEXT",
	sqldom.Timestamp:        "BLOB",
	sqldom.TinyInt:          "INTEGER",
	sqldom.UniqueIdentifier: "TEXT",
	sqldom.VarBinary:        "BLOB",
	sqldom.VarChar:          "TEXT",
	sqldom.XML:              "TEXT",
}

// DataTypeName returns the type name carrying the affinity of t.
func (d *Dialect) DataTypeName(t sqldom.DataType) (string, error) {
	if name, ok := typeNames[t]; ok {
		return name, nil
	}
	return "", render.NewUnsupportedConstructError(Name, fmt.Sprintf("data type %q", string(t)))
}
