// Package mariadb provides the MariaDB dialect for sqldom.
//
// Parameters render as @name, which MariaDB reads as user variables set on the
// same connection. Procedure bodies in MariaDB use a different declaration
// syntax, so stored procedures and DECLARE are rejected.
package mariadb

import (
	"fmt"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/internal/render"
)

// Name identifies the dialect.
const Name = "mariadb"

// Dialect implements sqldom.Dialect for MariaDB.
type Dialect struct {
	render.ANSI
}

// New creates a new MariaDB dialect.
func New() *Dialect {
	return &Dialect{}
}

var _ sqldom.Dialect = (*Dialect)(nil)

// Name returns "mariadb".
func (d *Dialect) Name() string { return Name }

// Capabilities returns the optional constructs MariaDB supports: none.
func (d *Dialect) Capabilities() sqldom.Capabilities {
	return sqldom.Capabilities{}
}

// ObjectNameStart returns the backtick MariaDB delimits identifiers with.
func (d *Dialect) ObjectNameStart() string { return "`" }

// ObjectNameEnd returns the closing backtick.
func (d *Dialect) ObjectNameEnd() string { return "`" }

// ParameterPrefix returns "@", which reads a session user variable.
func (d *Dialect) ParameterPrefix() string { return "@" }

// ProcedureBodyStart is empty; MariaDB bodies follow the parameters directly.
func (d *Dialect) ProcedureBodyStart() string { return "" }

// Output marks an output parameter.
func (d *Dialect) Output() string { return "OUT" }

// Top always fails: MariaDB limits rows with LIMIT.
func (d *Dialect) Top(int) (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "TOP", "use LIMIT in a literal statement")
}

// LockHint always fails: MariaDB has no table lock hints.
func (d *Dialect) LockHint() (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "NOLOCK", "set the transaction isolation level instead")
}

// Declare always fails outside a compound statement.
func (d *Dialect) Declare() (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "DECLARE", "assign user variables with SET @name")
}

// MaxSize always fails: MariaDB has no (MAX) length.
func (d *Dialect) MaxSize() (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "MAX length", "use text or text-sized types")
}

// CreateProcedure always fails: procedure declarations use a different syntax.
func (d *Dialect) CreateProcedure(string, string) (string, error) {
	return "", render.NewUnsupportedConstructError(Name, "CREATE PROCEDURE", "render the inner statements directly")
}

// ComparisonOperator returns the MariaDB spelling of op.
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
	sqldom.Binary:           "BINARY",
	sqldom.Bit:              "BOOLEAN",
	sqldom.Char:             "CHAR",
	sqldom.Date:             "DATE",
	sqldom.DateTime:         "DATETIME",
	sqldom.DateTime2:        "DATETIME",
	sqldom.Decimal:          "DECIMAL",
	sqldom.Float:            "FLOAT",
	sqldom.Image:            "LONGBLOB",
	sqldom.Int:              "INT",
	sqldom.Money:            "DECIMAL(19,4)",
	sqldom.NChar:            "NCHAR",
	sqldom.NText:            "LONGTEXT",
	sqldom.NVarChar:         "NVARCHAR",
	sqldom.Real:             "DOUBLE",
	sqldom.SmallDateTime:    "DATETIME",
	sqldom.SmallInt:         "SMALLINT",
	sqldom.SmallMoney:       "DECIMAL(10,4)",
	sqldom.SysName:          "NVARCHAR",
	sqldom.Text:             "TEXT",
	sqldom.Time:             "TIME",
	sqldom.TinyInt:          "TINYINT UNSIGNED",
	sqldom.UniqueIdentifier: "UUID",
	sqldom.VarBinary:        "VARBINARY",
	sqldom.VarChar:          "VARCHAR",
	sqldom.XML:              "LONGTEXT",
}

var unsupportedTypes = map[sqldom.DataType]string{
	sqldom.DateTimeOffset: "fractional seconds stop at 6 digits; store UTC in datetime2",
	sqldom.Timestamp:      "row versions have no MariaDB equivalent",
	sqldom.Variant:        "use json in a literal statement",
}

// DataTypeName returns the MariaDB name of t, with a hint for types
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
