// Package mssql provides the SQL Server (T-SQL) dialect for sqldom.
package mssql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/internal/render"
)

// Name identifies the dialect.
const Name = "mssql"

// Dialect implements sqldom.Dialect for SQL Server.
type Dialect struct {
	render.ANSI
}

// New creates a new SQL Server dialect.
func New() *Dialect {
	return &Dialect{}
}

var _ sqldom.Dialect = (*Dialect)(nil)

// Name returns "mssql".
func (d *Dialect) Name() string { return Name }

// Capabilities returns the optional constructs SQL Server supports: all of them.
func (d *Dialect) Capabilities() sqldom.Capabilities {
	return sqldom.Capabilities{
		StoredProcedures:     true,
		VariableDeclarations: true,
		Top:                  true,
		LockHints:            true,
	}
}

// ObjectNameStart returns the opening identifier bracket.
func (d *Dialect) ObjectNameStart() string { return "[" }

// ObjectNameEnd returns the closing identifier bracket.
func (d *Dialect) ObjectNameEnd() string { return "]" }

// ParameterPrefix returns "@", the T-SQL parameter and variable sigil.
func (d *Dialect) ParameterPrefix() string { return "@" }

// ProcedureBodyStart returns AS, written between the parameters and BEGIN.
func (d *Dialect) ProcedureBodyStart() string { return "AS" }

// Output marks an output parameter.
func (d *Dialect) Output() string { return "OUTPUT" }

// Top returns TOP n.
func (d *Dialect) Top(n int) (string, error) {
	return "TOP " + strconv.Itoa(n), nil
}

// LockHint returns the table hint that reads without shared locks.
func (d *Dialect) LockHint() (string, error) {
	return "WITH (NOLOCK)", nil
}

// Declare returns DECLARE.
func (d *Dialect) Declare() (string, error) { return "DECLARE", nil }

// MaxSize returns MAX for unbounded variable-length types.
func (d *Dialect) MaxSize() (string, error) { return "MAX", nil }

// quoteIdentifier brackets a name, escaping embedded closing brackets.
func (d *Dialect) quoteIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

// CreateProcedure returns CREATE PROCEDURE [owner].[name].
func (d *Dialect) CreateProcedure(owner, name string) (string, error) {
	if owner == "" {
		return "CREATE PROCEDURE " + d.quoteIdentifier(name), nil
	}
	return "CREATE PROCEDURE " + d.quoteIdentifier(owner) + "." + d.quoteIdentifier(name), nil
}

// ComparisonOperator returns the T-SQL spelling of op.
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
	sqldom.Bit:              "BIT",
	sqldom.Char:             "CHAR",
	sqldom.Date:             "DATE",
	sqldom.DateTime:         "DATETIME",
	sqldom.DateTime2:        "DATETIME2",
	sqldom.DateTimeOffset:   "DATETIMEOFFSET",
	sqldom.Decimal:          "DECIMAL",
	sqldom.Float:            "FLOAT",
	sqldom.Image:            "IMAGE",
	sqldom.Int:              "INT",
	sqldom.Money:            "MONEY",
	sqldom.NChar:            "NCHAR",
	sqldom.NText:            "NTEXT",
	sqldom.NVarChar:         "NVARCHAR",
	sqldom.Real:             "REAL",
	sqldom.SmallDateTime:    "SMALLDATETIME",
	sqldom.SmallInt:         "SMALLINT",
	sqldom.SmallMoney:       "SMALLMONEY",
	sqldom.SysName:          "NVARCHAR", // sysname is nvarchar(128) NOT NULL
	sqldom.Text:             "TEXT",
	sqldom.Time:             "TIME",
	sqldom.Timestamp:        "TIMESTAMP",
	sqldom.TinyInt:          "TINYINT",
	sqldom.UniqueIdentifier: "UNIQUEIDENTIFIER",
	sqldom.VarBinary:        "VARBINARY",
	sqldom.VarChar:          "VARCHAR",
	sqldom.Variant:          "SQL_VARIANT",
	sqldom.XML:              "XML",
}

// DataTypeName returns the T-SQL name of t. Sysname renders as NVARCHAR.
func (d *Dialect) DataTypeName(t sqldom.DataType) (string, error) {
	if name, ok := typeNames[t]; ok {
		return name, nil
	}
	return "", render.NewUnsupportedConstructError(Name, fmt.Sprintf("data type %q", string(t)))
}
