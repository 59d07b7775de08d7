package crud

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/sqldom"
)

// ErrUnsupportedType is returned for column types with no sqldom.DataType.
var ErrUnsupportedType = errors.New("unsupported column type")

// columnTypes maps schema type names, including common PostgreSQL and SQLite
// spellings, to sqldom data types.
var columnTypes = map[string]sqldom.DataType{
	"bigint":            sqldom.BigInt,
	"int8":              sqldom.BigInt,
	"int":               sqldom.Int,
	"integer":           sqldom.Int,
	"int4":              sqldom.Int,
	"smallint":          sqldom.SmallInt,
	"int2":              sqldom.SmallInt,
	"tinyint":           sqldom.TinyInt,
	"bit":               sqldom.Bit,
	"bool":              sqldom.Bit,
	"boolean":           sqldom.Bit,
	"char":              sqldom.Char,
	"character":         sqldom.Char,
	"varchar":           sqldom.VarChar,
	"character varying": sqldom.VarChar,
	"nchar":             sqldom.NChar,
	"nvarchar":          sqldom.NVarChar,
	"text":              sqldom.Text,
	"ntext":             sqldom.NText,
	"sysname":           sqldom.SysName,
	"date":              sqldom.Date,
	"datetime":          sqldom.DateTime,
	"datetime2":         sqldom.DateTime2,
	"timestamp":         sqldom.DateTime2,
	"smalldatetime":     sqldom.SmallDateTime,
	"datetimeoffset":    sqldom.DateTimeOffset,
	"timestamptz":       sqldom.DateTimeOffset,
	"time":              sqldom.Time,
	"rowversion":        sqldom.Timestamp,
	"decimal":           sqldom.Decimal,
	"numeric":           sqldom.Decimal,
	"money":             sqldom.Money,
	"smallmoney":        sqldom.SmallMoney,
	"uuid":              sqldom.UniqueIdentifier,
	"uniqueidentifier":  sqldom.UniqueIdentifier,
	"binary":            sqldom.Binary,
	"varbinary":         sqldom.VarBinary,
	"bytea":             sqldom.Image,
	"blob":              sqldom.Image,
	"image":             sqldom.Image,
	"xml":               sqldom.XML,
	"sql_variant":       sqldom.Variant,
}

// floatTypes are rejected: FLOAT and REAL render with a (precision,scale)
// suffix that SQL Server and PostgreSQL refuse.
var floatTypes = map[string]bool{
	"float":            true,
	"double":           true,
	"double precision": true,
	"real":             true,
}

// sysNameBytes is the catalog width of sysname, stored as ANSI-padded bytes.
const sysNameBytes = 256

// Sizes SQL Server assumes when a declaration omits them.
const (
	defaultWideLength       = 1
	defaultDecimalPrecision = 18
)

// ParseType converts a schema column type such as "nvarchar(100)",
// "decimal(10,2)" or "varchar(max)" into a data type specification.
// JSON types become NVARCHAR(MAX).
func ParseType(raw string) (sqldom.DataTypeSpecification, error) {
	name, args, err := splitType(raw)
	if err != nil {
		return sqldom.DataTypeSpecification{}, err
	}

	if name == "json" || name == "jsonb" {
		return sqldom.Sized(sqldom.NVarChar, sqldom.MaxLength), nil
	}
	if floatTypes[name] {
		return sqldom.DataTypeSpecification{}, fmt.Errorf("%w %q: use decimal(precision,scale)", ErrUnsupportedType, raw)
	}
	dt, ok := columnTypes[name]
	if !ok {
		return sqldom.DataTypeSpecification{}, fmt.Errorf("%w %q", ErrUnsupportedType, raw)
	}

	spec := sqldom.Type(dt)
	if len(args) == 0 {
		return withDefaultSize(spec), nil
	}
	switch dt {
	case sqldom.SysName:
		return spec, fmt.Errorf("type %q: sysname takes no length", raw)
	case sqldom.Decimal:
		if len(args) > 2 {
			return spec, fmt.Errorf("type %q: expected (precision[,scale])", raw)
		}
		if spec.Precision, err = parseSize(raw, args[0], false); err != nil {
			return spec, err
		}
		if len(args) == 2 {
			if spec.Scale, err = parseSize(raw, args[1], false); err != nil {
				return spec, err
			}
		}
	default:
		if len(args) > 1 {
			return spec, fmt.Errorf("type %q: expected a single length", raw)
		}
		if spec.MaxLength, err = parseSize(raw, args[0], true); err != nil {
			return spec, err
		}
	}
	return spec, nil
}

// withDefaultSize fills in the size of types whose unsized form would render
// as a zero length.
func withDefaultSize(spec sqldom.DataTypeSpecification) sqldom.DataTypeSpecification {
	switch spec.Type {
	case sqldom.SysName:
		spec.MaxLength = sysNameBytes
		spec.ANSIPadding = true
	case sqldom.NVarChar, sqldom.NChar:
		spec.MaxLength = defaultWideLength
	case sqldom.Decimal:
		spec.Precision = defaultDecimalPrecision
	}
	return spec
}

// splitType separates "name(a, b)" into a lowercase name and its arguments.
func splitType(raw string) (string, []string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", nil, fmt.Errorf("%w: empty type", ErrUnsupportedType)
	}
	if strings.HasSuffix(s, "[]") {
		return "", nil, fmt.Errorf("%w %q: arrays are not supported", ErrUnsupportedType, raw)
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return s, nil, nil
	}
	if !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("type %q: unbalanced parenthesis", raw)
	}
	name := strings.TrimSpace(s[:open])
	parts := strings.Split(s[open+1:len(s)-1], ",")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		args = append(args, strings.TrimSpace(p))
	}
	return name, args, nil
}

func parseSize(raw, arg string, allowMax bool) (int, error) {
	if allowMax && arg == "max" {
		return sqldom.MaxLength, nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("type %q: invalid size %q", raw, arg)
	}
	return n, nil
}
