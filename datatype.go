package sqldom

// DataType identifies a SQL scalar type. Dialects map it to their own type name.
type DataType string

const (
	BigInt           DataType = "bigint"
	Binary           DataType = "binary"
	Bit              DataType = "bit"
	Char             DataType = "char"
	Date             DataType = "date"
	DateTime         DataType = "datetime"
	DateTime2        DataType = "datetime2"
	DateTimeOffset   DataType = "datetimeoffset"
	Decimal          DataType = "decimal"
	Float            DataType = "float"
	Image            DataType = "image"
	Int              DataType = "int"
	Money            DataType = "money"
	NChar            DataType = "nchar"
	NText            DataType = "ntext"
	NVarChar         DataType = "nvarchar"
	Real             DataType = "real"
	SmallDateTime    DataType = "smalldatetime"
	SmallInt         DataType = "smallint"
	SmallMoney       DataType = "smallmoney"
	SysName          DataType = "sysname"
	Text             DataType = "text"
	Time             DataType = "time"
	Timestamp        DataType = "timestamp"
	TinyInt          DataType = "tinyint"
	UniqueIdentifier DataType = "uniqueidentifier"
	VarBinary        DataType = "varbinary"
	VarChar          DataType = "varchar"
	Variant          DataType = "sql_variant"
	XML              DataType = "xml"
)

// MaxLength is the MaxLength value that renders as (MAX) on variable-length types.
const MaxLength = -1

// dateTimeOffsetPrecision is written for DATETIMEOFFSET whatever the stored scale.
const dateTimeOffsetPrecision = 7

// lengthCategory groups data types by how their size suffix is written.
type lengthCategory int

const (
	lengthNone      lengthCategory = iota // no suffix
	lengthOptional                        // (n) when n > 0
	lengthWide                            // (n), or (n/2) with ANSI padding
	lengthFixedTime                       // always (7)
	lengthPrecision                       // (precision,scale)
)

func (t DataType) lengthCategory() lengthCategory {
	switch t {
	case Binary, VarBinary, Char, VarChar, NChar:
		return lengthOptional
	case NVarChar, SysName:
		return lengthWide
	case DateTimeOffset:
		return lengthFixedTime
	case Decimal, Float, Real:
		return lengthPrecision
	default:
		return lengthNone
	}
}

func (t DataType) variableLength() bool {
	return t == VarBinary || t == VarChar || t == NVarChar
}
