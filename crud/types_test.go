package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/mssql"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		raw  string
		want sqldom.DataTypeSpecification
	}{
		{"int", sqldom.Type(sqldom.Int)},
		{"  BIGINT ", sqldom.Type(sqldom.BigInt)},
		{"boolean", sqldom.Type(sqldom.Bit)},
		{"nvarchar(100)", sqldom.Sized(sqldom.NVarChar, 100)},
		{"varchar(max)", sqldom.Sized(sqldom.VarChar, sqldom.MaxLength)},
		{"VarBinary( MAX )", sqldom.Sized(sqldom.VarBinary, sqldom.MaxLength)},
		{"decimal(10,2)", sqldom.Numeric(sqldom.Decimal, 10, 2)},
		{"numeric(18)", sqldom.Numeric(sqldom.Decimal, 18, 0)},
		{"character varying(40)", sqldom.Sized(sqldom.VarChar, 40)},
		{"timestamp", sqldom.Type(sqldom.DateTime2)},
		{"timestamptz", sqldom.Type(sqldom.DateTimeOffset)},
		{"uuid", sqldom.Type(sqldom.UniqueIdentifier)},
		{"jsonb", sqldom.Sized(sqldom.NVarChar, sqldom.MaxLength)},
		{"sysname", sqldom.DataTypeSpecification{Type: sqldom.SysName, MaxLength: 256, Nullable: true, ANSIPadding: true}},
		{"nvarchar", sqldom.Sized(sqldom.NVarChar, 1)},
		{"nchar", sqldom.Sized(sqldom.NChar, 1)},
		{"decimal", sqldom.Numeric(sqldom.Decimal, 18, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseType(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseType_Errors(t *testing.T) {
	tests := []struct {
		raw string
		msg string
	}{
		{"", "empty type"},
		{"text[]", "arrays are not supported"},
		{"geometry", `unsupported column type "geometry"`},
		{"varchar(10", "unbalanced parenthesis"},
		{"varchar(ten)", `invalid size "ten"`},
		{"decimal(max)", `invalid size "max"`},
		{"varchar(1,2)", "expected a single length"},
		{"decimal(1,2,3)", "expected (precision[,scale])"},
		{"sysname(10)", "sysname takes no length"},
		{"float", `unsupported column type "float": use decimal(precision,scale)`},
		{"real", "use decimal(precision,scale)"},
		{"double precision", "use decimal(precision,scale)"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseType(tt.raw)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestParseType_UnsizedRendersValidSQL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"sysname", "NVARCHAR(128)"},
		{"nvarchar", "NVARCHAR(1)"},
		{"nchar", "NCHAR(1)"},
		{"decimal", "DECIMAL(18,0)"},
		{"varchar", "VARCHAR"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			spec, err := ParseType(tt.raw)
			require.NoError(t, err)
			buf := sqldom.NewBufferSink()
			require.NoError(t, sqldom.New(mssql.New(), buf).RenderExpression(spec))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
