package mssql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/sqldom"
)

func TestNew(t *testing.T) {
	d := New()
	require.NotNil(t, d)
	assert.Equal(t, "mssql", d.Name())
}

func TestCapabilities(t *testing.T) {
	caps := New().Capabilities()
	assert.True(t, caps.StoredProcedures)
	assert.True(t, caps.VariableDeclarations)
	assert.True(t, caps.Top)
	assert.True(t, caps.LockHints)
}

func TestVocabulary(t *testing.T) {
	d := New()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"assignment", d.AssignmentOperator(), "="},
		{"open paren", d.OpenParenthesis(), "("},
		{"close paren", d.CloseParenthesis(), ")"},
		{"name start", d.ObjectNameStart(), "["},
		{"name end", d.ObjectNameEnd(), "]"},
		{"parameter prefix", d.ParameterPrefix(), "@"},
		{"select delimiter", d.SelectItemDelimiter(), ","},
		{"line comment", d.CommentLineDelimiter(), "--"},
		{"block start", d.CommentBlockStart(), "/*"},
		{"block end", d.CommentBlockEnd(), " */"},
		{"begin", d.BlockBegin(), "BEGIN"},
		{"end", d.BlockEnd(), "END"},
		{"body start", d.ProcedureBodyStart(), "AS"},
		{"insert", d.Insert(), "INSERT INTO"},
		{"select", d.Select(), "SELECT"},
		{"delete", d.Delete(), "DELETE"},
		{"update", d.Update(), "UPDATE"},
		{"from", d.From(), "FROM"},
		{"join on", d.JoinOn(), "ON"},
		{"inner join", d.InnerJoin(), "INNER JOIN"},
		{"left join", d.LeftJoin(), "LEFT JOIN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
	assert.NotEqual(t, d.CommentBlockStart(), d.CommentBlockEnd())
}

func TestOptionalConstructs(t *testing.T) {
	d := New()

	top, err := d.Top(10)
	require.NoError(t, err)
	assert.Equal(t, "TOP 10", top)

	hint, err := d.LockHint()
	require.NoError(t, err)
	assert.Equal(t, "WITH (NOLOCK)", hint)

	declare, err := d.Declare()
	require.NoError(t, err)
	assert.Equal(t, "DECLARE", declare)

	size, err := d.MaxSize()
	require.NoError(t, err)
	assert.Equal(t, "MAX", size)
}

func TestCreateProcedure(t *testing.T) {
	d := New()
	tests := []struct {
		owner, name, want string
	}{
		{"dbo", "Users_Get", "CREATE PROCEDURE [dbo].[Users_Get]"},
		{"", "Users_Get", "CREATE PROCEDURE [Users_Get]"},
		{"dbo", "odd]name", "CREATE PROCEDURE [dbo].[odd]]name]"},
	}
	for _, tt := range tests {
		got, err := d.CreateProcedure(tt.owner, tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestComparisonOperator(t *testing.T) {
	d := New()
	tests := []struct {
		op   sqldom.Operator
		want string
	}{
		{sqldom.EQ, "="},
		{sqldom.NE, "<>"},
		{sqldom.GT, ">"},
		{sqldom.GE, ">="},
		{sqldom.LT, "<"},
		{sqldom.LE, "<="},
		{sqldom.LIKE, "LIKE"},
		{sqldom.NotLike, "NOT LIKE"},
		{sqldom.IS, "IS"},
		{sqldom.IsNot, "IS NOT"},
	}
	for _, tt := range tests {
		got, err := d.ComparisonOperator(tt.op)
		require.NoError(t, err, tt.op)
		assert.Equal(t, tt.want, got)
	}

	_, err := d.ComparisonOperator(sqldom.Operator("~"))
	var unsupported sqldom.UnsupportedConstructError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "mssql", unsupported.Dialect)
}

func TestLogicalOperator(t *testing.T) {
	d := New()

	and, err := d.LogicalOperator(sqldom.AND)
	require.NoError(t, err)
	assert.Equal(t, "AND", and)

	or, err := d.LogicalOperator(sqldom.OR)
	require.NoError(t, err)
	assert.Equal(t, "OR", or)

	_, err = d.LogicalOperator(sqldom.LogicNone)
	assert.Error(t, err)
}

func TestDataTypeName(t *testing.T) {
	d := New()
	for dt, want := range typeNames {
		got, err := d.DataTypeName(dt)
		require.NoError(t, err, dt)
		assert.Equal(t, want, got)
	}
	got, err := d.DataTypeName(sqldom.SysName)
	require.NoError(t, err)
	assert.Equal(t, "NVARCHAR", got)

	_, err = d.DataTypeName(sqldom.DataType("geography"))
	assert.EqualError(t, err, `mssql: data type "geography" is not supported`)
}

func TestRender_ProcedureText(t *testing.T) {
	proc := sqldom.CreateProcedureStatement{
		Owner: "dbo",
		Name:  "Users_Get",
		Parameters: []sqldom.ParameterDefinition{
			{Name: "Id", Type: sqldom.Type(sqldom.Int)},
			{Name: "@Name", Type: sqldom.Sized(sqldom.NVarChar, sqldom.MaxLength), Default: sqldom.Lit("NULL"), Output: true},
		},
		Body: []sqldom.Statement{
			sqldom.SelectStatement{
				Select: sqldom.SelectClause{Top: 1, Items: sqldom.Items(sqldom.Col("Id"), sqldom.Col("Name"))},
				From:   sqldom.FromClause{Source: sqldom.Table("dbo", "Users"), NoLock: true},
				Where:  sqldom.Where(sqldom.AND, sqldom.Eq(sqldom.Col("Id"), sqldom.Param("Id"))),
			},
		},
	}

	got, err := sqldom.String(New(), proc)
	require.NoError(t, err)

	want := "CREATE PROCEDURE [dbo].[Users_Get]\n" +
		"\t@Id INT,\n" +
		"\t@Name NVARCHAR(MAX) = NULL OUTPUT\n" +
		"AS\n" +
		"BEGIN\n" +
		"\tSELECT TOP 1\n" +
		"\t\t[Id],\n" +
		"\t\t[Name]\n" +
		"\tFROM [dbo].[Users] WITH (NOLOCK)\n" +
		"\tWHERE\n" +
		"\t\t[Id] = @Id\n" +
		"\n" +
		"END\n"
	assert.Equal(t, want, got)
}
