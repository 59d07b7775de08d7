package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/mssql"
	"github.com/zoobzio/sqldom/postgres"
)

const testSchema = `project: shop
tables:
  - name: Users
    columns:
      - name: Id
        type: bigint
      - name: Email
        type: nvarchar(255)
`

func TestLookupDialect(t *testing.T) {
	for _, name := range []string{"mssql", "SQLServer", " tsql ", "postgres", "pg", "sqlite3", "mysql", "mariadb"} {
		d, err := lookupDialect(name)
		require.NoError(t, err, name)
		assert.NotNil(t, d)
	}

	_, err := lookupDialect("oracle")
	assert.ErrorContains(t, err, `unknown dialect "oracle"`)
	assert.ErrorContains(t, err, "mariadb, mssql, postgres, sqlite")
}

func TestSeparate(t *testing.T) {
	stmts := []sqldom.Statement{
		sqldom.CommentStatement{Lines: []string{"Users"}},
		sqldom.CreateProcedureStatement{Name: "Users_List"},
	}

	got := separate(mssql.New(), stmts)
	require.Len(t, got, 4)
	assert.Equal(t, sqldom.LiteralStatement{}, got[1])
	assert.Equal(t, sqldom.LiteralStatement{Text: "GO"}, got[3])

	assert.Len(t, separate(postgres.New(), stmts), 3)
}

func TestOpenOutput(t *testing.T) {
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	out, closeOut, err := openOutput(rootCmd, "-")
	require.NoError(t, err)
	assert.Same(t, &stdout, out)
	assert.NoError(t, closeOut())

	path := filepath.Join(t.TempDir(), "out.sql")
	out, closeOut, err = openOutput(rootCmd, path)
	require.NoError(t, err)
	_, err = out.Write([]byte("SELECT 1\n"))
	require.NoError(t, err)
	require.NoError(t, closeOut())
	assert.ErrorIs(t, closeOut(), os.ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1\n", string(data))
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(schema, []byte(testSchema), 0o600))
	output := filepath.Join(dir, "crud.sql")

	rootCmd.SetArgs([]string{"generate", "--schema", schema, "--output", output, "--dialect", "mssql", "--owner", "dbo"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	sql := string(data)
	assert.Contains(t, sql, "CREATE PROCEDURE [dbo].[Users_Get]\n")
	assert.Contains(t, sql, "CREATE PROCEDURE [dbo].[Users_Delete]\n")
	assert.Equal(t, 5, strings.Count(sql, "\nGO\n"))
}

func TestDialectsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"dialects"})
	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[2], "mssql"))
	assert.Contains(t, lines[2], "yes")
	assert.NotContains(t, lines[3], "yes")
}
