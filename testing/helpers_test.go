package testing

import (
	"testing"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/mssql"
	"github.com/zoobzio/sqldom/postgres"
)

func TestTestProject(t *testing.T) {
	project := TestProject(t)
	if project == nil {
		t.Fatal("Expected non-nil project")
	}

	names := map[string]int{}
	for _, table := range project.Tables {
		names[table.Name] = len(table.Columns)
	}
	for _, want := range []string{"Users", "Posts", "Orders"} {
		if names[want] != 5 {
			t.Errorf("Expected table %s with 5 columns, got %d", want, names[want])
		}
	}
}

func TestRender(t *testing.T) {
	sql := Render(t, mssql.New(), sqldom.CommentStatement{Lines: []string{"hello"}})
	AssertSQL(t, "-- hello\n", sql)
}

func TestAssertSQL_Match(t *testing.T) {
	// This should not cause the test to fail
	AssertSQL(t, "SELECT\n\t[Id]\nFROM [Users]\n", "SELECT\n\t[Id]\nFROM [Users]\n")
}

func TestAssertUnsupported(t *testing.T) {
	_, err := sqldom.String(postgres.New(), sqldom.CreateProcedureStatement{Name: "P"})
	AssertUnsupported(t, err, "CREATE PROCEDURE")
}
