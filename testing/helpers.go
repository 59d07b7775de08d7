// Package testing provides test utilities for sqldom.
package testing

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/sqldom"
)

// TestProject creates a dbml project for generator tests.
// Includes Users, Posts and Orders tables, each keyed by Id.
func TestProject(t testing.TB) *dbml.Project {
	t.Helper()

	project := dbml.NewProject("test")

	// Users table
	users := dbml.NewTable("Users")
	users.AddColumn(dbml.NewColumn("Id", "bigint"))
	users.AddColumn(dbml.NewColumn("UserName", "nvarchar(100)"))
	users.AddColumn(dbml.NewColumn("Email", "varchar(255)"))
	users.AddColumn(dbml.NewColumn("Active", "bit"))
	users.AddColumn(dbml.NewColumn("Deleted", "bit"))
	project.AddTable(users)

	// Posts table
	posts := dbml.NewTable("Posts")
	posts.AddColumn(dbml.NewColumn("Id", "bigint"))
	posts.AddColumn(dbml.NewColumn("UserId", "bigint"))
	posts.AddColumn(dbml.NewColumn("Title", "nvarchar(200)"))
	posts.AddColumn(dbml.NewColumn("Body", "nvarchar(max)"))
	posts.AddColumn(dbml.NewColumn("Deleted", "bit"))
	project.AddTable(posts)

	// Orders table
	orders := dbml.NewTable("Orders")
	orders.AddColumn(dbml.NewColumn("Id", "bigint"))
	orders.AddColumn(dbml.NewColumn("UserId", "bigint"))
	orders.AddColumn(dbml.NewColumn("Total", "decimal(10,2)"))
	orders.AddColumn(dbml.NewColumn("Placed", "datetime2"))
	orders.AddColumn(dbml.NewColumn("Deleted", "bit"))
	project.AddTable(orders)

	return project
}

// Render renders statements with d and fails the test on error.
func Render(t testing.TB, d sqldom.Dialect, stmts ...sqldom.Statement) string {
	t.Helper()
	sql, err := sqldom.String(d, stmts...)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return sql
}

// AssertSQL compares expected and actual SQL, reporting the first differing line.
func AssertSQL(t testing.TB, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}
	want := strings.Split(expected, "\n")
	got := strings.Split(actual, "\n")
	for i := 0; i < len(want) || i < len(got); i++ {
		var w, g string
		if i < len(want) {
			w = want[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if w != g {
			t.Errorf("SQL mismatch at line %d:\nExpected: %q\nActual:   %q\n\nFull expected:\n%s\nFull actual:\n%s",
				i+1, w, g, expected, actual)
			return
		}
	}
}

// AssertUnsupported fails the test unless err is an UnsupportedConstructError
// for construct.
func AssertUnsupported(t testing.TB, err error, construct string) {
	t.Helper()
	var unsupported sqldom.UnsupportedConstructError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Expected UnsupportedConstructError for %q, got: %v", construct, err)
	}
	if unsupported.Construct != construct {
		t.Errorf("Expected unsupported construct %q, got %q", construct, unsupported.Construct)
	}
}
