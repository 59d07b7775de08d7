package integration

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/crud"
	pgdialect "github.com/zoobzio/sqldom/postgres"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance.
type PostgresContainer struct {
	container *postgres.PostgresContainer
	conn      *pgx.Conn
}

// Exec executes a SQL statement.
func (pc *PostgresContainer) Exec(ctx context.Context, t *testing.T, sql string, args ...any) {
	t.Helper()
	_, err := pc.conn.Exec(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sql)
	}
}

// Query executes a query and returns rows.
func (pc *PostgresContainer) Query(ctx context.Context, t *testing.T, sql string, args ...any) pgx.Rows {
	t.Helper()
	rows, err := pc.conn.Query(ctx, sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, sql)
	}
	return rows
}

// setupSchema creates the Users and Posts tables.
func setupSchema(ctx context.Context, t *testing.T, pc *PostgresContainer) {
	t.Helper()

	pc.Exec(ctx, t, `DROP TABLE IF EXISTS "Posts", "Users"`)
	// SMALLINT so the generated soft delete can assign 0.
	pc.Exec(ctx, t, `
		CREATE TABLE "Users" (
			"Id" BIGSERIAL PRIMARY KEY,
			"UserName" VARCHAR(100) NOT NULL,
			"Email" VARCHAR(255) NOT NULL,
			"Age" INTEGER NOT NULL,
			"Deleted" SMALLINT NOT NULL
		)
	`)
	pc.Exec(ctx, t, `
		CREATE TABLE "Posts" (
			"Id" BIGSERIAL PRIMARY KEY,
			"UserId" BIGINT NOT NULL REFERENCES "Users"("Id"),
			"Title" VARCHAR(255) NOT NULL
		)
	`)
}

func pgUserArgs(u testUser) pgx.NamedArgs {
	deleted := 0
	if u.Deleted {
		deleted = 1
	}
	return pgx.NamedArgs{
		"Id":       u.ID,
		"UserName": u.UserName,
		"Email":    u.Email,
		"Age":      u.Age,
		"Deleted":  deleted,
	}
}

func pgScanUsers(t *testing.T, rows pgx.Rows) []testUser {
	t.Helper()
	defer rows.Close()

	var users []testUser
	for rows.Next() {
		var u testUser
		var deleted int16
		if err := rows.Scan(&u.ID, &u.UserName, &u.Email, &u.Age, &deleted); err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		u.Deleted = deleted != 0
		users = append(users, u)
	}
	require.NoError(t, rows.Err())
	return users
}

// TestIntegration_Statements runs every generated statement against PostgreSQL.
func TestIntegration_Statements(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupSchema(ctx, t, pc)

	// Procedures and lock hints are dropped for PostgreSQL.
	sqls := generateUsers(t, pgdialect.New(), crud.Options{Owner: "public", Procedures: true, NoLock: true, SoftDelete: true})
	assert.Contains(t, sqls[stmtList], `FROM "public"."Users"`)

	for _, u := range seedUsers {
		pc.Exec(ctx, t, sqls[stmtInsert], pgUserArgs(u))
	}
	users := pgScanUsers(t, pc.Query(ctx, t, sqls[stmtList]))
	require.Len(t, users, 3)

	charlie := users[2]
	charlie.Email = "charlie@example.org"
	charlie.Deleted = true
	pc.Exec(ctx, t, sqls[stmtUpdate], pgUserArgs(charlie))

	got := pgScanUsers(t, pc.Query(ctx, t, sqls[stmtGet], pgx.NamedArgs{"Id": charlie.ID}))
	require.Len(t, got, 1)
	assert.Equal(t, charlie, got[0])

	pc.Exec(ctx, t, sqls[stmtDelete], pgx.NamedArgs{"Id": charlie.ID})
	got = pgScanUsers(t, pc.Query(ctx, t, sqls[stmtGet], pgx.NamedArgs{"Id": charlie.ID}))
	require.Len(t, got, 1)
	assert.False(t, got[0].Deleted)
}

// TestIntegration_Join tests LEFT JOIN and grouped WHERE conditions against PostgreSQL.
func TestIntegration_Join(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pc := getPostgresContainer(t)
	setupSchema(ctx, t, pc)

	d := pgdialect.New()
	sqls := generateUsers(t, d, crud.Options{Owner: "public"})
	for _, u := range seedUsers {
		pc.Exec(ctx, t, sqls[stmtInsert], pgUserArgs(u))
	}
	pc.Exec(ctx, t, `INSERT INTO "Posts" ("UserId", "Title") VALUES (1, 'First Post'), (1, 'Second Post'), (2, 'Bobs Post')`)

	where := &sqldom.WhereClause{Conditions: []sqldom.ConditionList{
		{Condition: sqldom.Cmp(sqldom.TableCol("u", "Age"), sqldom.GE, sqldom.Param("MinAge")), Logic: sqldom.AND},
		{Condition: sqldom.Cmp(sqldom.TableCol("p", "Title"), sqldom.LIKE, sqldom.Param("Title")), Logic: sqldom.OR},
		{Condition: sqldom.Cmp(sqldom.TableCol("p", "Title"), sqldom.IS, sqldom.Lit("NULL"))},
	}}
	query, err := sqldom.String(d, sqldom.SelectStatement{
		Select: sqldom.SelectClause{
			Distinct: true,
			Items:    sqldom.Items(sqldom.TableCol("u", "UserName")),
		},
		From: sqldom.FromClause{
			Source: sqldom.Table("public", "Users").As("u"),
			Joins: []sqldom.JoinClause{{
				Left:        true,
				Table:       sqldom.Table("public", "Posts").As("p"),
				LeftColumn:  sqldom.TableCol("p", "UserId"),
				RightColumn: sqldom.TableCol("u", "Id"),
			}},
		},
		Where: where,
	})
	require.NoError(t, err)

	rows := pc.Query(ctx, t, query, pgx.NamedArgs{"MinAge": 26, "Title": "%Post"})
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.ElementsMatch(t, []string{"alice", "charlie"}, names)
}
