// Package crud generates data access statements from a dbml schema.
//
// For every table it emits a header comment followed by get-by-key, list,
// insert, update and delete statements. On dialects that support stored
// procedures, each statement can be wrapped in CREATE PROCEDURE.
package crud

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/sqldom"
)

// DefaultKeyColumn is the key column used when Options.KeyColumn is empty.
const DefaultKeyColumn = "id"

// ErrMissingKey is returned for a table that lacks the key column.
var ErrMissingKey = errors.New("key column not found")

// Options control what the generator emits.
type Options struct {
	// Owner qualifies every table and procedure name. Empty means unqualified.
	Owner string
	// KeyColumn names the column rows are addressed by, matched case-insensitively.
	KeyColumn string
	// SoftDelete turns deletes into an update of the Deleted column.
	SoftDelete bool
	// Procedures wraps each statement in CREATE PROCEDURE. It is ignored when
	// the dialect has no stored procedures.
	Procedures bool
	// NoLock adds the dialect's lock hint to reads. It is ignored when the
	// dialect has no lock hints.
	NoLock bool
}

// Generator builds statements for one dialect.
type Generator struct {
	dialect sqldom.Dialect
	opts    Options
}

// New creates a new generator.
func New(d sqldom.Dialect, opts Options) *Generator {
	if opts.KeyColumn == "" {
		opts.KeyColumn = DefaultKeyColumn
	}
	caps := d.Capabilities()
	opts.Procedures = opts.Procedures && caps.StoredProcedures
	opts.NoLock = opts.NoLock && caps.LockHints
	return &Generator{dialect: d, opts: opts}
}

// Options returns the effective options after capability checks.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate builds statements for every table in the project, ordered by table name.
func (g *Generator) Generate(project *dbml.Project) ([]sqldom.Statement, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	tables := make([]*dbml.Table, 0, len(project.Tables))
	for _, table := range project.Tables {
		tables = append(tables, table)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })

	var stmts []sqldom.Statement
	for _, table := range tables {
		generated, err := g.Table(table)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, generated...)
	}
	return stmts, nil
}

// column is a schema column resolved to its sqldom type.
type column struct {
	name string
	spec sqldom.DataTypeSpecification
}

// Table builds the statements for one table.
func (g *Generator) Table(table *dbml.Table) ([]sqldom.Statement, error) {
	if table == nil {
		return nil, fmt.Errorf("table cannot be nil")
	}

	var key *column
	var rest []column
	for _, c := range table.Columns {
		spec, err := ParseType(c.Type)
		if err != nil {
			return nil, fmt.Errorf("table %s column %s: %w", table.Name, c.Name, err)
		}
		col := column{name: c.Name, spec: spec}
		if key == nil && strings.EqualFold(c.Name, g.opts.KeyColumn) {
			key = &col
			continue
		}
		rest = append(rest, col)
	}
	if key == nil {
		return nil, fmt.Errorf("table %s: %w: %q", table.Name, ErrMissingKey, g.opts.KeyColumn)
	}
	if len(rest) == 0 {
		return nil, fmt.Errorf("table %s: no columns besides key %q", table.Name, key.name)
	}

	t := tableStatements{opts: g.opts, table: table.Name, key: *key, rest: rest}
	return []sqldom.Statement{
		sqldom.CommentStatement{Lines: []string{
			table.Name,
			"Generated by sqldom. Do not edit.",
		}},
		t.get(),
		t.list(),
		t.insert(),
		t.update(),
		t.remove(),
	}, nil
}

// tableStatements builds the statements for one resolved table.
type tableStatements struct {
	opts  Options
	table string
	key   column
	rest  []column
}

func (t tableStatements) ref() sqldom.TableReference {
	return sqldom.Table(t.opts.Owner, t.table)
}

func (t tableStatements) byKey() *sqldom.WhereClause {
	return sqldom.Where(sqldom.AND, sqldom.Eq(sqldom.Col(t.key.name), sqldom.Param(t.key.name)))
}

func (t tableStatements) all() []column {
	return append([]column{t.key}, t.rest...)
}

func (t tableStatements) projection() sqldom.SelectClause {
	cols := t.all()
	exprs := make([]sqldom.Expression, len(cols))
	for i, c := range cols {
		exprs[i] = sqldom.Col(c.name)
	}
	return sqldom.SelectClause{Items: sqldom.Items(exprs...)}
}

func (t tableStatements) get() sqldom.Statement {
	stmt := sqldom.SelectStatement{
		Select: t.projection(),
		From:   sqldom.FromClause{Source: t.ref(), NoLock: t.opts.NoLock},
		Where:  t.byKey(),
	}
	return t.procedure("Get", []column{t.key}, stmt)
}

func (t tableStatements) list() sqldom.Statement {
	stmt := sqldom.SelectStatement{
		Select: t.projection(),
		From:   sqldom.FromClause{Source: t.ref(), NoLock: t.opts.NoLock},
	}
	return t.procedure("List", nil, stmt)
}

func (t tableStatements) insert() sqldom.Statement {
	stmt := sqldom.InsertStatement{Table: t.ref()}
	for _, c := range t.rest {
		stmt.Columns = append(stmt.Columns, sqldom.Col(c.name))
		stmt.Values = append(stmt.Values, sqldom.Param(c.name))
	}
	return t.procedure("Insert", t.rest, stmt)
}

func (t tableStatements) update() sqldom.Statement {
	stmt := sqldom.UpdateStatement{Table: t.ref(), Where: t.byKey()}
	for _, c := range t.rest {
		stmt.Assignments = append(stmt.Assignments, sqldom.Set(c.name, sqldom.Param(c.name)))
	}
	return t.procedure("Update", t.all(), stmt)
}

func (t tableStatements) remove() sqldom.Statement {
	mode := sqldom.HardDelete
	if t.opts.SoftDelete {
		mode = sqldom.SoftDelete
	}
	stmt := sqldom.DeleteStatement{
		From:  sqldom.FromClause{Source: t.ref()},
		Where: t.byKey(),
		Mode:  mode,
	}
	return t.procedure("Delete", []column{t.key}, stmt)
}

// procedure wraps stmt in CREATE PROCEDURE <Table>_<action> when enabled.
func (t tableStatements) procedure(action string, params []column, stmt sqldom.Statement) sqldom.Statement {
	if !t.opts.Procedures {
		return stmt
	}
	defs := make([]sqldom.ParameterDefinition, len(params))
	for i, c := range params {
		defs[i] = sqldom.ParameterDefinition{Name: c.name, Type: c.spec}
	}
	return sqldom.CreateProcedureStatement{
		Owner:      t.opts.Owner,
		Name:       t.table + "_" + action,
		Parameters: defs,
		Body:       []sqldom.Statement{stmt},
	}
}
