package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/crud"
	"github.com/zoobzio/sqldom/internal/cli"
)

var (
	generateDialect    string
	generateOwner      string
	generateSchema     string
	generateOutput     string
	generateKeyColumn  string
	generateSoftDelete bool
	generateProcedures bool
	generateNoLock     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate data access SQL from a schema file",
	Long: `Generate get, list, insert, update and delete statements for every table in
a YAML schema file. On SQL Server the statements are wrapped in stored
procedures, one batch each.`,
	Example: `  # Generate T-SQL procedures from schema.yaml to stdout
  sqldom generate

  # Generate plain PostgreSQL statements into a file
  sqldom generate --dialect postgres --owner public --output crud.sql

  # Soft delete rows instead of removing them
  sqldom generate --soft-delete`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dialectName := resolveString(generateDialect, cfg.Dialect)
		d, err := lookupDialect(dialectName)
		if err != nil {
			return cli.ConfigError("selecting dialect", err)
		}

		schemaPath := resolveString(generateSchema, cfg.Schema)
		project, err := cli.LoadSchema(schemaPath)
		if err != nil {
			return cli.SchemaParseError("loading schema "+schemaPath, err)
		}

		opts := crud.Options{
			Owner:      resolveString(generateOwner, cfg.Owner),
			KeyColumn:  resolveString(generateKeyColumn, cfg.Generate.KeyColumn),
			SoftDelete: resolveBool(cmd, "soft-delete", generateSoftDelete, cfg.Generate.SoftDelete),
			Procedures: resolveBool(cmd, "procedures", generateProcedures, cfg.Generate.Procedures),
			NoLock:     resolveBool(cmd, "no-lock", generateNoLock, cfg.Generate.NoLock),
		}
		g := crud.New(d, opts)
		if opts.Procedures && !g.Options().Procedures {
			logger.Info("dialect has no stored procedures, generating plain statements", "dialect", d.Name())
		}
		if opts.NoLock && !g.Options().NoLock {
			logger.Warn("dialect has no lock hints, ignoring no-lock", "dialect", d.Name())
		}

		stmts, err := g.Generate(project)
		if err != nil {
			return cli.SchemaParseError("generating statements", err)
		}

		out, closeOut, err := openOutput(cmd, resolveString(generateOutput, cfg.Output))
		if err != nil {
			return cli.GeneralError("opening output", err)
		}

		w := sqldom.New(d, sqldom.NewStreamSink(out), sqldom.WithLogger(logger))
		if err := w.RenderAll(separate(d, stmts)...); err != nil {
			_ = closeOut()
			return cli.RenderError("rendering statements", err)
		}
		if err := w.Close(); err != nil {
			_ = closeOut()
			return cli.GeneralError("writing output", err)
		}
		if err := closeOut(); err != nil {
			return cli.GeneralError("closing output", err)
		}

		logger.Info("generated statements", "dialect", d.Name(), "statements", len(stmts))
		return nil
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateDialect, "dialect", "", "SQL dialect (default from config: mssql)")
	f.StringVar(&generateOwner, "owner", "", "owner or schema qualifying every table")
	f.StringVar(&generateSchema, "schema", "", "YAML schema file (default from config: schema.yaml)")
	f.StringVarP(&generateOutput, "output", "o", "", "output file (default: stdout)")
	f.StringVar(&generateKeyColumn, "key-column", "", "key column addressing rows (default from config: id)")
	f.BoolVar(&generateSoftDelete, "soft-delete", false, "mark rows deleted instead of removing them")
	f.BoolVar(&generateProcedures, "procedures", true, "wrap statements in stored procedures where supported")
	f.BoolVar(&generateNoLock, "no-lock", false, "read without shared locks where supported")
}

// openOutput returns the writer for path, or the command's stdout for "" and "-",
// with the function that closes it. Stdout is never closed.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// separate puts a blank line between statements and, on dialects with stored
// procedures, ends every CREATE PROCEDURE batch with GO.
func separate(d sqldom.Dialect, stmts []sqldom.Statement) []sqldom.Statement {
	batches := d.Capabilities().StoredProcedures
	out := make([]sqldom.Statement, 0, len(stmts)*2)
	for i, stmt := range stmts {
		if i > 0 {
			out = append(out, sqldom.LiteralStatement{})
		}
		out = append(out, stmt)
		if _, ok := stmt.(sqldom.CreateProcedureStatement); ok && batches {
			out = append(out, sqldom.LiteralStatement{Text: "GO"})
		}
	}
	return out
}
