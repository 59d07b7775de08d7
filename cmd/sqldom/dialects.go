package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zoobzio/sqldom"
	"github.com/zoobzio/sqldom/mariadb"
	"github.com/zoobzio/sqldom/mssql"
	"github.com/zoobzio/sqldom/postgres"
	"github.com/zoobzio/sqldom/sqlite"
)

// registry maps dialect names to constructors.
var registry = map[string]func() sqldom.Dialect{
	mssql.Name:    func() sqldom.Dialect { return mssql.New() },
	postgres.Name: func() sqldom.Dialect { return postgres.New() },
	sqlite.Name:   func() sqldom.Dialect { return sqlite.New() },
	mariadb.Name:  func() sqldom.Dialect { return mariadb.New() },
}

// aliases accepted for dialect names.
var aliases = map[string]string{
	"sqlserver":  mssql.Name,
	"tsql":       mssql.Name,
	"postgresql": postgres.Name,
	"pg":         postgres.Name,
	"sqlite3":    sqlite.Name,
	"mysql":      mariadb.Name,
}

func dialectNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupDialect returns the dialect registered under name or one of its aliases.
func lookupDialect(name string) (sqldom.Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	ctor, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (available: %s)", name, strings.Join(dialectNames(), ", "))
	}
	return ctor(), nil
}

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List supported SQL dialects",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DIALECT\tPROCEDURES\tDECLARE\tTOP\tLOCK HINTS")
		for _, name := range dialectNames() {
			caps := registry[name]().Capabilities()
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", name,
				yesNo(caps.StoredProcedures), yesNo(caps.VariableDeclarations), yesNo(caps.Top), yesNo(caps.LockHints))
		}
		return tw.Flush()
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
