package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/zoobzio/dbml"
	"sigs.k8s.io/yaml"
)

// SchemaFile is the YAML form of a table schema.
//
//	project: shop
//	tables:
//	  - name: Users
//	    columns:
//	      - name: Id
//	        type: bigint
//	      - name: Email
//	        type: nvarchar(255)
type SchemaFile struct {
	Project string        `json:"project"`
	Tables  []SchemaTable `json:"tables"`
}

// SchemaTable is one table in a schema file.
type SchemaTable struct {
	Name    string         `json:"name"`
	Columns []SchemaColumn `json:"columns"`
}

// SchemaColumn is one column in a schema file.
type SchemaColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// LoadSchema reads a YAML schema file into a dbml project.
func LoadSchema(path string) (*dbml.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return ParseSchema(data)
}

// ParseSchema converts YAML schema data into a dbml project.
func ParseSchema(data []byte) (*dbml.Project, error) {
	var file SchemaFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if len(file.Tables) == 0 {
		return nil, errors.New("schema defines no tables")
	}

	name := file.Project
	if name == "" {
		name = "default"
	}
	project := dbml.NewProject(name)

	seen := make(map[string]bool, len(file.Tables))
	for i, t := range file.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("table %d: name is required", i+1)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("table %s: defined twice", t.Name)
		}
		seen[t.Name] = true

		table := dbml.NewTable(t.Name)
		for j, c := range t.Columns {
			if c.Name == "" || c.Type == "" {
				return nil, fmt.Errorf("table %s column %d: name and type are required", t.Name, j+1)
			}
			table.AddColumn(dbml.NewColumn(c.Name, c.Type))
		}
		project.AddTable(table)
	}
	return project, nil
}
