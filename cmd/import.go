package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file    string
	mapping string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import properties from a JSON export" }
func (*importCmd) Usage() string {
	return `lvt import -file <export.json> [-mapping <mapping.json>]

  Imports property records from a third-party JSON export and appends
  them to the ledger. Without a mapping file, the export is expected to
  be a {"properties": [...]} document using the native field names.

  A mapping file adapts foreign schemas with jsonpath selectors:

  {"root": "$.assets", "fields": {"name": "$.label", "purchasePrice": "$.buy.amount"}}

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Path to the JSON export to import.")
	f.StringVar(&c.mapping, "mapping", "", "Path to a jsonpath field-mapping file. Defaults to the native schema.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "missing -file flag")
		return subcommands.ExitUsageError
	}

	mapping := tracker.DefaultImportMapping()
	if c.mapping != "" {
		data, err := os.ReadFile(c.mapping)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading mapping file: %v\n", err)
			return subcommands.ExitFailure
		}
		var m struct {
			Root   string            `json:"root"`
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(data, &m); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing mapping file: %v\n", err)
			return subcommands.ExitFailure
		}
		if m.Root != "" {
			mapping.Root = m.Root
		}
		if len(m.Fields) > 0 {
			mapping.Fields = m.Fields
		}
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	properties, err := tracker.ImportProperties(in, mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing properties: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, p := range properties {
		if status := AppendProperty(p); status != subcommands.ExitSuccess {
			return status
		}
	}
	fmt.Printf("Imported %d properties.\n", len(properties))
	return subcommands.ExitSuccess
}
