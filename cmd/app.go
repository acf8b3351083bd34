// Package cmd implements the CLI application to track real-estate
// investments.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "ledger")
	c.Register(&addCmd{}, "ledger")
	c.Register(&importCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&projectionCmd{}, "reports")
	c.Register(&compareCmd{}, "reports")
	c.Register(&cashflowCmd{}, "reports")
	c.Register(&ratesCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// CommandNames lists the registered subcommand names, for shell completion.
func CommandNames() []string {
	return []string{
		"list", "add", "import", "export",
		"summary", "projection", "compare", "cashflow", "rates",
		"topic", "assist",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dir = flag.String("dir", defaultDir(), "Path to the tracker directory holding properties.jsonl and rates.yaml")

func defaultDir() string {
	if d := os.Getenv("TRACKER_DIR"); d != "" {
		return d
	}
	return "."
}

func propertiesPath() string { return filepath.Join(*dir, "properties.jsonl") }
func ratesPath() string      { return filepath.Join(*dir, "rates.yaml") }

// DecodeProperties decodes the property ledger from the app tracker directory.
// A missing file is an empty ledger.
func DecodeProperties() ([]tracker.PropertyFacts, error) {
	f, err := os.Open(propertiesPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", propertiesPath(), err)
	}
	defer f.Close()
	return tracker.DecodeProperties(f)
}

// DecodeRates decodes the rate settings from the app tracker directory.
// A missing file means the built-in defaults.
func DecodeRates() (tracker.RateSet, error) {
	f, err := os.Open(ratesPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tracker.DefaultRates(), nil
		}
		return tracker.RateSet{}, fmt.Errorf("could not open rates file %q: %w", ratesPath(), err)
	}
	defer f.Close()
	return tracker.DecodeRates(f)
}

// AppendProperty appends a single property record to the app ledger file.
func AppendProperty(p tracker.PropertyFacts) subcommands.ExitStatus {
	filename := propertiesPath()
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := tracker.EncodeProperty(f, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended property to %s\n", filename)
	return subcommands.ExitSuccess
}

// findProperty resolves a property by name, case-insensitive.
func findProperty(properties []tracker.PropertyFacts, name string) (*tracker.PropertyFacts, error) {
	if name == "" {
		return nil, errors.New("missing -name flag")
	}
	var names []string
	for i := range properties {
		if strings.EqualFold(properties[i].Name, name) {
			return &properties[i], nil
		}
		names = append(names, properties[i].Name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("the ledger is empty, add a property first")
	}
	return nil, fmt.Errorf("no property named %q, the ledger has: %s", name, strings.Join(names, ", "))
}

// parseOn parses a date flag, empty meaning today.
func parseOn(s string) (tracker.Date, error) {
	if s == "" {
		return tracker.Today(), nil
	}
	return tracker.ParseDate(s)
}
