package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	"github.com/google/subcommands"
)

// useTempDir points the app at a fresh tracker directory for one test.
func useTempDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	old := *dir
	*dir = tmp
	t.Cleanup(func() { *dir = old })
	return tmp
}

func TestAddThenDecode(t *testing.T) {
	useTempDir(t)

	add := &addCmd{}
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	add.SetFlags(fs)
	err := fs.Parse([]string{
		"-name", "Maple Street",
		"-type", "single-family",
		"-price", "300000",
		"-value", "350000",
		"-down", "60000",
		"-loan", "240000",
		"-rate", "0.05",
		"-term", "360",
		"-rent", "2500",
		"-expenses", "800",
	})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if status := add.Execute(context.Background(), fs); status != subcommands.ExitSuccess {
		t.Fatalf("add.Execute() = %v, want success", status)
	}

	properties, err := DecodeProperties()
	if err != nil {
		t.Fatalf("DecodeProperties() error = %v", err)
	}
	if len(properties) != 1 {
		t.Fatalf("got %d properties, want 1", len(properties))
	}
	p := properties[0]
	if p.Name != "Maple Street" || p.Type != tracker.SingleFamily {
		t.Errorf("decoded %q/%q, want Maple Street/single-family", p.Name, p.Type)
	}
	if p.LoanAmount != 240000 || p.TermMonths != 360 {
		t.Errorf("loan = %v/%v, want 240000/360", p.LoanAmount, p.TermMonths)
	}
	if p.ID == "" {
		t.Error("appended property has no id")
	}
}

func TestAddRejectsInvalidProperty(t *testing.T) {
	useTempDir(t)

	// A loan without a term is a contradiction, not a missing default.
	add := &addCmd{}
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	add.SetFlags(fs)
	if err := fs.Parse([]string{"-name", "Broken", "-loan", "1000"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if status := add.Execute(context.Background(), fs); status != subcommands.ExitUsageError {
		t.Errorf("add.Execute() = %v, want usage error", status)
	}
}

func TestDecodeProperties_MissingFileIsEmptyLedger(t *testing.T) {
	useTempDir(t)

	properties, err := DecodeProperties()
	if err != nil {
		t.Fatalf("DecodeProperties() error = %v", err)
	}
	if len(properties) != 0 {
		t.Errorf("got %d properties, want an empty ledger", len(properties))
	}
}

func TestDecodeRates(t *testing.T) {
	tmp := useTempDir(t)

	// Without a settings file, the built-in defaults apply.
	rates, err := DecodeRates()
	if err != nil {
		t.Fatalf("DecodeRates() error = %v", err)
	}
	if rates.Default != tracker.DefaultRates().Default {
		t.Errorf("default rates = %+v, want the built-in defaults", rates.Default)
	}

	// A settings file listing only one country still gets default rates.
	settings := "countries:\n  Turkey:\n    appreciation: 0.30\n    inflation: 0.45\n"
	if err := os.WriteFile(filepath.Join(tmp, "rates.yaml"), []byte(settings), 0644); err != nil {
		t.Fatal(err)
	}
	rates, err = DecodeRates()
	if err != nil {
		t.Fatalf("DecodeRates() error = %v", err)
	}
	if got := rates.For("Turkey").Inflation; got != 0.45 {
		t.Errorf("Turkey inflation = %v, want 0.45", got)
	}
	if rates.Default != tracker.DefaultRates().Default {
		t.Errorf("default rates = %+v, want the built-in defaults backfilled", rates.Default)
	}
}

func TestFindProperty(t *testing.T) {
	properties := []tracker.PropertyFacts{
		{Name: "Maple Street"},
		{Name: "Oak Avenue"},
	}

	p, err := findProperty(properties, "maple street")
	if err != nil {
		t.Fatalf("findProperty() error = %v", err)
	}
	if p.Name != "Maple Street" {
		t.Errorf("findProperty() = %q, want case-insensitive match", p.Name)
	}

	if _, err := findProperty(properties, "Elm Court"); err == nil {
		t.Error("findProperty() on an unknown name should fail")
	} else if !strings.Contains(err.Error(), "Oak Avenue") {
		t.Errorf("error %q should list the known names", err)
	}

	if _, err := findProperty(nil, "Maple Street"); err == nil {
		t.Error("findProperty() on an empty ledger should fail")
	}
}

func TestParseOn(t *testing.T) {
	on, err := parseOn("2025-06-15")
	if err != nil {
		t.Fatalf("parseOn() error = %v", err)
	}
	if on.String() != "2025-06-15" {
		t.Errorf("parseOn() = %s, want 2025-06-15", on)
	}

	today, err := parseOn("")
	if err != nil {
		t.Fatalf("parseOn(\"\") error = %v", err)
	}
	if today != tracker.Today() {
		t.Errorf("parseOn(\"\") = %s, want today", today)
	}

	if _, err := parseOn("not-a-date"); err == nil {
		t.Error("parseOn() on garbage should fail")
	}
}
