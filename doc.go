// Package tracker provides a set of functions and types for tracking
// real-estate investments. It is designed to be local-first, auditable, and
// extensible, ensuring users have full control and transparency over their
// property data.
//
// The core functionalities include:
//   - Property Records: An immutable record of the static facts of each
//     property (price, loan terms, rent, expenses, appreciation assumptions).
//   - Projection Engine: A stateless set of pure numerical functions that
//     turn property facts and a rate configuration into time-dependent
//     investment metrics: outstanding loan balance, after-tax net equity,
//     cash flow, IRR, NPV, tax benefits, and multi-year present-value
//     projections.
//   - Scenario Comparison: Named what-if variants (accelerated appreciation,
//     debt changes, rent growth) computed from the same shared formulas as
//     the base case, so tables, charts, and summaries never disagree.
//   - Data Persistence: Handling the encoding and decoding of property
//     records and per-country rate configurations to and from human-readable,
//     version-controllable formats (JSONL, YAML).
//
// This package serves as the foundational logic for the `lvt` command-line
// tool, ensuring that every surface (projection tables, scenario comparisons,
// summaries, the AI assistant) is a pure consumer of a single implementation
// of each formula.
package tracker
