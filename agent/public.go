package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tracker "github.com/GLADIATORTR/LoveableTracker-sub000"
	"github.com/GLADIATORTR/LoveableTracker-sub000/docs"
	"github.com/GLADIATORTR/LoveableTracker-sub000/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Analyse sentiment of user request, he is here primarily to understand the performance of the
			real-estate investments he tracks.
			If he is angry try to understand why, and seek for a clear user approval.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know his properties by name, check the portfolio first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher is the market expert: grounded in search, it answers
// questions about local markets, rates and regulation.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert real-estate researcher,
		Very well aware of housing markets, mortgage products, tax rules,
		about the latest local market news and rate movements.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in real-estate markets, you can search and find about anything related to
			housing markets, mortgage rates, property taxes, regulation etc. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst is the portfolio expert: it reads the user's property ledger
// and computes the figures through the engine's own reports.
func NewAnalyst() *Expert {

	lib := []Function{Properties, Summarize, Projection}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's property ledger.
		He can compute the relevant figures about each property: equity, yields, tax benefits,
		scenario comparisons and multi-year projections.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's property ledger.
				You know how to use the Tools to extract relevant information about the user's properties and wealth.
				You are part of a team of experts, yours is everything about the user's real-estate investments. They might ask
				you questions about the user's properties, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's portfolio
				  - list of properties
				  - investment summaries
				  - net equity projections
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var Properties = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Properties",
		Description: `Properties lists all properties in the user's ledger with their
		current market value, outstanding balance, rent and expenses.

		` + must(docs.GetTopic("properties")),
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted table of all properties in the ledger.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		properties, err := LoadProperties()
		if err != nil {
			return errResponse(id, "Properties", err)
		}
		return okResponse(id, "Properties", renderer.PropertiesMarkdown(properties, tracker.Today()))
	},
}

var Summarize = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Summary",
		Description: `Summary computes the investment summary of one property:
		market value, balance, after-tax net equity, cash flow, yields,
		cap rate, cash on cash, IRR, NPV and the annual tax benefits.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {
					Type:        genai.TypeString,
					Description: "The name of the property, as listed by Properties.",
				},
			},
			Required: []string{"name"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted investment summary of the property.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		p, rates, err := loadProperty(args)
		if err != nil {
			return errResponse(id, "Summary", err)
		}
		s, err := tracker.NewSummary(*p, rates.For(p.Country), tracker.Today(), tracker.DefaultHorizonYears)
		if err != nil {
			return errResponse(id, "Summary", err)
		}
		return okResponse(id, "Summary", renderer.SummaryMarkdown(s))
	},
}

var Projection = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Projection",
		Description: `Projection computes the year-by-year net equity ledger of one
		property over a horizon: market value, balance, after-tax net equity,
		cumulative yield, cumulative mortgage and net gain per year.

		` + must(docs.GetTopic("projection")),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {
					Type:        genai.TypeString,
					Description: "The name of the property, as listed by Properties.",
				},
				"years": {
					Type:        genai.TypeInteger,
					Description: "The horizon in years. 10 is the default.",
				},
			},
			Required: []string{"name"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted projection table of the property.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		p, rates, err := loadProperty(args)
		if err != nil {
			return errResponse(id, "Projection", err)
		}
		years := tracker.DefaultHorizonYears
		if y, ok := args["years"].(float64); ok && y > 0 {
			years = int(y)
		}
		rows := tracker.Project(*p, rates.For(p.Country), years, false, tracker.Today())
		return okResponse(id, "Projection", renderer.ProjectionMarkdown(p.Name, p.Currency, rows, false))
	},
}

// Dir returns the tracker directory holding the ledger and settings files.
func Dir() string {
	if dir := os.Getenv("TRACKER_DIR"); dir != "" {
		return dir
	}
	return "."
}

// LoadProperties decodes the ledger from the tracker directory.
// A missing file is an empty ledger.
func LoadProperties() ([]tracker.PropertyFacts, error) {
	path := filepath.Join(Dir(), "properties.jsonl")
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()
	return tracker.DecodeProperties(f)
}

// LoadRates decodes the rate settings from the tracker directory.
// A missing file means the built-in defaults.
func LoadRates() (tracker.RateSet, error) {
	path := filepath.Join(Dir(), "rates.yaml")
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tracker.DefaultRates(), nil
		}
		return tracker.RateSet{}, fmt.Errorf("could not open rates file %q: %w", path, err)
	}
	defer f.Close()
	return tracker.DecodeRates(f)
}

// loadProperty resolves the "name" argument against the ledger.
func loadProperty(args map[string]any) (*tracker.PropertyFacts, tracker.RateSet, error) {
	name, ok := args["name"].(string)
	if !ok {
		return nil, tracker.RateSet{}, fmt.Errorf("argument 'name' is not a string as expected but %T", args["name"])
	}
	properties, err := LoadProperties()
	if err != nil {
		return nil, tracker.RateSet{}, err
	}
	rates, err := LoadRates()
	if err != nil {
		return nil, tracker.RateSet{}, err
	}
	for i := range properties {
		if strings.EqualFold(properties[i].Name, name) {
			return &properties[i], rates, nil
		}
	}
	return nil, tracker.RateSet{}, fmt.Errorf("no property named %q in the ledger", name)
}
