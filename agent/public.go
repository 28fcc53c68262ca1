package agent

import (
	"context"
	"fmt"

	"github.com/rosterfun/playerfolio"
	"github.com/rosterfun/playerfolio/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user owns a portfolio of fantasy-sports player shares and is here primarily
			to get information about their positions, their trades and their performance.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. The user will assume that you know their players, check
			the book first to understand what they hold.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewScout returns the expert for everything outside the book: player news,
// injuries, schedules. It grounds its answers with Google Search.
func NewScout() *Expert {
	return &Expert{
		Name: "Scout",
		Description: `This is an expert scout,
		very well aware of fantasy sports, the leagues, the teams and the players.
		Ask the Scout whenever you need recent news, injury reports or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert scout for fantasy sports. You can search and find anything
			related to leagues, teams, players, schedules and injuries. You leverage
			Google Search to ground your assertions and you know how to relate the latest
			news to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper returns the expert in charge of reading the user's book. The
// loader is called on every question so the expert always sees fresh data.
func NewBookkeeper(load func() (*playerfolio.Book, error)) *Expert {
	lib := []Function{holdingsFunc(load), tradesFunc(load), summaryFunc(load)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper, in charge of reading the user's book of
		player-share positions. It can list the holdings, the trade log and the
		portfolio totals to compute any relevant figure about the user's portfolio.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's player-share book.
				You know how to use the Tools to extract information about the user's
				positions, trades and performance. You are part of a team of experts;
				pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's book:
				  - holdings (positions with shares, cost basis, price, P&L)
				  - trades (the full trade log)
				  - summary (portfolio totals, ROI and cash figures)
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// respond packages a report, or an error, into a function response.
func respond(id, name, output string, err error) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	fresp.Response["output"] = output
	return fresp
}

func holdingsFunc(load func() (*playerfolio.Book, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Holdings",
			Description: `Holdings lists every position in the book: player name, shares held,
			average cost, latest price, market value, unrealised and realised P&L.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all positions with the portfolio totals.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			b, err := load()
			if err != nil {
				return respond(id, "Holdings", "", fmt.Errorf("could not load book: %w", err))
			}
			var positions []playerfolio.Position
			for p := range b.Ledger().Positions() {
				positions = append(positions, p)
			}
			return respond(id, "Holdings", renderer.HoldingsMarkdown(b.Name(), positions, b.Totals()), nil)
		},
	}
}

func tradesFunc(load func() (*playerfolio.Book, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Trades",
			Description: `Trades lists the full trade log in recorded order: date, player, side,
			shares, price, fees, net cash flow and realised P&L.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all recorded trades.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			b, err := load()
			if err != nil {
				return respond(id, "Trades", "", fmt.Errorf("could not load book: %w", err))
			}
			var trades []playerfolio.Trade
			for _, t := range b.Journal().Trades(playerfolio.AcceptAll) {
				trades = append(trades, t)
			}
			return respond(id, "Trades", renderer.TransactionsMarkdown(b.Name(), trades), nil)
		},
	}
}

func summaryFunc(load func() (*playerfolio.Book, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports the portfolio totals: market value, cost basis,
			unrealised and realised P&L, ROI, and the cash figures (balance, deposits,
			withdrawals, fees paid).`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the portfolio totals and cash.",
			},
		},
		Func: func(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
			b, err := load()
			if err != nil {
				return respond(id, "Summary", "", fmt.Errorf("could not load book: %w", err))
			}
			return respond(id, "Summary", renderer.SummaryMarkdown(b.Name(), playerfolio.Today(), b.Totals(), b.Settings()), nil)
		},
	}
}
