package generative

import (
	"context"
)

// SystemPrompt fixes the assistant persona sent with every generation
// request. The honesty clause matters: the generative tier answers only
// when neither the catalog nor the document index could.
const SystemPrompt = "You are a knowledgeable credit card assistant. " +
	"Answer questions about credit cards, their fees, rewards, eligibility " +
	"and benefits. Be concise and factual. If you do not know something or " +
	"the information was not provided, say so plainly instead of guessing."

// DefaultConfidence is reported when the generation service omits one.
const DefaultConfidence = 70

type Request struct {
	Query   string
	Context string
}

type Response struct {
	Text       string
	Confidence int
}

// Client is an interface for the text-generation fallback.
// This allows mocking in tests without making real API calls.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}
