package llm

import (
	"context"
	"sync"
)

// StaticClient is a test double that returns canned responses in order,
// recording every request it receives. When the canned list runs out it
// repeats the last entry.
type StaticClient struct {
	mu        sync.Mutex
	responses []*Response
	errs      []error
	calls     []Request
	next      int
	provider  string
}

// NewStaticClient creates a StaticClient with the given scripted responses.
// Pass a nil error for successful calls.
func NewStaticClient(provider string, responses []*Response, errs []error) *StaticClient {
	return &StaticClient{
		responses: responses,
		errs:      errs,
		provider:  provider,
	}
}

// StaticText creates a StaticClient that always returns the same text.
func StaticText(text string) *StaticClient {
	return NewStaticClient("static", []*Response{{Text: text}}, []error{nil})
}

// Provider returns the configured provider identifier.
func (c *StaticClient) Provider() string {
	return c.provider
}

// Generate returns the next scripted response, honoring cancellation.
func (c *StaticClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, req)
	i := c.next
	if i >= len(c.responses) {
		i = len(c.responses) - 1
	}
	c.next++

	if i < len(c.errs) && c.errs[i] != nil {
		return nil, c.errs[i]
	}
	return c.responses[i], nil
}

// Calls returns a copy of the recorded requests.
func (c *StaticClient) Calls() []Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Request, len(c.calls))
	copy(out, c.calls)
	return out
}
