package insight

import "context"

// Narrator exposes the raw completion call for risk narrative prompts.
type Narrator struct {
	client *Client
}

func NewNarrator(client *Client) *Narrator {
	return &Narrator{client: client}
}

func (n *Narrator) Generate(ctx context.Context, prompt string) (string, error) {
	if n == nil || !n.client.Configured() {
		return "", ErrNotConfigured
	}
	return n.client.Complete(ctx, prompt)
}
