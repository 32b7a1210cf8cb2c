package client

import "context"

// Decision is the route guard outcome.
type Decision int

const (
	// Allow means the admin dashboard may render.
	Allow Decision = iota
	// Redirect means the caller must send the user to the login page.
	// Nothing protected may be shown first.
	Redirect
)

// Guard mirrors the server's admin check before protected UI is shown.
// It is advisory only: the verification middleware on the server is the
// enforcement boundary, and bypassing the guard gains nothing.
type Guard struct {
	client *Client
}

// NewGuard creates a guard over an existing client session.
func NewGuard(c *Client) *Guard {
	return &Guard{client: c}
}

// Check calls the who-am-I endpoint and decides. Network errors,
// unauthorized responses, missing accounts and non-admin roles all
// resolve to Redirect. The account is returned only on Allow.
func (g *Guard) Check(ctx context.Context) (Decision, *Account) {
	acc, err := g.client.Me(ctx)
	if err != nil {
		return Redirect, nil
	}
	if acc.Role != "admin" {
		return Redirect, nil
	}
	return Allow, acc
}
