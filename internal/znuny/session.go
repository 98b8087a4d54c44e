package znuny

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
)

// SessionCreate asks the platform for a session token. The credentials go in
// the payload like every other request; the token is only used here as a
// login check, not for later calls.
func (c *Client) SessionCreate(ctx context.Context) (string, error) {
	slog.Debug("znuny.SessionCreate called")
	res, err := c.dispatch(ctx, http.MethodPost, "/Session", map[string]interface{}{})
	if err != nil {
		return "", fmt.Errorf("creating the session: %w", err)
	}

	body, ok := res.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response shape: %T", res)
	}

	token, ok := body["sessionId"].(string)
	if !ok {
		return "", fmt.Errorf("response contains no session id")
	}

	return token, nil
}

// ConnectionTest verifies that the webservice is reachable and the
// credentials are accepted.
func (c *Client) ConnectionTest(ctx context.Context) error {
	slog.Debug("znuny.ConnectionTest called")
	if _, err := c.SessionCreate(ctx); err != nil {
		return err
	}

	return nil
}
