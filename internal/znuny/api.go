package znuny

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// dispatch sends one request to the ticket webservice. The platform does not
// use HTTP auth headers; UserLogin and Password ride along inside the payload
// itself. GET requests get every payload field encoded into the query string
// instead of a body, because the platform rejects GET requests that carry
// one. Any other method sends a JSON body, with staged attachments appended
// under an Attachment field.
func (c *Client) dispatch(ctx context.Context, method, path string, payload map[string]interface{}) (interface{}, error) {
	slog.Debug("znuny.dispatch called", "method", method, "path", path)

	body := make(map[string]interface{}, len(payload)+3)
	for k, v := range payload {
		body[k] = v
	}
	body["UserLogin"] = c.creds.Username
	body["Password"] = c.creds.Password

	reqUrl := c.baseUrl + path

	var req *http.Request
	var err error
	if method == http.MethodGet {
		q := url.Values{}
		for k, v := range body {
			q.Set(k, fmt.Sprint(v))
		}
		req, err = http.NewRequestWithContext(ctx, method, reqUrl+"?"+q.Encode(), nil)
	} else {
		if len(c.attachments) > 0 {
			body["Attachment"] = c.attachments
		}

		data, mErr := json.Marshal(body)
		if mErr != nil {
			return nil, fmt.Errorf("marshaling the request body to json: %w", mErr)
		}
		req, err = http.NewRequestWithContext(ctx, method, reqUrl, bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("an error occured creating the request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("znuny API request failed", "error", err)
		return nil, &TransportError{Err: err}
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			slog.Warn("closing the response body", "error", err)
		}
	}(res.Body)

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: res.StatusCode, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		slog.Warn("znuny API request failed", "statusCode", res.StatusCode)
		return nil, &TransportError{StatusCode: res.StatusCode, Body: string(data)}
	}

	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("an error occured unmarshaling the response to JSON: %w", err)
	}

	if msg, ok := platformError(decoded); ok {
		slog.Warn("platform reported an error", "message", msg)
		return nil, &PlatformError{Message: msg}
	}

	// only a successful write consumes the staged attachments
	if method != http.MethodGet {
		c.attachments = nil
	}

	return normalize(decoded), nil
}

// platformError digs the platform's own error message out of a decoded
// response body. A 200 response can still carry one, and the platform is
// not consistent about casing.
func platformError(decoded interface{}) (string, bool) {
	m, ok := decoded.(map[string]interface{})
	if !ok {
		return "", false
	}

	for _, key := range []string{"Error", "error"} {
		raw, ok := m[key]
		if !ok {
			continue
		}

		if nested, ok := raw.(map[string]interface{}); ok {
			for _, msgKey := range []string{"ErrorMessage", "errorMessage", "Message", "message"} {
				if msg, ok := nested[msgKey].(string); ok {
					return msg, true
				}
			}
		}
		return fmt.Sprint(raw), true
	}

	return "", false
}
