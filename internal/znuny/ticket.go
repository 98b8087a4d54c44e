package znuny

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// Queue identifies the destination queue either by numeric id or by name.
// Id wins when it is set; exactly one of the two ends up in the ticket
// payload. There is no guessing whether a name string "looks numeric".
type Queue struct {
	Id   int
	Name string
}

func buildTicket(title, customer string, extra map[string]interface{}, queue Queue) (map[string]interface{}, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Field: "title"}
	}

	ticket := map[string]interface{}{
		"LockState":  "unlock",
		"PriorityID": 2,
		"State":      "new",
	}

	for k, v := range extra {
		ticket[k] = v
	}

	// these always reflect the call arguments, extra can not override them
	ticket["CustomerUser"] = customer
	ticket["Title"] = title

	if queue.Id > 0 {
		ticket["QueueID"] = queue.Id
	} else {
		ticket["Queue"] = queue.Name
	}

	return ticket, nil
}

// CreateTicket opens a new ticket with an initial article. Staged
// attachments ride along with the request. The returned map is the
// normalized response body, typically carrying ticketId and ticketNumber.
func (c *Client) CreateTicket(ctx context.Context, title, customer string, queue Queue, extra map[string]interface{}, article Article) (map[string]interface{}, error) {
	slog.Debug("znuny.CreateTicket called", "title", title)
	ticket, err := buildTicket(title, customer, extra, queue)
	if err != nil {
		return nil, err
	}

	art, err := buildArticle(article)
	if err != nil {
		return nil, err
	}

	res, err := c.dispatch(ctx, http.MethodPost, "/Ticket", map[string]interface{}{
		"Ticket":  ticket,
		"Article": art,
	})
	if err != nil {
		return nil, fmt.Errorf("creating the ticket: %w", err)
	}

	body, ok := res.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response shape: %T", res)
	}

	return body, nil
}

// GetTicket fetches a single ticket. The platform wraps it in a one-element
// array; the element itself is returned.
func (c *Client) GetTicket(ctx context.Context, ticketId int, extended bool) (map[string]interface{}, error) {
	slog.Debug("znuny.GetTicket called", "ticketId", ticketId)
	ext := 0
	if extended {
		ext = 1
	}

	res, err := c.dispatch(ctx, http.MethodGet, fmt.Sprintf("/Ticket/%d", ticketId), map[string]interface{}{
		"Extended": ext,
	})
	if err != nil {
		return nil, fmt.Errorf("getting the ticket: %w", err)
	}

	body, ok := res.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response shape: %T", res)
	}

	list, ok := body["ticket"].([]interface{})
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("response contains no ticket entry")
	}

	ticket, ok := list[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected ticket shape: %T", list[0])
	}

	return ticket, nil
}

// GetTicketNumber returns the ticket number as a plain string of digits.
func (c *Client) GetTicketNumber(ctx context.Context, ticketId int) (string, error) {
	ticket, err := c.GetTicket(ctx, ticketId, false)
	if err != nil {
		return "", err
	}

	switch tn := ticket["ticketNumber"].(type) {
	case string:
		return strings.TrimSpace(tn), nil
	case float64:
		// ticket numbers are large enough for encoding/json to hand them
		// back in exponent form, so force plain digits
		return strconv.FormatFloat(tn, 'f', 0, 64), nil
	default:
		return "", fmt.Errorf("unexpected ticket number type: %T", tn)
	}
}
