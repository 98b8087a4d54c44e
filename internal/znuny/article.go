package znuny

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// Channel classifies where an article comes from and who gets to see it.
type Channel string

const (
	// ChannelNoteInternal is an agent-only note; the platform is told not
	// to notify anyone about it.
	ChannelNoteInternal Channel = "note-internal"

	// ChannelInternal is an internal email-style article with auto-reply
	// headers attached.
	ChannelInternal Channel = "Internal"
)

// Article holds the caller-facing inputs for a single ticket article.
// Extra wins over the generated base fields on key collisions. Any Channel
// value other than the two known constants is passed to the platform
// untouched, with no extra fields added.
type Article struct {
	CreatedBy   string
	Subject     string
	Body        string
	From        string
	ContentType string
	Channel     Channel
	Extra       map[string]interface{}
}

func buildArticle(a Article) (map[string]interface{}, error) {
	if strings.TrimSpace(a.Subject) == "" {
		return nil, &ValidationError{Field: "subject"}
	}
	if strings.TrimSpace(a.Body) == "" {
		return nil, &ValidationError{Field: "body"}
	}

	article := map[string]interface{}{
		"Subject":              a.Subject,
		"Body":                 a.Body,
		"CommunicationChannel": string(a.Channel),
		"ContentType":          a.ContentType,
		"HistoryType":          "AddNote",
		"HistoryComment":       a.CreatedBy,
		"SenderType":           "agent",
	}

	for k, v := range a.Extra {
		article[k] = v
	}

	if a.From != "" {
		article["From"] = a.From
	}

	switch a.Channel {
	case ChannelNoteInternal:
		article["NoAgentNotify"] = 1
		article["CommunicationChannel"] = "Internal"
	case ChannelInternal:
		article["Loop"] = 0
		article["AutoResponseType"] = "auto reply"
		article["OrigHeader"] = map[string]interface{}{
			"From":    a.From,
			"To":      "Postmaster",
			"Subject": a.Subject,
			"Body":    a.Body,
		}
	default:
		// unrecognized channels get no augmentation
	}

	return article, nil
}

// AddArticle appends an article to an existing ticket and reopens it. Staged
// attachments ride along with the request.
func (c *Client) AddArticle(ctx context.Context, ticketId int, article Article) (map[string]interface{}, error) {
	slog.Debug("znuny.AddArticle called", "ticketId", ticketId)
	art, err := buildArticle(article)
	if err != nil {
		return nil, err
	}

	res, err := c.dispatch(ctx, http.MethodPatch, fmt.Sprintf("/Ticket/%d", ticketId), map[string]interface{}{
		"TicketID": ticketId,
		"Ticket":   map[string]interface{}{"State": "open"},
		"Article":  art,
	})
	if err != nil {
		return nil, fmt.Errorf("adding the article: %w", err)
	}

	body, ok := res.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected response shape: %T", res)
	}

	return body, nil
}
