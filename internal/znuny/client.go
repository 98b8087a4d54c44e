// Package znuny is a client for the Znuny/OTRS generic ticket REST
// interface. It builds the platform's idiosyncratic ticket and article
// payloads, embeds the credentials into each request the way the platform
// expects, and normalizes the inconsistent key casing of its responses.
package znuny

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"os"
	"strings"
)

type Client struct {
	creds       Creds
	baseUrl     string
	httpClient  *http.Client
	attachments []Attachment
}

type Creds struct {
	BaseUrl  string `mapstructure:"base_url" json:"base_url"`
	Username string `mapstructure:"username" json:"username"`
	Password string `mapstructure:"password" json:"password"`
}

// Attachment is a file staged for the next write request, content already
// base64 encoded. Field casing matches what the platform expects on the wire.
type Attachment struct {
	Content     string `json:"Content"`
	ContentType string `json:"ContentType"`
	Filename    string `json:"Filename"`
}

// NewClient returns a client for the ticket webservice at creds.BaseUrl.
// A Client is not safe for concurrent use: staged attachments are shared
// state consumed by the next write request, so callers running parallel
// operations need one client per operation.
func NewClient(creds Creds, httpClient *http.Client) *Client {
	return &Client{
		creds:      creds,
		baseUrl:    strings.TrimRight(creds.BaseUrl, "/"),
		httpClient: httpClient,
	}
}

// StageAttachment reads the file at filePath and queues it for the next
// write request. Staged attachments are only consumed by a successful write
// dispatch; a failed dispatch leaves them queued so the caller can retry.
func (c *Client) StageAttachment(filePath, fileName, mimeType string) error {
	slog.Debug("znuny.StageAttachment called", "file", filePath)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return &FileReadError{Path: filePath, Err: err}
	}

	c.attachments = append(c.attachments, Attachment{
		Content:     base64.StdEncoding.EncodeToString(data),
		ContentType: mimeType,
		Filename:    fileName,
	})
	return nil
}
