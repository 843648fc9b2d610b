package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/talhaazmatmeo/ai-resume-enhancer/model"
)

// RemoteConfig holds the connection settings of an external HTML-to-PDF
// conversion service. Configuration is explicit: the caller passes
// endpoint and key, and the client never reads the environment.
type RemoteConfig struct {
	// Endpoint is the conversion URL, e.g.
	// https://api.pdfshift.io/v3/convert/pdf.
	Endpoint string

	// Key is the API key, sent as the basic-auth user name.
	Key string
}

func (c RemoteConfig) validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("remote renderer: endpoint is required")
	}
	if c.Key == "" {
		return fmt.Errorf("remote renderer: api key is required")
	}
	return nil
}

type convertRequest struct {
	Source    string `json:"source"`
	Landscape bool   `json:"landscape"`
}

// RemoteRenderer converts the HTML rendition of a mapped document into
// a PDF through an external service. It sits outside the fallback
// chain: callers that want the service's typography use it directly and
// fall back to the native tiers when it fails.
type RemoteRenderer struct {
	cfg  RemoteConfig
	http *http.Client
}

// NewRemoteRenderer creates a remote conversion client.
func NewRemoteRenderer(cfg RemoteConfig) (*RemoteRenderer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &RemoteRenderer{
		cfg:  cfg,
		http: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// RenderHTML posts the HTML page to the conversion service and returns
// the resulting PDF bytes.
func (r *RemoteRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	body, err := json.Marshal(convertRequest{Source: html})
	if err != nil {
		return nil, fmt.Errorf("encoding conversion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building conversion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(r.cfg.Key, "")

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling conversion service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading conversion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("conversion service returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(data)))
	}
	return data, nil
}

// RenderDocument renders a mapped document to HTML and converts it
// remotely.
func (r *RemoteRenderer) RenderDocument(ctx context.Context, doc *model.MappedDocument, style model.RenderStyle) ([]byte, error) {
	html, err := HTMLString(doc, style)
	if err != nil {
		return nil, err
	}
	return r.RenderHTML(ctx, html)
}
