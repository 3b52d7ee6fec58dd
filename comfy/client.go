package comfy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/justinfleek/lattice-pose/log"
)

// DefaultAddr is where a local preprocessor server usually listens.
const DefaultAddr = "127.0.0.1:8188"

// DefaultPollInterval paces the history polling loop.
const DefaultPollInterval = 500 * time.Millisecond

// Client talks to one ComfyUI-compatible server. Every client carries
// its own session id, mirroring how interactive clients register with
// the server.
type Client struct {
	base     string
	clientID string
	hc       *http.Client
}

// NewClient builds a client for addr, which may be host:port or a full
// URL.
func NewClient(addr string) *Client {
	if addr == "" {
		addr = DefaultAddr
	}
	base := addr
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	base = strings.TrimRight(base, "/")

	return &Client{
		base:     base,
		clientID: uuid.New().String(),
		hc:       &http.Client{},
	}
}

// ClientID exposes the session id, mostly for logging.
func (c *Client) ClientID() string {
	return c.clientID
}

// UploadImage stores image bytes on the server and returns the name
// the workflow should load.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", errors.Wrap(err, "failed to build upload form")
	}
	if _, err := fw.Write(data); err != nil {
		return "", errors.Wrap(err, "failed to build upload form")
	}
	if err := mw.WriteField("overwrite", "true"); err != nil {
		return "", errors.Wrap(err, "failed to build upload form")
	}
	if err := mw.Close(); err != nil {
		return "", errors.Wrap(err, "failed to build upload form")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/upload/image", &body)
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	respBody, err := c.do(req)
	if err != nil {
		return "", err
	}

	var upload UploadResponse
	if err := json.Unmarshal(respBody, &upload); err != nil {
		return "", errors.Wrap(err, "failed to parse upload response")
	}
	if upload.Name == "" {
		return "", errors.New("upload returned no filename")
	}

	log.Trace.Printf("Uploaded image as: %s", upload.Name)
	return upload.Name, nil
}

// QueuePrompt submits a workflow and returns its prompt id.
func (c *Client) QueuePrompt(ctx context.Context, wf Workflow) (string, error) {
	payload, err := json.Marshal(PromptRequest{Prompt: wf, ClientID: c.clientID})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode prompt")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/prompt", bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req)
	if err != nil {
		return "", err
	}

	var prompt PromptResponse
	if err := json.Unmarshal(respBody, &prompt); err != nil {
		return "", errors.Wrap(err, "failed to parse prompt response")
	}
	if prompt.PromptID == "" {
		return "", errors.New("server returned no prompt id")
	}

	log.Trace.Printf("Queued workflow: %s", prompt.PromptID)
	return prompt.PromptID, nil
}

// History fetches the record for one prompt. A nil entry means the
// prompt has not finished yet.
func (c *Client) History(ctx context.Context, promptID string) (*HistoryEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/history/"+url.PathEscape(promptID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	respBody, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var history History
	if err := json.Unmarshal(respBody, &history); err != nil {
		return nil, errors.Wrap(err, "failed to parse history")
	}

	entry, ok := history[promptID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// WaitForPrompt polls history until the prompt has outputs or the
// context ends.
func (c *Client) WaitForPrompt(ctx context.Context, promptID string, interval time.Duration) (*HistoryEntry, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		entry, err := c.History(ctx, promptID)
		if err != nil {
			return nil, err
		}
		if entry != nil && len(entry.Outputs) > 0 {
			return entry, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "gave up waiting for prompt")
		case <-ticker.C:
		}
	}
}

// Download fetches one produced file.
func (c *Client) Download(ctx context.Context, f OutputFile) ([]byte, error) {
	q := url.Values{}
	q.Set("filename", f.Filename)
	q.Set("subfolder", f.Subfolder)
	q.Set("type", f.Type)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/view?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server error: status %d, response: %s", res.StatusCode, string(body))
	}
	return body, nil
}
