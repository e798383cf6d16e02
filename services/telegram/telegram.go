package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

// DefaultBaseURL for the bot api
const DefaultBaseURL = "https://api.telegram.org"

// maximum bytes of a raw provider response quoted in parse errors
const errBodySnippetLen = 256

// Client calls bot api methods over https
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// New bot api client
func New(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		token:   token,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a structured rejection from the bot api
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram: %s (%d)", e.Description, e.Code)
}

// apiResponse envelope returned by every bot api method
type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
	ErrorCode   int             `json:"error_code"`
}

// Do performs a single multipart POST against a bot api method and returns
// the raw result payload. One attempt per call, no retries.
func (c *Client) Do(ctx context.Context, method string, params Params, file *File) (json.RawMessage, error) {
	body, contentType, err := encodeForm(params, file)
	if err != nil {
		return nil, fmt.Errorf("encoding form: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(body))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	apiRes := apiResponse{}
	if err := json.Unmarshal(raw, &apiRes); err != nil {
		return nil, fmt.Errorf("parsing response: %w: %s", err, snippet(raw))
	}

	if !apiRes.OK {
		return nil, &APIError{Code: apiRes.ErrorCode, Description: apiRes.Description}
	}

	return apiRes.Result, nil
}

func snippet(raw []byte) string {
	if len(raw) > errBodySnippetLen {
		raw = raw[:errBodySnippetLen]
	}
	return string(raw)
}
