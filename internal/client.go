package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AnswerRequest is the JSON body sent to the answer endpoint.
type AnswerRequest struct {
	ChatID string `json:"chat_id"`
	Query  string `json:"query"`
}

// AnswerResponse is the JSON body the answer endpoint returns. Only Answer
// is consumed; an absent answer field is handled by the controller, not
// treated as a failure here.
type AnswerResponse struct {
	ChatID          string   `json:"chat_id,omitempty"`
	Answer          string   `json:"answer"`
	RetrievedChunks []string `json:"retrieved_chunks,omitempty"`
}

// AnswerClient asks the remote AI backend one question on behalf of a chat.
type AnswerClient interface {
	Ask(ctx context.Context, chatID, query string) (AnswerResponse, error)
}

// HTTPAnswerClient is the production AnswerClient over plain HTTP.
type HTTPAnswerClient struct {
	url        string
	httpClient *http.Client
}

// NewHTTPAnswerClient builds a client for the configured answer endpoint.
func NewHTTPAnswerClient(cfg Config) *HTTPAnswerClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPAnswerClient{
		url: cfg.AnswerURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ask posts {chat_id, query} and decodes the response body. Any transport
// failure, non-2xx status, or undecodable body comes back as a
// *RequestError.
func (c *HTTPAnswerClient) Ask(ctx context.Context, chatID, query string) (AnswerResponse, error) {
	body, err := json.Marshal(AnswerRequest{ChatID: chatID, Query: query})
	if err != nil {
		return AnswerResponse{}, &RequestError{URL: c.url, Err: err}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return AnswerResponse{}, &RequestError{URL: c.url, Err: err}
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return AnswerResponse{}, &RequestError{URL: c.url, Err: err}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return AnswerResponse{}, &RequestError{URL: c.url, StatusCode: response.StatusCode, Err: err}
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return AnswerResponse{}, &RequestError{
			URL:        c.url,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", response.Status),
		}
	}

	var parsed AnswerResponse
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return AnswerResponse{}, &RequestError{URL: c.url, StatusCode: response.StatusCode, Err: err}
	}
	return parsed, nil
}
