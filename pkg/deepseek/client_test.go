package deepseek

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/must-coursehub/course-advisor/pkg/logger"
)

func newTestClient(url string) *Client {
	return &Client{
		apiKey:  "sk-test",
		apiURL:  url,
		model:   "deepseek-chat",
		enabled: true,
		client:  &http.Client{Timeout: 5 * time.Second},
		logger:  logger.NewLogger(),
	}
}

func completionBody(content string) string {
	return `{"id":"c1","model":"deepseek-chat","choices":[{"message":{"role":"assistant","content":` +
		string(mustJSON(content)) + `},"finish_reason":"stop"}],"usage":{"prompt_tokens":10,"completion_tokens":5}}`
}

func mustJSON(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func TestCompleteSendsExpectedRequest(t *testing.T) {
	var captured chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("你好！")))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	content, err := c.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "system",
		UserPrompt:   "user",
		Temperature:  0.3,
		MaxTokens:    500,
		JSONOutput:   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "你好！", content)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_object", captured.ResponseFormat.Type)
}

func TestCompleteNonOKStatusIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})

	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestCompleteUnreachableHostIsTransportError(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1")
	_, err := c.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.NotNil(t, errors.Unwrap(te))
}

func TestCompleteEmptyChoicesIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"c1","choices":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})

	var me *MalformedResponseError
	require.ErrorAs(t, err, &me)
}

func TestCompleteBadJSONIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Complete(context.Background(), CompletionRequest{UserPrompt: "hi"})

	var me *MalformedResponseError
	require.ErrorAs(t, err, &me)
}

func TestAvailable(t *testing.T) {
	c := newTestClient("http://example.com")
	assert.True(t, c.Available())

	c.apiKey = ""
	assert.False(t, c.Available())

	c.apiKey = placeholderKey
	assert.False(t, c.Available())

	c.apiKey = "sk-real"
	c.enabled = false
	assert.False(t, c.Available())
}
