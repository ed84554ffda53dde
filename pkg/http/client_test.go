package http

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoBody struct {
	Method string `json:"method"`
	Query  string `json:"query"`
	Header string `json:"header"`
}

type recordingLogger struct {
	requests  int
	successes int
	failures  []int
}

func (r *recordingLogger) LogRequest(string, string, map[string]string, string) { r.requests++ }

func (r *recordingLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
	r.successes++
}

func (r *recordingLogger) LogResponseError(_ string, _ string, _ map[string]string, _ string, status int, _ string, _ int64, _ error) {
	r.failures = append(r.failures, status)
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(echoBody{Method: r.Method, Query: r.URL.RawQuery, Header: r.Header.Get("X-Test")})
	})
	mux.HandleFunc("/mirror", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", r.Header.Get("Content-Type"))
		w.Header().Set("X-Method", r.Method)
		_, _ = w.Write(body)
	})
	mux.HandleFunc("/latin1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=ISO-8859-1")
		_, _ = w.Write([]byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<place><name>Sainte-Genevi\xe8ve</name><state>MO</state></place>"))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRequestSuccess(t *testing.T) {
	server := newServer(t)
	logger := &recordingLogger{}
	client := NewHttpClient(server.URL+"/", ClientOptions{Logger: logger})

	resp, errResp, status, err := client.Request().
		WithPath("echo").
		WithQueryParams(map[string]string{"q": "ann arbor"}).
		WithHeaders(map[string]string{"X-Test": "yes"}).
		WithSuccessResp(&echoBody{}).
		Execute()

	require.NoError(t, err)
	assert.Nil(t, errResp)
	assert.Equal(t, http.StatusOK, status)
	body := resp.(*echoBody)
	assert.Equal(t, "GET", body.Method)
	assert.Equal(t, "q=ann+arbor", body.Query)
	assert.Equal(t, "yes", body.Header)
	assert.Equal(t, 1, logger.requests)
	assert.Equal(t, 1, logger.successes)
}

func TestRequestStatusError(t *testing.T) {
	server := newServer(t)
	logger := &recordingLogger{}
	client := NewHttpClient(server.URL, ClientOptions{Logger: logger})

	var apiErr struct {
		Message string `json:"message"`
	}
	_, errResp, status, err := client.Request().
		WithPath("/missing").
		WithErrorResp(&apiErr).
		Execute()

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotNil(t, errResp)
	assert.Equal(t, "not found", apiErr.Message)
	assert.Equal(t, []int{http.StatusNotFound}, logger.failures)
}

func TestRequestDismiss404(t *testing.T) {
	server := newServer(t)
	client := NewHttpClient(server.URL, ClientOptions{Dismiss404: true})

	_, _, status, err := client.Request().WithPath("/missing").Execute()
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRequestContextCancelled(t *testing.T) {
	server := newServer(t)
	client := NewHttpClient(server.URL, ClientOptions{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, status, err := client.Request().WithContext(ctx).WithPath("/slow").Execute()
	require.Error(t, err)
	assert.Zero(t, status)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type xmlPlace struct {
	XMLName xml.Name `xml:"place"`
	Name    string   `xml:"name"`
	State   string   `xml:"state"`
}

func TestGetDecodesLatin1XML(t *testing.T) {
	server := newServer(t)
	client := NewHttpClient(server.URL, ClientOptions{})

	resp, _, status, err := client.Get(context.Background(), "/latin1", nil, nil, &xmlPlace{}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	place := resp.(*xmlPlace)
	assert.Equal(t, "Sainte-Genevi\u00e8ve", place.Name)
	assert.Equal(t, "MO", place.State)
}

func TestGetWithQueryParams(t *testing.T) {
	server := newServer(t)
	client := NewHttpClient(server.URL, ClientOptions{DefaultHeaders: map[string]string{"X-Test": "default"}})

	resp, _, status, err := client.Get(context.Background(), "echo",
		map[string]string{"state": "MI", "city": "Ann Arbor"}, nil, &echoBody{}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	body := resp.(*echoBody)
	assert.Equal(t, "GET", body.Method)
	assert.Equal(t, "city=Ann+Arbor&state=MI", body.Query)
	assert.Equal(t, "default", body.Header)
}

func TestPostEncodesBody(t *testing.T) {
	server := newServer(t)
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		client := NewHttpClient(server.URL, ClientOptions{})
		sent := echoBody{Method: "register", Query: "48103"}

		resp, _, status, err := client.Post(ctx, "/mirror", nil, nil, sent, &echoBody{}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, sent, *resp.(*echoBody))
	})

	t.Run("xml", func(t *testing.T) {
		client := NewHttpClient(server.URL, ClientOptions{DefaultContentType: "application/xml"})
		sent := xmlPlace{Name: "Ann Arbor", State: "MI"}

		resp, _, _, err := client.Post(ctx, "/mirror", nil, nil, sent, &xmlPlace{}, nil)
		require.NoError(t, err)
		got := resp.(*xmlPlace)
		assert.Equal(t, "Ann Arbor", got.Name)
		assert.Equal(t, "MI", got.State)
	})

	t.Run("plain text", func(t *testing.T) {
		client := NewHttpClient(server.URL, ClientOptions{})
		var text string

		_, _, _, err := client.Request().
			WithMethod(POST).
			WithPath("/mirror").
			WithBody("48103,48104").
			WithSuccessResp(&text).
			Execute()
		require.NoError(t, err)
		assert.Equal(t, "48103,48104", text)
	})

	t.Run("bytes", func(t *testing.T) {
		client := NewHttpClient(server.URL, ClientOptions{})

		_, _, status, err := client.Post(ctx, "/mirror", nil, nil, []byte{0x01, 0x02}, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, status)
	})
}
