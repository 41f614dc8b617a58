package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lox/pokerrank/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerHealth(t *testing.T) {
	t.Parallel()
	srv := NewServer(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func postEvaluate(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestEvaluateEndpoint(t *testing.T) {
	t.Parallel()
	srv := NewServer(testLogger())

	tests := []struct {
		name        string
		cards       string
		rank        int
		category    string
		description string
	}{
		{"royal flush", "AsKsQsJsTs", 1, "Straight Flush", "Royal Flush"},
		{"steel wheel", "5h 4h 3h 2h Ah", 10, "Straight Flush", "Straight Flush"},
		{"quad aces", "AcAdAhAsKc", 11, "Four of a Kind", "Four of a Kind"},
		{"worst hand", "7c 5d 4h 3s 2c", 7462, "High Card", "High Card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(EvaluateData{Cards: tt.cards})
			require.NoError(t, err)

			w := postEvaluate(t, srv, string(body))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var result ResultData
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.Equal(t, tt.rank, result.Rank)
			assert.Equal(t, tt.category, result.Category)
			assert.Equal(t, tt.description, result.Description)
			assert.Len(t, result.Cards, poker.HandSize)
		})
	}
}

func TestEvaluateEndpointCardsOrder(t *testing.T) {
	t.Parallel()
	srv := NewServer(testLogger())

	w := postEvaluate(t, srv, `{"cards":"kd 5s jc ah qc"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result ResultData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, []string{"Kd", "5s", "Jc", "Ah", "Qc"}, result.Cards)
}

func TestEvaluateEndpointErrors(t *testing.T) {
	t.Parallel()
	srv := NewServer(testLogger())

	tests := []struct {
		name string
		body string
		code string
	}{
		{"bad rank", `{"cards":"XsKsQsJsTs"}`, CodeInvalidCard},
		{"bad suit", `{"cards":"AxKsQsJsTs"}`, CodeInvalidCard},
		{"odd length", `{"cards":"AsKsQsJsT"}`, CodeInvalidCard},
		{"four cards", `{"cards":"AsKsQsJs"}`, CodeWrongHandSize},
		{"six cards", `{"cards":"AsKsQsJsTs9s"}`, CodeWrongHandSize},
		{"empty", `{"cards":""}`, CodeWrongHandSize},
		{"duplicate", `{"cards":"AsAsQsJsTs"}`, CodeDuplicateCard},
		{"not json", `cards=AsKsQsJsTs`, CodeInvalidMessage},
		{"wrong type", `{"cards":5}`, CodeInvalidMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postEvaluate(t, srv, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestEvaluateEndpointMethod(t *testing.T) {
	t.Parallel()
	srv := NewServer(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/evaluate", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestEvaluateEndpointBodyLimit(t *testing.T) {
	t.Parallel()
	srv := NewServer(testLogger())

	body := `{"cards":"` + strings.Repeat(" ", maxMessageSize) + `AsKsQsJsTs"}`
	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	_, err := poker.ParseHand("As Ks")
	assert.Equal(t, CodeWrongHandSize, errorCode(err))

	_, err = poker.ParseHand("As As Qs Js Ts")
	assert.Equal(t, CodeDuplicateCard, errorCode(err))

	_, err = poker.ParseCard("1s")
	assert.Equal(t, CodeInvalidCard, errorCode(err))

	assert.Equal(t, CodeInvalidMessage, errorCode(assert.AnError))
}
