package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/dutyswap/assemble"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/logger"
	"github.com/katalvlaran/dutyswap/packing"
	"github.com/katalvlaran/dutyswap/swap"
)

const pairBody = `{
	"pool": "night",
	"matchData": [
		{"id": "id1", "from": "Amy", "to": "Ben", "weight": 2},
		{"id": "id2", "from": "Ben", "to": "Amy", "weight": 3}
	],
	"maxSteps": 2
}`

func newTestRouter(t *testing.T, strategies map[string]swap.Strategy) (http.Handler, *Metrics) {
	t.Helper()
	log := logger.NewLoggerTo(io.Discard, "CRITICAL", "server-test")
	metrics := NewMetrics("")
	api := NewAPIHandlers(log, metrics, strategies)

	return NewRouter(log, RouterDependencies{API: api, Metrics: metrics}), metrics
}

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, swap.Result) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/optimize", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var res swap.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res), rec.Body.String())

	return rec, res
}

func TestHandleOptimize_Pair(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	rec, res := post(t, h, pairBody)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	_, err := uuid.Parse(rec.Header().Get(RunIDHeader))
	assert.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "night", res.Pool)
	assert.Equal(t, swap.StrategyVariable, res.Type)
	assert.Equal(t, 2, res.SwapCount)
	assert.Equal(t, int64(5), res.TotalWeight)
	assert.Equal(t, [][]assemble.Link{{
		{ID: "id1", From: "Amy", To: "Ben"},
		{ID: "id2", From: "Ben", To: "Amy"},
	}}, res.Result)
}

func TestHandleOptimize_AlternateFieldNames(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	body := `{
		"requestPool": "day",
		"requestData": [
			{"id": "a", "from": "A", "to": "B", "weight": 1},
			{"id": "b", "from": "B", "to": "C", "weight": 1},
			{"id": "c", "from": "C", "to": "A", "weight": 1}
		],
		"maxSteps": 3
	}`
	rec, res := post(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "day", res.Pool)
	assert.Equal(t, 3, res.SwapCount)
}

func TestHandleOptimize_DefaultMaxSteps(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	body := `{
		"pool": "p",
		"matchData": [
			{"id": "a", "from": "A", "to": "B", "weight": 1},
			{"id": "b", "from": "B", "to": "C", "weight": 1},
			{"id": "c", "from": "C", "to": "A", "weight": 1}
		]
	}`
	rec, res := post(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.SwapCount)
	assert.Equal(t, DefaultMaxSteps, res.MaxSteps)
	assert.Empty(t, res.Result)
}

func TestHandleOptimize_Strategy(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	body := `{
		"pool": "p",
		"strategy": "unlimited",
		"matchData": [
			{"id": "a", "from": "A", "to": "B", "weight": 1},
			{"id": "b", "from": "B", "to": "C", "weight": 1},
			{"id": "c", "from": "C", "to": "D", "weight": 1},
			{"id": "d", "from": "D", "to": "A", "weight": 1}
		]
	}`
	rec, res := post(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, swap.StrategyUnlimited, res.Type)
	assert.Equal(t, 4, res.SwapCount)
	assert.Equal(t, 4, res.MaxSteps)
}

func TestHandleOptimize_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"missing pool", `{"matchData": [], "maxSteps": 2}`},
		{"missing data", `{"pool": "p", "maxSteps": 2}`},
		{"missing weight", `{"pool": "p", "matchData": [{"id": "a", "from": "A", "to": "B"}]}`},
		{"fractional weight", `{"pool": "p", "matchData": [{"id": "a", "from": "A", "to": "B", "weight": 1.5}]}`},
		{"string maxSteps", `{"pool": "p", "matchData": [], "maxSteps": "2"}`},
		{"unknown strategy", `{"pool": "p", "matchData": [], "strategy": "greedy"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(t, nil)
			rec, res := post(t, h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, res.Success)
			assert.Equal(t, MsgBadRequest, res.Error)
		})
	}
}

func TestHandleOptimize_BadRequestType(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"not json", `{"strategy": "bipartite", `, UnknownStrategyLabel},
		{"unknown strategy", `{"pool": "p", "matchData": [], "strategy": "greedy"}`, UnknownStrategyLabel},
		{"known strategy, missing pool", `{"matchData": [], "strategy": "bipartite"}`, swap.StrategyBipartite},
		{"default strategy, missing data", `{"pool": "p"}`, swap.StrategyVariable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(t, nil)
			rec, res := post(t, h, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, res.Type)
			assert.Equal(t, [][]assemble.Link{}, res.Result)
		})
	}
}

func TestMetrics_StrategyLabelIsBounded(t *testing.T) {
	h, metrics := newTestRouter(t, nil)
	for i := 0; i < 50; i++ {
		post(t, h, fmt.Sprintf(`{"pool": "p", "matchData": [], "strategy": "junk%d"}`, i))
		post(t, h, fmt.Sprintf(`{"strategy": "junk%d", "pool": `, i))
		post(t, h, fmt.Sprintf(`{"strategy": "junk%d"}`, i))
	}

	families, err := metrics.Registry().Gather()
	require.NoError(t, err)

	series := map[string]int{}
	for _, f := range families {
		series[f.GetName()] = len(f.GetMetric())
	}
	assert.Equal(t, 1, series["dutyswap_optimizer_runs_total"])
	assert.Equal(t, 1, series["dutyswap_optimizer_duration_seconds"])

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(),
		`dutyswap_optimizer_runs_total{outcome="bad_request",strategy="unknown"} 150`)
	assert.NotContains(t, rec.Body.String(), "junk")
}

func TestHandleOptimize_InvalidPool(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty", `{"pool": "p", "matchData": []}`},
		{"self swap", `{"pool": "p", "matchData": [{"id": "a", "from": "A", "to": "A", "weight": 1}]}`},
		{"negative weight", `{"pool": "p", "matchData": [{"id": "a", "from": "A", "to": "B", "weight": -1}]}`},
		{"duplicate id", `{"pool": "p", "matchData": [
			{"id": "a", "from": "A", "to": "B", "weight": 1},
			{"id": "a", "from": "B", "to": "A", "weight": 1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(t, nil)
			rec, res := post(t, h, tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Error)
			assert.Equal(t, [][]assemble.Link{}, res.Result)
		})
	}
}

func TestHandleOptimize_StrategyFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"no optimal", packing.ErrNoOptimalSolution, http.StatusInternalServerError, swap.MsgNoOptimalSolution},
		{"internal", errors.New("boom"), http.StatusInternalServerError, swap.MsgInternal},
		{"too many cycles", cycles.ErrTooManyCycles, http.StatusUnprocessableEntity, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := swap.NewMockStrategy(ctrl)
			m.EXPECT().Name().Return("mock").AnyTimes()
			m.EXPECT().FindSwaps(gomock.Any(), gomock.Any()).Return(swap.Outcome{}, tt.err)

			h, _ := newTestRouter(t, map[string]swap.Strategy{"mock": m})
			body := strings.Replace(pairBody, `"pool"`, `"strategy": "mock", "pool"`, 1)
			rec, res := post(t, h, body)

			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, res.Success)
			assert.Equal(t, "mock", res.Type)
			if tt.message != "" {
				assert.Equal(t, tt.message, res.Error)
			} else {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestHandleOptimize_PassesRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := swap.NewMockStrategy(ctrl)
	m.EXPECT().Name().Return("mock").AnyTimes()
	m.EXPECT().FindSwaps(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p swap.Problem) (swap.Outcome, error) {
			assert.Equal(t, 2, p.MaxSteps)
			require.Len(t, p.Requests, 2)
			assert.Equal(t, "Amy", p.Requests[0].From)
			assert.Equal(t, int64(3), p.Requests[1].Weight)
			return swap.Outcome{MaxSteps: 2}, nil
		})

	h, _ := newTestRouter(t, map[string]swap.Strategy{"mock": m})
	body := strings.Replace(pairBody, `"pool"`, `"strategy": "mock", "pool"`, 1)
	rec, res := post(t, h, body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.SwapCount)
}

func TestHandleOptimize_MethodNotAllowed(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/optimize", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestHealthz(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestRouter(t, nil)
	post(t, h, pairBody)
	post(t, h, `{`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `dutyswap_optimizer_runs_total{outcome="success",strategy="variable"} 1`)
	assert.Contains(t, body, `dutyswap_optimizer_runs_total{outcome="bad_request",strategy="unknown"} 1`)
	assert.Contains(t, body, `dutyswap_optimizer_swap_count_sum{strategy="variable"} 2`)
	assert.Contains(t, body, `dutyswap_optimizer_in_flight 0`)
}

func TestRunID(t *testing.T) {
	var seen string
	log := logger.NewLoggerTo(io.Discard, "CRITICAL", "server-test")
	h := loggingMiddleware(log, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RunID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", bytes.NewReader(nil)))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RunIDHeader))
	assert.Empty(t, RunID(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
