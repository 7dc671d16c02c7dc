package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/assemble"
	"github.com/katalvlaran/dutyswap/logger"
	"github.com/katalvlaran/dutyswap/request"
	"github.com/katalvlaran/dutyswap/swap"
)

const (
	// MsgBadRequest is returned for bodies that do not match the schema.
	MsgBadRequest = "Request body incorrect format"

	// DefaultMaxSteps applies when the body carries no maxSteps.
	DefaultMaxSteps = 2

	// UnknownStrategyLabel stands in for any strategy name that is not
	// registered, in metrics and in 400 envelopes.
	UnknownStrategyLabel = "unknown"

	maxBodyBytes = 8 << 20
)

// optimizeRequest accepts both the legacy (pool, matchData) and the newer
// (requestPool, requestData) field names.
type optimizeRequest struct {
	Pool        *string       `json:"pool"`
	RequestPool *string       `json:"requestPool"`
	MatchData   []matchRecord `json:"matchData"`
	RequestData []matchRecord `json:"requestData"`
	MaxSteps    *int          `json:"maxSteps"`
	Strategy    string        `json:"strategy"`
}

type matchRecord struct {
	ID     *string `json:"id"`
	From   *string `json:"from"`
	To     *string `json:"to"`
	Weight *int64  `json:"weight"`
}

// APIHandlers exposes the optimizer over HTTP.
type APIHandlers struct {
	log        logger.Logger
	metrics    *Metrics
	strategies map[string]swap.Strategy
	opts       []swap.Option
}

// NewAPIHandlers constructs an APIHandlers instance. A nil strategies map
// means swap.Builtin(); opts are applied to every optimization before the
// per-request strategy and pool.
func NewAPIHandlers(log logger.Logger, metrics *Metrics, strategies map[string]swap.Strategy, opts ...swap.Option) *APIHandlers {
	if strategies == nil {
		strategies = swap.Builtin()
	}
	return &APIHandlers{
		log:        log,
		metrics:    metrics,
		strategies: strategies,
		opts:       opts,
	}
}

func (h *APIHandlers) handleOptimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	runID := RunID(r.Context())

	var body optimizeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		h.log.Warningf("run %s: %s: %v", runID, MsgBadRequest, err)
		h.badRequest(w, UnknownStrategyLabel)
		return
	}
	name := h.strategyLabel(body.Strategy)
	pool, reqs, err := body.toRequests()
	if err != nil {
		h.log.Warningf("run %s: %s: %v", runID, MsgBadRequest, err)
		h.badRequest(w, name)
		return
	}

	strategy, ok := h.strategies[name]
	if !ok {
		h.log.Warningf("run %s: unknown strategy %q", runID, body.Strategy)
		h.badRequest(w, name)
		return
	}
	maxSteps := DefaultMaxSteps
	if body.MaxSteps != nil {
		maxSteps = *body.MaxSteps
	}

	opts := make([]swap.Option, 0, len(h.opts)+3)
	opts = append(opts, h.opts...)
	opts = append(opts, swap.WithStrategyImpl(strategy), swap.WithPool(pool), swap.WithLogger(h.log))

	h.metrics.begin()
	start := time.Now()
	res, err := swap.Optimize(r.Context(), reqs, maxSteps, opts...)
	h.metrics.end()

	status, outcome := statusFor(err)
	h.metrics.observe(name, outcome, time.Since(start).Seconds(), res.SwapCount)
	if err != nil {
		h.log.Errorf("run %s: %s/%s failed: %v", runID, name, pool, err)
	} else {
		h.log.Infof("run %s: optimization completed (%d swaps)", runID, res.SwapCount)
	}
	respondJSON(w, status, res)
}

// strategyLabel maps a requested strategy name onto a registered name, the
// default for an empty one, or UnknownStrategyLabel. Only its result may be
// used as a metric label.
func (h *APIHandlers) strategyLabel(name string) string {
	if name == "" {
		name = swap.StrategyVariable
	}
	if _, ok := h.strategies[name]; !ok {
		return UnknownStrategyLabel
	}
	return name
}

// badRequest answers 400; label must come from strategyLabel.
func (h *APIHandlers) badRequest(w http.ResponseWriter, label string) {
	h.metrics.observe(label, outcomeBadInput, 0, 0)
	respondJSON(w, http.StatusBadRequest, swap.Result{
		Type:    label,
		Success: false,
		Result:  [][]assemble.Link{},
		Error:   MsgBadRequest,
	})
}

// toRequests checks the decoded body against the request schema.
func (b optimizeRequest) toRequests() (string, []request.SwapRequest, error) {
	pool := b.Pool
	if pool == nil {
		pool = b.RequestPool
	}
	if pool == nil {
		return "", nil, errors.New("missing pool")
	}
	data := b.MatchData
	if data == nil {
		data = b.RequestData
	}
	if data == nil {
		return "", nil, errors.New("missing matchData")
	}

	reqs := make([]request.SwapRequest, len(data))
	for i, m := range data {
		if m.ID == nil || m.From == nil || m.To == nil || m.Weight == nil {
			return "", nil, errors.Newf("matchData[%d]: missing field", i)
		}
		reqs[i] = request.SwapRequest{ID: *m.ID, From: *m.From, To: *m.To, Weight: *m.Weight}
	}

	return *pool, reqs, nil
}

// statusFor maps an Optimize error to the HTTP status and metrics outcome.
func statusFor(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusOK, outcomeSuccess
	case errors.IsAny(err, swap.ErrInput, swap.ErrEnumerationLimit):
		return http.StatusUnprocessableEntity, outcomeRejected
	case errors.Is(err, swap.ErrNoOptimalSolution):
		return http.StatusInternalServerError, outcomeNoOptimal
	default:
		return http.StatusInternalServerError, outcomeInternal
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	for _, m := range allowed {
		w.Header().Add("Allow", m)
	}
	respondJSON(w, http.StatusMethodNotAllowed, map[string]any{
		"success": false,
		"error":   "method not allowed",
	})
}
