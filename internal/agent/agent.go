// Package agent provides the HTTP transport used to reach canister actors.
package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	http "github.com/bogdanfinn/fhttp"
	log "github.com/mgutz/logxi/v1"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/auctiondapp/internal/errors"
	"github.com/diogo/auctiondapp/internal/logging"
)

// DefaultHost is the address of a local dfx replica.
const DefaultHost = "http://127.0.0.1:4943"

// DefaultTimeout bounds a single call.
const DefaultTimeout = 30 * time.Second

// Envelope paths
const (
	PathStatus        = "status"
	PathReplyArgs     = "reply.arg"
	PathRejectCode    = "reject_code"
	PathRejectMessage = "reject_message"
)

// HTTPDoer is the subset of tls_client.HttpClient the agent needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HttpAgent sends calls to canisters through a replica endpoint.
type HttpAgent struct {
	host       string
	timeout    time.Duration
	httpClient HTTPDoer
	logger     log.Logger

	mu     sync.RWMutex
	closed bool
}

// Option configures the agent
type Option func(*HttpAgent)

// WithHost sets the replica endpoint
func WithHost(host string) Option {
	return func(a *HttpAgent) {
		a.host = strings.TrimRight(host, "/")
	}
}

// WithTimeout sets the per-call timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(a *HttpAgent) {
		a.timeout = timeout
	}
}

// WithHTTPClient replaces the default tls-client transport
func WithHTTPClient(client HTTPDoer) Option {
	return func(a *HttpAgent) {
		a.httpClient = client
	}
}

// WithLogger sets the agent logger
func WithLogger(logger log.Logger) Option {
	return func(a *HttpAgent) {
		a.logger = logger
	}
}

// NewHttpAgent creates an agent. Without WithHTTPClient it builds the
// platform default client: tls-client natively, fetch under js/wasm.
func NewHttpAgent(opts ...Option) (*HttpAgent, error) {
	a := &HttpAgent{
		host:    DefaultHost,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.host == "" {
		return nil, fmt.Errorf("agent host cannot be empty")
	}
	if a.logger == nil {
		a.logger = logging.New("agent")
	}

	if a.httpClient == nil {
		client, err := defaultHTTPClient(a.timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		a.httpClient = client
	}

	return a, nil
}

// Host returns the replica endpoint
func (a *HttpAgent) Host() string {
	return a.host
}

// Close stops the agent from issuing further calls
func (a *HttpAgent) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
}

// IsClosed returns whether the agent is closed
func (a *HttpAgent) IsClosed() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.closed
}

type callRequest struct {
	MethodName string `json:"method_name"`
	Arg        []any  `json:"arg"`
}

// CallURL returns the endpoint for calls to the given canister
func (a *HttpAgent) CallURL(canisterID CanisterID) string {
	return fmt.Sprintf("%s/api/v2/canister/%s/call", a.host, canisterID)
}

// Call invokes method on the canister and returns the reply values as a
// gjson array.
func (a *HttpAgent) Call(ctx context.Context, canisterID CanisterID, method string, args ...any) (gjson.Result, error) {
	if a.IsClosed() {
		return gjson.Result{}, apierrors.ErrClosed
	}
	if method == "" {
		return gjson.Result{}, fmt.Errorf("method name cannot be empty")
	}
	if args == nil {
		args = []any{}
	}

	payload, err := json.Marshal(callRequest{MethodName: method, Arg: args})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to encode call: %w", err)
	}

	endpoint := a.CallURL(canisterID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	a.logger.Debug("calling canister", "canister", canisterID.String(), "method", method)
	start := time.Now()

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, apierrors.NewNetworkError("call "+method, endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, apierrors.NewNetworkError("read reply", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, apierrors.NewAPIError(resp.StatusCode, endpoint, "unexpected status").WithBody(string(body))
	}

	result, err := parseEnvelope(method, body)
	if err != nil {
		return gjson.Result{}, err
	}

	a.logger.Debug("call completed", "method", method, "elapsed", time.Since(start).String())
	return result, nil
}

// parseEnvelope interprets a replied/rejected response.
func parseEnvelope(method string, body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, apierrors.NewParseError("response is not valid JSON", "")
	}

	status := gjson.GetBytes(body, PathStatus)
	switch status.String() {
	case "replied":
		args := gjson.GetBytes(body, PathReplyArgs)
		if !args.IsArray() {
			return gjson.Result{}, apierrors.NewParseError("reply has no argument list", PathReplyArgs)
		}
		return args, nil
	case "rejected":
		return gjson.Result{}, apierrors.NewRejectError(
			method,
			int(gjson.GetBytes(body, PathRejectCode).Int()),
			gjson.GetBytes(body, PathRejectMessage).String(),
		)
	case "":
		return gjson.Result{}, apierrors.NewParseError("missing status", PathStatus)
	default:
		return gjson.Result{}, apierrors.NewParseError(fmt.Sprintf("unknown status %q", status.String()), PathStatus)
	}
}
