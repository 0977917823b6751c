package alchemyrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/TopiaNetwork/gastimator/gas"
	tplog "github.com/TopiaNetwork/gastimator/log"
	tplogcmm "github.com/TopiaNetwork/gastimator/log/common"
	"github.com/TopiaNetwork/gastimator/transaction"
)

// AlchemyEthereumBaseURL is the base url of the Alchemy Ethereum API; the
// API key is appended as the final path segment.
const AlchemyEthereumBaseURL = "https://eth-mainnet.g.alchemy.com/v2"

const estimateGasMethod = "eth_estimateGas"

// The upstream service has no structured error code for an insufficient
// gas limit; this substring in the raw response body is the only signal.
const gasExceedsAllowanceMarker = "gas required exceeds allowance"

const defaultRequestTimeout = 30 * time.Second

// Client is an outbound JSON-RPC client performing remote gas estimates.
type Client struct {
	endpoint string
	client   *http.Client
	nextID   uint64
	log      tplog.Logger
}

// NewClient builds a Client against the Alchemy mainnet API.
func NewClient(apiKey string, level tplogcmm.LogLevel, parentLog tplog.Logger) *Client {
	return NewClientWithEndpoint(fmt.Sprintf("%s/%s", AlchemyEthereumBaseURL, apiKey), level, parentLog)
}

// NewClientWithEndpoint builds a Client against an arbitrary endpoint,
// used by tests and non-Alchemy deployments.
func NewClientWithEndpoint(endpoint string, level tplogcmm.LogLevel, parentLog tplog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultRequestTimeout},
		log:      tplog.CreateModuleLogger(level, "alchemyrpc", parentLog),
	}
}

// EstimateGas performs a single eth_estimateGas round trip for tx.
func (c *Client) EstimateGas(ctx context.Context, tx *transaction.Transaction) (gas.Gas, error) {
	input := newEstimateGasInput(tx)

	req := rpcRequest{
		Jsonrpc: "2.0",
		Method:  estimateGasMethod,
		Params:  []interface{}{input},
		ID:      atomic.AddUint64(&c.nextID, 1),
	}
	reqBody, err := json.Marshal(&req)
	if err != nil {
		return 0, fmt.Errorf("marshal %s request: %w", estimateGasMethod, err)
	}
	c.log.Debugf("remote estimate request: %s", string(reqBody))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", estimateGasMethod, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("send %s request: %w", estimateGasMethod, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, fmt.Errorf("read %s response: %w", estimateGasMethod, err)
	}
	c.log.Debugf("remote estimate response: status=%d body=%s", httpResp.StatusCode, string(respBody))

	// The allowance marker must be checked on the raw body, before any
	// structured parsing.
	if strings.Contains(string(respBody), gasExceedsAllowanceMarker) {
		return 0, gas.ExceedsLimitUnknownCost(tx.GasLimitElseMax())
	}

	var resp rpcResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return 0, fmt.Errorf("parse %s response: %w", estimateGasMethod, err)
	}
	estimated, err := strconv.ParseUint(resp.resultStrip0x(), 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s result %q as hex quantity: %w", estimateGasMethod, resp.Result, err)
	}

	c.log.Debugf("remote estimate: %d", estimated)
	return gas.Gas(estimated), nil
}
