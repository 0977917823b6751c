package gastimator

import (
	"context"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/TopiaNetwork/gastimator/cache"
	"github.com/TopiaNetwork/gastimator/gas"
	tplog "github.com/TopiaNetwork/gastimator/log"
	tplogcmm "github.com/TopiaNetwork/gastimator/log/common"
	"github.com/TopiaNetwork/gastimator/transaction"
)

// LocalTxSimulator simulates a transaction on an embedded execution
// engine. Deterministic for identical input. Returns
// *gas.GasExceedsLimitError when the declared gas limit cannot cover the
// minimal executable path; any other failure is opaque.
type LocalTxSimulator interface {
	Simulate(tx *transaction.Transaction) (gas.Gas, error)
}

// RemoteGasEstimator obtains a gas estimate from an out-of-process
// source.
type RemoteGasEstimator interface {
	EstimateGas(ctx context.Context, tx *transaction.Transaction) (gas.Gas, error)
}

// Gastimator reconciles a local simulation and a remote estimate into a
// single bounded gas usage answer.
type Gastimator struct {
	local  LocalTxSimulator
	remote RemoteGasEstimator
	cache  *cache.GasUsageCache
	log    tplog.Logger
}

func NewGastimator(local LocalTxSimulator, remote RemoteGasEstimator, usageCache *cache.GasUsageCache, level tplogcmm.LogLevel, parentLog tplog.Logger) *Gastimator {
	return &Gastimator{
		local:  local,
		remote: remote,
		cache:  usageCache,
		log:    tplog.CreateModuleLogger(level, "gastimator", parentLog),
	}
}

// EstimateGas produces the timed gas usage answer for tx.
//
// Pure native transfers are answered from the protocol constant without
// touching the cache or the providers. Cacheable transactions are
// answered from the cache when possible. Everything else consults both
// providers concurrently and merges the pair of outcomes.
func (g *Gastimator) EstimateGas(ctx context.Context, tx *transaction.Transaction) (*gas.GasEstimateResponse, error) {
	start := time.Now()
	g.log.Debugf("received transaction: %s", tx)

	kind := tx.Kind()
	if resp, err := g.checkNativeTransfer(tx, kind, start); resp != nil || err != nil {
		return resp, err
	}

	if cached, ok := g.cache.Get(tx); ok {
		g.log.Debugf("found cached estimate: %s", cached)
		return buildResponse(cached, start), nil
	}

	local, remote := g.computeEstimates(ctx, tx)

	usage, err := g.merge(tx, kind, local, remote)
	if err != nil {
		return nil, err
	}

	// An abandoned request must not populate the cache; its provider
	// calls may have been cut short.
	if ctx.Err() == nil {
		g.cache.Put(tx, usage)
	}
	return buildResponse(usage, start), nil
}

// checkNativeTransfer is the fast path for pure transfers: the cost is a
// protocol constant, so no provider call and no cache write is needed.
func (g *Gastimator) checkNativeTransfer(tx *transaction.Transaction, kind gas.TransactionKind, start time.Time) (*gas.GasEstimateResponse, error) {
	if !kind.IsNativeTokenTransfer() {
		return nil, nil
	}
	exact := gas.NativeTokenTransferGas
	limit := tx.GasLimitElseMax()
	if limit < exact {
		return nil, gas.ExceedsLimit(exact, limit)
	}
	return buildResponse(gas.ExactUsage(kind, exact), start), nil
}

type providerOutcome struct {
	gas gas.Gas
	err error
}

// computeEstimates dispatches the local simulation and the remote
// estimate concurrently and waits for both. It never short-circuits on an
// early failure: the merge policy is a function of both outcomes.
func (g *Gastimator) computeEstimates(ctx context.Context, tx *transaction.Transaction) (providerOutcome, providerOutcome) {
	localCh := make(chan providerOutcome, 1)
	remoteCh := make(chan providerOutcome, 1)

	go func() {
		estimated, err := g.local.Simulate(tx)
		localCh <- providerOutcome{gas: estimated, err: err}
	}()
	go func() {
		estimated, err := g.remote.EstimateGas(ctx, tx)
		remoteCh <- providerOutcome{gas: estimated, err: err}
	}()

	return <-localCh, <-remoteCh
}

// merge applies the reconciliation policy to the pair of provider
// outcomes. Only a success, *gas.GasExceedsLimitError, or
// gas.ErrFailedToCalculateGasEstimate ever leaves here.
func (g *Gastimator) merge(tx *transaction.Transaction, kind gas.TransactionKind, local, remote providerOutcome) (gas.GasUsage, error) {
	limit := tx.GasLimitElseMax()
	dontExceedLimit := func(v gas.Gas) gas.Gas { return gas.Min(v, limit) }

	switch {
	case local.err != nil && remote.err != nil:
		// The local engine is the trusted source for the exceeded-cost
		// detail; its error propagates unchanged.
		if gel, ok := gas.AsGasExceedsLimit(local.err); ok {
			return gas.GasUsage{}, gel
		}
		combined := multierror.Append(nil, local.err, remote.err)
		g.log.Errorf("both estimation sources failed: %s", combined.Error())
		return gas.GasUsage{}, gas.ErrFailedToCalculateGasEstimate

	case local.err != nil:
		g.log.Warnf("local simulation failed, using remote estimate %d: %s", remote.gas, local.err)
		return gas.EstimateUsage(kind, dontExceedLimit(remote.gas)), nil

	case remote.err != nil:
		g.log.Warnf("remote estimate failed, using local simulation %d: %s", local.gas, remote.err)
		return gas.EstimateUsage(kind, dontExceedLimit(local.gas)), nil

	default:
		g.log.Debugf("local estimate: %d, remote estimate: %d", local.gas, remote.gas)
		low := gas.Min(local.gas, remote.gas)
		high := dontExceedLimit(gas.Max(local.gas, remote.gas))
		return gas.EstimateWithRangeUsage(kind, low, high), nil
	}
}

func buildResponse(usage gas.GasUsage, start time.Time) *gas.GasEstimateResponse {
	return &gas.GasEstimateResponse{
		GasUsage:            usage,
		TimeElapsedInMillis: time.Since(start).Milliseconds(),
	}
}
