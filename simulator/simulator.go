package simulator

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/rawdb"
	"github.com/ethereum/go-ethereum/core/state"
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/core/vm/runtime"

	"github.com/TopiaNetwork/gastimator/gas"
	tplog "github.com/TopiaNetwork/gastimator/log"
	tplogcmm "github.com/TopiaNetwork/gastimator/log/common"
	"github.com/TopiaNetwork/gastimator/transaction"
)

// DefaultSimulationGasBudget is the execution budget used when the
// transaction declares no gas limit.
const DefaultSimulationGasBudget = gas.Gas(30_000_000)

// EvmTxSimulator simulates transactions against an embedded EVM over an
// empty in-memory state. The state is one mutable engine instance reused
// across calls; all access is serialized by an internal mutex, and every
// simulation is reverted so identical inputs give identical results.
type EvmTxSimulator struct {
	mu      sync.Mutex
	statedb *state.StateDB
	log     tplog.Logger
}

func NewEvmTxSimulator(level tplogcmm.LogLevel, parentLog tplog.Logger) (*EvmTxSimulator, error) {
	statedb, err := state.New(common.Hash{}, state.NewDatabase(rawdb.NewMemoryDatabase()), nil)
	if err != nil {
		return nil, fmt.Errorf("create in-memory state: %w", err)
	}
	return &EvmTxSimulator{
		statedb: statedb,
		log:     tplog.CreateModuleLogger(level, "simulator", parentLog),
	}, nil
}

// Simulate executes tx against the embedded EVM and returns the gas it
// consumed, intrinsic cost included. A declared gas limit below the
// intrinsic cost fails with *gas.GasExceedsLimitError carrying the
// intrinsic cost; all other failures are opaque simulation errors.
func (s *EvmTxSimulator) Simulate(tx *transaction.Transaction) (gas.Gas, error) {
	isCreate := tx.To == nil

	intrinsicU64, err := core.IntrinsicGas(tx.Input, nil, isCreate, true, true)
	if err != nil {
		return 0, fmt.Errorf("intrinsic gas: %w", err)
	}
	intrinsic := gas.Gas(intrinsicU64)

	limit := tx.GasLimitElseMax()
	if limit < intrinsic {
		s.log.Warnf("gas limit %d less than intrinsic cost %d", limit, intrinsic)
		return 0, gas.ExceedsLimit(intrinsic, limit)
	}

	execBudget := uint64(DefaultSimulationGasBudget)
	if tx.GasLimit != nil {
		execBudget = uint64(limit - intrinsic)
	}

	execUsed, err := s.execute(tx, isCreate, execBudget)
	if err != nil {
		if errors.Is(err, vm.ErrOutOfGas) && tx.GasLimit != nil {
			s.log.Warnf("execution ran out of gas within declared limit %d", limit)
			return 0, gas.ExceedsLimitUnknownCost(limit)
		}
		return 0, err
	}

	return intrinsic + gas.Gas(execUsed), nil
}

func (s *EvmTxSimulator) execute(tx *transaction.Transaction, isCreate bool, budget uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Every simulation runs on the pristine state.
	snapshot := s.statedb.Snapshot()
	defer s.statedb.RevertToSnapshot(snapshot)

	var origin common.Address
	if tx.From != nil {
		origin = *tx.From
	}
	value := tx.ValueOrZero()
	if value.Sign() > 0 {
		// The sender has no funded account here; cover the transferred
		// value so the simulation mirrors a balance-check-free engine.
		s.statedb.AddBalance(origin, value)
	}

	cfg := &runtime.Config{
		Origin:   origin,
		GasLimit: budget,
		Value:    value,
		State:    s.statedb,
	}

	var leftover uint64
	var err error
	if isCreate {
		_, _, leftover, err = runtime.Create(tx.Input, cfg)
	} else {
		_, leftover, err = runtime.Call(*tx.To, tx.Input, cfg)
	}
	used := budget - leftover

	// A revert still consumed gas; the estimate reports that consumption.
	if err != nil && !errors.Is(err, vm.ErrExecutionReverted) {
		if errors.Is(err, vm.ErrOutOfGas) {
			return 0, err
		}
		return 0, fmt.Errorf("evm execution: %w", err)
	}
	return used, nil
}
