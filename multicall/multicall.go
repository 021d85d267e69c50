package multicall

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const (
	DefaultMaxCallsPerBatch = 100
	aggregateMethod         = "tryAggregate"
)

// ErrBatchFailed is returned when a whole batch could not be executed. It
// never describes a single failing call.
var ErrBatchFailed = errors.New("multicall batch failed")

type Call struct {
	Address common.Address
	Name    string
	Params  []interface{}
}

type Options struct {
	RequireSuccess bool
}

type aggregateCall struct {
	Target   common.Address
	CallData []byte
}

type aggregateResult struct {
	Success    bool
	ReturnData []byte
}

// Caller batches read calls through a Multicall2 deployment.
type Caller struct {
	client    ethereum.ContractCaller
	address   common.Address
	abi       abi.ABI
	batchSize int
	timeout   time.Duration
}

func NewCaller(client ethereum.ContractCaller, address common.Address, batchSize int, timeout time.Duration) (*Caller, error) {
	parsed, err := abi.JSON(strings.NewReader(Multicall2ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse multicall abi: %w", err)
	}
	if batchSize <= 0 {
		batchSize = DefaultMaxCallsPerBatch
	}
	return &Caller{
		client:    client,
		address:   address,
		abi:       parsed,
		batchSize: batchSize,
		timeout:   timeout,
	}, nil
}

// Multicall runs calls against contractABI and returns the decoded outputs
// positionally. With RequireSuccess false, a call that reverts or returns
// undecodable data yields nil at its position. Any transport failure fails
// the whole batch.
func (c *Caller) Multicall(ctx context.Context, contractABI abi.ABI, calls []Call, opts Options) ([][]interface{}, error) {
	result := make([][]interface{}, 0, len(calls))
	for start := 0; start < len(calls); start += c.batchSize {
		end := start + c.batchSize
		if end > len(calls) {
			end = len(calls)
		}
		chunk, err := c.aggregate(ctx, contractABI, calls[start:end], opts)
		if err != nil {
			return nil, err
		}
		result = append(result, chunk...)
	}
	return result, nil
}

func (c *Caller) aggregate(ctx context.Context, contractABI abi.ABI, calls []Call, opts Options) ([][]interface{}, error) {
	packed := make([]aggregateCall, len(calls))
	for i, call := range calls {
		data, err := contractABI.Pack(call.Name, call.Params...)
		if err != nil {
			return nil, fmt.Errorf("failed to pack %s: %w", call.Name, err)
		}
		packed[i] = aggregateCall{Target: call.Address, CallData: data}
	}
	input, err := c.abi.Pack(aggregateMethod, opts.RequireSuccess, packed)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", aggregateMethod, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	output, err := c.client.CallContract(ctx, ethereum.CallMsg{To: &c.address, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBatchFailed, err)
	}

	unpacked, err := c.abi.Unpack(aggregateMethod, output)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrBatchFailed, aggregateMethod, err)
	}
	if len(unpacked) != 1 {
		return nil, fmt.Errorf("%w: unexpected %s output", ErrBatchFailed, aggregateMethod)
	}
	results := *abi.ConvertType(unpacked[0], new([]aggregateResult)).(*[]aggregateResult)
	if len(results) != len(calls) {
		return nil, fmt.Errorf("%w: got %d results for %d calls", ErrBatchFailed, len(results), len(calls))
	}

	out := make([][]interface{}, len(calls))
	for i, r := range results {
		if !r.Success {
			continue
		}
		values, err := contractABI.Unpack(calls[i].Name, r.ReturnData)
		if err != nil {
			if opts.RequireSuccess {
				return nil, fmt.Errorf("failed to decode %s: %w", calls[i].Name, err)
			}
			continue
		}
		out[i] = values
	}
	return out, nil
}
