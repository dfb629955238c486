package amb

import (
	"context"
	"fmt"
	"strings"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/chains"
	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

const ambABI = `[{"type":"function","name":"messageCallStatus","stateMutability":"view",` +
	`"inputs":[{"name":"_messageId","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]}]`

const methodMessageCallStatus = "messageCallStatus"

// ParsedABI is the subset of the AMB contract ABI used here.
var ParsedABI = mustParseABI()

func mustParseABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(ambABI))
	if err != nil {
		panic(fmt.Sprintf("invalid AMB ABI: %v", err))
	}
	return parsed
}

// CallerSource hands out a contract caller per chain.
type CallerSource interface {
	Caller(chainID int64) (geth.ContractCaller, error)
}

// StatusChecker asks the AMB contract on the destination chain whether a
// message was executed.
type StatusChecker struct {
	registry *chains.Registry
	callers  CallerSource
	logger   *zap.Logger
}

// NewStatusChecker creates a checker.
func NewStatusChecker(registry *chains.Registry, callers CallerSource, logger *zap.Logger) *StatusChecker {
	return &StatusChecker{
		registry: registry,
		callers:  callers,
		logger:   logger,
	}
}

// CheckExecutionStatus reports whether msg, sent from sourceChainID, has been
// executed on the other side of the bridge.
func (s *StatusChecker) CheckExecutionStatus(ctx context.Context, sourceChainID int64, msg *tracker.Message) (bool, error) {
	if msg == nil {
		return false, fmt.Errorf("no message to check")
	}
	id, err := parseMessageID(msg.ID)
	if err != nil {
		return false, err
	}

	dest, err := s.registry.BridgeChain(sourceChainID)
	if err != nil {
		return false, err
	}
	caller, err := s.callers.Caller(dest.ID)
	if err != nil {
		return false, err
	}

	input, err := ParsedABI.Pack(methodMessageCallStatus, id)
	if err != nil {
		return false, fmt.Errorf("failed to pack %s: %w", methodMessageCallStatus, err)
	}

	to := dest.AMBAddress
	out, err := caller.CallContract(ctx, geth.CallMsg{To: &to, Data: input}, nil)
	if err != nil {
		return false, fmt.Errorf("%s on chain %d: %w", methodMessageCallStatus, dest.ID, err)
	}

	values, err := ParsedABI.Unpack(methodMessageCallStatus, out)
	if err != nil {
		return false, fmt.Errorf("failed to unpack %s: %w", methodMessageCallStatus, err)
	}
	executed, ok := values[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected %s result %T", methodMessageCallStatus, values[0])
	}

	s.logger.Debug("Checked message execution",
		zap.String("message_id", msg.ID),
		zap.Int64("destination_chain_id", dest.ID),
		zap.Bool("executed", executed))
	return executed, nil
}

func parseMessageID(s string) ([32]byte, error) {
	var id [32]byte
	raw, err := hexutil.Decode(s)
	if err != nil {
		return id, fmt.Errorf("invalid message id %q: %w", s, err)
	}
	if len(raw) != common.HashLength {
		return id, fmt.Errorf("invalid message id %q: want %d bytes, got %d", s, common.HashLength, len(raw))
	}
	copy(id[:], raw)
	return id, nil
}
