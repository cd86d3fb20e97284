package ledger

import (
	"fmt"

	"github.com/hashgraph/hedera-sdk-go/v2"
)

// StatusSuccess is the receipt status of an applied transaction.
const StatusSuccess = "SUCCESS"

// Receipt is the consensus outcome of a submitted transaction.
type Receipt struct {
	Status        string
	TransactionID string
	FileID        *hedera.FileID
	ContractID    *hedera.ContractID
}

// CallResult is the outcome of a contract function executed as a transaction,
// read back from its record.
type CallResult struct {
	Receipt
	// Data is the ABI-encoded return value.
	Data    []byte
	GasUsed uint64
}

// Balance is an account balance as reported by a consensus node.
type Balance struct {
	Hbars  string
	Tokens map[string]uint64
}

// CreateContractRequest describes a contract deployment from a bytecode file.
type CreateContractRequest struct {
	BytecodeFileID hedera.FileID
	Gas            uint64
	// ConstructorParams is the ABI-encoded constructor argument list (no selector).
	ConstructorParams []byte
}

func (r *CreateContractRequest) validate() error {
	if r == nil {
		return fmt.Errorf("nil request")
	}
	if r.Gas == 0 {
		return fmt.Errorf("gas is required")
	}
	return nil
}

// ExecuteRequest describes a contract function call submitted as a transaction.
type ExecuteRequest struct {
	ContractID hedera.ContractID
	Gas        uint64
	// MaxFeeHbar caps the transaction fee; zero keeps the client default.
	MaxFeeHbar float64
	// Function names the call for logs and metrics.
	Function string
	// Data is the full call data, selector included.
	Data []byte
}

func (r *ExecuteRequest) validate() error {
	if r == nil {
		return fmt.Errorf("nil request")
	}
	if r.Gas == 0 {
		return fmt.Errorf("gas is required")
	}
	if len(r.Data) < 4 {
		return fmt.Errorf("call data must include a function selector")
	}
	return nil
}

// StatusError reports a transaction that reached consensus (or precheck) with a
// status other than SUCCESS.
type StatusError struct {
	Op     string
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed with status %s", e.Op, e.Status)
}
