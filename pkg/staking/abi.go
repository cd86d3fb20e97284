package staking

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Function names of the RewardDistribution contract.
const (
	FnStakeTokens       = "stakeTokens"
	FnUnstakeTokens     = "unstakeTokens"
	FnTransferMptTokens = "transferMptTokens"
	FnClaimRewards      = "claimRewards"
	FnGetStakes         = "getStakes"
	FnGetRewards        = "getRewards"
)

// RewardDistributionABI is the subset of the RewardDistribution ABI used by the tools.
const RewardDistributionABI = `[
  {"type":"constructor","stateMutability":"nonpayable","inputs":[
    {"name":"_mstToken","type":"address"},
    {"name":"_mptToken","type":"address"},
    {"name":"_treasury","type":"address"}]},
  {"type":"function","name":"stakeTokens","stateMutability":"nonpayable",
   "inputs":[{"name":"amount","type":"uint64"}],"outputs":[]},
  {"type":"function","name":"unstakeTokens","stateMutability":"nonpayable",
   "inputs":[{"name":"amount","type":"uint64"}],"outputs":[]},
  {"type":"function","name":"transferMptTokens","stateMutability":"nonpayable",
   "inputs":[{"name":"amount","type":"uint64"},{"name":"recipient","type":"address"}],"outputs":[]},
  {"type":"function","name":"claimRewards","stateMutability":"nonpayable",
   "inputs":[],"outputs":[]},
  {"type":"function","name":"getStakes","stateMutability":"view",
   "inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint64"}]},
  {"type":"function","name":"getRewards","stateMutability":"view",
   "inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint64"}]}
]`

var parsedABI = mustParseABI()

func mustParseABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(RewardDistributionABI))
	if err != nil {
		panic(fmt.Sprintf("invalid RewardDistribution ABI: %v", err))
	}
	return parsed
}

// ConstructorArgs encodes the RewardDistribution constructor arguments.
func ConstructorArgs(mst, mpt, treasury common.Address) ([]byte, error) {
	data, err := parsedABI.Pack("", mst, mpt, treasury)
	if err != nil {
		return nil, fmt.Errorf("pack constructor: %w", err)
	}
	return data, nil
}

func pack(fn string, args ...interface{}) ([]byte, error) {
	data, err := parsedABI.Pack(fn, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", fn, err)
	}
	return data, nil
}

func unpackUint64(fn string, data []byte) (uint64, error) {
	out, err := parsedABI.Unpack(fn, data)
	if err != nil {
		return 0, fmt.Errorf("unpack %s: %w", fn, err)
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("unpack %s: expected 1 value, got %d", fn, len(out))
	}
	v, ok := out[0].(uint64)
	if !ok {
		return 0, fmt.Errorf("unpack %s: unexpected type %T", fn, out[0])
	}
	return v, nil
}
