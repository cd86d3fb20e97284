package ledger

import (
	"encoding/binary"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashgraph/hedera-sdk-go/v2"

	apperrors "github.com/chainsafe/reward-distribution-ops/pkg/app/errors"
)

// ParseAccountID parses a shard.realm.num account id.
func ParseAccountID(s string) (hedera.AccountID, error) {
	id, err := hedera.AccountIDFromString(strings.TrimSpace(s))
	if err != nil {
		return hedera.AccountID{}, apperrors.DataError(err, "invalid account id "+s)
	}
	return id, nil
}

// ParseTokenID parses a shard.realm.num token id.
func ParseTokenID(s string) (hedera.TokenID, error) {
	id, err := hedera.TokenIDFromString(strings.TrimSpace(s))
	if err != nil {
		return hedera.TokenID{}, apperrors.DataError(err, "invalid token id "+s)
	}
	return id, nil
}

// ParseContractID parses a shard.realm.num contract id.
func ParseContractID(s string) (hedera.ContractID, error) {
	id, err := hedera.ContractIDFromString(strings.TrimSpace(s))
	if err != nil {
		return hedera.ContractID{}, apperrors.DataError(err, "invalid contract id "+s)
	}
	return id, nil
}

// ParseECDSAKey parses a secp256k1 private key, either raw hex or DER-encoded hex.
func ParseECDSAKey(s string) (hedera.PrivateKey, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	var (
		key hedera.PrivateKey
		err error
	)
	if strings.HasPrefix(s, "30") && len(s) > 64 {
		key, err = hedera.PrivateKeyFromStringDer(s)
	} else {
		key, err = hedera.PrivateKeyFromStringECDSA(s)
	}
	if err != nil {
		return hedera.PrivateKey{}, apperrors.DataError(err, "invalid ECDSA private key")
	}
	return key, nil
}

// LongZeroAddress returns the 20-byte EVM address of a shard.realm.num entity:
// 4 bytes shard, 8 bytes realm, 8 bytes number, big endian.
func LongZeroAddress(shard, realm, num uint64) common.Address {
	var addr common.Address
	binary.BigEndian.PutUint32(addr[0:4], uint32(shard))
	binary.BigEndian.PutUint64(addr[4:12], realm)
	binary.BigEndian.PutUint64(addr[12:20], num)
	return addr
}

// AccountAddress returns the long-zero EVM address of an account.
func AccountAddress(id hedera.AccountID) common.Address {
	return LongZeroAddress(id.Shard, id.Realm, id.Account)
}

// TokenAddress returns the long-zero EVM address of a token.
func TokenAddress(id hedera.TokenID) common.Address {
	return LongZeroAddress(id.Shard, id.Realm, id.Token)
}

// ContractAccountID returns the account that backs a contract, used where the
// SDK expects an AccountID (allowance spender).
func ContractAccountID(id hedera.ContractID) hedera.AccountID {
	return hedera.AccountID{Shard: id.Shard, Realm: id.Realm, Account: id.Contract}
}
