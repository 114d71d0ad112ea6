package jsonrpc

import (
	"github.com/mezonai/starnotary/block"
	"github.com/mezonai/starnotary/errors"
)

// JSON-RPC application error codes, one per ledger error code.
const (
	codeInternal                  = -32000
	codeInvalidAddress            = -32001
	codeParse                     = -32002
	codeValidationWindowExpired   = -32003
	codeSignatureVerificationFail = -32004
	codeChainIntegrity            = -32005
	codeInvalidParams             = -32602
)

// toBlockInfo converts an internal block to the external serialized shape.
// Hashes travel hex; genesis omits previousBlockHash.
func toBlockInfo(b *block.Block) *blockInfo {
	info := &blockInfo{
		Height: b.Height,
		Time:   b.Timestamp,
		Hash:   b.HashString(),
		Body:   string(b.Body),
	}
	if !b.IsGenesis() {
		info.PreviousBlockHash = b.PrevHashString()
	}
	return info
}

// toRPCError maps a ledger error onto the wire error shape. The full typed
// error rides in Message so toJRPC2Error can rehydrate it as error data.
func toRPCError(err error) *rpcError {
	return &rpcError{
		Code:    codeForLedgerError(errors.CodeOf(err)),
		Message: err.Error(),
	}
}

func codeForLedgerError(code errors.LedgerErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidAddress, errors.ErrCodeInvalidRequest:
		return codeInvalidAddress
	case errors.ErrCodeParse:
		return codeParse
	case errors.ErrCodeValidationWindowExpired:
		return codeValidationWindowExpired
	case errors.ErrCodeSignatureVerificationFailed:
		return codeSignatureVerificationFail
	case errors.ErrCodeChainIntegrity:
		return codeChainIntegrity
	default:
		return codeInternal
	}
}

func invalidParamsError(message string) *rpcError {
	return &rpcError{Code: codeInvalidParams, Message: message}
}
