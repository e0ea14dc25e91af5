package adapter

import (
	"encoding/json"
	"fmt"
)

const jsonRPCVersion = "2.0"

// rpcRequest is the JSON-RPC 2.0 request envelope.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// rpcResponse is the JSON-RPC 2.0 response envelope. Result is decoded by
// the caller into the method-specific type.
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the error object a node returns inside a JSON-RPC
// response. Callers can retrieve it with [errors.As] to inspect the code.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("rpc error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Method names of the node RPC endpoints this client calls.
const (
	methodPutDeploy        = "account_put_deploy"
	methodGetDeploy        = "info_get_deploy"
	methodGetBalance       = "state_get_balance"
	methodGetStateRootHash = "chain_get_state_root_hash"
	methodGetBlock         = "chain_get_block"
	methodGetPeers         = "info_get_peers"
	methodGetStatus        = "info_get_status"
)
