package xrpl

import "encoding/json"

// rpcRequest is the rippled JSON-RPC request envelope.
type rpcRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params"`
}

// rpcEnvelope wraps the result object every rippled response carries.
type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// rpcStatus is the status portion shared by all rippled results.
type rpcStatus struct {
	Status       string `json:"status"`
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

type accountInfoParams struct {
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index"`
}

type accountInfoResult struct {
	AccountData struct {
		Balance string `json:"Balance"`
	} `json:"account_data"`
}

type accountLinesParams struct {
	Account     string `json:"account"`
	LedgerIndex string `json:"ledger_index"`
}

type accountLinesResult struct {
	Lines []TrustLine `json:"lines"`
}

// TrustLine is a single trust line from an account_lines response.
type TrustLine struct {
	Account  string `json:"account"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
	Limit    string `json:"limit"`
}

// submitParams uses rippled's sign-and-submit mode: the node signs tx_json
// with the supplied seed, so no signing code lives in this service.
type submitParams struct {
	Secret string         `json:"secret"`
	TxJSON map[string]any `json:"tx_json"`
}

type submitResult struct {
	EngineResult        string `json:"engine_result"`
	EngineResultMessage string `json:"engine_result_message"`
}

// IssuedAmount is the issued-currency amount object used in TrustSet and
// Payment transactions.
type IssuedAmount struct {
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Value    string `json:"value"`
}

// faucetResponse is the relevant portion of the Testnet faucet reply.
type faucetResponse struct {
	Account struct {
		ClassicAddress string `json:"classicAddress"`
		Address        string `json:"address"`
		Secret         string `json:"secret"`
	} `json:"account"`
}
