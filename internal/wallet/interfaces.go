// Package wallet implements the connection state machine between the diary
// client and a wallet provider: account access, network selection, and the
// on-chain diary contract calls.
package wallet

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/wallet_mock.go -package=mock

// Status of the wallet session.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
	StatusError        Status = "error"
)

// ContractJournal is the on-chain persistence surface used by the diary
// service: submit an encrypted record, or read records back by index.
type ContractJournal interface {
	// SubmitEntry submits a serialized encrypted record to the diary
	// contract and returns the transaction hash.
	SubmitEntry(ctx context.Context, payload []byte) (string, error)

	// ReadCount returns how many entries the connected account has
	// submitted on-chain.
	ReadCount(ctx context.Context) (uint64, error)

	// ReadEntry returns the payload of the connected account's entry at
	// the given index.
	ReadEntry(ctx context.Context, index uint64) ([]byte, error)

	// IsConnected reports whether a wallet session is active.
	IsConnected() bool
}

// Connector drives the wallet session lifecycle. The session moves between
// four states:
//
//	Disconnected -> Connecting -> Connected
//	                    |
//	                    v
//	                  Error -> Connecting (retry)
//
// All state accessors are safe for concurrent use.
type Connector interface {
	ContractJournal

	// Connect requests account access from the wallet, verifies the
	// network, and on success stores the checksummed active account.
	// Returns the account address. A failure at any step parks the
	// session in the Error state with a human-readable message.
	Connect(ctx context.Context) (string, error)

	// Disconnect clears the session state locally. The wallet itself
	// keeps whatever authorization the user granted.
	Disconnect()

	// EnsureNetwork checks the provider's active chain and switches it to
	// the configured one, registering the chain first if the wallet does
	// not know it.
	EnsureNetwork(ctx context.Context) error

	// Status returns the current session state.
	Status() Status

	// Address returns the checksummed active account, or an empty string
	// when not connected.
	Address() string

	// ErrMessage returns the failure description when Status is
	// StatusError, otherwise an empty string.
	ErrMessage() string
}
