package wallet

import "errors"

var (
	// ErrNotConnected indicates a contract operation was attempted without
	// an active wallet session.
	ErrNotConnected = errors.New("wallet not connected")
	// ErrNoAccounts indicates the wallet granted access but returned an
	// empty account list.
	ErrNoAccounts = errors.New("wallet returned no accounts")
	// ErrNoContract indicates on-chain operations are impossible because
	// no contract address is configured.
	ErrNoContract = errors.New("diary contract address not configured")
)
