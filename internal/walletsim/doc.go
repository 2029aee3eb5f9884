// Package walletsim is a local stand-in for a browser wallet and its chain.
//
// It serves the same JSON-RPC surface the diary client speaks to a real
// wallet provider (eth_requestAccounts, eth_chainId, the wallet_*EthereumChain
// pair, eth_call and eth_sendTransaction), approves every request without
// asking anybody, and runs the diary contract in memory. That makes the full
// connect, switch-network and submit-to-chain flow testable on a laptop with
// no wallet and no node.
//
// State lives for the lifetime of the process and is lost on restart.
package walletsim
