package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a simulator listen address in format [host]:[port]
//	-provider wallet provider JSON-RPC URL
//	-d local database DSN
//	-contract diary contract address
//	-remote enable on-chain submission of saved entries
//	-chain-id target chain id in hex (e.g. "0xaa36a7")
//	-chain-name target chain display name
//	-rpc-url target chain public RPC URL
//	-request-timeout provider request timeout (e.g. "15s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var listenAddress NetAddress
	var providerURL string
	var databaseDSN string
	var contractAddress string
	var remoteEnabled bool
	var chainID string
	var chainName string
	var chainRPCURL string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&listenAddress, "a", "Simulator listen address host:port")
	flag.StringVar(&providerURL, "provider", "", "Wallet provider JSON-RPC URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&contractAddress, "contract", "", "Diary contract address")
	flag.BoolVar(&remoteEnabled, "remote", false, "Enable on-chain submission")
	flag.StringVar(&chainID, "chain-id", "", "Target chain id in hex")
	flag.StringVar(&chainName, "chain-name", "", "Target chain name")
	flag.StringVar(&chainRPCURL, "rpc-url", "", "Target chain public RPC URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Provider request timeout (e.g., 15s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Wallet: Wallet{
			ProviderURL:    providerURL,
			RequestTimeout: requestTimeout,
		},
		Chain: Chain{
			ID:     chainID,
			Name:   chainName,
			RPCURL: chainRPCURL,
		},
		Contract: Contract{
			Address: contractAddress,
			Enabled: remoteEnabled,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: listenAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as the empty string so mergo treats it as a
// zero value during merging.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
