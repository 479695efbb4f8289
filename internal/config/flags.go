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
//	-a backend address in format [host]:[port]
//	-d local database path
//	-c/-config json file path with configs
//	-account account identifier
//	-token session bearer token
//	-status-address status endpoint listen address
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background full-sync interval (e.g., "5m")
//	-retry-limit pending change push retry ceiling
func ParseFlags() *StructuredConfig {
	var backendAddress, statusAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var accountID string
	var accountToken string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var retryLimit int

	flag.Var(&backendAddress, "a", "Backend net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accountID, "account", "", "Account identifier")
	flag.StringVar(&accountToken, "token", "", "Session bearer token")
	flag.Var(&statusAddress, "status-address", "Status endpoint net address host:port")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background full-sync interval (e.g., 5m)")
	flag.IntVar(&retryLimit, "retry-limit", 0, "Pending change push retry ceiling")

	flag.Parse()

	return &StructuredConfig{
		Account: Account{
			ID:    accountID,
			Token: accountToken,
		},
		Storage: Storage{
			DSN: databaseDSN,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Interval:   syncInterval,
			RetryLimit: retryLimit,
		},
		Status: Status{
			Address: statusAddress.String(),
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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
