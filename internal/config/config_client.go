package config

import (
	"fmt"
	"time"
)

// ClientNode holds the RPC endpoint settings used by the transport layer.
type ClientNode struct {
	// Address is the node's RPC address.
	Address string
	// RequestTimeout is the default timeout for outbound RPC requests.
	RequestTimeout time.Duration
	// Verbose enables JSON-RPC envelope logging.
	Verbose bool
	// RPCID overrides the per-request UUID request id when set.
	RPCID string
}

// ClientDeploy holds deploy construction defaults.
type ClientDeploy struct {
	// ChainName is the default network name.
	ChainName string
	// SecretKeyPath is the default signing key PEM file.
	SecretKeyPath string
	// TTL is the default deploy time-to-live.
	TTL time.Duration
	// GasPrice is the default gas price tolerance.
	GasPrice uint64
}

// ClientDB contains the local history database settings.
type ClientDB struct {
	// DSN is the SQLite path or connection string.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains deploy poller settings.
type ClientWorkers struct {
	// PollInterval defines how often the poller re-queries the node.
	PollInterval time.Duration
	// PollTimeout bounds how long the poller waits for execution.
	PollTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Node    ClientNode
	Deploy  ClientDeploy
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Node: ClientNode{
			Address:        cfg.Node.Address,
			RequestTimeout: cfg.Node.RequestTimeout,
			Verbose:        cfg.Node.Verbose,
			RPCID:          cfg.Node.RPCID,
		},
		Deploy: ClientDeploy{
			ChainName:     cfg.Deploy.ChainName,
			SecretKeyPath: cfg.Deploy.SecretKeyPath,
			TTL:           cfg.Deploy.TTL,
			GasPrice:      cfg.Deploy.GasPrice,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			PollInterval: cfg.Workers.PollInterval,
			PollTimeout:  cfg.Workers.PollTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
