package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// duration strings like "30s".
type StructuredJSONConfig struct {
	Node struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		Verbose        bool     `json:"verbose"`
	} `json:"node,omitempty"`

	Deploy struct {
		ChainName     string   `json:"chain_name"`
		SecretKeyPath string   `json:"secret_key_path"`
		TTL           Duration `json:"ttl"`
		GasPrice      uint64   `json:"gas_price"`
	} `json:"deploy,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		PollInterval Duration `json:"poll_interval"`
		PollTimeout  Duration `json:"poll_timeout"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Node: Node{
			Address:        jsonCfg.Node.Address,
			RequestTimeout: time.Duration(jsonCfg.Node.RequestTimeout),
			Verbose:        jsonCfg.Node.Verbose,
		},
		Deploy: Deploy{
			ChainName:     jsonCfg.Deploy.ChainName,
			SecretKeyPath: jsonCfg.Deploy.SecretKeyPath,
			TTL:           time.Duration(jsonCfg.Deploy.TTL),
			GasPrice:      jsonCfg.Deploy.GasPrice,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			PollInterval: time.Duration(jsonCfg.Workers.PollInterval),
			PollTimeout:  time.Duration(jsonCfg.Workers.PollTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
