package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Account struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	} `json:"account,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Sync struct {
		Interval              Duration `json:"interval"`
		RetryLimit            int      `json:"retry_limit"`
		CompletedDisplayDelay Duration `json:"completed_display_delay"`
		ProbeInterval         Duration `json:"probe_interval"`
		ProbeTimeout          Duration `json:"probe_timeout"`
	} `json:"sync,omitempty"`

	Status struct {
		Address string `json:"address"`
	} `json:"status,omitempty"`
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
		Account: Account{
			ID:    jsonCfg.Account.ID,
			Token: jsonCfg.Account.Token,
		},
		Storage: Storage{
			DSN: jsonCfg.Storage.DSN,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Sync: Sync{
			Interval:              time.Duration(jsonCfg.Sync.Interval),
			RetryLimit:            jsonCfg.Sync.RetryLimit,
			CompletedDisplayDelay: time.Duration(jsonCfg.Sync.CompletedDisplayDelay),
			ProbeInterval:         time.Duration(jsonCfg.Sync.ProbeInterval),
			ProbeTimeout:          time.Duration(jsonCfg.Sync.ProbeTimeout),
		},
		Status: Status{
			Address: jsonCfg.Status.Address,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
