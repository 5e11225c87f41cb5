package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] with the keys accepted in a config file.
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		VerifyURL     string   `json:"verify_url" yaml:"verify_url"`
		Version       string   `json:"version" yaml:"version"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			Driver    string   `json:"driver" yaml:"driver"`
			DSN       string   `json:"dsn" yaml:"dsn"`
			TxTimeout Duration `json:"tx_timeout" yaml:"tx_timeout"`
		} `json:"db" yaml:"db"`
		Redis struct {
			URL     string   `json:"url" yaml:"url"`
			Timeout Duration `json:"timeout" yaml:"timeout"`
		} `json:"redis" yaml:"redis"`
		Cache struct {
			Backend string   `json:"backend" yaml:"backend"`
			TTL     Duration `json:"ttl" yaml:"ttl"`
		} `json:"cache" yaml:"cache"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		UsersURL       string   `json:"users_url" yaml:"users_url"`
		LabelsURL      string   `json:"labels_url" yaml:"labels_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Mail struct {
		Host     string   `json:"host" yaml:"host"`
		Port     int      `json:"port" yaml:"port"`
		Username string   `json:"username" yaml:"username"`
		Password string   `json:"password" yaml:"password"`
		From     string   `json:"from" yaml:"from"`
		Timeout  Duration `json:"timeout" yaml:"timeout"`
	} `json:"mail" yaml:"mail"`

	Workers struct {
		ReminderPollInterval Duration `json:"reminder_poll_interval" yaml:"reminder_poll_interval"`
		ReminderBatchSize    int      `json:"reminder_batch_size" yaml:"reminder_batch_size"`
		ReminderRetryDelay   Duration `json:"reminder_retry_delay" yaml:"reminder_retry_delay"`
	} `json:"workers" yaml:"workers"`

	Log struct {
		Level string `json:"level" yaml:"level"`
		File  string `json:"file" yaml:"file"`
	} `json:"log" yaml:"log"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			VerifyURL:     fc.App.VerifyURL,
			Version:       fc.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver:    fc.Storage.DB.Driver,
				DSN:       fc.Storage.DB.DSN,
				TxTimeout: time.Duration(fc.Storage.DB.TxTimeout),
			},
			Redis: Redis{
				URL:     fc.Storage.Redis.URL,
				Timeout: time.Duration(fc.Storage.Redis.Timeout),
			},
			Cache: Cache{
				Backend: fc.Storage.Cache.Backend,
				TTL:     time.Duration(fc.Storage.Cache.TTL),
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			UsersURL:       fc.Adapter.UsersURL,
			LabelsURL:      fc.Adapter.LabelsURL,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Mail: Mail{
			Host:     fc.Mail.Host,
			Port:     fc.Mail.Port,
			Username: fc.Mail.Username,
			Password: fc.Mail.Password,
			From:     fc.Mail.From,
			Timeout:  time.Duration(fc.Mail.Timeout),
		},
		Workers: Workers{
			ReminderPollInterval: time.Duration(fc.Workers.ReminderPollInterval),
			ReminderBatchSize:    fc.Workers.ReminderBatchSize,
			ReminderRetryDelay:   time.Duration(fc.Workers.ReminderRetryDelay),
		},
		Log: Log{
			Level: fc.Log.Level,
			File:  fc.Log.File,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML, and from raw nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	tmp, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(tmp)
	return nil
}
