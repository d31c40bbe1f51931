// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Service struct {
		TickInterval   Duration `json:"tick_interval"`
		DeliveryBuffer int      `json:"delivery_buffer"`
		KillDelay      Duration `json:"kill_delay"`
	} `json:"service,omitempty"`

	Client struct {
		GRPCAddress    string   `json:"grpc_address"`
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ReconnectBase  Duration `json:"reconnect_base"`
		ReconnectMax   Duration `json:"reconnect_max"`
		Policy         string   `json:"policy"`
	} `json:"client,omitempty"`
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
		App: App{Version: jsonCfg.App.Version},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Service: Service{
			TickInterval:   time.Duration(jsonCfg.Service.TickInterval),
			DeliveryBuffer: jsonCfg.Service.DeliveryBuffer,
			KillDelay:      time.Duration(jsonCfg.Service.KillDelay),
		},
		Client: Client{
			GRPCAddress:    jsonCfg.Client.GRPCAddress,
			HTTPAddress:    jsonCfg.Client.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
			ReconnectBase:  time.Duration(jsonCfg.Client.ReconnectBase),
			ReconnectMax:   time.Duration(jsonCfg.Client.ReconnectMax),
			Policy:         jsonCfg.Client.Policy,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
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
