package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hexplay/internal/flagx"
	"github.com/dmitrijs2005/hexplay/internal/timex"
)

type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	OutputFormat       string         `json:"output_format"`
}

// parseJson overlays the file named by -c/-config, if any. Absent keys keep
// their value; unreadable or malformed files panic.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.OutputFormat != "" {
		config.OutputFormat = c.OutputFormat
	}
}
