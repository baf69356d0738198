package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/flagx"
	"golang.org/x/term"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

// ownFlags are consumed by the loaders and hidden from the command dispatcher.
var ownFlags = []string{"-a", "-t", "-o", "-c", "-config"}

// Config holds runtime settings for the hexplay CLI.
type Config struct {
	ServerEndpointAddr string        `env:"SERVER_ADDR, overwrite"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT, overwrite"`
	OutputFormat       string        `env:"OUTPUT, overwrite"`
}

// isTerminal is a test seam for term.IsTerminal on stdout.
var isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

// LoadDefaults populates c with defaults. Output is text on a terminal and
// JSON when piped.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
	c.OutputFormat = OutputJSON
	if isTerminal() {
		c.OutputFormat = OutputText
	}
}

// LoadConfig constructs a Config from defaults, JSON, environment and flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Args returns the command line with the configuration flags removed, i.e.
// the command name followed by its arguments.
func Args() []string {
	return flagx.StripArgs(os.Args[1:], ownFlags)
}
