package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/hexplay/internal/flagx"
)

// parseFlags applies -a, -t and -o. It panics on malformed values or an
// unknown output format.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "address and port of the server")
	fs.DurationVar(&config.RequestTimeout, "t", config.RequestTimeout, "request timeout")
	fs.StringVar(&config.OutputFormat, "o", config.OutputFormat, "output format (text|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if config.OutputFormat != OutputText && config.OutputFormat != OutputJSON {
		panic(fmt.Sprintf("unknown output format %q", config.OutputFormat))
	}
}
