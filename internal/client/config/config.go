// Package config handles configuration for the CLI client.
package config

import (
	"flag"
	"os"

	"github.com/alinaagnistova/TestTask/internal/flagx"
)

// Config holds runtime settings for the bank CLI client.
type Config struct {
	// Address is the host:port of the bank server.
	Address string
}

func (c *Config) LoadDefaults() {
	c.Address = "127.0.0.1:8080"
}

// LoadConfig applies defaults and then command-line flags.
//
// Supported flags:
//
//	-a string   server address (e.g., "127.0.0.1:8080")
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()

	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "bank server address")
	_ = fs.Parse(args)

	return cfg
}
