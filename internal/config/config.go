// Package config defines the command-line surface of the server: a
// single root command with flags for the listen address, shard count,
// and log level, in the style of packetd's cobra-based cmd package.
package config

import (
	"github.com/spf13/cobra"
)

// Config holds the resolved startup settings for one server run.
type Config struct {
	ListenAddr string
	NumShards  int
	LogLevel   string
}

// RootCmd builds the root cobra.Command. run is invoked once flags are
// parsed, with the resolved Config.
func RootCmd(run func(Config) error) *cobra.Command {
	cfg := Config{}

	cmd := &cobra.Command{
		Use:   "simple-redis",
		Short: "An in-memory, Redis-protocol-compatible key/value server",
		Example: "  simple-redis --addr :6379 --shards 16\n" +
			"  simple-redis --addr :6380 --log-level debug",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.ListenAddr, "addr", "127.0.0.1:6379", "TCP address to listen on")
	cmd.Flags().IntVar(&cfg.NumShards, "shards", 16, "number of store shards")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}
