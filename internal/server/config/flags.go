package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/greeter/internal/flagx"
)

var serverFlags = []string{"-a", "-g", "-d", "-m", "-t", "-l"}

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP API bind address (e.g., ":8080")
//	-g string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-m string   default greeting message for the seeder
//	-t int      graceful shutdown timeout, seconds
//	-l string   log level
//
// Args are filtered with flagx.FilterArgs first, so -c and other foreign
// flags do not trip the parser.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, serverFlags)

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to serve the HTTP API")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "address and port to serve gRPC health")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SeedMessage, "m", config.SeedMessage, "greeting inserted into an empty greetings table")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
