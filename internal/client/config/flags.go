package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the Resource API
//	-d string   path of the local session database
//	-p          production mode (no request/response debug logging)
//	-t int      connect, receive and send timeout in seconds
//
// Only the flags listed above are parsed; flagx.FilterArgs drops the rest so
// other components can share the command line. -t applies only when given.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, flagx.Value("a"), flagx.Value("d"), flagx.Bool("p"), flagx.Value("t"))

	fs := flag.NewFlagSet("userdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the resource API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the session database")
	fs.BoolVar(&cfg.Production, "p", cfg.Production, "production mode")
	timeout := fs.Int("t", 0, "transport timeouts (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *timeout > 0 {
		d := time.Duration(*timeout) * time.Second
		cfg.ConnectTimeout, cfg.ReceiveTimeout, cfg.SendTimeout = d, d, d
	}
	return nil
}
