package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/courtside/internal/adapters/http/api"
	"github.com/okian/courtside/internal/client"
)

func main() {
	var (
		baseURL = flag.String("url", client.DefaultBaseURL, "Base URL of the service")
		home    = flag.String("home", "", "Home team code")
		away    = flag.String("away", "", "Away team code")
		manual  = flag.Bool("manual", false, "Predict from entered counts")
		sweep   = flag.Bool("sweep", false, "Predict the home team against every other team")
		workers = flag.Int("workers", client.DefaultWorkers, "Concurrent requests during a sweep")
		timeout = flag.Duration("timeout", client.DefaultTimeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	counts := api.ManualRequest{}
	countFlags := map[string]**float64{
		"fgm-home": &counts.FGMadeHome, "fga-home": &counts.FGAttemptedHome,
		"fg3m-home": &counts.FG3MadeHome, "fg3a-home": &counts.FG3AttemptedHome,
		"reb-home": &counts.RebHome, "ast-home": &counts.AstHome, "tov-home": &counts.TovHome,
		"fgm-away": &counts.FGMadeAway, "fga-away": &counts.FGAttemptedAway,
		"fg3m-away": &counts.FG3MadeAway, "fg3a-away": &counts.FG3AttemptedAway,
		"reb-away": &counts.RebAway, "ast-away": &counts.AstAway, "tov-away": &counts.TovAway,
	}
	values := make(map[string]*float64, len(countFlags))
	for name := range countFlags {
		values[name] = flag.Float64(name, 0, "Manual count")
	}
	flag.Parse()

	if *help {
		client.ShowHelp()
		return
	}

	// Only flags given on the command line override the form defaults.
	flag.Visit(func(f *flag.Flag) {
		if dst, ok := countFlags[f.Name]; ok {
			*dst = values[f.Name]
		}
	})

	if err := client.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config := &client.Config{
		BaseURL: *baseURL,
		Home:    *home,
		Away:    *away,
		Manual:  *manual,
		Counts:  counts,
		Sweep:   *sweep,
		Workers: *workers,
		Timeout: *timeout,
		Verbose: *verbose,
	}

	if err := client.Run(ctx, config, os.Stdout); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}
