package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/okian/courtside/internal/adapters/http/api"
	"github.com/okian/courtside/internal/domain/teams"
	"github.com/okian/courtside/pkg/logger"
)

// Run executes one prediction, or a sweep, and writes the outcome to w.
func Run(ctx context.Context, config *Config, w io.Writer) error {
	if strings.TrimSpace(config.Home) == "" {
		return ErrNoTeam
	}
	c := New(config.BaseURL, config.Timeout)

	logger.Get().Debug(ctx, "checking service health", logger.String("baseURL", config.BaseURL))
	if err := c.Health(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	if config.Sweep {
		return sweep(ctx, c, config, w)
	}

	resp, err := predict(ctx, c, config, config.Home, config.Away)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, resp.Message)
	if resp.Probability != nil {
		fmt.Fprintf(w, "Probability of winning is: %.2f\n", *resp.Probability)
	}
	return nil
}

func predict(ctx context.Context, c *Client, config *Config, home, away string) (api.PredictionResponse, error) {
	if config.Manual {
		req := config.Counts
		req.Home, req.Away = home, away
		return c.PredictManual(ctx, req)
	}
	return c.PredictTeams(ctx, home, away)
}

// sweep predicts config.Home against every other franchise with a bounded
// number of concurrent requests and prints a table in team order.
func sweep(ctx context.Context, c *Client, config *Config, w io.Writer) error {
	home, ok := teams.Lookup(config.Home)
	if !ok {
		return fmt.Errorf("%w: %q", teams.ErrUnknownTeam, config.Home)
	}
	var opponents []string
	for _, t := range teams.All() {
		if t.Code != home.Code {
			opponents = append(opponents, t.Code)
		}
	}

	workers := config.Workers
	if workers < 1 {
		workers = 1
	}
	results := make([]Matchup, len(opponents))
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				away := opponents[idx]
				resp, err := predict(ctx, c, config, home.Code, away)
				results[idx] = Matchup{Home: home.Code, Away: away, Resp: resp, Err: err}
				if config.Verbose {
					logger.Get().Info(ctx, "matchup predicted",
						logger.String("home", home.Code),
						logger.String("away", away),
						logger.String("winner", resp.Winner),
					)
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range opponents {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTable(w, results)
}

func writeTable(w io.Writer, results []Matchup) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOME\tAWAY\tWINNER\tPROBABILITY")
	var homeWins, failed int
	for _, m := range results {
		if m.Err != nil {
			failed++
			fmt.Fprintf(tw, "%s\t%s\t-\t%s\n", m.Home, m.Away, errorText(m.Err))
			continue
		}
		if m.Resp.WinnerSide == string(teams.Home) {
			homeWins++
		}
		prob := "-"
		if m.Resp.Probability != nil {
			prob = fmt.Sprintf("%.2f", *m.Resp.Probability)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Home, m.Away, m.Resp.Winner, prob)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d home wins, %d away wins, %d failed\n", homeWins, len(results)-homeWins-failed, failed)
	return err
}

func errorText(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
