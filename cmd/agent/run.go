package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ambe.com/fieldops/fieldops/model"
	"ambe.com/fieldops/fieldops/rangelog"
	"ambe.com/fieldops/fieldops/syncer"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the agent loop: range logging plus periodic sync",
	Long: `run consumes position fixes from stdin (one JSON object per line, e.g.
{"lat":19.076,"lng":72.8777}), logs geofence transitions to the central
service, and syncs the attendance buffer on an interval.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadAgentConfig(configPath)
		if err != nil {
			return err
		}

		s, err := cfg.openStore()
		if err != nil {
			return err
		}
		if warn := s.LoadWarning(); warn != nil {
			log.Printf("buffer reset after unreadable state: %v", warn)
		}

		client := cfg.client()
		coordinator := syncer.New(s, &attendanceAPI{client: client}, &connectivity{client: client})
		logger := rangelog.New(&locationSink{client: client}, rangelog.Config{
			Site:           cfg.site(),
			SupervisorID:   cfg.Supervisor.ID,
			SupervisorName: cfg.Supervisor.Name,
			DeviceID:       cfg.DeviceID,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fixes := make(chan model.GeoPoint)
		go readFixes(ctx, os.Stdin, fixes)
		go logger.Watch(ctx, fixes)

		interval := time.Duration(cfg.SyncIntervalSeconds) * time.Second
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Printf("agent running for site %s, syncing every %s", cfg.Site.ID, interval)

		for {
			select {
			case <-ctx.Done():
				// Last chance to drain the buffer before shutdown.
				flushCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				result := coordinator.Sync(flushCtx)
				cancel()
				log.Printf("final sync: %s", result.String())
				return nil
			case <-ticker.C:
				result := coordinator.Sync(ctx)
				if result.Reason != syncer.ReasonNothingToSync {
					log.Printf("sync: %s", result.String())
				}
			}
		}
	},
}

// readFixes decodes one GeoPoint per input line. Malformed lines are skipped;
// a GPS hiccup must not kill the agent.
func readFixes(ctx context.Context, r *os.File, fixes chan<- model.GeoPoint) {
	defer close(fixes)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var p model.GeoPoint
		if err := json.Unmarshal(scanner.Bytes(), &p); err != nil {
			log.Printf("skipping malformed fix: %v", err)
			continue
		}

		select {
		case fixes <- p:
		case <-ctx.Done():
			return
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "position feed: %v\n", err)
	}
}
