package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/leobro/appointment-scheduling/internal/app"
	"github.com/leobro/appointment-scheduling/internal/appointment"
	"github.com/leobro/appointment-scheduling/internal/config"
	"github.com/leobro/appointment-scheduling/internal/logging"
)

func main() {
	var (
		quantity int
		endDate  string
	)

	rootCmd := &cobra.Command{
		Use:   "schedule-fill",
		Short: "Fill open work-hour slots with random test appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), quantity, endDate)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().IntVarP(&quantity, "quantity", "q", 10, "Number of appointments to create")
	rootCmd.Flags().StringVarP(&endDate, "end-date", "e", "", "Last date for the appointments (YYYY-MM-DD), defaults to today")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, quantity int, rawEndDate string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}
	if err := requirePersistentStorage(cfg); err != nil {
		return err
	}
	logger := logging.New(cfg.Env, cfg.LogLevel, "schedule-fill")

	end := time.Now().In(cfg.Location)
	if rawEndDate != "" {
		end, err = time.ParseInLocation("2006-01-02", rawEndDate, cfg.Location)
		if err != nil {
			return fmt.Errorf("invalid --end-date: %w", err)
		}
	}

	application, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer application.Close()

	outcome := application.Service.CreateRandomAppointments(ctx, quantity, end)
	switch outcome.Kind {
	case appointment.OutcomeOK:
		fmt.Printf("created %v appointments\n", outcome.Payload)
		return nil
	case appointment.OutcomeError:
		for _, msg := range outcome.Payload.([]string) {
			fmt.Fprintln(os.Stderr, msg)
		}
		return errors.New("invalid request")
	default:
		return fmt.Errorf("random fill failed: %v", outcome.Payload)
	}
}

// requirePersistentStorage rejects the in-memory store, whose appointments
// would vanish as soon as the command exits.
func requirePersistentStorage(cfg config.Config) error {
	if cfg.StorageDriver == config.StorageDriverMemory {
		return fmt.Errorf("STORAGE_DRIVER=%s keeps nothing after exit, use %s", cfg.StorageDriver, config.StorageDriverPostgres)
	}
	return nil
}
