package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/chronogonk/chronogonk/internal/profile"
	"github.com/chronogonk/chronogonk/server"
	"github.com/chronogonk/chronogonk/store"
	"github.com/chronogonk/chronogonk/store/db"
)

const version = "0.4.0"

var rootCmd = &cobra.Command{
	Use:   "chronogonk",
	Short: "Availability and timezone service for community chat platforms",
	RunE: func(_ *cobra.Command, _ []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().String("mode", "demo", `mode of the server, can be "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "binding address for the server")
	rootCmd.PersistentFlags().Int("port", 8230, "binding port for the server")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "sqlite", `database driver, "sqlite" or "postgres"`)
	rootCmd.PersistentFlags().String("dsn", "", "database connection string")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("chronogonk")
	viper.AutomaticEnv()
}

func loadProfile() (*profile.Profile, error) {
	p := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Addr:    viper.GetString("addr"),
		Port:    viper.GetInt("port"),
		Data:    viper.GetString("data"),
		Driver:  viper.GetString("driver"),
		DSN:     viper.GetString("dsn"),
		Version: version,
	}
	p.FromEnv()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	serverProfile, err := loadProfile()
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbDriver, err := db.NewDBDriver(serverProfile)
	if err != nil {
		return fmt.Errorf("failed to create db driver: %w", err)
	}
	if err := dbDriver.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	storeInstance := store.New(dbDriver, serverProfile)
	s := server.NewServer(serverProfile, storeInstance, logger)

	logger.Info("server starting",
		slog.String("version", serverProfile.Version),
		slog.String("mode", serverProfile.Mode),
		slog.String("driver", serverProfile.Driver),
		slog.Int("port", serverProfile.Port),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		return s.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
