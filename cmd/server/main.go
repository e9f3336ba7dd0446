package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/AIS170/xrpl-hackathon/internal/api"
	"github.com/AIS170/xrpl-hackathon/internal/auth"
	"github.com/AIS170/xrpl-hackathon/internal/config"
	"github.com/AIS170/xrpl-hackathon/internal/database"
	"github.com/AIS170/xrpl-hackathon/internal/domain"
	"github.com/AIS170/xrpl-hackathon/internal/ledger"
	"github.com/AIS170/xrpl-hackathon/internal/setup"
	"github.com/AIS170/xrpl-hackathon/internal/worker"
	"github.com/AIS170/xrpl-hackathon/internal/xrpl"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "stablecoin-api",
		Usage: "XRPL testnet demo backend for the stablecoin hackathon",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: runServe,
			},
			{
				Name:   "setup",
				Usage:  "provision the demo portfolio on the XRPL testnet",
				Action: runSetup,
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func runSetup(c *cli.Context) error {
	cfg := config.Load()

	client := xrpl.NewClient(cfg.XRPLRPCURL, cfg.XRPLFaucetURL, cfg.XRPLRetryMax, cfg.XRPLRetryBaseDelay)
	store := ledger.NewFileStore(cfg.WalletFile)

	p, err := setup.SetupDemoPortfolio(c.Context, client)
	if err != nil {
		return err
	}
	if err := store.Save(c.Context, p); err != nil {
		return fmt.Errorf("saving portfolio record: %w", err)
	}

	slog.Info("portfolio record written", "file", cfg.WalletFile, "address", p.PortfolioWallet.Address)
	return nil
}

func runServe(c *cli.Context) error {
	ctx := c.Context
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	migrationsSub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("creating migrations sub-fs: %w", err)
	}
	if err := database.RunMigrations(ctx, pool, migrationsSub); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	xrplClient := xrpl.NewClient(cfg.XRPLRPCURL, cfg.XRPLFaucetURL, cfg.XRPLRetryMax, cfg.XRPLRetryBaseDelay)
	store := ledger.NewFileStore(cfg.WalletFile)

	p, err := setup.InitPortfolio(ctx, store, xrplClient)
	if err != nil {
		return fmt.Errorf("initializing portfolio: %w", err)
	}

	ledgerSvc := ledger.NewService(store, xrplClient)
	authSvc := auth.NewService(auth.NewHTTPVerifier(cfg.IdentityURL), auth.NewPgUserRepository(pool))

	if set, err := ledgerSvc.DisplayBalances(ctx); err == nil {
		slog.Info("current portfolio balances",
			"address", p.PortfolioWallet.Address,
			"xrp", set.Balances[domain.NativeSymbol],
			"degraded", set.Degraded)
	}

	balanceWorker := worker.NewBalanceWorker(ledgerSvc, cfg.BalanceRefreshInterval)
	go balanceWorker.Run(ctx)

	handler := api.NewHandler(ledgerSvc, authSvc, xrplClient)
	srv := api.NewServer(cfg.HTTPPort, handler)

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
	return nil
}
