package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/go-co-op/gocron/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	httpadapter "groupbuy/internal/adapter/http"
	"groupbuy/internal/adapter/postgres"
	"groupbuy/internal/adapter/usecase"
	"groupbuy/internal/config"
	"groupbuy/internal/core/domain"
	"groupbuy/internal/db"
	"groupbuy/internal/logger"
	"groupbuy/internal/scheduler"
)

// CLI lists the groupbuy subcommands.
type CLI struct {
	EnvFile string `name:"env-file" help:"Dotenv file loaded before the environment is parsed." default:".env" type:"path"`

	Serve        ServeCmd        `cmd:"" default:"1" help:"Serve the settlement HTTP API and run the overdue sweep in the background."`
	Migrate      MigrateCmd      `cmd:"" help:"Apply database migrations and exit."`
	Seed         SeedCmd         `cmd:"" help:"Insert a demo campaign with brackets, pledges and payment intents."`
	SweepOverdue SweepOverdueCmd `cmd:"" name:"sweep-overdue" help:"Mark past-due SENT invoices as OVERDUE once and exit."`
}

// app is the runtime shared by every subcommand.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

// services holds the wired use cases.
type services struct {
	campaigns *usecase.CampaignUseCase
	invoices  *usecase.InvoiceUseCase
	intents   *usecase.PaymentIntentUseCase
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("groupbuy"),
		kong.Description("B2B group-buying settlement service."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	cfg, err := config.Load(cli.EnvFile)
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log, closer := logger.New(cfg.Log, os.Stdout)
	defer closer.Close()
	log = log.With(slog.String("env", cfg.Env))

	err = kctx.Run(&app{cfg: cfg, logger: log})
	if err != nil {
		log.Error("command failed", slog.String("command", kctx.Command()), slog.Any("error", err))
		closer.Close()
		cancel()
		os.Exit(1)
	}
}

func (a *app) pool(ctx context.Context) (*pgxpool.Pool, error) {
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	return pool, nil
}

func (a *app) settings() usecase.InvoiceSettings {
	s := a.cfg.Settlement
	b := a.cfg.Bank
	return usecase.InvoiceSettings{
		VATRate:  s.VATRate,
		DueDays:  s.DueDays,
		Prefix:   s.InvoicePrefix,
		Currency: s.Currency,
		Bank: domain.BankAccountDetails{
			BankName:      b.Name,
			AccountNumber: b.AccountNumber,
			SwiftCode:     b.SwiftCode,
			AccountHolder: b.AccountHolder,
		},
	}
}

func (a *app) services(pool *pgxpool.Pool) (*services, error) {
	settings := a.settings()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settlement config: %w", err)
	}

	tx := postgres.NewTransactor(pool, a.logger, a.cfg.Psql.TxMaxTries)
	campaignRepo := postgres.NewCampaignRepository(pool)
	pledgeRepo := postgres.NewPledgeRepository(pool)
	intentRepo := postgres.NewPaymentIntentRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)

	intents := usecase.NewPaymentIntentUseCase(tx, intentRepo, a.logger)
	invoices := usecase.NewInvoiceUseCase(tx, invoiceRepo, campaignRepo, pledgeRepo, intentRepo, intents, settings, a.logger)
	campaigns := usecase.NewCampaignUseCase(tx, campaignRepo, pledgeRepo, invoices, a.logger)
	return &services{campaigns: campaigns, invoices: invoices, intents: intents}, nil
}

// ServeCmd starts the HTTP server and, when enabled, the scheduler. On
// SIGINT or SIGTERM it stops accepting requests and drains in-flight ones.
type ServeCmd struct{}

func (cmd *ServeCmd) Run(ctx context.Context, a *app) error {
	if a.cfg.Psql.RunMigrations {
		if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
			a.logger.Error("migration error", slog.Any("error", err))
		} else {
			a.logger.Info("migrations applied successfully")
		}
	}

	pool, err := a.pool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc, err := a.services(pool)
	if err != nil {
		return err
	}

	if a.cfg.Scheduler.Enabled {
		jobs, err := scheduler.NewManager(a.logger, gocron.WithLocation(time.UTC))
		if err != nil {
			return err
		}
		if err = jobs.Register(scheduler.NewOverdueInvoiceJob(svc.invoices, a.cfg.Scheduler.OverdueInterval, a.logger)); err != nil {
			return err
		}
		jobs.Start()
		defer jobs.Stop()
	}

	handler := httpadapter.NewHandler(svc.campaigns, svc.invoices, svc.intents, a.logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err = <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	a.logger.Info("server gracefully stopped")
	return nil
}

// MigrateCmd applies the embedded migrations.
type MigrateCmd struct{}

func (cmd *MigrateCmd) Run(a *app) error {
	if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
		return err
	}
	a.logger.Info("migrations applied successfully")
	return nil
}

// SeedCmd loads demo data. Running it twice is harmless.
type SeedCmd struct{}

func (cmd *SeedCmd) Run(ctx context.Context, a *app) error {
	pool, err := a.pool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err = db.Seed(ctx, pool); err != nil {
		return err
	}
	a.logger.Info("demo data seeded")
	return nil
}

// SweepOverdueCmd runs the overdue batch job once, for cron-driven setups
// that disable the in-process scheduler.
type SweepOverdueCmd struct{}

func (cmd *SweepOverdueCmd) Run(ctx context.Context, a *app) error {
	pool, err := a.pool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc, err := a.services(pool)
	if err != nil {
		return err
	}
	n, err := svc.invoices.MarkOverdueInvoices(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("overdue sweep done", slog.Int64("marked", n))
	return nil
}
