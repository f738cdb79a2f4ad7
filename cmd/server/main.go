package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appidentity "github.com/ledgerline/backend/internal/application/identity"
	appledger "github.com/ledgerline/backend/internal/application/ledger"
	apprefdata "github.com/ledgerline/backend/internal/application/refdata"
	"github.com/ledgerline/backend/internal/infrastructure/auth"
	"github.com/ledgerline/backend/internal/infrastructure/config"
	"github.com/ledgerline/backend/internal/infrastructure/logger"
	"github.com/ledgerline/backend/internal/infrastructure/persistence"
	"github.com/ledgerline/backend/internal/interfaces/http/handler"
	"github.com/ledgerline/backend/internal/interfaces/http/router"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configPath := flag.String("config", "", "directory containing config.toml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := persistence.NewDatabase(persistence.DatabaseOptions{
		DSN:             cfg.Database.DSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		Logger:          logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level)),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}()

	var blacklist auth.TokenBlacklist = auth.NoopTokenBlacklist{}
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		blacklist = auth.NewRedisTokenBlacklist(client)
		log.Info("token blacklist enabled", zap.String("addr", cfg.Redis.Addr))
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return fmt.Errorf("init jwt: %w", err)
	}

	userRepo := persistence.NewGormUserRepository(db.DB())
	projectRepo := persistence.NewGormProjectRepository(db.DB())
	accountRepo := persistence.NewGormAccountRepository(db.DB())
	partnerRepo := persistence.NewGormPartnerRepository(db.DB())
	countryRepo := persistence.NewGormCountryRepository(db.DB())
	currencyRepo := persistence.NewGormCurrencyRepository(db.DB())
	bankRepo := persistence.NewGormBankRepository(db.DB())

	if err := persistence.EnsureSuperuser(context.Background(), userRepo,
		cfg.Bootstrap.SuperuserUsername, cfg.Bootstrap.SuperuserEmail, cfg.Bootstrap.SuperuserPassword, log); err != nil {
		return fmt.Errorf("bootstrap superuser: %w", err)
	}

	ownership := appledger.NewOwnershipService(projectRepo, accountRepo, log)

	authService := appidentity.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := appidentity.NewUserService(userRepo, log)
	projectService := appledger.NewProjectService(projectRepo, ownership, log)
	accountService := appledger.NewAccountService(accountRepo, ownership, log)
	partnerService := appledger.NewPartnerService(partnerRepo, ownership, log)
	countryService := apprefdata.NewCountryService(countryRepo, log)
	currencyService := apprefdata.NewCurrencyService(currencyRepo, log)
	bankService := apprefdata.NewBankService(bankRepo, log)

	engine := router.New(router.Options{
		Config:     cfg,
		Logger:     log,
		JWTService: jwtService,
		Blacklist:  blacklist,
		Users:      userRepo,
		System:     handler.NewSystemHandler(db, version, log),
		Registrars: []router.RouteRegistrar{
			handler.NewAuthHandler(authService, log),
			handler.NewUserHandler(userService, log),
			handler.NewProjectHandler(projectService, log),
			handler.NewAccountHandler(accountService, log),
			handler.NewPartnerHandler(partnerService, log),
			handler.NewCountryHandler(countryService, log),
			handler.NewCurrencyHandler(currencyService, log),
			handler.NewBankHandler(bankService, log),
		},
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening",
			zap.String("addr", server.Addr),
			zap.String("environment", cfg.App.Environment),
			zap.String("version", version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
