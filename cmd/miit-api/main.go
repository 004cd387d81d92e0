package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-print"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"

	miit "github.com/metalteco/miit-api"
	"github.com/metalteco/miit-api/config"
	"github.com/metalteco/miit-api/repository"
	"github.com/metalteco/miit-api/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("============")
	fmt.Println(print.MaybePrettyJSON(map[string]any{
		"http_addr":         cfg.HTTPAddr,
		"db_driver":         cfg.DBDriver,
		"issuer":            cfg.Issuer,
		"audience":          cfg.Audience,
		"access_ttl_min":    cfg.AccessTokenTTLMinutes,
		"refresh_ttl_days":  cfg.RefreshTokenTTLDays,
		"superuser_enabled": cfg.SuperuserName != "",
	}))
	fmt.Println("============")

	db, err := openDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	if cfg.DBDriver == "sqlite" {
		if err := repository.CreateSchema(ctx, db); err != nil {
			log.Fatal(err)
		}
	}

	repo := repository.NewManager(db)
	repo.MustValidate()

	tokens, err := miit.NewTokenService(cfg, nil)
	if err != nil {
		log.Fatal(err)
	}

	auther := miit.NewAuthenticator(repo.Users(), tokens, cfg)

	srv := server.New(auther, repo)

	go func() {
		if err := srv.Listen(cfg.HTTPAddr); err != nil {
			log.Fatal(err)
		}
	}()

	WaitExitSignal()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func openDB(cfg *config.Config) (*bun.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DBDSN)))
		return bun.NewDB(sqldb, pgdialect.New()), nil
	case "sqlite":
		sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	default:
		return nil, fmt.Errorf("unsupported db driver: %q", cfg.DBDriver)
	}
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
