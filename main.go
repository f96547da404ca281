package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"auctionhousego/internal/auth/token"
	"auctionhousego/internal/config"
	"auctionhousego/internal/database/db_client"
	"auctionhousego/internal/database/migrations"
	"auctionhousego/internal/http/http_server"
	"auctionhousego/internal/redis/redis_client"
	"auctionhousego/internal/services/account"
	"auctionhousego/internal/services/auction"
	"auctionhousego/internal/services/category"
	"auctionhousego/internal/services/feedback"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var (
	Log, _ = zap.NewDevelopment()
)

//	@title						Auction House API
//	@version					1.0
//	@description				Categories, auctions, bids, ratings and comments.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				"Bearer <access token>"
func main() {
	defer Log.Sync()
	zap.ReplaceGlobals(Log)

	cmd := &cli.Command{
		Name:  "auctionhouse",
		Usage: "Auction marketplace REST backend",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP API",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "apply pending migrations before serving"},
				},
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "Manage the database schema",
				Commands: []*cli.Command{
					{
						Name:  "up",
						Usage: "Apply all pending migrations",
						Action: func(ctx context.Context, c *cli.Command) error {
							cfg, err := config.LoadConfig()
							if err != nil {
								return err
							}
							return migrations.Up(dsn(cfg))
						},
					},
					{
						Name:  "down",
						Usage: "Roll back migrations",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
						},
						Action: func(ctx context.Context, c *cli.Command) error {
							cfg, err := config.LoadConfig()
							if err != nil {
								return err
							}
							return migrations.Down(dsn(cfg), int(c.Int("steps")))
						},
					},
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create a staff account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: createAdmin,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		Log.Fatal("command_failed", zap.Error(err))
	}
}

func dsn(cfg *config.Config) string {
	return db_client.DSN(cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
		cfg.PostgresPassword, cfg.PostgresDb, cfg.PostgresSslMode)
}

func serve(ctx context.Context, c *cli.Command) error {
	// 1. Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	Log.Debug("Configuration loaded successfully", zap.Uint16("port", cfg.HttpServerPort), zap.Int("page_size", cfg.PageSize))

	// 2. Context with signal handling
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Bool("migrate") {
		if err := migrations.Up(dsn(cfg)); err != nil {
			return err
		}
	}

	// 3. Redis, holds the refresh token blacklist
	redisClient, err := redis_client.NewRedisClient(cfg.RedisHost, int(cfg.RedisPort), cfg.RedisDb)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// 4. Postgres
	pgDb, err := db_client.Open(dsn(cfg))
	if err != nil {
		return err
	}
	defer pgDb.Close()

	// 5. Services
	tokens := token.NewManager(cfg.JwtSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, redisClient)
	services := http_server.Services{
		Categories: category.NewCategoryService(pgDb),
		Auctions:   auction.NewAuctionService(pgDb),
		Feedback:   feedback.NewFeedbackService(pgDb),
		Accounts:   account.NewAccountService(pgDb, tokens),
		Tokens:     tokens,
	}

	// 6. HTTP server
	httpServer := http_server.NewHttpServer(ctx, cfg.HttpServerPort, cfg.PageSize, pgDb, redisClient, services)
	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		Log.Info("shutdown_requested")
		return httpServer.Dispose()
	}
}

func createAdmin(ctx context.Context, c *cli.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	pgDb, err := db_client.Open(dsn(cfg))
	if err != nil {
		return err
	}
	defer pgDb.Close()

	// Registration never issues tokens, so no manager is needed here.
	svc := account.NewAccountService(pgDb, nil)
	u, err := svc.Register(ctx, account.RegisterInput{
		Username: c.String("username"),
		Email:    c.String("email"),
		Password: c.String("password"),
		IsStaff:  true,
	})
	if err != nil {
		return err
	}
	Log.Info("admin_created", zap.Int64("id", u.ID), zap.String("username", u.Username))
	return nil
}
