package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/faceforward/internal/buildinfo"
	"github.com/dmitrijs2005/faceforward/internal/client/cli"
	"github.com/dmitrijs2005/faceforward/internal/client/client"
	"github.com/dmitrijs2005/faceforward/internal/client/config"
	"github.com/dmitrijs2005/faceforward/internal/client/intake"
	"github.com/dmitrijs2005/faceforward/internal/client/services"
	"github.com/dmitrijs2005/faceforward/internal/client/session"
	"github.com/dmitrijs2005/faceforward/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	sessions := session.NewStore(db)
	api := client.NewHTTPClient(cfg.APIBaseURL, sessions, logger.With("component", "api"))

	s3cfg := intake.S3Config{
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
	}
	resolver := intake.NewResolver(func(ctx context.Context) (intake.S3API, error) {
		c, err := intake.NewS3Client(ctx, s3cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}, logger.With("component", "intake"))

	auth := services.NewAuthService(api, sessions, logger.With("component", "auth"))
	analysis := services.NewAnalysisService(api, resolver, intake.NewProcessor(logger.With("component", "intake")), logger.With("component", "analysis"))

	app := cli.NewApp(auth, analysis, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

}
