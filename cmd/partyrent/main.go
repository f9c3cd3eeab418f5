package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rentalworks/partyrent/config"
	"github.com/rentalworks/partyrent/internal/adminapi"
	"github.com/rentalworks/partyrent/internal/app"
	"github.com/rentalworks/partyrent/internal/storeapi"
	"github.com/rentalworks/partyrent/internal/webserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	confFile    = flag.String("conf", "/etc/partyrent.yml", "config file")
	showVersion = flag.Bool("v", false, "show version")
	initDb      = flag.Bool("initdb", false, "drop and rebuild the database, then exit")
	debug       = flag.Bool("x", false, "debug mode")
)

var gitCommit = "unknown"

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println("partyrent commit:", gitCommit)
		os.Exit(0)
	}

	cfg := config.LoadConfig(*confFile)
	if *debug {
		cfg.System.Debug = true
	}

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initDb {
		application.InitDb()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := webserver.Init(application)
	adminapi.Init()
	storeapi.Init()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Listen()
	})
	g.Go(func() error {
		application.StartBackgroundJobs(ctx)
		<-ctx.Done()
		server.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server stopped", zap.Error(err))
	}
}
