package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/newtl/litecoinz/chaincore/config"
	"github.com/newtl/litecoinz/core/logging"
	"github.com/newtl/litecoinz/node"
)

func main() {
	deploymentMode := flag.Int("deployment_mode", 2, "deployment_mode")
	flag.Parse()
	config.Configuration.DeploymentMode = byte(*deploymentMode)

	// The dashboard defaults depend on whether stdout is a terminal: a
	// refreshing screen every second on a TTY, rolling output every ten
	// minutes otherwise.
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	config.SetupDefaultConfig()
	viper.SetDefault("metrics.ui", isTTY)
	if !isTTY {
		viper.SetDefault("metrics.refresh_time", 10*time.Minute)
	}
	config.SetupConfig()

	if config.Development() {
		logging.InitLogging("development")
	} else {
		logging.InitLogging("production")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	n := node.NewNode()
	done := n.Start(ctx)
	logging.Logger.Info("Node started",
		zap.Bool("metrics_ui", config.Configuration.MetricsUI),
		zap.Duration("refresh_time", config.Configuration.RefreshInterval),
		zap.Bool("mining", config.Configuration.MiningEnabled))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	logging.Logger.Info("Shutting down", zap.String("signal", sig.String()))

	cancel()
	<-done
}
