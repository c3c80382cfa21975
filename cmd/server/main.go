package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/merklekv/merkle-kv/internal/config"
	"github.com/merklekv/merkle-kv/internal/logger"
	"github.com/merklekv/merkle-kv/internal/replication"
	"github.com/merklekv/merkle-kv/internal/server"
	"github.com/merklekv/merkle-kv/internal/store"
	"github.com/merklekv/merkle-kv/internal/workers"
)

const brokerConnectTimeout = 10 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	flags := config.ParseFlags()

	log := logger.NewLogger("merkle-kv", flags.LogLevel)
	cfg, err := config.Load(flags.ConfigPath, config.SystemEnvironment())
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving configs")
	}

	log.Info().Object("config", cfg).Msg("resolved configs")

	holder := config.NewHolder(cfg)
	go watchReload(holder, flags.ConfigPath, log)

	st, err := store.New(cfg.Engine)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage engine")
	}

	var pub server.Publisher
	var repl *replication.Client
	if cfg.Replication.Enabled {
		repl = replication.NewClient(cfg.Replication, st, log.GetChildLogger())

		ctx, cancel := context.WithTimeout(context.Background(), brokerConnectTimeout)
		err := repl.Connect(ctx)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting replication")
		}
		defer repl.Close()
		pub = repl

		antiEntropy := workers.NewAntiEntropy(
			func() time.Duration {
				return time.Duration(holder.Current().SyncIntervalSeconds) * time.Second
			},
			st, repl, log.GetChildLogger(),
		)
		workers.NewWorkers(antiEntropy).Run()
		defer antiEntropy.Stop()
	}

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	srv := server.NewServer(addr, st, pub, log)
	srv.RunServer()
}

// watchReload re-resolves the configuration on SIGHUP. The fresh config is
// published through the holder wholesale; the anti-entropy worker reads the
// holder before every cycle and follows interval changes, while the storage
// engine, listen address and broker session keep their startup wiring until
// restart.
func watchReload(holder *config.Holder, path string, log *logger.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)

	for range hup {
		cfg, err := holder.Reload(path, config.SystemEnvironment())
		if err != nil {
			log.Error().Err(err).Msg("error reloading configs, keeping previous")
			continue
		}
		log.Info().Object("config", cfg).Msg("configs reloaded")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
