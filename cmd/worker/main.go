// cmd/worker/main.go
package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	"github.com/dagconsensus/worker/internal/committee"
	"github.com/dagconsensus/worker/internal/config"
	"github.com/dagconsensus/worker/internal/fetcher"
	"github.com/dagconsensus/worker/internal/log"
	"github.com/dagconsensus/worker/internal/metrics"
	"github.com/dagconsensus/worker/internal/netreg"
	"github.com/dagconsensus/worker/internal/peerhandler"
	"github.com/dagconsensus/worker/internal/primaryclient"
	"github.com/dagconsensus/worker/internal/primaryhandler"
	"github.com/dagconsensus/worker/internal/store"
	"github.com/dagconsensus/worker/internal/store/leveldbstore"
	"github.com/dagconsensus/worker/internal/store/memstore"
	"github.com/dagconsensus/worker/internal/transport"
	"github.com/dagconsensus/worker/internal/validator"
	"github.com/dagconsensus/worker/internal/version"
)

func main() {
	cfg := config.Default()

	authorityID := flag.String("authority-id", "", "this worker's authority identifier")
	workerID := flag.Uint("worker-id", 0, "this worker's id within its authority")
	listenAddress := flag.String("listen", ":7000", "worker RPC listen address")
	primaryAddress := flag.String("primary", "", "local primary's RPC address")
	metricsAddress := flag.String("metrics", ":9000", "Prometheus /metrics listen address")
	storeDir := flag.String("store-dir", "", "LevelDB batch store directory (empty selects the default)")
	memOnly := flag.Bool("mem-store", false, "use an in-memory batch store instead of LevelDB")
	debug := flag.Bool("debug", false, "enable debug logging")
	localOnly := flag.Bool("local-only", false, "disable the network-backed synchronize/fetch_batches RPC surface")
	flag.Parse()

	cfg.AuthorityID = *authorityID
	cfg.WorkerID = uint32(*workerID)
	cfg.ListenAddress = *listenAddress
	cfg.PrimaryAddress = *primaryAddress
	cfg.MetricsAddress = *metricsAddress
	cfg.StoreDir = *storeDir
	cfg.EnableDebugLogging = *debug
	cfg.EnableNetwork = !*localOnly
	cfg.EnableFetcher = !*localOnly
	config.ApplyDefaults(cfg)

	logger := log.New(cfg.EnableDebugLogging)
	logger.Infof("starting worker %s version %s", cfg.AuthorityID, version.Version)

	var batchStore store.BatchStore
	if *memOnly {
		batchStore = memstore.New()
	} else {
		var err error
		batchStore, err = leveldbstore.Open(cfg.StoreDir, logger)
		if err != nil {
			logger.Errorf("failed to open batch store at %s: %v", cfg.StoreDir, err)
			os.Exit(1)
		}
	}
	defer batchStore.Close()

	// The committee and worker cache are populated by the primary out of
	// band; the worker starts with an empty view and relies on whatever
	// process wires Put/NewCommittee entries in before RPC traffic begins.
	comm := committee.NewCommittee(nil)
	workerCache := committee.NewWorkerCache()

	var network *netreg.Registry
	var batchFetcher fetcher.Fetcher
	if cfg.EnableNetwork {
		network = netreg.NewRegistry()
		batchFetcher = &fetcher.WorkerFanout{
			Committee:    comm,
			WorkerCache:  workerCache,
			Network:      network,
			SelfWorkerID: committee.WorkerId(cfg.WorkerID),
			RetryNodes:   cfg.RequestBatchRetryNodes,
			Logger:       logger,
		}
	}
	if !cfg.EnableFetcher {
		batchFetcher = nil
	}

	basicValidator := &validator.Basic{MaxBatchSize: 1024 * 1024}

	primaryConn, err := primaryclient.Dial(cfg.PrimaryAddress)
	if err != nil {
		logger.Errorf("failed to dial primary at %s: %v", cfg.PrimaryAddress, err)
		os.Exit(1)
	}
	defer primaryConn.Close()
	primaryClient := primaryclient.New(primaryConn)

	peerHandler := &peerhandler.Handler{
		WorkerID:  committee.WorkerId(cfg.WorkerID),
		Store:     batchStore,
		Validator: basicValidator,
		Primary:   primaryClient,
		Logger:    logger,
	}
	primaryHandler := &primaryhandler.Handler{
		AuthorityID: committee.AuthorityIdentifier(cfg.AuthorityID),
		WorkerID:    committee.WorkerId(cfg.WorkerID),
		Committee:   comm,
		WorkerCache: workerCache,
		Store:       batchStore,
		Validator:   basicValidator,
		Logger:      logger,
		Config: primaryhandler.Config{
			RequestBatchTimeout:    cfg.RequestBatchTimeout,
			RequestBatchRetryNodes: cfg.RequestBatchRetryNodes,
		},
		Network: network,
		Fetcher: batchFetcher,
	}

	grpcServer := grpc.NewServer()
	transport.RegisterWorkerService(grpcServer, peerHandler)
	transport.RegisterPrimaryService(grpcServer, primaryHandler)

	metrics.Register(prometheus.DefaultRegisterer)
	metricsServer := &http.Server{
		Addr:    cfg.MetricsAddress,
		Handler: promhttp.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warnf("metrics server stopped: %v", err)
		}
	}()

	listener, err := net.Listen("tcp", cfg.ListenAddress)
	if err != nil {
		logger.Errorf("failed to listen on %s: %v", cfg.ListenAddress, err)
		os.Exit(1)
	}

	go func() {
		logger.Infof("serving worker RPC on %s", cfg.ListenAddress)
		if err := grpcServer.Serve(listener); err != nil {
			logger.Warnf("grpc server stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Infof("shutting down")
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)
}
