// Package main runs the node telemetry service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/metrics"
	rpcclient2 "github.com/goodnatureofminers/blockinsight7000-telemetry/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/telemetry/geo"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/telemetry/host"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/telemetry/logbridge"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/telemetry/node"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/telemetry/service"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/telemetry/window"
	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/transport"
)

type config struct {
	Network     string        `long:"network" env:"TELEMETRY_NETWORK" description:"network label for metrics" default:"mainnet"`
	RPCURL      string        `long:"rpc-url" env:"TELEMETRY_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser     string        `long:"rpc-user" env:"TELEMETRY_RPC_USER" description:"node RPC username"`
	RPCPassword string        `long:"rpc-password" env:"TELEMETRY_RPC_PASSWORD" description:"node RPC password"`
	RPCTimeout  time.Duration `long:"rpc-timeout" env:"TELEMETRY_RPC_TIMEOUT" description:"circuit breaker open timeout" default:"30s"`
	RPCFailures uint32        `long:"rpc-failures" env:"TELEMETRY_RPC_FAILURES" description:"consecutive RPC failures before the breaker opens" default:"5"`
	KnownPeers  int32         `long:"known-peers" env:"TELEMETRY_KNOWN_PEERS" description:"max addresses read from the node registry, 0 for all" default:"0"`

	GeoIPDB string `long:"geoip-db" env:"TELEMETRY_GEOIP_DB" description:"path to a MaxMind country database"`
	DiskDir string `long:"disk-dir" env:"TELEMETRY_DISK_DIR" description:"directory whose filesystem is reported as free disk" default:"."`

	NodeLibraryVersion string `long:"node-library-version" env:"TELEMETRY_NODE_LIBRARY_VERSION" description:"node library version reported in initial info"`
	AppVersion         string `long:"app-version" env:"TELEMETRY_APP_VERSION" description:"application version reported in initial info" default:"dev"`

	MachineInterval    time.Duration `long:"machine-interval" env:"TELEMETRY_MACHINE_INTERVAL" description:"machine snapshot interval" default:"5s"`
	BlockchainInterval time.Duration `long:"blockchain-interval" env:"TELEMETRY_BLOCKCHAIN_INTERVAL" description:"blockchain snapshot interval" default:"2s"`
	PeerInterval       time.Duration `long:"peer-interval" env:"TELEMETRY_PEER_INTERVAL" description:"peer snapshot interval" default:"1500ms"`
	PublishTimeout     time.Duration `long:"publish-timeout" env:"TELEMETRY_PUBLISH_TIMEOUT" description:"timeout of one publish" default:"3s"`

	FollowerInterval time.Duration `long:"follower-interval" env:"TELEMETRY_FOLLOWER_INTERVAL" description:"tip polling interval" default:"5s"`
	FollowerWorkers  int           `long:"follower-workers" env:"TELEMETRY_FOLLOWER_WORKERS" description:"concurrent block fetches" default:"8"`
	FollowerRPS      int           `long:"follower-rps" env:"TELEMETRY_FOLLOWER_RPS" description:"block fetches per second" default:"50"`
	Backfill         int           `long:"backfill" env:"TELEMETRY_BACKFILL" description:"blocks loaded below the tip on start" default:"100"`
	ZMQAddr          string        `long:"zmq-addr" env:"TELEMETRY_ZMQ_ADDR" description:"node zmqpubhashblock endpoint"`

	LogLevel    string   `long:"log-level" env:"TELEMETRY_LOG_LEVEL" description:"log level" default:"info"`
	LogChannels []string `long:"log-channel" env:"TELEMETRY_LOG_CHANNELS" env-delim:"," description:"logger names forwarded to the system log topic"`
	LogMinLevel string   `long:"log-min-level" env:"TELEMETRY_LOG_MIN_LEVEL" description:"lowest level forwarded to the system log topic" default:"info"`

	Addr      string   `long:"addr" env:"TELEMETRY_ADDR" description:"gRPC health addr" default:":8000"`
	RestAddr  string   `long:"rest-addr" env:"TELEMETRY_REST_ADDR" description:"rest, websocket and metrics addr" default:":8001"`
	WSOrigins []string `long:"ws-origin" env:"TELEMETRY_WS_ORIGINS" env-delim:"," description:"extra origins allowed to subscribe"`
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "failed to parse flags:", err)
		os.Exit(2)
	}

	base, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = base.Sync()
	}()

	if err := run(ctx, cfg, base); err != nil {
		base.Fatal("telemetry failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// run wires the service. base is the plain logger: the log bridge and the
// hub log through it so forwarded lines never loop back into the bridge.
func run(ctx context.Context, cfg config, base *zap.Logger) error {
	minLevel, err := zapcore.ParseLevel(cfg.LogMinLevel)
	if err != nil {
		return fmt.Errorf("parse log min level: %w", err)
	}

	hub := transport.NewHub(transport.HubConfig{OriginPatterns: cfg.WSOrigins}, metrics.NewPublisher(), base)
	defer hub.Close()

	bridge := logbridge.New(hub, metrics.NewLogBridge(), logbridge.Config{
		Channels: cfg.LogChannels,
		MinLevel: minLevel,
	}, base)
	// outlives ctx so lines logged during shutdown are still delivered
	bridge.Start(context.WithoutCancel(ctx))
	defer bridge.Close()

	logger := base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, bridge)
	}))
	grpcZap.ReplaceGrpcLoggerV2(base)

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	rpcMetrics := metrics.NewRPCClient(cfg.Network)
	facade := node.NewFacade(
		rpcclient2.NewObservedClient(rpcClient, rpcMetrics),
		node.BreakerSettings{Name: "node-rpc", FailureThreshold: cfg.RPCFailures, OpenTimeout: cfg.RPCTimeout},
		cfg.KnownPeers,
		rpcMetrics,
		logger,
	)

	wake, err := startBlockSignal(ctx, cfg.ZMQAddr, logger)
	if err != nil {
		return fmt.Errorf("init block signal: %w", err)
	}

	blocks := window.New(window.DefaultCapacity)
	follower, err := node.NewFollower(facade, blocks, metrics.NewBlockFollower(cfg.Network), node.FollowerConfig{
		Prefill:      cfg.Backfill,
		Workers:      cfg.FollowerWorkers,
		RPS:          cfg.FollowerRPS,
		PollInterval: cfg.FollowerInterval,
		Wake:         wake,
	}, logger)
	if err != nil {
		return fmt.Errorf("init block follower: %w", err)
	}

	resolver := geo.Open(cfg.GeoIPDB, geo.NewLocaleIndex(), metrics.NewGeo(), logger)
	defer func() {
		if err := resolver.Close(); err != nil {
			logger.Warn("close geoip database", zap.Error(err))
		}
	}()

	svc, err := service.New(service.Config{
		NodeLibraryVersion: cfg.NodeLibraryVersion,
		AppVersion:         cfg.AppVersion,
		MachineInterval:    cfg.MachineInterval,
		BlockchainInterval: cfg.BlockchainInterval,
		PeerInterval:       cfg.PeerInterval,
		PublishTimeout:     cfg.PublishTimeout,
	}, service.Dependencies{
		Sampler:   host.NewProbe(cfg.DiskDir, logger),
		Chain:     facade,
		Window:    blocks,
		Peers:     facade,
		Resolver:  resolver,
		Publisher: hub,
		Metrics:   metrics.NewChain(),
	}, logger)
	if err != nil {
		return fmt.Errorf("init telemetry service: %w", err)
	}

	healthServer := health.NewServer()
	reporter := transport.NewHealthReporter(healthServer)

	scheduler, err := service.NewScheduler(clock.New(), metrics.NewScheduler(), reporter, logger, svc.Schedules()...)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	if err := startGRPCServer(ctx, cfg.Addr, healthServer, reporter, base); err != nil {
		return err
	}

	gw := gwruntime.NewServeMux()
	if err := transport.NewQueryHandler(svc, logger).Register(gw); err != nil {
		return fmt.Errorf("register query handler: %w", err)
	}
	startHTTPServer(ctx, cfg.RestAddr, gw, hub, base)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := follower.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("block follower stopped", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		_ = scheduler.Run(ctx)
	}()

	<-ctx.Done()
	logger.Named("general").Info("shutting down")
	wg.Wait()
	return nil
}

func startGRPCServer(ctx context.Context, addr string, healthServer *health.Server, reporter *transport.HealthReporter, logger *zap.Logger) error {
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	go func() {
		logger.Info("Starting gRPC server", zap.String("addr", addr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server failed", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		reporter.Shutdown()
		grpcServer.GracefulStop()
	}()
	return nil
}

func startHTTPServer(ctx context.Context, addr string, gw *gwruntime.ServeMux, hub *transport.Hub, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/ws", hub)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Failed to listen and serve", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		// hijacked websocket connections are closed by hub.Close
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
