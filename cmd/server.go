package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"soko/internal/config"
	"soko/internal/core"
	"soko/internal/db"
	"soko/internal/ethereum"
	"soko/internal/http/handler"
	"soko/internal/http/handler/middleware"
	"soko/internal/http/payload"
	"soko/internal/http/server"
	"soko/internal/metrics"
	"soko/internal/repository"
	"soko/internal/session"
	"soko/internal/wallet"
	"soko/pkg/jwt"
	"soko/pkg/log"
	"syscall"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("soko", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger = log.NewZapLogger("soko", log.ParseLevel(config.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repositories
	txRepo := repository.NewTransactionRepository(dbConn)
	pairingRepo := repository.NewPairingRepository(dbConn)

	err = txRepo.MigrateTables(
		&repository.Transaction{},
		&repository.Pairing{})
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("node connection failed", "error", err)
		return err
	}
	defer client.Close()

	marketService, err := ethereum.NewMarketService(client, config.MarketAddress)
	if err != nil {
		logger.Errorw("failed to create market service", "error", err)
		return err
	}

	err = marketService.CheckContracts(ctx,
		config.MarketAddress,
		config.EnergyTokenAddress,
		config.PaymentTokenAddr)
	if err != nil {
		logger.Errorw("contract check failed", "error", err)
		return err
	}

	// wallet
	ks := keystore.NewKeyStore(config.KeystoreDir, keystore.StandardScryptN, keystore.StandardScryptP)
	provider := wallet.NewKeystoreProvider(logger, ks, pairingRepo, config.WalletPassphrase)
	if err := provider.Init(ctx); err != nil {
		logger.Errorw("failed to restore pairing", "error", err)
		return err
	}

	walletEvents := make(chan accounts.WalletEvent, 8)
	sub := ks.Subscribe(walletEvents)
	defer sub.Unsubscribe()
	go provider.Watch(ctx, walletEvents)

	// session
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))
	manager := session.NewManager(logger, provider, jwtService)
	manager.Restore()
	go manager.Run(ctx)

	// marketplace
	market := core.NewMarketplace(logger, marketService, txRepo, core.Contracts{
		Market:       config.MarketAddress,
		EnergyToken:  config.EnergyTokenAddress,
		PaymentToken: config.PaymentTokenAddr,
	})
	board := core.NewBoard(logger, market, manager.NotifyRefresh)

	// handlers
	marketHlr := handler.NewMarketHandler(
		logger,
		payload.Decoder{},
		market,
		board,
		manager)
	walletHlr := handler.NewWalletHandler(
		logger,
		payload.Decoder{},
		manager)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.GetListings, marketHlr.HandleGetListings)
	mux.HandleFunc(handler.RefreshListings, marketHlr.HandleRefreshListings)
	mux.HandleFunc(handler.CreateListing, marketHlr.HandleCreateListing)
	mux.HandleFunc(handler.BuyListing, marketHlr.HandleBuyListing)
	mux.HandleFunc(handler.GetAction, marketHlr.HandleGetAction)
	mux.HandleFunc(handler.ResumeAction, marketHlr.HandleResumeAction)
	mux.HandleFunc(handler.GetTransactions, marketHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetWallet, walletHlr.HandleGetWallet)
	mux.HandleFunc(handler.ConnectWallet, walletHlr.HandleConnect)
	mux.HandleFunc(handler.DisconnectWallet, walletHlr.HandleDisconnect)
	mux.HandleFunc(handler.Events, walletHlr.HandleEvents)
	mux.Handle("GET /metrics", metrics.Handler())

	// first snapshot
	board.Signal()

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
