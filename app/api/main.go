package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/go-playground/validator/v10"
	"github.com/gomodule/redigo/redis"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	echoSwagger "github.com/swaggo/echo-swagger"
	"google.golang.org/api/option"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/database/mongoclient"
	"github.com/Beat1ngHeart/Custom-NFT/base/database/redisclient"
	"github.com/Beat1ngHeart/Custom-NFT/base/ethereum"
	"github.com/Beat1ngHeart/Custom-NFT/base/ipfsuri"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	bValidator "github.com/Beat1ngHeart/Custom-NFT/base/validator"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/keys"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mint"
	mmiddleware "github.com/Beat1ngHeart/Custom-NFT/middleware"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache/provider/primitive"
	"github.com/Beat1ngHeart/Custom-NFT/service/chain"
	"github.com/Beat1ngHeart/Custom-NFT/service/discord"
	"github.com/Beat1ngHeart/Custom-NFT/service/ens"
	"github.com/Beat1ngHeart/Custom-NFT/service/ipfs"
	"github.com/Beat1ngHeart/Custom-NFT/service/pinata"
	"github.com/Beat1ngHeart/Custom-NFT/service/query"
	contract_delivery "github.com/Beat1ngHeart/Custom-NFT/stores/contract/delivery/http"
	contract_repository "github.com/Beat1ngHeart/Custom-NFT/stores/contract/repository"
	contract_usecase "github.com/Beat1ngHeart/Custom-NFT/stores/contract/usecase"
	hc_delivery "github.com/Beat1ngHeart/Custom-NFT/stores/healthcheck/delivery/http"
	hc_repo "github.com/Beat1ngHeart/Custom-NFT/stores/healthcheck/repository"
	hc_usecase "github.com/Beat1ngHeart/Custom-NFT/stores/healthcheck/usecase"
	listing_delivery "github.com/Beat1ngHeart/Custom-NFT/stores/listing/delivery/http"
	listing_repository "github.com/Beat1ngHeart/Custom-NFT/stores/listing/repository"
	listing_usecase "github.com/Beat1ngHeart/Custom-NFT/stores/listing/usecase"
	mint_delivery "github.com/Beat1ngHeart/Custom-NFT/stores/mint/delivery/http"
	mint_repository "github.com/Beat1ngHeart/Custom-NFT/stores/mint/repository"
	mint_usecase "github.com/Beat1ngHeart/Custom-NFT/stores/mint/usecase"
	ownership_delivery "github.com/Beat1ngHeart/Custom-NFT/stores/ownership/delivery/http"
	ownership_usecase "github.com/Beat1ngHeart/Custom-NFT/stores/ownership/usecase"
	web_resource_repository "github.com/Beat1ngHeart/Custom-NFT/stores/web_resource/repository"
	web_resource_usecase "github.com/Beat1ngHeart/Custom-NFT/stores/web_resource/usecase"

	_ "github.com/Beat1ngHeart/Custom-NFT/app/api/docs"
)

var configFile = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

func init() {
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}

	log.Init(viper.GetBool("debug"))
	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Custom NFT API
//	@version		1.0
//	@description	Listing, minting and ownership api for custom NFTs.

// main
func main() {
	defer log.Sync()

	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit("32M"))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context, cancel := ctx.WithCancel(ctx.Background())
	defer cancel()

	// init redis
	context.Info("init redis")
	redisURI := viper.GetString("redis.uri")
	redisPwd := viper.GetString("redis.pwd")
	redisPool := redisclient.MustConnectRedis(redisURI, redisPwd, redisclient.RedisParam{
		PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
		Retry:          viper.GetBool("redis.retry"),
	})
	defer redisPool.Close()

	// init mongo, mint records stay in memory without it
	var (
		mongoClient *mongoclient.Client
		mintRepo    mint.Repository
		err         error
	)
	if uri := viper.GetString("mongo.uri"); len(uri) > 0 {
		context.Info("init mongo")
		mongoClient = mongoclient.MustConnectMongoClient(mongoclient.Config{
			Uri:            uri,
			AuthDBName:     viper.GetString("mongo.authDBName"),
			DbName:         viper.GetString("mongo.dbName"),
			EnableSSL:      viper.GetBool("mongo.enableSSL"),
			SetSafe:        true,
			PoolMultiplier: viper.GetFloat64("mongo.poolMultiplier"),
		})
		q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
		if mintRepo, err = mint_repository.NewMongoRepo(context, q); err != nil {
			context.WithField("err", err).Panic("mint_repository.NewMongoRepo failed")
		}
	} else {
		context.Warn("mongo.uri not set, mint records are kept in memory")
		mintRepo = mint_repository.NewMemoryRepo()
	}

	// init chain client
	context.Info("init chain")
	ethClient, err := ethclient.DialContext(context, viper.GetString("chain.rpcUrl"))
	if err != nil {
		context.WithField("err", err).Panic("ethclient.DialContext failed")
	}
	walletClient, err := rpc.DialContext(context, viper.GetString("chain.walletUrl"))
	if err != nil {
		context.WithField("err", err).Panic("rpc.DialContext failed")
	}
	defer walletClient.Close()
	chainClient := chain.NewClient(
		ethereum.NewThrottledClient(ethClient, viper.GetInt("chain.maxConcurrency")),
		walletClient,
		chain.ClientCfg{},
	)
	network := domain.NetworkParams{
		ChainId:   domain.ChainId(viper.GetInt64("chain.chainId")),
		ChainName: viper.GetString("chain.chainName"),
		RpcUrls:   []string{viper.GetString("chain.rpcUrl")},
		NativeCurrency: domain.NativeCurrency{
			Name:     viper.GetString("chain.currency"),
			Symbol:   viper.GetString("chain.currency"),
			Decimals: 18,
		},
	}
	if explorer := viper.GetString("chain.explorerUrl"); len(explorer) > 0 {
		network.BlockExplorerUrls = []string{explorer}
	}

	// init pinning, pinata first, then an ipfs node, listings stay inline without either
	gateway := viper.GetString("ipfs.gateway")
	if len(gateway) == 0 {
		gateway = ipfsuri.DefaultGateway
	}
	var ipfsShell *ipfsapi.Shell
	if api := viper.GetString("ipfs.api"); len(api) > 0 {
		ipfsShell = ipfsapi.NewShell(api)
	}
	var pinning domain.PinningClient
	pinataCfg := pinata.Config{
		Jwt:       viper.GetString("pinata.jwt"),
		ApiKey:    viper.GetString("pinata.apiKey"),
		ApiSecret: viper.GetString("pinata.apiSecret"),
		Endpoint:  viper.GetString("pinata.endpoint"),
	}
	if pinataCfg.HasCredentials() {
		svc, err := pinata.New(pinataCfg)
		if err != nil {
			context.WithField("err", err).Panic("pinata.New failed")
		}
		pinning = pinata.NewPinningClient(svc, gateway)
	} else if ipfsShell != nil {
		context.Warn("pinata credentials not set, pinning through the ipfs node")
		pinning = ipfs.NewPinningClient(ipfsShell, gateway)
	} else {
		context.Warn("no pinning configured, listings keep their assets inline")
	}

	// init cache and ens
	cacheSize := viper.GetInt("cache.sizeMB")
	if cacheSize <= 0 {
		cacheSize = 64
	}
	cacheTtl := viper.GetDuration("cache.ttl")
	if cacheTtl <= 0 {
		cacheTtl = 10 * time.Minute
	}
	localCache := primitive.NewPrimitive("api", cacheSize)
	metadataCache := cache.New(cache.ServiceConfig{
		Ttl:   cacheTtl,
		Pfx:   keys.PfxMetadata,
		Cache: localCache,
	})
	var ensService ens.ENS
	if ensRpc := viper.GetString("ens.rpcUrl"); len(ensRpc) > 0 {
		ensClient, err := ethclient.DialContext(context, ensRpc)
		if err != nil {
			context.WithField("err", err).Panic("ethclient.DialContext for ens failed")
		}
		ensService = ens.New(ensClient, localCache, cacheTtl)
	}

	// init web resource
	httpClient := &http.Client{}
	httpTimeout := viper.GetDuration("http.timeout")
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	ipfsReader := web_resource_repository.NewIpfsGatewayReaderRepo(httpClient, gateway, httpTimeout)
	if ipfsShell != nil {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsShell, httpTimeout)
	}
	webResourceCfg := &web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    web_resource_repository.NewHttpReaderRepo(httpClient, httpTimeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
	}
	if bucket := viper.GetString("gcs.bucket"); len(bucket) > 0 {
		storageClient, err := storage.NewClient(context, option.WithCredentialsFile(viper.GetString("gcs.credentials")))
		if err != nil {
			context.WithField("err", err).Panic("storage.NewClient failed")
		}
		defer storageClient.Close()
		writer, err := web_resource_repository.NewCloudStorageWriterRepo(&web_resource_repository.CloudStorageWriterRepoCfg{
			Timeout:    httpTimeout,
			Client:     storageClient,
			BucketName: bucket,
		})
		if err != nil {
			context.WithField("err", err).Panic("NewCloudStorageWriterRepo failed")
		}
		webResourceCfg.CloudStorageWriter = writer
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(webResourceCfg)

	notifier, err := discord.NewNotifier(discord.Config{
		BotKey:    viper.GetString("discord.botKey"),
		ChannelId: viper.GetString("discord.channelId"),
	})
	if err != nil {
		context.WithField("err", err).Panic("discord.NewNotifier failed")
	}
	defer notifier.Close()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisPool)
	listingRepo := listing_repository.NewRedisRepo(redisPool, func() (redis.Conn, error) {
		return redisclient.DialSubscriber(redisURI, redisPwd)
	})
	contractRepo := contract_repository.NewRedisRepo(redisPool)

	listingStore, err := listing_usecase.NewStore(context, listingRepo)
	if err != nil {
		context.WithField("err", err).Panic("listing_usecase.NewStore failed")
	}
	resyncStopped := listing_usecase.StartResync(context, listingStore, viper.GetDuration("listing.resyncInterval"))

	hc := hc_usecase.New(hcRepo, chainClient, network.ChainId)
	lifecycle := listing_usecase.NewLifecycle(&listing_usecase.LifecycleCfg{
		Store:    listingStore,
		Pinning:  pinning,
		Notifier: notifier,
	})
	contractUseCase := contract_usecase.New(&contract_usecase.ContractUseCaseCfg{
		Chain:   chainClient,
		Repo:    contractRepo,
		Address: domain.Address(viper.GetString("contract.address")),
	})
	mintUseCase := mint_usecase.New(&mint_usecase.MintUseCaseCfg{
		Listings: listingStore,
		Repo:     mintRepo,
		Chain:    chainClient,
		Contract: contractUseCase,
		Network:  network,
		Notifier: notifier,
	})
	ownershipUseCase := ownership_usecase.New(&ownership_usecase.OwnershipUseCaseCfg{
		Chain:       chainClient,
		Contract:    contractUseCase,
		WebResource: webResource,
		Ens:         ensService,
		Cache:       metadataCache,
		Gateway:     gateway,
		Archive:     webResourceCfg.CloudStorageWriter != nil,
	})

	if err := mintUseCase.Resume(context); err != nil {
		context.WithField("err", err).Error("mintUseCase.Resume failed")
	}

	hc_delivery.New(e, hc)
	listing_delivery.New(e, lifecycle)
	mint_delivery.New(e, mintUseCase)
	scanCacheDuration := viper.GetDuration("ownership.cacheDuration")
	if scanCacheDuration <= 0 {
		scanCacheDuration = 30 * time.Second
	}
	ownership_delivery.New(e, ownershipUseCase, mmiddleware.CacheHttp(localCache, scanCacheDuration))
	contract_delivery.New(e, contractUseCase)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")

	cancel()
	<-resyncStopped

	shutdownCtx, shutdownCancel := ctx.WithTimeout(ctx.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
