package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/katatrina/vgvault-BE/api"
	"github.com/katatrina/vgvault-BE/internal/auction"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/db/migration"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/katatrina/vgvault-BE/internal/expiry"
	"github.com/katatrina/vgvault-BE/internal/mailer"
	"github.com/katatrina/vgvault-BE/internal/metrics"
	"github.com/katatrina/vgvault-BE/internal/notification"
	"github.com/katatrina/vgvault-BE/internal/storage"
	"github.com/katatrina/vgvault-BE/internal/util"
	"github.com/katatrina/vgvault-BE/internal/worker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	_ "github.com/katatrina/vgvault-BE/docs"
)

//	@title			VG Vault API
//	@version		1.0.0
//	@description	Auction marketplace for retro video games and collectibles.

//	@host		localhost:8080
//	@BasePath	/v1
//	@schemes	http https

//	@securityDefinitions.apikey	accessToken
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file 😣")
	}

	if config.Environment == util.EnvironmentDevelopment {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Info().Str("environment", config.Environment).Msg("configurations loaded successfully ✅")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = migration.RunMigrations(config.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("failed to run db migrations 😣")
	}
	log.Info().Msg("db migrated successfully ✅")

	// Create connection pool
	connPool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string 😣")
	}
	defer connPool.Close()

	if err = connPool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db 😣")
	}
	log.Info().Msg("connected to db ✅")

	store := db.NewStore(connPool)

	if err = seedAdminUser(ctx, config, store); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user 😣")
	}

	redisDb := redis.NewClient(&redis.Options{
		Addr: config.RedisServerAddress,
	})
	defer redisDb.Close()

	if err = redisDb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis 😣")
	}
	log.Info().Msg("connected to redis ✅")

	// Every instance publishes to Redis and relays the channel into its own SSE hub,
	// so clients connected to any instance see every event.
	hub := event.NewSSEServer()
	go hub.Run()
	defer hub.Close()

	redisBroadcaster := event.NewRedisBroadcaster(redisDb, event.RedisChannel)
	defer redisBroadcaster.Close()

	broadcaster := event.Fanout{redisBroadcaster}
	var mirror *event.FirestoreMirror
	if config.FirebaseCredentialsFile != "" {
		mirror, err = event.NewFirestoreMirror(ctx, config.FirebaseCredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create firestore mirror 😣")
		}
		defer mirror.Close()

		broadcaster = append(broadcaster, mirror)
		log.Info().Msg("firestore notification mirror enabled ✅")
	}

	redisOpt := asynq.RedisClientOpt{
		Addr: config.RedisServerAddress,
	}

	taskDistributor := worker.NewTaskDistributor(redisOpt)
	defer taskDistributor.Close()

	taskInspector := worker.NewTaskInspector(redisOpt)
	defer taskInspector.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(registry)

	var (
		emails      notification.EmailQueue
		emailSender mailer.EmailSender
	)
	if config.EmailEnabled() {
		smtpSender, err := mailer.NewSMTPSender(config.SMTPHost, config.SMTPPort, config.SMTPUsername, config.SMTPPassword, config.SMTPFrom)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create mailer service 😣")
		}
		emails = taskDistributor
		emailSender = smtpSender
		log.Info().Str("host", config.SMTPHost).Msg("email notifications enabled ✅")
	}

	fileStore, err := newFileStore(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create asset store 😣")
	}

	notifications := notification.NewDispatcher(store, broadcaster, emails, collector)
	if mirror != nil {
		notifications.WithMirror(mirror)
	}
	auctions := auction.NewService(store, notifications, broadcaster,
		auction.WithFileStore(fileStore),
		auction.WithEndScheduler(taskDistributor, taskInspector),
		auction.WithMetrics(collector),
	)

	waitGroup, ctx := errgroup.WithContext(ctx)

	runEventRelay(ctx, waitGroup, redisDb, hub)
	runTaskProcessor(ctx, waitGroup, redisOpt, auctions, emailSender)
	runExpirySweeper(ctx, waitGroup, auctions, config)
	runHTTPServer(ctx, waitGroup, config, store, auctions, notifications, hub, registry)

	if err = waitGroup.Wait(); err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
	log.Info().Msg("server stopped gracefully 👋")
}

func newFileStore(ctx context.Context, config util.Config) (storage.FileStore, error) {
	switch config.AssetStore {
	case util.AssetStoreCloudinary:
		return storage.NewCloudinaryStore(config.CloudinaryURL)
	case util.AssetStoreS3:
		return storage.NewS3Store(ctx, config.S3Bucket, config.S3Region, config.S3PublicBaseURL)
	default:
		log.Warn().Msg("no asset store configured, auction images will be skipped")
		return storage.NoopStore{}, nil
	}
}

// seedAdminUser makes sure the configured admin account exists and has the admin flag.
func seedAdminUser(ctx context.Context, config util.Config, store db.Store) error {
	if config.AdminUsername == "" {
		return nil
	}

	hashedPassword, err := util.HashPassword(config.AdminPassword)
	if err != nil {
		return err
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate user ID: %w", err)
	}

	email := config.AdminEmail
	if email == "" {
		email = config.AdminUsername + "@vgvault.local"
	}

	admin, err := store.UpsertAdminUser(ctx, db.UpsertAdminUserParams{
		ID:             userID,
		Username:       config.AdminUsername,
		DisplayName:    config.AdminUsername,
		Email:          email,
		HashedPassword: hashedPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert admin user: %w", err)
	}

	log.Info().Str("user_id", admin.ID.String()).Str("username", admin.Username).Msg("admin user ready ✅")
	return nil
}

func runEventRelay(ctx context.Context, waitGroup *errgroup.Group, redisDb *redis.Client, hub *event.SSEServer) {
	relay := event.NewRedisRelay(redisDb, event.RedisChannel, hub)

	waitGroup.Go(func() error {
		if err := relay.Run(ctx); err != nil {
			return fmt.Errorf("event relay stopped: %w", err)
		}
		log.Info().Msg("event relay stopped")
		return nil
	})
}

func runTaskProcessor(
	ctx context.Context,
	waitGroup *errgroup.Group,
	redisOpt asynq.RedisClientOpt,
	expirer worker.AuctionExpirer,
	sender mailer.EmailSender,
) {
	taskProcessor := worker.NewRedisTaskProcessor(redisOpt, expirer, sender)

	log.Info().Msg("start task processor")
	if err := taskProcessor.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start task processor 😣")
	}

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown task processor")

		taskProcessor.Shutdown()
		log.Info().Msg("task processor is stopped")
		return nil
	})
}

func runExpirySweeper(ctx context.Context, waitGroup *errgroup.Group, auctions expiry.AuctionSweeper, config util.Config) {
	sweeper, err := expiry.NewSweeper(auctions, config.ExpirySweepInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create expiry sweeper 😣")
	}

	if err = sweeper.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start expiry sweeper 😣")
	}

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("graceful shutdown expiry sweeper")

		if err := sweeper.Stop(); err != nil {
			return fmt.Errorf("failed to stop expiry sweeper: %w", err)
		}
		log.Info().Msg("expiry sweeper is stopped")
		return nil
	})
}

func runHTTPServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store db.Store,
	auctions *auction.Service,
	notifications *notification.Dispatcher,
	hub *event.SSEServer,
	gatherer prometheus.Gatherer,
) {
	server, err := api.NewServer(config, store, auctions, notifications, hub, gatherer)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create HTTP server 😣")
	}

	waitGroup.Go(func() error {
		if err := server.Start(ctx, config.HTTPServerAddress); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		log.Info().Msg("HTTP server is stopped")
		return nil
	})
}
