package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/katatrina/vgvault-BE/internal/apperror"
	"github.com/katatrina/vgvault-BE/internal/auction"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/katatrina/vgvault-BE/internal/metrics"
	"github.com/katatrina/vgvault-BE/internal/notification"
	"github.com/katatrina/vgvault-BE/internal/token"
	"github.com/katatrina/vgvault-BE/internal/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	router        *gin.Engine
	config        util.Config
	store         db.Store
	tokenMaker    token.Maker
	auctions      *auction.Service
	notifications *notification.Dispatcher
	eventSender   event.EventSender
	gatherer      prometheus.Gatherer
	bidLimiter    *RateLimiter
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(
	config util.Config,
	store db.Store,
	auctions *auction.Service,
	notifications *notification.Dispatcher,
	eventSender event.EventSender,
	gatherer prometheus.Gatherer,
) (*Server, error) {
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}

	server := &Server{
		config:        config,
		store:         store,
		tokenMaker:    tokenMaker,
		auctions:      auctions,
		notifications: notifications,
		eventSender:   eventSender,
		gatherer:      gatherer,
		bidLimiter:    NewRateLimiter(config.BidRateLimit, config.BidRateBurst, rateLimiterCleanupInterval),
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() {
	if server.config.Environment == util.EnvironmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", server.health)
	router.GET("/metrics", gin.WrapH(metrics.Handler(server.gatherer)))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", server.registerUser)
		authGroup.POST("/login", server.loginUser)
		authGroup.POST("/logout", server.logoutUser)
		authGroup.GET("/status", optionalAuthMiddleware(server.tokenMaker), server.getAuthStatus)
	}

	auctionGroup := v1.Group("/auctions")
	{
		auctionGroup.GET("", server.listActiveAuctions)
		auctionGroup.GET("/stream", server.streamAllAuctionEvents)
		auctionGroup.GET("/:auctionID", server.getAuctionDetails)
		auctionGroup.GET("/:auctionID/stream", server.streamAuctionEvents)

		authorized := auctionGroup.Group("", authMiddleware(server.tokenMaker))
		authorized.POST("", server.createAuction)
		authorized.POST("/:auctionID/bids", server.bidLimiter.Middleware(), server.placeBid)
		authorized.POST("/:auctionID/buy-now", server.buyNow)
		authorized.POST("/:auctionID/end-early", server.endAuctionEarly)
	}

	meGroup := v1.Group("/users/me", authMiddleware(server.tokenMaker))
	{
		meGroup.GET("/bids", server.listMyBids)
		meGroup.GET("/auctions", server.listMyAuctions)
		meGroup.GET("/stream", server.streamUserEvents)

		notificationGroup := meGroup.Group("/notifications")
		{
			notificationGroup.GET("", server.listMyNotifications)
			notificationGroup.GET("/unread-count", server.countUnreadNotifications)
			notificationGroup.PATCH("/read-all", server.markAllNotificationsAsRead)
			notificationGroup.PATCH("/:notificationID/read", server.markNotificationAsRead)
		}
	}

	adminGroup := v1.Group("/admin", authMiddleware(server.tokenMaker), requiredAdminRole())
	{
		adminGroup.GET("/auctions", server.listAllAuctions)
		adminGroup.DELETE("/auctions/:auctionID", server.deleteAuction)
		adminGroup.POST("/auctions/:auctionID/terminate", server.terminateAuction)
	}

	server.router = router
}

// Start runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func (server *Server) Start(ctx context.Context, address string) error {
	defer server.bidLimiter.Stop()

	srv := &http.Server{
		Addr:              address,
		Handler:           server.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", address).Msg("HTTP server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Msg("shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}
	return nil
}

type healthResponse struct {
	Status string `json:"status"`
}

//	@Summary		Liveness check
//	@Description	Reports whether the server can reach its database.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	healthResponse
//	@Failure		503	{object}	errorBody
//	@Router			/health [get]
func (server *Server) health(c *gin.Context) {
	if err := server.store.Ping(c.Request.Context()); err != nil {
		log.Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, errorBody{Error: "database is unreachable", Kind: string(apperror.KindInternal)})
		return
	}

	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
