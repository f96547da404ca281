package http_server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"auctionhousego/internal/auth/token"
	"auctionhousego/internal/http/accounthandler"
	"auctionhousego/internal/http/auctionhandler"
	"auctionhousego/internal/http/categoryhandler"
	"auctionhousego/internal/http/feedbackhandler"
	"auctionhousego/internal/http/middleware"
	"auctionhousego/internal/redis/redis_client"
	"auctionhousego/internal/services/account"
	"auctionhousego/internal/services/auction"
	"auctionhousego/internal/services/category"
	"auctionhousego/internal/services/feedback"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/abrar71/swaggerfilesv2" // swagger embed files
)

// Services bundles everything the REST handlers call into.
type Services struct {
	Categories category.ICategoryService
	Auctions   auction.IAuctionService
	Feedback   feedback.IFeedbackService
	Accounts   account.IAccountService
	Tokens     token.IManager
}

type httpServer struct {
	listenPort uint16
	pageSize   int
	srv        http.Server
	ln         net.Listener
	db         *sql.DB
	rdc        redis.UniversalClient
	services   Services
	ctx        context.Context
}

func NewHttpServer(ctx context.Context, listenPort uint16, pageSize int, db *sql.DB, rdc redis.UniversalClient, services Services) *httpServer {
	return &httpServer{
		listenPort: listenPort,
		pageSize:   pageSize,
		db:         db,
		rdc:        rdc,
		services:   services,
		ctx:        ctx,
	}
}

// Router builds the gin engine with every route mounted.
func (h *httpServer) Router() *gin.Engine {
	routerEngine := gin.New()

	// Swagger UI and API specs
	routerEngine.StaticFS("/swagger-apis", http.FS(swaggerfilesv2.FS))
	routerEngine.Static("/api-specs", "api_specs")

	routerEngine.Use(ginzap.Ginzap(zap.L(), time.RFC3339, true))
	routerEngine.Use(ginzap.RecoveryWithZap(zap.L(), true))

	routerEngine.GET("/health", h.health)

	api := routerEngine.Group("", middleware.Authenticate(h.services.Tokens))
	categoryhandler.New(h.services.Categories, h.pageSize).Register(api)
	auctionhandler.New(h.services.Auctions, h.pageSize).Register(api)
	feedbackhandler.New(h.services.Feedback, h.pageSize).Register(api)
	accounthandler.New(h.services.Accounts).Register(api)

	return routerEngine
}

func (h *httpServer) Start() error {
	var err error
	listenAddr := fmt.Sprintf(":%d", h.listenPort)
	h.ln, err = net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	h.srv = http.Server{
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	zap.L().Info("http_listening", zap.String("addr", listenAddr))
	err = h.srv.Serve(h.ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// health reports whether postgres and redis answer a ping.
func (h *httpServer) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{"database": "ok", "redis": "ok"}
	code := http.StatusOK
	if err := h.db.PingContext(ctx); err != nil {
		zap.L().Warn("health_db_down", zap.Error(err))
		status["database"] = "down"
		code = http.StatusServiceUnavailable
	}
	if err := redis_client.Ping(ctx, h.rdc); err != nil {
		zap.L().Warn("health_redis_down", zap.Error(err))
		status["redis"] = "down"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// Dispose gracefully shuts the HTTP server down.
// It waits up to 10 s for in‑flight requests to finish.
func (h *httpServer) Dispose() error {
	// The parent ctx is usually already cancelled by the time we get here.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(h.ctx), 10*time.Second)
	defer cancel()

	if err := h.srv.Shutdown(ctx); err != nil {
		zap.L().Error("http_dispose", zap.Error(err))
		return err
	}
	return nil
}
