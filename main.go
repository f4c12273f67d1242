package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"

	ginGzip "github.com/gin-contrib/gzip"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	_ = godotenv.Load()

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	logInfo("Starting daily word server in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	app := &App{
		IsProduction:   isProduction,
		IsDev:          !isProduction,
		AdminKey:       os.Getenv("ADMIN_API_KEY"),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		LimiterMap:     make(map[string]*rate.Limiter),
		StartTime:      time.Now(),
		now:            time.Now,
	}

	if dbPath := os.Getenv("DATABASE_PATH"); dbPath != "" {
		store, err := OpenStore(dbPath)
		if err != nil {
			logFatal("Failed to open word store: %v", err)
		}
		defer store.Close()
		app.Store = store
		logInfo("Word store opened at %s", dbPath)
	} else {
		logWarn("DATABASE_PATH not set, word store disabled; word and leaderboard routes will return 503")
	}

	router := newRouter(app)
	startServer(router)
}

// newRouter wires middleware and routes onto a fresh engine.
func newRouter(app *App) *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	router.Use(requestIDMiddleware())
	router.Use(func(c *gin.Context) {
		applyCacheHeaders(c, app.IsProduction)
	})

	router.POST(RouteCheck, app.rateLimitMiddleware(), app.checkHandler)
	router.GET(RouteDailyWord, app.dailyWordHandler)
	router.GET(RouteLeaderboard, app.leaderboardHandler)
	router.POST(RouteLeaderboard, app.rateLimitMiddleware(), app.recordResultHandler)
	router.GET(RouteLeaderboardCumulative, app.cumulativeLeaderboardHandler)
	router.GET(RouteAdminReset, app.adminResetHandler)
	router.POST(RouteDevResetDaily, app.devResetDailyHandler)
	router.POST(RouteDevSeedDaily, app.devSeedDailyHandler)
	router.GET(RouteHealthz, app.healthzHandler)

	return router
}

// applyCacheHeaders marks API responses uncacheable, except past-date
// word lookups in production, which never change once served.
func applyCacheHeaders(c *gin.Context, production bool) {
	if production && c.Request.Method == http.MethodGet && strings.HasSuffix(c.Request.URL.Path, "/word") {
		cachecontrol.New(cachecontrol.Config{
			Public: true,
			MaxAge: cachecontrol.Duration(getEnvDuration("WORD_CACHE_AGE", time.Hour)),
		})(c)
		return
	}
	cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	})(c)
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
