package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/ensemble-arts/shop-backend/internal/auth"
	"github.com/ensemble-arts/shop-backend/internal/awsx"
	"github.com/ensemble-arts/shop-backend/internal/handlers"
	"github.com/ensemble-arts/shop-backend/pkg/config"
	"github.com/ensemble-arts/shop-backend/pkg/logger"
	"github.com/ensemble-arts/shop-backend/pkg/shutdown"
)

const tokenTTL = 24 * time.Hour

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterAuthRoutes(r, cfg)
	handlers.RegisterShopRoutes(r, cfg)
	handlers.RegisterPublicRoutes(r, cfg)

	return r
}

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "shop-backend", Env: cfg.AppEnv, Level: cfg.LogLevel})

	if cfg.JWTSecret == "" {
		stdlog.Fatalf("JWT_SECRET is required")
	}

	clients, err := awsx.NewClients(context.Background())
	if err != nil {
		stdlog.Fatalf("failed to init aws clients: %v", err)
	}

	authority := auth.NewJWTAuthority([]byte(cfg.JWTSecret), tokenTTL)

	hcfg := handlers.HandlerConfig{
		DynamoDBClient:   clients.DynamoDB,
		SQSClient:        clients.SQS,
		CloudWatchClient: clients.CloudWatch,
		ProductsTable:    cfg.ProductsTable,
		OrdersTable:      cfg.OrdersTable,
		MembersTable:     cfg.MembersTable,
		UsersTable:       cfg.UsersTable,
		QueueURL:         cfg.OrdersQueue,
		Issuer:           authority,
		Verifier:         authority,
		Logger:           log,
	}

	r := setupRouter(hcfg)

	// run a plain HTTP server for local development, lambda otherwise
	if cfg.RunLocal {
		ctx, cancel := shutdown.WithSignals(context.Background())
		defer cancel()

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
			Handler: r,
		}
		go func() {
			<-ctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
			defer done()
			_ = srv.Shutdown(shutdownCtx)
		}()

		log.Info("running local server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			stdlog.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
