// Package handlers registers the REST routes and maps domain errors to HTTP
// responses. Authentication is injected as a verifier capability; nothing in
// here reads secrets from the environment.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ensemble-arts/shop-backend/internal/auth"
	"github.com/ensemble-arts/shop-backend/internal/awsx"
	"github.com/ensemble-arts/shop-backend/internal/orders"
)

// HandlerConfig groups dependencies for the route handlers.
type HandlerConfig struct {
	DynamoDBClient   awsx.DynamoDBAPI
	SQSClient        awsx.SQSAPI
	CloudWatchClient awsx.CloudWatchAPI

	ProductsTable string
	OrdersTable   string
	MembersTable  string
	UsersTable    string
	QueueURL      string

	Issuer   auth.TokenIssuer
	Verifier auth.TokenVerifier
	Logger   *slog.Logger
}

func (cfg HandlerConfig) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.Default()
}

// writeOrderError maps the order service's error taxonomy onto HTTP. Client
// faults carry their own messages; anything else is a generic 500 so internal
// detail never leaks.
func writeOrderError(c *gin.Context, log *slog.Logger, err error) {
	var invalid *orders.InvalidRequestError
	var notFound *orders.NotFoundError
	var insufficient *orders.InsufficientStockError
	switch {
	case errors.As(err, &invalid), errors.As(err, &notFound), errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		log.Error("order request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func writeInternal(c *gin.Context, log *slog.Logger, err error) {
	log.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
