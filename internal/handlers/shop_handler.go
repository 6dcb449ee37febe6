package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ensemble-arts/shop-backend/internal/awsx"
	"github.com/ensemble-arts/shop-backend/internal/catalog"
	"github.com/ensemble-arts/shop-backend/internal/orders"
	"github.com/ensemble-arts/shop-backend/internal/validation"
)

// RegisterShopRoutes registers the product listing and order routes.
func RegisterShopRoutes(r *gin.Engine, cfg HandlerConfig) {
	log := cfg.logger()
	v := validation.New()

	products := catalog.NewStore(cfg.DynamoDBClient, cfg.ProductsTable)
	store := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable, cfg.ProductsTable)

	var publisher orders.EventPublisher
	if cfg.SQSClient != nil && cfg.QueueURL != "" {
		publisher = awsx.NewPublisher(cfg.SQSClient, cfg.QueueURL)
	}
	var metrics orders.MetricsRecorder
	if cfg.CloudWatchClient != nil {
		metrics = awsx.NewMetrics(cfg.CloudWatchClient)
	}

	svc := orders.NewService(products, store, publisher, metrics, log)

	r.GET("/api/shop/products", func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			writeInternal(c, log, err)
			return
		}
		if list == nil {
			list = []catalog.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	})

	authed := r.Group("/api/shop", RequireAuth(cfg.Verifier))

	authed.POST("/orders", func(c *gin.Context) {
		var req validation.PlaceOrderRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		id, ok := identityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		items := make([]orders.ItemRequest, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, orders.ItemRequest{ProductID: it.ProductID, Quantity: it.Quantity})
		}
		addr := orders.ShippingAddress{
			Name:    req.ShippingAddress.Name,
			Address: req.ShippingAddress.Address,
			Phone:   req.ShippingAddress.Phone,
		}

		order, err := svc.PlaceOrder(c.Request.Context(), id.UserID, items, addr)
		if err != nil {
			writeOrderError(c, log, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created successfully",
			"order":   order,
		})
	})

	authed.GET("/orders", func(c *gin.Context) {
		id, ok := identityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		list, err := svc.ListOrders(c.Request.Context(), id.UserID)
		if err != nil {
			writeInternal(c, log, err)
			return
		}
		if list == nil {
			list = []orders.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	})
}
