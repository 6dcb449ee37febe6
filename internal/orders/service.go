package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ensemble-arts/shop-backend/internal/awsx"
	"github.com/ensemble-arts/shop-backend/internal/catalog"
)

// ProductReader is the slice of the catalog the service needs for pricing and
// stock validation.
type ProductReader interface {
	Get(ctx context.Context, productID string) (*catalog.Product, error)
}

// OrderStore persists orders atomically with their stock decrements.
type OrderStore interface {
	CreateWithStockDecrement(ctx context.Context, order Order) error
	ListByUser(ctx context.Context, userID string) ([]Order, error)
}

// EventPublisher hands committed orders to the external fulfillment pipeline.
type EventPublisher interface {
	SendOrderPlaced(ctx context.Context, ev awsx.OrderPlacedEvent) error
}

// MetricsRecorder counts order outcomes.
type MetricsRecorder interface {
	OrderPlaced(ctx context.Context, totalAmount float64) error
	OrderRejected(ctx context.Context, reason string) error
}

// Service is the sole authority converting a proposed cart into a durable,
// stock-consistent order. Client-supplied prices are ignored everywhere;
// every line is priced from the Product record.
type Service struct {
	products  ProductReader
	store     OrderStore
	publisher EventPublisher  // optional
	metrics   MetricsRecorder // optional
	log       *slog.Logger
	newID     func() string
	nowFunc   func() time.Time
}

// NewService wires the order service. publisher and metrics may be nil.
func NewService(products ProductReader, store OrderStore, publisher EventPublisher, metrics MetricsRecorder, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		products:  products,
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		log:       log,
		newID:     uuid.NewString,
		nowFunc:   time.Now,
	}
}

// PlaceOrder validates the proposed items against authoritative product
// records, computes the trusted total, and commits the order together with
// its stock decrements as one atomic unit. Preconditions fail fast in order:
// non-empty items, complete address, every product exists, every product has
// sufficient stock. Any failure aborts the whole order with no mutation.
func (s *Service) PlaceOrder(ctx context.Context, userID string, items []ItemRequest, addr ShippingAddress) (*Order, error) {
	if len(items) == 0 {
		return nil, s.reject(ctx, "invalid_request", &InvalidRequestError{Reason: "Items are required"})
	}
	if addr.Name == "" || addr.Address == "" {
		return nil, s.reject(ctx, "invalid_request", &InvalidRequestError{Reason: "Shipping address is required"})
	}

	// Merge duplicate product ids: the cart engine never produces them, but
	// the server does not trust that, and DynamoDB rejects two transact ops
	// against the same item.
	merged := make([]ItemRequest, 0, len(items))
	index := map[string]int{}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, s.reject(ctx, "invalid_request", &InvalidRequestError{
				Reason: fmt.Sprintf("Quantity for product %s must be positive", it.ProductID),
			})
		}
		if i, ok := index[it.ProductID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, it)
	}

	// Validate every line and price it from the product record before any
	// mutation. A single bad line aborts the entire order.
	var totalCents int64
	lines := make([]OrderItem, 0, len(merged))
	for _, it := range merged {
		p, err := s.products.Get(ctx, it.ProductID)
		if err != nil {
			return nil, s.internal(ctx, fmt.Errorf("read product %s: %w", it.ProductID, err))
		}
		if p == nil {
			return nil, s.reject(ctx, "not_found", &NotFoundError{ProductID: it.ProductID})
		}
		if p.Stock < it.Quantity {
			return nil, s.reject(ctx, "insufficient_stock", &InsufficientStockError{
				ProductID: p.ProductID,
				Name:      p.Name,
				Available: p.Stock,
			})
		}
		totalCents += cents(p.Price) * int64(it.Quantity)
		lines = append(lines, OrderItem{
			ProductID:       p.ProductID,
			Name:            p.Name,
			Quantity:        it.Quantity,
			PriceAtPurchase: p.Price,
		})
	}

	order := Order{
		OrderID:         s.newID(),
		UserID:          userID,
		Status:          StatusPending,
		TotalAmount:     float64(totalCents) / 100,
		Items:           lines,
		ShippingAddress: addr,
		CreatedAt:       s.nowFunc().UTC(),
	}

	if err := s.store.CreateWithStockDecrement(ctx, order); err != nil {
		var conflict *StockConflictError
		if errors.As(err, &conflict) {
			// A concurrent order won the race between validation and commit.
			// Re-read so the caller sees current availability.
			available := 0
			if p, rerr := s.products.Get(ctx, conflict.ProductID); rerr == nil && p != nil {
				available = p.Stock
			}
			return nil, s.reject(ctx, "insufficient_stock", &InsufficientStockError{
				ProductID: conflict.ProductID,
				Name:      conflict.Name,
				Available: available,
			})
		}
		return nil, s.internal(ctx, fmt.Errorf("commit order: %w", err))
	}

	// The order is durable from here. Event and metric emission must not
	// fail it.
	if s.publisher != nil {
		ev := awsx.OrderPlacedEvent{
			OrderID:     order.OrderID,
			UserID:      order.UserID,
			TotalAmount: order.TotalAmount,
			PlacedAt:    order.CreatedAt,
		}
		if err := s.publisher.SendOrderPlaced(ctx, ev); err != nil {
			s.log.Warn("order placed event not published", "order_id", order.OrderID, "error", err)
		}
	}
	if s.metrics != nil {
		if err := s.metrics.OrderPlaced(ctx, order.TotalAmount); err != nil {
			s.log.Warn("order metrics not recorded", "order_id", order.OrderID, "error", err)
		}
	}

	return &order, nil
}

// ListOrders returns all orders owned by userID, most recent first.
func (s *Service) ListOrders(ctx context.Context, userID string) ([]Order, error) {
	out, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

func (s *Service) reject(ctx context.Context, reason string, err error) error {
	if s.metrics != nil {
		if merr := s.metrics.OrderRejected(ctx, reason); merr != nil {
			s.log.Warn("rejection metric not recorded", "reason", reason, "error", merr)
		}
	}
	return err
}

func (s *Service) internal(ctx context.Context, err error) error {
	s.log.Error("order placement failed", "error", err)
	if s.metrics != nil {
		if merr := s.metrics.OrderRejected(ctx, "internal"); merr != nil {
			s.log.Warn("rejection metric not recorded", "reason", "internal", "error", merr)
		}
	}
	return err
}

func cents(price float64) int64 {
	return int64(math.Round(price * 100))
}
