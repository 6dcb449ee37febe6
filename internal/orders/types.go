package orders

import "time"

// StatusPending is the only status this service ever writes. Later
// transitions belong to the external fulfillment pipeline consuming the
// order-placed events.
const StatusPending = "PENDING"

// ItemRequest is a proposed (productId, quantity) pair from a client cart.
// Prices are never accepted from clients.
type ItemRequest struct {
	ProductID string
	Quantity  int
}

// OrderItem is the immutable per-line snapshot persisted with an order.
type OrderItem struct {
	ProductID       string  `json:"productId" dynamodbav:"product_id"`
	Name            string  `json:"name" dynamodbav:"name"`
	Quantity        int     `json:"quantity" dynamodbav:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase" dynamodbav:"price_at_purchase"`
}

// ShippingAddress is where the order ships. Name and Address are required;
// Phone is optional.
type ShippingAddress struct {
	Name    string `json:"name" dynamodbav:"name"`
	Address string `json:"address" dynamodbav:"address"`
	Phone   string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
}

// Order represents the item stored in the orders table. Immutable once
// created except for status transitions performed elsewhere.
type Order struct {
	OrderID         string          `json:"id" dynamodbav:"order_id"`    // PK
	UserID          string          `json:"userId" dynamodbav:"user_id"` // GSI hash
	Status          string          `json:"status" dynamodbav:"status"`
	TotalAmount     float64         `json:"totalAmount" dynamodbav:"total_amount"`
	Items           []OrderItem     `json:"items" dynamodbav:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress" dynamodbav:"shipping_address"`
	CreatedAt       time.Time       `json:"createdAt" dynamodbav:"created_at"` // GSI range
}
