package catalog

import "time"

// Product is a merchandise item. Stock is decremented only through the order
// commit transaction; nothing else writes it after seeding.
type Product struct {
	ProductID   string    `json:"id" dynamodbav:"product_id"` // PK
	Name        string    `json:"name" dynamodbav:"name"`
	Description string    `json:"description" dynamodbav:"description"`
	Price       float64   `json:"price" dynamodbav:"price"` // unit price, non-negative
	ImageURL    string    `json:"imageUrl" dynamodbav:"image_url,omitempty"`
	Stock       int       `json:"stock" dynamodbav:"stock"` // non-negative
	CreatedAt   time.Time `json:"createdAt" dynamodbav:"created_at"`
}
