package orders

import "fmt"

// InvalidRequestError covers malformed input: empty item lists, non-positive
// quantities, incomplete shipping addresses.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string { return e.Reason }

// NotFoundError means a referenced product does not exist.
type NotFoundError struct {
	ProductID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Product %s not found", e.ProductID)
}

// InsufficientStockError means the requested quantity exceeds available stock,
// detected either at validation or at commit time.
type InsufficientStockError struct {
	ProductID string
	Name      string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for %s. Available: %d", e.Name, e.Available)
}

// StockConflictError is the store-level signal that the commit transaction
// was cancelled by a stock condition. The service re-reads the product and
// reports it as InsufficientStockError with the current availability.
type StockConflictError struct {
	ProductID string
	Name      string
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("stock condition failed for product %s", e.ProductID)
}
