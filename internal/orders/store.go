package orders

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ensemble-arts/shop-backend/internal/awsx"
)

// DefaultUserIndex is the GSI (user_id hash, created_at range) used to list a
// user's orders newest-first.
const DefaultUserIndex = "user_id-created_at-index"

// Store encapsulates operations on the orders table. Stock decrements are
// issued from here because they must commit in the same transaction as the
// order Put.
type Store struct {
	client        awsx.DynamoDBAPI
	tableName     string
	userIndex     string
	productsTable string
}

// NewStore creates a new orders Store. productsTable is where the conditional
// stock decrements are addressed.
func NewStore(client awsx.DynamoDBAPI, tableName, productsTable string) *Store {
	return &Store{
		client:        client,
		tableName:     tableName,
		userIndex:     DefaultUserIndex,
		productsTable: productsTable,
	}
}

// CreateWithStockDecrement atomically persists the order and decrements stock
// for every line in a single TransactWriteItems call:
//   - Put order, guarded by attribute_not_exists(order_id)
//   - per line: Update product SET stock = stock - :q, guarded by
//     attribute_exists(product_id) AND stock >= :q
//
// The stock condition re-evaluates at commit time, so a concurrent order that
// took the last unit between validation and commit cancels this transaction
// instead of overselling. Either everything commits or nothing does.
func (s *Store) CreateWithStockDecrement(ctx context.Context, order Order) error {
	orderMap, err := attributevalue.MarshalMap(order)
	if err != nil {
		return fmt.Errorf("marshal order item: %w", err)
	}

	transactItems := make([]types.TransactWriteItem, 0, len(order.Items)+1)
	transactItems = append(transactItems, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           &s.tableName,
			Item:                orderMap,
			ConditionExpression: awsString("attribute_not_exists(order_id)"),
		},
	})

	for _, it := range order.Items {
		transactItems = append(transactItems, types.TransactWriteItem{
			Update: &types.Update{
				TableName: &s.productsTable,
				Key: map[string]types.AttributeValue{
					"product_id": &types.AttributeValueMemberS{Value: it.ProductID},
				},
				UpdateExpression:    awsString("SET stock = stock - :q"),
				ConditionExpression: awsString("attribute_exists(product_id) AND stock >= :q"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":q": &types.AttributeValueMemberN{Value: strconv.Itoa(it.Quantity)},
				},
			},
		})
	}

	_, err = s.client.TransactWriteItems(ctx, &dyn.TransactWriteItemsInput{
		TransactItems: transactItems,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for i, reason := range tce.CancellationReasons {
				if reason.Code == nil || *reason.Code != "ConditionalCheckFailed" {
					continue
				}
				if i == 0 {
					// order_id collision; uuid makes this effectively a bug
					return fmt.Errorf("order id already exists: %w", err)
				}
				it := order.Items[i-1]
				return &StockConflictError{ProductID: it.ProductID, Name: it.Name}
			}
			return fmt.Errorf("transaction canceled: %w", err)
		}
		return fmt.Errorf("transact write: %w", err)
	}
	return nil
}

// ListByUser returns all orders owned by userID, most recent first.
func (s *Store) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	var startKey map[string]types.AttributeValue

	for {
		resp, err := s.client.Query(ctx, &dyn.QueryInput{
			TableName:              &s.tableName,
			IndexName:              &s.userIndex,
			KeyConditionExpression: awsString("user_id = :uid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid": &types.AttributeValueMemberS{Value: userID},
			},
			ScanIndexForward:  awsBool(false),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query orders: %w", err)
		}
		var page []Order
		if err := attributevalue.UnmarshalListOfMaps(resp.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal orders: %w", err)
		}
		out = append(out, page...)
		if resp.LastEvaluatedKey == nil {
			break
		}
		startKey = resp.LastEvaluatedKey
	}
	return out, nil
}

func awsString(s string) *string { return &s }
func awsBool(b bool) *bool       { return &b }
