package orders

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is a small in-memory stand-in for DynamoDB covering exactly the
// calls the order flow makes. Conditions are evaluated for real (two-phase:
// check everything, then apply) so the transactional tests exercise the same
// all-or-nothing behavior the service relies on.
// NOTE: intentionally minimal and not production-grade.
type fakeDynamo struct {
	mu            sync.Mutex
	keys          map[string]string // table -> pk attribute name
	tables        map[string]map[string]map[string]types.AttributeValue
	transactCalls int
	failTransact  error // injected infrastructure fault
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{
		keys:   map[string]string{},
		tables: map[string]map[string]map[string]types.AttributeValue{},
	}
}

func (f *fakeDynamo) addTable(name, keyAttr string) {
	f.keys[name] = keyAttr
	f.tables[name] = map[string]map[string]types.AttributeValue{}
}

func (f *fakeDynamo) seed(table string, item map[string]types.AttributeValue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := item[f.keys[table]].(*types.AttributeValueMemberS).Value
	f.tables[table][k] = item
}

func (f *fakeDynamo) stockOf(table, productID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.tables[table][productID]
	if !ok {
		return -1
	}
	n, _ := strconv.Atoi(item["stock"].(*types.AttributeValueMemberN).Value)
	return n
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := *params.TableName
	keyAttr, ok := f.keys[table]
	if !ok {
		return nil, errors.New("unknown table " + table)
	}
	k := params.Key[keyAttr].(*types.AttributeValueMemberS).Value
	item, ok := f.tables[table][k]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := *params.TableName
	keyAttr, ok := f.keys[table]
	if !ok {
		return nil, errors.New("unknown table " + table)
	}
	k := params.Item[keyAttr].(*types.AttributeValueMemberS).Value
	if params.ConditionExpression != nil && *params.ConditionExpression == "attribute_not_exists("+keyAttr+")" {
		if _, exists := f.tables[table][k]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.tables[table][k] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := *params.TableName
	items := make([]map[string]types.AttributeValue, 0, len(f.tables[table]))
	for _, it := range f.tables[table] {
		items = append(items, it)
	}
	return &dyn.ScanOutput{Items: items}, nil
}

// Query supports only the user_id = :uid key condition against the orders
// GSI, newest first when ScanIndexForward is false.
func (f *fakeDynamo) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	table := *params.TableName
	uid := params.ExpressionAttributeValues[":uid"].(*types.AttributeValueMemberS).Value

	var items []map[string]types.AttributeValue
	for _, it := range f.tables[table] {
		if u, ok := it["user_id"].(*types.AttributeValueMemberS); ok && u.Value == uid {
			items = append(items, it)
		}
	}
	desc := params.ScanIndexForward != nil && !*params.ScanIndexForward
	sort.Slice(items, func(i, j int) bool {
		a := items[i]["created_at"].(*types.AttributeValueMemberS).Value
		b := items[j]["created_at"].(*types.AttributeValueMemberS).Value
		if desc {
			return a > b
		}
		return a < b
	})
	return &dyn.QueryOutput{Items: items}, nil
}

func (f *fakeDynamo) TransactWriteItems(ctx context.Context, params *dyn.TransactWriteItemsInput, optFns ...func(*dyn.Options)) (*dyn.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transactCalls++

	if f.failTransact != nil {
		return nil, f.failTransact
	}

	// Phase 1: evaluate every condition; collect cancellation reasons.
	reasons := make([]types.CancellationReason, len(params.TransactItems))
	failed := false
	for i, item := range params.TransactItems {
		switch {
		case item.Put != nil:
			table := *item.Put.TableName
			keyAttr := f.keys[table]
			k := item.Put.Item[keyAttr].(*types.AttributeValueMemberS).Value
			if item.Put.ConditionExpression != nil && *item.Put.ConditionExpression == "attribute_not_exists("+keyAttr+")" {
				if _, exists := f.tables[table][k]; exists {
					reasons[i] = types.CancellationReason{Code: strPtr("ConditionalCheckFailed")}
					failed = true
					continue
				}
			}
			reasons[i] = types.CancellationReason{Code: strPtr("None")}
		case item.Update != nil:
			table := *item.Update.TableName
			keyAttr := f.keys[table]
			k := item.Update.Key[keyAttr].(*types.AttributeValueMemberS).Value
			existing, exists := f.tables[table][k]
			q, _ := strconv.Atoi(item.Update.ExpressionAttributeValues[":q"].(*types.AttributeValueMemberN).Value)
			if !exists {
				reasons[i] = types.CancellationReason{Code: strPtr("ConditionalCheckFailed")}
				failed = true
				continue
			}
			stock, _ := strconv.Atoi(existing["stock"].(*types.AttributeValueMemberN).Value)
			if stock < q {
				reasons[i] = types.CancellationReason{Code: strPtr("ConditionalCheckFailed")}
				failed = true
				continue
			}
			reasons[i] = types.CancellationReason{Code: strPtr("None")}
		default:
			return nil, errors.New("unsupported transact item")
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{
			Message:             strPtr("Transaction cancelled, please refer cancellation reasons for specific reasons"),
			CancellationReasons: reasons,
		}
	}

	// Phase 2: apply everything.
	for _, item := range params.TransactItems {
		switch {
		case item.Put != nil:
			table := *item.Put.TableName
			k := item.Put.Item[f.keys[table]].(*types.AttributeValueMemberS).Value
			f.tables[table][k] = item.Put.Item
		case item.Update != nil:
			table := *item.Update.TableName
			k := item.Update.Key[f.keys[table]].(*types.AttributeValueMemberS).Value
			existing := f.tables[table][k]
			q, _ := strconv.Atoi(item.Update.ExpressionAttributeValues[":q"].(*types.AttributeValueMemberN).Value)
			stock, _ := strconv.Atoi(existing["stock"].(*types.AttributeValueMemberN).Value)
			existing["stock"] = &types.AttributeValueMemberN{Value: strconv.Itoa(stock - q)}
		}
	}
	return &dyn.TransactWriteItemsOutput{}, nil
}

func strPtr(s string) *string { return &s }
