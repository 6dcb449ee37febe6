// Package members serves the public member directory.
package members

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/ensemble-arts/shop-backend/internal/awsx"
)

// Store encapsulates operations on the members table.
type Store struct {
	client    awsx.DynamoDBAPI
	tableName string
}

// NewStore creates a new members Store.
func NewStore(client awsx.DynamoDBAPI, tableName string) *Store {
	return &Store{client: client, tableName: tableName}
}

// List returns all member profiles sorted by club, then role.
func (s *Store) List(ctx context.Context) ([]MemberProfile, error) {
	var profiles []MemberProfile
	var startKey map[string]types.AttributeValue

	for {
		out, err := s.client.Scan(ctx, &dyn.ScanInput{
			TableName:         &s.tableName,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan members: %w", err)
		}
		var page []MemberProfile
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal members: %w", err)
		}
		profiles = append(profiles, page...)
		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].Club != profiles[j].Club {
			return profiles[i].Club < profiles[j].Club
		}
		return profiles[i].Role < profiles[j].Role
	})
	return profiles, nil
}

// Put writes a member profile. Used by the seeder only.
func (s *Store) Put(ctx context.Context, m MemberProfile) error {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal member: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put member: %w", err)
	}
	return nil
}
