// Package auth owns user accounts and bearer-token issue/verify. The
// verifier is an explicit capability handed to the HTTP boundary, never
// ambient process state.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ensemble-arts/shop-backend/internal/awsx"
)

// bcryptCost matches the original site's hashing cost.
const bcryptCost = 12

// ErrEmailTaken is returned when registration races or repeats an email.
var ErrEmailTaken = errors.New("email already registered")

// ErrBadCredentials is returned for unknown email or wrong password; callers
// must not be able to tell which.
var ErrBadCredentials = errors.New("invalid email or password")

// Store encapsulates operations on the users table.
type Store struct {
	client    awsx.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new users Store.
func NewStore(client awsx.DynamoDBAPI, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		nowFunc:   time.Now,
	}
}

// Register creates a user with a bcrypt-hashed password. The put is guarded
// by attribute_not_exists(email), so two concurrent signups for the same
// email cannot both succeed.
func (s *Store) Register(ctx context.Context, name, email, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		Email:        email,
		UserID:       uuid.NewString(),
		Name:         name,
		PasswordHash: string(hash),
		Role:         RoleUser,
		CreatedAt:    s.nowFunc().UTC(),
	}

	item, err := attributevalue.MarshalMap(u)
	if err != nil {
		return nil, fmt.Errorf("marshal user: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: awsString("attribute_not_exists(email)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, ErrEmailTaken
		}
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "ConditionalCheckFailedException" {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("put user: %w", err)
	}
	return &u, nil
}

// PutUser writes a user record unconditionally, hashing the password. Used by
// the seeder only.
func (s *Store) PutUser(ctx context.Context, name, email, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u := User{
		Email:        email,
		UserID:       uuid.NewString(),
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.nowFunc().UTC(),
	}
	item, err := attributevalue.MarshalMap(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	return nil
}

// Authenticate checks credentials and returns the user on success.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.getByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}

func (s *Store) getByEmail(ctx context.Context, email string) (*User, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var u User
	if err := attributevalue.UnmarshalMap(out.Item, &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}

func awsString(s string) *string { return &s }
