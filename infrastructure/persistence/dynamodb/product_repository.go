package dynamodb

import (
	"context"
	"fmt"

	"products-backend/application/ports"
	"products-backend/domain/product"
	apperrors "products-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ProductRepository stores product records in a single DynamoDB table keyed
// by productId and category.
type ProductRepository struct {
	client    API
	tableName string
	logger    *zap.Logger
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a new DynamoDB product repository
func NewProductRepository(client API, tableName string, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Put writes the full record, replacing any record with the same key.
func (r *ProductRepository) Put(ctx context.Context, p *product.Product) error {
	item, err := marshalAttributes(p.Item())
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		r.logStoreError("PutItem", p.Key(), err)
		return apperrors.NewDatabaseError("PutItem", err)
	}

	return nil
}

// Get reads a record by composite key. A missing record yields nil.
func (r *ProductRepository) Get(ctx context.Context, key product.Key) (map[string]any, error) {
	k, err := marshalAttributes(key.Attributes())
	if err != nil {
		return nil, err
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       k,
	})
	if err != nil {
		r.logStoreError("GetItem", key, err)
		return nil, apperrors.NewDatabaseError("GetItem", err)
	}

	return unmarshalAttributes(out.Item)
}

// Update applies the update set and returns the new values of the updated
// attributes.
func (r *ProductRepository) Update(ctx context.Context, key product.Key, set product.UpdateSet) (map[string]any, error) {
	k, err := marshalAttributes(key.Attributes())
	if err != nil {
		return nil, err
	}
	values, err := marshalAttributes(set.Values())
	if err != nil {
		return nil, err
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       k,
		UpdateExpression:          aws.String(set.Expression()),
		ExpressionAttributeNames:  set.Names(),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		r.logStoreError("UpdateItem", key, err)
		return nil, apperrors.NewDatabaseError("UpdateItem", err)
	}

	return unmarshalAttributes(out.Attributes)
}

// Delete removes the record addressed by key and returns its prior
// attributes, or nil when nothing was deleted.
func (r *ProductRepository) Delete(ctx context.Context, key product.Key) (map[string]any, error) {
	k, err := marshalAttributes(key.Attributes())
	if err != nil {
		return nil, err
	}

	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          k,
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		r.logStoreError("DeleteItem", key, err)
		return nil, apperrors.NewDatabaseError("DeleteItem", err)
	}

	return unmarshalAttributes(out.Attributes)
}

func (r *ProductRepository) logStoreError(operation string, key product.Key, err error) {
	r.logger.Error(fmt.Sprintf("DynamoDB %s failed", operation),
		zap.Error(err),
		zap.String("table", r.tableName),
		zap.String("key", key.String()),
		zap.String("errorCode", apperrors.StoreErrorCode(err)),
	)
}
