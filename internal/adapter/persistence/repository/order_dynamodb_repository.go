package repository

import (
	"context"
	"log"
	"sort"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersSupplierIDIndex  = "supplier_id-index"
	ordersRequesterIDIndex = "requester_id-index"
	ordersJobIDIndex       = "job_id-index"
)

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: supplier_id-index (PK: supplier_id)
//   - GSI: requester_id-index (PK: requester_id)
//   - GSI: job_id-index (PK: job_id), sparse, only wholesale orders raised from a job
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, order entities.Order) (entities.Order, error) {
	order = order.Clone()
	order.Version = 1
	av, err := marshalDocument(order)
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var order entities.Order
	if err := unmarshalDocument(out.Item, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, id string, mutate interfaces.OrderMutator) (entities.Order, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return entities.Order{}, err
		}
		if current.ID == "" {
			return entities.Order{}, nil
		}

		next, err := mutate(current.Clone())
		if err != nil {
			return entities.Order{}, err
		}
		next.ID = current.ID
		next.Version = current.Version + 1

		av, err := marshalDocument(next)
		if err != nil {
			return entities.Order{}, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("#version = :version"),
			ExpressionAttributeNames: map[string]string{
				"#version": "version",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":version": versionValue(current.Version),
			},
		})
		if err == nil {
			return next, nil
		}
		if !isConditionalCheckFailed(err) {
			return entities.Order{}, err
		}
		log.Printf("[order][repository] version conflict order_id=%s version=%d attempt=%d", id, current.Version, attempt)
	}
	return entities.Order{}, interfaces.ErrConcurrentUpdate
}

func (r *OrderDynamoRepository) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	q := newListQuery(r.tableName, map[string]string{
		"supplier_id":  ordersSupplierIDIndex,
		"requester_id": ordersRequesterIDIndex,
		"job_id":       ordersJobIDIndex,
	}).
		where("supplier_id", filter.SupplierID).
		where("requester_id", filter.RequesterID).
		where("job_id", filter.JobID).
		where("type", string(filter.Type)).
		where("status", string(filter.Status))

	raw, err := q.run(ctx, r.ddb)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(raw))
	for _, item := range raw {
		var order entities.Order
		if err := unmarshalDocument(item, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	if filter.Limit > 0 && len(orders) > filter.Limit {
		orders = orders[:filter.Limit]
	}
	return orders, nil
}
