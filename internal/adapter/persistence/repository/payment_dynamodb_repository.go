package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"autocare_api/internal/domain/entities"
	"autocare_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsJobIDIndex       = "job_id-index"
)

type paymentItem struct {
	ID                 string         `dynamodbav:"id"`
	JobID              string         `dynamodbav:"job_id"`
	Amount             string         `dynamodbav:"amount"`
	Method             string         `dynamodbav:"method"`
	Date               string         `dynamodbav:"date"`
	Status             string         `dynamodbav:"status"`
	ProviderPayload    map[string]any `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string         `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists the payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_id-index (PK: job_id)
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByJobID(ctx context.Context, jobID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsJobIDIndex),
		KeyConditionExpression: aws.String("job_id = :jid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jid": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		JobID:              p.JobID,
		Amount:             strconv.FormatFloat(p.Amount, 'f', -1, 64),
		Method:             string(p.Method),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	p := entities.Payment{
		ID:              it.ID,
		JobID:           it.JobID,
		Amount:          amount,
		Method:          entities.PaymentMethod(it.Method),
		Date:            dt,
		Status:          entities.PaymentStatus(it.Status),
		ProviderPayload: it.ProviderPayload,
	}
	if it.ProviderPayloadRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderPayloadRaw)
	}
	return p
}
