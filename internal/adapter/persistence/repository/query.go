package repository

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// listQuery turns an equality filter into a Query on the first indexed attribute that is
// set, or a Scan when none is. Remaining attributes become a FilterExpression.
type listQuery struct {
	table   string
	indexes map[string]string // attribute -> GSI name

	keyAttr  string
	keyValue string
	filters  []string
	names    map[string]string
	values   map[string]types.AttributeValue
}

func newListQuery(table string, indexes map[string]string) *listQuery {
	return &listQuery{
		table:   table,
		indexes: indexes,
		names:   map[string]string{},
		values:  map[string]types.AttributeValue{},
	}
}

func (q *listQuery) where(attr, value string) *listQuery {
	if value == "" {
		return q
	}
	if _, indexed := q.indexes[attr]; indexed && q.keyAttr == "" {
		q.keyAttr, q.keyValue = attr, value
	} else {
		q.filters = append(q.filters, "#"+attr+" = :"+attr)
	}
	q.names["#"+attr] = attr
	q.values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	return q
}

func (q *listQuery) filterExpression() *string {
	if len(q.filters) == 0 {
		return nil
	}
	return aws.String(strings.Join(q.filters, " AND "))
}

func (q *listQuery) nameMap() map[string]string {
	if len(q.names) == 0 {
		return nil
	}
	return q.names
}

func (q *listQuery) valueMap() map[string]types.AttributeValue {
	if len(q.values) == 0 {
		return nil
	}
	return q.values
}

func (q *listQuery) run(ctx context.Context, ddb *dynamodb.Client) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue

	if q.keyAttr != "" {
		p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
			TableName:                 aws.String(q.table),
			IndexName:                 aws.String(q.indexes[q.keyAttr]),
			KeyConditionExpression:    aws.String("#" + q.keyAttr + " = :" + q.keyAttr),
			FilterExpression:          q.filterExpression(),
			ExpressionAttributeNames:  q.nameMap(),
			ExpressionAttributeValues: q.valueMap(),
		})
		for p.HasMorePages() {
			out, err := p.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			items = append(items, out.Items...)
		}
		return items, nil
	}

	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(q.table),
		FilterExpression:          q.filterExpression(),
		ExpressionAttributeNames:  q.nameMap(),
		ExpressionAttributeValues: q.valueMap(),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
	}
	return items, nil
}
