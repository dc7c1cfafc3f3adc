package database

import (
	"context"
	"errors"
	"log"
	"time"

	"autocare_api/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 2 * time.Minute

type tableSpec struct {
	name    string
	indexes []string // each GSI is "<attr>-index" keyed on attr
}

func tableSpecs(cfg config.AWS) []tableSpec {
	return []tableSpec{
		{name: cfg.JobsTable, indexes: []string{"customer_id", "technician_id"}},
		{name: cfg.OrdersTable, indexes: []string{"supplier_id", "requester_id", "job_id"}},
		{name: cfg.PaymentsTable, indexes: []string{"job_id"}},
	}
}

// CreateTables creates the jobs, orders and payments tables with their GSIs. Tables that
// already exist are left alone.
func CreateTables(ctx context.Context, ddb *dynamodb.Client, cfg config.AWS) error {
	for _, spec := range tableSpecs(cfg) {
		input := createTableInput(spec)
		_, err := ddb.CreateTable(ctx, input)
		var inUse *types.ResourceInUseException
		switch {
		case errors.As(err, &inUse):
			log.Printf("[migrate][dynamodb] table exists table=%s", spec.name)
			continue
		case err != nil:
			return err
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.name)}, tableWaitTimeout); err != nil {
			return err
		}
		log.Printf("[migrate][dynamodb] table created table=%s gsi=%d", spec.name, len(spec.indexes))
	}
	return nil
}

func createTableInput(spec tableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS}}
	gsis := make([]types.GlobalSecondaryIndex, 0, len(spec.indexes))
	for _, attr := range spec.indexes {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(attr + "-index"),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return &dynamodb.CreateTableInput{
		TableName:              aws.String(spec.name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
