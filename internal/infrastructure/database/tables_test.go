package database

import (
	"testing"

	"autocare_api/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTableInput(t *testing.T) {
	specs := tableSpecs(config.AWS{JobsTable: "jobs", OrdersTable: "orders", PaymentsTable: "payments"})
	require.Len(t, specs, 3)

	in := createTableInput(specs[0])
	assert.Equal(t, "jobs", aws.ToString(in.TableName))
	require.Len(t, in.GlobalSecondaryIndexes, 2)
	assert.Equal(t, "customer_id-index", aws.ToString(in.GlobalSecondaryIndexes[0].IndexName))
	assert.Equal(t, "technician_id-index", aws.ToString(in.GlobalSecondaryIndexes[1].IndexName))
	assert.Len(t, in.AttributeDefinitions, 3)

	orders := createTableInput(specs[1])
	assert.Len(t, orders.GlobalSecondaryIndexes, 3)
}
