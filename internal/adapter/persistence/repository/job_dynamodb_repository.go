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
	defaultJobsTableName = "jobs"
	jobsCustomerIDIndex  = "customer_id-index"
	jobsTechnicianIndex  = "technician_id-index"
)

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: technician_id-index (PK: technician_id), sparse until a technician accepts
//
// Writes are conditional on the stored version, so two updates racing on one job never
// both land.
type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	job = job.Clone()
	job.Version = 1
	av, err := marshalDocument(job)
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return job, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var job entities.Job
	if err := unmarshalDocument(out.Item, &job); err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

func (r *JobDynamoRepository) Update(ctx context.Context, id string, mutate interfaces.JobMutator) (entities.Job, error) {
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return entities.Job{}, err
		}
		if current.ID == "" {
			return entities.Job{}, nil
		}

		next, err := mutate(current.Clone())
		if err != nil {
			return entities.Job{}, err
		}
		next.ID = current.ID
		next.Version = current.Version + 1

		av, err := marshalDocument(next)
		if err != nil {
			return entities.Job{}, err
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
			return entities.Job{}, err
		}
		log.Printf("[job][repository] version conflict job_id=%s version=%d attempt=%d", id, current.Version, attempt)
	}
	return entities.Job{}, interfaces.ErrConcurrentUpdate
}

func (r *JobDynamoRepository) List(ctx context.Context, filter interfaces.JobFilter) ([]entities.Job, error) {
	q := newListQuery(r.tableName, map[string]string{
		"customer_id":   jobsCustomerIDIndex,
		"technician_id": jobsTechnicianIndex,
	}).
		where("customer_id", filter.CustomerID).
		where("technician_id", filter.TechnicianID).
		where("status", string(filter.Status))

	raw, err := q.run(ctx, r.ddb)
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(raw))
	for _, item := range raw {
		var job entities.Job
		if err := unmarshalDocument(item, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	if filter.Limit > 0 && len(jobs) > filter.Limit {
		jobs = jobs[:filter.Limit]
	}
	return jobs, nil
}
