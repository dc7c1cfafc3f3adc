package cli

import (
	"context"
	"fmt"
	"log"

	"autocare_api/internal/adapter/persistence/memory"
	"autocare_api/internal/adapter/persistence/postgres"
	"autocare_api/internal/adapter/persistence/repository"
	"autocare_api/internal/infrastructure/config"
	"autocare_api/internal/infrastructure/database"
	"autocare_api/internal/usecase/interfaces"
)

// stores are the repositories of the configured storage driver.
type stores struct {
	jobs     interfaces.IJobRepository
	orders   interfaces.IOrderRepository
	payments interfaces.IPaymentRepository
	close    func()
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Printf("[cli][storage] using in-memory storage, data is lost on restart")
		return stores{
			jobs:     memory.NewJobStore(),
			orders:   memory.NewOrderStore(),
			payments: memory.NewPaymentStore(),
			close:    func() {},
		}, nil
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return stores{}, err
		}
		log.Printf("[cli][storage] using postgres storage")
		return stores{
			jobs:     postgres.NewJobStore(pool),
			orders:   postgres.NewOrderStore(pool),
			payments: postgres.NewPaymentStore(pool),
			close:    pool.Close,
		}, nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return stores{}, err
		}
		log.Printf("[cli][storage] using dynamodb storage region=%s endpoint=%s", cfg.AWS.Region, cfg.AWS.DynamoDBEndpoint)
		return stores{
			jobs:     repository.NewJobDynamoRepository(ddb),
			orders:   repository.NewOrderDynamoRepository(ddb),
			payments: repository.NewPaymentDynamoRepository(ddb),
			close:    func() {},
		}, nil
	}
	return stores{}, fmt.Errorf("%w: %s", config.ErrUnknownStorageDriver, cfg.StorageDriver)
}
