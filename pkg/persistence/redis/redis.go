// Package redis provides Redis-backed persistence for workflows and
// execution records. Entities are stored as JSON values under namespaced
// keys; listing uses SCAN to stay cursor-friendly on large keyspaces.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressline/pressline/pkg/models"
	"github.com/pressline/pressline/pkg/persistence"
	redis "github.com/redis/go-redis/v9"
)

const (
	workflowKeyPrefix  = "pressline:workflow:"
	executionKeyPrefix = "pressline:execution:"
	scanBatchSize      = 100
)

// Persistence implements persistence.Persistence on a Redis instance.
type Persistence struct {
	client redis.UniversalClient
}

func NewPersistence(url string) (*Persistence, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return &Persistence{client: redis.NewClient(opts)}, nil
}

func (p *Persistence) WorkflowRepository() persistence.WorkflowRepository {
	return &workflowRepository{client: p.client}
}

func (p *Persistence) ExecutionRepository() persistence.ExecutionRepository {
	return &executionRepository{client: p.client}
}

func (p *Persistence) HealthCheck(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func (p *Persistence) Close(_ context.Context) error {
	return p.client.Close()
}

type workflowRepository struct {
	client redis.UniversalClient
}

func (r *workflowRepository) Workflows(ctx context.Context) ([]*models.Workflow, error) {
	workflows := make([]*models.Workflow, 0)

	iter := r.client.Scan(ctx, 0, workflowKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue // deleted between scan and get
			}

			return nil, fmt.Errorf("failed to read workflow key %s: %w", iter.Val(), err)
		}

		var workflow models.Workflow
		if err := json.Unmarshal(data, &workflow); err != nil {
			return nil, fmt.Errorf("failed to parse workflow key %s: %w", iter.Val(), err)
		}

		workflows = append(workflows, &workflow)
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("workflow scan failed: %w", err)
	}

	return workflows, nil
}

func (r *workflowRepository) WorkflowByID(ctx context.Context, id string) (*models.Workflow, error) {
	data, err := r.client.Get(ctx, workflowKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, persistence.ErrWorkflowNotFound
		}

		return nil, fmt.Errorf("failed to read workflow %s: %w", id, err)
	}

	var workflow models.Workflow
	if err := json.Unmarshal(data, &workflow); err != nil {
		return nil, fmt.Errorf("failed to parse workflow %s: %w", id, err)
	}

	return &workflow, nil
}

func (r *workflowRepository) SaveWorkflow(ctx context.Context, workflow *models.Workflow) error {
	data, err := json.Marshal(workflow)
	if err != nil {
		return fmt.Errorf("failed to marshal workflow %s: %w", workflow.ID, err)
	}

	return r.client.Set(ctx, workflowKeyPrefix+workflow.ID, data, 0).Err()
}

func (r *workflowRepository) DeleteWorkflow(ctx context.Context, id string) error {
	deleted, err := r.client.Del(ctx, workflowKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete workflow %s: %w", id, err)
	}

	if deleted == 0 {
		return persistence.ErrWorkflowNotFound
	}

	return nil
}

type executionRepository struct {
	client redis.UniversalClient
}

func (r *executionRepository) CreateExecution(ctx context.Context, execution *models.WorkflowExecution) error {
	data, err := json.Marshal(execution)
	if err != nil {
		return persistence.NewExecutionError("Create", execution.ID, err)
	}

	created, err := r.client.SetNX(ctx, executionKeyPrefix+execution.ID, data, 0).Result()
	if err != nil {
		return persistence.NewExecutionError("Create", execution.ID, err)
	}

	if !created {
		return persistence.NewExecutionError("Create", execution.ID, persistence.ErrExecutionAlreadyExists)
	}

	return nil
}

func (r *executionRepository) UpdateExecution(ctx context.Context, execution *models.WorkflowExecution) error {
	data, err := json.Marshal(execution)
	if err != nil {
		return persistence.NewExecutionError("Update", execution.ID, err)
	}

	updated, err := r.client.SetXX(ctx, executionKeyPrefix+execution.ID, data, 0).Result()
	if err != nil {
		return persistence.NewExecutionError("Update", execution.ID, err)
	}

	if !updated {
		return persistence.NewExecutionError("Update", execution.ID, persistence.ErrExecutionNotFound)
	}

	return nil
}

func (r *executionRepository) ExecutionByID(ctx context.Context, id string) (*models.WorkflowExecution, error) {
	data, err := r.client.Get(ctx, executionKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, persistence.ErrExecutionNotFound
		}

		return nil, fmt.Errorf("failed to read execution %s: %w", id, err)
	}

	var execution models.WorkflowExecution
	if err := json.Unmarshal(data, &execution); err != nil {
		return nil, fmt.Errorf("failed to parse execution %s: %w", id, err)
	}

	return &execution, nil
}

func (r *executionRepository) ExecutionsByWorkflow(ctx context.Context, workflowID string) ([]*models.WorkflowExecution, error) {
	executions := make([]*models.WorkflowExecution, 0)

	iter := r.client.Scan(ctx, 0, executionKeyPrefix+"*", scanBatchSize).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}

			return nil, fmt.Errorf("failed to read execution key %s: %w", iter.Val(), err)
		}

		var execution models.WorkflowExecution
		if err := json.Unmarshal(data, &execution); err != nil {
			return nil, fmt.Errorf("failed to parse execution key %s: %w", iter.Val(), err)
		}

		if execution.WorkflowID == workflowID {
			executions = append(executions, &execution)
		}
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("execution scan failed: %w", err)
	}

	return executions, nil
}
