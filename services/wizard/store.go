package wizard

import (
	"context"
	"strconv"
	"sync"
	"time"

	"bookflow/models"

	"github.com/go-redis/redis/v8"
)

const stepKeyPrefix = "wizard:step:"

// StepStore persists the current step of each wizard session so a client can
// resume where it left off. Only the step pointer is durable; the draft is
// deliberately not.
type StepStore interface {
	Save(ctx context.Context, sessionID string, step models.WizardStep, ttl time.Duration) error
	Load(ctx context.Context, sessionID string) (models.WizardStep, bool, error)
	Clear(ctx context.Context, sessionID string) error
}

type redisStepStore struct {
	client *redis.Client
}

// NewRedisStepStore returns a StepStore backed by Redis.
func NewRedisStepStore(client *redis.Client) StepStore {
	return &redisStepStore{client: client}
}

func (s *redisStepStore) Save(ctx context.Context, sessionID string, step models.WizardStep, ttl time.Duration) error {
	return s.client.Set(ctx, stepKeyPrefix+sessionID, int(step), ttl).Err()
}

func (s *redisStepStore) Load(ctx context.Context, sessionID string) (models.WizardStep, bool, error) {
	val, err := s.client.Get(ctx, stepKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.StepZipEntry, false, nil
	}
	if err != nil {
		return models.StepZipEntry, false, err
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		// A corrupt pointer falls back to the first step.
		return models.StepZipEntry, true, nil
	}
	return models.ParseStep(n), true, nil
}

func (s *redisStepStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, stepKeyPrefix+sessionID).Err()
}

// MemoryStepStore is an in-process StepStore used in tests.
type MemoryStepStore struct {
	mu    sync.Mutex
	steps map[string]models.WizardStep
}

func NewMemoryStepStore() *MemoryStepStore {
	return &MemoryStepStore{steps: make(map[string]models.WizardStep)}
}

func (s *MemoryStepStore) Save(ctx context.Context, sessionID string, step models.WizardStep, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps[sessionID] = step
	return nil
}

func (s *MemoryStepStore) Load(ctx context.Context, sessionID string) (models.WizardStep, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	step, ok := s.steps[sessionID]
	if !ok {
		return models.StepZipEntry, false, nil
	}
	return step, true, nil
}

func (s *MemoryStepStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.steps, sessionID)
	return nil
}
