package refcache

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	doctorsKey   = constvars.RedisRefcacheKeyPrefix + constvars.ResourceDoctors
	patientsKey  = constvars.RedisRefcacheKeyPrefix + constvars.ResourcePatients
	medicinesKey = constvars.RedisRefcacheKeyPrefix + constvars.ResourceMedicines
)

type referenceCache struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	Backend         contracts.ReferenceBackendClient
	TTL             time.Duration
	ServiceToken    string
}

// NewReferenceCache caches the select-input lists in redis. serviceToken is
// only used by Refresh; an empty one disables background refreshing.
func NewReferenceCache(logger *zap.Logger, redisRepository contracts.RedisRepository, backendClient contracts.ReferenceBackendClient, ttl time.Duration, serviceToken string) contracts.ReferenceCache {
	return &referenceCache{
		Log:             logger,
		RedisRepository: redisRepository,
		Backend:         backendClient,
		TTL:             ttl,
		ServiceToken:    serviceToken,
	}
}

func (c *referenceCache) Doctors(ctx context.Context, accessToken string) ([]responses.Provider, error) {
	return cached(ctx, c, doctorsKey, func(ctx context.Context) ([]responses.Provider, error) {
		return c.Backend.FindDoctors(ctx, accessToken)
	})
}

func (c *referenceCache) Patients(ctx context.Context, accessToken string) ([]responses.Patient, error) {
	return cached(ctx, c, patientsKey, func(ctx context.Context) ([]responses.Patient, error) {
		return c.Backend.FindPatients(ctx, accessToken)
	})
}

func (c *referenceCache) Medicines(ctx context.Context, accessToken string) ([]responses.Medicine, error) {
	return cached(ctx, c, medicinesKey, func(ctx context.Context) ([]responses.Medicine, error) {
		return c.Backend.FindMedicines(ctx, accessToken)
	})
}

// Refresh reloads every list with the service token.
func (c *referenceCache) Refresh(ctx context.Context) error {
	if c.ServiceToken == "" {
		c.Log.Debug("referenceCache.Refresh skipped, no service token configured")
		return nil
	}

	var errs []error
	doctors, err := c.Backend.FindDoctors(ctx, c.ServiceToken)
	if err == nil {
		err = c.RedisRepository.Set(ctx, doctorsKey, doctors, c.TTL)
	}
	errs = append(errs, err)

	patients, err := c.Backend.FindPatients(ctx, c.ServiceToken)
	if err == nil {
		err = c.RedisRepository.Set(ctx, patientsKey, patients, c.TTL)
	}
	errs = append(errs, err)

	medicines, err := c.Backend.FindMedicines(ctx, c.ServiceToken)
	if err == nil {
		err = c.RedisRepository.Set(ctx, medicinesKey, medicines, c.TTL)
	}
	errs = append(errs, err)

	return errors.Join(errs...)
}

func (c *referenceCache) ForgetPatients(ctx context.Context) error {
	return c.RedisRepository.Delete(ctx, patientsKey)
}

// cached serves key from redis and falls back to fetch on a miss. Redis
// trouble only costs a backend round trip.
func cached[T any](ctx context.Context, c *referenceCache, key string, fetch func(ctx context.Context) ([]T, error)) ([]T, error) {
	raw, err := c.RedisRepository.Get(ctx, key)
	if err != nil {
		c.Log.Warn("referenceCache.cached error reading cache",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	if raw != "" {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			return items, nil
		}
		c.Log.Warn("referenceCache.cached discarding unreadable cache entry", zap.String(constvars.LoggingRedisKey, key))
	}

	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	err = c.RedisRepository.Set(ctx, key, items, c.TTL)
	if err != nil {
		c.Log.Warn("referenceCache.cached error writing cache",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	return items, nil
}
