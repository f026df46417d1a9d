package viewstate

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var errLockBusy = errors.New("view state lock not acquired")

const (
	lockAttempts   = 5
	lockRetryDelay = 40 * time.Millisecond
)

type viewStateStore struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	Locker          contracts.LockerService
	StateTTL        time.Duration
	LockTTL         time.Duration
}

func NewViewStateStore(logger *zap.Logger, redisRepository contracts.RedisRepository, locker contracts.LockerService, stateTTL, lockTTL time.Duration) contracts.ViewStateStore {
	return &viewStateStore{
		Log:             logger,
		RedisRepository: redisRepository,
		Locker:          locker,
		StateTTL:        stateTTL,
		LockTTL:         lockTTL,
	}
}

// LoadBooking returns an idle booking surface when the session has none yet.
func (s *viewStateStore) LoadBooking(ctx context.Context, sessionID string) (models.BookingState, error) {
	state := models.BookingState{
		ProviderType: constvars.ProviderTypeDoctor,
		Selector: models.SlotSelector{
			State:    models.SelectorIdle,
			Message:  constvars.SlotSelectorPromptMessage,
			Disabled: true,
		},
	}
	err := s.load(ctx, constvars.RedisBookingStateKeyPrefix+sessionID, &state)
	return state, err
}

func (s *viewStateStore) SaveBooking(ctx context.Context, sessionID string, state models.BookingState) error {
	return s.RedisRepository.Set(ctx, constvars.RedisBookingStateKeyPrefix+sessionID, state, s.StateTTL)
}

// LoadAppointmentList returns the default filters when the session has no
// list state yet.
func (s *viewStateStore) LoadAppointmentList(ctx context.Context, sessionID string) (models.AppointmentListState, error) {
	state := models.AppointmentListState{Filters: requests.DefaultAppointmentFilters()}
	err := s.load(ctx, constvars.RedisListStateKeyPrefix+sessionID, &state)
	return state, err
}

func (s *viewStateStore) SaveAppointmentList(ctx context.Context, sessionID string, state models.AppointmentListState) error {
	return s.RedisRepository.Set(ctx, constvars.RedisListStateKeyPrefix+sessionID, state, s.StateTTL)
}

// WithLock runs fn while holding the session's view state lock. A lock that
// stays busy after a few short retries is reported as ErrViewStateBusy.
func (s *viewStateStore) WithLock(ctx context.Context, sessionID string, fn func(ctx context.Context) error) error {
	key := constvars.RedisViewStateLockKeyPrefix + sessionID

	var token string
	for attempt := 0; attempt < lockAttempts; attempt++ {
		acquired, lockValue, err := s.Locker.TryLock(ctx, key, s.LockTTL)
		if err != nil {
			return err
		}
		if acquired {
			token = lockValue
			break
		}
		select {
		case <-ctx.Done():
			return exceptions.ErrServerDeadlineExceeded(ctx.Err())
		case <-time.After(lockRetryDelay):
		}
	}
	if token == "" {
		return exceptions.ErrViewStateBusy(errLockBusy)
	}

	defer func() {
		err := s.Locker.Unlock(context.WithoutCancel(ctx), key, token)
		if err != nil {
			s.Log.Warn("viewStateStore.WithLock failed to release lock",
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}()

	return fn(ctx)
}

// load leaves target untouched when key does not exist.
func (s *viewStateStore) load(ctx context.Context, key string, target interface{}) error {
	data, err := s.RedisRepository.Get(ctx, key)
	if err != nil || data == "" {
		return err
	}
	err = json.Unmarshal([]byte(data), target)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
