package refcache

import (
	"careportal-service/internal/app/contracts/mocks"
	"careportal-service/internal/app/services/shared/locker"
	"careportal-service/internal/app/services/shared/redis"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	mr      *miniredis.Miniredis
	backend *mocks.ReferenceBackendClient
	cache   *referenceCache
	client  *goredis.Client
}

func newTestEnv(t *testing.T, serviceToken string) *testEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	backendClient := new(mocks.ReferenceBackendClient)
	cache := NewReferenceCache(zap.NewNop(), redis.NewRedisRepository(client), backendClient, time.Minute, serviceToken).(*referenceCache)
	return &testEnv{mr: mr, backend: backendClient, cache: cache, client: client}
}

func TestReferenceCache(t *testing.T) {
	ctx := context.Background()
	doctors := []responses.Provider{{ID: "d1", FirstName: "Ada", LastName: "Lovelace"}}

	t.Run("Miss Fetches Then Hit Serves From Redis", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.backend.On("FindDoctors", mock.Anything, "user-token").Return(doctors, nil).Once()

		got, err := env.cache.Doctors(ctx, "user-token")
		require.NoError(t, err)
		assert.Equal(t, doctors, got)

		got, err = env.cache.Doctors(ctx, "user-token")
		require.NoError(t, err)
		assert.Equal(t, doctors, got)

		env.backend.AssertNumberOfCalls(t, "FindDoctors", 1)
		assert.True(t, env.mr.Exists(doctorsKey))
	})

	t.Run("Expired Entry Refetches", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.backend.On("FindPatients", mock.Anything, "tok").Return([]responses.Patient{{ID: "p1"}}, nil).Twice()

		_, err := env.cache.Patients(ctx, "tok")
		require.NoError(t, err)
		env.mr.FastForward(2 * time.Minute)
		_, err = env.cache.Patients(ctx, "tok")
		require.NoError(t, err)

		env.backend.AssertNumberOfCalls(t, "FindPatients", 2)
	})

	t.Run("Backend Error Is Returned And Not Cached", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.backend.On("FindMedicines", mock.Anything, "tok").Return(nil, errors.New("boom"))

		_, err := env.cache.Medicines(ctx, "tok")
		assert.Error(t, err)
		assert.False(t, env.mr.Exists(medicinesKey))
	})

	t.Run("Corrupt Entry Is Refetched", func(t *testing.T) {
		env := newTestEnv(t, "")
		require.NoError(t, env.mr.Set(doctorsKey, "{not json"))
		env.backend.On("FindDoctors", mock.Anything, "tok").Return(doctors, nil).Once()

		got, err := env.cache.Doctors(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, doctors, got)
	})

	t.Run("Refresh Without Service Token Is A No-op", func(t *testing.T) {
		env := newTestEnv(t, "")
		require.NoError(t, env.cache.Refresh(ctx))
		env.backend.AssertNotCalled(t, "FindDoctors", mock.Anything, mock.Anything)
	})

	t.Run("Refresh Stores Every List", func(t *testing.T) {
		env := newTestEnv(t, "svc")
		env.backend.On("FindDoctors", mock.Anything, "svc").Return(doctors, nil)
		env.backend.On("FindPatients", mock.Anything, "svc").Return(nil, errors.New("patients down"))
		env.backend.On("FindMedicines", mock.Anything, "svc").Return([]responses.Medicine{{ID: "m1", Name: "Aspirin"}}, nil)

		err := env.cache.Refresh(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "patients down")
		assert.True(t, env.mr.Exists(doctorsKey))
		assert.False(t, env.mr.Exists(patientsKey))
		assert.True(t, env.mr.Exists(medicinesKey))
	})

	t.Run("Forget Patients Drops Only That List", func(t *testing.T) {
		env := newTestEnv(t, "")
		env.backend.On("FindPatients", mock.Anything, "tok").Return([]responses.Patient{{ID: "p1"}}, nil).Twice()
		env.backend.On("FindDoctors", mock.Anything, "tok").Return(doctors, nil).Once()
		_, err := env.cache.Patients(ctx, "tok")
		require.NoError(t, err)
		_, err = env.cache.Doctors(ctx, "tok")
		require.NoError(t, err)

		require.NoError(t, env.cache.ForgetPatients(ctx))
		assert.False(t, env.mr.Exists(patientsKey))
		assert.True(t, env.mr.Exists(doctorsKey))

		_, err = env.cache.Patients(ctx, "tok")
		require.NoError(t, err)
		env.backend.AssertNumberOfCalls(t, "FindPatients", 2)
	})
}

func TestWorkerRunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("Leader Refreshes And Releases Lock", func(t *testing.T) {
		env := newTestEnv(t, "")
		cache := new(mocks.ReferenceCache)
		cache.On("Refresh", mock.Anything).Return(nil).Once()
		lockService := locker.NewLockService(redis.NewRedisRepository(env.client), zap.NewNop())

		worker := NewWorker(zap.NewNop(), "@every 1h", lockService, cache)
		worker.runOnce(ctx)

		cache.AssertExpectations(t)
		assert.False(t, env.mr.Exists(constvars.RedisRefcacheLeaderLockKey))
	})

	t.Run("Follower Skips", func(t *testing.T) {
		env := newTestEnv(t, "")
		require.NoError(t, env.mr.Set(constvars.RedisRefcacheLeaderLockKey, `"other"`))
		cache := new(mocks.ReferenceCache)
		lockService := locker.NewLockService(redis.NewRedisRepository(env.client), zap.NewNop())

		worker := NewWorker(zap.NewNop(), "@every 1h", lockService, cache)
		worker.runOnce(ctx)

		cache.AssertNotCalled(t, "Refresh", mock.Anything)
	})

	t.Run("Invalid Spec Falls Back And Stops Cleanly", func(t *testing.T) {
		cache := new(mocks.ReferenceCache)
		cache.On("Refresh", mock.Anything).Return(nil).Maybe()
		lockService := new(mocks.LockerService)
		lockService.On("TryLock", mock.Anything, constvars.RedisRefcacheLeaderLockKey, leaderLockTTL).Return(false, "", nil).Maybe()

		worker := NewWorker(zap.NewNop(), "not a spec", lockService, cache)
		worker.Start(ctx)
		worker.Stop()

		require.NotNil(t, worker.cron)
		assert.Len(t, worker.cron.Entries(), 1)
	})
}
