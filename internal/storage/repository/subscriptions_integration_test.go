package repository

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/telecom-provider/internal/migrations"
	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

func getTestStorage(t *testing.T) *Storage {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForAll(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2),
				wait.ForListeningPort(nat.Port("5432/tcp")),
			).WithStartupTimeoutDefault(15*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { storage.DB.Close() })

	projectRoot, err := filepath.Abs("../../..")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, filepath.Join(projectRoot, "migrations")))

	return storage
}

// seedClient создает абонента, тариф и два плана для тестов подписок.
func seedClient(t *testing.T, s *Storage, username string) (planA, planB int) {
	t.Helper()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: "x",
		Email:        username + "@example.com",
		Phone:        "+7900" + username,
		Role:         models.RoleClient,
		Status:       models.StatusActive,
	})
	require.NoError(t, err)

	tariffID, err := s.CreateTariff(ctx, models.Tariff{
		Name:        "Базовый " + username,
		MonthlyCost: 9.99,
		DataLimit:   1000,
		VoiceLimit:  300,
	})
	require.NoError(t, err)

	planA, err = s.CreatePlan(ctx, models.Plan{
		Name:      "План A " + username,
		StartDate: time.Now().AddDate(0, -1, 0),
		EndDate:   time.Now().AddDate(1, 0, 0),
		TariffID:  tariffID,
	})
	require.NoError(t, err)

	planB, err = s.CreatePlan(ctx, models.Plan{
		Name:      "План B " + username,
		StartDate: time.Now().AddDate(0, -1, 0),
		EndDate:   time.Now().AddDate(1, 0, 0),
		TariffID:  tariffID,
	})
	require.NoError(t, err)

	return planA, planB
}

func countSigned(t *testing.T, s *Storage, username string) int {
	t.Helper()
	var n int
	err := s.DB.QueryRow(`
		SELECT COUNT(*) FROM subscriptions sub
		JOIN users u ON u.user_id = sub.user_id
		WHERE u.username = $1 AND sub.status = 'signed'
	`, username).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestSubscribeLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	s := getTestStorage(t)
	ctx := context.Background()
	planA, planB := seedClient(t, s, "ivan")

	// Подключение плана
	sub, err := s.Subscribe(ctx, "ivan", planA)
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionSigned, sub.Status)
	assert.Equal(t, planA, sub.PlanID)

	// Повторная подписка на тот же план
	_, err = s.Subscribe(ctx, "ivan", planA)
	require.ErrorIs(t, err, ErrAlreadySubscribed)

	// Подписка на другой план при активной — конфликт
	_, err = s.Subscribe(ctx, "ivan", planB)
	require.ErrorIs(t, err, ErrConflict)

	// Смена плана: старая отмечается not signed, новая активна
	switched, err := s.SwitchPlan(ctx, "ivan", planB)
	require.NoError(t, err)
	assert.Equal(t, planB, switched.PlanID)
	assert.Equal(t, 1, countSigned(t, s, "ivan"), "После смены активной должна остаться ровно одна подписка")

	current, err := s.GetSignedByUsername(ctx, "ivan")
	require.NoError(t, err)
	assert.Equal(t, planB, current.PlanID)

	// Отмена
	require.NoError(t, err)
	require.NoError(t, s.CancelSubscription(ctx, "ivan"))
	assert.Equal(t, 0, countSigned(t, s, "ivan"))

	// Повторная отмена — ошибка, а не no-op
	err = s.CancelSubscription(ctx, "ivan")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.GetSignedByUsername(ctx, "ivan")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	s := getTestStorage(t)
	seedClient(t, s, "petr")

	_, err := s.Subscribe(context.Background(), "petr", 99999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSwitchPlanWithoutCurrent(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	s := getTestStorage(t)
	planA, _ := seedClient(t, s, "oleg")

	_, err := s.SwitchPlan(context.Background(), "oleg", planA)
	require.ErrorIs(t, err, ErrNotFound)
}

// Параллельные попытки подключить план не должны оставить больше одной
// активной подписки: мутации сериализуются блокировкой строки пользователя,
// частичный уникальный индекс страхует на уровне базы.
func TestConcurrentSubscribeKeepsSingleSigned(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	s := getTestStorage(t)
	ctx := context.Background()
	planA, planB := seedClient(t, s, "anna")

	const workers = 16
	var wg sync.WaitGroup
	var successes int32
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		plan := planA
		if i%2 == 1 {
			plan = planB
		}
		go func(planID int) {
			defer wg.Done()
			_, err := s.Subscribe(ctx, "anna", planID)
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			if !errors.Is(err, ErrAlreadySubscribed) && !errors.Is(err, ErrConflict) {
				t.Errorf("unexpected error: %v", err)
			}
		}(plan)
	}
	wg.Wait()

	assert.EqualValues(t, 1, successes, "Только одна из параллельных попыток должна преуспеть")
	assert.Equal(t, 1, countSigned(t, s, "anna"), "В базе должна остаться ровно одна активная подписка")
}

func TestConcurrentSwitchKeepsSingleSigned(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	s := getTestStorage(t)
	ctx := context.Background()
	planA, planB := seedClient(t, s, "vera")

	_, err := s.Subscribe(ctx, "vera", planA)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		plan := planA
		if i%2 == 1 {
			plan = planB
		}
		go func(planID int) {
			defer wg.Done()
			if _, err := s.SwitchPlan(ctx, "vera", planID); err != nil {
				if !errors.Is(err, ErrConflict) && !errors.Is(err, ErrNotFound) {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}(plan)
	}
	wg.Wait()

	assert.Equal(t, 1, countSigned(t, s, "vera"), "После параллельных смен активная подписка ровно одна")
}
