package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// lockUser блокирует строку пользователя до конца транзакции и возвращает
// его ID. Все мутации подписок одного пользователя проходят через эту
// блокировку, поэтому две конкурентные смены плана не могут прочитать одну
// и ту же "текущую" подписку.
func lockUser(ctx context.Context, tx *sql.Tx, username string) (int, error) {
	var userID int
	err := tx.QueryRowContext(ctx,
		`SELECT user_id FROM users WHERE username = $1 FOR UPDATE`,
		username).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// currentSigned возвращает текущую активную подписку пользователя внутри
// транзакции. При нескольких активных строках (нарушение инварианта)
// детерминированно берётся первая по subscription_id.
func currentSigned(ctx context.Context, tx *sql.Tx, userID int) (*models.Subscription, error) {
	sub := &models.Subscription{}
	err := tx.QueryRowContext(ctx,
		`SELECT subscription_id, status, user_id, plan_id
		 FROM subscriptions
		 WHERE user_id = $1 AND status = $2
		 ORDER BY subscription_id
		 LIMIT 1`,
		userID, models.SubscriptionSigned).
		Scan(&sub.ID, &sub.Status, &sub.UserID, &sub.PlanID)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// planExists проверяет наличие плана внутри транзакции.
func planExists(ctx context.Context, tx *sql.Tx, planID int) (bool, error) {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM plans WHERE plan_id = $1)`, planID).Scan(&exists)
	return exists, err
}

// insertSigned вставляет новую активную подписку внутри транзакции.
// Частичный уникальный индекс по (user_id) WHERE status = 'signed'
// отклоняет вторую активную подписку на фиксации.
func insertSigned(ctx context.Context, tx *sql.Tx, userID, planID int) (*models.Subscription, error) {
	sub := &models.Subscription{
		Status: models.SubscriptionSigned,
		UserID: userID,
		PlanID: planID,
	}
	err := tx.QueryRowContext(ctx,
		`INSERT INTO subscriptions (status, user_id, plan_id)
		 VALUES ($1, $2, $3)
		 RETURNING subscription_id`,
		sub.Status, userID, planID).Scan(&sub.ID)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Subscribe создаёт активную подписку пользователя на план. Повторная
// подписка на тот же план — ErrAlreadySubscribed, наличие другой активной
// подписки — ErrConflict, отсутствующий план или пользователь — ErrNotFound.
func (s *Storage) Subscribe(ctx context.Context, username string, planID int) (*models.Subscription, error) {
	const op = "storage.Subscribe"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	userID, err := lockUser(ctx, tx, username)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	exists, err := planExists(ctx, tx, planID)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: plan %d: %w", op, planID, ErrNotFound)
	}

	var alreadySigned bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM subscriptions
		 WHERE user_id = $1 AND plan_id = $2 AND status = $3)`,
		userID, planID, models.SubscriptionSigned).Scan(&alreadySigned)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	if alreadySigned {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadySubscribed)
	}

	sub, err := insertSigned(ctx, tx, userID, planID)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	if err = tx.Commit(); err != nil {
		return nil, wrapErr(op, err)
	}
	return sub, nil
}

// SwitchPlan атомарно заменяет активную подписку пользователя на подписку
// с новым планом: текущая строка переводится в not signed, новая создаётся
// в signed. Оба изменения фиксируются одной транзакцией — при любой ошибке
// пользователь не остаётся без активной подписки.
func (s *Storage) SwitchPlan(ctx context.Context, username string, newPlanID int) (*models.Subscription, error) {
	const op = "storage.SwitchPlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	userID, err := lockUser(ctx, tx, username)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	current, err := currentSigned(ctx, tx, userID)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	exists, err := planExists(ctx, tx, newPlanID)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: plan %d: %w", op, newPlanID, ErrNotFound)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE subscriptions SET status = $1 WHERE subscription_id = $2`,
		models.SubscriptionNotSigned, current.ID)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	sub, err := insertSigned(ctx, tx, userID, newPlanID)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	if err = tx.Commit(); err != nil {
		return nil, wrapErr(op, err)
	}
	return sub, nil
}

// CancelSubscription переводит активную подписку пользователя в not signed.
// Отсутствие активной подписки — ErrNotFound: повторная отмена считается
// ошибкой, а не no-op.
func (s *Storage) CancelSubscription(ctx context.Context, username string) error {
	const op = "storage.CancelSubscription"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	userID, err := lockUser(ctx, tx, username)
	if err != nil {
		return wrapErr(op, err)
	}

	current, err := currentSigned(ctx, tx, userID)
	if err != nil {
		return wrapErr(op, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE subscriptions SET status = $1 WHERE subscription_id = $2`,
		models.SubscriptionNotSigned, current.ID)
	if err != nil {
		return wrapErr(op, err)
	}
	if err = tx.Commit(); err != nil {
		return wrapErr(op, err)
	}
	return nil
}

// GetSignedByUsername возвращает активную подписку пользователя.
func (s *Storage) GetSignedByUsername(ctx context.Context, username string) (*models.Subscription, error) {
	const op = "storage.GetSignedByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sub := &models.Subscription{}
	err := s.DB.QueryRowContext(ctx,
		`SELECT sub.subscription_id, sub.status, sub.user_id, sub.plan_id
		 FROM subscriptions sub
		 JOIN users u ON u.user_id = sub.user_id
		 WHERE u.username = $1 AND sub.status = $2
		 ORDER BY sub.subscription_id
		 LIMIT 1`,
		username, models.SubscriptionSigned).
		Scan(&sub.ID, &sub.Status, &sub.UserID, &sub.PlanID)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return sub, nil
}

// CreateSubscription вставляет подписку с произвольным статусом
// (администраторская операция).
func (s *Storage) CreateSubscription(ctx context.Context, sub models.Subscription) (int, error) {
	const op = "storage.CreateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO subscriptions (status, user_id, plan_id)
			  VALUES ($1, $2, $3)
			  RETURNING subscription_id`
	if err := s.DB.QueryRowContext(ctx, query,
		sub.Status, sub.UserID, sub.PlanID).Scan(&newID); err != nil {
		return 0, wrapErr(op, err)
	}
	return newID, nil
}

// ReadSubscription возвращает подписку по её ID.
func (s *Storage) ReadSubscription(ctx context.Context, id int) (*models.Subscription, error) {
	const op = "storage.ReadSubscription"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sub := &models.Subscription{}
	query := `SELECT subscription_id, status, user_id, plan_id
			  FROM subscriptions WHERE subscription_id = $1`
	if err := s.DB.QueryRowContext(ctx, query, id).
		Scan(&sub.ID, &sub.Status, &sub.UserID, &sub.PlanID); err != nil {
		return nil, wrapErr(op, err)
	}
	return sub, nil
}

// ListSubscriptions возвращает список всех подписок с пагинацией.
func (s *Storage) ListSubscriptions(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	const op = "storage.ListSubscriptions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT subscription_id, status, user_id, plan_id
			  FROM subscriptions
			  ORDER BY subscription_id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Subscription
	for rows.Next() {
		var sub models.Subscription
		if err := rows.Scan(&sub.ID, &sub.Status, &sub.UserID, &sub.PlanID); err != nil {
			return nil, wrapErr(op, err)
		}
		result = append(result, &sub)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// UpdateSubscription обновляет подписку по ID и возвращает количество
// изменённых строк.
func (s *Storage) UpdateSubscription(ctx context.Context, sub models.Subscription, id int) (int, error) {
	const op = "storage.UpdateSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE subscriptions
			  SET status = $1, user_id = $2, plan_id = $3
			  WHERE subscription_id = $4`
	result, err := s.DB.ExecContext(ctx, query, sub.Status, sub.UserID, sub.PlanID, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteSubscription удаляет подписку по ID (административное жёсткое
// удаление) и возвращает количество удалённых строк.
func (s *Storage) DeleteSubscription(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteSubscription"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM subscriptions WHERE subscription_id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
