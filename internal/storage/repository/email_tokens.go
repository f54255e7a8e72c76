package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// SaveEmailToken сохраняет токен подтверждения смены профиля. Старые
// токены пользователя при этом удаляются: действителен всегда только
// последний запрошенный.
func (s *Storage) SaveEmailToken(ctx context.Context, token models.EmailToken) error {
	const op = "storage.SaveEmailToken"
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

	_, err = tx.ExecContext(ctx,
		`DELETE FROM email_tokens WHERE user_id = $1`, token.UserID)
	if err != nil {
		return wrapErr(op, err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO email_tokens (token, user_id, new_email, new_username, new_phone, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		token.Token, token.UserID, token.NewEmail,
		token.NewUsername, token.NewPhone, token.ExpiresAt)
	if err != nil {
		return wrapErr(op, err)
	}
	if err = tx.Commit(); err != nil {
		return wrapErr(op, err)
	}
	return nil
}

// TakeEmailToken возвращает неистёкший токен и сразу удаляет его:
// токен одноразовый. Истёкший или неизвестный токен — ErrNotFound.
func (s *Storage) TakeEmailToken(ctx context.Context, token string) (*models.EmailToken, error) {
	const op = "storage.TakeEmailToken"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result := &models.EmailToken{}
	query := `DELETE FROM email_tokens
			  WHERE token = $1 AND expires_at > $2
			  RETURNING token, user_id, new_email, new_username, new_phone, expires_at`
	if err := s.DB.QueryRowContext(ctx, query, token, time.Now().UTC()).
		Scan(&result.Token, &result.UserID, &result.NewEmail,
			&result.NewUsername, &result.NewPhone, &result.ExpiresAt); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// DeleteExpiredEmailTokens удаляет истёкшие токены и возвращает
// количество удалённых строк.
func (s *Storage) DeleteExpiredEmailTokens(ctx context.Context) (int, error) {
	const op = "storage.DeleteExpiredEmailTokens"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`DELETE FROM email_tokens WHERE expires_at <= $1`, time.Now().UTC())
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
