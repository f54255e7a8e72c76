package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// ListRoles возвращает справочник ролей.
func (s *Storage) ListRoles(ctx context.Context) ([]*models.Role, error) {
	const op = "storage.ListRoles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT role_id, role_name FROM roles ORDER BY role_id`)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Role
	for rows.Next() {
		var r models.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, wrapErr(op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// GetRoleByID возвращает роль по её идентификатору.
func (s *Storage) GetRoleByID(ctx context.Context, id int) (*models.Role, error) {
	const op = "storage.GetRoleByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var r models.Role
	err := s.DB.QueryRowContext(ctx,
		`SELECT role_id, role_name FROM roles WHERE role_id = $1`, id).
		Scan(&r.ID, &r.Name)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return &r, nil
}

// CreateRole добавляет роль в справочник и возвращает её ID.
func (s *Storage) CreateRole(ctx context.Context, name string) (int, error) {
	const op = "storage.CreateRole"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO roles (role_name) VALUES ($1) RETURNING role_id`, name).
		Scan(&id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	return id, nil
}

// UpdateRole переименовывает роль и возвращает количество изменённых строк.
func (s *Storage) UpdateRole(ctx context.Context, id int, name string) (int, error) {
	const op = "storage.UpdateRole"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE roles SET role_name = $1 WHERE role_id = $2`, name, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteRole удаляет роль из справочника. Роль, на которую ссылаются
// пользователи, удалить нельзя: нарушение внешнего ключа переводится
// в ErrConflict.
func (s *Storage) DeleteRole(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteRole"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM roles WHERE role_id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return 0, fmt.Errorf("%s: %w", op, ErrConflict)
		}
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// ListStatuses возвращает справочник статусов аккаунта.
func (s *Storage) ListStatuses(ctx context.Context) ([]*models.Status, error) {
	const op = "storage.ListStatuses"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT status_id, status_name FROM statuses ORDER BY status_id`)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Status
	for rows.Next() {
		var st models.Status
		if err := rows.Scan(&st.ID, &st.Name); err != nil {
			return nil, wrapErr(op, err)
		}
		result = append(result, &st)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// GetStatusByID возвращает статус аккаунта по его идентификатору.
func (s *Storage) GetStatusByID(ctx context.Context, id int) (*models.Status, error) {
	const op = "storage.GetStatusByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var st models.Status
	err := s.DB.QueryRowContext(ctx,
		`SELECT status_id, status_name FROM statuses WHERE status_id = $1`, id).
		Scan(&st.ID, &st.Name)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return &st, nil
}

// CreateStatus добавляет статус аккаунта в справочник и возвращает его ID.
func (s *Storage) CreateStatus(ctx context.Context, name string) (int, error) {
	const op = "storage.CreateStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var id int
	err := s.DB.QueryRowContext(ctx,
		`INSERT INTO statuses (status_name) VALUES ($1) RETURNING status_id`, name).
		Scan(&id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	return id, nil
}

// UpdateStatus переименовывает статус аккаунта и возвращает количество
// изменённых строк.
func (s *Storage) UpdateStatus(ctx context.Context, id int, name string) (int, error) {
	const op = "storage.UpdateStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx,
		`UPDATE statuses SET status_name = $1 WHERE status_id = $2`, name, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteStatus удаляет статус аккаунта из справочника. Статус, на который
// ссылаются пользователи, удалить нельзя: нарушение внешнего ключа
// переводится в ErrConflict.
func (s *Storage) DeleteStatus(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteStatus"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM statuses WHERE status_id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return 0, fmt.Errorf("%s: %w", op, ErrConflict)
		}
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
