package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// userColumns — общий SELECT пользователя с именами роли и статуса
// вместо суррогатных ключей справочников.
const userColumns = `u.user_id, u.username, u.password_hash, u.email, u.phone,
			      r.role_name, st.status_name
			  FROM users u
			  JOIN roles r ON r.role_id = u.role_id
			  JOIN statuses st ON st.status_id = u.status_id`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Phone,
		&u.Role, &u.Status); err != nil {
		return nil, err
	}
	return u, nil
}

// CreateUser сохраняет нового пользователя и возвращает его ID.
// Роль и статус задаются именами из справочников.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO users (username, password_hash, email, phone, role_id, status_id)
			  VALUES ($1, $2, $3, $4,
			      (SELECT role_id FROM roles WHERE role_name = $5),
			      (SELECT status_id FROM statuses WHERE status_name = $6))
			  RETURNING user_id`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.Email, user.Phone,
		user.Role, user.Status).Scan(&newID); err != nil {
		return 0, wrapErr(op, err)
	}
	return newID, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` WHERE u.username = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, username))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// GetUserByID возвращает пользователя по его ID.
func (s *Storage) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` WHERE u.user_id = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// GetUserByEmail возвращает пользователя по его email.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` WHERE u.email = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// GetUserByPhone возвращает пользователя по номеру телефона.
func (s *Storage) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	const op = "storage.GetUserByPhone"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` WHERE u.phone = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, phone))
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// ListUsers возвращает список пользователей с пагинацией.
func (s *Storage) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` ORDER BY u.user_id LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// UpdateUser обновляет данные пользователя по ID и возвращает количество
// изменённых строк.
func (s *Storage) UpdateUser(ctx context.Context, user models.User, id int) (int, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET username = $1, email = $2, phone = $3,
			      role_id = (SELECT role_id FROM roles WHERE role_name = $4),
			      status_id = (SELECT status_id FROM statuses WHERE status_name = $5)
			  WHERE user_id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		user.Username, user.Email, user.Phone, user.Role, user.Status, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// UpdateUserStatus меняет статус аккаунта пользователя по имени статуса.
func (s *Storage) UpdateUserStatus(ctx context.Context, id int, statusName string) error {
	const op = "storage.UpdateUserStatus"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET status_id = (SELECT status_id FROM statuses WHERE status_name = $1)
			  WHERE user_id = $2`
	result, err := s.DB.ExecContext(ctx, query, statusName, id)
	if err != nil {
		return wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// UpdatePasswordHash сохраняет новый хэш пароля пользователя.
func (s *Storage) UpdatePasswordHash(ctx context.Context, id int, passwordHash string) error {
	const op = "storage.UpdatePasswordHash"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET password_hash = $1 WHERE user_id = $2`
	result, err := s.DB.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// UpdateProfile применяет подтверждённые контактные данные пользователя.
func (s *Storage) UpdateProfile(ctx context.Context, id int, username, email, phone string) error {
	const op = "storage.UpdateProfile"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET username = $1, email = $2, phone = $3 WHERE user_id = $4`
	result, err := s.DB.ExecContext(ctx, query, username, email, phone, id)
	if err != nil {
		return wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// DeleteUser удаляет пользователя по ID и возвращает количество удалённых строк.
func (s *Storage) DeleteUser(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM users WHERE user_id = $1`
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
