package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// CreateTariff вставляет новый тариф и возвращает его ID.
// Дубликат названия — ErrConflict.
func (s *Storage) CreateTariff(ctx context.Context, tariff models.Tariff) (int, error) {
	const op = "storage.CreateTariff"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO tariffs (tariff_name, description, monthly_cost, data_limit, voice_limit)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING tariff_id`
	if err := s.DB.QueryRowContext(ctx, query,
		tariff.Name, tariff.Description, tariff.MonthlyCost,
		tariff.DataLimit, tariff.VoiceLimit).Scan(&newID); err != nil {
		return 0, wrapErr(op, err)
	}
	return newID, nil
}

// ReadTariff возвращает тариф по ID.
func (s *Storage) ReadTariff(ctx context.Context, id int) (*models.Tariff, error) {
	const op = "storage.ReadTariff"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tariff := &models.Tariff{}
	query := `SELECT tariff_id, tariff_name, description, monthly_cost, data_limit, voice_limit
			  FROM tariffs WHERE tariff_id = $1`
	if err := s.DB.QueryRowContext(ctx, query, id).
		Scan(&tariff.ID, &tariff.Name, &tariff.Description,
			&tariff.MonthlyCost, &tariff.DataLimit, &tariff.VoiceLimit); err != nil {
		return nil, wrapErr(op, err)
	}
	return tariff, nil
}

// ListTariffs возвращает список тарифов с пагинацией.
func (s *Storage) ListTariffs(ctx context.Context, limit, offset int) ([]*models.Tariff, error) {
	const op = "storage.ListTariffs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT tariff_id, tariff_name, description, monthly_cost, data_limit, voice_limit
			  FROM tariffs
			  ORDER BY tariff_id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Tariff
	for rows.Next() {
		var tariff models.Tariff
		if err := rows.Scan(&tariff.ID, &tariff.Name, &tariff.Description,
			&tariff.MonthlyCost, &tariff.DataLimit, &tariff.VoiceLimit); err != nil {
			return nil, wrapErr(op, err)
		}
		result = append(result, &tariff)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// UpdateTariff обновляет тариф по ID и возвращает количество изменённых строк.
func (s *Storage) UpdateTariff(ctx context.Context, tariff models.Tariff, id int) (int, error) {
	const op = "storage.UpdateTariff"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE tariffs
			  SET tariff_name = $1, description = $2, monthly_cost = $3,
				  data_limit = $4, voice_limit = $5
			  WHERE tariff_id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		tariff.Name, tariff.Description, tariff.MonthlyCost,
		tariff.DataLimit, tariff.VoiceLimit, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeleteTariff удаляет тариф по ID и возвращает количество удалённых строк.
func (s *Storage) DeleteTariff(ctx context.Context, id int) (int, error) {
	const op = "storage.DeleteTariff"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM tariffs WHERE tariff_id = $1`
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
