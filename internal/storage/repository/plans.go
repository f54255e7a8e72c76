package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// CreatePlan вставляет новый тарифный план и возвращает его ID.
// Несуществующий тариф даёт нарушение внешнего ключа, дубликат
// названия — ErrConflict.
func (s *Storage) CreatePlan(ctx context.Context, plan models.Plan) (int, error) {
	const op = "storage.CreatePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO plans (plan_name, description, start_date, end_date, tariff_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING plan_id`
	if err := s.DB.QueryRowContext(ctx, query,
		plan.Name, plan.Description, plan.StartDate, plan.EndDate,
		plan.TariffID).Scan(&newID); err != nil {
		return 0, wrapErr(op, err)
	}
	return newID, nil
}

// ReadPlan возвращает тарифный план по ID.
func (s *Storage) ReadPlan(ctx context.Context, id int) (*models.Plan, error) {
	const op = "storage.ReadPlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	plan := &models.Plan{}
	query := `SELECT plan_id, plan_name, description, start_date, end_date, tariff_id
			  FROM plans WHERE plan_id = $1`
	if err := s.DB.QueryRowContext(ctx, query, id).
		Scan(&plan.ID, &plan.Name, &plan.Description,
			&plan.StartDate, &plan.EndDate, &plan.TariffID); err != nil {
		return nil, wrapErr(op, err)
	}
	return plan, nil
}

// ListPlans возвращает список тарифных планов с пагинацией.
func (s *Storage) ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error) {
	const op = "storage.ListPlans"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT plan_id, plan_name, description, start_date, end_date, tariff_id
			  FROM plans
			  ORDER BY plan_id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Plan
	for rows.Next() {
		var plan models.Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.Description,
			&plan.StartDate, &plan.EndDate, &plan.TariffID); err != nil {
			return nil, wrapErr(op, err)
		}
		result = append(result, &plan)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// UpdatePlan обновляет тарифный план по ID и возвращает количество
// изменённых строк.
func (s *Storage) UpdatePlan(ctx context.Context, plan models.Plan, id int) (int, error) {
	const op = "storage.UpdatePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE plans
			  SET plan_name = $1, description = $2, start_date = $3,
				  end_date = $4, tariff_id = $5
			  WHERE plan_id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		plan.Name, plan.Description, plan.StartDate, plan.EndDate, plan.TariffID, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeletePlan удаляет тарифный план по ID и возвращает количество
// удалённых строк.
func (s *Storage) DeletePlan(ctx context.Context, id int) (int, error) {
	const op = "storage.DeletePlan"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM plans WHERE plan_id = $1`
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
