package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/telecom-provider/internal/models"
)

// CreatePromotion вставляет новую акцию и возвращает её ID.
// Дубликат названия — ErrConflict.
func (s *Storage) CreatePromotion(ctx context.Context, promo models.Promotion) (int, error) {
	const op = "storage.CreatePromotion"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO promotions (title, description, discount_percentage, start_date, end_date)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING promotion_id`
	if err := s.DB.QueryRowContext(ctx, query,
		promo.Title, promo.Description, promo.DiscountPercentage,
		promo.StartDate, promo.EndDate).Scan(&newID); err != nil {
		return 0, wrapErr(op, err)
	}
	return newID, nil
}

// ReadPromotion возвращает акцию по ID.
func (s *Storage) ReadPromotion(ctx context.Context, id int) (*models.Promotion, error) {
	const op = "storage.ReadPromotion"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	promo := &models.Promotion{}
	query := `SELECT promotion_id, title, description, discount_percentage, start_date, end_date
			  FROM promotions WHERE promotion_id = $1`
	if err := s.DB.QueryRowContext(ctx, query, id).
		Scan(&promo.ID, &promo.Title, &promo.Description,
			&promo.DiscountPercentage, &promo.StartDate, &promo.EndDate); err != nil {
		return nil, wrapErr(op, err)
	}
	return promo, nil
}

// ListPromotions возвращает список акций с пагинацией.
func (s *Storage) ListPromotions(ctx context.Context, limit, offset int) ([]*models.Promotion, error) {
	const op = "storage.ListPromotions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT promotion_id, title, description, discount_percentage, start_date, end_date
			  FROM promotions
			  ORDER BY promotion_id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Promotion
	for rows.Next() {
		var promo models.Promotion
		if err := rows.Scan(&promo.ID, &promo.Title, &promo.Description,
			&promo.DiscountPercentage, &promo.StartDate, &promo.EndDate); err != nil {
			return nil, wrapErr(op, err)
		}
		result = append(result, &promo)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// UpdatePromotion обновляет акцию по ID и возвращает количество
// изменённых строк.
func (s *Storage) UpdatePromotion(ctx context.Context, promo models.Promotion, id int) (int, error) {
	const op = "storage.UpdatePromotion"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE promotions
			  SET title = $1, description = $2, discount_percentage = $3,
				  start_date = $4, end_date = $5
			  WHERE promotion_id = $6`
	result, err := s.DB.ExecContext(ctx, query,
		promo.Title, promo.Description, promo.DiscountPercentage,
		promo.StartDate, promo.EndDate, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// DeletePromotion удаляет акцию по ID и возвращает количество удалённых строк.
func (s *Storage) DeletePromotion(ctx context.Context, id int) (int, error) {
	const op = "storage.DeletePromotion"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM promotions WHERE promotion_id = $1`
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

// AttachPromotionTariff связывает акцию с тарифом. Повторная связь —
// ErrConflict, несуществующая акция или тариф — нарушение внешнего ключа.
func (s *Storage) AttachPromotionTariff(ctx context.Context, promotionID, tariffID int) (int, error) {
	const op = "storage.AttachPromotionTariff"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO promotion_tariffs (promotion_id, tariff_id)
			  VALUES ($1, $2)
			  RETURNING promotion_tariff_id`
	if err := s.DB.QueryRowContext(ctx, query, promotionID, tariffID).Scan(&newID); err != nil {
		return 0, wrapErr(op, err)
	}
	return newID, nil
}

// DetachPromotionTariff удаляет связь акции с тарифом по её ID.
func (s *Storage) DetachPromotionTariff(ctx context.Context, id int) (int, error) {
	const op = "storage.DetachPromotionTariff"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM promotion_tariffs WHERE promotion_tariff_id = $1`
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

// ListPromotionTariffs возвращает все связи акций с тарифами с пагинацией.
func (s *Storage) ListPromotionTariffs(ctx context.Context, limit, offset int) ([]*models.PromotionTariff, error) {
	const op = "storage.ListPromotionTariffs"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT promotion_tariff_id, promotion_id, tariff_id
			  FROM promotion_tariffs
			  ORDER BY promotion_tariff_id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PromotionTariff
	for rows.Next() {
		var pt models.PromotionTariff
		if err := rows.Scan(&pt.ID, &pt.PromotionID, &pt.TariffID); err != nil {
			return nil, wrapErr(op, err)
		}
		result = append(result, &pt)
	}
	if err = rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}
