package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bizcard-service/internal/domain"
)

// CardRepository encapsulates card persistence.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	Update(ctx context.Context, card *domain.Card) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Card, error)
	GetByBizNumber(ctx context.Context, bizNumber int64) (*domain.Card, error)
	List(ctx context.Context) ([]domain.Card, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Card, error)
	Count(ctx context.Context) (int64, error)
}

type cardRepository struct {
	pool *pgxpool.Pool
}

// NewCardRepository instantiates repository.
func NewCardRepository(pool *pgxpool.Pool) CardRepository {
	return &cardRepository{pool: pool}
}

const cardColumns = `id, title, subtitle, description, phone, email, web, address,
        biz_number, likes, owner_user_id, created_at, updated_at`

func (r *cardRepository) Create(ctx context.Context, card *domain.Card) error {
	const query = `
        INSERT INTO cards (title, subtitle, description, phone, email, web, address, biz_number, likes, owner_user_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		card.Title,
		card.Subtitle,
		card.Description,
		card.Phone,
		card.Email,
		card.Web,
		card.Address,
		card.BizNumber,
		card.Likes,
		card.OwnerUserID,
	).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
}

func (r *cardRepository) Update(ctx context.Context, card *domain.Card) error {
	const query = `
        UPDATE cards SET title=$1, subtitle=$2, description=$3, phone=$4, email=$5, web=$6,
            address=$7, biz_number=$8, likes=$9, updated_at=NOW()
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		card.Title,
		card.Subtitle,
		card.Description,
		card.Phone,
		card.Email,
		card.Web,
		card.Address,
		card.BizNumber,
		card.Likes,
		card.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cardRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cardRepository) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	var card domain.Card
	if err := scanCard(r.pool.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id=$1`, id), &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) GetByBizNumber(ctx context.Context, bizNumber int64) (*domain.Card, error) {
	var card domain.Card
	if err := scanCard(r.pool.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE biz_number=$1`, bizNumber), &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *cardRepository) List(ctx context.Context) ([]domain.Card, error) {
	return r.list(ctx, `SELECT `+cardColumns+` FROM cards ORDER BY created_at`)
}

func (r *cardRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Card, error) {
	return r.list(ctx, `SELECT `+cardColumns+` FROM cards WHERE owner_user_id=$1 ORDER BY created_at`, ownerID)
}

func (r *cardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM cards`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *cardRepository) list(ctx context.Context, query string, args ...any) ([]domain.Card, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]domain.Card, 0)
	for rows.Next() {
		var card domain.Card
		if err := scanCard(rows, &card); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func scanCard(row pgx.Row, card *domain.Card) error {
	return row.Scan(
		&card.ID,
		&card.Title,
		&card.Subtitle,
		&card.Description,
		&card.Phone,
		&card.Email,
		&card.Web,
		&card.Address,
		&card.BizNumber,
		&card.Likes,
		&card.OwnerUserID,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
}
