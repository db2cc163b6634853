// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/visibility-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

const (
	partnersTable = "partners"
)

var partnerColumns = []string{
	"id",
	"name",
	"email",
	"commission_rate",
	"referred_users",
	"total_commission",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=partner.go -destination=mocks/partner_mock.go -package=mocks
type PartnerRepository interface {
	GetPartnerByID(ctx context.Context, id string) (*domain.Partner, error)
	ListPartners(ctx context.Context) ([]*domain.Partner, error)
	SaveOrUpdatePartners(ctx context.Context, partners []*domain.Partner) error
}

type partnerRepository struct {
	conn *postgres.Connection
}

func NewPartnerRepository(conn *postgres.Connection) PartnerRepository {
	return &partnerRepository{
		conn: conn,
	}
}

func (r *partnerRepository) GetPartnerByID(ctx context.Context, id string) (*domain.Partner, error) {
	query, args, err := squirrel.
		Select(partnerColumns...).
		From(partnersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	partner, err := scanPartner(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear parceiro: %w", err)
	}

	return partner, nil
}

func (r *partnerRepository) ListPartners(ctx context.Context) ([]*domain.Partner, error) {
	query, args, err := squirrel.
		Select(partnerColumns...).
		From(partnersTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	partners := make([]*domain.Partner, 0)
	for rows.Next() {
		partner, err := scanPartner(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear parceiro: %w", err)
		}
		partners = append(partners, partner)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return partners, nil
}

// SaveOrUpdatePartners faz upsert em lote. Ids repetidos no lote ficam com o último registro,
// já que o ON CONFLICT não aceita afetar a mesma linha duas vezes.
func (r *partnerRepository) SaveOrUpdatePartners(ctx context.Context, partners []*domain.Partner) error {
	partners = dedupeByKey(partners, func(p *domain.Partner) string { return p.ID })
	if len(partners) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(partnersTable).
		Columns(
			"id",
			"name",
			"email",
			"commission_rate",
			"referred_users",
			"total_commission",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, partner := range partners {
		query = query.Values(
			partner.ID,
			partner.Name,
			partner.Email,
			partner.CommissionRate,
			partner.ReferredUsers,
			partner.TotalCommission,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			commission_rate = EXCLUDED.commission_rate,
			referred_users = EXCLUDED.referred_users,
			total_commission = EXCLUDED.total_commission,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

// dedupeByKey mantém a posição da primeira ocorrência e o valor da última
func dedupeByKey[T any](items []*T, key func(*T) string) []*T {
	index := make(map[string]int, len(items))
	result := make([]*T, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		k := key(item)
		if i, ok := index[k]; ok {
			result[i] = item
			continue
		}
		index[k] = len(result)
		result = append(result, item)
	}
	return result
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPartner(row rowScanner) (*domain.Partner, error) {
	partner := &domain.Partner{}

	err := row.Scan(
		&partner.ID,
		&partner.Name,
		&partner.Email,
		&partner.CommissionRate,
		&partner.ReferredUsers,
		&partner.TotalCommission,
		&partner.CreatedAt,
		&partner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return partner, nil
}
