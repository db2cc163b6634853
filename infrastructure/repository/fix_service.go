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
	fixServicesTable = "fix_services"
)

//go:generate mockgen -source=fix_service.go -destination=mocks/fix_service_mock.go -package=mocks
type FixServiceRepository interface {
	ListFixServices(ctx context.Context) ([]*domain.FixService, error)
	SaveOrUpdateFixServices(ctx context.Context, services []*domain.FixService) error
}

type fixServiceRepository struct {
	conn *postgres.Connection
}

func NewFixServiceRepository(conn *postgres.Connection) FixServiceRepository {
	return &fixServiceRepository{
		conn: conn,
	}
}

func (r *fixServiceRepository) ListFixServices(ctx context.Context) ([]*domain.FixService, error) {
	query, args, err := squirrel.
		Select("type", "name", "price", "description", "updated_at").
		From(fixServicesTable).
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

	services := make([]*domain.FixService, 0)
	for rows.Next() {
		service := &domain.FixService{}
		if err := rows.Scan(
			&service.Type,
			&service.Name,
			&service.Price,
			&service.Description,
			&service.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
		}
		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return services, nil
}

// SaveOrUpdateFixServices grava o catálogo inteiro em uma transação.
// Tipos repetidos no lote ficam com o último registro.
func (r *fixServiceRepository) SaveOrUpdateFixServices(ctx context.Context, services []*domain.FixService) error {
	services = dedupeByKey(services, func(f *domain.FixService) string { return string(f.Type) })
	if len(services) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(fixServicesTable).
		Columns("type", "name", "price", "description").
		PlaceholderFormat(squirrel.Dollar)

	for _, service := range services {
		query = query.Values(service.Type, service.Name, service.Price, service.Description)
	}

	query = query.Suffix(`
		ON CONFLICT (type) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			description = EXCLUDED.description,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}
		return nil
	})
}
