package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/visibility-audit-api/infrastructure/database/postgres"
	"github.com/vfg2006/visibility-audit-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func TestPartnerRepository_GetPartnerByID(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rate := 25.0

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		expected  *domain.Partner
		expectErr bool
	}{
		{
			name: "encontra parceiro com taxa própria",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, commission_rate, referred_users, total_commission, created_at, updated_at FROM partners WHERE id = $1")).
					WithArgs("prt_1").
					WillReturnRows(sqlmock.NewRows(partnerColumns).
						AddRow("prt_1", "Agência Norte", "norte@agencia.com", rate, 12, 1920.5, now, now))
			},
			expected: &domain.Partner{
				ID:              "prt_1",
				Name:            "Agência Norte",
				Email:           "norte@agencia.com",
				CommissionRate:  &rate,
				ReferredUsers:   12,
				TotalCommission: 1920.5,
				CreatedAt:       now,
				UpdatedAt:       now,
			},
		},
		{
			name: "taxa nula usa padrão",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM partners").
					WithArgs("prt_1").
					WillReturnRows(sqlmock.NewRows(partnerColumns).
						AddRow("prt_1", "Agência Norte", "norte@agencia.com", nil, 0, 0.0, now, now))
			},
			expected: &domain.Partner{
				ID:        "prt_1",
				Name:      "Agência Norte",
				Email:     "norte@agencia.com",
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "parceiro inexistente retorna nil",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM partners").
					WithArgs("prt_1").
					WillReturnError(sql.ErrNoRows)
			},
			expected: nil,
		},
		{
			name: "erro do banco",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM partners").
					WithArgs("prt_1").
					WillReturnError(errors.New("connection reset"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConnection(t)
			tt.setup(mock)

			partner, err := NewPartnerRepository(conn).GetPartnerByID(context.Background(), "prt_1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, partner)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPartnerRepository_ListPartners(t *testing.T) {
	conn, mock := newMockConnection(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM partners ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows(partnerColumns).
			AddRow("prt_1", "A", "a@x.com", nil, 1, 0.0, now, now).
			AddRow("prt_2", "B", "b@x.com", 30.0, 2, 10.0, now, now))

	partners, err := NewPartnerRepository(conn).ListPartners(context.Background())
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Nil(t, partners[0].CommissionRate)
	require.NotNil(t, partners[1].CommissionRate)
	assert.Equal(t, 30.0, *partners[1].CommissionRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPartnerRepository_SaveOrUpdatePartners(t *testing.T) {
	t.Run("lista vazia não acessa o banco", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		err := NewPartnerRepository(conn).SaveOrUpdatePartners(context.Background(), nil)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("upsert em lote", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		partners := []*domain.Partner{
			{ID: "prt_1", Name: "A", Email: "a@x.com", ReferredUsers: 3},
			{ID: "prt_2", Name: "B", Email: "b@x.com"},
		}

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO partners")).
			WithArgs(
				"prt_1", "A", "a@x.com", nil, 3, 0.0,
				"prt_2", "B", "b@x.com", nil, 0, 0.0,
			).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := NewPartnerRepository(conn).SaveOrUpdatePartners(context.Background(), partners)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha no insert", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectExec("INSERT INTO partners").WillReturnError(errors.New("deadlock"))

		err := NewPartnerRepository(conn).SaveOrUpdatePartners(context.Background(), []*domain.Partner{{ID: "prt_1"}})
		assert.ErrorContains(t, err, "deadlock")
	})
}

func TestFixServiceRepository_ListFixServices(t *testing.T) {
	conn, mock := newMockConnection(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT type, name, price, description, updated_at FROM fix_services ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"type", "name", "price", "description", "updated_at"}).
			AddRow("gbp_optimization", "Otimização do perfil", 149.0, "Ajuste completo", now).
			AddRow("review_response", "Resposta a avaliações", 99.0, "", now))

	services, err := NewFixServiceRepository(conn).ListFixServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, domain.FixServiceType("gbp_optimization"), services[0].Type)
	assert.Equal(t, 149.0, services[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFixServiceRepository_SaveOrUpdateFixServices(t *testing.T) {
	services := []*domain.FixService{
		{Type: "gbp_optimization", Name: "Otimização do perfil", Price: 149, Description: "Ajuste completo"},
	}

	t.Run("commit da transação", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fix_services (type,name,price,description) VALUES ($1,$2,$3,$4)")).
			WithArgs(domain.FixServiceType("gbp_optimization"), "Otimização do perfil", 149.0, "Ajuste completo").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := NewFixServiceRepository(conn).SaveOrUpdateFixServices(context.Background(), services)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback em erro", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO fix_services").WillReturnError(errors.New("constraint"))
		mock.ExpectRollback()

		err := NewFixServiceRepository(conn).SaveOrUpdateFixServices(context.Background(), services)
		assert.ErrorContains(t, err, "constraint")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository(t *testing.T) {
	now := time.Now().UTC()
	partnerID := "prt_1"

	t.Run("busca por email", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE deleted = $1 AND email = $2")).
			WithArgs(false, "ana@x.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(7, "Ana", "Souza", "ana@x.com", "hash", true, domain.RolePartner, partnerID, now, now))

		user, err := NewUserRepository(conn).GetUserByEmail(context.Background(), "ana@x.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 7, user.ID)
		require.NotNil(t, user.PartnerID)
		assert.Equal(t, partnerID, *user.PartnerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		conn, mock := newMockConnection(t)

		mock.ExpectQuery("FROM users").
			WithArgs(false, 99).
			WillReturnError(sql.ErrNoRows)

		user, err := NewUserRepository(conn).GetUserByID(context.Background(), 99)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("criação retorna id", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		user := &domain.User{Name: "Ana", Lastname: "Souza", Email: "ana@x.com", PasswordHash: "hash", Active: true, RoleID: domain.RoleClient}

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs("Ana", "Souza", "ana@x.com", "hash", true, domain.RoleClient, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(15))

		created, err := NewUserRepository(conn).CreateUser(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, 15, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPartnerRepository_SaveOrUpdatePartners_DuplicateIDs(t *testing.T) {
	conn, mock := newMockConnection(t)
	partners := []*domain.Partner{
		{ID: "prt_1", Name: "Antigo", Email: "a@x.com"},
		{ID: "prt_2", Name: "B", Email: "b@x.com"},
		{ID: "prt_1", Name: "Novo", Email: "a@x.com", ReferredUsers: 5},
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO partners")).
		WithArgs(
			"prt_1", "Novo", "a@x.com", nil, 5, 0.0,
			"prt_2", "B", "b@x.com", nil, 0, 0.0,
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := NewPartnerRepository(conn).SaveOrUpdatePartners(context.Background(), partners)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFixServiceRepository_SaveOrUpdateFixServices_DuplicateTypes(t *testing.T) {
	conn, mock := newMockConnection(t)
	services := []*domain.FixService{
		{Type: "review_response", Name: "Resposta", Price: 99},
		{Type: "review_response", Name: "Resposta a avaliações", Price: 119},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fix_services (type,name,price,description) VALUES ($1,$2,$3,$4) ")).
		WithArgs(domain.FixServiceType("review_response"), "Resposta a avaliações", 119.0, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewFixServiceRepository(conn).SaveOrUpdateFixServices(context.Background(), services)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDedupeByKey(t *testing.T) {
	a1 := &domain.Partner{ID: "a", Name: "1"}
	b := &domain.Partner{ID: "b"}
	a2 := &domain.Partner{ID: "a", Name: "2"}

	result := dedupeByKey([]*domain.Partner{a1, nil, b, a2}, func(p *domain.Partner) string { return p.ID })

	assert.Equal(t, []*domain.Partner{a2, b}, result)
}
