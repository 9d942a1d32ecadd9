// Package testutil provides shared fixtures for database-backed tests. Tests
// run against a private in-memory sqlite database carrying the same schema the
// application migrates in postgres.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rodolog/brokerage-api/internal/database"
	"github.com/rodolog/brokerage-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a fresh in-memory database with the full schema applied.
// Each call gets its own database, so tests never see each other's rows.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared-cache memory database alive for
	// the whole test.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	return db
}

// CreateTestUser inserts an active user with the given roles
func CreateTestUser(t *testing.T, db *gorm.DB, fullName string, roles ...domain.UserRole) *domain.User {
	t.Helper()

	strRoles := make([]string, len(roles))
	for i, r := range roles {
		strRoles[i] = string(r)
	}

	user := &domain.User{
		FullName:     fullName,
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		PasswordHash: "not-a-real-hash",
		Roles:        pq.StringArray(strRoles),
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateTestSeller inserts an active seller with the given commission terms
func CreateTestSeller(t *testing.T, db *gorm.DB, fullName string, meta, percent float64) *domain.User {
	t.Helper()

	user := CreateTestUser(t, db, fullName, domain.RoleVendedor)
	user.MetaFinanceira = meta
	user.PorcentagemComissao = percent
	require.NoError(t, db.Save(user).Error)
	return user
}

// CreateTestLead inserts a lead with one contact
func CreateTestLead(t *testing.T, db *gorm.DB, empresa string) *domain.Lead {
	t.Helper()

	lead := &domain.Lead{
		Empresa: empresa,
		Status:  domain.LeadStatusNovo,
		Contatos: []domain.LeadContact{
			{Nome: "Contato Teste", Email: "contato@example.com"},
		},
	}
	require.NoError(t, db.Create(lead).Error)
	return lead
}

// CreateAcceptedProposal inserts a proposal in Aceita status with the given
// estimated profit and acceptance date
func CreateAcceptedProposal(t *testing.T, db *gorm.DB, leadID, vendedorID uuid.UUID, lucro float64, aceite time.Time) *domain.Proposal {
	t.Helper()

	proposal := &domain.Proposal{
		Tipo:          domain.ProposalNacional,
		LeadID:        leadID,
		VendedorID:    vendedorID,
		Status:        domain.ProposalAceita,
		LucroEstimado: lucro,
		DataAceite:    &aceite,
	}
	require.NoError(t, db.Create(proposal).Error)
	return proposal
}

// Date builds a UTC timestamp at midnight
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
