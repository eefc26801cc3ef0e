package geracao

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&DocumentoGerado{}))
	return db
}

func TestRegistrarEListarPorOrigem(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	primeiro := DocumentoGerado{
		UUID:          uuid.NewString(),
		Tipo:          TipoProposta,
		LeadID:        1,
		OrigemID:      10,
		Titulo:        "Plataforma de Dados",
		ClienteNome:   "Maria Souza",
		ValorSnapshot: 9000,
		GeradoPor:     1,
	}
	require.NoError(t, repo.Registrar(db, &primeiro))
	require.NoError(t, repo.Registrar(db, &DocumentoGerado{
		UUID: uuid.NewString(), Tipo: TipoContrato, LeadID: 1, OrigemID: 10,
	}))

	docs, err := repo.ListarPorOrigem(db, TipoProposta, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, primeiro.UUID, docs[0].UUID)
	assert.Equal(t, float64(9000), docs[0].ValorSnapshot)
}

func TestUUIDUnico(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	id := uuid.NewString()
	require.NoError(t, repo.Registrar(db, &DocumentoGerado{UUID: id, Tipo: TipoProposta}))
	assert.Error(t, repo.Registrar(db, &DocumentoGerado{UUID: id, Tipo: TipoProposta}))
}

func TestContarDesde(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	require.NoError(t, repo.Registrar(db, &DocumentoGerado{UUID: uuid.NewString(), Tipo: TipoProposta}))
	require.NoError(t, repo.Registrar(db, &DocumentoGerado{UUID: uuid.NewString(), Tipo: TipoProposta}))
	require.NoError(t, repo.Registrar(db, &DocumentoGerado{UUID: uuid.NewString(), Tipo: TipoContrato}))

	ontem := time.Now().Add(-24 * time.Hour)
	total, err := repo.ContarDesde(db, TipoProposta, ontem)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	total, err = repo.ContarDesde(db, TipoProposta, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, total)
}
