package relatorio

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VetorDados/api-admin/internal/comentario"
	"github.com/VetorDados/api-admin/internal/contrato"
	"github.com/VetorDados/api-admin/internal/geracao"
	"github.com/VetorDados/api-admin/internal/lead"
	"github.com/VetorDados/api-admin/internal/proposta"
	"github.com/VetorDados/api-admin/internal/tarefa"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&lead.Lead{}, &comentario.Comentario{}, &proposta.Proposta{},
		&contrato.Contrato{}, &tarefa.Tarefa{}, &geracao.DocumentoGerado{},
	))
	return db
}

func ptrFloat(v float64) *float64 { return &v }

func TestMontarResumo(t *testing.T) {
	db := abrirBanco(t)

	require.NoError(t, db.Create(&lead.Lead{Nome: "A", Status: lead.StatusNovo}).Error)
	require.NoError(t, db.Create(&lead.Lead{Nome: "B", Status: lead.StatusQualificado}).Error)
	require.NoError(t, db.Create(&lead.Lead{Nome: "C", Status: lead.StatusQualificado}).Error)

	// Só propostas em aberto entram no valor em negociação; o valor
	// final tem precedência sobre o total quando presente.
	require.NoError(t, db.Create(&proposta.Proposta{LeadID: 1, Titulo: "P1", Status: proposta.StatusEnviada, ValorTotal: ptrFloat(10000), ValorFinal: ptrFloat(9000)}).Error)
	require.NoError(t, db.Create(&proposta.Proposta{LeadID: 2, Titulo: "P2", Status: proposta.StatusRascunho, ValorTotal: ptrFloat(5000)}).Error)
	require.NoError(t, db.Create(&proposta.Proposta{LeadID: 3, Titulo: "P3", Status: proposta.StatusRecusada, ValorTotal: ptrFloat(50000)}).Error)

	require.NoError(t, db.Create(&contrato.Contrato{LeadID: 1, Titulo: "C1", Status: contrato.StatusAssinado}).Error)
	require.NoError(t, db.Create(&contrato.Contrato{LeadID: 2, Titulo: "C2", Status: contrato.StatusMinuta}).Error)

	require.NoError(t, db.Create(&tarefa.Tarefa{Titulo: "T1", Status: tarefa.StatusPendente}).Error)
	require.NoError(t, db.Create(&tarefa.Tarefa{Titulo: "T2", Status: tarefa.StatusConcluida}).Error)

	require.NoError(t, db.Create(&geracao.DocumentoGerado{UUID: "u1", Tipo: geracao.TipoProposta}).Error)

	resumo, err := NewRepository().MontarResumo(db)
	require.NoError(t, err)

	assert.Equal(t, int64(3), resumo.TotalLeads)
	assert.Equal(t, int64(2), resumo.LeadsPorStatus[lead.StatusQualificado])
	assert.Equal(t, int64(1), resumo.LeadsPorStatus[lead.StatusNovo])
	assert.Equal(t, int64(3), resumo.LeadsNoMes)
	assert.Equal(t, float64(14000), resumo.ValorEmPropostas)
	assert.Equal(t, int64(1), resumo.PropostasPorStatus[proposta.StatusEnviada])
	assert.Equal(t, int64(1), resumo.ContratosAtivos)
	assert.Equal(t, int64(1), resumo.TarefasPendentes)
	assert.Equal(t, int64(1), resumo.DocumentosNoMes)
}

func TestMontarResumoBancoVazio(t *testing.T) {
	db := abrirBanco(t)

	resumo, err := NewRepository().MontarResumo(db)
	require.NoError(t, err)

	assert.Zero(t, resumo.TotalLeads)
	assert.Zero(t, resumo.ValorEmPropostas)
	assert.Zero(t, resumo.ContratosAtivos)
	assert.Empty(t, resumo.LeadsPorStatus)
}
