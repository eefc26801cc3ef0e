package relatorio

import (
	"time"

	"github.com/VetorDados/api-admin/internal/contrato"
	"github.com/VetorDados/api-admin/internal/geracao"
	"github.com/VetorDados/api-admin/internal/lead"
	"github.com/VetorDados/api-admin/internal/proposta"
	"github.com/VetorDados/api-admin/internal/tarefa"
	"gorm.io/gorm"
)

type Repository interface {
	MontarResumo(db *gorm.DB) (*ResumoDashboard, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

type contagemStatus struct {
	Status string
	Total  int64
}

func contarPorStatus(db *gorm.DB, model interface{}) (map[string]int64, error) {
	var linhas []contagemStatus
	err := db.Model(model).Select("status, count(*) as total").Group("status").Scan(&linhas).Error
	if err != nil {
		return nil, err
	}
	resultado := make(map[string]int64, len(linhas))
	for _, l := range linhas {
		resultado[l.Status] = l.Total
	}
	return resultado, nil
}

func (r *repositoryImpl) MontarResumo(db *gorm.DB) (*ResumoDashboard, error) {
	resumo := &ResumoDashboard{}
	inicioMes := time.Date(time.Now().Year(), time.Now().Month(), 1, 0, 0, 0, 0, time.Local)

	if err := db.Model(&lead.Lead{}).Count(&resumo.TotalLeads).Error; err != nil {
		return nil, err
	}
	porStatus, err := contarPorStatus(db, &lead.Lead{})
	if err != nil {
		return nil, err
	}
	resumo.LeadsPorStatus = porStatus

	if err := db.Model(&lead.Lead{}).Where("created_at >= ?", inicioMes).Count(&resumo.LeadsNoMes).Error; err != nil {
		return nil, err
	}

	propostasPorStatus, err := contarPorStatus(db, &proposta.Proposta{})
	if err != nil {
		return nil, err
	}
	resumo.PropostasPorStatus = propostasPorStatus

	if err := db.Model(&proposta.Proposta{}).
		Where("status IN ?", []string{proposta.StatusRascunho, proposta.StatusEnviada}).
		Select("COALESCE(SUM(COALESCE(valor_final, valor_total)), 0)").
		Scan(&resumo.ValorEmPropostas).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&contrato.Contrato{}).Where("status = ?", contrato.StatusAssinado).Count(&resumo.ContratosAtivos).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&tarefa.Tarefa{}).Where("status <> ?", tarefa.StatusConcluida).Count(&resumo.TarefasPendentes).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&geracao.DocumentoGerado{}).Where("created_at >= ?", inicioMes).Count(&resumo.DocumentosNoMes).Error; err != nil {
		return nil, err
	}

	return resumo, nil
}
