package geracao

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de documento gerado.
const (
	TipoProposta = "proposta"
	TipoContrato = "contrato"
)

// DocumentoGerado registra cada geração de proposta ou contrato, com
// um snapshot dos campos exibidos, para auditoria e para o dashboard.
type DocumentoGerado struct {
	gorm.Model
	UUID          string  `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	Tipo          string  `gorm:"size:20;not null;index" json:"tipo"`
	LeadID        uint    `gorm:"index" json:"leadId"`
	OrigemID      uint    `gorm:"index" json:"origemId"` // ID da proposta ou do contrato
	Titulo        string  `gorm:"size:255" json:"titulo"`
	ClienteNome   string  `gorm:"size:255" json:"clienteNome"`
	ValorSnapshot float64 `json:"valorSnapshot"`
	GeradoPor     uint    `json:"geradoPor"`
}

type Repository interface {
	Registrar(db *gorm.DB, d *DocumentoGerado) error
	ListarPorOrigem(db *gorm.DB, tipo string, origemID uint) ([]DocumentoGerado, error)
	ContarDesde(db *gorm.DB, tipo string, desde time.Time) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Registrar(db *gorm.DB, d *DocumentoGerado) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) ListarPorOrigem(db *gorm.DB, tipo string, origemID uint) ([]DocumentoGerado, error) {
	var docs []DocumentoGerado
	err := db.Where("tipo = ? AND origem_id = ?", tipo, origemID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *repositoryImpl) ContarDesde(db *gorm.DB, tipo string, desde time.Time) (int64, error) {
	var total int64
	err := db.Model(&DocumentoGerado{}).Where("tipo = ? AND created_at >= ?", tipo, desde).Count(&total).Error
	return total, err
}
