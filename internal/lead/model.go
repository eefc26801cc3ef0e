package lead

import (
	"time"

	"github.com/VetorDados/api-admin/internal/comentario"
	"github.com/VetorDados/api-admin/internal/contrato"
	"github.com/VetorDados/api-admin/internal/proposta"
	"gorm.io/gorm"
)

// Funil de status de um lead.
const (
	StatusNovo        = "Novo"
	StatusContatado   = "Contatado"
	StatusQualificado = "Qualificado"
	StatusProposta    = "Proposta Enviada"
	StatusFechado     = "Fechado"
	StatusPerdido     = "Perdido"
)

// Lead representa um contato comercial captado pelo site ou cadastrado
// manualmente no painel.
type Lead struct {
	ID        uint           `gorm:"primaryKey" json:"leadId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Empresa   string `json:"empresa"`
	Documento string `gorm:"index" json:"documento"` // CNPJ ou CPF
	Cargo     string `json:"cargo"`
	UF        string `json:"uf"`

	Origem        string  `json:"origem"`    // "site", "indicação", "evento"...
	Interesse     string  `json:"interesse"` // código de serviço (ver documento.RotuloServico)
	Mensagem      string  `gorm:"type:text" json:"mensagem"`
	ValorEstimado float64 `json:"valorEstimado"`

	Status string `gorm:"size:50;default:'Novo';index" json:"status"`

	ResponsavelID uint `gorm:"index" json:"responsavelId"`

	Comentarios []comentario.Comentario `gorm:"foreignKey:LeadID" json:"comentarios"`
	Propostas   []proposta.Proposta     `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"propostas"`
	Contratos   []contrato.Contrato     `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE" json:"contratos"`
}
