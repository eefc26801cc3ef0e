package contrato

import (
	"github.com/VetorDados/api-admin/internal/documento"
	"gorm.io/gorm"
)

// Status do ciclo de vida de um contrato.
const (
	StatusMinuta    = "Minuta"
	StatusAssinado  = "Assinado"
	StatusEncerrado = "Encerrado"
	StatusCancelado = "Cancelado"
)

// Contrato é o contrato de prestação de serviços persistido no CRM,
// normalmente criado a partir de uma proposta aprovada.
type Contrato struct {
	gorm.Model
	LeadID     uint  `gorm:"index" json:"leadId"`
	PropostaID *uint `gorm:"index" json:"propostaId,omitempty"`

	Numero      string `gorm:"size:50" json:"numero"`
	Titulo      string `gorm:"size:255;not null" json:"titulo"`
	TipoServico string `gorm:"size:50" json:"tipoServico"`

	ClienteNome      string `json:"clienteNome"`
	ClienteEmpresa   string `json:"clienteEmpresa"`
	ClienteDocumento string `json:"clienteDocumento"`

	ValorTotal         *float64 `json:"valorTotal"`
	ValorFinal         *float64 `json:"valorFinal"`
	DescontoPercentual *float64 `json:"descontoPercentual"`
	PrazoExecucaoDias  *int     `json:"prazoExecucaoDias"`

	Escopo      []documento.ItemEscopo     `gorm:"serializer:json" json:"escopo"`
	Entregaveis []documento.ItemEscopo     `gorm:"serializer:json" json:"entregaveis"`
	Cronograma  []documento.FaseCronograma `gorm:"serializer:json" json:"cronograma"`

	TermosCondicoes string `gorm:"type:text" json:"termosCondicoes"`
	DataAprovacao   string `gorm:"size:20" json:"dataAprovacao"`

	Status string `gorm:"size:50;default:'Minuta';index" json:"status"`
}

// Dados converte o contrato persistido no payload puro do renderizador.
func (c *Contrato) Dados() documento.DadosDocumento {
	return documento.DadosDocumento{
		Numero:             c.Numero,
		Titulo:             c.Titulo,
		TipoServico:        c.TipoServico,
		ClienteNome:        c.ClienteNome,
		ClienteEmpresa:     c.ClienteEmpresa,
		ClienteDocumento:   c.ClienteDocumento,
		ValorTotal:         c.ValorTotal,
		ValorFinal:         c.ValorFinal,
		DescontoPercentual: c.DescontoPercentual,
		PrazoExecucaoDias:  c.PrazoExecucaoDias,
		Escopo:             c.Escopo,
		Entregaveis:        c.Entregaveis,
		Cronograma:         c.Cronograma,
		TermosCondicoes:    c.TermosCondicoes,
		DataAprovacao:      c.DataAprovacao,
	}
}
