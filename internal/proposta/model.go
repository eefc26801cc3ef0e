package proposta

import (
	"time"

	"github.com/VetorDados/api-admin/internal/documento"
	"gorm.io/gorm"
)

// Status do ciclo de vida de uma proposta.
const (
	StatusRascunho = "Rascunho"
	StatusEnviada  = "Enviada"
	StatusAprovada = "Aprovada"
	StatusRecusada = "Recusada"
)

// Proposta é a proposta comercial persistida no CRM. Os campos
// estruturados (escopo, entregáveis, cronograma) são serializados em
// JSON na mesma coluna, como os anexos múltiplos do restante do
// sistema.
type Proposta struct {
	gorm.Model
	LeadID uint `gorm:"index" json:"leadId"`

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

	TermosCondicoes  string `gorm:"type:text" json:"termosCondicoes"`
	ValidadeProposta string `gorm:"size:20" json:"validadeProposta"`

	Status     string     `gorm:"size:50;default:'Rascunho';index" json:"status"`
	EnviadaEm  *time.Time `json:"enviadaEm,omitempty"`
	AprovadaEm *time.Time `json:"aprovadaEm,omitempty"`
}

// Dados converte a proposta persistida no payload puro que o
// renderizador consome.
func (p *Proposta) Dados() documento.DadosDocumento {
	return documento.DadosDocumento{
		Numero:             p.Numero,
		Titulo:             p.Titulo,
		TipoServico:        p.TipoServico,
		ClienteNome:        p.ClienteNome,
		ClienteEmpresa:     p.ClienteEmpresa,
		ClienteDocumento:   p.ClienteDocumento,
		ValorTotal:         p.ValorTotal,
		ValorFinal:         p.ValorFinal,
		DescontoPercentual: p.DescontoPercentual,
		PrazoExecucaoDias:  p.PrazoExecucaoDias,
		Escopo:             p.Escopo,
		Entregaveis:        p.Entregaveis,
		Cronograma:         p.Cronograma,
		TermosCondicoes:    p.TermosCondicoes,
		ValidadeProposta:   p.ValidadeProposta,
	}
}
