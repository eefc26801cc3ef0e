package tarefa

import (
	"time"

	"gorm.io/gorm"
)

// Status e prioridades de tarefa.
const (
	StatusPendente  = "Pendente"
	StatusAndamento = "Em Andamento"
	StatusConcluida = "Concluída"

	PrioridadeBaixa = "Baixa"
	PrioridadeMedia = "Média"
	PrioridadeAlta  = "Alta"
)

// Tarefa é um item de trabalho do painel, opcionalmente vinculado a um
// lead.
type Tarefa struct {
	gorm.Model
	Titulo        string     `gorm:"size:255;not null" json:"titulo"`
	Descricao     string     `gorm:"type:text" json:"descricao"`
	ResponsavelID uint       `gorm:"index" json:"responsavelId"`
	LeadID        *uint      `gorm:"index" json:"leadId,omitempty"`
	Prazo         *time.Time `json:"prazo,omitempty"`
	Status        string     `gorm:"size:50;default:'Pendente';index" json:"status"`
	Prioridade    string     `gorm:"size:20;default:'Média'" json:"prioridade"`
}
