package webhook

import "gorm.io/gorm"

// Eventos que podem disparar webhooks.
const (
	EventoLeadCriado      = "lead.criado"
	EventoLeadDuplicado   = "lead.documento-duplicado"
	EventoPropostaGerada  = "proposta.gerada"
	EventoContratoGerado  = "contrato.gerado"
	EventoTarefaConcluida = "tarefa.concluida"
)

// Webhook é um endpoint externo registrado no admin para receber
// notificações de um evento.
type Webhook struct {
	gorm.Model
	Nome   string `gorm:"size:255;not null" json:"nome"`
	URL    string `gorm:"not null" json:"url"`
	Evento string `gorm:"size:100;not null;index" json:"evento"`
	Ativo  bool   `gorm:"not null" json:"ativo"`
}
