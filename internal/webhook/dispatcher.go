package webhook

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"
)

// Dispatcher envia notificações aos webhooks cadastrados. O envio é
// fire-and-forget: falha vira log, nunca erro para o caller.
type Dispatcher struct {
	Cliente *http.Client
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{Cliente: &http.Client{Timeout: 10 * time.Second}}
}

// Disparar notifica todos os endpoints ativos inscritos no evento.
func (d *Dispatcher) Disparar(db *gorm.DB, evento string, dados map[string]interface{}) {
	var hooks []Webhook
	if err := db.Where("evento = ? AND ativo = ?", evento, true).Find(&hooks).Error; err != nil {
		log.Printf("Erro ao buscar webhooks do evento %s: %v", evento, err)
		return
	}
	if len(hooks) == 0 {
		return
	}

	payload := map[string]interface{}{
		"evento": evento,
		"dados":  dados,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Erro ao montar payload do webhook: %v", err)
		return
	}

	for _, hook := range hooks {
		go d.enviar(hook, body)
	}
}

func (d *Dispatcher) enviar(hook Webhook, body []byte) {
	resp, err := d.Cliente.Post(hook.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook %s: %v", hook.Nome, err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Webhook %s respondeu %d", hook.Nome, resp.StatusCode)
	}
}
