package proposta

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/VetorDados/api-admin/internal/auth"
	"github.com/VetorDados/api-admin/internal/conteudo"
	"github.com/VetorDados/api-admin/internal/documento"
	"github.com/VetorDados/api-admin/internal/geracao"
	"github.com/VetorDados/api-admin/internal/impressao"
	"github.com/VetorDados/api-admin/internal/webhook"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Geracoes    geracao.Repository
	Webhooks    *webhook.Dispatcher
	Despachante *impressao.Despachante
}

func NewHandler(db *gorm.DB, webhooks *webhook.Dispatcher, despachante *impressao.Despachante) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(),
		Geracoes:    geracao.NewRepository(),
		Webhooks:    webhooks,
		Despachante: despachante,
	}
}

// POST /leads/{id}/propostas
func (h *Handler) CriarParaLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var p Proposta
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	p.LeadID = uint(leadID)
	if p.Status == "" {
		p.Status = StatusRascunho
	}
	if err := h.Repository.Criar(h.DB, &p); err != nil {
		http.Error(w, "erro ao salvar proposta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /propostas — filtro ?lead=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		propostas []Proposta
		err       error
	)
	if leadParam := r.URL.Query().Get("lead"); leadParam != "" {
		id, convErr := strconv.Atoi(leadParam)
		if convErr != nil {
			http.Error(w, "lead inválido", http.StatusBadRequest)
			return
		}
		propostas, err = h.Repository.ListarPorLead(h.DB, uint(id))
	} else {
		propostas, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar propostas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(propostas)
}

// GET /propostas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "proposta não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// PUT /propostas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var p Proposta
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	p.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &p); err != nil {
		http.Error(w, "erro ao atualizar proposta", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(p)
}

// PATCH /propostas/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarStatus(h.DB, uint(id), req.Status); err != nil {
		http.Error(w, "erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /propostas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir proposta", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GET /propostas/{id}/geracoes — histórico de documentos gerados para a
// proposta, do mais recente para o mais antigo.
func (h *Handler) ListarGeracoes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	docs, err := h.Geracoes.ListarPorOrigem(h.DB, geracao.TipoProposta, uint(id))
	if err != nil {
		http.Error(w, "erro ao listar gerações", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(docs)
}

// POST /propostas/{id}/documento — renderiza a proposta em HTML,
// registra a geração e despacha para o destino de impressão quando
// configurado. O HTML é devolvido na resposta para a pré-visualização
// do admin.
func (h *Handler) GerarDocumento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "proposta não encontrada", http.StatusNotFound)
		return
	}

	empresa := conteudo.EmpresaAtual(h.DB)
	html := documento.RenderizarProposta(p.Dados(), empresa)

	registro := geracao.DocumentoGerado{
		UUID:     uuid.NewString(),
		Tipo:     geracao.TipoProposta,
		LeadID:   p.LeadID,
		OrigemID: p.ID,
		Titulo:   p.Titulo,
	}
	if p.ClienteNome != "" {
		registro.ClienteNome = p.ClienteNome
	}
	if p.ValorFinal != nil {
		registro.ValorSnapshot = *p.ValorFinal
	} else if p.ValorTotal != nil {
		registro.ValorSnapshot = *p.ValorTotal
	}
	if userID, ok := r.Context().Value(auth.UsuarioIDKey).(uint); ok {
		registro.GeradoPor = userID
	}
	if err := h.Geracoes.Registrar(h.DB, &registro); err != nil {
		http.Error(w, "erro ao registrar geração", http.StatusInternalServerError)
		return
	}

	if h.Despachante != nil {
		doc := impressao.Documento{ID: registro.UUID, Titulo: p.Titulo, HTML: html}
		if err := h.Despachante.Despachar(r.Context(), doc); err != nil {
			// A geração em si funcionou; só a entrega ao destino falhou.
			log.Printf("Erro ao despachar proposta %d para impressão: %v", p.ID, err)
		}
	}

	h.Webhooks.Disparar(h.DB, webhook.EventoPropostaGerada, map[string]interface{}{
		"propostaId": p.ID,
		"leadId":     p.LeadID,
		"uuid":       registro.UUID,
	})

	if p.Status == StatusRascunho {
		agora := time.Now()
		p.Status = StatusEnviada
		p.EnviadaEm = &agora
		if err := h.Repository.Atualizar(h.DB, p); err != nil {
			log.Printf("Erro ao marcar proposta %d como enviada: %v", p.ID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"uuid": registro.UUID,
		"html": html,
	})
}
