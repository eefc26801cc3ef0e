package lead

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/VetorDados/api-admin/internal/webhook"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Webhooks   *webhook.Dispatcher
}

// NewHandler cria um novo handler de leads
func NewHandler(db *gorm.DB, webhooks *webhook.Dispatcher) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Webhooks: webhooks}
}

// POST /leads
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var l Lead
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(l.Nome) == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if l.Status == "" {
		l.Status = StatusNovo
	}

	duplicado, _ := h.Repository.ExisteDocumento(h.DB, l.Documento)

	if err := h.Repository.Criar(h.DB, &l); err != nil {
		http.Error(w, "erro ao salvar lead", http.StatusInternalServerError)
		return
	}

	h.Webhooks.Disparar(h.DB, webhook.EventoLeadCriado, map[string]interface{}{
		"leadId": l.ID,
		"nome":   l.Nome,
	})
	if duplicado {
		// alerta de documento já cadastrado em outro lead
		h.Webhooks.Disparar(h.DB, webhook.EventoLeadDuplicado, map[string]interface{}{
			"leadId":    l.ID,
			"documento": l.Documento,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// GET /leads — aceita filtros ?status= e ?responsavel=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		leads []Lead
		err   error
	)
	switch {
	case r.URL.Query().Get("status") != "":
		leads, err = h.Repository.ListarPorStatus(h.DB, r.URL.Query().Get("status"))
	case r.URL.Query().Get("responsavel") != "":
		id, convErr := strconv.Atoi(r.URL.Query().Get("responsavel"))
		if convErr != nil {
			http.Error(w, "responsável inválido", http.StatusBadRequest)
			return
		}
		leads, err = h.Repository.ListarPorResponsavel(h.DB, uint(id))
	default:
		leads, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar leads", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(leads)
}

// GET /leads/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "lead não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(l)
}

// PUT /leads/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var l Lead
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	l.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &l); err != nil {
		http.Error(w, "erro ao atualizar lead", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(l)
}

// PATCH /leads/{id}/status
func (h *Handler) AtualizarStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req atualizarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Status) == "" {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.AtualizarStatus(h.DB, uint(id), req.Status); err != nil {
		http.Error(w, "erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /leads/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir lead", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
