package tarefa

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/VetorDados/api-admin/internal/auth"
	"github.com/VetorDados/api-admin/internal/webhook"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Webhooks   *webhook.Dispatcher
}

func NewHandler(db *gorm.DB, webhooks *webhook.Dispatcher) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Webhooks: webhooks}
}

type atualizarStatusRequest struct {
	Status string `json:"status"`
}

// POST /tarefas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var t Tarefa
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(t.Titulo) == "" {
		http.Error(w, "título é obrigatório", http.StatusBadRequest)
		return
	}
	if t.ResponsavelID == 0 {
		if userID, ok := r.Context().Value(auth.UsuarioIDKey).(uint); ok {
			t.ResponsavelID = userID
		}
	}
	if err := h.Repository.Criar(h.DB, &t); err != nil {
		http.Error(w, "erro ao salvar tarefa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// GET /tarefas — filtros ?responsavel= e ?lead=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		tarefas []Tarefa
		err     error
	)
	switch {
	case r.URL.Query().Get("responsavel") != "":
		id, convErr := strconv.Atoi(r.URL.Query().Get("responsavel"))
		if convErr != nil {
			http.Error(w, "responsável inválido", http.StatusBadRequest)
			return
		}
		tarefas, err = h.Repository.ListarPorResponsavel(h.DB, uint(id))
	case r.URL.Query().Get("lead") != "":
		id, convErr := strconv.Atoi(r.URL.Query().Get("lead"))
		if convErr != nil {
			http.Error(w, "lead inválido", http.StatusBadRequest)
			return
		}
		tarefas, err = h.Repository.ListarPorLead(h.DB, uint(id))
	default:
		tarefas, err = h.Repository.ListarTodas(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar tarefas", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(tarefas)
}

// GET /tarefas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	t, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "tarefa não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(t)
}

// PUT /tarefas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var t Tarefa
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	t.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &t); err != nil {
		http.Error(w, "erro ao atualizar tarefa", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(t)
}

// PATCH /tarefas/{id}/status
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
	if req.Status == StatusConcluida {
		h.Webhooks.Disparar(h.DB, webhook.EventoTarefaConcluida, map[string]interface{}{"tarefaId": id})
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /tarefas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir tarefa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
