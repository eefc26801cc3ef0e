package webhook

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

type criarWebhookRequest struct {
	Nome   string `json:"nome"`
	URL    string `json:"url"`
	Evento string `json:"evento"`
	Ativo  *bool  `json:"ativo"`
}

// POST /webhooks — sem o campo ativo no payload o webhook nasce ativo;
// false explícito cadastra desligado.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req criarWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.URL == "" || req.Evento == "" {
		http.Error(w, "url e evento são obrigatórios", http.StatusBadRequest)
		return
	}
	wh := Webhook{
		Nome:   req.Nome,
		URL:    req.URL,
		Evento: req.Evento,
		Ativo:  req.Ativo == nil || *req.Ativo,
	}
	if err := h.Repository.Criar(h.DB, &wh); err != nil {
		http.Error(w, "erro ao salvar webhook", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(wh)
}

// GET /webhooks
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	hooks, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar webhooks", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(hooks)
}

// PUT /webhooks/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var wh Webhook
	if err := json.NewDecoder(r.Body).Decode(&wh); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	wh.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &wh); err != nil {
		http.Error(w, "erro ao atualizar webhook", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(wh)
}

// DELETE /webhooks/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir webhook", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
