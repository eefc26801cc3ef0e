package comentario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/VetorDados/api-admin/internal/auth"
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

type atualizarComentarioRequest struct {
	Texto string `json:"texto"`
}

// POST /leads/{id}/comentarios
func (h *Handler) CriarParaLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var c Comentario
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.LeadID = uint(leadID)
	if userID, ok := r.Context().Value(auth.UsuarioIDKey).(uint); ok {
		c.Autor = userID
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar comentário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /leads/{id}/comentarios
func (h *Handler) ListarPorLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorLead(h.DB, uint(leadID))
	if err != nil {
		http.Error(w, "erro ao listar comentários", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(list)
}

// PUT /comentarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var req atualizarComentarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), req.Texto); err != nil {
		http.Error(w, "erro ao atualizar comentário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /comentarios/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Remover(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir comentário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
