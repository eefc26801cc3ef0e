package conteudo

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

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

// GET /conteudo — lista os blocos no painel; ?publicados=true filtra
func (h *Handler) ListarBlocos(w http.ResponseWriter, r *http.Request) {
	somentePublicados := r.URL.Query().Get("publicados") == "true"
	blocos, err := h.Repository.ListarBlocos(h.DB, somentePublicados)
	if err != nil {
		http.Error(w, "erro ao listar conteúdo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(blocos)
}

// GET /site/conteudo — superfície pública do site: rascunhos nunca
// saem daqui, não importa a query string.
func (h *Handler) ListarPublicados(w http.ResponseWriter, r *http.Request) {
	blocos, err := h.Repository.ListarBlocos(h.DB, true)
	if err != nil {
		http.Error(w, "erro ao listar conteúdo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(blocos)
}

// GET /conteudo/{chave}
func (h *Handler) BuscarBloco(w http.ResponseWriter, r *http.Request) {
	chave := mux.Vars(r)["chave"]
	b, err := h.Repository.BuscarBlocoPorChave(h.DB, chave)
	if err != nil {
		http.Error(w, "bloco não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(b)
}

type salvarBlocoRequest struct {
	Chave     string `json:"chave"`
	Titulo    string `json:"titulo"`
	Corpo     string `json:"corpo"`
	Publicado *bool  `json:"publicado"`
}

// PUT /conteudo — cria ou atualiza um bloco pela chave. Sem o campo
// publicado no payload o bloco sai publicado; false explícito vale.
func (h *Handler) SalvarBloco(w http.ResponseWriter, r *http.Request) {
	var req salvarBlocoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Chave) == "" {
		http.Error(w, "chave é obrigatória", http.StatusBadRequest)
		return
	}
	b := BlocoConteudo{
		Chave:     req.Chave,
		Titulo:    req.Titulo,
		Corpo:     req.Corpo,
		Publicado: req.Publicado == nil || *req.Publicado,
	}
	if existente, err := h.Repository.BuscarBlocoPorChave(h.DB, b.Chave); err == nil {
		b.ID = existente.ID
	}
	if err := h.Repository.SalvarBloco(h.DB, &b); err != nil {
		http.Error(w, "erro ao salvar bloco", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(b)
}

// DELETE /conteudo/{id}
func (h *Handler) DeletarBloco(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.DeletarBloco(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir bloco", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GET /tema
func (h *Handler) BuscarTema(w http.ResponseWriter, r *http.Request) {
	t, err := h.Repository.BuscarTema(h.DB)
	if err != nil {
		// Sem tema salvo ainda: devolve um vazio para o editor.
		json.NewEncoder(w).Encode(Tema{})
		return
	}
	json.NewEncoder(w).Encode(t)
}

// PUT /tema
func (h *Handler) SalvarTema(w http.ResponseWriter, r *http.Request) {
	var t Tema
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.SalvarTema(h.DB, &t); err != nil {
		http.Error(w, "erro ao salvar tema", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(t)
}
