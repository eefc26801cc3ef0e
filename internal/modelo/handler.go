package modelo

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

// POST /campos
func (h *Handler) CriarCampo(w http.ResponseWriter, r *http.Request) {
	var c CampoModelo
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if c.Nome == "" || c.Label == "" {
		http.Error(w, "nome e label são obrigatórios", http.StatusBadRequest)
		return
	}
	if c.FonteDados == "" {
		c.FonteDados = FonteManual
	}
	if err := h.Repository.CriarCampo(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar campo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /campos
func (h *Handler) ListarCampos(w http.ResponseWriter, r *http.Request) {
	campos, err := h.Repository.ListarCampos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar campos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(campos)
}

// PUT /campos/{id}
func (h *Handler) AtualizarCampo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var c CampoModelo
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	c.ID = uint(id)
	if err := h.Repository.AtualizarCampo(h.DB, &c); err != nil {
		http.Error(w, "erro ao atualizar campo", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// DELETE /campos/{id}
func (h *Handler) DeletarCampo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.DeletarCampo(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir campo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// POST /modelos
func (h *Handler) CriarModelo(w http.ResponseWriter, r *http.Request) {
	var m ModeloDocumento
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.CriarModelo(h.DB, &m); err != nil {
		http.Error(w, "erro ao salvar modelo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

// GET /modelos
func (h *Handler) ListarModelos(w http.ResponseWriter, r *http.Request) {
	modelos, err := h.Repository.ListarModelos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar modelos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(modelos)
}

// GET /modelos/{id}
func (h *Handler) BuscarModeloPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repository.BuscarModeloPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "modelo não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(m)
}

// PUT /modelos/{id}
func (h *Handler) AtualizarModelo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var m ModeloDocumento
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	m.ID = uint(id)
	if err := h.Repository.AtualizarModelo(h.DB, &m); err != nil {
		http.Error(w, "erro ao atualizar modelo", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(m)
}

// DELETE /modelos/{id}
func (h *Handler) DeletarModelo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.DeletarModelo(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir modelo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// POST /modelos/{id}/preview — aplica os campos cadastrados sobre o
// corpo do modelo e devolve o HTML interpolado.
func (h *Handler) PreviewModelo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repository.BuscarModeloPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "modelo não encontrado", http.StatusNotFound)
		return
	}
	campos, err := h.Repository.ListarCampos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar campos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"conteudo": RenderizarPreview(m.Conteudo, campos),
	})
}

type gerarModeloRequest struct {
	Valores map[string]string `json:"valores"`
}

// POST /modelos/{id}/gerar — substitui os tokens pelos valores reais já
// resolvidos pelo caller (geração final, não pré-visualização). Tokens
// sem valor informado ficam intactos no resultado.
func (h *Handler) GerarModelo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repository.BuscarModeloPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "modelo não encontrado", http.StatusNotFound)
		return
	}
	var req gerarModeloRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"conteudo": RenderizarComValores(m.Conteudo, req.Valores),
	})
}

// POST /modelos/{id}/campos/{campoId} — insere o token do campo no fim
// do conteúdo do modelo e devolve o token para cópia no front-end.
func (h *Handler) InserirCampoNoModelo(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	campoID, err := strconv.Atoi(vars["campoId"])
	if err != nil {
		http.Error(w, "ID de campo inválido", http.StatusBadRequest)
		return
	}
	m, err := h.Repository.BuscarModeloPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "modelo não encontrado", http.StatusNotFound)
		return
	}
	campo, err := h.Repository.BuscarCampoPorID(h.DB, uint(campoID))
	if err != nil {
		http.Error(w, "campo não encontrado", http.StatusNotFound)
		return
	}
	conteudo, token := InserirCampo(m.Conteudo, *campo)
	m.Conteudo = conteudo
	if err := h.Repository.AtualizarModelo(h.DB, m); err != nil {
		http.Error(w, "erro ao atualizar modelo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token, "conteudo": m.Conteudo})
}
