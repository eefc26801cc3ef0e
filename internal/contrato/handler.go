package contrato

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

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

// POST /leads/{id}/contratos
func (h *Handler) CriarParaLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.LeadID = uint(leadID)
	if c.Status == "" {
		c.Status = StatusMinuta
	}
	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "erro ao salvar contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// GET /contratos — filtro ?lead=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	var (
		contratos []Contrato
		err       error
	)
	if leadParam := r.URL.Query().Get("lead"); leadParam != "" {
		id, convErr := strconv.Atoi(leadParam)
		if convErr != nil {
			http.Error(w, "lead inválido", http.StatusBadRequest)
			return
		}
		contratos, err = h.Repository.ListarPorLead(h.DB, uint(id))
	} else {
		contratos, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(contratos)
}

// GET /contratos/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var c Contrato
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	c.ID = uint(id)
	if err := h.Repository.Atualizar(h.DB, &c); err != nil {
		http.Error(w, "erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(c)
}

// DELETE /contratos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GET /contratos/{id}/geracoes — histórico de documentos gerados para o
// contrato, do mais recente para o mais antigo.
func (h *Handler) ListarGeracoes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	docs, err := h.Geracoes.ListarPorOrigem(h.DB, geracao.TipoContrato, uint(id))
	if err != nil {
		http.Error(w, "erro ao listar gerações", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(docs)
}

// POST /contratos/{id}/documento — renderiza o contrato em HTML,
// registra a geração e despacha para impressão.
func (h *Handler) GerarDocumento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}

	empresa := conteudo.EmpresaAtual(h.DB)
	html := documento.RenderizarContrato(c.Dados(), empresa)

	registro := geracao.DocumentoGerado{
		UUID:        uuid.NewString(),
		Tipo:        geracao.TipoContrato,
		LeadID:      c.LeadID,
		OrigemID:    c.ID,
		Titulo:      c.Titulo,
		ClienteNome: c.ClienteNome,
	}
	if c.ValorFinal != nil {
		registro.ValorSnapshot = *c.ValorFinal
	} else if c.ValorTotal != nil {
		registro.ValorSnapshot = *c.ValorTotal
	}
	if userID, ok := r.Context().Value(auth.UsuarioIDKey).(uint); ok {
		registro.GeradoPor = userID
	}
	if err := h.Geracoes.Registrar(h.DB, &registro); err != nil {
		http.Error(w, "erro ao registrar geração", http.StatusInternalServerError)
		return
	}

	if h.Despachante != nil {
		doc := impressao.Documento{ID: registro.UUID, Titulo: c.Titulo, HTML: html}
		if err := h.Despachante.Despachar(r.Context(), doc); err != nil {
			log.Printf("Erro ao despachar contrato %d para impressão: %v", c.ID, err)
		}
	}

	h.Webhooks.Disparar(h.DB, webhook.EventoContratoGerado, map[string]interface{}{
		"contratoId": c.ID,
		"leadId":     c.LeadID,
		"uuid":       registro.UUID,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"uuid": registro.UUID,
		"html": html,
	})
}
