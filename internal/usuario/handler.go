package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/VetorDados/api-admin/internal/auth"
	"github.com/VetorDados/api-admin/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// request DTOs
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUsuarioRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Foto      string `json:"foto"`
	Senha     string `json:"senha"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.CheckSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarUsuario cadastra um novo usuário do painel (somente admin)
func (h *Handler) CriarUsuario(w http.ResponseWriter, r *http.Request) {
	var req createUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Sem senha no payload o cadastro gera uma temporária, devolvida uma
	// única vez na resposta para o admin repassar ao novo usuário.
	senha := req.Senha
	var senhaTemporaria string
	if senha == "" {
		temp, err := utils.GerarSenhaTemporaria()
		if err != nil {
			http.Error(w, "erro ao gerar senha temporária", http.StatusInternalServerError)
			return
		}
		senha = temp
		senhaTemporaria = temp
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Email:     req.Email,
		Telefone:  req.Telefone,
		Foto:      req.Foto,
		Senha:     hash,
		IsAdmin:   req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if senhaTemporaria != "" {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"usuario":         u,
			"senhaTemporaria": senhaTemporaria,
		})
		return
	}
	json.NewEncoder(w).Encode(u)
}

// ListarUsuarios retorna todos os usuários (admin) ou o próprio registro
func (h *Handler) ListarUsuarios(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	if !isAdmin {
		u, err := h.Repository.BuscarPorID(h.DB, userID)
		if err != nil {
			http.Error(w, "usuário não encontrado", http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode([]Usuario{*u})
		return
	}

	usuarios, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(usuarios)
}

// BuscarPorID retorna um usuário específico
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarUsuario altera dados de um usuário existente
func (h *Handler) AtualizarUsuario(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)
	isAdmin := r.Context().Value(auth.IsAdminKey).(bool)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !isAdmin && uint(id) != userID {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dados Usuario
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("usuário atualizado com sucesso"))
}

// DeletarUsuario remove um usuário (somente admin)
func (h *Handler) DeletarUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "erro ao excluir usuário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("usuário excluído com sucesso"))
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UsuarioIDKey).(uint)

	var u Usuario
	if err := h.DB.First(&u, userID).Error; err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}
