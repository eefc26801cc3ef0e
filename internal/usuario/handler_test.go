package usuario

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VetorDados/api-admin/internal/auth"
	"github.com/VetorDados/api-admin/internal/utils"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Usuario{}))
	return db
}

func criarUsuarioDeTeste(t *testing.T, db *gorm.DB, email, senha string, admin bool) Usuario {
	t.Helper()
	hash, err := utils.HashSenha(senha)
	require.NoError(t, err)
	u := Usuario{Nome: "Ana", Email: email, Senha: hash, IsAdmin: admin}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestLogin(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")
	db := abrirBanco(t)
	h := NewHandler(db)
	u := criarUsuarioDeTeste(t, db, "ana@vetordados.com.br", "senha-forte", true)

	corpo, _ := json.Marshal(LoginRequest{Email: "ana@vetordados.com.br", Password: "senha-forte"})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(corpo))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp["token"])

	claims, err := auth.ParseAndValidate(resp["token"])
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestLoginSenhaErrada(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")
	db := abrirBanco(t)
	h := NewHandler(db)
	criarUsuarioDeTeste(t, db, "ana@vetordados.com.br", "senha-forte", false)

	corpo, _ := json.Marshal(LoginRequest{Email: "ana@vetordados.com.br", Password: "errada"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(corpo)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginEmailDesconhecido(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "segredo-de-teste")
	db := abrirBanco(t)
	h := NewHandler(db)

	corpo, _ := json.Marshal(LoginRequest{Email: "ninguem@acme.com", Password: "x"})
	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(corpo)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCriarUsuarioNaoExpoeSenha(t *testing.T) {
	db := abrirBanco(t)
	h := NewHandler(db)

	corpo, _ := json.Marshal(map[string]interface{}{
		"nome":  "Bruno",
		"email": "bruno@vetordados.com.br",
		"senha": "senha-forte",
	})
	rec := httptest.NewRecorder()
	h.CriarUsuario(rec, httptest.NewRequest(http.MethodPost, "/usuarios", bytes.NewReader(corpo)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "senha-forte")

	var salvo Usuario
	require.NoError(t, db.Where("email = ?", "bruno@vetordados.com.br").First(&salvo).Error)
	// A senha é persistida como hash bcrypt, nunca em claro.
	assert.NotEqual(t, "senha-forte", salvo.Senha)
	assert.True(t, utils.CheckSenha(salvo.Senha, "senha-forte"))
}

func TestCriarUsuarioSemSenhaGeraTemporaria(t *testing.T) {
	db := abrirBanco(t)
	h := NewHandler(db)

	corpo, _ := json.Marshal(map[string]interface{}{
		"nome":  "Carla",
		"email": "carla@vetordados.com.br",
	})
	rec := httptest.NewRecorder()
	h.CriarUsuario(rec, httptest.NewRequest(http.MethodPost, "/usuarios", bytes.NewReader(corpo)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		SenhaTemporaria string `json:"senhaTemporaria"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.SenhaTemporaria, 12)

	// A temporária devolvida na resposta é a que autentica o usuário.
	var salvo Usuario
	require.NoError(t, db.Where("email = ?", "carla@vetordados.com.br").First(&salvo).Error)
	assert.True(t, utils.CheckSenha(salvo.Senha, resp.SenhaTemporaria))
}
