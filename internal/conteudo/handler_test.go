package conteudo

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalvarBlocoRespeitaPublicadoFalse(t *testing.T) {
	db := abrirBanco(t)
	h := NewHandler(db)

	corpo, _ := json.Marshal(map[string]interface{}{
		"chave":     "sobre",
		"titulo":    "Quem somos",
		"publicado": false,
	})
	rec := httptest.NewRecorder()
	h.SalvarBloco(rec, httptest.NewRequest(http.MethodPut, "/conteudo", bytes.NewReader(corpo)))

	require.Equal(t, http.StatusOK, rec.Code)

	var salvo BlocoConteudo
	require.NoError(t, db.Where("chave = ?", "sobre").First(&salvo).Error)
	assert.False(t, salvo.Publicado)
}

func TestSalvarBlocoPublicadoPorPadrao(t *testing.T) {
	db := abrirBanco(t)
	h := NewHandler(db)

	corpo, _ := json.Marshal(map[string]interface{}{"chave": "hero", "titulo": "Dados que viram decisão"})
	rec := httptest.NewRecorder()
	h.SalvarBloco(rec, httptest.NewRequest(http.MethodPut, "/conteudo", bytes.NewReader(corpo)))

	require.Equal(t, http.StatusOK, rec.Code)

	var salvo BlocoConteudo
	require.NoError(t, db.Where("chave = ?", "hero").First(&salvo).Error)
	assert.True(t, salvo.Publicado)
}

func TestSalvarBlocoAtualizaPelaChave(t *testing.T) {
	db := abrirBanco(t)
	h := NewHandler(db)

	primeiro, _ := json.Marshal(map[string]interface{}{"chave": "hero", "titulo": "Versão 1"})
	rec := httptest.NewRecorder()
	h.SalvarBloco(rec, httptest.NewRequest(http.MethodPut, "/conteudo", bytes.NewReader(primeiro)))
	require.Equal(t, http.StatusOK, rec.Code)

	segundo, _ := json.Marshal(map[string]interface{}{"chave": "hero", "titulo": "Versão 2", "publicado": false})
	rec = httptest.NewRecorder()
	h.SalvarBloco(rec, httptest.NewRequest(http.MethodPut, "/conteudo", bytes.NewReader(segundo)))
	require.Equal(t, http.StatusOK, rec.Code)

	var total int64
	require.NoError(t, db.Model(&BlocoConteudo{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)

	var salvo BlocoConteudo
	require.NoError(t, db.Where("chave = ?", "hero").First(&salvo).Error)
	assert.Equal(t, "Versão 2", salvo.Titulo)
	assert.False(t, salvo.Publicado)
}

func TestListarPublicadosNaoVazaRascunho(t *testing.T) {
	db := abrirBanco(t)
	h := NewHandler(db)

	require.NoError(t, db.Create(&BlocoConteudo{Chave: "hero", Titulo: "Público", Publicado: true}).Error)
	require.NoError(t, db.Create(&BlocoConteudo{Chave: "segredo", Titulo: "Ainda em edição", Publicado: false}).Error)

	// Sem query string nenhuma: a rota do site nunca devolve rascunho.
	rec := httptest.NewRecorder()
	h.ListarPublicados(rec, httptest.NewRequest(http.MethodGet, "/site/conteudo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var blocos []BlocoConteudo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&blocos))
	require.Len(t, blocos, 1)
	assert.Equal(t, "hero", blocos[0].Chave)
	assert.NotContains(t, rec.Body.String(), "segredo")
}
