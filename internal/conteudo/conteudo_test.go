package conteudo

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/VetorDados/api-admin/internal/documento"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&BlocoConteudo{}, &Tema{}))
	return db
}

func TestEmpresaAtualSemTema(t *testing.T) {
	db := abrirBanco(t)
	assert.Equal(t, documento.EmpresaPadrao(), EmpresaAtual(db))
}

func TestEmpresaAtualMesclaTemaSobreOPadrao(t *testing.T) {
	db := abrirBanco(t)
	require.NoError(t, db.Create(&Tema{
		NomeEmpresa:   "Vetor Dados S.A.",
		CorPrimaria:   "#b03030",
		CorSecundaria: "#caa24a",
		FonteTitulos:  "Georgia, serif",
		LogoURL:       "https://cdn.exemplo.com/logo.png",
	}).Error)

	empresa := EmpresaAtual(db)
	assert.Equal(t, "Vetor Dados S.A.", empresa.Nome)
	assert.Equal(t, "#b03030", empresa.Cor)
	assert.Equal(t, "#caa24a", empresa.CorSecundaria)
	assert.Equal(t, "Georgia, serif", empresa.FonteTitulos)
	assert.Equal(t, "https://cdn.exemplo.com/logo.png", empresa.LogoURL)
	// Campos não configurados no tema mantêm o padrão.
	assert.Equal(t, documento.EmpresaPadrao().CNPJ, empresa.CNPJ)
	assert.Equal(t, documento.EmpresaPadrao().Email, empresa.Email)
}

func TestRepositoryBlocos(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	require.NoError(t, repo.SalvarBloco(db, &BlocoConteudo{Chave: "hero", Titulo: "Dados que viram decisão", Publicado: true}))
	require.NoError(t, repo.SalvarBloco(db, &BlocoConteudo{Chave: "sobre", Titulo: "Quem somos", Publicado: false}))

	bloco, err := repo.BuscarBlocoPorChave(db, "hero")
	require.NoError(t, err)
	assert.Equal(t, "Dados que viram decisão", bloco.Titulo)

	publicados, err := repo.ListarBlocos(db, true)
	require.NoError(t, err)
	require.Len(t, publicados, 1)
	assert.Equal(t, "hero", publicados[0].Chave)

	todos, err := repo.ListarBlocos(db, false)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestCriarBlocoNaoPublicadoPermanece(t *testing.T) {
	db := abrirBanco(t)

	require.NoError(t, db.Create(&BlocoConteudo{Chave: "rascunho", Titulo: "Em edição", Publicado: false}).Error)

	var salvo BlocoConteudo
	require.NoError(t, db.Where("chave = ?", "rascunho").First(&salvo).Error)
	assert.False(t, salvo.Publicado, "bloco criado como não publicado deve permanecer não publicado")
}

func TestSalvarTemaMantemLinhaUnica(t *testing.T) {
	db := abrirBanco(t)
	repo := NewRepository()

	require.NoError(t, repo.SalvarTema(db, &Tema{NomeEmpresa: "Primeira"}))
	require.NoError(t, repo.SalvarTema(db, &Tema{NomeEmpresa: "Segunda"}))

	var total int64
	require.NoError(t, db.Model(&Tema{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)

	assert.Equal(t, "Segunda", EmpresaAtual(db).Nome)
}
