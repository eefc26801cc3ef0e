package documento

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMontarPaginaCompleta(t *testing.T) {
	doc := MontarPagina(OpcoesPagina{
		Titulo:      "Proposta Comercial",
		Conteudo:    `<div class="secao"><p>corpo</p></div>`,
		LogoURL:     "https://cdn.exemplo.com/logo.png",
		NomeEmpresa: "Vetor Dados Consultoria",
		InfoEmpresa: InfoEmpresa{
			CNPJ:  "00.000.000/0001-00",
			Email: "contato@vetordados.com.br",
		},
	})

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, `<html lang="pt-BR">`)
	assert.Contains(t, doc, "<title>Proposta Comercial</title>")
	assert.Contains(t, doc, `<img class="logo" src="https://cdn.exemplo.com/logo.png"`)
	assert.Contains(t, doc, "<p>00.000.000/0001-00</p>")
	assert.Contains(t, doc, "<p>contato@vetordados.com.br</p>")
	assert.Contains(t, doc, `<h1 class="titulo-documento">Proposta Comercial</h1>`)
	assert.Contains(t, doc, `<div class="secao"><p>corpo</p></div>`)
	assert.True(t, strings.HasSuffix(doc, "</html>"))
}

func TestMontarPaginaSemCabecalhoERodape(t *testing.T) {
	doc := MontarPagina(OpcoesPagina{
		Titulo:       "Contrato",
		Conteudo:     "<p>x</p>",
		SemCabecalho: true,
		SemRodape:    true,
	})

	assert.NotContains(t, doc, `<header class="cabecalho">`)
	assert.NotContains(t, doc, `<footer class="rodape">`)
	// O título do documento permanece mesmo sem cabeçalho.
	assert.Contains(t, doc, `<h1 class="titulo-documento">Contrato</h1>`)
}

func TestMontarPaginaRodapeComHorario(t *testing.T) {
	original := agora
	defer func() { agora = original }()
	agora = func() time.Time { return time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC) }

	doc := MontarPagina(OpcoesPagina{Titulo: "Contrato", Conteudo: "<p>x</p>"})
	assert.Contains(t, doc, "Documento gerado em 15/03/2026 14:30")
}

func TestMontarPaginaPadroes(t *testing.T) {
	doc := MontarPagina(OpcoesPagina{Titulo: "Doc", Conteudo: "<p>x</p>"})

	// Sem nome e cor informados valem os padrões da empresa.
	assert.Contains(t, doc, "<h1>Vetor Dados Consultoria</h1>")
	assert.Contains(t, doc, corCabecalhoPadrao)
}

func TestMontarPaginaCorCustomizada(t *testing.T) {
	doc := MontarPagina(OpcoesPagina{Titulo: "Doc", Conteudo: "<p>x</p>", CorCabecalho: "#b03030"})

	assert.Contains(t, doc, "#b03030")
	assert.NotContains(t, doc, corCabecalhoPadrao)
	// Sem cor de destaque própria, o realce herda a cor do cabeçalho.
	assert.Contains(t, doc, "border-left: 4px solid #b03030")
}

func TestMontarPaginaTemaCompleto(t *testing.T) {
	doc := MontarPagina(OpcoesPagina{
		Titulo:       "Doc",
		Conteudo:     "<p>x</p>",
		CorCabecalho: "#b03030",
		CorDestaque:  "#caa24a",
		FonteTitulos: "Georgia, serif",
	})

	assert.Contains(t, doc, "border-left: 4px solid #caa24a")
	assert.Contains(t, doc, "tr.destaque td { background: #caa24a;")
	assert.Contains(t, doc, "font-family: Georgia, serif;")
}

func TestMontarPaginaEscapaTitulo(t *testing.T) {
	doc := MontarPagina(OpcoesPagina{Titulo: `Projeto "X" & Cia`, Conteudo: ""})

	assert.Contains(t, doc, "<title>Projeto &#34;X&#34; &amp; Cia</title>")
}

func TestMontarPaginaEstilosDeImpressao(t *testing.T) {
	doc := MontarPagina(OpcoesPagina{Titulo: "Doc", Conteudo: ""})

	assert.Contains(t, doc, "@page { size: A4;")
	assert.Contains(t, doc, "@media print")
	assert.Contains(t, doc, ".no-print { display: none !important; }")
}
