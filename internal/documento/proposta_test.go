package documento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropostaInvestimentoComDesconto(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{
		Titulo:             "Projeto X",
		TipoServico:        "consultoria-bi",
		ClienteNome:        "Maria Souza",
		ValorTotal:         ptrFloat(10000),
		DescontoPercentual: ptrFloat(10),
	}, EmpresaPadrao())

	assert.Contains(t, doc, "<tr><td>Valor Total</td><td>R$ 10.000,00</td></tr>")
	assert.Contains(t, doc, "<tr><td>Desconto</td><td>10%</td></tr>")
	// Sem valor final informado a linha de destaque cai para o total.
	assert.Contains(t, doc, `<tr class="destaque"><td>VALOR FINAL</td><td>R$ 10.000,00</td></tr>`)
}

func TestPropostaDescontoZeradoNaoAparece(t *testing.T) {
	zero := 0.0
	doc := RenderizarProposta(DadosDocumento{
		Titulo:             "Projeto X",
		TipoServico:        "consultoria-bi",
		ValorTotal:         ptrFloat(10000),
		DescontoPercentual: &zero,
	}, EmpresaPadrao())

	assert.NotContains(t, doc, "<td>Desconto</td>")
}

func TestPropostaValorFinalInformado(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{
		Titulo:             "Projeto X",
		TipoServico:        "ciencia-dados",
		ValorTotal:         ptrFloat(10000),
		DescontoPercentual: ptrFloat(10),
		ValorFinal:         ptrFloat(9000),
	}, EmpresaPadrao())

	assert.Contains(t, doc, `<tr class="destaque"><td>VALOR FINAL</td><td>R$ 9.000,00</td></tr>`)
}

func TestPropostaSemValores(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{Titulo: "Projeto X", TipoServico: "automacao"}, EmpresaPadrao())

	assert.Contains(t, doc, "<tr><td>Valor Total</td><td>A definir</td></tr>")
	assert.Contains(t, doc, `<tr class="destaque"><td>VALOR FINAL</td><td>A definir</td></tr>`)
	assert.Contains(t, doc, "<tr><td>Validade da proposta</td><td>A definir</td></tr>")
	assert.NotContains(t, doc, "R$ 0,00")
}

func TestPropostaSecoesOpcionaisSuprimidas(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{Titulo: "Projeto X", TipoServico: "dashboards"}, EmpresaPadrao())

	assert.NotContains(t, doc, "Escopo do Projeto")
	assert.NotContains(t, doc, "<h2>Entregáveis</h2>")
	assert.NotContains(t, doc, "<h2>Cronograma</h2>")
	assert.NotContains(t, doc, "<h2>Prazo de Execução</h2>")
	assert.Contains(t, doc, "<h2>Resumo Executivo</h2>")
	assert.Contains(t, doc, "<h2>Investimento</h2>")
	assert.Contains(t, doc, "<h2>Termos e Condições</h2>")
	assert.Contains(t, doc, "<h2>Aceite</h2>")
}

func TestPropostaSecoesNaoNumeradas(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{Titulo: "Projeto X", TipoServico: "dashboards"}, EmpresaPadrao())
	assert.Empty(t, titulosNumerados(t, doc))
}

func TestPropostaTermosPadrao(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{Titulo: "Projeto X", TipoServico: "governanca"}, EmpresaPadrao())

	for _, termo := range termosPadraoProposta {
		assert.Contains(t, doc, "<li>"+termo+"</li>")
	}
}

func TestPropostaTermosCustomizados(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{
		Titulo:          "Projeto X",
		TipoServico:     "governanca",
		TermosCondicoes: "Pagamento em três parcelas mensais.",
	}, EmpresaPadrao())

	assert.Contains(t, doc, "<p>Pagamento em três parcelas mensais.</p>")
	assert.NotContains(t, doc, termosPadraoProposta[0])
}

func TestPropostaCronogramaComFases(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{
		Titulo:      "Projeto X",
		TipoServico: "integracao",
		Cronograma: []FaseCronograma{
			{Fase: "Descoberta", Duracao: "1 semana", Descricao: "Levantamento de requisitos"},
			{Fase: "Construção", Duracao: "3 semanas", Descricao: "Implementação"},
		},
	}, EmpresaPadrao())

	assert.Contains(t, doc, "<h2>Cronograma</h2>")
	assert.Contains(t, doc, "<th>Fase</th><th>Duração</th><th>Descrição</th>")
	assert.Contains(t, doc, "<td>Descoberta</td><td>1 semana</td><td>Levantamento de requisitos</td>")
}

func TestPropostaPrazoDestacado(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{
		Titulo:            "Projeto X",
		TipoServico:       "treinamento",
		PrazoExecucaoDias: ptrInt(45),
	}, EmpresaPadrao())

	assert.Contains(t, doc, `<div class="realce">Prazo estimado de execução: 45 (quarenta e cinco) dias corridos a partir da aprovação.</div>`)
}

func TestPropostaTituloComNumero(t *testing.T) {
	doc := RenderizarProposta(DadosDocumento{Numero: "2026-007", Titulo: "Projeto X", TipoServico: "suporte-analitico"}, EmpresaPadrao())
	assert.Contains(t, doc, "Proposta Comercial Nº 2026-007")
}
