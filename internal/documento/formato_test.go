package documento

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumeroPorExtenso(t *testing.T) {
	casos := []struct {
		n        int
		esperado string
	}{
		{0, "zero"},
		{1, "um"},
		{9, "nove"},
		{10, "dez"},
		{11, "onze"},
		{15, "quinze"},
		{19, "dezenove"},
		{20, "vinte"},
		{21, "vinte e um"},
		{45, "quarenta e cinco"},
		{99, "noventa e nove"},
		{100, "cem"},
		{101, "cento e um"},
		{110, "cento e dez"},
		{115, "cento e quinze"},
		{125, "cento e vinte e cinco"},
		{199, "cento e noventa e nove"},
		{200, "duzentos"},
		{345, "trezentos e quarenta e cinco"},
		{500, "quinhentos"},
		{777, "setecentos e setenta e sete"},
		{999, "novecentos e noventa e nove"},
	}
	for _, caso := range casos {
		assert.Equal(t, caso.esperado, NumeroPorExtenso(caso.n), "n=%d", caso.n)
	}
}

func TestNumeroPorExtensoForaDoIntervalo(t *testing.T) {
	// Fora de 0–999 o formatador devolve os dígitos.
	assert.Equal(t, "1000", NumeroPorExtenso(1000))
	assert.Equal(t, "1500", NumeroPorExtenso(1500))
	assert.Equal(t, "-1", NumeroPorExtenso(-1))
}

func TestFormatarMoeda(t *testing.T) {
	valor := func(v float64) *float64 { return &v }

	assert.Equal(t, "A definir", FormatarMoeda(nil))
	assert.Equal(t, "A definir", FormatarMoeda(valor(0)))
	assert.Equal(t, "R$ 1.500,00", FormatarMoeda(valor(1500)))
	assert.Equal(t, "R$ 10.000,00", FormatarMoeda(valor(10000)))
	assert.Equal(t, "R$ 99,90", FormatarMoeda(valor(99.9)))
	assert.Equal(t, "R$ 1.234.567,89", FormatarMoeda(valor(1234567.89)))
}

func TestFormatarData(t *testing.T) {
	assert.Equal(t, "15/03/2026", FormatarData("2026-03-15"))
	assert.Equal(t, "01/12/2025", FormatarData("2025-12-01T10:30:00Z"))
	assert.Equal(t, "15/03/2026", FormatarData("15/03/2026"))
	assert.Equal(t, "A definir", FormatarData(""))
	assert.Equal(t, "A definir", FormatarData("   "))
	assert.Equal(t, "A definir", FormatarData("não é data"))
}

func TestPrazoPorExtenso(t *testing.T) {
	assert.Equal(t, "30 (trinta) dias corridos", PrazoPorExtenso(30))
	assert.Equal(t, "1 (um) dia corrido", PrazoPorExtenso(1))
	assert.Equal(t, "120 (cento e vinte) dias corridos", PrazoPorExtenso(120))
}

func TestRotuloServico(t *testing.T) {
	assert.Equal(t, "Engenharia de Dados", RotuloServico("engenharia-dados"))
	assert.Equal(t, "Desenvolvimento de Dashboards", RotuloServico("dashboards"))
	// Código desconhecido é exibido como veio, sem erro.
	assert.Equal(t, "servico-inventado", RotuloServico("servico-inventado"))
}
