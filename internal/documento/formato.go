package documento

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder exibido quando um valor opcional não foi informado.
const ADefinir = "A definir"

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda formata um valor em reais ("R$ 1.500,00").
// Valor ausente ou zero vira "A definir" — nunca "R$ 0,00".
func FormatarMoeda(valor *float64) string {
	if valor == nil || *valor == 0 {
		return ADefinir
	}
	return "R$ " + ptBR.Sprintf("%.2f", *valor)
}

// FormatarData converte uma data ISO ("2026-03-15" ou RFC3339) para
// dd/mm/aaaa. Entrada vazia ou não reconhecida degrada para o
// placeholder.
func FormatarData(data string) string {
	if strings.TrimSpace(data) == "" {
		return ADefinir
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "02/01/2006"} {
		if t, err := time.Parse(layout, data); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return ADefinir
}

var (
	extensoUnidades = []string{"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	extensoDezADez  = []string{"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	extensoDezenas  = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	extensoCentenas = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// NumeroPorExtenso escreve um cardinal em português no intervalo 0–999
// ("cem" para exatamente 100, conjunção "e" entre casas). Fora do
// intervalo devolve os dígitos, já que o contrato do formatador cobre
// só três casas.
func NumeroPorExtenso(n int) string {
	if n < 0 || n > 999 {
		return strconv.Itoa(n)
	}
	if n == 0 {
		return "zero"
	}
	if n == 100 {
		return "cem"
	}

	var partes []string
	if c := n / 100; c > 0 {
		partes = append(partes, extensoCentenas[c])
	}
	resto := n % 100
	switch {
	case resto == 0:
	case resto < 10:
		partes = append(partes, extensoUnidades[resto])
	case resto < 20:
		partes = append(partes, extensoDezADez[resto-10])
	default:
		d := extensoDezenas[resto/10]
		if u := resto % 10; u > 0 {
			d += " e " + extensoUnidades[u]
		}
		partes = append(partes, d)
	}
	return strings.Join(partes, " e ")
}

// PrazoPorExtenso monta a frase de prazo ("30 (trinta) dias corridos").
func PrazoPorExtenso(dias int) string {
	sufixo := " dias corridos"
	if dias == 1 {
		sufixo = " dia corrido"
	}
	return strconv.Itoa(dias) + " (" + NumeroPorExtenso(dias) + ")" + sufixo
}

func ouADefinir(s string) string {
	if strings.TrimSpace(s) == "" {
		return ADefinir
	}
	return s
}
