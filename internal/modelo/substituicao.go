package modelo

import (
	"strings"
	"time"
)

// Valor de exemplo para campos de moeda na pré-visualização.
const exemploMoeda = "R$ 1.500,00"

// hoje é indireta para os testes fixarem a data de exemplo.
var hoje = time.Now

// Token devolve o marcador literal de um campo ("{{nome}}"). O casamento
// é exato: sem tolerância a espaços dentro das chaves.
func Token(nome string) string {
	return "{{" + nome + "}}"
}

// ValorExemplo escolhe o que mostrar no lugar do token em uma
// pré-visualização: o valor padrão salvo, quando existe, senão um
// exemplo apropriado ao tipo.
func ValorExemplo(c CampoModelo) string {
	if c.ValorPadrao != "" {
		return c.ValorPadrao
	}
	switch c.Tipo {
	case TipoData:
		return hoje().Format("02/01/2006")
	case TipoMoeda:
		return exemploMoeda
	default:
		return "[" + c.Label + "]"
	}
}

// RenderizarPreview substitui cada token reconhecido no conteúdo pelo
// valor de exemplo do campo correspondente. Tokens sem campo
// correspondente ficam intactos no resultado: a substituição é
// deliberadamente não estrita. Campos que não aparecem no conteúdo são
// simplesmente ignorados.
func RenderizarPreview(conteudo string, campos []CampoModelo) string {
	for _, campo := range campos {
		conteudo = strings.ReplaceAll(conteudo, Token(campo.Nome), ValorExemplo(campo))
	}
	return conteudo
}

// RenderizarComValores substitui os tokens pelos valores reais já
// resolvidos (geração final, não pré-visualização). Mesma política não
// estrita para tokens desconhecidos.
func RenderizarComValores(conteudo string, valores map[string]string) string {
	for nome, valor := range valores {
		conteudo = strings.ReplaceAll(conteudo, Token(nome), valor)
	}
	return conteudo
}

// InserirCampo anexa o token de um campo ao fim do conteúdo e devolve
// o conteúdo atualizado junto com o token, para o front-end copiar à
// área de transferência (efeito best-effort fora deste pacote).
func InserirCampo(conteudo string, campo CampoModelo) (string, string) {
	token := Token(campo.Nome)
	if conteudo != "" && !strings.HasSuffix(conteudo, "\n") {
		conteudo += "\n"
	}
	return conteudo + token, token
}
