package documento

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// agora é indireta para os testes fixarem o relógio do rodapé.
var agora = time.Now

// InfoEmpresa são os dados de contato exibidos no cabeçalho.
// Todos os campos são opcionais; campo vazio não gera markup.
type InfoEmpresa struct {
	CNPJ     string
	Endereco string
	Email    string
	Telefone string
}

// OpcoesPagina configura o envelope imprimível comum a todos os
// documentos. Apenas Titulo e Conteudo importam sempre; o resto é
// apresentação. SemCabecalho/SemRodape invertidos para que o valor
// zero mantenha o comportamento padrão (ambos visíveis).
type OpcoesPagina struct {
	Titulo       string
	Conteudo     string
	LogoURL      string
	NomeEmpresa  string
	InfoEmpresa  InfoEmpresa
	SemCabecalho bool
	SemRodape    bool
	CorCabecalho string
	CorDestaque  string
	FonteTitulos string
}

const (
	corCabecalhoPadrao = "#1e3a5f"
	fonteTitulosPadrao = "'Helvetica Neue', Arial, sans-serif"
)

// MontarPagina devolve o documento HTML completo, pronto para virar
// PDF por impressão. O rodapé embute o horário de geração, único ponto
// não determinístico da saída.
func MontarPagina(o OpcoesPagina) string {
	nome := o.NomeEmpresa
	if nome == "" {
		nome = EmpresaPadrao().Nome
	}
	cor := o.CorCabecalho
	if cor == "" {
		cor = corCabecalhoPadrao
	}
	destaque := o.CorDestaque
	if destaque == "" {
		destaque = cor
	}
	fonte := o.FonteTitulos
	if fonte == "" {
		fonte = fonteTitulosPadrao
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"pt-BR\">\n<head>\n<meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(o.Titulo))
	escreverEstilos(&b, cor, destaque, fonte)
	b.WriteString("</head>\n<body>\n")

	if !o.SemCabecalho {
		b.WriteString(`<header class="cabecalho">`)
		if o.LogoURL != "" {
			fmt.Fprintf(&b, `<img class="logo" src="%s" alt="%s">`, html.EscapeString(o.LogoURL), html.EscapeString(nome))
		}
		fmt.Fprintf(&b, `<div class="empresa"><h1>%s</h1>`, html.EscapeString(nome))
		for _, linha := range []string{o.InfoEmpresa.CNPJ, o.InfoEmpresa.Endereco, o.InfoEmpresa.Email, o.InfoEmpresa.Telefone} {
			if linha != "" {
				fmt.Fprintf(&b, `<p>%s</p>`, html.EscapeString(linha))
			}
		}
		b.WriteString(`</div></header>`)
	}

	fmt.Fprintf(&b, `<main class="documento"><h1 class="titulo-documento">%s</h1>%s</main>`,
		html.EscapeString(o.Titulo), o.Conteudo)

	if !o.SemRodape {
		fmt.Fprintf(&b, `<footer class="rodape"><p>%s</p><p>Documento gerado em %s</p></footer>`,
			html.EscapeString(nome), agora().Format("02/01/2006 15:04"))
	}

	b.WriteString("\n</body>\n</html>")
	return b.String()
}

// Estilos fixos do envelope; cores e fonte de título vêm do tema.
func escreverEstilos(b *strings.Builder, cor, destaque, fonte string) {
	fmt.Fprintf(b, `<style>
* { box-sizing: border-box; }
body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #222; margin: 0; padding: 24px 32px; line-height: 1.5; }
.cabecalho { display: flex; align-items: center; gap: 16px; border-bottom: 3px solid %[1]s; padding-bottom: 12px; margin-bottom: 24px; }
.cabecalho .logo { max-height: 64px; }
.cabecalho h1 { color: %[1]s; font-family: %[3]s; font-size: 20px; margin: 0 0 4px; }
.cabecalho p { margin: 0; font-size: 12px; color: #555; }
.titulo-documento { text-align: center; font-family: %[3]s; font-size: 22px; color: %[1]s; margin: 0 0 24px; text-transform: uppercase; }
.secao { margin-bottom: 20px; }
.secao h2 { font-family: %[3]s; font-size: 15px; color: %[1]s; border-bottom: 1px solid #ddd; padding-bottom: 4px; }
table { width: 100%%; border-collapse: collapse; margin: 8px 0; }
table.itens th { background: %[1]s; color: #fff; text-align: left; padding: 6px 8px; font-size: 13px; }
table.itens td, table.valores td { border: 1px solid #ddd; padding: 6px 8px; font-size: 13px; }
table.valores tr.destaque td { background: %[2]s; color: #fff; font-weight: bold; }
.realce { background: #f3f6fa; border-left: 4px solid %[2]s; padding: 10px 14px; margin: 8px 0; font-size: 14px; }
.assinaturas { margin-top: 48px; page-break-inside: avoid; }
.linhas-assinatura { display: flex; justify-content: space-around; gap: 32px; margin-top: 56px; }
.assinatura { flex: 1; text-align: center; }
.assinatura .linha { border-top: 1px solid #222; margin-bottom: 6px; }
.assinatura .papel { font-size: 12px; color: #555; }
.nota-legal { font-size: 11px; color: #777; margin-top: 24px; }
.rodape { border-top: 1px solid #ddd; margin-top: 32px; padding-top: 8px; font-size: 11px; color: #777; display: flex; justify-content: space-between; }
@page { size: A4; margin: 18mm 14mm; }
@media print {
  body { padding: 0; }
  .no-print { display: none !important; }
  .cabecalho { position: fixed; top: 0; left: 0; right: 0; background: #fff; }
}
</style>
`, cor, destaque, fonte)
}
