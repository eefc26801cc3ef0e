package documento

import (
	"fmt"
	"html"
	"strings"
)

// Serializar percorre a árvore de seções e emite o fragmento HTML do
// corpo do documento. Seções numeradas recebem números contíguos na
// ordem em que aparecem na árvore, independentemente de quais seções
// opcionais foram suprimidas.
func Serializar(secoes []Secao) string {
	var b strings.Builder
	numero := 0
	for _, s := range secoes {
		b.WriteString(`<div class="secao">`)
		if s.Titulo != "" {
			if s.Numerada {
				numero++
				fmt.Fprintf(&b, `<h2>%d. %s</h2>`, numero, html.EscapeString(s.Titulo))
			} else {
				fmt.Fprintf(&b, `<h2>%s</h2>`, html.EscapeString(s.Titulo))
			}
		}
		for _, bloco := range s.Blocos {
			escreverBloco(&b, bloco)
		}
		b.WriteString(`</div>`)
	}
	return b.String()
}

func escreverBloco(b *strings.Builder, bloco Bloco) {
	switch v := bloco.(type) {
	case Paragrafo:
		fmt.Fprintf(b, `<p>%s</p>`, html.EscapeString(v.Texto))
	case Lista:
		b.WriteString("<ul>")
		for _, item := range v.Itens {
			fmt.Fprintf(b, "<li>%s</li>", html.EscapeString(item))
		}
		b.WriteString("</ul>")
	case TabelaItens:
		b.WriteString(`<table class="itens"><thead><tr>`)
		for _, col := range v.Colunas {
			fmt.Fprintf(b, "<th>%s</th>", html.EscapeString(col))
		}
		b.WriteString("</tr></thead><tbody>")
		for _, linha := range v.Linhas {
			b.WriteString("<tr>")
			for _, cel := range linha {
				fmt.Fprintf(b, "<td>%s</td>", html.EscapeString(cel))
			}
			b.WriteString("</tr>")
		}
		b.WriteString("</tbody></table>")
	case TabelaValores:
		b.WriteString(`<table class="valores"><tbody>`)
		for _, linha := range v.Linhas {
			classe := ""
			if linha.Destaque {
				classe = ` class="destaque"`
			}
			fmt.Fprintf(b, "<tr%s><td>%s</td><td>%s</td></tr>",
				classe, html.EscapeString(linha.Rotulo), html.EscapeString(linha.Valor))
		}
		b.WriteString("</tbody></table>")
	case Destaque:
		fmt.Fprintf(b, `<div class="realce">%s</div>`, html.EscapeString(v.Texto))
	case Assinaturas:
		b.WriteString(`<div class="assinaturas">`)
		if v.Local != "" {
			fmt.Fprintf(b, `<p class="local-data">%s</p>`, html.EscapeString(v.Local))
		}
		b.WriteString(`<div class="linhas-assinatura">`)
		for _, parte := range v.Partes {
			fmt.Fprintf(b, `<div class="assinatura"><div class="linha"></div><p>%s</p><p class="papel">%s</p></div>`,
				html.EscapeString(parte.Nome), html.EscapeString(parte.Papel))
		}
		b.WriteString("</div></div>")
	case NotaLegal:
		fmt.Fprintf(b, `<p class="nota-legal">%s</p>`, html.EscapeString(v.Texto))
	}
}
