package documento

import "fmt"

// Termos padrão da proposta: lista estruturada de quatro itens,
// política distinta da do contrato (lá o padrão é um parágrafo único).
var termosPadraoProposta = []string{
	"Pagamento: 50% na aprovação da proposta e 50% na entrega final.",
	"O início do projeto está condicionado à aprovação formal desta proposta.",
	"Todas as informações trocadas durante o projeto são tratadas como confidenciais.",
	"Os entregáveis desenvolvidos passam a ser propriedade do cliente após a quitação.",
}

// RenderizarProposta monta a proposta comercial e devolve o documento
// HTML pronto para impressão. Diferente do contrato, as seções não são
// numeradas; são títulos simples na ordem do layout.
func RenderizarProposta(d DadosDocumento, e Empresa) string {
	secoes := secoesProposta(d, e)

	titulo := "Proposta Comercial"
	if d.Numero != "" {
		titulo = fmt.Sprintf("Proposta Comercial Nº %s", d.Numero)
	}

	return MontarPagina(OpcoesPagina{
		Titulo:       titulo,
		Conteudo:     Serializar(secoes),
		LogoURL:      e.LogoURL,
		NomeEmpresa:  e.Nome,
		CorCabecalho: e.Cor,
		CorDestaque:  e.CorSecundaria,
		FonteTitulos: e.FonteTitulos,
		InfoEmpresa: InfoEmpresa{
			CNPJ:     e.CNPJ,
			Endereco: e.Endereco,
			Email:    e.Email,
			Telefone: e.Telefone,
		},
	})
}

func secoesProposta(d DadosDocumento, e Empresa) []Secao {
	var secoes []Secao

	resumo := []LinhaValor{
		{Rotulo: "Projeto", Valor: d.Titulo},
		{Rotulo: "Serviço", Valor: RotuloServico(d.TipoServico)},
		{Rotulo: "Cliente", Valor: ouADefinir(d.ClienteNome)},
	}
	if d.ClienteEmpresa != "" {
		resumo = append(resumo, LinhaValor{Rotulo: "Empresa", Valor: d.ClienteEmpresa})
	}
	resumo = append(resumo, LinhaValor{Rotulo: "Validade da proposta", Valor: FormatarData(d.ValidadeProposta)})
	secoes = append(secoes, Secao{
		Titulo: "Resumo Executivo",
		Blocos: []Bloco{TabelaValores{Linhas: resumo}},
	})

	secoes = anexar(secoes, secaoItens("Escopo do Projeto", false, []string{"Item", "Descrição"}, d.Escopo))
	secoes = anexar(secoes, secaoItens("Entregáveis", false, []string{"Entregável", "Descrição"}, d.Entregaveis))
	secoes = anexar(secoes, secaoCronograma("Cronograma", false, d.Cronograma))

	secoes = append(secoes, secaoInvestimento(d))

	if d.PrazoExecucaoDias != nil {
		secoes = append(secoes, Secao{
			Titulo: "Prazo de Execução",
			Blocos: []Bloco{Destaque{Texto: fmt.Sprintf("Prazo estimado de execução: %s a partir da aprovação.", PrazoPorExtenso(*d.PrazoExecucaoDias))}},
		})
	}

	termos := Secao{Titulo: "Termos e Condições"}
	if d.TermosCondicoes != "" {
		termos.Blocos = []Bloco{Paragrafo{Texto: d.TermosCondicoes}}
	} else {
		termos.Blocos = []Bloco{Lista{Itens: termosPadraoProposta}}
	}
	secoes = append(secoes, termos)

	secoes = append(secoes, Secao{
		Titulo: "Aceite",
		Blocos: []Bloco{
			Paragrafo{Texto: "A aprovação desta proposta poderá ser formalizada por assinatura abaixo ou por aceite eletrônico."},
			Assinaturas{
				Partes: []ParteAssinatura{
					{Nome: e.Nome, Papel: "Proponente"},
					{Nome: ouADefinir(d.ClienteNome), Papel: "Cliente"},
				},
			},
		},
	})

	return secoes
}

// secaoInvestimento aplica a regra de exibição do investimento: o
// desconto só aparece quando informado e maior que zero, e o VALOR
// FINAL cai para o valor total quando não veio calculado — a proposta
// não confia no caller para esse fallback.
func secaoInvestimento(d DadosDocumento) Secao {
	linhas := []LinhaValor{
		{Rotulo: "Valor Total", Valor: FormatarMoeda(d.ValorTotal)},
	}
	if d.DescontoPercentual != nil && *d.DescontoPercentual > 0 {
		linhas = append(linhas, LinhaValor{Rotulo: "Desconto", Valor: fmt.Sprintf("%g%%", *d.DescontoPercentual)})
	}
	valorFinal := d.ValorFinal
	if valorFinal == nil {
		valorFinal = d.ValorTotal
	}
	linhas = append(linhas, LinhaValor{Rotulo: "VALOR FINAL", Valor: FormatarMoeda(valorFinal), Destaque: true})

	return Secao{
		Titulo: "Investimento",
		Blocos: []Bloco{TabelaValores{Linhas: linhas}},
	}
}
