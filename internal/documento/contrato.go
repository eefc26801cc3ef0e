package documento

import "fmt"

// Texto substituído quando o contrato não traz termos próprios.
const condicoesGeraisContrato = "Casos omissos neste contrato serão resolvidos de comum acordo entre as partes, mediante aditivo contratual assinado por ambas. Alterações de escopo, prazo ou valor deverão ser formalizadas por escrito."

const notaLegalContrato = "Este documento foi gerado eletronicamente e constitui minuta contratual. Recomenda-se a revisão por assessoria jurídica antes da assinatura."

// RenderizarContrato monta o contrato de prestação de serviços
// completo e devolve o documento HTML pronto para impressão.
//
// As seções numeradas são renumeradas de forma contígua: escopo,
// entregáveis e cronograma só existem quando há linhas, e os termos
// adicionais só existem quando informados, então o número do foro é
// derivado da árvore, nunca fixado.
func RenderizarContrato(d DadosDocumento, e Empresa) string {
	secoes := secoesContrato(d, e)

	titulo := "Contrato de Prestação de Serviços"
	if d.Numero != "" {
		titulo = fmt.Sprintf("Contrato de Prestação de Serviços Nº %s", d.Numero)
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

func secoesContrato(d DadosDocumento, e Empresa) []Secao {
	var secoes []Secao

	secoes = append(secoes, Secao{
		Titulo:   "Das Partes",
		Numerada: true,
		Blocos: []Bloco{
			Paragrafo{Texto: fmt.Sprintf("CONTRATADA: %s, inscrita no CNPJ sob o nº %s, com sede em %s.", e.Nome, ouADefinir(e.CNPJ), ouADefinir(e.Endereco))},
			Paragrafo{Texto: fmt.Sprintf("CONTRATANTE: %s, %s, documento nº %s.", ouADefinir(d.ClienteNome), empresaOuPapel(d.ClienteEmpresa), ouADefinir(d.ClienteDocumento))},
		},
	})

	secoes = append(secoes, Secao{
		Titulo:   "Do Objeto",
		Numerada: true,
		Blocos: []Bloco{
			Paragrafo{Texto: fmt.Sprintf("O presente contrato tem por objeto a prestação de serviços de %s, referente ao projeto \"%s\".", RotuloServico(d.TipoServico), d.Titulo)},
		},
	})

	secoes = anexar(secoes, secaoItens("Do Escopo dos Serviços", true, []string{"Item", "Descrição"}, d.Escopo))
	secoes = anexar(secoes, secaoItens("Dos Entregáveis", true, []string{"Entregável", "Descrição"}, d.Entregaveis))
	secoes = anexar(secoes, secaoCronograma("Do Cronograma", true, d.Cronograma))

	prazo := "O prazo de execução dos serviços será definido entre as partes."
	if d.PrazoExecucaoDias != nil {
		prazo = fmt.Sprintf("O prazo de execução dos serviços é de %s, contados a partir de %s.",
			PrazoPorExtenso(*d.PrazoExecucaoDias), FormatarData(d.DataAprovacao))
	}
	secoes = append(secoes, Secao{
		Titulo:   "Do Prazo de Execução",
		Numerada: true,
		Blocos:   []Bloco{Paragrafo{Texto: prazo}},
	})

	// O contrato exibe o valor final já fechado pelo caller; o
	// desconto, quando informado, presume-se refletido nesse valor.
	valorExibido := d.ValorFinal
	if valorExibido == nil {
		valorExibido = d.ValorTotal
	}
	blocosValor := []Bloco{
		Paragrafo{Texto: fmt.Sprintf("Pela prestação dos serviços, a CONTRATANTE pagará à CONTRATADA o valor de %s.", FormatarMoeda(valorExibido))},
	}
	if d.DescontoPercentual != nil && *d.DescontoPercentual > 0 {
		blocosValor = append(blocosValor, Paragrafo{Texto: fmt.Sprintf("O valor acima já contempla desconto de %g%% sobre o valor original de %s.", *d.DescontoPercentual, FormatarMoeda(d.ValorTotal))})
	}
	secoes = append(secoes, Secao{
		Titulo:   "Do Valor e da Forma de Pagamento",
		Numerada: true,
		Blocos:   blocosValor,
	})

	secoes = append(secoes, Secao{
		Titulo:   "Das Obrigações das Partes",
		Numerada: true,
		Blocos: []Bloco{
			Paragrafo{Texto: "A CONTRATADA obriga-se a:"},
			Lista{Itens: []string{
				"executar os serviços conforme o escopo e o cronograma acordados;",
				"manter a CONTRATANTE informada sobre o andamento do projeto;",
				"corrigir, sem custo adicional, desvios em relação ao escopo contratado.",
			}},
			Paragrafo{Texto: "A CONTRATANTE obriga-se a:"},
			Lista{Itens: []string{
				"fornecer acessos, dados e informações necessários à execução;",
				"efetuar os pagamentos nas condições pactuadas;",
				"validar os entregáveis nos prazos combinados.",
			}},
		},
	})

	secoes = append(secoes, Secao{
		Titulo:   "Da Confidencialidade",
		Numerada: true,
		Blocos: []Bloco{
			Paragrafo{Texto: "As partes comprometem-se a manter sigilo sobre dados, credenciais e informações de negócio a que tiverem acesso em razão deste contrato, durante sua vigência e após seu término."},
		},
	})

	secoes = append(secoes, Secao{
		Titulo:   "Da Propriedade Intelectual",
		Numerada: true,
		Blocos: []Bloco{
			Paragrafo{Texto: "Os entregáveis desenvolvidos especificamente para a CONTRATANTE serão de sua propriedade após a quitação integral. Metodologias, frameworks e componentes reutilizáveis permanecem de propriedade da CONTRATADA."},
		},
	})

	secoes = append(secoes, Secao{
		Titulo:   "Das Condições Gerais",
		Numerada: true,
		Blocos:   []Bloco{Paragrafo{Texto: condicoesGeraisContrato}},
	})

	if d.TermosCondicoes != "" {
		secoes = append(secoes, Secao{
			Titulo:   "Dos Termos e Condições Adicionais",
			Numerada: true,
			Blocos:   []Bloco{Paragrafo{Texto: d.TermosCondicoes}},
		})
	}

	secoes = append(secoes, Secao{
		Titulo:   "Do Foro",
		Numerada: true,
		Blocos: []Bloco{
			Paragrafo{Texto: "Fica eleito o foro da comarca de São Paulo, SP, para dirimir quaisquer controvérsias oriundas deste contrato, com renúncia a qualquer outro, por mais privilegiado que seja."},
		},
	})

	secoes = append(secoes, Secao{
		Blocos: []Bloco{
			Assinaturas{
				Local: ouADefinir(e.Endereco),
				Partes: []ParteAssinatura{
					{Nome: e.Nome, Papel: "Contratada"},
					{Nome: ouADefinir(d.ClienteNome), Papel: "Contratante"},
				},
			},
			NotaLegal{Texto: notaLegalContrato},
		},
	})

	return secoes
}

func empresaOuPapel(empresa string) string {
	if empresa == "" {
		return "pessoa física ou jurídica contratante"
	}
	return "representante da empresa " + empresa
}
