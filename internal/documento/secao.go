package documento

// A montagem dos documentos é separada em duas etapas: os
// renderizadores decidem QUAIS seções existem (árvore tipada abaixo) e
// o serializador decide COMO elas viram HTML. A numeração contígua do
// contrato é consequência da árvore, não de aritmética espalhada.

// Secao é um título com uma sequência de blocos. Seções com Numerada
// recebem número sequencial na serialização.
type Secao struct {
	Titulo   string
	Numerada bool
	Blocos   []Bloco
}

// Bloco é qualquer conteúdo serializável dentro de uma seção.
type Bloco interface {
	bloco()
}

// Paragrafo é texto corrido, sempre escapado na serialização.
type Paragrafo struct {
	Texto string
}

// Lista é uma lista não ordenada.
type Lista struct {
	Itens []string
}

// TabelaItens é uma tabela com cabeçalho e linhas em ordem de entrada.
type TabelaItens struct {
	Colunas []string
	Linhas  [][]string
}

// LinhaValor é uma linha rótulo/valor da tabela de investimento.
type LinhaValor struct {
	Rotulo   string
	Valor    string
	Destaque bool
}

// TabelaValores é a tabela rótulo/valor (investimento, resumo).
type TabelaValores struct {
	Linhas []LinhaValor
}

// Destaque é uma caixa de realce (prazo de execução, validade).
type Destaque struct {
	Texto string
}

// ParteAssinatura identifica um signatário.
type ParteAssinatura struct {
	Nome  string
	Papel string
}

// Assinaturas é o bloco final de assinaturas lado a lado.
type Assinaturas struct {
	Local  string
	Partes []ParteAssinatura
}

// NotaLegal é o aviso em corpo reduzido ao pé do documento.
type NotaLegal struct {
	Texto string
}

func (Paragrafo) bloco()     {}
func (Lista) bloco()         {}
func (TabelaItens) bloco()   {}
func (TabelaValores) bloco() {}
func (Destaque) bloco()      {}
func (Assinaturas) bloco()   {}
func (NotaLegal) bloco()     {}

// secaoItens monta a seção-tabela padrão de escopo/entregáveis.
// Sequência vazia suprime a seção inteira (nil).
func secaoItens(titulo string, numerada bool, colunas []string, itens []ItemEscopo) *Secao {
	if len(itens) == 0 {
		return nil
	}
	linhas := make([][]string, 0, len(itens))
	for _, item := range itens {
		linhas = append(linhas, []string{item.Titulo, item.Descricao})
	}
	return &Secao{
		Titulo:   titulo,
		Numerada: numerada,
		Blocos:   []Bloco{TabelaItens{Colunas: colunas, Linhas: linhas}},
	}
}

// secaoCronograma idem, para as fases do cronograma.
func secaoCronograma(titulo string, numerada bool, fases []FaseCronograma) *Secao {
	if len(fases) == 0 {
		return nil
	}
	linhas := make([][]string, 0, len(fases))
	for _, f := range fases {
		linhas = append(linhas, []string{f.Fase, f.Duracao, f.Descricao})
	}
	return &Secao{
		Titulo:   titulo,
		Numerada: numerada,
		Blocos:   []Bloco{TabelaItens{Colunas: []string{"Fase", "Duração", "Descrição"}, Linhas: linhas}},
	}
}

// anexar ignora seções suprimidas.
func anexar(secoes []Secao, s *Secao) []Secao {
	if s == nil {
		return secoes
	}
	return append(secoes, *s)
}
