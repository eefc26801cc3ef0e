// Package documento gera os documentos imprimíveis (proposta e contrato)
// a partir dos dados estruturados do negócio. Toda a montagem é pura:
// entrada → árvore de seções → HTML.
package documento

// ItemEscopo é uma linha de escopo ou de entregável.
type ItemEscopo struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}

// FaseCronograma é uma linha do cronograma de execução.
type FaseCronograma struct {
	Fase      string `json:"fase"`
	Duracao   string `json:"duracao"`
	Descricao string `json:"descricao"`
}

// DadosDocumento carrega tudo que os renderizadores precisam.
// Campos opcionais usam ponteiro; ausência degrada para placeholder,
// nunca para erro.
type DadosDocumento struct {
	Numero      string `json:"numero"`
	Titulo      string `json:"titulo"`
	TipoServico string `json:"tipoServico"`

	ClienteNome      string `json:"clienteNome"`
	ClienteEmpresa   string `json:"clienteEmpresa"`
	ClienteDocumento string `json:"clienteDocumento"`

	ValorTotal         *float64 `json:"valorTotal"`
	ValorFinal         *float64 `json:"valorFinal"`
	DescontoPercentual *float64 `json:"descontoPercentual"`

	PrazoExecucaoDias *int `json:"prazoExecucaoDias"`

	Escopo      []ItemEscopo     `json:"escopo"`
	Entregaveis []ItemEscopo     `json:"entregaveis"`
	Cronograma  []FaseCronograma `json:"cronograma"`

	TermosCondicoes string `json:"termosCondicoes"`

	DataAprovacao    string `json:"dataAprovacao"`
	ValidadeProposta string `json:"validadeProposta"`
}

// Empresa é a identidade exibida no cabeçalho e nas assinaturas.
// Fica injetada nos renderizadores em vez de espalhada em constantes.
type Empresa struct {
	Nome          string
	CNPJ          string
	Endereco      string
	Email         string
	Telefone      string
	LogoURL       string
	Cor           string
	CorSecundaria string
	FonteTitulos  string
}

// EmpresaPadrao é usada quando o chamador não informa uma identidade
// (por exemplo antes de o tema ser configurado no admin).
func EmpresaPadrao() Empresa {
	return Empresa{
		Nome:          "Vetor Dados Consultoria",
		CNPJ:          "00.000.000/0001-00",
		Endereco:      "São Paulo, SP",
		Email:         "contato@vetordados.com.br",
		Telefone:      "(11) 0000-0000",
		Cor:           "#1e3a5f",
		CorSecundaria: "#3e6fa5",
	}
}
