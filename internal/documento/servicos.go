package documento

// rotulosServico mapeia o código de serviço salvo no CRM para o rótulo
// exibido nos documentos. Tabela fechada; código desconhecido é exibido
// como veio.
var rotulosServico = map[string]string{
	"consultoria-bi":    "Consultoria em Business Intelligence",
	"engenharia-dados":  "Engenharia de Dados",
	"ciencia-dados":     "Ciência de Dados e Machine Learning",
	"dashboards":        "Desenvolvimento de Dashboards",
	"automacao":         "Automação de Processos e Relatórios",
	"integracao":        "Integração de Sistemas e APIs",
	"governanca":        "Governança e Qualidade de Dados",
	"infraestrutura":    "Infraestrutura e Plataforma de Dados",
	"treinamento":       "Treinamento e Capacitação",
	"suporte-analitico": "Suporte Analítico Recorrente",
}

// RotuloServico devolve o rótulo humano de um código de serviço.
func RotuloServico(codigo string) string {
	if rotulo, ok := rotulosServico[codigo]; ok {
		return rotulo
	}
	return codigo
}
