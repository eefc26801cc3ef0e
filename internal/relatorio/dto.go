package relatorio

// ResumoDashboard agrega os números exibidos na tela inicial do admin.
type ResumoDashboard struct {
	TotalLeads         int64            `json:"totalLeads"`
	LeadsPorStatus     map[string]int64 `json:"leadsPorStatus"`
	LeadsNoMes         int64            `json:"leadsNoMes"`
	PropostasPorStatus map[string]int64 `json:"propostasPorStatus"`
	ValorEmPropostas   float64          `json:"valorEmPropostas"`
	ContratosAtivos    int64            `json:"contratosAtivos"`
	TarefasPendentes   int64            `json:"tarefasPendentes"`
	DocumentosNoMes    int64            `json:"documentosNoMes"`
}
