package conteudo

import (
	"github.com/VetorDados/api-admin/internal/documento"
	"gorm.io/gorm"
)

// BlocoConteudo é um trecho editável do site institucional (hero,
// sobre, serviços...), identificado por uma chave estável.
type BlocoConteudo struct {
	gorm.Model
	Chave     string `gorm:"uniqueIndex;size:100;not null" json:"chave"`
	Titulo    string `gorm:"size:255" json:"titulo"`
	Corpo     string `gorm:"type:text" json:"corpo"`
	Publicado bool   `gorm:"not null" json:"publicado"`
}

// Tema guarda a identidade visual configurada no admin. Há no máximo
// uma linha; na ausência dela vale a identidade padrão.
type Tema struct {
	gorm.Model
	NomeEmpresa   string `gorm:"size:255" json:"nomeEmpresa"`
	CNPJ          string `gorm:"size:20" json:"cnpj"`
	Endereco      string `gorm:"size:255" json:"endereco"`
	Email         string `gorm:"size:255" json:"email"`
	Telefone      string `gorm:"size:20" json:"telefone"`
	LogoURL       string `gorm:"size:512" json:"logoUrl"`
	CorPrimaria   string `gorm:"size:10" json:"corPrimaria"`
	CorSecundaria string `gorm:"size:10" json:"corSecundaria"`
	FonteTitulos  string `gorm:"size:100" json:"fonteTitulos"`
}

// EmpresaAtual devolve a identidade usada no cabeçalho dos documentos:
// o tema salvo, quando existe, senão o padrão do pacote documento.
func EmpresaAtual(db *gorm.DB) documento.Empresa {
	var t Tema
	if err := db.First(&t).Error; err != nil {
		return documento.EmpresaPadrao()
	}
	empresa := documento.EmpresaPadrao()
	if t.NomeEmpresa != "" {
		empresa.Nome = t.NomeEmpresa
	}
	if t.CNPJ != "" {
		empresa.CNPJ = t.CNPJ
	}
	if t.Endereco != "" {
		empresa.Endereco = t.Endereco
	}
	if t.Email != "" {
		empresa.Email = t.Email
	}
	if t.Telefone != "" {
		empresa.Telefone = t.Telefone
	}
	if t.LogoURL != "" {
		empresa.LogoURL = t.LogoURL
	}
	if t.CorPrimaria != "" {
		empresa.Cor = t.CorPrimaria
	}
	if t.CorSecundaria != "" {
		empresa.CorSecundaria = t.CorSecundaria
	}
	if t.FonteTitulos != "" {
		empresa.FonteTitulos = t.FonteTitulos
	}
	return empresa
}
