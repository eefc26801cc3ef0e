package modelo

import "gorm.io/gorm"

// Tipos aceitos para um campo de modelo.
const (
	TipoTexto    = "text"
	TipoTextoML  = "textarea"
	TipoNumero   = "number"
	TipoMoeda    = "currency"
	TipoData     = "date"
	TipoEmail    = "email"
	TipoTelefone = "phone"
	TipoSelecao  = "select"
)

// Origens de dado de um campo.
const (
	FonteManual = "manual"
	FonteLead   = "lead"
)

// CampoModelo é um campo nomeado que pode ser interpolado no corpo de
// um modelo via token {{nome}}. Quando FonteDados é "lead", CampoFonte
// indica qual atributo do lead preenche o valor na geração.
type CampoModelo struct {
	gorm.Model
	Nome        string `gorm:"uniqueIndex;size:100;not null" json:"nome"`
	Label       string `gorm:"size:255;not null" json:"label"`
	Tipo        string `gorm:"size:20;not null;default:'text'" json:"tipo"`
	Placeholder string `gorm:"size:255" json:"placeholder"`
	ValorPadrao string `gorm:"size:255" json:"valorPadrao"`
	Obrigatorio bool   `gorm:"not null;default:false" json:"obrigatorio"`
	FonteDados  string `gorm:"size:20;not null;default:'manual'" json:"fonteDados"`
	CampoFonte  string `gorm:"size:100" json:"campoFonte"`
}

// ModeloDocumento é o corpo HTML editável no admin, com os tokens de
// campo ainda por substituir.
type ModeloDocumento struct {
	gorm.Model
	Nome     string `gorm:"size:255;not null" json:"nome"`
	Tipo     string `gorm:"size:50;not null" json:"tipo"` // "proposta" | "contrato" | "email"
	Conteudo string `gorm:"type:text" json:"conteudo"`
	Padrao   bool   `gorm:"not null;default:false" json:"padrao"`
}
