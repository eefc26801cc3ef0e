package usuario

import "gorm.io/gorm"

// Usuario é quem acessa o painel administrativo.
type Usuario struct {
	gorm.Model
	Nome                  string `json:"nome"`
	Sobrenome             string `json:"sobrenome"`
	Email                 string `json:"email" gorm:"uniqueIndex"`
	Telefone              string `json:"telefone"`
	Foto                  string `json:"foto"`
	Senha                 string `json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
	IsAdmin               bool   `json:"isAdmin"`
}
