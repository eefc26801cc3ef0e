package comentario

import "gorm.io/gorm"

// Comentario é uma anotação interna feita em um lead.
type Comentario struct {
	gorm.Model
	Texto  string `json:"texto"`
	LeadID uint   `gorm:"index" json:"leadId"`
	Autor  uint   `json:"autor"` // ID do usuário que comentou
}
