package proposta

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, p *Proposta) error
	ListarTodas(db *gorm.DB) ([]Proposta, error)
	ListarPorLead(db *gorm.DB, leadID uint) ([]Proposta, error)
	BuscarPorID(db *gorm.DB, id uint) (*Proposta, error)
	Atualizar(db *gorm.DB, p *Proposta) error
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *Proposta) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Proposta, error) {
	var propostas []Proposta
	err := db.Order("created_at DESC").Find(&propostas).Error
	return propostas, err
}

func (r *repositoryImpl) ListarPorLead(db *gorm.DB, leadID uint) ([]Proposta, error) {
	var propostas []Proposta
	err := db.Where("lead_id = ?", leadID).Order("created_at DESC").Find(&propostas).Error
	return propostas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Proposta, error) {
	var p Proposta
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, p *Proposta) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&Proposta{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Proposta{}, id).Error
}
