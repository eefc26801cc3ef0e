package contrato

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	ListarTodos(db *gorm.DB) ([]Contrato, error)
	ListarPorLead(db *gorm.DB, leadID uint) ([]Contrato, error)
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	Atualizar(db *gorm.DB, c *Contrato) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Order("created_at DESC").Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) ListarPorLead(db *gorm.DB, leadID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Where("lead_id = ?", leadID).Order("created_at DESC").Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Contrato) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Contrato{}, id).Error
}
