package lead

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, l *Lead) error
	ListarTodos(db *gorm.DB) ([]Lead, error)
	ListarPorStatus(db *gorm.DB, status string) ([]Lead, error)
	ListarPorResponsavel(db *gorm.DB, responsavelID uint) ([]Lead, error)
	BuscarPorID(db *gorm.DB, id uint) (*Lead, error)
	ExisteDocumento(db *gorm.DB, documento string) (bool, error)
	Atualizar(db *gorm.DB, l *Lead) error
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, l *Lead) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Lead, error) {
	var leads []Lead
	err := db.Order("created_at DESC").Find(&leads).Error
	return leads, err
}

func (r *repositoryImpl) ListarPorStatus(db *gorm.DB, status string) ([]Lead, error) {
	var leads []Lead
	err := db.Where("status = ?", status).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

func (r *repositoryImpl) ListarPorResponsavel(db *gorm.DB, responsavelID uint) ([]Lead, error) {
	var leads []Lead
	err := db.Where("responsavel_id = ?", responsavelID).Order("created_at DESC").Find(&leads).Error
	return leads, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Lead, error) {
	var l Lead
	err := db.Preload("Comentarios").Preload("Propostas").Preload("Contratos").First(&l, id).Error
	return &l, err
}

func (r *repositoryImpl) ExisteDocumento(db *gorm.DB, documento string) (bool, error) {
	if documento == "" {
		return false, nil
	}
	var total int64
	err := db.Model(&Lead{}).Where("documento = ?", documento).Count(&total).Error
	return total > 0, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, l *Lead) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&Lead{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Lead{}, id).Error
}
