package webhook

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, wh *Webhook) error
	ListarTodos(db *gorm.DB) ([]Webhook, error)
	BuscarPorID(db *gorm.DB, id uint) (*Webhook, error)
	Atualizar(db *gorm.DB, wh *Webhook) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, wh *Webhook) error {
	return db.Create(wh).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Webhook, error) {
	var hooks []Webhook
	err := db.Find(&hooks).Error
	return hooks, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Webhook, error) {
	var wh Webhook
	err := db.First(&wh, id).Error
	return &wh, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, wh *Webhook) error {
	return db.Save(wh).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Webhook{}, id).Error
}
