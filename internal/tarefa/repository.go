package tarefa

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, t *Tarefa) error
	ListarTodas(db *gorm.DB) ([]Tarefa, error)
	ListarPorResponsavel(db *gorm.DB, responsavelID uint) ([]Tarefa, error)
	ListarPorLead(db *gorm.DB, leadID uint) ([]Tarefa, error)
	BuscarPorID(db *gorm.DB, id uint) (*Tarefa, error)
	Atualizar(db *gorm.DB, t *Tarefa) error
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, t *Tarefa) error {
	return db.Create(t).Error
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Tarefa, error) {
	var tarefas []Tarefa
	err := db.Order("prazo IS NULL, prazo").Find(&tarefas).Error
	return tarefas, err
}

func (r *repositoryImpl) ListarPorResponsavel(db *gorm.DB, responsavelID uint) ([]Tarefa, error) {
	var tarefas []Tarefa
	err := db.Where("responsavel_id = ?", responsavelID).Order("prazo IS NULL, prazo").Find(&tarefas).Error
	return tarefas, err
}

func (r *repositoryImpl) ListarPorLead(db *gorm.DB, leadID uint) ([]Tarefa, error) {
	var tarefas []Tarefa
	err := db.Where("lead_id = ?", leadID).Find(&tarefas).Error
	return tarefas, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Tarefa, error) {
	var t Tarefa
	err := db.First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, t *Tarefa) error {
	return db.Save(t).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&Tarefa{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Tarefa{}, id).Error
}
