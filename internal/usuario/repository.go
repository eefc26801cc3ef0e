package usuario

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, u *Usuario) error
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	Atualizar(db *gorm.DB, id uint, dados *Usuario) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Create(u).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	err := db.First(&u, id).Error
	return &u, err
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	err := db.Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, dados *Usuario) error {
	return db.Model(&Usuario{}).Where("id = ?", id).Updates(map[string]interface{}{
		"nome":      dados.Nome,
		"sobrenome": dados.Sobrenome,
		"telefone":  dados.Telefone,
		"foto":      dados.Foto,
	}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}
