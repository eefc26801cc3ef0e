package modelo

import "gorm.io/gorm"

type Repository interface {
	CriarCampo(db *gorm.DB, c *CampoModelo) error
	ListarCampos(db *gorm.DB) ([]CampoModelo, error)
	BuscarCampoPorID(db *gorm.DB, id uint) (*CampoModelo, error)
	AtualizarCampo(db *gorm.DB, c *CampoModelo) error
	DeletarCampo(db *gorm.DB, id uint) error

	CriarModelo(db *gorm.DB, m *ModeloDocumento) error
	ListarModelos(db *gorm.DB) ([]ModeloDocumento, error)
	BuscarModeloPorID(db *gorm.DB, id uint) (*ModeloDocumento, error)
	AtualizarModelo(db *gorm.DB, m *ModeloDocumento) error
	DeletarModelo(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) CriarCampo(db *gorm.DB, c *CampoModelo) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarCampos(db *gorm.DB) ([]CampoModelo, error) {
	var campos []CampoModelo
	err := db.Order("nome").Find(&campos).Error
	return campos, err
}

func (r *repositoryImpl) BuscarCampoPorID(db *gorm.DB, id uint) (*CampoModelo, error) {
	var c CampoModelo
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) AtualizarCampo(db *gorm.DB, c *CampoModelo) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) DeletarCampo(db *gorm.DB, id uint) error {
	return db.Delete(&CampoModelo{}, id).Error
}

func (r *repositoryImpl) CriarModelo(db *gorm.DB, m *ModeloDocumento) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) ListarModelos(db *gorm.DB) ([]ModeloDocumento, error) {
	var modelos []ModeloDocumento
	err := db.Order("nome").Find(&modelos).Error
	return modelos, err
}

func (r *repositoryImpl) BuscarModeloPorID(db *gorm.DB, id uint) (*ModeloDocumento, error) {
	var m ModeloDocumento
	err := db.First(&m, id).Error
	return &m, err
}

func (r *repositoryImpl) AtualizarModelo(db *gorm.DB, m *ModeloDocumento) error {
	return db.Save(m).Error
}

func (r *repositoryImpl) DeletarModelo(db *gorm.DB, id uint) error {
	return db.Delete(&ModeloDocumento{}, id).Error
}
