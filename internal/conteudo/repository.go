package conteudo

import "gorm.io/gorm"

type Repository interface {
	SalvarBloco(db *gorm.DB, b *BlocoConteudo) error
	ListarBlocos(db *gorm.DB, somentePublicados bool) ([]BlocoConteudo, error)
	BuscarBlocoPorChave(db *gorm.DB, chave string) (*BlocoConteudo, error)
	DeletarBloco(db *gorm.DB, id uint) error

	BuscarTema(db *gorm.DB) (*Tema, error)
	SalvarTema(db *gorm.DB, t *Tema) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) SalvarBloco(db *gorm.DB, b *BlocoConteudo) error {
	return db.Save(b).Error
}

func (r *repositoryImpl) ListarBlocos(db *gorm.DB, somentePublicados bool) ([]BlocoConteudo, error) {
	var blocos []BlocoConteudo
	q := db.Order("chave")
	if somentePublicados {
		q = q.Where("publicado = ?", true)
	}
	err := q.Find(&blocos).Error
	return blocos, err
}

func (r *repositoryImpl) BuscarBlocoPorChave(db *gorm.DB, chave string) (*BlocoConteudo, error) {
	var b BlocoConteudo
	err := db.Where("chave = ?", chave).First(&b).Error
	return &b, err
}

func (r *repositoryImpl) DeletarBloco(db *gorm.DB, id uint) error {
	return db.Delete(&BlocoConteudo{}, id).Error
}

func (r *repositoryImpl) BuscarTema(db *gorm.DB) (*Tema, error) {
	var t Tema
	err := db.First(&t).Error
	return &t, err
}

// SalvarTema mantém uma única linha de tema: atualiza a existente ou
// cria a primeira.
func (r *repositoryImpl) SalvarTema(db *gorm.DB, t *Tema) error {
	var atual Tema
	if err := db.First(&atual).Error; err == nil {
		t.ID = atual.ID
	}
	return db.Save(t).Error
}
