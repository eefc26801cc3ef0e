package relatorio

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// GET /relatorios/resumo
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.Repository.MontarResumo(h.DB)
	if err != nil {
		http.Error(w, "erro ao montar resumo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumo)
}
