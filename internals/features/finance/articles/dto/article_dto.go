package dto

import (
	"github.com/google/uuid"

	"scolaria_backend/internals/features/finance/articles/model"
)

// ================== REQUEST ==================
type CreateArticleRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Amount      int64   `json:"amount" validate:"required,gt=0"`
	Description *string `json:"description"`
}

// OrderArticleRequest assigns a catalog article to a student.
type OrderArticleRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	ArticleID uuid.UUID `json:"article_id" validate:"required"`
}

// ================ CONVERSION =================
func (r *CreateArticleRequest) ToModel() *model.ArticleModel {
	return &model.ArticleModel{
		ArticleName:        r.Name,
		ArticleAmount:      r.Amount,
		ArticleDescription: r.Description,
	}
}
