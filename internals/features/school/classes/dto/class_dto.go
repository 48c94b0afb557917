package dto

import (
	"scolaria_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Level *string `json:"level" validate:"omitempty,max=50"`
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassName:  r.Name,
		ClassLevel: r.Level,
	}
}
