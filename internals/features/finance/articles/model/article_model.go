package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleModel is the catalog of optional fee articles (uniforms, books,
// excursions) a student can order on top of regular invoices.
type ArticleModel struct {
	ArticleID          uuid.UUID      `gorm:"column:article_id;type:uuid;default:gen_random_uuid();primaryKey" json:"article_id"`
	ArticleName        string         `gorm:"column:article_name;size:200;not null" json:"article_name"`
	ArticleAmount      int64          `gorm:"column:article_amount;not null;check:article_amount >= 0" json:"article_amount"`
	ArticleDescription *string        `gorm:"column:article_description;type:text" json:"article_description,omitempty"`
	ArticleCreatedAt   time.Time      `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt   *time.Time     `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at,omitempty"`
	ArticleDeletedAt   gorm.DeletedAt `gorm:"column:article_deleted_at;index" json:"article_deleted_at,omitempty"`
}

func (ArticleModel) TableName() string { return "articles" }
