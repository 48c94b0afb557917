package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentArticleStatus string

const (
	StudentArticlePending StudentArticleStatus = "pending"
	StudentArticlePartial StudentArticleStatus = "partial"
	StudentArticlePaid    StudentArticleStatus = "paid"
)

// StudentArticleModel is a student's order of a fee article. The amount is
// snapshotted from the article at order time; payment_date is set exactly
// once, when the order first reaches paid.
type StudentArticleModel struct {
	StudentArticleID          uuid.UUID            `gorm:"column:student_article_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_article_id"`
	StudentArticleStudentID   uuid.UUID            `gorm:"column:student_article_student_id;type:uuid;not null" json:"student_article_student_id"`
	StudentArticleArticleID   uuid.UUID            `gorm:"column:student_article_article_id;type:uuid;not null" json:"student_article_article_id"`
	StudentArticleAmount      int64                `gorm:"column:student_article_amount;not null;check:student_article_amount >= 0" json:"student_article_amount"`
	StudentArticleAmountPaid  int64                `gorm:"column:student_article_amount_paid;not null;default:0" json:"student_article_amount_paid"`
	StudentArticleStatus      StudentArticleStatus `gorm:"column:student_article_status;type:varchar(20);not null;default:pending" json:"student_article_status"`
	StudentArticlePaymentDate *time.Time           `gorm:"column:student_article_payment_date" json:"student_article_payment_date,omitempty"`
	StudentArticleCreatedAt   time.Time            `gorm:"column:student_article_created_at;autoCreateTime" json:"student_article_created_at"`
	StudentArticleUpdatedAt   *time.Time           `gorm:"column:student_article_updated_at;autoUpdateTime" json:"student_article_updated_at,omitempty"`
}

func (StudentArticleModel) TableName() string { return "student_articles" }
