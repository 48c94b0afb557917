package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/finance/articles/dto"
	"scolaria_backend/internals/features/finance/articles/model"
	studentModel "scolaria_backend/internals/features/school/students/model"
	helper "scolaria_backend/internals/helpers"
)

type ArticleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{DB: db, Validate: validator.New()}
}

// CreateArticle adds a fee article to the catalog.
func (ctrl *ArticleController) CreateArticle(c *fiber.Ctx) error {
	var req dto.CreateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	article := req.ToModel()
	if err := ctrl.DB.Create(article).Error; err != nil {
		log.Printf("[ERROR] create article: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create article")
	}
	return helper.JsonCreated(c, "Article created", article)
}

func (ctrl *ArticleController) ListArticles(c *fiber.Ctx) error {
	var articles []model.ArticleModel
	if err := ctrl.DB.Order("article_created_at DESC").Find(&articles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch articles")
	}
	return helper.JsonOK(c, "Articles fetched", articles)
}

// OrderArticle creates a student order for a catalog article. The amount is
// copied from the article so later price changes do not move open orders.
func (ctrl *ArticleController) OrderArticle(c *fiber.Ctx) error {
	var req dto.OrderArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify student")
	}

	var article model.ArticleModel
	if err := ctrl.DB.First(&article, "article_id = ?", req.ArticleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch article")
	}

	order := &model.StudentArticleModel{
		StudentArticleStudentID: student.StudentID,
		StudentArticleArticleID: article.ArticleID,
		StudentArticleAmount:    article.ArticleAmount,
		StudentArticleStatus:    model.StudentArticlePending,
	}
	if err := ctrl.DB.Create(order).Error; err != nil {
		log.Printf("[ERROR] order article: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create order")
	}
	return helper.JsonCreated(c, "Article ordered", order)
}

// ListStudentArticles supports ?student_id= and ?status= filters.
func (ctrl *ArticleController) ListStudentArticles(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.StudentArticleModel{})
	if sid := c.Query("student_id"); sid != "" {
		q = q.Where("student_article_student_id = ?", sid)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("student_article_status = ?", status)
	}

	var orders []model.StudentArticleModel
	if err := q.Order("student_article_created_at DESC").Limit(200).Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch orders")
	}
	return helper.JsonOK(c, "Student articles fetched", orders)
}
