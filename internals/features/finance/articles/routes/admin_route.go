package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"scolaria_backend/internals/features/finance/articles/controller"
)

func ArticleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArticleController(db)

	articles := admin.Group("/articles")
	articles.Post("/", ctrl.CreateArticle)
	articles.Get("/", ctrl.ListArticles)

	orders := admin.Group("/student-articles")
	orders.Post("/", ctrl.OrderArticle)
	orders.Get("/", ctrl.ListStudentArticles)
}
