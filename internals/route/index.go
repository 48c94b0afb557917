package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articleRoutes "scolaria_backend/internals/features/finance/articles/routes"
	invoiceRoutes "scolaria_backend/internals/features/finance/invoices/routes"
	notificationRoutes "scolaria_backend/internals/features/home/notifications/route"
	paymentRoutes "scolaria_backend/internals/features/payment/transactions/routes"
	classRoutes "scolaria_backend/internals/features/school/classes/routes"
	studentRoutes "scolaria_backend/internals/features/school/students/routes"
	teacherRoutes "scolaria_backend/internals/features/school/teachers/routes"
	authRoute "scolaria_backend/internals/features/users/auth/route"
	userRoutes "scolaria_backend/internals/features/users/user/routes"
	authMiddleware "scolaria_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Mounting auth routes...")
	authRoute.AuthRoutes(api, db)

	// Gateway callbacks authenticate via shared secret, not JWT.
	log.Println("[INFO] Mounting payment webhook routes...")
	paymentRoutes.PaymentWebhookRoutes(api, db)

	// ===================== USER (JWT) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	notificationRoutes.NotificationUserRoutes(user, db)

	// ===================== ADMIN (JWT + role) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyAdmin(),
	)

	userRoutes.UserAdminRoutes(admin, db)
	paymentRoutes.PaymentAdminRoutes(admin, db)
	invoiceRoutes.InvoiceAdminRoutes(admin, db)
	articleRoutes.ArticleAdminRoutes(admin, db)
	classRoutes.ClassAdminRoutes(admin, db)
	studentRoutes.StudentAdminRoutes(admin, db)
	teacherRoutes.TeacherAdminRoutes(admin, db)
	notificationRoutes.NotificationAdminRoutes(admin, db)
}
