package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	studentModel "scolaria_backend/internals/features/school/students/model"
	teacherModel "scolaria_backend/internals/features/school/teachers/model"
	"scolaria_backend/internals/features/users/user/dto"
	userModel "scolaria_backend/internals/features/users/user/model"
	helper "scolaria_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ======================= PROVISION ======================= */
// ProvisionUser creates an identity plus profile, role and role-specific
// record for a new teacher or student. Steps run in order; any failure after
// the identity exists rolls it back (best-effort) and reports the step that
// failed. Specialty attachment is non-fatal.
//
// POST /api/a/users
func (ctrl *UserController) ProvisionUser(c *fiber.Ctx) error {
	var req dto.ProvisionUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, err)
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	// 1) Identity
	user := userModel.UserModel{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hash),
		IsActive: true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Email already registered")
		}
		log.Println("[ERROR] create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	// 2) Profile
	profile := userModel.ProfileModel{
		UserID:    user.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     user.Email,
		Phone:     req.Phone,
	}
	if err := ctrl.DB.Create(&profile).Error; err != nil {
		ctrl.rollbackUser(user.ID)
		log.Println("[ERROR] create profile:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create profile")
	}

	// 3) Role assignment
	role := userModel.UserRole{
		UserID: user.ID,
		Role:   req.UserType,
	}
	if adminID, err := helper.GetUserIDFromToken(c); err == nil {
		role.AssignedBy = &adminID
	}
	if err := ctrl.DB.Create(&role).Error; err != nil {
		ctrl.rollbackUser(user.ID)
		log.Println("[ERROR] assign role:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign role")
	}

	// 4) Role-specific record
	switch req.UserType {
	case dto.UserTypeTeacher:
		return ctrl.createTeacher(c, &req, user.ID)
	default:
		return ctrl.createStudent(c, &req, user.ID)
	}
}

func (ctrl *UserController) createTeacher(c *fiber.Ctx, req *dto.ProvisionUserRequest, userID uuid.UUID) error {
	teacher := teacherModel.TeacherModel{
		TeacherUserID:     userID,
		TeacherEmployeeID: req.EmployeeID,
	}
	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		ctrl.rollbackUser(userID)
		log.Println("[ERROR] create teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher record")
	}

	// Non-fatal: teacher record stands without specialties on failure.
	for _, name := range req.Specialties {
		sp := teacherModel.TeacherSpecialtyModel{
			TeacherSpecialtyTeacherID: teacher.TeacherID,
			TeacherSpecialtyName:      name,
		}
		if err := ctrl.DB.Create(&sp).Error; err != nil {
			log.Printf("[WARN] attach specialty %q failed for teacher %s: %v", name, teacher.TeacherID, err)
		}
	}

	return helper.JsonCreated(c, "Teacher account created", fiber.Map{
		"user_id":    userID,
		"teacher_id": teacher.TeacherID,
	})
}

func (ctrl *UserController) createStudent(c *fiber.Ctx, req *dto.ProvisionUserRequest, userID uuid.UUID) error {
	var birthday *time.Time
	if req.Birthday != nil {
		if t, err := time.Parse("2006-01-02", *req.Birthday); err == nil {
			birthday = &t
		}
	}

	student := studentModel.StudentModel{
		StudentUserID:      userID,
		StudentMatricule:   strings.TrimSpace(*req.Matricule),
		StudentClassID:     req.ClassID,
		StudentBirthday:    birthday,
		StudentParentName:  req.ParentName,
		StudentParentPhone: req.ParentPhone,
	}
	if err := ctrl.DB.Create(&student).Error; err != nil {
		ctrl.rollbackUser(userID)
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Matricule already registered")
		}
		log.Println("[ERROR] create student:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student record")
	}

	return helper.JsonCreated(c, "Student account created", fiber.Map{
		"user_id":    userID,
		"student_id": student.StudentID,
	})
}

// rollbackUser removes the identity created earlier in the same request,
// dependents first since the schema declares no cascading deletes.
// Best-effort compensation: a failure is only logged.
func (ctrl *UserController) rollbackUser(userID uuid.UUID) {
	if err := ctrl.DB.Where("user_id = ?", userID).Delete(&userModel.UserRole{}).Error; err != nil {
		log.Printf("[ERROR] rollback role for user %s failed: %v", userID, err)
	}
	if err := ctrl.DB.Where("user_id = ?", userID).Delete(&userModel.ProfileModel{}).Error; err != nil {
		log.Printf("[ERROR] rollback profile for user %s failed: %v", userID, err)
	}
	if err := ctrl.DB.Where("id = ?", userID).Delete(&userModel.UserModel{}).Error; err != nil {
		log.Printf("[ERROR] rollback user %s failed: %v", userID, err)
	}
}

/* ======================= LIST ======================= */
// GET /api/a/users
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := ctrl.DB.Order("created_at DESC").Limit(200).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.JsonOK(c, "Users fetched", users)
}
