package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"scolaria_backend/internals/configs"
	authModel "scolaria_backend/internals/features/users/auth/model"
	authService "scolaria_backend/internals/features/users/auth/service"
	userModel "scolaria_backend/internals/features/users/user/model"
	helper "scolaria_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ======================= LOGIN ======================= */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email and password are required")
	}

	user, err := ctrl.findActiveUserByEmail(input.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return ctrl.issueToken(c, user)
}

/* ======================= LOGIN (GOOGLE) ======================= */
// Google sign-in for accounts that already exist; the provisioner is the only
// way to create accounts.
//
// POST /api/auth/login-google
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	user, err := ctrl.findActiveUserByEmail(claimSet.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No account for this Google identity")
	}

	return ctrl.issueToken(c, user)
}

/* ======================= LOGOUT ======================= */
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.JsonError(c, fiber.StatusUnauthorized, "No token provided")
	}
	tokenString := fields[1]

	expiredAt := time.Now().Add(24 * time.Hour)
	if claims, err := authService.ParseAccessToken(tokenString); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate") && !strings.Contains(low, "unique") {
			log.Println("[ERROR] blacklist insert:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
		}
	}

	return helper.JsonOK(c, "Logged out", nil)
}

/* ===================== helpers ===================== */

func (ctrl *AuthController) findActiveUserByEmail(email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	err := ctrl.DB.
		Where("email = ? AND is_active = TRUE", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[ERROR] user lookup:", err)
		}
		return nil, err
	}
	return &user, nil
}

func (ctrl *AuthController) issueToken(c *fiber.Ctx, user *userModel.UserModel) error {
	var role userModel.UserRole
	if err := ctrl.DB.Where("user_id = ?", user.ID).First(&role).Error; err != nil {
		log.Println("[ERROR] role lookup:", err)
		return helper.JsonError(c, fiber.StatusForbidden, "No role assigned to this account")
	}

	token, err := authService.CreateAccessToken(user.ID, user.Email, role.Role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"user_id":      user.ID,
		"role":         role.Role,
	})
}
