package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/localserve/marketplace-api/auth"
	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/middleware"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/utils"
)

// AuthController handles registration, login and the current-user endpoint.
type AuthController struct {
	Issuer   *auth.TokenIssuer
	AdminKey string
}

func NewAuthController(issuer *auth.TokenIssuer, adminKey string) *AuthController {
	return &AuthController{Issuer: issuer, AdminKey: adminKey}
}

type RegisterInput struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Password     string          `json:"password"`
	Phone        string          `json:"phone"`
	Role         models.UserRole `json:"role"`
	BusinessName string          `json:"business_name"`
	Bio          string          `json:"bio"`
	Experience   int             `json:"experience"`
	ServiceAreas []string        `json:"service_areas"`
	AdminKey     string          `json:"admin_key"`
}

// Register creates a new user, hashes the password and returns a token with
// a redacted user view. Email uniqueness is checked up front and again
// enforced by the unique index, so two concurrent registrations cannot both
// land.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot parse JSON",
		})
	}

	if input.Email == "" || input.Password == "" || input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "name, email and password are required",
		})
	}

	if input.Role == "" {
		input.Role = models.RoleCustomer
	}
	if !models.ValidRole(input.Role) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "invalid role",
		})
	}
	if input.Role == models.RoleAdmin && (ac.AdminKey == "" || input.AdminKey != ac.AdminKey) {
		return utils.Fail(c, models.ErrForbidden)
	}

	var existing models.User
	if db.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return utils.Fail(c, models.ErrDuplicateEmail)
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to hash password",
		})
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Phone:    input.Phone,
		Role:     input.Role,
	}
	if user.Role == models.RoleProvider {
		user.Profile = &models.ProviderProfile{
			BusinessName: input.BusinessName,
			Bio:          input.Bio,
			Experience:   input.Experience,
			ServiceAreas: input.ServiceAreas,
		}
	}

	if err := db.DB.Create(&user).Error; err != nil {
		// The unique index closes the check-then-insert race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.Fail(c, models.ErrDuplicateEmail)
		}
		logger.Get().Error("failed to create user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to create user",
		})
	}

	token, err := ac.Issuer.Issue(&user)
	if err != nil {
		logger.Get().Error("failed to sign token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the identical response to avoid user enumeration.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot parse JSON",
		})
	}

	var user models.User
	if err := db.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Fail(c, models.ErrInvalidCredentials)
		}
		logger.Get().Error("failed to look up user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to log in",
		})
	}

	if !auth.CheckPassword(user.Password, input.Password) {
		return utils.Fail(c, models.ErrInvalidCredentials)
	}

	token, err := ac.Issuer.Issue(&user)
	if err != nil {
		logger.Get().Error("failed to sign token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the profile of the authenticated user.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.Fail(c, models.ErrUnauthenticated)
	}

	if user.Role == models.RoleProvider {
		if err := db.DB.Preload("Profile").First(user, user.ID).Error; err != nil {
			logger.Get().Error("failed to load provider profile", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "failed to fetch profile",
			})
		}
	}
	return c.JSON(fiber.Map{"user": user})
}
