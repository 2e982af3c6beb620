package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/localserve/marketplace-api/db"
	"github.com/localserve/marketplace-api/logger"
	"github.com/localserve/marketplace-api/middleware"
	"github.com/localserve/marketplace-api/models"
	"github.com/localserve/marketplace-api/utils"
)

// GetProfile returns the authenticated user's profile.
func GetProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

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

type ProfileUpdateInput struct {
	Name         *string   `json:"name"`
	Phone        *string   `json:"phone"`
	BusinessName *string   `json:"business_name"`
	Bio          *string   `json:"bio"`
	Experience   *int      `json:"experience"`
	ServiceAreas *[]string `json:"service_areas"`
}

// UpdateProfile mutates the owning identity's profile. Provider-only fields
// are persisted to the provider profile row and ignored for other roles.
func UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	input := new(ProfileUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot parse JSON",
		})
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if err := db.DB.Save(user).Error; err != nil {
		logger.Get().Error("failed to update profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to update profile",
		})
	}

	if user.Role == models.RoleProvider {
		var profile models.ProviderProfile
		if err := db.DB.Where("user_id = ?", user.ID).FirstOrCreate(&profile, models.ProviderProfile{UserID: user.ID}).Error; err != nil {
			logger.Get().Error("failed to load provider profile", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "failed to update profile",
			})
		}
		if input.BusinessName != nil {
			profile.BusinessName = *input.BusinessName
		}
		if input.Bio != nil {
			profile.Bio = *input.Bio
		}
		if input.Experience != nil {
			profile.Experience = *input.Experience
		}
		if input.ServiceAreas != nil {
			profile.ServiceAreas = *input.ServiceAreas
		}
		if err := db.DB.Save(&profile).Error; err != nil {
			logger.Get().Error("failed to update provider profile", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "failed to update profile",
			})
		}
		user.Profile = &profile
	}

	return c.JSON(fiber.Map{"user": user})
}

// UpdateProfilePicture uploads a new profile picture and stores its URL.
func UpdateProfilePicture(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "picture file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "cannot read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadImage(file, fmt.Sprintf("user-%d", user.ID), "profile-pictures")
	if err != nil {
		logger.Get().Error("failed to upload profile picture", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to upload picture",
		})
	}

	user.ProfilePic = url
	if err := db.DB.Model(user).Update("profile_pic", url).Error; err != nil {
		logger.Get().Error("failed to save profile picture", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "failed to save picture",
		})
	}

	return c.JSON(fiber.Map{"user": user})
}
