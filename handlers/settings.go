package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Asseton1/Asseton-Backend/config"
	"github.com/Asseton1/Asseton-Backend/models"
)

const siteSettingsID = int64(1)

type SettingsController struct {
	collection *mongo.Collection
}

func NewSettingsController() *SettingsController {
	return &SettingsController{
		collection: config.GetCollection("site_settings"),
	}
}

// GetSiteSettings returns the singleton settings document, creating it with
// defaults on first access. Only the admin settings endpoint ever mutates it.
func GetSiteSettings(ctx context.Context, collection *mongo.Collection) (models.SiteSettings, error) {
	now := time.Now()
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var settings models.SiteSettings
	err := collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": siteSettingsID},
		bson.M{"$setOnInsert": bson.M{
			"filterRadius": models.DefaultFilterRadius,
			"createdAt":    now,
			"updatedAt":    now,
		}},
		opts,
	).Decode(&settings)
	return settings, err
}

func (sc *SettingsController) GetSettings(c echo.Context) error {
	userRole := c.Get("user_role").(string)
	if userRole != models.RoleAdmin {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied"})
	}

	settings, err := GetSiteSettings(context.Background(), sc.collection)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch settings"})
	}
	return c.JSON(http.StatusOK, settings)
}

func (sc *SettingsController) UpdateSettings(c echo.Context) error {
	userRole := c.Get("user_role").(string)
	if userRole != models.RoleAdmin {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied"})
	}

	var req models.UpdateSiteSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.FilterRadius == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "filterRadius is required"})
	}
	if *req.FilterRadius <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "filterRadius must be greater than zero"})
	}

	ctx := context.Background()
	if _, err := GetSiteSettings(ctx, sc.collection); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch settings"})
	}

	_, err := sc.collection.UpdateOne(
		ctx,
		bson.M{"_id": siteSettingsID},
		bson.M{"$set": bson.M{"filterRadius": *req.FilterRadius, "updatedAt": time.Now()}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update settings"})
	}

	settings, err := GetSiteSettings(ctx, sc.collection)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated settings"})
	}
	return c.JSON(http.StatusOK, settings)
}
