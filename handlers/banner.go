package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Asseton1/Asseton-Backend/config"
	"github.com/Asseton1/Asseton-Backend/models"
	"github.com/Asseton1/Asseton-Backend/utils"
)

// BannerController serves the hero and offer banner collections. The site
// shows a single banner of each kind, so creating one replaces all existing
// banners in that collection.
type BannerController struct {
	collection *mongo.Collection
	counters   *mongo.Collection
	sequence   string
}

func NewHeroBannerController() *BannerController {
	return &BannerController{
		collection: config.GetCollection("hero_banners"),
		counters:   config.GetCollection("counters"),
		sequence:   "hero_banners",
	}
}

func NewOfferBannerController() *BannerController {
	return &BannerController{
		collection: config.GetCollection("offer_banners"),
		counters:   config.GetCollection("counters"),
		sequence:   "offer_banners",
	}
}

type bannerRequest struct {
	ImageURL string `json:"imageUrl"`
}

func (bc *BannerController) List(c echo.Context) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := bc.collection.Find(context.Background(), bson.M{}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch banners"})
	}
	defer cursor.Close(context.Background())

	banners := []models.Banner{}
	for cursor.Next(context.Background()) {
		var banner models.Banner
		if err := cursor.Decode(&banner); err != nil {
			continue
		}
		banners = append(banners, banner)
	}
	return c.JSON(http.StatusOK, banners)
}

func (bc *BannerController) Create(c echo.Context) error {
	var req bannerRequest
	if err := c.Bind(&req); err != nil || req.ImageURL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "imageUrl is required"})
	}

	ctx := context.Background()
	if _, err := bc.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to replace banners"})
	}

	id, err := utils.NextSequence(ctx, bc.counters, bc.sequence)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to allocate ID"})
	}

	banner := models.Banner{ID: id, ImageURL: req.ImageURL, CreatedAt: time.Now()}
	if _, err := bc.collection.InsertOne(ctx, banner); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create banner"})
	}
	return c.JSON(http.StatusCreated, banner)
}

func (bc *BannerController) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid banner ID"})
	}
	result, err := bc.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete banner"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Banner not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Banner deleted successfully"})
}
