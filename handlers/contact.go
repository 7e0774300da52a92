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

// ContactController handles contact form submissions: anyone may submit,
// only admins may read or delete.
type ContactController struct {
	collection *mongo.Collection
	counters   *mongo.Collection
}

func NewContactController() *ContactController {
	return &ContactController{
		collection: config.GetCollection("contacts"),
		counters:   config.GetCollection("counters"),
	}
}

type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Subject     string `json:"subject"`
	BudgetRange string `json:"budgetRange"`
	Message     string `json:"message"`
}

func (cc *ContactController) CreateContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name, email, subject and message are required"})
	}

	ctx := context.Background()
	id, err := utils.NextSequence(ctx, cc.counters, "contacts")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to allocate ID"})
	}

	contact := models.Contact{
		ID:          id,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Subject:     req.Subject,
		BudgetRange: req.BudgetRange,
		Message:     req.Message,
		CreatedAt:   time.Now(),
	}
	if _, err := cc.collection.InsertOne(ctx, contact); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create contact"})
	}
	return c.JSON(http.StatusCreated, contact)
}

func (cc *ContactController) ListContacts(c echo.Context) error {
	userRole := c.Get("user_role").(string)
	if userRole != models.RoleAdmin {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied"})
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := cc.collection.Find(context.Background(), bson.M{}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch contacts"})
	}
	defer cursor.Close(context.Background())

	contacts := []models.Contact{}
	for cursor.Next(context.Background()) {
		var contact models.Contact
		if err := cursor.Decode(&contact); err != nil {
			continue
		}
		contacts = append(contacts, contact)
	}
	return c.JSON(http.StatusOK, contacts)
}

func (cc *ContactController) DeleteContact(c echo.Context) error {
	userRole := c.Get("user_role").(string)
	if userRole != models.RoleAdmin {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Access denied"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid contact ID"})
	}
	result, err := cc.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete contact"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Contact not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Contact deleted successfully"})
}
