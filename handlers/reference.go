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

// NamedController serves the flat reference collections that are just an id
// and a name: states, features, property types.
type NamedController struct {
	collection *mongo.Collection
	counters   *mongo.Collection
	sequence   string
}

func NewStateController() *NamedController {
	return newNamedController("states")
}

func NewFeatureController() *NamedController {
	return newNamedController("features")
}

func NewPropertyTypeController() *NamedController {
	return newNamedController("property_types")
}

func newNamedController(collection string) *NamedController {
	return &NamedController{
		collection: config.GetCollection(collection),
		counters:   config.GetCollection("counters"),
		sequence:   collection,
	}
}

type namedRequest struct {
	Name string `json:"name"`
}

// namedRecord is the shared document shape of the flat reference collections.
type namedRecord struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (nc *NamedController) List(c echo.Context) error {
	cursor, err := nc.collection.Find(context.Background(), bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch records"})
	}
	defer cursor.Close(context.Background())

	records := []namedRecord{}
	for cursor.Next(context.Background()) {
		var record namedRecord
		if err := cursor.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return c.JSON(http.StatusOK, records)
}

func (nc *NamedController) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}
	var record namedRecord
	err = nc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Record not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch record"})
	}
	return c.JSON(http.StatusOK, record)
}

func (nc *NamedController) Create(c echo.Context) error {
	var req namedRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}

	ctx := context.Background()
	id, err := utils.NextSequence(ctx, nc.counters, nc.sequence)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to allocate ID"})
	}

	now := time.Now()
	record := namedRecord{ID: id, Name: req.Name, CreatedAt: now, UpdatedAt: now}
	if _, err := nc.collection.InsertOne(ctx, record); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create record"})
	}
	return c.JSON(http.StatusCreated, record)
}

func (nc *NamedController) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}
	var req namedRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}

	ctx := context.Background()
	result, err := nc.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"name": req.Name, "updatedAt": time.Now()}})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update record"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Record not found"})
	}

	var record namedRecord
	if err := nc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated record"})
	}
	return c.JSON(http.StatusOK, record)
}

func (nc *NamedController) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid ID"})
	}
	result, err := nc.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete record"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Record not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Record deleted successfully"})
}

// DistrictController adds the state scoping on top of the flat reference
// handlers: each district belongs to exactly one state.
type DistrictController struct {
	collection *mongo.Collection
	states     *mongo.Collection
	counters   *mongo.Collection
}

func NewDistrictController() *DistrictController {
	return &DistrictController{
		collection: config.GetCollection("districts"),
		states:     config.GetCollection("states"),
		counters:   config.GetCollection("counters"),
	}
}

type districtRequest struct {
	Name    string `json:"name"`
	StateID int64  `json:"stateId"`
}

func (dc *DistrictController) List(c echo.Context) error {
	filter := bson.M{}
	if stateID := c.QueryParam("state_id"); stateID != "" {
		if id, err := strconv.ParseInt(stateID, 10, 64); err == nil {
			filter["stateId"] = id
		}
	}

	cursor, err := dc.collection.Find(context.Background(), filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch districts"})
	}
	defer cursor.Close(context.Background())

	districts := []models.District{}
	for cursor.Next(context.Background()) {
		var district models.District
		if err := cursor.Decode(&district); err != nil {
			continue
		}
		districts = append(districts, district)
	}
	return c.JSON(http.StatusOK, districts)
}

func (dc *DistrictController) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid district ID"})
	}
	var district models.District
	err = dc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&district)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "District not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch district"})
	}
	return c.JSON(http.StatusOK, district)
}

func (dc *DistrictController) Create(c echo.Context) error {
	var req districtRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}

	ctx := context.Background()
	count, err := dc.states.CountDocuments(ctx, bson.M{"_id": req.StateID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check state"})
	}
	if count == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid state ID"})
	}

	id, err := utils.NextSequence(ctx, dc.counters, "districts")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to allocate ID"})
	}

	now := time.Now()
	district := models.District{ID: id, StateID: req.StateID, Name: req.Name, CreatedAt: now, UpdatedAt: now}
	if _, err := dc.collection.InsertOne(ctx, district); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create district"})
	}
	return c.JSON(http.StatusCreated, district)
}

func (dc *DistrictController) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid district ID"})
	}
	var req districtRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	ctx := context.Background()
	updateDoc := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.StateID != 0 {
		count, err := dc.states.CountDocuments(ctx, bson.M{"_id": req.StateID})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check state"})
		}
		if count == 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid state ID"})
		}
		updateDoc["stateId"] = req.StateID
	}

	result, err := dc.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update district"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "District not found"})
	}

	var district models.District
	if err := dc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&district); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated district"})
	}
	return c.JSON(http.StatusOK, district)
}

func (dc *DistrictController) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid district ID"})
	}
	result, err := dc.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete district"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "District not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "District deleted successfully"})
}

// CityController mirrors DistrictController one level down the hierarchy.
type CityController struct {
	collection *mongo.Collection
	districts  *mongo.Collection
	counters   *mongo.Collection
}

func NewCityController() *CityController {
	return &CityController{
		collection: config.GetCollection("cities"),
		districts:  config.GetCollection("districts"),
		counters:   config.GetCollection("counters"),
	}
}

type cityRequest struct {
	Name       string `json:"name"`
	DistrictID int64  `json:"districtId"`
}

func (cc *CityController) List(c echo.Context) error {
	filter := bson.M{}
	if districtID := c.QueryParam("district_id"); districtID != "" {
		if id, err := strconv.ParseInt(districtID, 10, 64); err == nil {
			filter["districtId"] = id
		}
	}

	cursor, err := cc.collection.Find(context.Background(), filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cities"})
	}
	defer cursor.Close(context.Background())

	cities := []models.City{}
	for cursor.Next(context.Background()) {
		var city models.City
		if err := cursor.Decode(&city); err != nil {
			continue
		}
		cities = append(cities, city)
	}
	return c.JSON(http.StatusOK, cities)
}

func (cc *CityController) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid city ID"})
	}
	var city models.City
	err = cc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&city)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "City not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch city"})
	}
	return c.JSON(http.StatusOK, city)
}

func (cc *CityController) Create(c echo.Context) error {
	var req cityRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}

	ctx := context.Background()
	count, err := cc.districts.CountDocuments(ctx, bson.M{"_id": req.DistrictID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check district"})
	}
	if count == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid district ID"})
	}

	id, err := utils.NextSequence(ctx, cc.counters, "cities")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to allocate ID"})
	}

	now := time.Now()
	city := models.City{ID: id, DistrictID: req.DistrictID, Name: req.Name, CreatedAt: now, UpdatedAt: now}
	if _, err := cc.collection.InsertOne(ctx, city); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create city"})
	}
	return c.JSON(http.StatusCreated, city)
}

func (cc *CityController) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid city ID"})
	}
	var req cityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	ctx := context.Background()
	updateDoc := bson.M{"updatedAt": time.Now()}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.DistrictID != 0 {
		count, err := cc.districts.CountDocuments(ctx, bson.M{"_id": req.DistrictID})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check district"})
		}
		if count == 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid district ID"})
		}
		updateDoc["districtId"] = req.DistrictID
	}

	result, err := cc.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update city"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "City not found"})
	}

	var city models.City
	if err := cc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&city); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated city"})
	}
	return c.JSON(http.StatusOK, city)
}

func (cc *CityController) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid city ID"})
	}
	result, err := cc.collection.DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete city"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "City not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "City deleted successfully"})
}
