package handlers

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Asseton1/Asseton-Backend/config"
	"github.com/Asseton1/Asseton-Backend/models"
	"github.com/Asseton1/Asseton-Backend/search"
	"github.com/Asseton1/Asseton-Backend/utils"
)

const listCachePrefix = "properties"

type PropertyController struct {
	collection *mongo.Collection
	states     *mongo.Collection
	districts  *mongo.Collection
	cities     *mongo.Collection
	features   *mongo.Collection
	types      *mongo.Collection
	settings   *mongo.Collection
	counters   *mongo.Collection
	search     *search.Service
}

func NewPropertyController() *PropertyController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	collection := config.GetCollection(collectionName)
	return &PropertyController{
		collection: collection,
		states:     config.GetCollection("states"),
		districts:  config.GetCollection("districts"),
		cities:     config.GetCollection("cities"),
		features:   config.GetCollection("features"),
		types:      config.GetCollection("property_types"),
		settings:   config.GetCollection("site_settings"),
		counters:   config.GetCollection("counters"),
		search:     search.NewService(collection),
	}
}

// ListProperties is the public search endpoint. Filter parameters never fail
// the request: an invalid value just means the filter is not applied.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := context.Background()

	params := search.Params{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	cacheKey := utils.GenerateQueryCacheKey(listCachePrefix, params)
	var cached []models.Property
	if found, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	settings, err := GetSiteSettings(ctx, pc.settings)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load site settings"})
	}

	properties, err := pc.search.Search(ctx, params, settings.FilterRadius)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}

	_ = utils.SetCached(ctx, cacheKey, properties, 30*time.Second)

	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	var property models.Property
	err = pc.collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	var req models.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if !contains(models.PropertyForValues, req.PropertyFor) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "propertyFor must be one of rent, sell"})
	}
	if !contains(models.OwnershipValues, req.Ownership) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "ownership must be one of management, direct_owner"})
	}
	if !contains(models.AreaUnitValues, req.AreaUnit) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid area unit"})
	}
	if req.Title == "" || req.Price == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Title and price are required"})
	}
	if req.State == "" || req.District == "" || req.City == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "State, district and city are required"})
	}
	if req.Bedrooms < 0 || req.Bathrooms < 0 || req.Area < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Bedrooms, bathrooms and area must be non-negative"})
	}
	if !utils.ValidCoordinatePair(req.Latitude, req.Longitude) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Latitude and longitude must be supplied together as valid coordinates"})
	}

	ctx := context.Background()

	propertyType, err := pc.resolveType(ctx, req.PropertyType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property type"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve property type"})
	}

	featureRefs, err := pc.resolveFeatures(ctx, req.Features)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid feature ID"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve features"})
	}

	state, district, city, err := pc.resolveLocation(ctx, req.State, req.District, req.City)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve location"})
	}

	images, err := pc.buildImages(ctx, req.ImageURLs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store images"})
	}

	id, err := utils.NextSequence(ctx, pc.counters, "properties")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to allocate property ID"})
	}

	now := time.Now()
	property := models.Property{
		ID:                    id,
		PropertyFor:           req.PropertyFor,
		Ownership:             req.Ownership,
		ContactName:           req.ContactName,
		WhatsappNumber:        req.WhatsappNumber,
		PhoneNumber:           req.PhoneNumber,
		Email:                 req.Email,
		State:                 state,
		District:              district,
		City:                  city,
		Title:                 req.Title,
		Price:                 req.Price,
		PropertyType:          propertyType,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
		Bedrooms:              req.Bedrooms,
		Bathrooms:             req.Bathrooms,
		Area:                  req.Area,
		AreaUnit:              req.AreaUnit,
		Description:           req.Description,
		Features:              featureRefs,
		GoogleMapsURL:         req.GoogleMapsURL,
		GoogleEmbeddedMapLink: req.GoogleEmbeddedMapLink,
		YoutubeVideoLink:      req.YoutubeVideoLink,
		NearbyPlaces:          req.NearbyPlaces,
		BuiltYear:             req.BuiltYear,
		Furnishing:            req.Furnishing,
		ParkingSpaces:         req.ParkingSpaces,
		Images:                images,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if _, err := pc.collection.InsertOne(ctx, property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	_ = utils.InvalidateCached(ctx, listCachePrefix)

	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	ctx := context.Background()
	var property models.Property
	err = pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	var req models.UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updateDoc := bson.M{"updatedAt": time.Now()}

	if req.PropertyFor != nil {
		if !contains(models.PropertyForValues, *req.PropertyFor) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "propertyFor must be one of rent, sell"})
		}
		updateDoc["propertyFor"] = *req.PropertyFor
	}
	if req.Ownership != nil {
		if !contains(models.OwnershipValues, *req.Ownership) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "ownership must be one of management, direct_owner"})
		}
		updateDoc["ownership"] = *req.Ownership
	}
	if req.AreaUnit != nil {
		if !contains(models.AreaUnitValues, *req.AreaUnit) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid area unit"})
		}
		updateDoc["areaUnit"] = *req.AreaUnit
	}

	if req.Latitude != nil || req.Longitude != nil {
		if !utils.ValidCoordinatePair(req.Latitude, req.Longitude) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Latitude and longitude must be supplied together as valid coordinates"})
		}
		updateDoc["latitude"] = *req.Latitude
		updateDoc["longitude"] = *req.Longitude
	}

	// Location names cascade only from the state down, mirroring the create
	// path: a district needs its state, a city needs its district.
	if req.State != nil && *req.State != "" {
		districtName := property.District.Name
		cityName := property.City.Name
		if req.District != nil && *req.District != "" {
			districtName = *req.District
		}
		if req.City != nil && *req.City != "" {
			cityName = *req.City
		}
		state, district, city, err := pc.resolveLocation(ctx, *req.State, districtName, cityName)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve location"})
		}
		updateDoc["state"] = state
		updateDoc["district"] = district
		updateDoc["city"] = city
	}

	if req.PropertyType != nil {
		propertyType, err := pc.resolveType(ctx, *req.PropertyType)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property type"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve property type"})
		}
		updateDoc["propertyType"] = propertyType
	}

	if req.Features != nil {
		featureRefs, err := pc.resolveFeatures(ctx, req.Features)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid feature ID"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to resolve features"})
		}
		updateDoc["features"] = featureRefs
	}

	setString := func(field string, v *string) {
		if v != nil {
			updateDoc[field] = *v
		}
	}
	setInt := func(field string, v *int) {
		if v != nil {
			updateDoc[field] = *v
		}
	}
	setString("contactName", req.ContactName)
	setString("whatsappNumber", req.WhatsappNumber)
	setString("phoneNumber", req.PhoneNumber)
	setString("email", req.Email)
	setString("title", req.Title)
	setString("price", req.Price)
	setString("description", req.Description)
	setString("googleMapsUrl", req.GoogleMapsURL)
	setString("googleEmbeddedMapLink", req.GoogleEmbeddedMapLink)
	setString("youtubeVideoLink", req.YoutubeVideoLink)
	setString("furnishing", req.Furnishing)
	setInt("bedrooms", req.Bedrooms)
	setInt("bathrooms", req.Bathrooms)
	setInt("area", req.Area)
	setInt("builtYear", req.BuiltYear)
	setInt("parkingSpaces", req.ParkingSpaces)
	if req.NearbyPlaces != nil {
		updateDoc["nearbyPlaces"] = req.NearbyPlaces
	}

	update := bson.M{"$set": updateDoc}

	if len(req.ImageURLs) > 0 {
		newImages, err := pc.buildImages(ctx, req.ImageURLs)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to store images"})
		}
		update["$push"] = bson.M{"images": bson.M{"$each": newImages}}
	}

	if _, err := pc.collection.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
	}

	_ = utils.InvalidateCached(ctx, listCachePrefix)

	err = pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	ctx := context.Background()
	// Images are embedded, so deleting the document removes them with it.
	result, err := pc.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}
	if result.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	_ = utils.InvalidateCached(ctx, listCachePrefix)

	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

func (pc *PropertyController) DeleteImage(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	imageID, err := strconv.ParseInt(c.Param("imageId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image ID"})
	}

	ctx := context.Background()
	result, err := pc.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"images": bson.M{"id": imageID}}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete image"})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}
	if result.ModifiedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Image not found or does not belong to this property"})
	}

	_ = utils.InvalidateCached(ctx, listCachePrefix)

	return c.NoContent(http.StatusNoContent)
}

func (pc *PropertyController) resolveType(ctx context.Context, id int64) (models.TypeRef, error) {
	var propertyType models.PropertyType
	err := pc.types.FindOne(ctx, bson.M{"_id": id}).Decode(&propertyType)
	if err != nil {
		return models.TypeRef{}, err
	}
	return models.TypeRef{ID: propertyType.ID, Name: propertyType.Name}, nil
}

func (pc *PropertyController) resolveFeatures(ctx context.Context, ids []int64) ([]models.FeatureRef, error) {
	refs := []models.FeatureRef{}
	for _, id := range ids {
		var feature models.Feature
		if err := pc.features.FindOne(ctx, bson.M{"_id": id}).Decode(&feature); err != nil {
			return nil, err
		}
		refs = append(refs, models.FeatureRef{ID: feature.ID, Name: feature.Name})
	}
	return refs, nil
}

// resolveLocation looks up or creates the state, the district within the
// state and the city within the district, by exact name.
func (pc *PropertyController) resolveLocation(ctx context.Context, stateName, districtName, cityName string) (models.LocationRef, models.LocationRef, models.LocationRef, error) {
	var none models.LocationRef

	state, err := pc.getOrCreateState(ctx, stateName)
	if err != nil {
		return none, none, none, err
	}
	district, err := pc.getOrCreateDistrict(ctx, districtName, state.ID)
	if err != nil {
		return none, none, none, err
	}
	city, err := pc.getOrCreateCity(ctx, cityName, district.ID)
	if err != nil {
		return none, none, none, err
	}
	return state, district, city, nil
}

func (pc *PropertyController) getOrCreateState(ctx context.Context, name string) (models.LocationRef, error) {
	var state models.State
	err := pc.states.FindOne(ctx, bson.M{"name": name}).Decode(&state)
	if err == nil {
		return models.LocationRef{ID: state.ID, Name: state.Name}, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.LocationRef{}, err
	}

	id, err := utils.NextSequence(ctx, pc.counters, "states")
	if err != nil {
		return models.LocationRef{}, err
	}
	now := time.Now()
	state = models.State{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	if _, err := pc.states.InsertOne(ctx, state); err != nil {
		return models.LocationRef{}, err
	}
	return models.LocationRef{ID: id, Name: name}, nil
}

func (pc *PropertyController) getOrCreateDistrict(ctx context.Context, name string, stateID int64) (models.LocationRef, error) {
	var district models.District
	err := pc.districts.FindOne(ctx, bson.M{"name": name, "stateId": stateID}).Decode(&district)
	if err == nil {
		return models.LocationRef{ID: district.ID, Name: district.Name}, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.LocationRef{}, err
	}

	id, err := utils.NextSequence(ctx, pc.counters, "districts")
	if err != nil {
		return models.LocationRef{}, err
	}
	now := time.Now()
	district = models.District{ID: id, StateID: stateID, Name: name, CreatedAt: now, UpdatedAt: now}
	if _, err := pc.districts.InsertOne(ctx, district); err != nil {
		return models.LocationRef{}, err
	}
	return models.LocationRef{ID: id, Name: name}, nil
}

func (pc *PropertyController) getOrCreateCity(ctx context.Context, name string, districtID int64) (models.LocationRef, error) {
	var city models.City
	err := pc.cities.FindOne(ctx, bson.M{"name": name, "districtId": districtID}).Decode(&city)
	if err == nil {
		return models.LocationRef{ID: city.ID, Name: city.Name}, nil
	}
	if err != mongo.ErrNoDocuments {
		return models.LocationRef{}, err
	}

	id, err := utils.NextSequence(ctx, pc.counters, "cities")
	if err != nil {
		return models.LocationRef{}, err
	}
	now := time.Now()
	city = models.City{ID: id, DistrictID: districtID, Name: name, CreatedAt: now, UpdatedAt: now}
	if _, err := pc.cities.InsertOne(ctx, city); err != nil {
		return models.LocationRef{}, err
	}
	return models.LocationRef{ID: id, Name: name}, nil
}

func (pc *PropertyController) buildImages(ctx context.Context, urls []string) ([]models.PropertyImage, error) {
	images := []models.PropertyImage{}
	for _, url := range urls {
		if url == "" {
			continue
		}
		id, err := utils.NextSequence(ctx, pc.counters, "property_images")
		if err != nil {
			return nil, err
		}
		images = append(images, models.PropertyImage{ID: id, URL: url, CreatedAt: time.Now()})
	}
	return images, nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
