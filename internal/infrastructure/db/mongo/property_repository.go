package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/propview/real-estate-api/internal/core/domain"
	"github.com/propview/real-estate-api/internal/core/ports"
	"github.com/propview/real-estate-api/internal/pkg/paging"
)

const collectionProperties = "properties"

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection(collectionProperties)}
}

type mongoProperty struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty"`
	Name            string                 `bson:"name"`
	Description     string                 `bson:"description"`
	ReferenceNumber int                    `bson:"reference_number"`
	CompoundID      primitive.ObjectID     `bson:"compound_id"`
	Latitude        float64                `bson:"latitude,omitempty"`
	Longitude       float64                `bson:"longitude,omitempty"`
	Type            domain.PropertyType    `bson:"type"`
	FloorNumber     int                    `bson:"floor_number"`
	TotalFloors     int                    `bson:"total_floors"`
	Width           float64                `bson:"width"`
	Length          float64                `bson:"length"`
	Height          float64                `bson:"height"`
	Area            float64                `bson:"area"`
	Beds            int                    `bson:"beds"`
	Baths           int                    `bson:"baths"`
	ParkingSpaces   int                    `bson:"parking_spaces"`
	FinishingStatus domain.FinishingStatus `bson:"finishing_status"`
	FinishingType   domain.FinishingType   `bson:"finishing_type"`
	DeliveryDate    time.Time              `bson:"delivery_date"`
	Price           float64                `bson:"price"`
	Amenities       []string               `bson:"amenities"`
	FloorPlan       string                 `bson:"floor_plan"`
	Images          []string               `bson:"images"`
	DeveloperID     primitive.ObjectID     `bson:"developer_id"`
	UserID          primitive.ObjectID     `bson:"user_id"`
	IsDeleted       bool                   `bson:"is_deleted"`
	CreatedAt       time.Time              `bson:"created_at"`
	UpdatedAt       time.Time              `bson:"updated_at"`
}

func (mp *mongoProperty) toDomain() *domain.Property {
	return &domain.Property{
		ID:              mp.ID.Hex(),
		Name:            mp.Name,
		Description:     mp.Description,
		ReferenceNumber: mp.ReferenceNumber,
		CompoundID:      mp.CompoundID.Hex(),
		Latitude:        mp.Latitude,
		Longitude:       mp.Longitude,
		Type:            mp.Type,
		FloorNumber:     mp.FloorNumber,
		TotalFloors:     mp.TotalFloors,
		Width:           mp.Width,
		Length:          mp.Length,
		Height:          mp.Height,
		Area:            mp.Area,
		Beds:            mp.Beds,
		Baths:           mp.Baths,
		ParkingSpaces:   mp.ParkingSpaces,
		FinishingStatus: mp.FinishingStatus,
		FinishingType:   mp.FinishingType,
		DeliveryDate:    mp.DeliveryDate,
		Price:           mp.Price,
		Amenities:       mp.Amenities,
		FloorPlan:       mp.FloorPlan,
		Images:          mp.Images,
		DeveloperID:     mp.DeveloperID.Hex(),
		UserID:          mp.UserID.Hex(),
		IsDeleted:       mp.IsDeleted,
		CreatedAt:       mp.CreatedAt,
		UpdatedAt:       mp.UpdatedAt,
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	compoundID, err := primitive.ObjectIDFromHex(p.CompoundID)
	if err != nil {
		return nil, fmt.Errorf("invalid compound id: %w", err)
	}
	developerID, err := primitive.ObjectIDFromHex(p.DeveloperID)
	if err != nil {
		return nil, fmt.Errorf("invalid developer id: %w", err)
	}
	userID, err := primitive.ObjectIDFromHex(p.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	doc := mongoProperty{
		Name:            p.Name,
		Description:     p.Description,
		ReferenceNumber: p.ReferenceNumber,
		CompoundID:      compoundID,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		Type:            p.Type,
		FloorNumber:     p.FloorNumber,
		TotalFloors:     p.TotalFloors,
		Width:           p.Width,
		Length:          p.Length,
		Height:          p.Height,
		Area:            p.Area,
		Beds:            p.Beds,
		Baths:           p.Baths,
		ParkingSpaces:   p.ParkingSpaces,
		FinishingStatus: p.FinishingStatus,
		FinishingType:   p.FinishingType,
		DeliveryDate:    p.DeliveryDate,
		Price:           p.Price,
		Amenities:       p.Amenities,
		FloorPlan:       p.FloorPlan,
		Images:          p.Images,
		DeveloperID:     developerID,
		UserID:          userID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPropertyExists
		}
		return nil, fmt.Errorf("insert property: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "is_deleted": false})
}

func (r *PropertyRepository) FindByReference(ctx context.Context, referenceNumber int) (*domain.Property, error) {
	return r.findOne(ctx, bson.M{"reference_number": referenceNumber, "is_deleted": false})
}

func (r *PropertyRepository) findOne(ctx context.Context, filter bson.M) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProperty
	if err := r.col.FindOne(ctx, filter).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return mp.toDomain(), nil
}

// List returns a page of properties matching filter plus the total count of
// matches across all pages.
func (r *PropertyRepository) List(ctx context.Context, f ports.ListPropertiesFilter) ([]*domain.Property, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, err := buildListFilter(f)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(paging.Offset(f.Page, f.Limit))).
		SetLimit(int64(f.Limit)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Property
	for cur.Next(ctx) {
		var mp mongoProperty
		if err := cur.Decode(&mp); err != nil {
			return nil, 0, fmt.Errorf("decode property: %w", err)
		}
		out = append(out, mp.toDomain())
	}
	return out, total, cur.Err()
}

// EnsureIndexes creates the search and uniqueness indexes.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "reference_number", Value: 1}}},
		{Keys: bson.D{{Key: "developer_id", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
