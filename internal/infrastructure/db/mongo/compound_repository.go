package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propview/real-estate-api/internal/core/domain"
)

const collectionCompounds = "compounds"

type CompoundRepository struct {
	col *mongo.Collection
}

func NewCompoundRepository(db *mongo.Database) *CompoundRepository {
	return &CompoundRepository{col: db.Collection(collectionCompounds)}
}

type mongoCompound struct {
	ID              primitive.ObjectID    `bson:"_id,omitempty"`
	Name            string                `bson:"name"`
	Description     string                `bson:"description"`
	ReferenceNumber int                   `bson:"reference_number"`
	City            string                `bson:"city"`
	Province        string                `bson:"province"`
	Country         string                `bson:"country"`
	Latitude        float64               `bson:"latitude"`
	Longitude       float64               `bson:"longitude"`
	TotalUnits      int                   `bson:"total_units"`
	PropertyTypes   []domain.PropertyType `bson:"property_types"`
	Status          domain.CompoundStatus `bson:"status"`
	DeliveryDate    time.Time             `bson:"delivery_date"`
	Images          []string              `bson:"images"`
	MasterPlan      string                `bson:"master_plan"`
	DeveloperID     primitive.ObjectID    `bson:"developer_id"`
	UserID          primitive.ObjectID    `bson:"user_id,omitempty"`
	IsDeleted       bool                  `bson:"is_deleted"`
	CreatedAt       time.Time             `bson:"created_at"`
	UpdatedAt       time.Time             `bson:"updated_at"`
}

func (mc *mongoCompound) toDomain() *domain.Compound {
	return &domain.Compound{
		ID:              mc.ID.Hex(),
		Name:            mc.Name,
		Description:     mc.Description,
		ReferenceNumber: mc.ReferenceNumber,
		City:            mc.City,
		Province:        mc.Province,
		Country:         mc.Country,
		Latitude:        mc.Latitude,
		Longitude:       mc.Longitude,
		TotalUnits:      mc.TotalUnits,
		PropertyTypes:   mc.PropertyTypes,
		Status:          mc.Status,
		DeliveryDate:    mc.DeliveryDate,
		Images:          mc.Images,
		MasterPlan:      mc.MasterPlan,
		DeveloperID:     mc.DeveloperID.Hex(),
		UserID:          mc.UserID.Hex(),
		IsDeleted:       mc.IsDeleted,
		CreatedAt:       mc.CreatedAt,
		UpdatedAt:       mc.UpdatedAt,
	}
}

func (r *CompoundRepository) Create(ctx context.Context, c *domain.Compound) (*domain.Compound, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	developerID, err := primitive.ObjectIDFromHex(c.DeveloperID)
	if err != nil {
		return nil, fmt.Errorf("invalid developer id: %w", err)
	}
	userID, err := primitive.ObjectIDFromHex(c.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	doc := mongoCompound{
		Name:            c.Name,
		Description:     c.Description,
		ReferenceNumber: c.ReferenceNumber,
		City:            c.City,
		Province:        c.Province,
		Country:         c.Country,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		TotalUnits:      c.TotalUnits,
		PropertyTypes:   c.PropertyTypes,
		Status:          c.Status,
		DeliveryDate:    c.DeliveryDate,
		Images:          c.Images,
		MasterPlan:      c.MasterPlan,
		DeveloperID:     developerID,
		UserID:          userID,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrCompoundExists
		}
		return nil, fmt.Errorf("insert compound: %w", err)
	}

	created := *c
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *CompoundRepository) FindByID(ctx context.Context, id string) (*domain.Compound, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCompoundNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "is_deleted": false})
}

func (r *CompoundRepository) FindByReference(ctx context.Context, referenceNumber int) (*domain.Compound, error) {
	return r.findOne(ctx, bson.M{"reference_number": referenceNumber, "is_deleted": false})
}

func (r *CompoundRepository) findOne(ctx context.Context, filter bson.M) (*domain.Compound, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCompound
	if err := r.col.FindOne(ctx, filter).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCompoundNotFound
		}
		return nil, fmt.Errorf("find compound: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CompoundRepository) List(ctx context.Context) ([]*domain.Compound, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"is_deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list compounds: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Compound
	for cur.Next(ctx) {
		var mc mongoCompound
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode compound: %w", err)
		}
		out = append(out, mc.toDomain())
	}
	return out, cur.Err()
}

// EnsureIndexes creates the uniqueness index on reference_number.
func (r *CompoundRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "reference_number", Value: 1}},
	})
	return err
}
