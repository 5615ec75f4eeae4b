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

const collectionDevelopers = "developers"

type DeveloperRepository struct {
	col *mongo.Collection
}

func NewDeveloperRepository(db *mongo.Database) *DeveloperRepository {
	return &DeveloperRepository{col: db.Collection(collectionDevelopers)}
}

type mongoDeveloper struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	ReferenceNumber int                `bson:"reference_number"`
	Logo            string             `bson:"logo"`
	Phone           string             `bson:"phone"`
	Email           string             `bson:"email"`
	WebsiteURL      string             `bson:"website_url"`
	UserID          primitive.ObjectID `bson:"user_id,omitempty"`
	IsDeleted       bool               `bson:"is_deleted"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

func (md *mongoDeveloper) toDomain() *domain.Developer {
	return &domain.Developer{
		ID:              md.ID.Hex(),
		Name:            md.Name,
		Description:     md.Description,
		ReferenceNumber: md.ReferenceNumber,
		Logo:            md.Logo,
		Phone:           md.Phone,
		Email:           md.Email,
		WebsiteURL:      md.WebsiteURL,
		UserID:          md.UserID.Hex(),
		IsDeleted:       md.IsDeleted,
		CreatedAt:       md.CreatedAt,
		UpdatedAt:       md.UpdatedAt,
	}
}

func (r *DeveloperRepository) Create(ctx context.Context, d *domain.Developer) (*domain.Developer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	doc := mongoDeveloper{
		Name:            d.Name,
		Description:     d.Description,
		ReferenceNumber: d.ReferenceNumber,
		Logo:            d.Logo,
		Phone:           d.Phone,
		Email:           d.Email,
		WebsiteURL:      d.WebsiteURL,
		UserID:          userID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDeveloperExists
		}
		return nil, fmt.Errorf("insert developer: %w", err)
	}

	created := *d
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DeveloperRepository) FindByID(ctx context.Context, id string) (*domain.Developer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDeveloperNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "is_deleted": false})
}

func (r *DeveloperRepository) FindByName(ctx context.Context, name string) (*domain.Developer, error) {
	return r.findOne(ctx, bson.M{"name": name, "is_deleted": false})
}

func (r *DeveloperRepository) FindByReference(ctx context.Context, referenceNumber int) (*domain.Developer, error) {
	return r.findOne(ctx, bson.M{"reference_number": referenceNumber, "is_deleted": false})
}

func (r *DeveloperRepository) findOne(ctx context.Context, filter bson.M) (*domain.Developer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var md mongoDeveloper
	if err := r.col.FindOne(ctx, filter).Decode(&md); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("find developer: %w", err)
	}
	return md.toDomain(), nil
}

func (r *DeveloperRepository) List(ctx context.Context) ([]*domain.Developer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"is_deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Developer
	for cur.Next(ctx) {
		var md mongoDeveloper
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode developer: %w", err)
		}
		out = append(out, md.toDomain())
	}
	return out, cur.Err()
}

// EnsureIndexes creates the uniqueness and lookup indexes.
func (r *DeveloperRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "reference_number", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
