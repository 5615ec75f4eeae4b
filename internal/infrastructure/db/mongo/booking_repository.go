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

const collectionBookings = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

type mongoBooking struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	UserID     primitive.ObjectID   `bson:"user_id"`
	PropertyID primitive.ObjectID   `bson:"property_id"`
	Price      float64              `bson:"price"`
	PaymentID  primitive.ObjectID   `bson:"payment_id,omitempty"`
	Status     domain.BookingStatus `bson:"booking_status"`
	IsDeleted  bool                 `bson:"is_deleted"`
	CreatedAt  time.Time            `bson:"created_at"`
	UpdatedAt  time.Time            `bson:"updated_at"`
}

func (mb *mongoBooking) toDomain() *domain.Booking {
	b := &domain.Booking{
		ID:         mb.ID.Hex(),
		UserID:     mb.UserID.Hex(),
		PropertyID: mb.PropertyID.Hex(),
		Price:      mb.Price,
		Status:     mb.Status,
		IsDeleted:  mb.IsDeleted,
		CreatedAt:  mb.CreatedAt,
		UpdatedAt:  mb.UpdatedAt,
	}
	if !mb.PaymentID.IsZero() {
		b.PaymentID = mb.PaymentID.Hex()
	}
	return b
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(b.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}
	propertyID, err := primitive.ObjectIDFromHex(b.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property id: %w", err)
	}

	doc := mongoBooking{
		UserID:     userID,
		PropertyID: propertyID,
		Price:      b.Price,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrBookingExists
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindByProperty returns the non-deleted booking for a property, or
// (nil, nil) when the property is not booked.
func (r *BookingRepository) FindByProperty(ctx context.Context, propertyID string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return nil, nil
	}

	var mb mongoBooking
	err = r.col.FindOne(ctx, bson.M{"property_id": oid, "is_deleted": false}).Decode(&mb)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return mb.toDomain(), nil
}

// EnsureIndexes creates the property lookup index.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "property_id", Value: 1}},
	})
	return err
}
