package receiptRepo

import (
	"context"

	"bookflow/database"
	"bookflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingReceiptRepository stores records of transmitted bookings.
type BookingReceiptRepository interface {
	Create(ctx context.Context, receipt models.BookingReceipt) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingReceipt, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.BookingReceipt, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoReceiptRepo struct {
	coll *mongo.Collection
}

// NewMongoReceiptRepo returns a new BookingReceiptRepository instance using MongoDB.
func NewMongoReceiptRepo() BookingReceiptRepository {
	db := database.MongoClient.Database("bookflow")
	return &mongoReceiptRepo{
		coll: db.Collection("booking_receipts"),
	}
}
