package receiptRepo

import (
	"context"
	"errors"
	"time"

	"bookflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking receipt and returns its ID.
func (r *mongoReceiptRepo) Create(ctx context.Context, receipt models.BookingReceipt) (string, error) {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	receipt.CreatedAt = time.Now()
	receipt.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, receipt)
	if err != nil {
		return "", err
	}
	return receipt.ID, nil
}

// GetByID returns a booking receipt by its ID.
func (r *mongoReceiptRepo) GetByID(ctx context.Context, id string) (*models.BookingReceipt, error) {
	var receipt models.BookingReceipt
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&receipt)
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// GetBySessionID fetches all receipts produced by a wizard session.
func (r *mongoReceiptRepo) GetBySessionID(ctx context.Context, sessionID string) ([]models.BookingReceipt, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var receipts []models.BookingReceipt
	if err := cursor.All(ctx, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

// DeleteByID removes a booking receipt by ID.
func (r *mongoReceiptRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("receipt not found")
	}
	return nil
}
