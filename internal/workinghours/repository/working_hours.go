package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	wherrors "bookwell/internal/workinghours/errors"
	"bookwell/pkg/config"
	"bookwell/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Working_hours"
)

type WorkingHoursRepository interface {
	Upsert(ctx context.Context, hours *model.WorkingHours) error
	FindByStaff(ctx context.Context, staffID string) ([]*model.WorkingHours, error)
	FindByStaffAndWeekday(ctx context.Context, staffID string, weekday int) (*model.WorkingHours, error)
}

type mongoWorkingHoursRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoWorkingHoursRepository(cfg *config.Config) WorkingHoursRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoWorkingHoursRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoWorkingHoursRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// Upsert writes the day entry keyed by staff and weekday. The unique index
// on (staff_id, weekday) keeps one document per day.
func (r *mongoWorkingHoursRepository) Upsert(ctx context.Context, hours *model.WorkingHours) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"staff_id": hours.StaffID,
		"weekday":  hours.Weekday,
	}
	update := bson.M{
		"$set": bson.M{
			"business_id": hours.BusinessID,
			"is_working":  hours.IsWorking,
			"start_time":  hours.StartTime,
			"end_time":    hours.EndTime,
			"break_start": hours.BreakStart,
			"break_end":   hours.BreakEnd,
		},
		"$setOnInsert": bson.M{
			"created_at": time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert working hours: %w", err)
	}

	return nil
}

func (r *mongoWorkingHoursRepository) FindByStaff(ctx context.Context, staffID string) ([]*model.WorkingHours, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{"staff_id": staffID}
	opts := options.Find().SetSort(bson.D{{Key: "weekday", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find working hours: %w", err)
	}
	defer cursor.Close(ctx)

	var hours []*model.WorkingHours
	if err = cursor.All(ctx, &hours); err != nil {
		return nil, fmt.Errorf("failed to decode working hours: %w", err)
	}

	return hours, nil
}

// FindByStaffAndWeekday returns ErrNotFound when no entry exists for the day,
// which callers treat as a non-working day.
func (r *mongoWorkingHoursRepository) FindByStaffAndWeekday(ctx context.Context, staffID string, weekday int) (*model.WorkingHours, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	filter := bson.M{
		"staff_id": staffID,
		"weekday":  weekday,
	}

	var hours model.WorkingHours
	err := r.collection.FindOne(ctx, filter).Decode(&hours)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: staff %s weekday %d", wherrors.ErrNotFound, staffID, weekday)
		}
		return nil, fmt.Errorf("failed to find working hours: %w", err)
	}

	return &hours, nil
}
