package repository

import (
	"context"
	"os"
	"time"

	"main/middleware"
	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CompletionsRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for CompletionsRepo
func GetCompletionsRepo(client *mongo.Client) *CompletionsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("COMPLETIONS_COLLECTION")
	return &CompletionsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// AddCompletion records one habit execution. Duplicate timestamps are
// allowed; each insert counts independently.
func (r *CompletionsRepo) AddCompletion(ctx context.Context, completion *model.Completion) error {
	if completion.HabitID == "" {
		return ErrMissingHabitID
	}

	timer := middleware.TrackDBOperation("insert", "completions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, completion)
	return err
}

// GetHabitCompletions returns every completion timestamp for a habit,
// oldest first. The analytics engine sorts again defensively.
func (r *CompletionsRepo) GetHabitCompletions(ctx context.Context, habitID string) ([]time.Time, error) {
	timer := middleware.TrackDBOperation("find", "completions")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "completed_at", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"habit_id": habitID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var completions []*model.Completion
	if err = cursor.All(ctx, &completions); err != nil {
		return nil, err
	}

	timestamps := make([]time.Time, len(completions))
	for i, c := range completions {
		timestamps[i] = c.CompletedAt
	}
	return timestamps, nil
}

// CountHabitCompletions counts the completions recorded for a habit.
func (r *CompletionsRepo) CountHabitCompletions(ctx context.Context, habitID string) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"habit_id": habitID})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// LastCompletion returns the most recent completion timestamp for a habit,
// or nil when none exist.
func (r *CompletionsRepo) LastCompletion(ctx context.Context, habitID string) (*time.Time, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "completed_at", Value: -1}})

	var completion model.Completion
	err := r.MongoCollection.FindOne(ctx, bson.M{"habit_id": habitID}, opts).Decode(&completion)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &completion.CompletedAt, nil
}
