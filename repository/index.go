package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// habitSortOptions keeps habit listings in creation order.
func habitSortOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
}

func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	habitsCollection := db.Collection("habits")
	completionsCollection := db.Collection("completions")

	habitIndexes := []mongo.IndexModel{
		// Habit names are unique across the store.
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetName("habit_name_unique").
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "periodicity", Value: 1}},
			Options: options.Index().
				SetName("habit_periodicity"),
		},
	}

	completionIndexes := []mongo.IndexModel{
		// Completion history is always read per habit in timestamp order.
		{
			Keys: bson.D{
				{Key: "habit_id", Value: 1},
				{Key: "completed_at", Value: 1},
			},
			Options: options.Index().
				SetName("habit_completions_date").
				SetUnique(false),
		},
	}

	_, err := habitsCollection.Indexes().CreateMany(ctx, habitIndexes)
	if err != nil {
		return fmt.Errorf("failed to create habit indexes: %w", err)
	}

	_, err = completionsCollection.Indexes().CreateMany(ctx, completionIndexes)
	if err != nil {
		return fmt.Errorf("failed to create completion indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
