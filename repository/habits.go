package repository

import (
	"context"
	"errors"
	"os"

	"main/middleware"
	"main/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrHabitNotFound  = errors.New("habit not found")
	ErrDuplicateName  = errors.New("a habit with this name already exists")
	ErrMissingHabitID = errors.New("habit ID is required")
)

type HabitsRepo struct {
	MongoCollection *mongo.Collection
}

// Constructor function for HabitsRepo
func GetHabitsRepo(client *mongo.Client) *HabitsRepo {
	dbName := os.Getenv("MONGO_DB")
	collectionName := os.Getenv("HABITS_COLLECTION")
	return &HabitsRepo{
		MongoCollection: client.Database(dbName).Collection(collectionName),
	}
}

// CreateHabit inserts a new habit. Names are unique; the unique index on
// name turns concurrent duplicates into ErrDuplicateName.
func (r *HabitsRepo) CreateHabit(ctx context.Context, habit *model.Habit) error {
	if habit.HabitID == "" {
		return ErrMissingHabitID
	}

	timer := middleware.TrackDBOperation("insert", "habits")
	defer timer.ObserveDuration()

	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{"name": habit.Name})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}

	_, err = r.MongoCollection.InsertOne(ctx, habit)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateName
	}
	return err
}

// GetHabit retrieves a habit by its ID.
func (r *HabitsRepo) GetHabit(ctx context.Context, habitID string) (*model.Habit, error) {
	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": habitID}).Decode(&habit)
	if err == mongo.ErrNoDocuments {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// FindHabitByName retrieves a habit by its unique name.
func (r *HabitsRepo) FindHabitByName(ctx context.Context, name string) (*model.Habit, error) {
	var habit model.Habit
	err := r.MongoCollection.FindOne(ctx, bson.M{"name": name}).Decode(&habit)
	if err == mongo.ErrNoDocuments {
		return nil, ErrHabitNotFound
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// GetAllHabits retrieves every habit, oldest first.
func (r *HabitsRepo) GetAllHabits(ctx context.Context) ([]*model.Habit, error) {
	return r.findHabits(ctx, bson.M{})
}

// GetHabitsByPeriodicity retrieves the habits with the given periodicity.
func (r *HabitsRepo) GetHabitsByPeriodicity(ctx context.Context, p model.Periodicity) ([]*model.Habit, error) {
	return r.findHabits(ctx, bson.M{"periodicity": p})
}

// CountHabits counts all stored habits.
func (r *HabitsRepo) CountHabits(ctx context.Context) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *HabitsRepo) findHabits(ctx context.Context, filter bson.M) ([]*model.Habit, error) {
	cursor, err := r.MongoCollection.Find(ctx, filter, habitSortOptions())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var habits []*model.Habit
	if err = cursor.All(ctx, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}
