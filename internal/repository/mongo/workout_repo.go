// internal/repository/mongo/workout_repo.go
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutLogCollectionName = "workout_logs"

// logDocument is the stored shape of a workout log. LocalID keeps the
// temporary id the entry was created under so repeated upserts collapse.
type logDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	LocalID      string             `bson:"localId,omitempty"`
	UserID       string             `bson:"userId"`
	ExerciseID   string             `bson:"exerciseId"`
	ExerciseName string             `bson:"exerciseName"`
	Category     domain.Category    `bson:"category"`
	Muscles      []string           `bson:"muscles"`
	Sets         int                `bson:"sets"`
	Reps         string             `bson:"reps"`
	CompletedAt  time.Time          `bson:"completedAt"`
	CreatedAt    time.Time          `bson:"createdAt"`
	Duration     int                `bson:"duration,omitempty"`
}

func (d *logDocument) toDomain() domain.WorkoutLog {
	return domain.WorkoutLog{
		ID:           d.ID.Hex(),
		LocalID:      d.LocalID,
		UserID:       d.UserID,
		ExerciseID:   d.ExerciseID,
		ExerciseName: d.ExerciseName,
		Category:     d.Category,
		Muscles:      d.Muscles,
		Sets:         d.Sets,
		Reps:         d.Reps,
		CompletedAt:  d.CompletedAt,
		CreatedAt:    d.CreatedAt,
		Duration:     d.Duration,
		State:        domain.SyncStateSynced,
	}
}

// mongoWorkoutLogRepository implements repository.WorkoutLogRepository
type mongoWorkoutLogRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutLogRepository creates a new workout log repository.
func NewMongoWorkoutLogRepository(db *mongo.Database) repository.WorkoutLogRepository {
	return &mongoWorkoutLogRepository{
		collection: db.Collection(workoutLogCollectionName),
	}
}

// Upsert stores the log keyed by its temporary id and returns the ObjectID hex.
func (r *mongoWorkoutLogRepository) Upsert(ctx context.Context, l *domain.WorkoutLog) (string, error) {
	if l.UserID == "" || l.ExerciseID == "" || !domain.IsTempID(l.ID) {
		return "", errors.New("workout log requires userId, exerciseId and a temporary id")
	}

	filter := bson.M{"localId": l.ID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"localId":      l.ID,
			"userId":       l.UserID,
			"exerciseId":   l.ExerciseID,
			"exerciseName": l.ExerciseName,
			"category":     l.Category,
			"muscles":      l.Muscles,
			"sets":         l.Sets,
			"reps":         l.Reps,
			"completedAt":  l.CompletedAt.UTC(),
			"createdAt":    l.CreatedAt.UTC(),
			"duration":     l.Duration,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc logDocument
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return "", err
	}
	return doc.ID.Hex(), nil
}

// ListByUser retrieves all logs of a user, newest completion first.
func (r *mongoWorkoutLogRepository) ListByUser(ctx context.Context, userID string) ([]domain.WorkoutLog, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// ListByRange retrieves the logs of a user completed in [from, to).
func (r *mongoWorkoutLogRepository) ListByRange(ctx context.Context, userID string, from, to time.Time) ([]domain.WorkoutLog, error) {
	completed := bson.M{"$gte": from.UTC()}
	if !to.IsZero() {
		completed["$lt"] = to.UTC()
	}
	return r.find(ctx, bson.M{"userId": userID, "completedAt": completed})
}

func (r *mongoWorkoutLogRepository) find(ctx context.Context, filter bson.M) ([]domain.WorkoutLog, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []logDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}

	logs := make([]domain.WorkoutLog, 0, len(docs))
	for i := range docs {
		logs = append(logs, docs[i].toDomain())
	}
	return logs, nil
}

// ReassignOwner moves every log of fromUserID to toUserID with a single UpdateMany.
func (r *mongoWorkoutLogRepository) ReassignOwner(ctx context.Context, fromUserID, toUserID string) (int64, error) {
	if fromUserID == "" || toUserID == "" {
		return 0, errors.New("both owners are required for reassignment")
	}
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"userId": fromUserID},
		bson.M{"$set": bson.M{"userId": toUserID}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// DeleteByUser removes every log owned by userID. Deleting nothing is not an error.
func (r *mongoWorkoutLogRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrDeleteFailed, err)
	}
	return nil
}

func workoutLogIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "completedAt", Value: -1}},
			Options: options.Index(),
		},
		{
			// Sparse because logs written by other clients may not carry a local id.
			Keys:    bson.D{{Key: "localId", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	}
}
