package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clockline/timetrack-api/internal/core/domain"
	"github.com/clockline/timetrack-api/internal/core/ports"
)

const timeEntriesCollection = "time_entries"

type TimeEntryRepository struct {
	coll *mongo.Collection
}

func NewTimeEntryRepository(db *mongo.Database) *TimeEntryRepository {
	return &TimeEntryRepository{coll: db.Collection(timeEntriesCollection)}
}

// timeEntryDoc is the storage shape of a time entry. Dates are stored as
// YYYY-MM-DD strings; the ISO form compares correctly with $gte/$lte.
type timeEntryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Date      string             `bson:"date"`
	Length    float64            `bson:"length"`
	Note      string             `bson:"note,omitempty"`
	UserID    string             `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func toTimeEntryDoc(e *domain.TimeEntry) timeEntryDoc {
	return timeEntryDoc{
		Date:      e.Date,
		Length:    e.Length,
		Note:      e.Note,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func (d timeEntryDoc) toDomain() *domain.TimeEntry {
	return &domain.TimeEntry{
		ID:        d.ID.Hex(),
		Date:      d.Date,
		Length:    d.Length,
		Note:      d.Note,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *TimeEntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toTimeEntryDoc(entry))
	if err != nil {
		return nil, fmt.Errorf("insert time entry: %w", err)
	}

	oid, _ := res.InsertedID.(primitive.ObjectID)
	created := *entry
	created.ID = oid.Hex()
	return &created, nil
}

func (r *TimeEntryRepository) FindByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTimeEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc timeEntryDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTimeEntryNotFound
		}
		return nil, fmt.Errorf("find time entry: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TimeEntryRepository) FindByOwnerAndDate(ctx context.Context, ownerID, date string) ([]*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user_id": ownerID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("find entries by owner and date: %w", err)
	}
	defer cur.Close(ctx)

	return decodeEntries(ctx, cur)
}

func (r *TimeEntryRepository) List(ctx context.Context, filter ports.TimeEntryFilter) ([]*domain.TimeEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if len(filter.OwnerIDs) > 0 {
		query["user_id"] = bson.M{"$in": filter.OwnerIDs}
	}
	dateRange := bson.M{}
	if filter.From != "" {
		dateRange["$gte"] = filter.From
	}
	if filter.To != "" {
		dateRange["$lte"] = filter.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer cur.Close(ctx)

	return decodeEntries(ctx, cur)
}

func (r *TimeEntryRepository) Update(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	oid, err := primitive.ObjectIDFromHex(entry.ID)
	if err != nil {
		return nil, domain.ErrTimeEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"date":       entry.Date,
		"length":     entry.Length,
		"note":       entry.Note,
		"user_id":    entry.UserID,
		"updated_at": entry.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update time entry: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTimeEntryNotFound
	}
	return entry, nil
}

func (r *TimeEntryRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTimeEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTimeEntryNotFound
	}
	return nil
}

func (r *TimeEntryRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return 0, fmt.Errorf("delete entries by owner: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates necessary indexes on the time entries collection.
func (r *TimeEntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeEntries(ctx context.Context, cur *mongo.Cursor) ([]*domain.TimeEntry, error) {
	var docs []timeEntryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode time entries: %w", err)
	}
	entries := make([]*domain.TimeEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, d.toDomain())
	}
	return entries, nil
}
