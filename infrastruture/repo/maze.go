package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

type positionDocument struct {
	X int `bson:"x"`
	Y int `bson:"y"`
}

type wallDocument struct {
	X           int    `bson:"x"`
	Y           int    `bson:"y"`
	Orientation string `bson:"orientation"`
}

// mazeDocument represents the BSON version of a maze for database storage.
type mazeDocument struct {
	ID        string           `bson:"_id"`
	Width     int              `bson:"width"`
	Height    int              `bson:"height"`
	Start     positionDocument `bson:"start"`
	End       positionDocument `bson:"end"`
	Walls     []wallDocument   `bson:"walls"`
	Version   int64            `bson:"version"`
	UpdatedAt time.Time        `bson:"updatedAt"`
}

// MazeRepo handles the persistence of mazes in MongoDB.
type MazeRepo struct {
	collection *mongo.Collection
}

var _ i.MazeRepo = &MazeRepo{}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
	}
}

// Save inserts or updates a maze in the repository.
func (r *MazeRepo) Save(ctx context.Context, record *i.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	doc := toDocument(record)
	filter := bson.M{"_id": doc.ID}
	update := bson.M{
		"$set": bson.M{
			"width":     doc.Width,
			"height":    doc.Height,
			"start":     doc.Start,
			"end":       doc.End,
			"walls":     doc.Walls,
			"version":   doc.Version,
			"updatedAt": doc.UpdatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("saving maze %s: %w", record.ID, err)
	}
	return nil
}

// ByID retrieves a maze by its ID and re-validates it.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*i.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var doc mazeDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", i.ErrMazeNotFound, id)
		}
		return nil, fmt.Errorf("loading maze %s: %w", id, err)
	}
	return fromDocument(&doc)
}

// Delete removes a maze by its ID.
func (r *MazeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return fmt.Errorf("deleting maze %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: %s", i.ErrMazeNotFound, id)
	}
	return nil
}

func toDocument(record *i.MazeRecord) *mazeDocument {
	m := record.Maze
	walls := make([]wallDocument, 0, len(m.Walls()))
	for _, w := range m.Walls() {
		walls = append(walls, wallDocument{X: w.X, Y: w.Y, Orientation: w.Orientation.String()})
	}

	return &mazeDocument{
		ID:        record.ID.String(),
		Width:     m.Grid().Width,
		Height:    m.Grid().Height,
		Start:     positionDocument{X: m.Start().X, Y: m.Start().Y},
		End:       positionDocument{X: m.End().X, Y: m.End().Y},
		Walls:     walls,
		Version:   record.Version,
		UpdatedAt: record.UpdatedAt,
	}
}

// fromDocument rebuilds the maze through its validating constructor so a
// tampered document can never yield an unsolvable maze.
func fromDocument(doc *mazeDocument) (*i.MazeRecord, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("stored maze has invalid id %q: %w", doc.ID, err)
	}

	walls := make([]maze.Wall, 0, len(doc.Walls))
	for _, w := range doc.Walls {
		var o maze.Orientation
		if err := o.UnmarshalText([]byte(w.Orientation)); err != nil {
			return nil, fmt.Errorf("stored maze %s: %w", id, err)
		}
		walls = append(walls, maze.Wall{X: w.X, Y: w.Y, Orientation: o})
	}

	m, err := maze.NewWithWalls(
		maze.Grid{Width: doc.Width, Height: doc.Height},
		maze.Position{X: doc.Start.X, Y: doc.Start.Y},
		maze.Position{X: doc.End.X, Y: doc.End.Y},
		walls,
	)
	if err != nil {
		return nil, fmt.Errorf("stored maze %s is invalid: %w", id, err)
	}

	return &i.MazeRecord{
		ID:        id,
		Version:   doc.Version,
		Maze:      m,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
