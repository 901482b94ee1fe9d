package database

import (
	"context"
	"log"
	"time"

	"siteapi/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB wraps the mongo client and exposes the collection handles the
// application uses. It is constructed once in main and passed down.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

func Connect(cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Println("Database connected successfully")

	return &DB{
		client:   client,
		database: client.Database(cfg.DBName),
	}, nil
}

func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *DB) Collection(name string) *mongo.Collection {
	return d.database.Collection(name)
}

func (d *DB) BlogPosts() *mongo.Collection       { return d.Collection("blog_posts") }
func (d *DB) Projects() *mongo.Collection        { return d.Collection("projects") }
func (d *DB) Admins() *mongo.Collection          { return d.Collection("admins") }
func (d *DB) ContactMessages() *mongo.Collection { return d.Collection("contact_messages") }
func (d *DB) Services() *mongo.Collection        { return d.Collection("services") }
func (d *DB) Testimonials() *mongo.Collection    { return d.Collection("testimonials") }
