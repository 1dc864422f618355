package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection           *mongo.Collection
	PackagesCollection       *mongo.Collection
	CustomizationsCollection *mongo.Collection
	BookingsCollection       *mongo.Collection
	TasksCollection          *mongo.Collection
	ReviewsCollection        *mongo.Collection
	NotificationsCollection  *mongo.Collection
	ActivitiesCollection     *mongo.Collection
	WishlistsCollection      *mongo.Collection
	AvailabilityCollection   *mongo.Collection
	ChatMessagesCollection   *mongo.Collection
	Client                   *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("eventease")
	UserCollection = database.Collection("users")
	PackagesCollection = database.Collection("packages")
	CustomizationsCollection = database.Collection("customizationOptions")
	BookingsCollection = database.Collection("bookings")
	TasksCollection = database.Collection("tasks")
	ReviewsCollection = database.Collection("reviews")
	NotificationsCollection = database.Collection("notifications")
	ActivitiesCollection = database.Collection("activity_logs")
	WishlistsCollection = database.Collection("wishlists")
	AvailabilityCollection = database.Collection("availability")
	ChatMessagesCollection = database.Collection("chat_messages")
}
