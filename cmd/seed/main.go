package main

import (
	"context"
	"log"
	"time"

	"trekheaven/internal/config"
	"trekheaven/internal/database"
	"trekheaven/internal/models"
	"trekheaven/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	// Seed users
	userIDs := seedUsers(ctx, mongoDB.Database)

	// Seed treks
	seedTreks(ctx, mongoDB.Database)

	// Seed blogs authored by the admin user
	seedBlogs(ctx, mongoDB.Database, userIDs[0])

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")

	// Clear existing users
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	// Hash passwords
	adminPassword, _ := auth.HashPassword("admin123")
	memberPassword, _ := auth.HashPassword("password123")

	now := time.Now()

	users := []interface{}{
		models.User{
			Name:       "Admin",
			Email:      "admin@trekheaven.example.com",
			Password:   adminPassword,
			IsAdmin:    true,
			IsVerified: true,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		models.User{
			Name:       "Alice Sharma",
			Email:      "alice@example.com",
			Password:   memberPassword,
			IsVerified: true,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))

	// Convert to ObjectIDs
	var userIDs []primitive.ObjectID
	for _, id := range result.InsertedIDs {
		userIDs = append(userIDs, id.(primitive.ObjectID))
	}

	return userIDs
}

func seedTreks(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("treks")

	// Clear existing treks
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear treks: %v", err)
	}

	now := time.Now()

	treks := []interface{}{
		models.Trek{
			Title:        "Valley of Flowers",
			Description:  "A six day monsoon trek through a UNESCO World Heritage alpine valley carpeted with wildflowers, ending with a visit to Hemkund Sahib.",
			Location:     "Uttarakhand",
			Duration:     6,
			Difficulty:   models.DifficultyModerate,
			MaxGroupSize: 12,
			Price:        14999,
			Images:       []string{"treks/valley-of-flowers/meadow.jpg", "treks/valley-of-flowers/hemkund.jpg"},
			StartDates:   []time.Time{now.AddDate(0, 1, 0), now.AddDate(0, 2, 0)},
			Included:     []string{"Accommodation", "All meals on trek", "Forest permits", "Certified trek leader"},
			NotIncluded:  []string{"Transport to base camp", "Personal trekking gear", "Travel insurance"},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Arrival at Govindghat", Description: "Meet the crew and drive to the roadhead.", Accommodation: "Guest house"},
				{Day: 2, Title: "Trek to Ghangaria", Description: "A steady climb along the Pushpawati river.", Distance: "9 km", Elevation: "3,050 m", Accommodation: "Lodge"},
				{Day: 3, Title: "Valley of Flowers", Description: "Full day exploring the valley.", Distance: "7 km", Elevation: "3,650 m", Accommodation: "Lodge"},
				{Day: 4, Title: "Hemkund Sahib", Description: "Steep ascent to the glacial lake and gurudwara.", Distance: "12 km", Elevation: "4,330 m", Accommodation: "Lodge"},
				{Day: 5, Title: "Descend to Govindghat", Description: "Retrace the trail down the valley.", Distance: "9 km", Accommodation: "Guest house"},
				{Day: 6, Title: "Departure", Description: "Drive back to Rishikesh."},
			},
			Reviews:   []models.Review{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Trek{
			Title:        "Kedarkantha Summit",
			Description:  "A classic winter summit climb with pine forests, frozen lakes and a 360 degree view of the Garhwal ranges from the top.",
			Location:     "Uttarakhand",
			Duration:     5,
			Difficulty:   models.DifficultyEasy,
			MaxGroupSize: 15,
			Price:        9499,
			Images:       []string{"treks/kedarkantha/summit.jpg"},
			StartDates:   []time.Time{now.AddDate(0, 3, 0)},
			Included:     []string{"Tented accommodation", "All meals on trek", "Microspikes and gaiters"},
			NotIncluded:  []string{"Transport to base camp", "Personal expenses"},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Drive to Sankri", Description: "Scenic drive along the Tons river.", Accommodation: "Guest house"},
				{Day: 2, Title: "Trek to Juda ka Talab", Description: "Gentle climb through pine forest to the lake.", Distance: "4 km", Elevation: "2,700 m", Accommodation: "Camp"},
				{Day: 3, Title: "Kedarkantha base", Description: "Short walk to the open meadows below the summit.", Distance: "4 km", Elevation: "3,400 m", Accommodation: "Camp"},
				{Day: 4, Title: "Summit and descend", Description: "Pre-dawn push to the summit, then descend to Sankri.", Distance: "12 km", Elevation: "3,810 m", Accommodation: "Guest house"},
				{Day: 5, Title: "Departure", Description: "Drive back to Dehradun."},
			},
			Reviews:   []models.Review{},
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Trek{
			Title:        "Chadar Frozen River",
			Description:  "Walk the frozen Zanskar river in the depths of the Ladakhi winter, sleeping in caves used by traders for centuries.",
			Location:     "Ladakh",
			Duration:     9,
			Difficulty:   models.DifficultyDifficult,
			MaxGroupSize: 10,
			Price:        24999,
			Images:       []string{"treks/chadar/gorge.jpg", "treks/chadar/camp.jpg"},
			StartDates:   []time.Time{now.AddDate(0, 5, 0)},
			Included:     []string{"Camping equipment", "All meals on trek", "Wilderness permits", "Oxygen and medical kit"},
			NotIncluded:  []string{"Flights to Leh", "Insurance", "Personal gear"},
			Itinerary: []models.ItineraryDay{
				{Day: 1, Title: "Arrive in Leh", Description: "Rest and acclimatize at altitude.", Accommodation: "Hotel"},
				{Day: 2, Title: "Acclimatization walk", Description: "Short walks around Leh and a medical check.", Accommodation: "Hotel"},
				{Day: 3, Title: "Drive to Chilling, trek to Tilad Do", Description: "First steps on the frozen river.", Distance: "3 km", Elevation: "3,100 m", Accommodation: "Camp"},
				{Day: 4, Title: "Trek to Shingra Koma", Description: "Long day on the chadar past frozen waterfalls.", Distance: "10 km", Accommodation: "Camp"},
				{Day: 5, Title: "Trek to Tibb Cave", Description: "Walk through the narrowest section of the gorge.", Distance: "12 km", Accommodation: "Cave camp"},
				{Day: 6, Title: "Nerak village", Description: "Reach the frozen waterfall at Nerak.", Distance: "11 km", Elevation: "3,400 m", Accommodation: "Camp"},
				{Day: 7, Title: "Return to Tibb", Description: "Begin the walk back down the river.", Distance: "11 km", Accommodation: "Cave camp"},
				{Day: 8, Title: "Return to Chilling", Description: "Final day on the ice and drive back to Leh.", Distance: "13 km", Accommodation: "Hotel"},
				{Day: 9, Title: "Departure", Description: "Fly out of Leh."},
			},
			Reviews:   []models.Review{},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, treks)
	if err != nil {
		log.Fatalf("Failed to seed treks: %v", err)
	}

	log.Printf("Seeded %d treks", len(result.InsertedIDs))
}

func seedBlogs(ctx context.Context, db *mongo.Database, authorID primitive.ObjectID) {
	collection := db.Collection("blogs")

	// Clear existing blogs
	_, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Failed to clear blogs: %v", err)
	}

	now := time.Now()

	blogs := []interface{}{
		models.Blog{
			Title:       "Packing for Your First Himalayan Trek",
			Slug:        models.Slugify("Packing for Your First Himalayan Trek"),
			Description: "A field-tested packing list that keeps your rucksack under ten kilograms.",
			Content:     "The single biggest mistake first-time trekkers make is packing for comfort in camp instead of comfort on the trail. Start with layers: a wicking base, a fleece and a down jacket cover almost every Himalayan season...",
			AuthorID:    authorID,
			Images:      []string{"blogs/packing/rucksack.jpg"},
			Tags:        []string{"gear", "beginners"},
			CreatedAt:   now.Add(-72 * time.Hour),
			UpdatedAt:   now.Add(-72 * time.Hour),
		},
		models.Blog{
			Title:       "Why Monsoon Is the Best Season for Valley of Flowers",
			Slug:        models.Slugify("Why Monsoon Is the Best Season for Valley of Flowers"),
			Description: "The valley only blooms when the rest of the Himalaya shuts down.",
			Content:     "Most trekking routes close when the monsoon arrives, but the Valley of Flowers does the opposite. The same rains that trigger landslides elsewhere feed over three hundred species of alpine flowers...",
			AuthorID:    authorID,
			Images:      []string{"blogs/monsoon/valley.jpg"},
			Tags:        []string{"himalaya", "monsoon", "valley-of-flowers"},
			CreatedAt:   now.Add(-24 * time.Hour),
			UpdatedAt:   now.Add(-24 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, blogs)
	if err != nil {
		log.Fatalf("Failed to seed blogs: %v", err)
	}

	log.Printf("Seeded %d blogs", len(result.InsertedIDs))
}
