// Command seed loads sample products, member profiles, and an admin user
// into the configured tables. Intended for dev and demo environments.
package main

import (
	"context"
	stdlog "log"
	"os"

	"github.com/ensemble-arts/shop-backend/internal/auth"
	"github.com/ensemble-arts/shop-backend/internal/awsx"
	"github.com/ensemble-arts/shop-backend/internal/catalog"
	"github.com/ensemble-arts/shop-backend/internal/members"
	"github.com/ensemble-arts/shop-backend/pkg/config"
)

var products = []catalog.Product{
	{
		ProductID:   "ensemble-tshirt",
		Name:        "Ensemble T-Shirt",
		Description: "Premium cotton t-shirt with Ensemble logo",
		Price:       25.99,
		ImageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
		Stock:       50,
	},
	{
		ProductID:   "music-club-mug",
		Name:        "Music Club Mug",
		Description: "Ceramic mug perfect for your morning coffee",
		Price:       15.99,
		ImageURL:    "https://images.unsplash.com/photo-1514228742587-6b1558fcf93a?w=400&h=400&fit=crop",
		Stock:       30,
	},
	{
		ProductID:   "dance-club-hoodie",
		Name:        "Dance Club Hoodie",
		Description: "Comfortable hoodie for dance practice",
		Price:       45.99,
		ImageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400&h=400&fit=crop",
		Stock:       25,
	},
	{
		ProductID:   "theatre-club-cap",
		Name:        "Theatre Club Cap",
		Description: "Stylish cap with theatre club branding",
		Price:       20.99,
		ImageURL:    "https://images.unsplash.com/photo-1588850561407-ed78c282e89b?w=400&h=400&fit=crop",
		Stock:       40,
	},
	{
		ProductID:   "ensemble-sticker-pack",
		Name:        "Ensemble Sticker Pack",
		Description: "Set of 10 vinyl stickers",
		Price:       8.99,
		ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=400&fit=crop",
		Stock:       100,
	},
}

var profiles = []members.MemberProfile{
	{
		MemberID:     "priya-sharma",
		Name:         "Priya Sharma",
		Role:         "President",
		Club:         members.ClubCore,
		Bio:          "Passionate leader with 5+ years of experience in cultural activities. Dedicated to fostering creativity and building a strong community.",
		ContactEmail: "priya.sharma@ensemble.com",
	},
	{
		MemberID:     "arjun-patel",
		Name:         "Arjun Patel",
		Role:         "Vice President",
		Club:         members.ClubCore,
		Bio:          "Creative visionary who brings fresh ideas to the table. Specializes in event coordination and team management.",
		ContactEmail: "arjun.patel@ensemble.com",
	},
	{
		MemberID:     "sneha-reddy",
		Name:         "Sneha Reddy",
		Role:         "Dance Coordinator",
		Club:         members.ClubDance,
		Bio:          "Classical and contemporary dance expert with 8 years of training. Leads our dance troupe with grace and precision.",
		ContactEmail: "sneha.reddy@ensemble.com",
	},
	{
		MemberID:     "rahul-kumar",
		Name:         "Rahul Kumar",
		Role:         "Music Coordinator",
		Club:         members.ClubMusic,
		Bio:          "Multi-instrumentalist and vocalist with a passion for both traditional and modern music. Inspires our musicians to reach new heights.",
		ContactEmail: "rahul.kumar@ensemble.com",
	},
	{
		MemberID:     "ananya-singh",
		Name:         "Ananya Singh",
		Role:         "Theatre Coordinator",
		Club:         members.ClubTheatre,
		Bio:          "Theatre enthusiast with extensive experience in acting and direction. Brings stories to life with passion and creativity.",
		ContactEmail: "ananya.singh@ensemble.com",
	},
}

func main() {
	ctx := context.Background()
	cfg := config.Load()

	clients, err := awsx.NewClients(ctx)
	if err != nil {
		stdlog.Fatalf("failed to init aws clients: %v", err)
	}

	productStore := catalog.NewStore(clients.DynamoDB, cfg.ProductsTable)
	for _, p := range products {
		if err := productStore.Put(ctx, p); err != nil {
			stdlog.Fatalf("seed product %s: %v", p.ProductID, err)
		}
	}
	stdlog.Printf("seeded %d products", len(products))

	memberStore := members.NewStore(clients.DynamoDB, cfg.MembersTable)
	for _, m := range profiles {
		if err := memberStore.Put(ctx, m); err != nil {
			stdlog.Fatalf("seed member %s: %v", m.MemberID, err)
		}
	}
	stdlog.Printf("seeded %d member profiles", len(profiles))

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		stdlog.Printf("SEED_ADMIN_PASSWORD not set, skipping admin user")
		return
	}
	userStore := auth.NewStore(clients.DynamoDB, cfg.UsersTable)
	if err := userStore.PutUser(ctx, "Admin User", "admin@ensemble.com", adminPassword, auth.RoleAdmin); err != nil {
		stdlog.Fatalf("seed admin user: %v", err)
	}
	stdlog.Printf("seeded admin user")
}
