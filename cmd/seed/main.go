package main

import (
	"log"
	"os"

	"estate-crm-be/internal/model"
	"estate-crm-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding demo CRM data...")

	agent := seedAgent(db)
	contacts := seedContacts(db, agent.Id)
	properties := seedProperties(db, agent.Id)
	seedOpportunities(db, agent.Id, contacts, properties)

	color.Green("Done. Login with demo@estatecrm.dev / password123")
}

func seedAgent(db *gorm.DB) *model.User {
	var existing model.User
	if err := db.Where("email = ?", "demo@estatecrm.dev").First(&existing).Error; err == nil {
		color.Yellow("Demo agent already exists, reusing")
		return &existing
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	agent := model.User{
		Id:           uuid.New(),
		Email:        "demo@estatecrm.dev",
		PasswordHash: string(hash),
		FullName:     "Demo Agent",
		Role:         "agent",
		Provider:     "local",
	}
	if err := db.Create(&agent).Error; err != nil {
		color.Red("Error: Failed to seed agent: %v", err)
		os.Exit(1)
	}
	color.Green("Seeded agent %s", agent.Email)
	return &agent
}

func seedContacts(db *gorm.DB, userId uuid.UUID) []model.Contact {
	contacts := []model.Contact{
		{Id: uuid.New(), UserId: userId, FullName: "Maria Santos", Email: "maria.santos@example.com", Phone: "+6281234567001", Source: "website"},
		{Id: uuid.New(), UserId: userId, FullName: "John Tan", Email: "john.tan@example.com", Phone: "+6281234567002", Source: "referral"},
		{Id: uuid.New(), UserId: userId, FullName: "Aisha Rahman", Email: "aisha.rahman@example.com", Phone: "+6281234567003", Source: "whatsapp"},
	}

	for i := range contacts {
		if err := db.Create(&contacts[i]).Error; err != nil {
			color.Red("Error: Failed to seed contact: %v", err)
			os.Exit(1)
		}
	}
	color.Green("Seeded %d contacts", len(contacts))
	return contacts
}

func seedProperties(db *gorm.DB, userId uuid.UUID) []model.Property {
	properties := []model.Property{
		{
			Id: uuid.New(), UserId: userId,
			Title:       "Cozy Downtown Condo",
			Description: "Two bedroom condo in the heart of the city, walking distance to the MRT and central park.",
			Price:       250000, Address: "12 Riverside Ave", City: "Jakarta",
			Bedrooms: 2, Bathrooms: 1, AreaSqm: 68, Status: "available",
			ImageURL: "https://cdn.estatecrm.dev/listings/condo-downtown.jpg",
		},
		{
			Id: uuid.New(), UserId: userId,
			Title:       "Suburban Family House",
			Description: "Spacious four bedroom house with a garden and double garage in a quiet gated community.",
			Price:       480000, Address: "8 Jacaranda Lane", City: "Tangerang",
			Bedrooms: 4, Bathrooms: 3, AreaSqm: 210, Status: "available",
			ImageURL: "https://cdn.estatecrm.dev/listings/family-house.jpg",
		},
		{
			Id: uuid.New(), UserId: userId,
			Title:       "Beachfront Villa",
			Description: "Luxury villa with private pool and direct beach access, fully furnished.",
			Price:       1250000, Address: "3 Coral Bay", City: "Bali",
			Bedrooms: 5, Bathrooms: 5, AreaSqm: 420, Status: "reserved",
			ImageURL: "https://cdn.estatecrm.dev/listings/beach-villa.jpg",
		},
	}

	for i := range properties {
		if err := db.Create(&properties[i]).Error; err != nil {
			color.Red("Error: Failed to seed property: %v", err)
			os.Exit(1)
		}
	}
	color.Green("Seeded %d properties", len(properties))
	return properties
}

func seedOpportunities(db *gorm.DB, userId uuid.UUID, contacts []model.Contact, properties []model.Property) {
	opportunities := []model.Opportunity{
		{
			Id: uuid.New(), UserId: userId, ContactId: contacts[0].Id, PropertyId: &properties[0].Id,
			Title: "Maria - Downtown Condo", Stage: "New", Position: 0, Value: 250000,
		},
		{
			Id: uuid.New(), UserId: userId, ContactId: contacts[1].Id, PropertyId: &properties[1].Id,
			Title: "John - Family House", Stage: "Contacted", Position: 0, Value: 480000,
		},
		{
			Id: uuid.New(), UserId: userId, ContactId: contacts[2].Id, PropertyId: &properties[2].Id,
			Title: "Aisha - Beachfront Villa", Stage: "Negotiation", Position: 0, Value: 1250000,
		},
	}

	for i := range opportunities {
		if err := db.Create(&opportunities[i]).Error; err != nil {
			color.Red("Error: Failed to seed opportunity: %v", err)
			os.Exit(1)
		}
	}
	color.Green("Seeded %d opportunities", len(opportunities))
}
