package main

import (
	"log"
	"os"
	"time"

	"innovation-hub-be/internal/model"
	"innovation-hub-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo data...")

	seedUsers(db)
	seedCategories(db)
	seedStrategyDocuments(db)
	seedFundingCalls(db)

	color.Green("Seeding completed.")
}

func seedUsers(db *gorm.DB) {
	password := os.Getenv("SEED_USER_PASSWORD")
	if password == "" {
		password = "changeme123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash seed password: %v", err)
	}

	users := []model.User{
		{Email: "anna.svensson@kommun.se", Name: "Anna Svensson", Department: "Digitalisering"},
		{Email: "erik.lindberg@kommun.se", Name: "Erik Lindberg", Department: "Medborgarservice"},
		{Email: "maria.holm@kommun.se", Name: "Maria Holm", Department: "Miljöförvaltning"},
	}

	for _, u := range users {
		u.PasswordHash = string(hash)
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&u).Error
		if err != nil {
			color.Red("Failed to seed user %s: %v", u.Email, err)
			continue
		}
		color.Green("Seeded user: %s", u.Email)
	}
}

func seedCategories(db *gorm.DB) {
	categories := []model.Category{
		{Name: "Digital transformation", Description: "Digitalisering, AI och automation av kommunal verksamhet.", Color: "#2980b9"},
		{Name: "Medborgarservice", Description: "Service och tjänster riktade till medborgarna.", Color: "#27ae60"},
		{Name: "Miljö och klimat", Description: "Hållbarhet, klimat och gröna initiativ.", Color: "#16a085"},
		{Name: "Processer och effektivitet", Description: "Interna processförbättringar och kostnadseffektivitet.", Color: "#f39c12"},
		{Name: "Innovation och utveckling", Description: "Nya idéer, forskning och kreativ utveckling.", Color: "#8e44ad"},
	}

	for _, c := range categories {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&c).Error
		if err != nil {
			color.Red("Failed to seed category %s: %v", c.Name, err)
			continue
		}
		color.Green("Seeded category: %s", c.Name)
	}
}

func seedStrategyDocuments(db *gorm.DB) {
	validFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	validTo := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)

	docs := []model.StrategyDocument{
		{
			Title:       "Digitaliseringsstrategi 2030",
			Description: "Kommunens övergripande strategi för digital transformation av verksamhet och service.",
			Type:        "strategic_goal",
			Level:       1,
			Source:      "Kommunfullmäktige",
			ValidFrom:   &validFrom,
			ValidTo:     &validTo,
		},
		{
			Title:       "Handlingsplan för e-tjänster",
			Description: "Konkreta åtgärder för att utöka kommunens utbud av digitala medborgartjänster.",
			Type:        "action_plan",
			Level:       2,
			Source:      "Digitaliseringsavdelningen",
			ValidFrom:   &validFrom,
		},
		{
			Title:       "Riktlinje för AI-användning",
			Description: "Riktlinjer för ansvarsfull användning av AI i kommunal verksamhet.",
			Type:        "guideline",
			Level:       3,
			Source:      "IT-avdelningen",
			ValidFrom:   &validFrom,
		},
	}

	for _, doc := range docs {
		var count int64
		db.Model(&model.StrategyDocument{}).Where("title = ?", doc.Title).Count(&count)
		if count > 0 {
			color.Yellow("Strategy document already exists: %s", doc.Title)
			continue
		}
		if err := db.Create(&doc).Error; err != nil {
			color.Red("Failed to seed strategy document %s: %v", doc.Title, err)
			continue
		}
		color.Green("Seeded strategy document: %s", doc.Title)
	}
}

func seedFundingCalls(db *gorm.DB) {
	deadline := time.Date(2026, 11, 30, 0, 0, 0, 0, time.UTC)
	budgetMin := 500000.0
	budgetMax := 3000000.0

	calls := []model.FundingCall{
		{
			Title:       "Smart digitalisering i offentlig sektor",
			Description: "Utlysning för innovationsprojekt som digitaliserar kommunala processer.",
			Program:     "Vinnova",
			Funder:      "Vinnova",
			Status:      "open",
			Deadline:    &deadline,
			BudgetMin:   &budgetMin,
			BudgetMax:   &budgetMax,
			Url:         "https://www.vinnova.se/utlysningar/",
		},
		{
			Title:       "Digital Europe Programme: eGovernment",
			Description: "EU-finansiering för interoperabla digitala offentliga tjänster.",
			Program:     "Digital Europe",
			Funder:      "Europeiska kommissionen",
			Status:      "upcoming",
			Url:         "https://digital-strategy.ec.europa.eu/en/activities/digital-programme",
		},
	}

	for _, call := range calls {
		var count int64
		db.Model(&model.FundingCall{}).Where("title = ?", call.Title).Count(&count)
		if count > 0 {
			color.Yellow("Funding call already exists: %s", call.Title)
			continue
		}
		if err := db.Create(&call).Error; err != nil {
			color.Red("Failed to seed funding call %s: %v", call.Title, err)
			continue
		}
		color.Green("Seeded funding call: %s", call.Title)
	}
}
