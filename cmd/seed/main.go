package main

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/user/samadhi-tracker/internal/config"
	"github.com/user/samadhi-tracker/internal/model"
	"github.com/user/samadhi-tracker/pkg/database"
)

type feelingSeed struct {
	nameEs   string
	nameEn   string
	category string
}

var feelings = []feelingSeed{
	{"Alegría", "Joy", model.CategoryGood},
	{"Amor", "Love", model.CategoryGood},
	{"Concentración", "Concentration", model.CategoryGood},
	{"Energía", "Energy", model.CategoryGood},
	{"Orgullo de lo que hago", "Pride in what I do", model.CategoryGood},
	{"Pasión", "Passion", model.CategoryGood},
	{"Pensar en el futuro", "Thinking about the future", model.CategoryGood},
	{"Ansiedad", "Anxiety", model.CategoryBad},
	{"Ardor en estómago", "Stomach burning", model.CategoryBad},
	{"Irritabilidad", "Irritability", model.CategoryBad},
	{"Pensamientos Negativos", "Negative Thoughts", model.CategoryBad},
	{"Estrés", "Stress", model.CategoryBad},
	{"Tensión", "Tension", model.CategoryBad},
}

type tagSeed struct {
	name        string
	description string
}

var tags = []tagSeed{
	{"Ansiedad", "Para reducir la ansiedad y el nerviosismo"},
	{"Estrés", "Para aliviar el estrés y la tensión"},
	{"Relajación", "Para lograr un estado de relajación profunda"},
	{"Respiración", "Técnicas de respiración consciente"},
	{"Mindfulness", "Meditación de atención plena"},
	{"Sueño", "Para mejorar la calidad del sueño"},
	{"Concentración", "Para mejorar el enfoque y la concentración"},
	{"Gratitud", "Para cultivar sentimientos de gratitud"},
	{"Amor", "Meditación de amor y bondad"},
	{"General", "Meditación general para cualquier estado de ánimo"},
}

type meditationSeed struct {
	title       string
	description string
	youtubeURL  string
	duration    int
	tagNames    []string
}

var meditations = []meditationSeed{
	{
		title:       "Meditación de Respiración Profunda para Ansiedad",
		description: "Una meditación guiada de 10 minutos para reducir la ansiedad y encontrar calma interior",
		youtubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		duration:    10,
		tagNames:    []string{"Ansiedad", "Respiración", "Relajación"},
	},
	{
		title:       "Mindfulness para Principiantes",
		description: "Meditación mindfulness básica perfecta para quienes están comenzando su práctica",
		youtubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		duration:    15,
		tagNames:    []string{"Mindfulness", "General", "Concentración"},
	},
	{
		title:       "Meditación para Dormir Profundamente",
		description: "Relajación guiada para lograr un sueño reparador y profundo",
		youtubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		duration:    20,
		tagNames:    []string{"Sueño", "Relajación", "Estrés"},
	},
	{
		title:       "Meditación de Amor y Bondad",
		description: "Cultiva sentimientos de amor, compasión y bondad hacia ti mismo y los demás",
		youtubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		duration:    12,
		tagNames:    []string{"Amor", "Gratitud", "General"},
	},
	{
		title:       "Meditación para Reducir el Estrés",
		description: "Técnicas efectivas para liberar la tensión y encontrar paz mental",
		youtubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		duration:    18,
		tagNames:    []string{"Estrés", "Relajación", "Respiración"},
	},
	{
		title:       "Meditación de Concentración",
		description: "Mejora tu enfoque y capacidad de concentración con esta práctica",
		youtubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		duration:    15,
		tagNames:    []string{"Concentración", "Mindfulness", "General"},
	},
}

// Seeds the catalog and the initial admin account. Safe to run repeatedly:
// rows are matched by their natural keys and only created when missing.
func main() {
	cfg, err := config.LoadConfig("config.env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seedFeelings(db); err != nil {
		log.Fatalf("Failed to seed feelings: %v", err)
	}
	tagsByName, err := seedTags(db)
	if err != nil {
		log.Fatalf("Failed to seed tags: %v", err)
	}
	if err := seedMeditations(db, tagsByName); err != nil {
		log.Fatalf("Failed to seed meditations: %v", err)
	}
	if err := seedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Printf("Seeding complete: %d feelings, %d tags, %d meditations.", len(feelings), len(tags), len(meditations))
}

func seedFeelings(db *gorm.DB) error {
	for _, seed := range feelings {
		var existing model.Feeling
		err := db.Where("name_es = ? AND name_en = ?", seed.nameEs, seed.nameEn).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		feeling := model.Feeling{
			NameEs:   seed.nameEs,
			NameEn:   seed.nameEn,
			Category: seed.category,
			IsActive: true,
		}
		if err := db.Create(&feeling).Error; err != nil {
			return err
		}
		log.Printf("Feeling created: %s", seed.nameEs)
	}
	return nil
}

func seedTags(db *gorm.DB) (map[string]model.MeditationTag, error) {
	byName := make(map[string]model.MeditationTag, len(tags))
	for _, seed := range tags {
		var tag model.MeditationTag
		err := db.Where("name = ?", seed.name).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = model.MeditationTag{
				Name:        seed.name,
				Description: seed.description,
				IsActive:    true,
			}
			if err := db.Create(&tag).Error; err != nil {
				return nil, err
			}
			log.Printf("Tag created: %s", seed.name)
		} else if err != nil {
			return nil, err
		}
		byName[tag.Name] = tag
	}
	return byName, nil
}

func seedMeditations(db *gorm.DB, tagsByName map[string]model.MeditationTag) error {
	for _, seed := range meditations {
		var existing model.Meditation
		err := db.Where("title = ?", seed.title).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		meditationTags := make([]model.MeditationTag, 0, len(seed.tagNames))
		for _, name := range seed.tagNames {
			if tag, ok := tagsByName[name]; ok {
				meditationTags = append(meditationTags, tag)
			}
		}

		meditation := model.Meditation{
			Title:       seed.title,
			Description: seed.description,
			YoutubeURL:  seed.youtubeURL,
			Duration:    seed.duration,
			IsActive:    true,
			Tags:        meditationTags,
		}
		if err := db.Create(&meditation).Error; err != nil {
			return err
		}
		log.Printf("Meditation created: %s", seed.title)
	}
	return nil
}

func seedAdmin(db *gorm.DB, cfg *config.AppConfig) error {
	var existing model.User
	err := db.Where("user_id = ?", "admin").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := envOr("SEED_ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		return err
	}

	country := "Colombia"
	admin := model.User{
		UserID:   "admin",
		Email:    envOr("SEED_ADMIN_EMAIL", "admin@meditation-tracker.com"),
		Password: string(hash),
		Role:     model.RoleAdmin,
		Country:  &country,
		Language: model.LanguageES,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Admin user created: %s", admin.UserID)
	return nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
