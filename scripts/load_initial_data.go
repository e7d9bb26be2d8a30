package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"foodshare-backend/internal/config"
	"foodshare-backend/internal/database"
	"foodshare-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TagData struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Slug  string `yaml:"slug"`
}

type IngredientData struct {
	Name            string `yaml:"name"`
	MeasurementUnit string `yaml:"measurement_unit"`
}

// File structures
type TagsFile struct {
	Tags []TagData `yaml:"tags"`
}

type IngredientsFile struct {
	Ingredients []IngredientData `yaml:"ingredients"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	tags, err := loadTags(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	ingredients, err := loadIngredients(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load ingredients: %w", err)
	}

	tagCreated := 0
	for _, tagData := range tags {
		created, err := createTag(db, tagData)
		if err != nil {
			return fmt.Errorf("failed to create tag %s: %w", tagData.Slug, err)
		}
		if created {
			tagCreated++
		}
	}
	log.Printf("Tags: %d created, %d total", tagCreated, len(tags))

	ingredientCreated := 0
	for _, ingredientData := range ingredients {
		created, err := createIngredient(db, ingredientData)
		if err != nil {
			log.Printf("Warning: failed to create ingredient %s: %v", ingredientData.Name, err)
			continue // Continue with other ingredients
		}
		if created {
			ingredientCreated++
		}
	}
	log.Printf("Ingredients: %d created, %d total", ingredientCreated, len(ingredients))

	return nil
}

func loadTags(dataDir string) ([]TagData, error) {
	var allTags []TagData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tags") {
			var file TagsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTags = append(allTags, file.Tags...)
		}
		return nil
	})

	return allTags, err
}

func loadIngredients(dataDir string) ([]IngredientData, error) {
	var allIngredients []IngredientData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "ingredients") {
			var file IngredientsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allIngredients = append(allIngredients, file.Ingredients...)
		}
		return nil
	})

	return allIngredients, err
}

func createTag(db *gorm.DB, tagData TagData) (bool, error) {
	var tag models.Tag
	if err := db.Where("slug = ?", tagData.Slug).First(&tag).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			tag = models.Tag{
				Name:  tagData.Name,
				Color: tagData.Color,
				Slug:  tagData.Slug,
			}

			if err := db.Create(&tag).Error; err != nil {
				return false, fmt.Errorf("failed to create tag: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query tag: %w", err)
	}

	return false, nil // created = false (existing)
}

func createIngredient(db *gorm.DB, ingredientData IngredientData) (bool, error) {
	var ingredient models.Ingredient
	if err := db.Where("name = ? AND measurement_unit = ?", ingredientData.Name, ingredientData.MeasurementUnit).First(&ingredient).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			ingredient = models.Ingredient{
				Name:            ingredientData.Name,
				MeasurementUnit: ingredientData.MeasurementUnit,
			}

			if err := db.Create(&ingredient).Error; err != nil {
				return false, fmt.Errorf("failed to create ingredient: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query ingredient: %w", err)
	}

	return false, nil // created = false (existing)
}
