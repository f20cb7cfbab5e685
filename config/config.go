package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/suportelm/nutri-ai-vision-scan-17/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// AppConfig is read from the environment exactly once at startup. The vision
// credential never leaves the server; handlers receive it through this struct
// instead of reading the environment at call time.
type AppConfig struct {
	Port      string
	JWTSecret string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	// Ceiling on the encoded image length (~4MB of decoded bytes).
	MaxImageEncodedLen int
	VisionTimeout      time.Duration

	AWSRegion     string
	S3Bucket      string
	CloudFrontURL string
	SESEmail      string

	StripeKey           string
	StripePriceMonthly  string
	StripePriceAnnual   string
	CheckoutLinkMonthly string
	CheckoutLinkAnnual  string
}

var App *AppConfig

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	App = &AppConfig{
		Port:      getEnv("PORT", "8080"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		MaxImageEncodedLen: getEnvInt("MAX_IMAGE_ENCODED_LEN", 5500000),
		VisionTimeout:      time.Duration(getEnvInt("VISION_TIMEOUT_SECONDS", 60)) * time.Second,

		AWSRegion:     os.Getenv("AWS_REGION"),
		S3Bucket:      os.Getenv("S3_BUCKET"),
		CloudFrontURL: os.Getenv("CLOUDFRONT_URL"),
		SESEmail:      os.Getenv("SES_EMAIL"),

		StripeKey:           os.Getenv("STRIPE_SECRET_KEY"),
		StripePriceMonthly:  os.Getenv("STRIPE_PRICE_MONTHLY"),
		StripePriceAnnual:   os.Getenv("STRIPE_PRICE_ANNUAL"),
		CheckoutLinkMonthly: os.Getenv("CHECKOUT_LINK_MONTHLY"),
		CheckoutLinkAnnual:  os.Getenv("CHECKOUT_LINK_ANNUAL"),
	}

	if App.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Meal{},
		&models.MealImage{},
		&models.DailyProgress{},
		&models.Subscriber{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
