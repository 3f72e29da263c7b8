package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string `mapstructure:"PORT"`
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	AppURL        string `mapstructure:"APP_URL"`

	EmailAPIURL string `mapstructure:"EMAIL_API_URL"`
	EmailAPIKey string `mapstructure:"EMAIL_API_KEY"`
	EmailFrom   string `mapstructure:"EMAIL_FROM"`

	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`

	SeminarID          string `mapstructure:"SEMINAR_ID"`
	SeminarTitle       string `mapstructure:"SEMINAR_TITLE"`
	SeminarDescription string `mapstructure:"SEMINAR_DESCRIPTION"`
	SeminarDate        string `mapstructure:"SEMINAR_DATE"`
	SeminarStartTime   string `mapstructure:"SEMINAR_START_TIME"`
	SeminarEndTime     string `mapstructure:"SEMINAR_END_TIME"`
	SeminarVenue       string `mapstructure:"SEMINAR_VENUE"`
	SeminarCapacity    int    `mapstructure:"SEMINAR_CAPACITY"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "seminar.db")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("APP_URL", "http://127.0.0.1:3000")
	viper.SetDefault("EMAIL_API_URL", "https://api.resend.com")
	viper.SetDefault("EMAIL_FROM", "onboarding@resend.dev")
	viper.SetDefault("SEMINAR_ID", "demo-seminar-1")
	viper.SetDefault("SEMINAR_TITLE", "GitHub Copilot Workshop 2026")
	viper.SetDefault("SEMINAR_DESCRIPTION", "Hands-on seminar on AI-assisted development")
	viper.SetDefault("SEMINAR_DATE", "2026-03-15")
	viper.SetDefault("SEMINAR_START_TIME", "09:00")
	viper.SetDefault("SEMINAR_END_TIME", "17:00")
	viper.SetDefault("SEMINAR_VENUE", "Tech Conference Hall, Bangkok")
	viper.SetDefault("SEMINAR_CAPACITY", 200)

	viper.BindEnv("ADMIN_PASSWORD")
	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("APP_URL")
	viper.BindEnv("EMAIL_API_URL")
	viper.BindEnv("EMAIL_API_KEY")
	viper.BindEnv("EMAIL_FROM")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("SEMINAR_ID")
	viper.BindEnv("SEMINAR_TITLE")
	viper.BindEnv("SEMINAR_DESCRIPTION")
	viper.BindEnv("SEMINAR_DATE")
	viper.BindEnv("SEMINAR_START_TIME")
	viper.BindEnv("SEMINAR_END_TIME")
	viper.BindEnv("SEMINAR_VENUE")
	viper.BindEnv("SEMINAR_CAPACITY")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
