package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"taskbuster/internal/intent"
	"taskbuster/internal/middleware"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// TaskBuster specifics
	HuggingFace HuggingFaceConfig
	Mail        MailConfig
	Client      ClientConfig
	Intent      IntentConfig
	RateLimit   RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type HuggingFaceConfig struct {
	APIToken      string
	BaseURL       string
	Timeout       string
	ClassifyModel string
	SummaryModel  string
}

type MailConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
}

type ClientConfig struct {
	Origin string
}

type IntentConfig struct {
	ConfidenceThreshold float64
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Hugging Face Inference API
	cfg.HuggingFace.APIToken = viper.GetString("hf.api_token")
	cfg.HuggingFace.BaseURL = viper.GetString("hf.base_url")
	cfg.HuggingFace.Timeout = viper.GetString("hf.timeout")
	cfg.HuggingFace.ClassifyModel = viper.GetString("hf.classify_model")
	cfg.HuggingFace.SummaryModel = viper.GetString("hf.summary_model")
	if token := viper.GetString("hf_api_token"); token != "" {
		cfg.HuggingFace.APIToken = token
	}

	// Mail (Gmail SMTP)
	cfg.Mail.Host = viper.GetString("mail.host")
	cfg.Mail.Port = viper.GetInt("mail.port")
	cfg.Mail.Username = viper.GetString("mail.username")
	cfg.Mail.Password = viper.GetString("mail.password")
	cfg.Mail.Recipient = viper.GetString("mail.recipient")
	if user := viper.GetString("gmail_user"); user != "" {
		cfg.Mail.Username = user
	}
	if password := viper.GetString("gmail_password"); password != "" {
		cfg.Mail.Password = password
	}
	if recipient := viper.GetString("email_recipient"); recipient != "" {
		cfg.Mail.Recipient = recipient
	}

	// Browser client origin
	cfg.Client.Origin = viper.GetString("client.origin")
	if origin := viper.GetString("client_url"); origin != "" {
		cfg.Client.Origin = origin
	}

	// Intent resolution
	cfg.Intent.ConfidenceThreshold = viper.GetFloat64("intent.confidence_threshold")

	// Rate limiting
	cfg.RateLimit.Requests = viper.GetInt("rate_limit.requests")
	cfg.RateLimit.Window = viper.GetDuration("rate_limit.window")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.HuggingFace.APIToken == "" {
		return fmt.Errorf("hf.api_token is required - set HF_API_TOKEN")
	}
	if cfg.Mail.Username == "" {
		return fmt.Errorf("mail.username is required - set GMAIL_USER")
	}
	if cfg.Mail.Password == "" {
		return fmt.Errorf("mail.password is required - set GMAIL_PASSWORD")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("client.origin", middleware.DefaultClientOrigin)
	viper.SetDefault("intent.confidence_threshold", intent.DefaultConfidenceThreshold)
	viper.SetDefault("rate_limit.requests", middleware.DefaultRateLimitRequests)
	viper.SetDefault("rate_limit.window", middleware.DefaultRateLimitWindow)
}
