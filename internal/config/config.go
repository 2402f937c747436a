package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Mail      MailConfig      `yaml:"mail"`
	Space     SpaceConfig     `yaml:"space"`
	Art       ArtConfig       `yaml:"art"`
	Translate TranslateConfig `yaml:"translate"`
	GenAI     GenAIConfig     `yaml:"genai"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Card      CardConfig      `yaml:"card"`
	Run       RunConfig       `yaml:"run"`
	LogLevel  string          `yaml:"log_level"`
	LogFormat string          `yaml:"log_format"`
}

type MailConfig struct {
	Host       string   `yaml:"host"`
	Port       int      `yaml:"port"`
	Sender     string   `yaml:"sender"`
	Password   string   `yaml:"password"`
	Recipients []string `yaml:"recipients"`
	DryRun     bool     `yaml:"dry_run"`
}

type SpaceConfig struct {
	BaseURL     string        `yaml:"base_url"`
	APIKey      string        `yaml:"api_key"`
	Timeout     time.Duration `yaml:"timeout"`
	FixtureFile string        `yaml:"fixture_file"`
}

type ArtConfig struct {
	BaseURL      string        `yaml:"base_url"`
	ImageBaseURL string        `yaml:"image_base_url"`
	PageSize     int           `yaml:"page_size"`
	MaxPage      int           `yaml:"max_page"`
	ImageWidth   int           `yaml:"image_width"`
	Timeout      time.Duration `yaml:"timeout"`
}

type TranslateConfig struct {
	BaseURL        string        `yaml:"base_url"`
	TargetLanguage string        `yaml:"target_language"`
	MaxChars       int           `yaml:"max_chars"`
	Timeout        time.Duration `yaml:"timeout"`
}

type GenAIConfig struct {
	Provider string        `yaml:"provider"`
	APIKey   string        `yaml:"api_key"`
	Model    string        `yaml:"model"`
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Enabled reports whether poem generation has a credential.
func (g GenAIConfig) Enabled() bool {
	return g.APIKey != ""
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether delivery announcements should be published.
func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type CardConfig struct {
	RecipientName string `yaml:"recipient_name"`
	SenderName    string `yaml:"sender_name"`
}

type RunConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Load builds the configuration from an optional YAML file and the process
// environment. Environment variables win over file values.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("NASA_API_KEY", &c.Space.APIKey)
	str("SPACE_FIXTURE_FILE", &c.Space.FixtureFile)
	str("EMAIL_SENDER", &c.Mail.Sender)
	str("EMAIL_PASSWORD", &c.Mail.Password)
	str("SMTP_HOST", &c.Mail.Host)
	str("APELIDO", &c.Card.RecipientName)
	str("ASSINATURA", &c.Card.SenderName)
	str("TARGET_LANGUAGE", &c.Translate.TargetLanguage)
	str("GENAI_PROVIDER", &c.GenAI.Provider)
	str("GENAI_API_KEY", &c.GenAI.APIKey)
	str("GENAI_MODEL", &c.GenAI.Model)
	str("GENAI_BASE_URL", &c.GenAI.BaseURL)
	str("RABBITMQ_URL", &c.RabbitMQ.URL)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)

	if v, ok := lookup("EMAIL_RECEIVERS"); ok && v != "" {
		c.Mail.Recipients = SplitRecipients(v)
	}
	if v, ok := lookup("SMTP_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse SMTP_PORT: %w", err)
		}
		c.Mail.Port = port
	}
	if v, ok := lookup("DRY_RUN"); ok && v != "" {
		dry, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse DRY_RUN: %w", err)
		}
		c.Mail.DryRun = dry
	}

	return nil
}

// SplitRecipients splits a comma separated address list, dropping blanks.
func SplitRecipients(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) setDefaults() {
	if c.Mail.Host == "" {
		c.Mail.Host = "smtp.gmail.com"
	}
	if c.Mail.Port == 0 {
		c.Mail.Port = 465
	}
	if c.Space.BaseURL == "" {
		c.Space.BaseURL = "https://api.nasa.gov/planetary/apod"
	}
	if c.Space.Timeout == 0 {
		c.Space.Timeout = 30 * time.Second
	}
	if c.Art.BaseURL == "" {
		c.Art.BaseURL = "https://api.artic.edu/api/v1/artworks/search"
	}
	if c.Art.ImageBaseURL == "" {
		c.Art.ImageBaseURL = "https://www.artic.edu/iiif/2"
	}
	if c.Art.PageSize == 0 {
		c.Art.PageSize = 10
	}
	if c.Art.MaxPage == 0 {
		c.Art.MaxPage = 100
	}
	if c.Art.ImageWidth == 0 {
		c.Art.ImageWidth = 843
	}
	if c.Art.Timeout == 0 {
		c.Art.Timeout = 30 * time.Second
	}
	if c.Translate.BaseURL == "" {
		c.Translate.BaseURL = "https://translate.google.com/m"
	}
	if c.Translate.TargetLanguage == "" {
		c.Translate.TargetLanguage = "pt"
	}
	if c.Translate.MaxChars == 0 {
		c.Translate.MaxChars = 4500
	}
	if c.GenAI.Provider == "" {
		c.GenAI.Provider = ProviderOpenAI
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "dailycard"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "deliveries"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "dailycard_deliveries"
	}
	if c.Card.RecipientName == "" {
		c.Card.RecipientName = "Amor"
	}
	if c.Card.SenderName == "" {
		c.Card.SenderName = "Seu Amado"
	}
	if c.Run.Timeout == 0 {
		c.Run.Timeout = 5 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Validate reports settings that prevent a run from proceeding.
func (c *Config) Validate() error {
	var errs []error

	if c.Mail.Sender == "" {
		errs = append(errs, errors.New("EMAIL_SENDER is required"))
	}
	if c.Mail.Password == "" && !c.Mail.DryRun {
		errs = append(errs, errors.New("EMAIL_PASSWORD is required"))
	}
	if len(c.Mail.Recipients) == 0 {
		errs = append(errs, errors.New("EMAIL_RECEIVERS is required"))
	}
	if _, err := language.Parse(c.Translate.TargetLanguage); err != nil {
		errs = append(errs, fmt.Errorf("TARGET_LANGUAGE %q: %w", c.Translate.TargetLanguage, err))
	}
	switch c.GenAI.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		errs = append(errs, fmt.Errorf("unknown GENAI_PROVIDER %q", c.GenAI.Provider))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
