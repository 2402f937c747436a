package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NASA_API_KEY", "SPACE_FIXTURE_FILE", "EMAIL_SENDER", "EMAIL_PASSWORD",
		"EMAIL_RECEIVERS", "SMTP_HOST", "SMTP_PORT", "APELIDO", "ASSINATURA",
		"TARGET_LANGUAGE", "GENAI_PROVIDER", "GENAI_API_KEY", "GENAI_MODEL",
		"GENAI_BASE_URL", "RABBITMQ_URL", "LOG_LEVEL", "LOG_FORMAT", "DRY_RUN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("NASA_API_KEY", "nasa-key")
	t.Setenv("EMAIL_SENDER", "me@example.com")
	t.Setenv("EMAIL_PASSWORD", "app-token")
	t.Setenv("EMAIL_RECEIVERS", "a@example.com, b@example.com,,")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "nasa-key", cfg.Space.APIKey)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.Mail.Recipients)
	assert.Equal(t, "Amor", cfg.Card.RecipientName)
	assert.Equal(t, "Seu Amado", cfg.Card.SenderName)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 465, cfg.Mail.Port)
	assert.Equal(t, "pt", cfg.Translate.TargetLanguage)
	assert.Equal(t, 4500, cfg.Translate.MaxChars)
	assert.Equal(t, 10, cfg.Art.PageSize)
	assert.Equal(t, 100, cfg.Art.MaxPage)
	assert.Equal(t, 30*time.Second, cfg.Space.Timeout)
	assert.False(t, cfg.GenAI.Enabled())
	assert.False(t, cfg.RabbitMQ.Enabled())
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	clearEnv(t)
	t.Setenv("MY_SENDER", "file@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
mail:
  sender: ${MY_SENDER}
  recipients: ["x@example.com"]
card:
  recipient_name: Love
art:
  page_size: 5
genai:
  provider: anthropic
  api_key: key
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file@example.com", cfg.Mail.Sender)
	assert.Equal(t, []string{"x@example.com"}, cfg.Mail.Recipients)
	assert.Equal(t, "Love", cfg.Card.RecipientName)
	assert.Equal(t, 5, cfg.Art.PageSize)
	assert.Equal(t, ProviderAnthropic, cfg.GenAI.Provider)
	assert.True(t, cfg.GenAI.Enabled())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("EMAIL_SENDER", "env@example.com")
	t.Setenv("EMAIL_PASSWORD", "secret")
	t.Setenv("EMAIL_RECEIVERS", "env-rcpt@example.com")
	t.Setenv("APELIDO", "Querida")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
mail:
  sender: file@example.com
card:
  recipient_name: Love
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env@example.com", cfg.Mail.Sender)
	assert.Equal(t, "Querida", cfg.Card.RecipientName)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mail: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestApplyEnv_ParseErrors(t *testing.T) {
	env := map[string]string{"SMTP_PORT": "not-a-port"}
	var cfg Config
	err := cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.ErrorContains(t, err, "SMTP_PORT")

	env = map[string]string{"DRY_RUN": "maybe"}
	err = cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.ErrorContains(t, err, "DRY_RUN")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := Config{
			Mail: MailConfig{
				Sender:     "me@example.com",
				Password:   "secret",
				Recipients: []string{"you@example.com"},
			},
		}
		cfg.setDefaults()
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing sender", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Sender = ""
		assert.ErrorContains(t, cfg.Validate(), "EMAIL_SENDER")
	})

	t.Run("missing password allowed in dry run", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Password = ""
		assert.Error(t, cfg.Validate())
		cfg.Mail.DryRun = true
		assert.NoError(t, cfg.Validate())
	})

	t.Run("no recipients", func(t *testing.T) {
		cfg := valid()
		cfg.Mail.Recipients = nil
		assert.ErrorContains(t, cfg.Validate(), "EMAIL_RECEIVERS")
	})

	t.Run("bad language", func(t *testing.T) {
		cfg := valid()
		cfg.Translate.TargetLanguage = "!!"
		assert.ErrorContains(t, cfg.Validate(), "TARGET_LANGUAGE")
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := valid()
		cfg.GenAI.Provider = "parrot"
		assert.ErrorContains(t, cfg.Validate(), "GENAI_PROVIDER")
	})
}

func TestSplitRecipients(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, SplitRecipients(" a@x.com ,b@x.com, "))
	assert.Nil(t, SplitRecipients(""))
}
