package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/text/language"

	"dailycard/internal/compose"
	"dailycard/internal/config"
	"dailycard/internal/genai"
	"dailycard/internal/logger"
	"dailycard/internal/mailer"
	"dailycard/internal/publisher"
	"dailycard/internal/render"
	"dailycard/internal/runner"
	"dailycard/internal/service"
	"dailycard/internal/source/apod"
	"dailycard/internal/source/artic"
	"dailycard/internal/translate"
)

func main() {
	log := logger.New("info", "text", os.Stdout)

	configPath := os.Getenv("DAILYCARD_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log = logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	log.Info("starting daily card")

	target := language.Make(cfg.Translate.TargetLanguage)

	// Content sources, tried in order
	spaceCfg := apod.Config{
		BaseURL: cfg.Space.BaseURL,
		APIKey:  cfg.Space.APIKey,
		Timeout: cfg.Space.Timeout,
	}
	if cfg.Space.FixtureFile != "" {
		fixture, err := apod.LoadFixture(cfg.Space.FixtureFile)
		if err != nil {
			log.Error("failed to load space fixture", "error", err)
			os.Exit(1)
		}
		spaceCfg.Fixture = fixture
	}
	spaceSource := apod.New(spaceCfg, log)

	artSource := artic.New(artic.Config{
		BaseURL:      cfg.Art.BaseURL,
		ImageBaseURL: cfg.Art.ImageBaseURL,
		PageSize:     cfg.Art.PageSize,
		MaxPage:      cfg.Art.MaxPage,
		ImageWidth:   cfg.Art.ImageWidth,
		Timeout:      cfg.Art.Timeout,
	}, log)

	translator := translate.NewService(
		translate.NewGoogle(translate.GoogleConfig{
			BaseURL: cfg.Translate.BaseURL,
			Timeout: cfg.Translate.Timeout,
		}, log),
		target,
		cfg.Translate.MaxChars,
		log,
	)

	generator, err := genai.New(genai.Config{
		Provider: cfg.GenAI.Provider,
		APIKey:   cfg.GenAI.APIKey,
		Model:    cfg.GenAI.Model,
		BaseURL:  cfg.GenAI.BaseURL,
		Timeout:  cfg.GenAI.Timeout,
	}, log)
	if err != nil {
		log.Error("failed to configure text generation", "error", err)
		os.Exit(1)
	}
	if generator == nil {
		log.Info("no generative-text key, default messages will be used")
	}
	composer := compose.New(generator, target, log)

	renderer, err := render.New()
	if err != nil {
		log.Error("failed to load template", "error", err)
		os.Exit(1)
	}

	var sender service.Sender
	if cfg.Mail.DryRun {
		sender = mailer.NewLog(log)
	} else {
		sender = mailer.NewSMTP(mailer.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Sender,
			Password: cfg.Mail.Password,
		}, log)
	}

	var announcer service.Announcer
	if cfg.RabbitMQ.Enabled() {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, log)
		if err != nil {
			log.Warn("delivery announcements disabled", "error", err)
		} else {
			defer rabbitMQ.Close()
			announcer = rabbitMQ
		}
	}

	digest := service.NewDigestService(
		service.NewFallbackChain(log, spaceSource, artSource),
		translator,
		composer,
		renderer,
		sender,
		announcer,
		log,
		service.DigestConfig{
			From:          cfg.Mail.Sender,
			Recipients:    cfg.Mail.Recipients,
			RecipientName: cfg.Card.RecipientName,
			SenderName:    cfg.Card.SenderName,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := runner.New(digest, cfg.Run.Timeout, log).Run(ctx); err != nil {
		stop()
		if announcer != nil {
			announcer.Close()
		}
		os.Exit(1)
	}
}
