package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hackboard/hackboard/internal/certificate"
	"github.com/hackboard/hackboard/internal/config"
	"github.com/hackboard/hackboard/internal/mail"
	participantRepo "github.com/hackboard/hackboard/internal/repositories/participant"
	scoreRepo "github.com/hackboard/hackboard/internal/repositories/score"
	teamRepo "github.com/hackboard/hackboard/internal/repositories/team"
	"github.com/hackboard/hackboard/internal/services/dispatch"
	"github.com/hackboard/hackboard/internal/services/formation"
	"github.com/hackboard/hackboard/internal/services/messaging"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "hackboard",
	Short: "Hackathon team formation and certificate dispatch",
	Long: `Hackboard runs the post-approval batch work of a hackathon:
forming role-balanced teams from approved participants and sending
ranked certificates to every team member by email.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is ./hackboard.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Local .env files carry Redis and SMTP credentials in development
	_ = godotenv.Load()

	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("hackboard")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/hackboard")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("HACKBOARD")
	// Replace dots with underscores for nested keys in env vars
	// e.g., HACKBOARD_REDIS_ADDR for redis.addr
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// app bundles the wired services behind the commands
type app struct {
	redisClient *redis.Client
	formation   formation.Service
	dispatch    dispatch.Service
	logger      *slog.Logger
}

// newApp loads configuration and wires repositories and services
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Logging.Level)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create participant repository: %w", err)
	}

	teams, err := teamRepo.NewRedis(&teamRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create team repository: %w", err)
	}

	scores, err := scoreRepo.NewRedis(&scoreRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create score repository: %w", err)
	}

	composer, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return nil, fmt.Errorf("create messaging service: %w", err)
	}

	renderer, err := certificate.New(&certificate.Config{
		Width:  cfg.Certificate.Width,
		Height: cfg.Certificate.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("create certificate renderer: %w", err)
	}

	transport, err := mail.NewSMTP(&mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		return nil, fmt.Errorf("create mail transport: %w", err)
	}

	formationSvc, err := formation.NewService(&formation.Config{
		TeamSize:        cfg.Formation.TeamSize,
		DefaultRole:     cfg.Formation.DefaultRole,
		ParticipantRepo: participants,
		TeamRepo:        teams,
		Messaging:       composer,
		MailTransport:   transport,
		Logger:          logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create formation service: %w", err)
	}

	dispatchSvc, err := dispatch.NewService(&dispatch.Config{
		BatchSize:       cfg.Dispatch.BatchSize,
		InterBatchDelay: cfg.Dispatch.InterBatchDelay(),
		UnitTimeout:     cfg.Dispatch.UnitTimeout(),
		ParticipantRepo: participants,
		TeamRepo:        teams,
		ScoreRepo:       scores,
		Renderer:        renderer,
		Messaging:       composer,
		MailTransport:   transport,
	})
	if err != nil {
		return nil, fmt.Errorf("create dispatch service: %w", err)
	}

	return &app{
		redisClient: redisClient,
		formation:   formationSvc,
		dispatch:    dispatchSvc,
		logger:      logger,
	}, nil
}

// Close releases the app's connections
func (a *app) Close() error {
	return a.redisClient.Close()
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
}
