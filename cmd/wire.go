package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/kit-coca/coca-cli/internal/adapters/api"
	tokenfile "github.com/kit-coca/coca-cli/internal/adapters/tokens/file"
	"github.com/kit-coca/coca-cli/internal/application"
	"github.com/kit-coca/coca-cli/internal/domain"
	"github.com/kit-coca/coca-cli/internal/ports"
)

type app struct {
	tokens      ports.TokenStore
	client      *api.Client
	coordinator *application.SessionCoordinator
	groups      *application.GroupContext
	notifier    *terminalNotifier
	addFailure  application.AddFailurePolicy
	baseURL     string
	now         func() time.Time
}

func wireApp() (*app, error) {
	cfg := viper.New()
	cfg.SetDefault("server.url", "http://localhost:8080")
	cfg.SetDefault("panel.add_failure", string(application.AddFailureBack))
	cfg.SetDefault("request.timeout", "30s")
	cfg.SetDefault("calendar.group", domain.PersonalGroupID)

	tokens, err := tokenfile.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire token store: %w", err)
	}

	baseURL := envOrDefault("COCA_SERVER_URL", cfg.GetString("server.url"))
	requestTimeout := cfg.GetDuration("request.timeout")

	client := &api.Client{
		BaseURL:        baseURL,
		Tokens:         tokens,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: requestTimeout,
	}
	refresher := &api.Refresher{
		BaseURL:        baseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: requestTimeout,
	}

	notifier := newTerminalNotifier(os.Stderr, os.Stdin)

	addFailure := application.AddFailurePolicy(cfg.GetString("panel.add_failure"))
	if !addFailure.Valid() {
		addFailure = application.AddFailureBack
	}

	groups := application.NewGroupContext()
	if id := cfg.GetInt64("calendar.group"); id != domain.PersonalGroupID {
		groups.Select(id)
	}

	return &app{
		tokens:      tokens,
		client:      client,
		coordinator: application.NewSessionCoordinator(client, refresher, tokens, notifier, ports.SystemClock{}),
		groups:      groups,
		notifier:    notifier,
		addFailure:  addFailure,
		baseURL:     baseURL,
		now:         time.Now,
	}, nil
}

// requireSession loads the stored session and fails when the user is
// not logged in.
func requireSession(ctx context.Context, app *app) (domain.Session, error) {
	session, err := app.tokens.Get(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !session.Authenticated() {
		return domain.Session{}, fmt.Errorf("%w: run `coca login` first", domain.ErrNotAuthenticated)
	}
	return session, nil
}

// fetchInto runs spec through the session coordinator and decodes the
// success payload into v.
func fetchInto(ctx context.Context, app *app, spec domain.RequestSpec, v any) error {
	outcome := app.coordinator.Do(ctx, spec)
	switch {
	case outcome.IsSuccess():
		if v == nil {
			return nil
		}
		return outcome.Decode(v)
	case outcome.IsUnauthorized():
		return domain.ErrNotAuthenticated
	default:
		return outcome.Cause
	}
}

// saveDefaultGroup persists the group selection so later invocations
// start on the same calendar.
func saveDefaultGroup(groupID int64) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".coca")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigFile(filepath.Join(configDir, "config.toml"))
	if err := cfg.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read config file: %w", err)
	}

	cfg.Set("calendar.group", groupID)
	if err := cfg.WriteConfig(); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
