// Command smoke drives the client SDK against a running backend: sign in,
// list a filtered course page, and load the dashboard. Useful as a quick
// end-to-end check during backend development.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"coursehub/internal/app"
	"coursehub/internal/config"
	"coursehub/internal/util"
	"coursehub/pkg/ai"
	"coursehub/pkg/api"
	"coursehub/pkg/domain"
	"coursehub/pkg/session"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	search := flag.String("search", "", "course search filter")
	category := flag.String("category", "", "course category filter")
	flag.Parse()

	if err := run(*configPath, *email, *password, *search, *category); err != nil {
		fmt.Fprintf(os.Stderr, "smoke: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, email, password, search, category string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger := util.InitLogger(cfg.LogLevel)

	store, err := newSessionStore(cfg)
	if err != nil {
		return err
	}
	sessions := session.NewManager(store)
	client := api.New(cfg.APIBaseURL, api.WithTokenSource(sessions.Token))

	var assistant *ai.Assistant
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			return err
		}
		assistant = ai.NewAssistant(gemini, cfg.GenerationModel)
	}

	application, err := app.New(app.Config{
		API:       client,
		Sessions:  sessions,
		Assistant: assistant,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if email != "" {
		if _, err := application.Login(ctx, email, password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	state := app.NewFilterState()
	state.SetFilters(domain.CourseFilters{Search: search, Category: category})
	page, err := application.ListCourses(ctx, state)
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}
	dump("courses", page)

	if _, ok := application.Current(); ok {
		dash, err := application.LoadDashboard(ctx)
		if err != nil {
			return fmt.Errorf("load dashboard: %w", err)
		}
		dump("dashboard", dash)
	}
	return nil
}

func newSessionStore(cfg config.FileConfig) (session.Store, error) {
	if cfg.SessionRedisAddr != "" {
		return session.NewRedisStore(cfg.SessionRedisAddr, cfg.SessionRedisPassword, "coursehub", 0)
	}
	return session.NewFileStore(cfg.SessionFile)
}

func dump(label string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%s: %v\n", label, v)
		return
	}
	fmt.Printf("%s:\n%s\n", label, data)
}
