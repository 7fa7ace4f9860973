// Command newsfetcher pulls top headlines from NewsAPI and stores them as
// articles, skipping urls that are already present. Run it from cron or by
// hand; each run is one pass over the configured categories.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/provenews/provemarket/internal/infra/logging"
	"github.com/provenews/provemarket/internal/infra/pgutils"
	"github.com/provenews/provemarket/internal/repos/articles"
	pgarticles "github.com/provenews/provemarket/internal/repos/articles/postgres"
	"github.com/provenews/provemarket/pkg/envconf"

	"github.com/provenews/provemarket/internal/config"
)

type fetcherConfig struct {
	APIKey     string        `env:"NEWS_API_KEY"`
	BaseURL    string        `env:"NEWS_API_BASE_URL" envDefault:"https://newsapi.org/v2"`
	Country    string        `env:"NEWS_API_COUNTRY" envDefault:"us"`
	Categories string        `env:"NEWS_API_CATEGORIES" envDefault:"business,entertainment,health,science,sports,technology"`
	PageSize   int           `env:"NEWS_API_PAGE_SIZE" envDefault:"5"`
	Timeout    time.Duration `env:"NEWS_API_TIMEOUT" envDefault:"15s"`
	LogLevel   slog.Level    `env:"APP_LOG_LEVEL" envDefault:"info"`
	Postgres   config.PostgresConfig
}

type headlinesResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string    `json:"author"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		URLToImage  string    `json:"urlToImage"`
		PublishedAt time.Time `json:"publishedAt"`
		Content     string    `json:"content"`
	} `json:"articles"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx)
	if err != nil {
		slog.Error("news fetch failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()

	cfg := new(fetcherConfig)

	err := envconf.Load(cfg)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	logging.SetupJSON(cfg.LogLevel)

	db, err := pgutils.OpenDB(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	//nolint:errcheck
	defer db.Close()

	repo := pgarticles.New(db)
	client := &http.Client{Timeout: cfg.Timeout}

	var added, skipped int

	for _, category := range strings.Split(cfg.Categories, ",") {
		category = strings.TrimSpace(category)
		if category == "" {
			continue
		}

		resp, err := fetchHeadlines(ctx, client, cfg, category)
		if err != nil {
			return fmt.Errorf("fetch %q headlines: %w", category, err)
		}

		for _, a := range resp.Articles {
			if a.Title == "" || a.URL == "" {
				continue
			}

			sourceName := a.Source.Name
			if sourceName == "" {
				sourceName = "Unknown"
			}

			_, err = repo.Create(ctx, articles.NewArticle{
				SourceName:  sourceName,
				Author:      a.Author,
				Title:       a.Title,
				Description: a.Description,
				URL:         a.URL,
				URLToImage:  a.URLToImage,
				PublishedAt: a.PublishedAt,
				Content:     a.Content,
				Category:    category,
			})
			if err != nil {
				if errors.Is(err, articles.ErrArticleExists) {
					skipped++
					continue
				}

				return fmt.Errorf("store article %q: %w", a.Title, err)
			}

			added++
			slog.Info("added article", "title", a.Title, "category", category)
		}
	}

	slog.Info("news fetch finished", "added", added, "skipped", skipped)

	return nil
}

func fetchHeadlines(ctx context.Context, client *http.Client, cfg *fetcherConfig, category string) (*headlinesResponse, error) {
	q := url.Values{}
	q.Set("country", cfg.Country)
	q.Set("category", category)
	q.Set("pageSize", fmt.Sprint(cfg.PageSize))
	q.Set("page", "1")

	endpoint := strings.TrimRight(cfg.BaseURL, "/") + "/top-headlines?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	//nolint:errcheck
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi status %d", resp.StatusCode)
	}

	var decoded headlinesResponse

	err = json.NewDecoder(resp.Body).Decode(&decoded)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if decoded.Status != "ok" {
		return nil, fmt.Errorf("newsapi returned status %q", decoded.Status)
	}

	return &decoded, nil
}
