package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/provenews/provemarket/internal/repos/articles"
)

type createArticleRequest struct {
	SourceName  string    `json:"sourceName"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
}

// CreateArticleHandler handles POST /articles
func (h *HandlerProvider) CreateArticleHandler(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest

	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if strings.TrimSpace(req.SourceName) == "" ||
		strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.URL) == "" ||
		req.PublishedAt.IsZero() {
		writeError(w, http.StatusBadRequest, "sourceName, title, url and publishedAt required")
		return
	}

	created, err := h.articles.Create(r.Context(), articles.NewArticle{
		SourceName:  req.SourceName,
		Author:      req.Author,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		URLToImage:  req.URLToImage,
		PublishedAt: req.PublishedAt,
		Content:     req.Content,
		Category:    req.Category,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArticleView(created))
}

// GetArticleHandler handles GET /articles/{articleId}
func (h *HandlerProvider) GetArticleHandler(w http.ResponseWriter, r *http.Request) {
	articleID, err := parseIDFromPath(r, "articleId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid articleId in path")
		return
	}

	article, err := h.articles.Get(r.Context(), articleID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleView(article))
}

// ListArticlesHandler handles GET /articles
func (h *HandlerProvider) ListArticlesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.articles.List(r.Context(), articles.ListOptions{
		Category: r.URL.Query().Get("category"),
		Limit:    queryInt(r, "limit", 50),
		Offset:   queryInt(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	views := make([]articleView, 0, len(list))
	for _, a := range list {
		views = append(views, toArticleView(a))
	}

	writeJSON(w, http.StatusOK, views)
}

// ListUnpromotedArticlesHandler handles GET /articles/unpromoted
func (h *HandlerProvider) ListUnpromotedArticlesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.articles.ListUnpromoted(r.Context(), queryInt(r, "limit", 50))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	views := make([]articleView, 0, len(list))
	for _, a := range list {
		views = append(views, toArticleView(a))
	}

	writeJSON(w, http.StatusOK, views)
}

// PromoteArticleHandler handles POST /articles/{articleId}/market
func (h *HandlerProvider) PromoteArticleHandler(w http.ResponseWriter, r *http.Request) {
	articleID, err := parseIDFromPath(r, "articleId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid articleId in path")
		return
	}

	market, err := h.markets.CreateForArticle(r.Context(), articleID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMarketView(market))
}
