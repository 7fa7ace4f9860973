package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/provenews/provemarket/internal/repos/articles"
	"github.com/provenews/provemarket/internal/repos/markets"
	"github.com/provenews/provemarket/internal/repos/stakes"
	"github.com/provenews/provemarket/internal/repos/users"
	marketsvc "github.com/provenews/provemarket/internal/services/markets"
	"github.com/provenews/provemarket/internal/services/settlement"
)

type userView struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserView(u users.User) userView {
	return userView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Balance:   u.Balance,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type articleView struct {
	ID          uint64    `json:"id"`
	SourceName  string    `json:"sourceName"`
	Author      string    `json:"author,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toArticleView(a articles.Article) articleView {
	return articleView{
		ID:          a.ID,
		SourceName:  a.SourceName,
		Author:      a.Author,
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		URLToImage:  a.URLToImage,
		PublishedAt: a.PublishedAt,
		Content:     a.Content,
		Category:    a.Category,
		CreatedAt:   a.CreatedAt,
	}
}

type marketView struct {
	ID        uint64    `json:"id"`
	ArticleID uint64    `json:"articleId"`
	Resolved  bool      `json:"resolved"`
	Outcome   *bool     `json:"outcome"`
	CreatedAt time.Time `json:"createdAt"`
}

func toMarketView(m markets.Market) marketView {
	return marketView{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		Resolved:  m.Resolved,
		Outcome:   m.Outcome,
		CreatedAt: m.CreatedAt,
	}
}

type stakeView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uint64    `json:"userId"`
	MarketID    uint64    `json:"marketId"`
	Prediction  bool      `json:"prediction"`
	StakeAmount int64     `json:"stakeAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toStakeView(s stakes.Stake) stakeView {
	return stakeView{
		ID:          s.ID,
		UserID:      s.UserID,
		MarketID:    s.MarketID,
		Prediction:  s.Prediction,
		StakeAmount: s.StakeAmount,
		CreatedAt:   s.CreatedAt,
	}
}

type creditView struct {
	UserID uint64 `json:"userId"`
	Amount int64  `json:"amount"`
}

type settlementView struct {
	Market   marketView   `json:"market"`
	Pool     int64        `json:"pool"`
	Refunded bool         `json:"refunded"`
	Credits  []creditView `json:"credits"`
}

func toSettlementView(s settlement.Settlement) settlementView {
	credits := make([]creditView, 0, len(s.Credits))
	for _, c := range s.Credits {
		credits = append(credits, creditView{UserID: c.UserID, Amount: c.Amount})
	}

	return settlementView{
		Market:   toMarketView(s.Market),
		Pool:     s.Pool,
		Refunded: s.Refunded,
		Credits:  credits,
	}
}

type statsView struct {
	TotalParticipants int64 `json:"totalParticipants"`
	TotalStakeAmount  int64 `json:"totalStakeAmount"`
	TrueCount         int64 `json:"trueCount"`
	FalseCount        int64 `json:"falseCount"`
	TrueAmount        int64 `json:"trueAmount"`
	FalseAmount       int64 `json:"falseAmount"`
}

func toStatsView(s marketsvc.Statistics) statsView {
	return statsView{
		TotalParticipants: s.TotalParticipants,
		TotalStakeAmount:  s.TotalStakeAmount,
		TrueCount:         s.TrueCount,
		FalseCount:        s.FalseCount,
		TrueAmount:        s.TrueAmount,
		FalseAmount:       s.FalseAmount,
	}
}

func toStakeViews(list []stakes.Stake) []stakeView {
	views := make([]stakeView, 0, len(list))
	for _, s := range list {
		views = append(views, toStakeView(s))
	}

	return views
}
