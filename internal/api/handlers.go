package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/assistant"
	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/auth"
	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/content"
)

type ctxKey string

const identityKey ctxKey = "identity"

type APIHandler struct {
	repo      *content.Repository
	sessions  *assistant.SessionManager
	jwtSecret string
	log       zerolog.Logger
}

func NewAPIHandler(repo *content.Repository, sessions *assistant.SessionManager, jwtSecret string, log zerolog.Logger) *APIHandler {
	return &APIHandler{
		repo:      repo,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

func (h *APIHandler) JWTAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		identity, err := auth.ValidateJWT(h.jwtSecret, tokenString)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func identityFrom(r *http.Request) auth.Identity {
	identity, _ := r.Context().Value(identityKey).(auth.Identity)
	return identity
}

type LoginRequest struct {
	UserID string `json:"user_id"`
	Plan   string `json:"plan"`
}

// LoginHandler issues a token for a user and their plan tier. There is no
// account database; identity is declared by the site shell.
func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	plan := assistant.PlanFree
	if req.Plan != "" {
		parsed, err := assistant.ParsePlanTier(req.Plan)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		plan = parsed
	}

	token, err := auth.GenerateJWT(h.jwtSecret, req.UserID, plan)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", req.UserID).Msg("failed to generate token")
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// articleSummary is the search-result view of an article: localized title,
// no body.
type articleSummary struct {
	ID       string           `json:"id"`
	Category content.Category `json:"category"`
	Premium  bool             `json:"premium"`
	Author   string           `json:"author"`
	Date     string           `json:"date"`
	Title    string           `json:"title"`
	Tags     []string         `json:"tags"`
}

type articleView struct {
	articleSummary
	Body string `json:"body"`
}

func summarize(a content.Article, lang content.Language) articleSummary {
	return articleSummary{
		ID:       a.ID,
		Category: a.Category,
		Premium:  a.Premium,
		Author:   a.Author,
		Date:     a.Date,
		Title:    a.Title.ForLanguage(lang),
		Tags:     a.Tags,
	}
}

// SearchArticlesHandler answers GET /api/articles?q=&category=&lang=.
func (h *APIHandler) SearchArticlesHandler(w http.ResponseWriter, r *http.Request) {
	lang, err := queryLanguage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	category, err := content.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	matches := h.repo.Query(r.URL.Query().Get("q"), category, lang)
	summaries := make([]articleSummary, 0, len(matches))
	for _, a := range matches {
		summaries = append(summaries, summarize(a, lang))
	}
	writeJSON(w, http.StatusOK, summaries)
}

// GetArticleHandler answers GET /api/articles/{articleID}?lang=.
func (h *APIHandler) GetArticleHandler(w http.ResponseWriter, r *http.Request) {
	lang, err := queryLanguage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	article, err := h.repo.Lookup(chi.URLParam(r, "articleID"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		h.log.Error().Err(err).Msg("article lookup failed")
		writeError(w, http.StatusInternalServerError, "Failed to load article")
		return
	}

	writeJSON(w, http.StatusOK, articleView{
		articleSummary: summarize(article, lang),
		Body:           article.Body.ForLanguage(lang),
	})
}

// assistantState is the chat UI's view of a session.
type assistantState struct {
	Entries  []assistant.Entry  `json:"entries"`
	Pending  bool               `json:"pending"`
	Language content.Language   `json:"language"`
	Plan     assistant.PlanTier `json:"plan"`
}

func stateOf(s *assistant.Session) assistantState {
	return assistantState{
		Entries:  s.Entries(),
		Pending:  s.Pending(),
		Language: s.Language(),
		Plan:     s.PlanTier(),
	}
}

func (h *APIHandler) session(r *http.Request) *assistant.Session {
	identity := identityFrom(r)
	return h.sessions.ForUser(identity.UserID, identity.Plan)
}

// GetAssistantHandler answers GET /api/assistant.
func (h *APIHandler) GetAssistantHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateOf(h.session(r)))
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

// PostMessageHandler submits a new inquiry to the user's session.
func (h *APIHandler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	session := h.session(r)
	h.respondAfterExchange(w, session, session.Submit(r.Context(), req.Text))
}

// RetryHandler replays the most recent inquiry after a failure.
func (h *APIHandler) RetryHandler(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	err := session.RetryLast(r.Context())
	if errors.Is(err, assistant.ErrNoUserTurn) {
		writeError(w, http.StatusConflict, "Nothing to retry")
		return
	}
	h.respondAfterExchange(w, session, err)
}

func (h *APIHandler) respondAfterExchange(w http.ResponseWriter, session *assistant.Session, err error) {
	switch {
	case errors.Is(err, assistant.ErrQuotaExceeded):
		writeJSON(w, http.StatusTooManyRequests, map[string]string{
			"error":  "quota_exceeded",
			"notice": assistant.QuotaNotice(session.Language()),
		})
	case errors.Is(err, assistant.ErrBusy):
		writeError(w, http.StatusConflict, "A synthesis is already in progress")
	case err != nil:
		h.log.Error().Err(err).Msg("assistant exchange failed")
		writeError(w, http.StatusInternalServerError, "Failed to process message")
	default:
		writeJSON(w, http.StatusOK, stateOf(session))
	}
}

type SetLanguageRequest struct {
	Language string `json:"language"`
}

// SetLanguageHandler answers PUT /api/assistant/language.
func (h *APIHandler) SetLanguageHandler(w http.ResponseWriter, r *http.Request) {
	var req SetLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	lang, err := content.ParseLanguage(req.Language)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session := h.session(r)
	session.SetLanguage(lang)
	writeJSON(w, http.StatusOK, stateOf(session))
}

type SetPlanRequest struct {
	Plan string `json:"plan"`
}

// SetPlanHandler answers PUT /api/assistant/plan.
func (h *APIHandler) SetPlanHandler(w http.ResponseWriter, r *http.Request) {
	var req SetPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	plan, err := assistant.ParsePlanTier(req.Plan)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session := h.session(r)
	session.SetPlanTier(plan)
	writeJSON(w, http.StatusOK, stateOf(session))
}

// ResetAssistantHandler discards the session; the next request starts a
// fresh conversation with a new greeting.
func (h *APIHandler) ResetAssistantHandler(w http.ResponseWriter, r *http.Request) {
	h.sessions.Reset(identityFrom(r).UserID)
	w.WriteHeader(http.StatusNoContent)
}

var askTemplates = content.LocalizedText{
	EN: "Provide an exhaustive evidence-based clinical synthesis of %q.",
	FR: "Veuillez fournir une synthèse clinique exhaustive fondée sur des preuves de %q.",
	AR: "قدّم تركيبًا سريريًا شاملاً قائمًا على الأدلة حول %q.",
}

// AskArticleHandler seeds the user's session with an inquiry about a
// repository article.
func (h *APIHandler) AskArticleHandler(w http.ResponseWriter, r *http.Request) {
	article, err := h.repo.Lookup(chi.URLParam(r, "articleID"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Article not found")
			return
		}
		h.log.Error().Err(err).Msg("article lookup failed")
		writeError(w, http.StatusInternalServerError, "Failed to load article")
		return
	}

	session := h.session(r)
	lang := session.Language()
	inquiry := fmt.Sprintf(askTemplates.ForLanguage(lang), article.Title.ForLanguage(lang))
	h.respondAfterExchange(w, session, session.Submit(r.Context(), inquiry))
}

func queryLanguage(r *http.Request) (content.Language, error) {
	raw := r.URL.Query().Get("lang")
	if raw == "" {
		return content.LanguageEN, nil
	}
	return content.ParseLanguage(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
