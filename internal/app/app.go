package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/prasanthprabakaran/css-art-museum/internal/config"
	"github.com/prasanthprabakaran/css-art-museum/internal/likes"
	"github.com/prasanthprabakaran/css-art-museum/internal/media"
)

type App struct {
	cfg   config.Config
	store likes.Store
	media *media.Resolver
}

func New(cfg config.Config) (*App, error) {
	store, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	resolver, err := media.NewResolver(
		cfg.R2Endpoint,
		cfg.R2Bucket,
		cfg.R2AccessKeyID,
		cfg.R2AccessSecret,
		cfg.MediaBaseURL,
	)
	if err != nil {
		log.Printf("Warning: media resolver initialization failed: %v", err)
		resolver = nil
	}

	return &App{
		cfg:   cfg,
		store: store,
		media: resolver,
	}, nil
}

// NewWithStore builds an app over an explicit backend, used by tests.
func NewWithStore(cfg config.Config, store likes.Store, resolver *media.Resolver) *App {
	return &App{cfg: cfg, store: store, media: resolver}
}

// buildStore picks postgres when a DATABASE_URL is configured, else the
// JSON file store.
func buildStore(cfg config.Config) (likes.Store, error) {
	if cfg.DatabaseURL != "" {
		store, err := likes.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres store: %w", err)
		}
		if err := store.EnsureSchema(); err != nil {
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		log.Printf("Using postgres like store (%d artworks)", store.Count())
		return store, nil
	}

	store := likes.NewFileStore(cfg.LikesFilePath)
	log.Printf("Using file like store at %s (%d artworks)", cfg.LikesFilePath, store.Count())
	return store, nil
}

func (a *App) Store() likes.Store {
	return a.store
}

func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/artworks", func(api chi.Router) {
		api.Get("/all", a.handleListArtworks)
		api.Get("/one/{id}", a.handleGetArtwork)
		api.Post("/add/{id}", a.handleRegisterArtwork)
		api.Put("/like/{id}", a.handleLikeArtwork)
		api.Put("/unlike/{id}", a.handleUnlikeArtwork)
		api.Get("/media/{id}", a.handleMediaURL)
	})

	return r
}

func (a *App) allowedOrigins() []string {
	if len(a.cfg.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return a.cfg.AllowedOrigins
}

func (a *App) handleListArtworks(w http.ResponseWriter, r *http.Request) {
	records, err := a.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to fetch artworks"))
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func (a *App) handleGetArtwork(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := a.store.Get(id)
	if errors.Is(err, likes.ErrNotFound) {
		// Unknown ids answer 200 with a null body on this endpoint.
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to fetch artwork"))
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (a *App) handleRegisterArtwork(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, errors.New("artwork id required"))
		return
	}

	record, err := a.store.Create(id)
	if errors.Is(err, likes.ErrExists) {
		writeError(w, http.StatusConflict, errors.New("artwork already exists"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to add new artwork"))
		return
	}

	log.Printf("Registered artwork %s", id)
	writeJSON(w, http.StatusCreated, record)
}

func (a *App) handleLikeArtwork(w http.ResponseWriter, r *http.Request) {
	a.handleCountUpdate(w, r, a.store.Increment)
}

func (a *App) handleUnlikeArtwork(w http.ResponseWriter, r *http.Request) {
	a.handleCountUpdate(w, r, a.store.Decrement)
}

func (a *App) handleCountUpdate(w http.ResponseWriter, r *http.Request, update func(string) (*likes.Record, error)) {
	id := chi.URLParam(r, "id")

	record, err := update(id)
	if errors.Is(err, likes.ErrNotFound) {
		writeError(w, http.StatusNotFound, errors.New("artwork not found"))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to update likes"))
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func (a *App) handleMediaURL(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if a.media == nil {
		writeError(w, http.StatusNotFound, errors.New("media not configured"))
		return
	}

	// With a bucket configured, answer 404 for objects the bucket does
	// not hold rather than handing out a signed URL to nothing.
	if a.media.IsPresigning() {
		exists, err := a.media.ObjectExists(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to check media for %s", id))
			return
		}
		if !exists {
			writeError(w, http.StatusNotFound, fmt.Errorf("media for %s not found", id))
			return
		}
	}

	url, err := a.media.ResolveURL(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("media for %s not found", id))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "url": url})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{
		"error":  err.Error(),
		"status": status,
	})
}
