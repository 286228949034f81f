package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"

	"matchpoint/internal/export"
	"matchpoint/internal/ledger"
	"matchpoint/internal/middleware/ratelimit"
	"matchpoint/internal/middleware/security"
	"matchpoint/internal/middleware/trace"
	appweb "matchpoint/web"
)

// Preferences are the in-session display settings. They shape rendering only
// and never touch the data model.
type Preferences struct {
	Theme      string // "light" or "dark"
	Language   string
	Currency   string // symbol prefixed to amounts
	PlayerName string
}

// Options configures optional server collaborators.
type Options struct {
	Prefs              Preferences
	SheetsSink         export.Sink // nil disables the Sheets export route
	RateLimitPerMinute int
}

type Server struct {
	http.Server
	templates *template.Template

	appender ledger.RecordAppender
	snapshot ledger.SnapshotReader
	sheets   export.Sink

	limiter *ratelimit.Limiter

	prefsMu sync.Mutex
	prefs   Preferences

	shutdownOnce sync.Once
}

// NewServer configures routes, middleware, and templates, returning a
// ready-to-run http.Server.
func NewServer(addr string, appender ledger.RecordAppender, snapshot ledger.SnapshotReader, opts Options) *Server {
	mux := http.NewServeMux()

	prefs := opts.Prefs
	if prefs.Theme == "" {
		prefs.Theme = "light"
	}
	if prefs.Currency == "" {
		prefs.Currency = "€"
	}
	if prefs.Language == "" {
		prefs.Language = "en"
	}

	s := &Server{
		appender: appender,
		snapshot: snapshot,
		sheets:   opts.SheetsSink,
		limiter:  ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: opts.RateLimitPerMinute}),
		prefs:    prefs,
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", security.StaticAssetMiddleware(3600)(static))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/tournaments", s.handleCreateTournament)
	mux.HandleFunc("/export.csv", s.handleExportCSV)
	mux.HandleFunc("/export/sheets", s.handleExportSheets)
	// UI partials
	mux.HandleFunc("/ui/dashboard", s.handleDashboard)
	mux.HandleFunc("/ui/prefs", s.handlePrefs)

	headers := security.NewHeadersMiddleware(security.DefaultHeadersConfig())
	tracer := trace.NewMiddleware(trace.ExtractClientIP)
	limited := s.limiter.Wrap(trace.ExtractClientIP)

	s.Server = http.Server{
		Addr:    addr,
		Handler: tracer.Wrap(headers.Wrap(limited(mux))),
	}

	return s
}

// Shutdown stops the rate limiter cleanup goroutine along with the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// preferences returns a copy of the current display preferences.
func (s *Server) preferences() Preferences {
	s.prefsMu.Lock()
	defer s.prefsMu.Unlock()
	return s.prefs
}

func (s *Server) setPreferences(p Preferences) {
	s.prefsMu.Lock()
	defer s.prefsMu.Unlock()
	s.prefs = p
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
