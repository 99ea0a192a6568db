package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"puregrind.shop/storefront/internal/catalog"
	"puregrind.shop/storefront/internal/i18n"
	mw "puregrind.shop/storefront/internal/middleware"
)

var (
	templatesDir   = "templates"
	publicDir      = "public"
	contentDir     = "content"
	localesDir     = "locales"
	defaultProduct = "mushroom-leather"
	// devMode is set in main() based on env: PUREGRIND_WEB_DEV (preferred) or DEV (fallback)
	devMode        bool
	tmplCache      *templateSet
	i18nBundle     *i18n.Bundle
	productCatalog *catalog.Catalog
)

func main() {
	var (
		addr       string
		tmplPath   string
		pubPath    string
		cntPath    string
		locPath    string
		catalogTTL time.Duration
	)
	// Port resolution: prefer PUREGRIND_WEB_PORT, then Cloud Run's PORT, else 8080
	port := os.Getenv("PUREGRIND_WEB_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&cntPath, "content", contentDir, "product content directory")
	flag.StringVar(&locPath, "locales", localesDir, "locale bundles directory")
	flag.DurationVar(&catalogTTL, "catalog-ttl", 5*time.Minute, "product cache lifetime")
	flag.Parse()

	templatesDir, publicDir, contentDir, localesDir = tmplPath, pubPath, cntPath, locPath
	if p := os.Getenv("PUREGRIND_WEB_DEFAULT_PRODUCT"); p != "" {
		defaultProduct = p
	}
	devMode = os.Getenv("PUREGRIND_WEB_DEV") != "" || os.Getenv("DEV") != ""

	logger, err := mw.NewLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if mw.EphemeralSessionKeys() {
		logger.Warn("session: using ephemeral cookie keys; set PUREGRIND_WEB_SESSION_HASH_KEY for production")
	}

	i18nBundle, err = i18n.Load(localesDir, "en", []string{"en", "hi"})
	if err != nil {
		logger.Fatal("load locales", zap.Error(err))
	}
	productCatalog = catalog.New(contentDir, catalogTTL)
	if _, err := productCatalog.Get(defaultProduct, i18nBundle.Fallback()); err != nil {
		logger.Fatal("load default product", zap.String("slug", defaultProduct), zap.Error(err))
	}

	if !devMode {
		// Parse templates once in production
		ts, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = ts
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("web listening", zap.String("addr", addr), zap.Bool("dev_mode", devMode))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("listen", zap.Error(err))
	}
}

// newRouter wires middleware and routes. Package-level configuration must be set first.
func newRouter(logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.InjectLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(publicDir+"/assets"))
	r.Handle("/assets/*", assets)

	r.Group(func(r chi.Router) {
		r.Use(mw.HTMX)
		r.Use(mw.Session)
		r.Use(mw.Locale(i18nBundle))
		r.Use(mw.Auth)
		r.Use(mw.Logger)
		r.Use(mw.CSRF)
		r.Use(mw.VaryLocale)
		r.Use(mw.ClientHints)

		r.Get("/", HomeHandler)
		r.Get("/products", ProductsHandler)
		r.Post("/theme/toggle", ThemeToggleHandler)
		r.Post("/nav/toggle", NavToggleHandler)
		r.Post("/nav/close", NavCloseHandler)

		r.Route("/products/{slug}", func(r chi.Router) {
			r.Get("/", ProductHandler)
			r.Get("/gallery", ProductGalleryFrag)
			r.Post("/quantity", ProductQuantityHandler)
			r.Post("/badge/pose", BadgePoseHandler)
			r.Post("/badge/leave", BadgeLeaveHandler)
			r.Post("/badge/overlay/open", BadgeOverlayOpenHandler)
			r.Post("/badge/overlay/close", BadgeOverlayCloseHandler)
		})

		r.NotFound(NotFoundHandler)
	})
	return r
}
