package api

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/yritu05/Scholar-Connect/internal/api/handler"
	"github.com/yritu05/Scholar-Connect/internal/api/middleware"
	"github.com/yritu05/Scholar-Connect/internal/api/view"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
	"github.com/yritu05/Scholar-Connect/internal/infrastructure/http/handlers"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Auth          ports.AuthService
	Profiles      ports.ProfileService
	Papers        ports.PaperService
	Chats         ports.ChatService
	Notifications ports.NotificationService

	Sessions *middleware.Sessions
	// FlashSecret signs the flash cookie.
	FlashSecret  []byte
	SecureCookie bool

	// Readiness lists the dependencies checked by /health/ready.
	Readiness map[string]handlers.Pinger
	Log       zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}
	metricsCfg := echoprometheus.MiddlewareConfig{
		Subsystem:  "scholarconnect",
		Registerer: d.Registerer,
	}
	requestMetrics, err := metricsCfg.ToMiddleware()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	flashes := sessions.NewCookieStore(d.FlashSecret)
	flashes.Options.HttpOnly = true
	flashes.Options.Secure = d.SecureCookie
	flashes.Options.MaxAge = 0

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(requestMetrics)
	e.Use(session.Middleware(flashes))
	e.Use(d.Sessions.Identify())

	auth := middleware.RequireAuth()

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Sessions, d.Log)
	profileHandler := handler.NewProfileHandler(d.Profiles)
	paperHandler := handler.NewPaperHandler(d.Papers, d.Log)
	chatHandler := handler.NewChatHandler(d.Chats)
	pageHandler := handler.NewPageHandler(d.Notifications)

	// --- Public pages ---
	e.GET("/", pageHandler.Index)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/explore", paperHandler.Explore)

	// --- Authenticated pages ---
	e.GET("/logout", authHandler.Logout, auth)
	e.GET("/dashboard", paperHandler.Dashboard, auth)
	e.GET("/profile", profileHandler.Show, auth)
	e.GET("/edit_profile", profileHandler.EditForm, auth)
	e.POST("/edit_profile", profileHandler.Update, auth)
	e.GET("/upload", paperHandler.UploadForm, auth)
	e.POST("/upload", paperHandler.Upload, auth)
	e.POST("/delete_paper/:id", paperHandler.Delete, auth)
	e.POST("/collaborate/:id", paperHandler.Collaborate, auth)
	e.GET("/modify_submission/:id", paperHandler.ModifyForm, auth)
	e.POST("/modify_submission/:id", paperHandler.Modify, auth)
	e.GET("/chats", chatHandler.Partners, auth)
	e.GET("/chat/:recipientId", chatHandler.Thread, auth)
	e.POST("/chat/:recipientId", chatHandler.Send, auth)
	e.GET("/notifications_page", pageHandler.Notifications, auth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))

	return e, nil
}
