package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/safespace-api/internal/application/auth"
	"github.com/safespace-api/internal/application/comment"
	"github.com/safespace-api/internal/application/post"
	"github.com/safespace-api/internal/config"
	"github.com/safespace-api/internal/transport/http/handler"
)

// NewRouter builds and returns the application router. Paths match the
// mobile client verbatim; everything is public, this app has no sessions.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authSvc := auth.NewService(auth.ServiceDeps{
		UserRepo: deps.UserRepo,
		Mailer:   deps.Mailer,
		OTPTTL:   cfg.OTPTTL,
	})
	postSvc := post.NewService(deps.PostRepo, deps.UserRepo)
	commentSvc := comment.NewService(deps.CommentRepo)

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(authSvc)
	postH := handler.NewPostHandler(postSvc)
	commentH := handler.NewCommentHandler(commentSvc)

	r.Get("/health-check", healthH.Ping)

	r.Post("/register", authH.Register)
	r.Post("/login", authH.Login)
	r.Post("/verify-otp", authH.VerifyOTP)
	r.Post("/forgot-password", authH.ForgotPassword)
	r.Post("/reset-password", authH.ResetPassword)

	r.Post("/create-post", postH.Create)
	r.Get("/get-posts", postH.List)
	r.Post("/create-comment", commentH.Create)
	r.Get("/get-comments/{postId}", commentH.ListByPost)

	return r
}
