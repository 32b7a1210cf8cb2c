package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	log "github.com/Ptt-Alertor/logrus"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/gops/agent"
	"github.com/julienschmidt/httprouter"
	"github.com/robfig/cron/v3"

	"github.com/Haven-Estates/haven-api/auth"
	"github.com/Haven-Estates/haven-api/config"
	"github.com/Haven-Estates/haven-api/connections"
	"github.com/Haven-Estates/haven-api/controllers/api"
	"github.com/Haven-Estates/haven-api/jobs"
	"github.com/Haven-Estates/haven-api/media"
	"github.com/Haven-Estates/haven-api/middleware"
	"github.com/Haven-Estates/haven-api/models/blog"
	"github.com/Haven-Estates/haven-api/models/contact"
	"github.com/Haven-Estates/haven-api/models/page"
	"github.com/Haven-Estates/haven-api/models/property"
)

type myRouter struct {
	httprouter.Router
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (mr myRouter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
	mr.Router.ServeHTTP(rw, r)
	log.WithFields(log.Fields{
		"method": r.Method,
		"IP":     r.RemoteAddr,
		"URI":    r.URL.Path,
		"status": rw.statusCode,
	}).Info("visit")
}

func newRouter() *myRouter {
	r := &myRouter{
		Router: *httprouter.New(),
	}
	return r
}

func newMediaStore(cfg *config.Config) (media.Store, error) {
	if cfg.MediaDriver == "s3" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
		if err != nil {
			return nil, err
		}
		return media.NewS3Store(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Prefix), nil
	}
	return media.NewDiskStore(cfg.MediaDir, cfg.PublicBaseURL)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Missing JWT secret: refuse to serve traffic at all.
		log.Fatal(err)
	}

	connections.SetPostgresURL(cfg.PostgresURL())
	connections.SetRedisAddr(cfg.RedisAddr)

	authService := auth.NewService(cfg.JWTSecret, cfg.TokenLifetime, cfg.CookieSecure)

	mediaStore, err := newMediaStore(cfg)
	if err != nil {
		log.Fatal(err)
	}
	api.Setup(authService, mediaStore)

	log.Info("Start Jobs")
	startJobs(cfg)

	router := newRouter()

	// health check
	router.GET("/hello", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Hello from Haven Estates!"}`))
	})

	// auth
	// ⚠️ register is a bootstrap route; disable it once the admin exists
	router.POST("/api/auth/register", api.Register)
	router.POST("/api/auth/login", api.Login)
	router.POST("/api/auth/logout", api.Logout)
	router.GET("/api/auth/me", authService.Middleware(api.Me))

	// properties (public reads)
	router.GET("/api/properties", api.ListProperties)
	router.GET("/api/properties/:id", api.GetProperty)

	// blogs (public reads)
	router.GET("/api/blogs", api.ListBlogs)
	router.GET("/api/blogs/:id", api.GetBlog)

	// pages (public reads)
	router.GET("/api/pages", api.ListPages)
	router.GET("/api/pages/:name", api.GetPage)

	// contact (public read)
	router.GET("/api/contact", api.GetContact)

	// admin mutations
	admin := auth.NewAdminRouter(&router.Router, authService)
	admin.POST("/api/properties", api.CreateProperty)
	admin.PUT("/api/properties/:id", api.UpdateProperty)
	admin.DELETE("/api/properties/:id", api.DeleteProperty)
	admin.DELETE("/api/properties/:id/images/:index", api.DeletePropertyImage)
	admin.DELETE("/api/properties/:id/video", api.DeletePropertyVideo)
	admin.POST("/api/blogs", api.CreateBlog)
	admin.PUT("/api/blogs/:id", api.UpdateBlog)
	admin.DELETE("/api/blogs/:id", api.DeleteBlog)
	admin.POST("/api/pages", api.CreatePage)
	admin.PUT("/api/pages/:name", api.UpdatePage)
	admin.DELETE("/api/pages/:name", api.DeletePage)
	admin.POST("/api/contact", api.SetContact)
	admin.DELETE("/api/contact", api.DeleteContact)

	// static media and sitemap (disk driver)
	if cfg.MediaDriver == "disk" {
		router.ServeFiles("/uploads/*filepath", http.Dir(cfg.MediaDir))
	}
	sitemapPath := filepath.Join(cfg.MediaDir, "sitemap.xml")
	router.GET("/sitemap.xml", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		http.ServeFile(w, r, sitemapPath)
	})

	// gops agent
	if err := agent.Listen(agent.Options{Addr: ":6060", ShutdownCleanup: true}); err != nil {
		log.Fatal(err)
	}

	// Web Server
	log.Info("Web Server Start on Port " + cfg.Port)
	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: middleware.CORS(middleware.SecureHeaders(router)),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("Shutdown Web Server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Web Server Shutdown Failed")
	}
	log.Info("Web Server Was Been Shutdown")
}

func startJobs(cfg *config.Config) {
	propertyRepo := &property.Postgres{}
	contactRepo := &contact.Postgres{}
	pageRepo := &page.Postgres{}
	blogRepo := &blog.Postgres{}

	warmer := jobs.NewCacheWarmer(propertyRepo, contactRepo)
	sitemap := jobs.NewSitemapGenerator(cfg.PublicBaseURL, cfg.MediaDir, pageRepo, propertyRepo, blogRepo)

	go warmer.Run()
	go sitemap.Run()

	c := cron.New()
	c.AddJob("@hourly", sitemap)
	c.AddJob("@every 10m", warmer)
	c.Start()
}
