// Package server serves the risk form over HTTP for a local browser.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/denguerisk/internal/config"
	"github.com/abhisek/denguerisk/internal/features"
	"github.com/abhisek/denguerisk/internal/form"
	"github.com/abhisek/denguerisk/internal/model"
	"github.com/abhisek/denguerisk/internal/risk"
)

const maxBodyBytes = 1 << 20

// Server holds what the handlers share. The model is loaded once by the
// caller and never reloaded.
type Server struct {
	reducer   *form.Reducer
	predictor model.Predictor
	threshold risk.Threshold
}

// New creates a Server scoring with p. threshold is the form default.
func New(p model.Predictor, threshold risk.Threshold) *Server {
	return &Server{
		reducer:   form.NewReducer(p),
		predictor: p,
		threshold: threshold,
	}
}

// Handler builds the gin engine with all routes and middleware.
func (s *Server) Handler() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.Recovery(),
		limitBodySize(maxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		}),
	)
	router.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")))

	router.GET("/", s.handleIndex)
	router.POST("/predict", s.handlePredict)
	router.POST("/api/classify", s.handleClassify)
	router.GET("/api/columns", s.handleColumns)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/readyz", s.handleReady)

	return router
}

func (s *Server) handleReady(c *gin.Context) {
	if err := model.CheckContract(s.predictor, features.Columns()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"model":  s.predictor.ModelID(),
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"model":    s.predictor.ModelID(),
		"features": s.predictor.NumFeature(),
	})
}

func (s *Server) handleColumns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"columns": features.Columns(),
		"width":   features.Width,
		"model":   s.predictor.ModelID(),
	})
}

// Serve listens on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, cfg config.Config, s *Server) error {
	gin.SetMode(cfg.GinMode)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	log.Printf("form listening on http://%s (model %s)", cfg.Addr, s.predictor.ModelID())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func limitBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
