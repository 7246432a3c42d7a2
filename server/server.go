// Package server exposes the cleaning pipeline over HTTP.
package server

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oarkflow/xid"
	"go.uber.org/zap"

	"transclean/config"
	"transclean/pipeline"
)

// Server wraps the fiber app serving the /process endpoint.
type Server struct {
	app  *fiber.App
	pipe *pipeline.Pipeline
	log  *zap.Logger
}

// New builds the app with the house middleware stack. The JWT guard and
// rate limiter are attached only when configured.
func New(cfg *config.Config, pipe *pipeline.Pipeline, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:     "transclean",
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return xid.New().String()
		},
	}))
	app.Use(logger.New())
	app.Use(cors.New())
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
		}))
	}

	s := &Server{app: app, pipe: pipe, log: log}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(200).JSON(fiber.Map{"status": "ok"})
	})

	if cfg.JWTSecret != "" {
		app.Use("/process", withJWT([]byte(cfg.JWTSecret)))
	}
	app.Post("/process", s.handleProcess)

	return s
}

func withJWT(secret []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: secret},
		SuccessHandler: func(c *fiber.Ctx) error {
			tok := c.Locals("user").(*jwt.Token)
			if sub, _ := tok.Claims.GetSubject(); sub != "" {
				c.Locals("ctx_userid", sub)
			}
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				c.Locals("ctx_token", auth[7:])
			}
			return c.Next()
		},
	})
}

type processRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Config   struct {
		Action string `json:"action"`
	} `json:"config"`
}

type processResponse struct {
	ProcessedText string   `json:"processed_text"`
	Fillers       []string `json:"fillers_detected"`
	OriginalText  string   `json:"original_text"`
}

func (s *Server) handleProcess(c *fiber.Ctx) error {
	var req processRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	if req.Language == "" {
		req.Language = "en-IN"
	}
	action := pipeline.Action(req.Config.Action)
	if action == "" {
		action = pipeline.ActionRemove
	}
	if !action.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown action"})
	}

	if req.Text == "" {
		return c.JSON(fiber.Map{"processed_text": "", "fillers_detected": []string{}})
	}

	res, err := s.pipe.Process(pipeline.Request{
		Text:     req.Text,
		Language: req.Language,
		Action:   action,
	})
	if err != nil {
		s.log.Error("processing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	fillers := res.Fillers
	if fillers == nil {
		fillers = []string{}
	}
	return c.JSON(processResponse{
		ProcessedText: res.ProcessedText,
		Fillers:       fillers,
		OriginalText:  res.OriginalText,
	})
}

// Listen serves until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests with a timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
