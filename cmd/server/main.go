package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"transclean/config"
	"transclean/pipeline"
	"transclean/pos"
	"transclean/script"
	"transclean/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	corrector, tagger := provision(cfg, logger)
	pipe := pipeline.New(corrector, tagger, logger)
	srv := server.New(cfg, pipe, logger)

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Addr()))
		if err := srv.Listen(cfg.Addr()); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := srv.Shutdown(10 * time.Second); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// provision performs the one-time resource load. Failures are logged and
// non-fatal: a missing lexicon leaves the tagger on its built-in data,
// and a tagger that cannot run at all just routes every request through
// the fallback classifier.
func provision(cfg *config.Config, logger *zap.Logger) (*script.Corrector, pipeline.Tagger) {
	corrector := script.NewCorrector()
	tagger := pos.New()

	res, err := config.LoadResources(cfg.DataDir)
	if err != nil {
		logger.Warn("no resource overrides loaded", zap.String("data_dir", cfg.DataDir), zap.Error(err))
		return corrector, tagger
	}

	if res.LexiconFile != "" {
		path := filepath.Join(cfg.DataDir, res.LexiconFile)
		lex, err := config.LoadJSON[map[string]string](path)
		if err != nil {
			logger.Error("lexicon load failed", zap.String("path", path), zap.Error(err))
		} else {
			tagger.Merge(*lex)
			logger.Info("lexicon override loaded", zap.Int("entries", len(*lex)))
		}
	}

	if res.ScriptMapFile != "" {
		path := filepath.Join(cfg.DataDir, res.ScriptMapFile)
		words, err := config.LoadJSON[map[string]string](path)
		if err != nil {
			logger.Error("script map load failed", zap.String("path", path), zap.Error(err))
		} else {
			corrector = script.NewCorrectorWith(*words)
			logger.Info("script map override loaded", zap.Int("entries", len(*words)))
		}
	}

	return corrector, tagger
}
