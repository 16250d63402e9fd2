// Package main is the entry point for the meshview model viewer.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/seiya-kumada/meshview/internal/config"
	"github.com/seiya-kumada/meshview/internal/logger"
	"github.com/seiya-kumada/meshview/internal/viewer"
	"github.com/seiya-kumada/meshview/pkg/geometry"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	modelPath := config.ModelPath()
	if modelPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <model-file>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	if err := checkModelFile(modelPath); err != nil {
		logger.Error("model file rejected", zap.String("path", modelPath), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if ext := strings.ToLower(filepath.Ext(modelPath)); ext != ".stl" && ext != ".obj" && ext != ".gltf" && ext != ".glb" {
		logger.Warn("unrecognized model extension, attempting STL parse",
			zap.String("path", modelPath),
			zap.String("ext", ext),
		)
	}

	logger.Info("loading model", zap.String("path", modelPath))
	mesh, err := geometry.Load(modelPath)
	if err != nil {
		logger.Error("failed to load model", zap.String("path", modelPath), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("model loaded",
		zap.Int("triangles", len(mesh.Triangles)),
		zap.Float32("scale", mesh.Scale),
	)

	title := fmt.Sprintf("meshview - %s", filepath.Base(modelPath))
	v, err := viewer.New(cfg, mesh, title)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer v.Close()

	v.Run()

	logger.Info("viewer closed normally")
}

// checkModelFile rejects paths that cannot possibly load: missing
// files, directories, and empty files.
func checkModelFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access model file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a model file", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%s is empty", path)
	}
	return nil
}
