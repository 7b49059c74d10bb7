// healthcheck consulta GET /health de la API y sale con 1 si no responde UP.
// Pensado para HEALTHCHECK de Docker (la imagen no trae curl).
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"medications-api/internal/platform/httpclient"
	"medications-api/internal/platform/logger"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func main() {
	base := os.Getenv("HEALTHCHECK_URL")
	if base == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}
		base = "http://127.0.0.1:" + port
	}

	if err := check(context.Background(), base); err != nil {
		logger.NewFromEnv().Error("unhealthy", map[string]any{"url": base, "error": err.Error()})
		os.Exit(1)
	}
}

func check(ctx context.Context, baseURL string) error {
	c, err := httpclient.NewWithBaseURL(baseURL, 3*time.Second)
	if err != nil {
		return err
	}

	var resp healthResponse
	if err := c.DoJSON(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "UP" {
		return fmt.Errorf("status %q", resp.Status)
	}
	return nil
}
