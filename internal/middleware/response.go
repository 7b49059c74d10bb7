package middleware

import (
	"encoding/json"
	"net/http"
)

const msgRouteNotFound = "Desculpe, essa rota não existe no backend."

type message struct {
	Message string `json:"message"`
}

// NotFound es el fallback de rutas (y de métodos no soportados).
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, message{Message: msgRouteNotFound})
}

// writeJSON está duplicado en los handlers de dominio a propósito.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
