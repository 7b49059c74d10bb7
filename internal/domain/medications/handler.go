package medications

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"medications-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// Mensajes expuestos al cliente (contrato de la API, en portugués).
const (
	msgRequired       = "Nome e data de início são obrigatórios."
	msgInvalidJSON    = "JSON inválido."
	msgNotFound       = "Medicamento não encontrado."
	msgNotFoundUpdate = "Medicamento não encontrado para atualização."
	msgNotFoundDelete = "Medicamento não encontrado para exclusão."
	msgDeleted        = "Medicamento excluído com sucesso."
	msgListFailed     = "Erro ao buscar medicamentos no servidor."
	msgGetFailed      = "Erro ao buscar medicamento no servidor."
	msgCreateFailed   = "Erro ao adicionar medicamento no servidor."
	msgUpdateFailed   = "Erro ao atualizar medicamento no servidor."
	msgDeleteFailed   = "Erro ao excluir medicamento no servidor."
	msgInvalidDateFmt = "Data inválida em %s (use AAAA-MM-DD)."
)

var validate = validator.New()

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/medicamentos", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc, log))
		mr.Post("/", createMedicationHandler(svc, log))

		mr.Get("/{id}", getMedicationHandler(svc, log))
		mr.Put("/{id}", updateMedicationHandler(svc, log))
		mr.Delete("/{id}", deleteMedicationHandler(svc, log))
	})
}

// medicationRequest es el body de POST y PUT. Solo POST pasa por validate.
type medicationRequest struct {
	Name        string   `json:"name" validate:"required"`
	Descricao   *string  `json:"descricao"`
	Description *string  `json:"description"` // alias
	StartDate   string   `json:"startDate" validate:"required"`
	EndDate     *string  `json:"endDate"`
	Times       []string `json:"times"`
	IsRegular   bool     `json:"isRegular"`
	Quantity    float64  `json:"quantity"`
	Form        string   `json:"form"`
	Unit        string   `json:"unit"`
}

type medicationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Descricao *string   `json:"descricao"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date"`
	Times     []string  `json:"times"`
	IsRegular bool      `json:"is_regular"`
	Quantity  float64   `json:"quantity"`
	Form      string    `json:"form"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type deleteResponse struct {
	Message           string             `json:"message"`
	DeletedMedication medicationResponse `json:"deletedMedication"`
}

type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// listMedicationsHandler godoc
// @Summary  Lista medicamentos (created_at desc)
// @Tags     medicamentos
// @Produce  json
// @Success  200 {array}  medicationResponse
// @Failure  500 {object} messageResponse
// @Router   /medicamentos [get]
func listMedicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			fail(w, log, "list", "", msgListFailed, err)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicationHandler godoc
// @Summary  Obtiene un medicamento por id
// @Tags     medicamentos
// @Produce  json
// @Param    id  path  string  true  "UUID"
// @Success  200 {object} medicationResponse
// @Failure  404 {object} messageResponse
// @Failure  500 {object} messageResponse
// @Router   /medicamentos/{id} [get]
func getMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		m, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, messageResponse{Message: msgNotFound})
				return
			}
			fail(w, log, "get", id, msgGetFailed, err)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// createMedicationHandler godoc
// @Summary  Crea un medicamento
// @Tags     medicamentos
// @Accept   json
// @Produce  json
// @Param    body  body  medicationRequest  true  "name y startDate obligatorios"
// @Success  201 {object} medicationResponse
// @Failure  400 {object} messageResponse
// @Failure  500 {object} messageResponse
// @Router   /medicamentos [post]
func createMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req medicationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := validate.Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgRequired})
			return
		}

		f, err := req.toFields()
		if err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}

		m, err := svc.Create(r.Context(), f)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgRequired})
				return
			}
			fail(w, log, "create", "", msgCreateFailed, err)
			return
		}
		writeJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

// updateMedicationHandler godoc
// @Summary  Reemplaza los campos de un medicamento
// @Tags     medicamentos
// @Accept   json
// @Produce  json
// @Param    id    path  string             true  "UUID"
// @Param    body  body  medicationRequest  true  "campos"
// @Success  200 {object} medicationResponse
// @Failure  404 {object} messageResponse
// @Failure  500 {object} messageResponse
// @Router   /medicamentos/{id} [put]
func updateMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req medicationRequest
		if !decodeBody(w, r, &req) {
			return
		}

		// Sin validate.Struct: PUT acepta cuerpos incompletos.
		f, err := req.toFields()
		if err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}

		m, err := svc.Update(r.Context(), id, f)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, messageResponse{Message: msgNotFoundUpdate})
				return
			}
			fail(w, log, "update", id, msgUpdateFailed, err)
			return
		}
		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// deleteMedicationHandler godoc
// @Summary  Elimina un medicamento
// @Tags     medicamentos
// @Produce  json
// @Param    id  path  string  true  "UUID"
// @Success  200 {object} deleteResponse
// @Failure  404 {object} messageResponse
// @Failure  500 {object} messageResponse
// @Router   /medicamentos/{id} [delete]
func deleteMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		m, err := svc.Delete(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, messageResponse{Message: msgNotFoundDelete})
				return
			}
			fail(w, log, "delete", id, msgDeleteFailed, err)
			return
		}
		writeJSON(w, http.StatusOK, deleteResponse{
			Message:           msgDeleted,
			DeletedMedication: toMedicationResponse(m),
		})
	}
}

// fail loguea el error completo y responde 500 con el mensaje de la operación
// más el texto del error.
func fail(w http.ResponseWriter, log logger.Logger, op, id, msg string, err error) {
	fields := map[string]any{"op": op, "error": err.Error()}
	if id != "" {
		fields["id"] = id
	}
	log.Error("medications store error", fields)

	writeJSON(w, http.StatusInternalServerError, messageResponse{Message: msg, Error: err.Error()})
}

// decodeBody trata un body vacío como {}.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgInvalidJSON, Error: err.Error()})
		return false
	}
	return true
}

func (req medicationRequest) toFields() (Fields, error) {
	f := Fields{
		Name:        req.Name,
		Description: req.Descricao,
		Times:       req.Times,
		IsRegular:   req.IsRegular,
		Quantity:    req.Quantity,
		Form:        req.Form,
		Unit:        req.Unit,
	}
	if f.Description == nil {
		f.Description = req.Description
	}

	sd, err := parseDate(req.StartDate)
	if err != nil {
		return Fields{}, fmt.Errorf(msgInvalidDateFmt, "startDate")
	}
	f.StartDate = sd

	if req.EndDate != nil {
		ed, err := parseDate(*req.EndDate)
		if err != nil {
			return Fields{}, fmt.Errorf(msgInvalidDateFmt, "endDate")
		}
		f.EndDate = ed
	}

	return f, nil
}

// parseDate acepta YYYY-MM-DD o RFC3339 (se trunca a la fecha). "" => nil.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d, nil
}

func toMedicationResponse(m Medication) medicationResponse {
	out := medicationResponse{
		ID:        m.ID,
		Name:      m.Name,
		Descricao: m.Description,
		StartDate: m.StartDate.Format(dateLayout),
		Times:     m.Times,
		IsRegular: m.IsRegular,
		Quantity:  m.Quantity,
		Form:      m.Form,
		Unit:      m.Unit,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if out.Times == nil {
		out.Times = []string{}
	}
	if m.EndDate != nil {
		s := m.EndDate.Format(dateLayout)
		out.EndDate = &s
	}
	return out
}

// writeJSON está duplicado en middleware a propósito; no vale un paquete
// compartido para tres líneas.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
