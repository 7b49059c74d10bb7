// Package docs registra la definición Swagger de la API para http-swagger.
// Mantener alineado con las anotaciones de internal/domain/medications/handler.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Estado del backend (no consulta la base)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/healthResponse"}}
                }
            }
        },
        "/medicamentos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medicamentos"],
                "summary": "Lista medicamentos (created_at desc)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/medicationResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/messageResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medicamentos"],
                "summary": "Crea un medicamento",
                "parameters": [
                    {"description": "name y startDate obligatorios", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/medicationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/messageResponse"}}
                }
            }
        },
        "/medicamentos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medicamentos"],
                "summary": "Obtiene un medicamento por id",
                "parameters": [
                    {"type": "string", "description": "UUID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medicationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/messageResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medicamentos"],
                "summary": "Reemplaza los campos de un medicamento",
                "parameters": [
                    {"type": "string", "description": "UUID", "name": "id", "in": "path", "required": true},
                    {"description": "campos", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/medicationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/medicationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/messageResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["medicamentos"],
                "summary": "Elimina un medicamento",
                "parameters": [
                    {"type": "string", "description": "UUID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/deleteResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/messageResponse"}}
                }
            }
        }
    },
    "definitions": {
        "medicationRequest": {
            "type": "object",
            "required": ["name", "startDate"],
            "properties": {
                "name": {"type": "string"},
                "descricao": {"type": "string"},
                "description": {"type": "string"},
                "startDate": {"type": "string", "example": "2024-01-01"},
                "endDate": {"type": "string", "example": "2024-01-31"},
                "times": {"type": "array", "items": {"type": "string"}},
                "isRegular": {"type": "boolean"},
                "quantity": {"type": "number"},
                "form": {"type": "string", "example": "comprimido"},
                "unit": {"type": "string", "example": "unidade"}
            }
        },
        "medicationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "descricao": {"type": "string", "x-nullable": true},
                "start_date": {"type": "string"},
                "end_date": {"type": "string", "x-nullable": true},
                "times": {"type": "array", "items": {"type": "string"}},
                "is_regular": {"type": "boolean"},
                "quantity": {"type": "number"},
                "form": {"type": "string"},
                "unit": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "deleteResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "deletedMedication": {"$ref": "#/definitions/medicationResponse"}
            }
        },
        "messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "healthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "UP"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo tiene la metadata exportada; el router puede ajustar Host.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Medicamentos API",
	Description:      "CRUD de medicamentos sobre Postgres.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
