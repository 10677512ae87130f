package app

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/quoinhq/quoin/internal/system"
)

// The OpenAPI document is assembled as data and marshalled once. There is no
// generator: the API surface is one collection, so the document is declared
// alongside the routes it describes.

var (
	openapiOnce sync.Once
	openapiBody []byte
)

// OpenAPIHandler serves the OpenAPI document for the versioned API.
func OpenAPIHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		openapiOnce.Do(func() {
			openapiBody, _ = json.Marshal(openapiDocument())
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(openapiBody)
	}
}

func openapiDocument() map[string]any {
	userSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":         map[string]any{"type": "string", "format": "uuid"},
			"email":      map[string]any{"type": "string", "format": "email", "maxLength": 255},
			"full_name":  map[string]any{"type": []string{"string", "null"}, "maxLength": 255},
			"is_active":  map[string]any{"type": "boolean", "default": true},
			"created_at": map[string]any{"type": "string", "format": "date-time"},
			"updated_at": map[string]any{"type": "string", "format": "date-time"},
		},
		"required": []string{"id", "email", "is_active", "created_at", "updated_at"},
	}
	createSchema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"email":     map[string]any{"type": "string", "format": "email", "maxLength": 255},
			"full_name": map[string]any{"type": []string{"string", "null"}, "maxLength": 255},
			"is_active": map[string]any{"type": "boolean", "default": true},
		},
		"required": []string{"email"},
	}
	updateSchema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"email":     map[string]any{"type": []string{"string", "null"}, "format": "email", "maxLength": 255},
			"full_name": map[string]any{"type": []string{"string", "null"}, "maxLength": 255},
			"is_active": map[string]any{"type": []string{"boolean", "null"}},
		},
	}
	errorSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"detail": map[string]any{"type": "string"},
		},
	}

	jsonBody := func(schema any) map[string]any {
		return map[string]any{"content": map[string]any{"application/json": map[string]any{"schema": schema}}}
	}
	listResponse := func(description string, schema any) map[string]any {
		resp := jsonBody(schema)
		resp["description"] = description
		return resp
	}
	ref := func(name string) map[string]any {
		return map[string]any{"$ref": "#/components/schemas/" + name}
	}

	errorResponse := func(description string) map[string]any {
		resp := jsonBody(ref("Error"))
		resp["description"] = description
		return resp
	}
	userResponse := func(description string) map[string]any {
		resp := jsonBody(ref("User"))
		resp["description"] = description
		return resp
	}

	userIDParam := map[string]any{
		"name": "user_id", "in": "path", "required": true,
		"schema": map[string]any{"type": "string", "format": "uuid"},
	}

	return map[string]any{
		"openapi": "3.1.0",
		"info": map[string]any{
			"title":       system.AppName,
			"version":     system.Version,
			"description": system.Description,
		},
		"paths": map[string]any{
			"/api/v1/users": map[string]any{
				"post": map[string]any{
					"tags":        []string{"users"},
					"operationId": "create_user",
					"requestBody": jsonBody(ref("UserCreate")),
					"responses": map[string]any{
						"201": userResponse("Created"),
						"409": errorResponse("Email already registered"),
						"422": errorResponse("Validation error"),
					},
				},
				"get": map[string]any{
					"tags":        []string{"users"},
					"operationId": "list_users",
					"parameters": []any{
						map[string]any{"name": "skip", "in": "query", "schema": map[string]any{"type": "integer", "default": 0}},
						map[string]any{"name": "limit", "in": "query", "schema": map[string]any{"type": "integer", "default": 100}},
					},
					"responses": map[string]any{
						"200": listResponse("OK", map[string]any{"type": "array", "items": ref("User")}),
					},
				},
			},
			"/api/v1/users/{user_id}": map[string]any{
				"get": map[string]any{
					"tags":        []string{"users"},
					"operationId": "get_user",
					"parameters":  []any{userIDParam},
					"responses": map[string]any{
						"200": userResponse("OK"),
						"404": errorResponse("User not found"),
					},
				},
				"patch": map[string]any{
					"tags":        []string{"users"},
					"operationId": "update_user",
					"parameters":  []any{userIDParam},
					"requestBody": jsonBody(ref("UserUpdate")),
					"responses": map[string]any{
						"200": userResponse("OK"),
						"404": errorResponse("User not found"),
						"422": errorResponse("Validation error"),
					},
				},
				"delete": map[string]any{
					"tags":        []string{"users"},
					"operationId": "delete_user",
					"parameters":  []any{userIDParam},
					"responses": map[string]any{
						"204": map[string]any{"description": "Deleted"},
						"404": errorResponse("User not found"),
					},
				},
			},
		},
		"components": map[string]any{
			"schemas": map[string]any{
				"User":       userSchema,
				"UserCreate": createSchema,
				"UserUpdate": updateSchema,
				"Error":      errorSchema,
			},
		},
	}
}
