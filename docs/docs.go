// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go`.
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Create an account",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/registerRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/me": {
            "get": {"tags": ["auth"], "summary": "Current account", "security": [{"BearerAuth": []}], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}}}
        },
        "/categories": {
            "get": {"tags": ["categories"], "summary": "List categories in creation order", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["categories"], "summary": "Create a category", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/categories/{id}": {
            "put": {"tags": ["categories"], "summary": "Update a category", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["categories"], "summary": "Delete a category with its activities and logs", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/activities": {
            "get": {"tags": ["activities"], "summary": "List activities", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["activities"], "summary": "Create an activity", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/activities/{id}": {
            "put": {"tags": ["activities"], "summary": "Partially update an activity", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["activities"], "summary": "Delete an activity", "security": [{"BearerAuth": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "No Content"}}}
        },
        "/logs": {
            "get": {"tags": ["logs"], "summary": "Completed activities per date", "security": [{"BearerAuth": []}], "parameters": [{"in": "query", "name": "start_date", "type": "string"}, {"in": "query", "name": "end_date", "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["logs"], "summary": "Replace the completed set of one date", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/analytics/range": {"get": {"tags": ["analytics"], "summary": "Dates covered by a named range", "security": [{"BearerAuth": []}], "parameters": [{"in": "query", "name": "range", "type": "string"}, {"in": "query", "name": "today", "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/analytics/schedule": {"get": {"tags": ["analytics"], "summary": "Activities grouped into day periods", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/analytics/dashboard": {"get": {"tags": ["analytics"], "summary": "Weekly consistency, energy balance, streaks and today's plan", "security": [{"BearerAuth": []}], "parameters": [{"in": "query", "name": "today", "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/analytics/categories": {"get": {"tags": ["analytics"], "summary": "Completion rate per category with trend", "security": [{"BearerAuth": []}], "parameters": [{"in": "query", "name": "range", "type": "string"}, {"in": "query", "name": "today", "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/analytics/activities": {"get": {"tags": ["analytics"], "summary": "Per-activity rates and chart series", "security": [{"BearerAuth": []}], "parameters": [{"in": "query", "name": "range", "type": "string"}, {"in": "query", "name": "category_id", "type": "string"}, {"in": "query", "name": "today", "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/analytics/outcomes": {"get": {"tags": ["analytics"], "summary": "Projected life outcomes over 1, 5 and 10 years", "security": [{"BearerAuth": []}], "parameters": [{"in": "query", "name": "today", "type": "string"}], "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "registerRequest": {
            "type": "object",
            "required": ["email", "password", "name"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string", "minLength": 8}, "name": {"type": "string"}}
        },
        "loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "LifeSync Engine API",
	Description:      "Activity tracking and life-outcome analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
