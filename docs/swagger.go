// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/session": {
            "post": {
                "tags": ["Session"],
                "summary": "Create a session token",
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SessionResponse"}}}
            }
        },
        "/state": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "Get the full board state",
                "responses": {"200": {"description": "OK"}, "500": {"description": "Persistence failure"}}
            }
        },
        "/boards/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "Get a board with resolved column tasks",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.BoardResponse"}}, "404": {"description": "Board not found"}}
            }
        },
        "/boards/{id}/check": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Boards"],
                "summary": "Report ownership invariant violations",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CheckResponse"}}, "404": {"description": "Board not found"}}
            }
        },
        "/boards/{id}/tasks": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Add a task at the end of a column",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "task", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateTaskRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "200": {"description": "Column missing, nothing created", "schema": {"$ref": "#/definitions/handler.OutcomeResponse"}}, "400": {"description": "Invalid request"}, "404": {"description": "Board not found"}}
            }
        },
        "/boards/{id}/tasks/{task_id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Update task fields",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "task_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.OutcomeResponse"}}, "400": {"description": "Invalid request"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "task_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.OutcomeResponse"}}}
            }
        },
        "/boards/{id}/tasks/{task_id}/toggle": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Toggle the completed flag",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "task_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.OutcomeResponse"}}}
            }
        },
        "/boards/{id}/tasks/{task_id}/move": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Move a task to an index of a column",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "task_id", "in": "path", "required": true},
                    {"name": "move", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.MoveTaskRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.OutcomeResponse"}}, "400": {"description": "Invalid request"}}
            }
        },
        "/gesture/start": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Gesture"],
                "summary": "Start dragging a task",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Task not found"}}
            }
        },
        "/gesture/hover": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Gesture"],
                "summary": "Preview the drop under the pointer",
                "responses": {"200": {"description": "OK"}, "409": {"description": "No gesture in progress"}}
            }
        },
        "/gesture/end": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Gesture"],
                "summary": "Drop the dragged task",
                "responses": {"200": {"description": "OK"}, "409": {"description": "No gesture in progress"}}
            }
        },
        "/gesture/cancel": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Gesture"],
                "summary": "Abandon the gesture",
                "responses": {"200": {"description": "OK"}, "409": {"description": "No gesture in progress"}}
            }
        },
        "/gesture/view": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Gesture"],
                "summary": "Current preview or committed board",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "handler.SessionResponse": {
            "type": "object",
            "properties": {"session_id": {"type": "string"}, "token": {"type": "string"}, "expires_at": {"type": "string"}}
        },
        "handler.OutcomeResponse": {
            "type": "object",
            "properties": {"outcome": {"type": "string", "enum": ["applied", "unchanged", "board_missing", "task_missing", "column_missing", "inconsistent"]}}
        },
        "handler.CreateTaskRequest": {
            "type": "object",
            "required": ["columnId", "title"],
            "properties": {
                "columnId": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "assignee": {"type": "string"},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "dueDate": {"type": "string"},
                "completed": {"type": "boolean"}
            }
        },
        "handler.MoveTaskRequest": {
            "type": "object",
            "required": ["sourceColumnId", "destColumnId", "index"],
            "properties": {"sourceColumnId": {"type": "string"}, "destColumnId": {"type": "string"}, "index": {"type": "integer"}}
        },
        "handler.BoardResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "title": {"type": "string"}, "columns": {"type": "array", "items": {"type": "object"}}}
        },
        "handler.CheckResponse": {
            "type": "object",
            "properties": {"consistent": {"type": "boolean"}, "violations": {"type": "array", "items": {"type": "object"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Board API",
	Description:      "API for a single-user Kanban task board with drag-and-drop reordering.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
