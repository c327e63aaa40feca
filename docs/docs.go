// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/boards": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "List boards",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive title substring", "name": "title", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.BoardResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Create a board",
                "parameters": [
                    {"description": "Board", "name": "board", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.BoardCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/service.BoardResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/boards/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Get a board",
                "parameters": [
                    {"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.BoardResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Only the supplied fields change.",
                "consumes": ["application/json"],
                "tags": ["Boards"],
                "summary": "Update a board",
                "parameters": [
                    {"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "board", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.BoardUpdate"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Boards"],
                "summary": "Delete a board and its cards",
                "parameters": [
                    {"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/boards/{id}/cards": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Get a board with its cards",
                "parameters": [
                    {"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.BoardWithCardsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cards"],
                "summary": "Create a card on a board",
                "parameters": [
                    {"type": "integer", "description": "Board ID", "name": "id", "in": "path", "required": true},
                    {"description": "Card", "name": "card", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CardCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/service.CardResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/boards/{id}/cards/reassign": {
            "post": {
                "description": "All listed cards move or none do.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Boards"],
                "summary": "Move cards onto a board",
                "parameters": [
                    {"type": "integer", "description": "Target board ID", "name": "id", "in": "path", "required": true},
                    {"description": "Cards to move", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.ReassignRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ReassignResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/cards": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cards"],
                "summary": "List cards",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive message substring", "name": "message", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.CardResponse"}}}
                }
            }
        },
        "/cards/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cards"],
                "summary": "Get a card",
                "parameters": [
                    {"type": "integer", "description": "Card ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.CardResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "put": {
                "description": "likes_count in the body is ignored; use the like endpoint.",
                "consumes": ["application/json"],
                "tags": ["Cards"],
                "summary": "Update a card message",
                "parameters": [
                    {"type": "integer", "description": "Card ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "card", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CardUpdate"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Cards"],
                "summary": "Delete a card",
                "parameters": [
                    {"type": "integer", "description": "Card ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/cards/{id}/like": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["Cards"],
                "summary": "Like a card",
                "parameters": [
                    {"type": "integer", "description": "Card ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.CardResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness and database reachability",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "service.BoardCreate": {
            "type": "object",
            "required": ["owner", "title"],
            "properties": {
                "owner": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "service.BoardUpdate": {
            "type": "object",
            "properties": {
                "owner": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "service.BoardResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "owner": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "service.BoardWithCardsResponse": {
            "type": "object",
            "properties": {
                "cards": {"type": "array", "items": {"$ref": "#/definitions/service.CardResponse"}},
                "id": {"type": "integer"},
                "owner": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "service.CardCreate": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string", "maxLength": 40}
            }
        },
        "service.CardUpdate": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "maxLength": 40}
            }
        },
        "service.CardResponse": {
            "type": "object",
            "properties": {
                "board_id": {"type": "integer"},
                "id": {"type": "integer"},
                "likes_count": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "service.ReassignRequest": {
            "type": "object",
            "properties": {
                "card_ids": {"type": "array", "minItems": 1, "items": {"type": "integer"}}
            }
        },
        "service.Reassignment": {
            "type": "object",
            "properties": {
                "card_id": {"type": "integer"},
                "from_board": {"type": "integer"},
                "to_board": {"type": "integer"}
            }
        },
        "service.ReassignResponse": {
            "type": "object",
            "properties": {
                "board_id": {"type": "integer"},
                "moved_count": {"type": "integer"},
                "reassigned_cards": {"type": "array", "items": {"$ref": "#/definitions/service.Reassignment"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Inspiration Board API",
	Description:      "API for managing boards and the short message cards pinned to them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
