// Package docs holds the swagger document served at /swagger, kept in step with
// the handler annotations by hand.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Backend Team"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/config": {
            "get": {
                "description": "Grid size, wall allotment and player colors used for every new room",
                "produces": ["application/json"],
                "tags": ["Config"],
                "summary": "Get game rules",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.RulesResponse"}}
                }
            }
        },
        "/api/rooms/{code}": {
            "get": {
                "description": "Participants and the current match snapshot of a room",
                "produces": ["application/json"],
                "tags": ["Room"],
                "summary": "Get room",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.RoomResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/api/rooms/{code}/moves": {
            "get": {
                "description": "Cells the player's token may step to and its shortest distance to the goal row",
                "produces": ["application/json"],
                "tags": ["Game"],
                "summary": "Legal moves",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true},
                    {"type": "string", "description": "player1 or player2", "name": "player", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.MovesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/api/rooms/{code}/qr": {
            "get": {
                "description": "PNG QR code of the URL a second player opens to join the room",
                "produces": ["image/png"],
                "tags": ["Room"],
                "summary": "Room invite QR code",
                "parameters": [
                    {"type": "string", "description": "Room code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Reports liveness with the number of open rooms and connections",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HealthResponse"}}
                }
            }
        },
        "/ws": {
            "get": {
                "description": "WebSocket endpoint. Clients send {\"event\",\"data\"} envelopes (joinGame, gameAction, gameWin, resetGame, leaveGame) and receive gameJoined, playerJoined, gameError, gameStateUpdate, gameOver, playerLeft, actionRejected.",
                "tags": ["Session"],
                "summary": "Realtime game session",
                "responses": {
                    "101": {"description": "Switching Protocols"}
                }
            }
        }
    },
    "definitions": {
        "game.MatchState": {
            "type": "object",
            "properties": {
                "currentPlayer": {"type": "string"},
                "gameState": {"type": "string"},
                "gridSize": {"type": "integer"},
                "players": {"type": "object", "additionalProperties": {"$ref": "#/definitions/game.Player"}},
                "selectedAction": {"type": "string"},
                "walls": {"type": "array", "items": {"$ref": "#/definitions/game.Wall"}},
                "wallsRemaining": {"type": "object", "additionalProperties": {"type": "integer"}},
                "winner": {"type": "string"}
            }
        },
        "game.Player": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "id": {"type": "string"},
                "position": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "game.Wall": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "orientation": {"type": "string"},
                "x": {"type": "integer"},
                "y": {"type": "integer"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "connections": {"type": "integer"},
                "rooms": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "http.MovesResponse": {
            "type": "object",
            "properties": {
                "distance": {"type": "integer"},
                "from": {"type": "array", "items": {"type": "integer"}},
                "goalRow": {"type": "integer"},
                "player": {"type": "string"},
                "reachable": {"type": "boolean"},
                "targets": {"type": "array", "items": {"type": "array", "items": {"type": "integer"}}},
                "yourTurn": {"type": "boolean"}
            }
        },
        "http.RoomResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "createdAt": {"type": "string"},
                "gameState": {"$ref": "#/definitions/game.MatchState"},
                "participants": {"type": "array", "items": {"$ref": "#/definitions/room.Participant"}}
            }
        },
        "http.RulesResponse": {
            "type": "object",
            "properties": {
                "colors": {"type": "object", "additionalProperties": {"type": "string"}},
                "gridSize": {"type": "integer"},
                "wallsPerPlayer": {"type": "integer"}
            }
        },
        "room.Participant": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "isHost": {"type": "boolean"},
                "name": {"type": "string"},
                "seat": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Quoridor Session API",
	Description:      "Realtime two-player wall maze sessions over WebSocket, with a small read-only REST surface (Go + Gin)",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
