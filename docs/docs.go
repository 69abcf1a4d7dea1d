// Package docs registers the OpenAPI document served at /swagger/doc.json.
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
        "/search": {
            "get": {
                "tags": ["Players"],
                "summary": "Search Player",
                "parameters": [
                    {"type": "string", "description": "Player name", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to the profile"},
                    "400": {"description": "Missing name", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/players/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Players"],
                "summary": "Player Profile",
                "parameters": [
                    {"type": "string", "description": "Player display name (case-insensitive)", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlayerProfile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}},
                    "500": {"description": "Internal Error", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/leaderboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Leaderboards"],
                "summary": "WPI Leaderboard",
                "parameters": [
                    {"type": "integer", "default": 25, "description": "Limit", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LeaderboardPage"}},
                    "500": {"description": "Internal Error", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/compare": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Players"],
                "summary": "Compare Players",
                "parameters": [
                    {"type": "string", "description": "First player", "name": "p1", "in": "query"},
                    {"type": "string", "description": "Second player", "name": "p2", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Comparison"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/predict": {
            "post": {
                "description": "Uses the trained model when loaded, otherwise the synthetic formula",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Prediction"],
                "summary": "Predict Auction Value",
                "parameters": [
                    {"description": "Raw player stats", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PredictRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PredictionResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/model": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Prediction"],
                "summary": "Model Metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ModelMeta"}},
                    "503": {"description": "No model loaded", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        }
    },
    "definitions": {
        "error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.ChartSeries": {
            "type": "object",
            "properties": {
                "labels": {"type": "array", "items": {"type": "string"}},
                "values": {"type": "array", "items": {"type": "number"}}
            }
        },
        "models.FeatureRow": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "player_name": {"type": "string"},
                "matches_played": {"type": "number"},
                "kills": {"type": "number"},
                "deaths": {"type": "number"},
                "assists": {"type": "number"},
                "damage": {"type": "number"},
                "headshots": {"type": "number"},
                "wins": {"type": "number"},
                "top10s": {"type": "number"},
                "revives": {"type": "number"},
                "distance": {"type": "number"},
                "weapons_used": {"type": "number"},
                "survival_time": {"type": "number"},
                "rank": {"type": "number"},
                "kills_per_match": {"type": "number"},
                "assists_per_match": {"type": "number"},
                "damage_per_match": {"type": "number"},
                "revives_per_match": {"type": "number"},
                "survival_per_match": {"type": "number"},
                "movement_per_match": {"type": "number"},
                "headshot_rate": {"type": "number"},
                "aggression_score": {"type": "number"},
                "support_score": {"type": "number"},
                "survival_score": {"type": "number"},
                "wpi": {"type": "number"},
                "auction_value": {"type": "number"}
            }
        },
        "models.PlayerProfile": {
            "type": "object",
            "properties": {
                "player": {"$ref": "#/definitions/models.FeatureRow"},
                "prediction": {"type": "number"},
                "auction_value": {"type": "number"},
                "bar_chart": {"$ref": "#/definitions/models.ChartSeries"},
                "radar_chart": {"$ref": "#/definitions/models.ChartSeries"},
                "tips": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.LeaderboardEntry": {
            "type": "object",
            "properties": {
                "rank": {"type": "integer"},
                "player_id": {"type": "string"},
                "name": {"type": "string"},
                "wpi": {"type": "number"},
                "kills": {"type": "integer"},
                "damage": {"type": "integer"},
                "matches": {"type": "integer"}
            }
        },
        "models.LeaderboardPage": {
            "type": "object",
            "properties": {
                "players": {"type": "array", "items": {"$ref": "#/definitions/models.LeaderboardEntry"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        },
        "models.ComparisonStat": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "player1": {"type": "number"},
                "player2": {"type": "number"}
            }
        },
        "models.Comparison": {
            "type": "object",
            "properties": {
                "p1": {"type": "string"},
                "p2": {"type": "string"},
                "r1": {"$ref": "#/definitions/models.FeatureRow"},
                "r2": {"$ref": "#/definitions/models.FeatureRow"},
                "stats": {"type": "array", "items": {"$ref": "#/definitions/models.ComparisonStat"}}
            }
        },
        "models.PredictRequest": {
            "type": "object",
            "properties": {
                "player_id": {"type": "string"},
                "matches_played": {"type": "number", "minimum": 0},
                "kills": {"type": "number", "minimum": 0},
                "assists": {"type": "number", "minimum": 0},
                "damage": {"type": "number", "minimum": 0},
                "headshots": {"type": "number", "minimum": 0},
                "revives": {"type": "number", "minimum": 0},
                "survival_time": {"type": "number", "minimum": 0},
                "distance": {"type": "number", "minimum": 0},
                "walk_distance": {"type": "number", "minimum": 0},
                "ride_distance": {"type": "number", "minimum": 0}
            }
        },
        "models.PredictionResult": {
            "type": "object",
            "properties": {
                "prediction": {"type": "number"},
                "source": {"type": "string", "enum": ["model", "synthetic"]},
                "model": {"type": "string"}
            }
        },
        "models.ModelMetrics": {
            "type": "object",
            "properties": {
                "mae": {"type": "number"},
                "rmse": {"type": "number"},
                "r2": {"type": "number"}
            }
        },
        "models.ModelMeta": {
            "type": "object",
            "properties": {
                "features": {"type": "array", "items": {"type": "string"}},
                "metrics": {"$ref": "#/definitions/models.ModelMetrics"},
                "model": {"type": "string"},
                "alpha": {"type": "number"},
                "rows": {"type": "integer"},
                "trained_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "WPI Stats API",
	Description:      "Player performance index, leaderboard, comparison and auction value estimates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
