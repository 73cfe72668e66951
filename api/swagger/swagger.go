package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Gaon Portal API",
        "description": "School information portal backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "School", "description": "Legacy school info endpoints"},
        {"name": "Timetable", "description": "Assembled daily timetable"},
        {"name": "Meals", "description": "NEIS-backed meal menus"},
        {"name": "Chat", "description": "Portal assistant"},
        {"name": "User", "description": "Caller-scoped preferences"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/school/meal": {
            "get": {
                "tags": ["School"],
                "summary": "School meal info",
                "parameters": [
                    {"name": "day", "in": "query", "type": "string", "description": "Date (YYYY-MM-DD), defaults to today"}
                ],
                "responses": {
                    "200": {"description": "Meal items for the day"}
                }
            }
        },
        "/school/event": {
            "get": {
                "tags": ["School"],
                "summary": "School events for a month",
                "parameters": [
                    {"name": "month", "in": "query", "type": "string", "description": "Month (YYYY-MM), defaults to current"}
                ],
                "responses": {
                    "200": {"description": "Events for the month"}
                }
            }
        },
        "/school/timetable": {
            "get": {
                "tags": ["School"],
                "summary": "School timetable info",
                "parameters": [
                    {"name": "day", "in": "query", "type": "string", "description": "Date (YYYY-MM-DD), defaults to today"}
                ],
                "responses": {
                    "200": {"description": "Timetable items for the day"}
                }
            }
        },
        "/api/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Assembled daily timetable",
                "parameters": [
                    {"name": "grade", "in": "query", "type": "string", "default": "1"},
                    {"name": "class", "in": "query", "type": "string", "default": "1"},
                    {"name": "date", "in": "query", "type": "string", "description": "Date (YYYYMMDD), defaults to today"}
                ],
                "responses": {
                    "200": {
                        "description": "One row per schedule segment",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/TimetableRow"}}
                    },
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/meals": {
            "get": {
                "tags": ["Meals"],
                "summary": "Daily meal menus",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "description": "Date (YYYYMMDD), defaults to today"}
                ],
                "responses": {
                    "200": {"description": "Three-slot meal structure", "schema": {"$ref": "#/definitions/MealsResponse"}},
                    "400": {"description": "Invalid date", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/api/chat": {
            "post": {
                "tags": ["Chat"],
                "summary": "Ask the portal assistant",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "Assistant reply", "schema": {"$ref": "#/definitions/ChatResponse"}},
                    "400": {"description": "Missing message", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/user/config": {
            "get": {
                "tags": ["User"],
                "summary": "Read caller configuration",
                "responses": {
                    "200": {"description": "Current configuration"}
                }
            },
            "put": {
                "tags": ["User"],
                "summary": "Update caller configuration",
                "responses": {
                    "200": {"description": "Updated configuration"}
                }
            }
        },
        "/user/me": {
            "get": {
                "tags": ["User"],
                "summary": "Current caller profile",
                "responses": {
                    "200": {"description": "Current configuration"}
                }
            }
        },
        "/music": {
            "get": {
                "summary": "Music lookup stub",
                "parameters": [
                    {"name": "title", "in": "query", "type": "string"}
                ],
                "responses": {
                    "404": {"description": "Always; no lookup exists"}
                }
            }
        },
        "/speaker/connect": {
            "post": {
                "summary": "Speaker pairing handshake",
                "parameters": [
                    {"name": "X-Device-Id", "in": "header", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Handshake acknowledged"}
                }
            }
        }
    },
    "definitions": {
        "TimetableRow": {
            "type": "object",
            "properties": {
                "period": {"type": "string"},
                "time": {"type": "string"},
                "subject": {"type": "string"},
                "teacher": {"type": "string"},
                "isCurrent": {"type": "boolean"},
                "isSpecial": {"type": "boolean"},
                "kind": {"type": "string"}
            }
        },
        "MealsResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "meals": {
                    "type": "object",
                    "properties": {
                        "breakfast": {"$ref": "#/definitions/MealSlot"},
                        "lunch": {"$ref": "#/definitions/MealSlot"},
                        "dinner": {"$ref": "#/definitions/MealSlot"}
                    }
                }
            }
        },
        "MealSlot": {
            "type": "object",
            "properties": {
                "menu": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "name": {"type": "string"},
                            "allergyTags": {"type": "array", "items": {"type": "string"}}
                        }
                    }
                },
                "calories": {"type": "string"}
            }
        },
        "ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"}
            }
        },
        "ChatResponse": {
            "type": "object",
            "properties": {
                "response": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
