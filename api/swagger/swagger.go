package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Regiovoorlichting API",
        "description": "Regional study-orientation portal backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Activities", "description": "Open days and campus activities"},
        {"name": "Events", "description": "Voorlichting events"},
        {"name": "Videos", "description": "Study-orientation videos"},
        {"name": "Regions", "description": "Region reference data"},
        {"name": "Exports", "description": "Admin collection exports"}
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
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/activities": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activities",
                "parameters": [
                    {"name": "region", "in": "query", "type": "string"},
                    {"name": "studyField", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string"},
                    {"name": "audience", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string", "description": "ISO date lower bound"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Activity"}}},
                    "500": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Activities"],
                "summary": "Create activity",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ActivityInput"}}
                ],
                "responses": {
                    "200": {"description": "Created record", "schema": {"$ref": "#/definitions/Activity"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Activities"],
                "summary": "Update activity",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Activity"}}
                ],
                "responses": {
                    "200": {"description": "Updated record", "schema": {"$ref": "#/definitions/Activity"}},
                    "404": {"description": "Unknown id", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Activities"],
                "summary": "Delete activity",
                "parameters": [
                    {"name": "id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Acknowledged", "schema": {"$ref": "#/definitions/SuccessBody"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events",
                "parameters": [
                    {"name": "type", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string", "description": "ISO date lower bound"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Event"}}},
                    "500": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventInput"}}
                ],
                "responses": {
                    "200": {"description": "Created record", "schema": {"$ref": "#/definitions/Event"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Events"],
                "summary": "Update event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "200": {"description": "Updated record", "schema": {"$ref": "#/definitions/Event"}},
                    "404": {"description": "Unknown id", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete event",
                "parameters": [
                    {"name": "id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Acknowledged", "schema": {"$ref": "#/definitions/SuccessBody"}}
                }
            }
        },
        "/api/videos": {
            "get": {
                "tags": ["Videos"],
                "summary": "List videos",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Video"}}},
                    "500": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Videos"],
                "summary": "Create video",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VideoInput"}}
                ],
                "responses": {
                    "200": {"description": "Created record", "schema": {"$ref": "#/definitions/Video"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Videos"],
                "summary": "Update video",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Video"}}
                ],
                "responses": {
                    "200": {"description": "Updated record", "schema": {"$ref": "#/definitions/Video"}},
                    "404": {"description": "Unknown id", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Videos"],
                "summary": "Delete video",
                "parameters": [
                    {"name": "id", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Acknowledged", "schema": {"$ref": "#/definitions/SuccessBody"}}
                }
            }
        },
        "/api/regions": {
            "get": {
                "tags": ["Regions"],
                "summary": "List regions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Region"}}}
                }
            }
        },
        "/api/exports": {
            "post": {
                "tags": ["Exports"],
                "summary": "Queue a collection export",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Queued", "schema": {"$ref": "#/definitions/ExportJob"}},
                    "400": {"description": "Unknown collection or format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/exports/{id}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Export job status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ExportJob"}},
                    "404": {"description": "Unknown job", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/exports/download": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a completed export",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "404": {"description": "Unknown or expired token", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "Activity": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "region": {"type": "string"},
                "university": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "type": {"type": "string", "enum": ["open-dag", "presentatie", "workshop", "proefcollege", "beurs"]},
                "studyField": {"type": "string"},
                "audience": {"type": "string", "enum": ["scholieren", "ouders", "beide"]},
                "description": {"type": "string"},
                "availableSpots": {"type": "integer"},
                "registrationRequired": {"type": "boolean"}
            }
        },
        "ActivityInput": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "region": {"type": "string"},
                "university": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "type": {"type": "string"},
                "studyField": {"type": "string"},
                "audience": {"type": "string"},
                "description": {"type": "string"},
                "availableSpots": {"type": "integer"},
                "registrationRequired": {"type": "boolean"}
            },
            "required": ["title", "region", "date"]
        },
        "Event": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "date": {"type": "string"},
                "location": {"type": "string"},
                "type": {"type": "string", "enum": ["studiedag", "ouderavond", "beurs", "masterclass", "informatiesessie"]},
                "description": {"type": "string"},
                "time": {"type": "string"},
                "organizer": {"type": "string"},
                "registrationUrl": {"type": "string"},
                "capacity": {"type": "integer"}
            }
        },
        "EventInput": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "date": {"type": "string"},
                "location": {"type": "string"},
                "type": {"type": "string"},
                "description": {"type": "string"},
                "time": {"type": "string"},
                "organizer": {"type": "string"},
                "registrationUrl": {"type": "string"},
                "capacity": {"type": "integer"}
            },
            "required": ["title", "date"]
        },
        "Video": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "duration": {"type": "string"},
                "category": {"type": "string"},
                "thumbnail": {"type": "string"},
                "description": {"type": "string"},
                "uploadDate": {"type": "string"},
                "views": {"type": "integer"},
                "videoUrl": {"type": "string"}
            }
        },
        "VideoInput": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "duration": {"type": "string"},
                "category": {"type": "string"},
                "thumbnail": {"type": "string"},
                "description": {"type": "string"},
                "uploadDate": {"type": "string"},
                "views": {"type": "integer"},
                "videoUrl": {"type": "string"}
            },
            "required": ["title"]
        },
        "Region": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "province": {"type": "string"},
                "coordinates": {
                    "type": "object",
                    "properties": {
                        "lat": {"type": "number"},
                        "lng": {"type": "number"}
                    }
                },
                "activities": {"type": "integer"},
                "nextEvent": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "CreateExportRequest": {
            "type": "object",
            "properties": {
                "collection": {"type": "string", "enum": ["activities", "events", "videos"]},
                "format": {"type": "string", "enum": ["csv", "pdf"]}
            },
            "required": ["collection", "format"]
        },
        "ExportJob": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "collection": {"type": "string"},
                "format": {"type": "string"},
                "status": {"type": "string", "enum": ["queued", "processing", "completed", "failed"]},
                "downloadUrl": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "SuccessBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
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
