// Package docs holds the Swagger 2.0 document served under /docs. It follows
// the layout swag init emits so the file can be regenerated in place.
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
        "/healthz": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    }
                }
            }
        },
        "/surfspot": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "surfspot"
                ],
                "summary": "Create a surf spot",
                "parameters": [
                    {
                        "description": "Surf spot",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateSurfSpotRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.SurfSpotResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/surfspot/all": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "surfspot"
                ],
                "summary": "List every surf spot",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/handler.SurfSpotResponse"
                            }
                        }
                    }
                }
            }
        },
        "/surfspot/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "surfspot"
                ],
                "summary": "Get one surf spot",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Surf spot id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.SurfSpotResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.CreateSurfSpotRequest": {
            "type": "object",
            "required": [
                "address",
                "destination"
            ],
            "properties": {
                "address": {
                    "type": "string",
                    "example": "Jeffreys Bay, Eastern Cape"
                },
                "createdTime": {
                    "type": "string",
                    "example": "2025-09-07T12:00:00.000Z"
                },
                "destination": {
                    "type": "string",
                    "example": "J-Bay"
                },
                "difficultyLevel": {
                    "type": "integer",
                    "maximum": 5,
                    "minimum": 1,
                    "example": 4
                },
                "geocodeRaw": {
                    "type": "string",
                    "example": "{\"lat\":-34.05,\"lng\":24.93}"
                },
                "magicSeaweedLink": {
                    "type": "string",
                    "example": "https://magicseaweed.com/Jeffreys-Bay-Surf-Report/88/"
                },
                "peakSeasonBegin": {
                    "type": "string",
                    "example": "2025-06-01"
                },
                "peakSeasonEnd": {
                    "type": "string",
                    "example": "2025-08-31"
                },
                "stateCountry": {
                    "type": "string",
                    "example": "Eastern Cape, South Africa"
                }
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "ok": {
                    "type": "boolean",
                    "example": true
                },
                "timestamp": {
                    "type": "string",
                    "example": "2025-09-07T12:00:00Z"
                }
            }
        },
        "handler.SurfSpotResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string",
                    "example": "Ehukai Beach Park, Pupukea, HI"
                },
                "breakTypes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "createdTime": {
                    "type": "string",
                    "example": "2025-09-07T12:00:00.000Z"
                },
                "destination": {
                    "type": "string",
                    "example": "Pipeline"
                },
                "difficultyLevel": {
                    "type": "integer",
                    "example": 5
                },
                "geocodeRaw": {
                    "type": "string"
                },
                "influencers": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "magicSeaweedLink": {
                    "type": "string"
                },
                "peakSeasonBegin": {
                    "type": "string",
                    "example": "2025-11-01"
                },
                "peakSeasonEnd": {
                    "type": "string",
                    "example": "2026-02-28"
                },
                "photoUrls": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "stateCountry": {
                    "type": "string",
                    "example": "Hawaii, USA"
                },
                "surfSpotId": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "response.ErrorInfo": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "details": {},
                "message": {
                    "type": "string"
                }
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "$ref": "#/definitions/response.ErrorInfo"
                },
                "meta": {
                    "$ref": "#/definitions/response.MetaInfo"
                }
            }
        },
        "response.MetaInfo": {
            "type": "object",
            "properties": {
                "request_id": {
                    "type": "string"
                }
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
	Title:            "Shaka API",
	Description:      "Surf spot catalog.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
