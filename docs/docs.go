// Package docs registers the OpenAPI document served under /swagger.
// The layout follows swag's generated output, so `go generate ./cmd/api`
// can replace this file in place.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/forecast/hourly": {
            "get": {
                "description": "The next 24 hours for the coordinates with a coarse condition label",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "forecast"
                ],
                "summary": "Get hourly forecast",
                "parameters": [
                    {
                        "type": "number",
                        "example": 51.5074,
                        "description": "Latitude in decimal degrees",
                        "name": "lat",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "example": -0.1278,
                        "description": "Longitude in decimal degrees",
                        "name": "lon",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/main.HourlyResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "405": {
                        "description": "Method Not Allowed",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/forecast/week": {
            "get": {
                "description": "Daily forecast for the coordinates, reshaped from Open-Meteo",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "forecast"
                ],
                "summary": "Get weekly forecast",
                "parameters": [
                    {
                        "type": "number",
                        "example": 51.5074,
                        "description": "Latitude in decimal degrees",
                        "name": "latitude",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "example": -0.1278,
                        "description": "Longitude in decimal degrees",
                        "name": "longitude",
                        "in": "query",
                        "required": true
                    },
                    {
                        "enum": [
                            "metric",
                            "imperial"
                        ],
                        "type": "string",
                        "default": "metric",
                        "description": "Unit system",
                        "name": "units",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/types.ForecastResult"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "405": {
                        "description": "Method Not Allowed",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/locations/search": {
            "get": {
                "description": "Case-insensitive substring match on name, state or country, or an exact airport code match. Results keep the order of the bundled dataset.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "locations"
                ],
                "summary": "Search locations",
                "parameters": [
                    {
                        "type": "string",
                        "example": "Springfield",
                        "description": "Search text or airport code",
                        "name": "query",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/main.LocationsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "405": {
                        "description": "Method Not Allowed",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/main.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Report service status and server time",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/main.HealthResponse"
                        }
                    }
                }
            }
        },
        "/ping": {
            "get": {
                "description": "Check if the API is running",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Ping health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/main.PingResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "main.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "Query parameter is required."
                }
            }
        },
        "main.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "ok"
                },
                "time": {
                    "type": "string",
                    "example": "2025-07-07T12:00:00Z"
                }
            }
        },
        "main.HourlyResponse": {
            "type": "object",
            "properties": {
                "hourly": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.HourlyForecast"
                    }
                }
            }
        },
        "main.LocationsResponse": {
            "type": "object",
            "properties": {
                "locations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.Location"
                    }
                }
            }
        },
        "main.PingResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "description": "Response message",
                    "type": "string",
                    "example": "pong"
                }
            }
        },
        "types.DailyForecast": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2025-07-07"
                },
                "precipitationProbability": {
                    "type": "number",
                    "example": 20
                },
                "temperatureMax": {
                    "type": "number",
                    "example": 24.3
                },
                "temperatureMin": {
                    "type": "number",
                    "example": 14.1
                },
                "weatherCode": {
                    "type": "integer",
                    "example": 3
                },
                "weatherDescription": {
                    "type": "string",
                    "example": "Overcast"
                }
            }
        },
        "types.ForecastResult": {
            "type": "object",
            "properties": {
                "days": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/types.DailyForecast"
                    }
                },
                "latitude": {
                    "type": "number",
                    "example": 51.5074
                },
                "longitude": {
                    "type": "number",
                    "example": -0.1278
                },
                "unitSymbol": {
                    "type": "string",
                    "example": "°C"
                },
                "units": {
                    "type": "string",
                    "enum": [
                        "metric",
                        "imperial"
                    ],
                    "example": "metric"
                }
            }
        },
        "types.HourlyForecast": {
            "type": "object",
            "properties": {
                "condition": {
                    "type": "string",
                    "example": "Partly Cloudy"
                },
                "precipitation": {
                    "type": "number",
                    "example": 0.2
                },
                "temperature": {
                    "type": "number",
                    "example": 18.4
                },
                "time": {
                    "type": "string",
                    "example": "2025-07-07T14:00"
                }
            }
        },
        "types.Location": {
            "type": "object",
            "properties": {
                "airportCode": {
                    "type": "string",
                    "example": "LHR"
                },
                "country": {
                    "type": "string",
                    "example": "United Kingdom"
                },
                "id": {
                    "type": "string",
                    "example": "gb-london"
                },
                "latitude": {
                    "type": "number",
                    "example": 51.5074
                },
                "longitude": {
                    "type": "number",
                    "example": -0.1278
                },
                "name": {
                    "type": "string",
                    "example": "London"
                },
                "state": {
                    "type": "string",
                    "example": "England"
                },
                "type": {
                    "type": "string",
                    "example": "city"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Weather BFF API",
	Description:      "Location search and Open-Meteo forecasts for the weather app frontend",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
