// Package docs registers the Swagger document served under /swagger/.
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
        "/login": {
            "post": {
                "description": "Authenticates user and sets session cookie",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Login",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "creds",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/main.loginRequest"}
                    }
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/menu": {
            "get": {
                "produces": ["application/json"],
                "summary": "Menu",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/main.menuResponse"}
                    }
                }
            }
        },
        "/orders": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "summary": "List logged pizzas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"type": "string"}}
                    }
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Create order",
                "parameters": [
                    {
                        "description": "Order",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/main.orderRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/main.orderResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "string"}
                    }
                }
            }
        }
    },
    "definitions": {
        "main.loginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "main.menuResponse": {
            "type": "object",
            "properties": {
                "types": {"type": "array", "items": {"type": "string"}}
            }
        },
        "main.orderRequest": {
            "type": "object",
            "properties": {
                "payment": {"type": "string"},
                "pizzas": {"type": "array", "items": {"$ref": "#/definitions/main.pizzaRequest"}}
            }
        },
        "main.orderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "receipt": {"type": "array", "items": {"type": "string"}},
                "total": {"type": "string"}
            }
        },
        "main.pizzaRequest": {
            "type": "object",
            "properties": {
                "extra": {"type": "array", "items": {"type": "string"}},
                "toppings": {"type": "array", "items": {"type": "string"}},
                "type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pizzaflow API",
	Description:      "API for ordering pizzas",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
