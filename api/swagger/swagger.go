package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Article API",
        "description": "Multilingual article management service",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Articles", "description": "Article authoring and public reads"},
        {"name": "Authentication", "description": "Staff sign-in"},
        {"name": "Attachments", "description": "Signed attachment links"}
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"summary": "Readiness check", "responses": {"200": {"description": "Ready"}, "503": {"description": "Database unreachable"}}}
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Account not active", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/attach/open/{token}": {
            "get": {
                "tags": ["Attachments"],
                "summary": "Open attachment",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "403": {"description": "Invalid or expired link"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/article/adm": {
            "post": {
                "tags": ["Articles"],
                "summary": "Create article (moderator or above)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ArticleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error"},
                    "409": {"description": "Title already exists"}
                }
            }
        },
        "/article/adm/{id}": {
            "get": {
                "tags": ["Articles"],
                "summary": "Get article for staff (moderator or above)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "Accepted-Language", "in": "header", "type": "string", "enum": ["uz", "ru", "en"]}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            },
            "put": {
                "tags": ["Articles"],
                "summary": "Update article (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ArticleRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}, "409": {"description": "Title already exists"}}
            }
        },
        "/article/adm/delete/{id}": {
            "delete": {
                "tags": ["Articles"],
                "summary": "Soft-delete article (admin)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/article/adm/type/{id}": {
            "get": {
                "tags": ["Articles"],
                "summary": "List articles of a type (moderator or above)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "size", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/article/adm/status/{id}": {
            "put": {
                "tags": ["Articles"],
                "summary": "Change article status (publisher or above)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangeStatusRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/article/public/list": {
            "get": {
                "tags": ["Articles"],
                "summary": "List visible articles, newest first",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer", "default": 0},
                    {"name": "size", "in": "query", "type": "integer", "default": 5}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/article/public/type/{id}": {
            "get": {
                "tags": ["Articles"],
                "summary": "Latest published articles of a type",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/article/public/{id}": {
            "get": {
                "tags": ["Articles"],
                "summary": "Get published article",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "Accepted-Language", "in": "header", "type": "string", "enum": ["uz", "ru", "en"]}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/article/adm/{id}/view": {
            "get": {
                "tags": ["Articles"],
                "summary": "Get article of any status and count a view (moderator or above)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "Accepted-Language", "in": "header", "type": "string", "enum": ["uz", "ru", "en"]}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        },
        "/article/{lang}/share/{id}": {
            "get": {
                "tags": ["Articles"],
                "summary": "Share published article",
                "parameters": [
                    {"name": "lang", "in": "path", "required": true, "type": "string", "enum": ["uz", "ru", "en"]},
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "ArticleRequest": {
            "type": "object",
            "required": ["title", "description", "content", "categoryId", "regionId", "typeId"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "content": {"type": "string"},
                "attachId": {"type": "string", "format": "uuid"},
                "categoryId": {"type": "integer"},
                "regionId": {"type": "integer"},
                "typeId": {"type": "integer"},
                "tagIdList": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "ChangeStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["CREATED", "PUBLISHED", "BLOCKED"]}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
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
