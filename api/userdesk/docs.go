// Package userdesk registers the Swagger 2.0 document for the userdesk API,
// kept in step with the annotations on the HTTP handlers.
package userdesk

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "AussieBroadWAN Team",
            "url": "https://github.com/aussiebroadwan/userdesk"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/users": {
            "get": {
                "security": [{"SessionCookie": []}],
                "description": "Returns all users ordered by id. Requires an admin session.",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "Users", "schema": {"type": "array", "items": {"$ref": "#/definitions/usersdk.UserSummary"}}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}},
                    "403": {"description": "Not an admin", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"SessionCookie": []}],
                "description": "Creates a user. Usernames are unique and case-sensitive. Requires an admin session.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Create user",
                "parameters": [
                    {"description": "New user", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/usersdk.CreateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "User created", "schema": {"$ref": "#/definitions/usersdk.CreateUserResponse"}},
                    "400": {"description": "Invalid payload or username taken", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}},
                    "403": {"description": "Not an admin", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}}
                }
            }
        },
        "/admin/users/{id}": {
            "put": {
                "security": [{"SessionCookie": []}],
                "description": "Updates only the fields present in the body. profile_picture_url may be null to clear it.\nAn admin cannot remove their own admin status. Requires an admin session.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Update user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/usersdk.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "User updated", "schema": {"$ref": "#/definitions/usersdk.MessageResponse"}},
                    "400": {"description": "Invalid payload or username taken", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}},
                    "403": {"description": "Not an admin, or self-demotion", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"SessionCookie": []}],
                "description": "Deletes a user. An admin cannot delete their own account. Requires an admin session.",
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Delete user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "User deleted", "schema": {"$ref": "#/definitions/usersdk.MessageResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}},
                    "403": {"description": "Not an admin, or self-deletion", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "description": "Liveness probe endpoint returning basic service health status, uptime, and version information\nThis endpoint always returns 200 OK if the service is running",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/usersdk.HealthResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"SessionCookie": []}],
                "description": "Clears the session cookie. The token itself stays valid until it expires.",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "Logged out", "schema": {"$ref": "#/definitions/usersdk.MessageResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}}
                }
            }
        },
        "/me": {
            "get": {
                "security": [{"SessionCookie": []}],
                "description": "Returns the profile of the user the session cookie belongs to.",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "Current user", "schema": {"$ref": "#/definitions/usersdk.MeResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Readiness probe endpoint returning service health status and the database check",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/usersdk.HealthResponse"}},
                    "503": {"description": "status, uptime, version, checks - service not ready", "schema": {"$ref": "#/definitions/usersdk.HealthResponse"}}
                }
            }
        },
        "/token": {
            "post": {
                "description": "Verifies the username and password and sets an HttpOnly, SameSite=Strict session cookie valid for 30 minutes.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "Password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Login successful", "schema": {"$ref": "#/definitions/usersdk.LoginResponse"}},
                    "400": {"description": "Missing username or password", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}},
                    "401": {"description": "Incorrect username or password", "schema": {"$ref": "#/definitions/usersdk.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "usersdk.CreateUserRequest": {
            "type": "object",
            "properties": {
                "is_admin": {"type": "boolean"},
                "password": {"type": "string"},
                "profile_picture_url": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "usersdk.CreateUserResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "user_id": {"type": "integer"}
            }
        },
        "usersdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "error_description": {"type": "string"}
            }
        },
        "usersdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"}
            }
        },
        "usersdk.HealthResponse": {
            "type": "object",
            "properties": {
                "checks": {"$ref": "#/definitions/usersdk.HealthChecks"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "usersdk.LoginResponse": {
            "type": "object",
            "properties": {
                "is_admin": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "usersdk.MeResponse": {
            "type": "object",
            "properties": {
                "is_admin": {"type": "boolean"},
                "profile_picture_url": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "usersdk.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "usersdk.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "is_admin": {"type": "boolean"},
                "password": {"type": "string"},
                "profile_picture_url": {"type": "string", "x-nullable": true},
                "username": {"type": "string"}
            }
        },
        "usersdk.UserSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "is_admin": {"type": "boolean"},
                "profile_picture_url": {"type": "string"},
                "username": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "SessionCookie": {
            "description": "Signed session token set by POST /token.",
            "type": "apiKey",
            "name": "access_token",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Userdesk API",
	Description:      "Session-authenticated user management. Log in at /token to receive an HttpOnly session cookie,\nthen call the user and admin endpoints with it. Every API route is also served under /api.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
