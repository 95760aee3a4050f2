// Package docs registra la especificación OpenAPI que sirve /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Registro de usuario",
                "responses": {
                    "200": {"description": "ok, user y token"},
                    "409": {"description": "email ya registrado"}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Login",
                "responses": {
                    "200": {"description": "ok, payload, username y token"},
                    "401": {"description": "password incorrecto"},
                    "404": {"description": "email no registrado"}
                }
            }
        },
        "/logout": {
            "get": {
                "produces": ["application/json"],
                "summary": "Logout (stateless)",
                "responses": {
                    "200": {"description": "ok y message"}
                }
            }
        },
        "/userdata/{userID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "summary": "Perfil de usuario",
                "parameters": [
                    {"name": "userID", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "ok y payload"},
                    "401": {"description": "sin token válido"},
                    "404": {"description": "usuario inexistente"}
                }
            }
        },
        "/comment": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Comentar una mascota",
                "responses": {
                    "200": {"description": "comentario con autor expandido"},
                    "404": {"description": "mascota inexistente"}
                }
            }
        },
        "/pet/{id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "summary": "Registrar mascota (el id del path es el dueño)",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "petName", "in": "formData", "type": "string", "required": true},
                    {"name": "deathDate", "in": "formData", "type": "string", "required": true},
                    {"name": "favorite1", "in": "formData", "type": "string"},
                    {"name": "favorite2", "in": "formData", "type": "string"},
                    {"name": "favorite3", "in": "formData", "type": "string"},
                    {"name": "animal-img", "in": "formData", "type": "file", "required": true}
                ],
                "responses": {
                    "200": {"description": "ok y pet"},
                    "409": {"description": "mismo nombre ya registrado para ese dueño"}
                }
            },
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "summary": "Detalle de mascota con dueño y comentarios expandidos",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "pet expandida"},
                    "404": {"description": "mascota inexistente"}
                }
            }
        },
        "/pets": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "summary": "Listado de mascotas",
                "responses": {
                    "200": {"description": "pets expandidas"},
                    "404": {"description": "no hay mascotas registradas"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "pet-memorial API",
	Description:      "Backend CRUD para la aplicación de memoriales de mascotas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
