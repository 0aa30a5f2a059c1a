// Package docs holds the OpenAPI document for the copsoq api
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{.Description}}",
    "version": "{{.Version}}"
  },
  "paths": {
    "/meta/health": {
      "get": {"tags": ["Meta"], "summary": "Health check", "responses": {"200": {"description": "ok"}}}
    },
    "/meta/ready": {
      "get": {"tags": ["Meta"], "summary": "Readiness probe with dependency checks", "responses": {"200": {"description": "ok"}}}
    },
    "/meta/version": {
      "get": {"tags": ["Meta"], "summary": "Build and version info", "responses": {"200": {"description": "ok"}}}
    },
    "/meta/service": {
      "get": {"tags": ["Meta"], "summary": "Service info and uptime", "responses": {"200": {"description": "ok"}}}
    },
    "/meta/instrument": {
      "get": {"tags": ["Meta"], "summary": "Instrument table revision and risk cut points", "responses": {"200": {"description": "ok"}}}
    },
    "/laudos/domains": {
      "get": {"tags": ["Laudos"], "summary": "List the ten COPSOQ III domains", "responses": {"200": {"description": "ok"}}}
    },
    "/laudos/preview": {
      "post": {
        "tags": ["Laudos"],
        "summary": "Score an ad hoc response set without persisting",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/PreviewInput"}}}},
        "responses": {"200": {"description": "laudo payload"}}
      }
    },
    "/laudos": {
      "post": {
        "tags": ["Laudos"],
        "summary": "Issue the laudo of a lote",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/GenerateInput"}}}},
        "responses": {"201": {"description": "issued laudo"}, "404": {"description": "lote not found"}, "409": {"description": "already issued or no finished assessments"}}
      }
    },
    "/laudos/{loteID}": {
      "get": {
        "tags": ["Laudos"],
        "summary": "Fetch the laudo issued for a lote",
        "parameters": [{"name": "loteID", "in": "path", "required": true, "schema": {"type": "integer", "format": "int64"}}],
        "responses": {"200": {"description": "laudo"}, "404": {"description": "not issued"}}
      }
    }
  },
  "components": {
    "schemas": {
      "ResponseInput": {
        "type": "object",
        "required": ["grupo", "valor"],
        "properties": {
          "grupo": {"type": "integer", "minimum": 1, "maximum": 10},
          "valor": {"type": "number", "enum": [0, 25, 50, 75, 100]}
        }
      },
      "EntityInput": {
        "type": "object",
        "required": ["empresa_nome", "periodo_inicio", "periodo_fim"],
        "properties": {
          "empresa_nome": {"type": "string", "maxLength": 200},
          "empresa_cnpj": {"type": "string", "minLength": 14, "maxLength": 14},
          "clinica_nome": {"type": "string", "maxLength": 200},
          "lote_codigo": {"type": "string", "maxLength": 64},
          "periodo_inicio": {"type": "string", "format": "date-time"},
          "periodo_fim": {"type": "string", "format": "date-time"},
          "respondentes": {"type": "integer", "minimum": 0}
        }
      },
      "PreviewInput": {
        "type": "object",
        "required": ["entity"],
        "properties": {
          "entity": {"$ref": "#/components/schemas/EntityInput"},
          "responses": {"type": "array", "items": {"$ref": "#/components/schemas/ResponseInput"}},
          "observacoes": {"type": "string", "maxLength": 4000}
        }
      },
      "GenerateInput": {
        "type": "object",
        "required": ["lote_id", "emissor_id"],
        "properties": {
          "lote_id": {"type": "integer", "format": "int64", "minimum": 1},
          "emissor_id": {"type": "string", "maxLength": 64},
          "observacoes": {"type": "string", "maxLength": 4000}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "COPSOQ API",
	Description:      "Psychosocial risk scoring and laudo generation for COPSOQ III assessments",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
