// Package docs registra a documentação OpenAPI servida em /swagger.
// Mantenha em sincronia com as anotações godoc dos handlers (swag init -g cmd/api/main.go).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Prefeitura do Rio de Janeiro",
            "url": "https://prefeitura.rio"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Metadados da API",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RootResponse"}}}
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Status da API e do dataset",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatusResponse"}}}
            }
        },
        "/liveness": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe endpoint",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}}}
            }
        },
        "/metricas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["agregacoes"],
                "summary": "Métricas gerais",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Metricas"}}}
            }
        },
        "/focos": {
            "get": {
                "description": "Aplica os filtros (AND), ordena por FRP decrescente e limita o número de linhas. Parâmetros inválidos são ignorados. Não há limite máximo para limit.",
                "produces": ["application/json"],
                "tags": ["focos"],
                "summary": "Lista focos filtrados",
                "parameters": [
                    {"type": "string", "description": "Estado exato", "name": "estado", "in": "query"},
                    {"type": "string", "description": "Bioma exato", "name": "bioma", "in": "query"},
                    {"type": "string", "description": "Data/hora inicial inclusiva", "name": "data_inicio", "in": "query"},
                    {"type": "string", "description": "Data/hora final inclusiva", "name": "data_fim", "in": "query"},
                    {"type": "number", "description": "FRP mínimo inclusivo", "name": "frp_min", "in": "query"},
                    {"type": "number", "description": "FRP máximo inclusivo", "name": "frp_max", "in": "query"},
                    {"enum": ["baixa", "media", "alta", "critica"], "type": "string", "description": "Faixa de criticidade", "name": "criticidade", "in": "query"},
                    {"type": "integer", "default": 1000, "description": "Número máximo de linhas", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Foco"}}}}
            }
        },
        "/focos_por_bioma": {
            "get": {
                "produces": ["application/json"],
                "tags": ["agregacoes"],
                "summary": "Contagem de focos por bioma",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}}}
            }
        },
        "/focos_por_dia": {
            "get": {
                "produces": ["application/json"],
                "tags": ["agregacoes"],
                "summary": "Contagem de focos por dia",
                "parameters": [
                    {"type": "integer", "default": 30, "description": "Janela em dias", "name": "dias", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}}}
            }
        },
        "/risco_fogo": {
            "get": {
                "produces": ["application/json"],
                "tags": ["agregacoes"],
                "summary": "Distribuição do risco de fogo",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}}}
            }
        },
        "/frp_estados": {
            "get": {
                "produces": ["application/json"],
                "tags": ["agregacoes"],
                "summary": "Média de FRP por estado",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Número de estados", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "number"}}}}
            }
        },
        "/estados": {
            "get": {
                "produces": ["application/json"],
                "tags": ["agregacoes"],
                "summary": "Lista os estados",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.EstadosResponse"}}}
            }
        },
        "/biomas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["agregacoes"],
                "summary": "Lista os biomas",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.BiomasResponse"}}}
            }
        },
        "/alertas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["focos"],
                "summary": "Lista focos para alerta",
                "parameters": [
                    {"type": "boolean", "default": true, "description": "Apenas focos críticos", "name": "critico", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Foco"}}}}
            }
        },
        "/exportar/csv": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["focos"],
                "summary": "Exporta focos filtrados em CSV",
                "parameters": [
                    {"type": "string", "description": "Estado exato", "name": "estado", "in": "query"},
                    {"type": "string", "description": "Bioma exato", "name": "bioma", "in": "query"},
                    {"type": "string", "description": "Data/hora inicial inclusiva", "name": "data_inicio", "in": "query"},
                    {"type": "string", "description": "Data/hora final inclusiva", "name": "data_fim", "in": "query"}
                ],
                "responses": {"200": {"description": "incendios_brasil_<timestamp>.csv", "schema": {"type": "file"}}}
            }
        },
        "/relatorio": {
            "get": {
                "produces": ["text/html", "text/plain"],
                "tags": ["relatorio"],
                "summary": "Relatório resumido do dataset",
                "parameters": [
                    {"enum": ["html", "markdown", "texto"], "type": "string", "default": "html", "description": "Formato da resposta", "name": "formato", "in": "query"}
                ],
                "responses": {"200": {"description": "Relatório", "schema": {"type": "string"}}}
            }
        }
    },
    "definitions": {
        "models.Foco": {
            "type": "object",
            "properties": {
                "municipio": {"type": "string"},
                "estado": {"type": "string"},
                "bioma": {"type": "string"},
                "pais": {"type": "string"},
                "satelite": {"type": "string"},
                "frp": {"type": "number"},
                "data_hora_gmt": {"type": "string"},
                "risco_fogo": {"type": "string"}
            }
        },
        "models.Metricas": {
            "type": "object",
            "properties": {
                "total_focos": {"type": "integer"},
                "focos_por_estado": {"type": "object"},
                "media_frp": {"type": "number"},
                "maior_frp": {"type": "number"},
                "menor_frp": {"type": "number"},
                "desvio_frp": {"type": "number"},
                "total_estados": {"type": "integer"},
                "total_biomas": {"type": "integer"},
                "data_mais_recente": {"type": "string"}
            }
        },
        "models.DatasetInfo": {
            "type": "object",
            "properties": {
                "total_registros": {"type": "integer"},
                "colunas": {"type": "array", "items": {"type": "string"}},
                "estados_unicos": {"type": "integer"},
                "biomas_unicos": {"type": "integer"}
            }
        },
        "models.RootResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "endpoints": {"type": "array", "items": {"type": "string"}},
                "dataset_info": {"$ref": "#/definitions/models.DatasetInfo"}
            }
        },
        "models.Periodo": {
            "type": "object",
            "properties": {
                "inicio": {"type": "string"},
                "fim": {"type": "string"}
            }
        },
        "models.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dataset_size": {"type": "integer"},
                "colunas": {"type": "array", "items": {"type": "string"}},
                "periodo_cobertura": {"$ref": "#/definitions/models.Periodo"},
                "memoria_usage": {"type": "string"}
            }
        },
        "models.EstadosResponse": {
            "type": "object",
            "properties": {"estados": {"type": "array", "items": {"type": "string"}}}
        },
        "models.BiomasResponse": {
            "type": "object",
            "properties": {"biomas": {"type": "array", "items": {"type": "string"}}}
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "integer"}
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
	Title:            "API Dashboard de Incêndios",
	Description:      "API somente leitura sobre os focos de incêndio detectados pelo INPE",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
