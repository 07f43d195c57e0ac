// Package docs holds the swagger document of the demo API. Regenerate with
// `swag init -g cmd/studio/docs.go -d ./,./internal/demoapi,./pkg/types`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "studio maintainers"
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
        "/api/echo": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Connectivity round-trip",
                "parameters": [
                    {
                        "description": "Text to echo",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.EchoRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EchoResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Backend health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthStatus"}}
                }
            }
        },
        "/api/models": {
            "get": {
                "produces": ["application/json"],
                "tags": ["models"],
                "summary": "Model catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ModelsResponse"}}
                }
            }
        },
        "/api/system": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Host snapshot (static in demo mode)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SystemInfo"}}
                }
            }
        },
        "/api/train/start": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["training"],
                "summary": "Simulate a training start",
                "parameters": [
                    {
                        "description": "Training configuration",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.TrainingConfig"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.TrainingStatus"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/train/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["training"],
                "summary": "Current training status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.TrainingStatus"}}
                }
            }
        }
    },
    "definitions": {
        "types.EchoRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string", "example": "hello"}
            }
        },
        "types.EchoResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Hello! You sent: hello"},
                "received": {"type": "object", "additionalProperties": {}},
                "timestamp": {"type": "string", "example": "2024-06-01T12:00:00Z"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"description": "HTTP status code.", "type": "integer", "example": 400},
                "error": {"description": "Error message.", "type": "string", "example": "invalid JSON body"}
            }
        },
        "types.GPUDevice": {
            "type": "object",
            "properties": {
                "index": {"type": "integer", "example": 0},
                "memory_total_gb": {"type": "number", "example": 42.41},
                "name": {"type": "string", "example": "NVIDIA A100-SXM4-40GB"}
            }
        },
        "types.GPUInfo": {
            "type": "object",
            "properties": {
                "available": {"type": "boolean"},
                "devices": {"type": "array", "items": {"$ref": "#/definitions/types.GPUDevice"}}
            }
        },
        "types.HealthStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "string", "example": "2024-06-01T12:00:00Z"}
            }
        },
        "types.MemoryInfo": {
            "type": "object",
            "properties": {
                "available_gb": {"type": "number", "example": 79.1},
                "percent_used": {"type": "number", "example": 5.2},
                "total_gb": {"type": "number", "example": 83.48}
            }
        },
        "types.Model": {
            "type": "object",
            "properties": {
                "description": {"description": "Optional short description.", "type": "string", "example": "Fast 4-bit quantized Llama 3"},
                "id": {"description": "Stable identifier for the model.", "type": "string", "example": "unsloth/llama-3-8b-bnb-4bit"},
                "name": {"description": "Human-friendly name.", "type": "string", "example": "Llama 3 8B (4-bit)"},
                "size": {"description": "Optional download size.", "type": "string", "example": "4.5 GB"}
            }
        },
        "types.ModelsResponse": {
            "type": "object",
            "properties": {
                "models": {"description": "List of available models.", "type": "array", "items": {"$ref": "#/definitions/types.Model"}}
            }
        },
        "types.SystemInfo": {
            "type": "object",
            "properties": {
                "cpu_count": {"type": "integer", "example": 12},
                "gpu": {"$ref": "#/definitions/types.GPUInfo"},
                "memory": {"$ref": "#/definitions/types.MemoryInfo"},
                "platform": {"type": "string", "example": "Linux-6.1.85+-x86_64-with-glibc2.35"},
                "python_version": {"description": "Reported by Python backends; empty otherwise.", "type": "string", "example": "3.11.13"}
            }
        },
        "types.TrainingConfig": {
            "type": "object",
            "properties": {
                "batch_size": {"type": "integer", "example": 4},
                "dataset": {"type": "string", "example": "alpaca"},
                "learning_rate": {"type": "number", "example": 0.0002},
                "lora_alpha": {"type": "integer", "example": 16},
                "lora_r": {"description": "LoRA rank.", "type": "integer", "example": 16},
                "max_seq_length": {"type": "integer", "example": 2048},
                "model_name": {"type": "string", "example": "unsloth/llama-3-8b-bnb-4bit"},
                "num_epochs": {"type": "integer", "example": 3}
            }
        },
        "types.TrainingStatus": {
            "type": "object",
            "properties": {
                "job_id": {"type": "string", "example": "job_20240601_120000"},
                "message": {"type": "string", "example": "Training simulation started (this is a demo)"},
                "status": {"type": "string", "example": "started"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "studio demo API",
	Description:      "REST surface consumed by the studio front-end, served by the built-in demo backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
