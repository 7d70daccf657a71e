// Package docs holds the Swagger document served at /api-docs.
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
        "/api/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "API banner",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}}
                }
            }
        },
        "/api/shop": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "List shops",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Shop"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Register the seller whose details are printed on invoices",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "Register a shop",
                "parameters": [
                    {"description": "Shop details", "name": "shop", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateShopRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Shop"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/shop/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shops"],
                "summary": "Get a shop",
                "parameters": [
                    {"type": "string", "description": "Shop ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Shop"}},
                    "404": {"description": "Shop not found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/invoices": {
            "get": {
                "description": "Invoices newest first",
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "List invoices",
                "parameters": [
                    {"type": "integer", "default": 0, "description": "Number of invoices to skip", "name": "skip", "in": "query"},
                    {"type": "integer", "default": 100, "description": "Maximum number of invoices", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Invoice"}}},
                    "400": {"description": "Invalid query parameters", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Allocate the next invoice number, compute CGST/SGST totals and the amount in words, and store the invoice",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Create an invoice",
                "parameters": [
                    {"description": "Invoice details", "name": "invoice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CreateInvoiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Invoice"}},
                    "400": {"description": "Bad request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "409": {"description": "Invoice number already allocated", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/invoices/search/{query}": {
            "get": {
                "description": "Case-insensitive match on customer name, customer mobile and invoice number",
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Search invoices",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "query", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Invoice"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/invoices/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Get an invoice",
                "parameters": [
                    {"type": "string", "description": "Invoice ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Invoice"}},
                    "404": {"description": "Invoice not found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Delete an invoice",
                "parameters": [
                    {"type": "string", "description": "Invoice ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MessageResponse"}},
                    "404": {"description": "Invoice not found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/invoices/{id}/pdf": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["invoices"],
                "summary": "Download an invoice as PDF",
                "parameters": [
                    {"type": "string", "description": "Invoice ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Invoice not found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/api/invoices/{id}/archive": {
            "post": {
                "description": "Render the invoice and upload the PDF to object storage",
                "produces": ["application/json"],
                "tags": ["invoices"],
                "summary": "Archive an invoice PDF",
                "parameters": [
                    {"type": "string", "description": "Invoice ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ArchiveResponse"}},
                    "404": {"description": "Invoice not found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "503": {"description": "Archiving not configured", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports whether the service and its storage are reachable",
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "Storage unavailable", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Customer": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "mobile": {"type": "string"},
                "name": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "domain.Invoice": {
            "type": "object",
            "properties": {
                "amount_in_words": {"type": "string"},
                "created_at": {"type": "string"},
                "customer_details": {"$ref": "#/definitions/domain.Customer"},
                "final_amount": {"type": "integer"},
                "id": {"type": "string"},
                "invoice_number": {"type": "string"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/domain.LineItem"}},
                "qr_code_base64": {"type": "string"},
                "reverse_charge": {"type": "boolean"},
                "round_off": {"type": "number"},
                "shop_details": {"$ref": "#/definitions/domain.Shop"},
                "total_cgst": {"type": "number"},
                "total_sgst": {"type": "number"},
                "total_tax": {"type": "number"},
                "total_taxable_value": {"type": "number"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.LineItem": {
            "type": "object",
            "properties": {
                "discount_percentage": {"type": "number"},
                "gst_rate": {"type": "number"},
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_rate": {"type": "number"}
            }
        },
        "domain.Shop": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "created_at": {"type": "string"},
                "gst_number": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "model.ArchiveResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"}
            }
        },
        "model.CreateInvoiceRequest": {
            "type": "object",
            "required": ["products"],
            "properties": {
                "customer_details": {"$ref": "#/definitions/model.CustomerDetailsRequest"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/model.ProductItemRequest"}},
                "qr_code_base64": {"type": "string"},
                "reverse_charge": {"type": "boolean"},
                "shop_details": {"$ref": "#/definitions/model.ShopDetailsRequest"}
            }
        },
        "model.CreateShopRequest": {
            "type": "object",
            "required": ["address", "gst_number", "name", "state"],
            "properties": {
                "address": {"type": "string"},
                "gst_number": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "model.CustomerDetailsRequest": {
            "type": "object",
            "required": ["mobile", "name"],
            "properties": {
                "address": {"type": "string"},
                "mobile": {"type": "string"},
                "name": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "model.ErrorDetail": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "array", "items": {"$ref": "#/definitions/model.ErrorDetail"}},
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "storage": {"type": "string"}
            }
        },
        "model.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "model.ProductItemRequest": {
            "type": "object",
            "required": ["name", "quantity", "unit_rate"],
            "properties": {
                "discount_percentage": {"type": "number", "example": 0},
                "gst_rate": {"type": "number", "example": 18},
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_rate": {"type": "number"}
            }
        },
        "model.ShopDetailsRequest": {
            "type": "object",
            "required": ["address", "gst_number", "name", "state"],
            "properties": {
                "address": {"type": "string"},
                "created_at": {"type": "string", "format": "date-time"},
                "gst_number": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "state": {"type": "string"}
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
	Title:            "GST Billing API",
	Description:      "Invoices for Indian GST: CGST/SGST totals, amounts in words and PDF tax invoices.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
