// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/erp_backend/main.go -o cmd/docs
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
        "/organizations": {
            "post": {
                "summary": "Create an organization",
                "tags": [
                    "organizations"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Organization and admin details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input"
                    },
                    "409": {
                        "description": "Slug already taken"
                    }
                },
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/orgs/{orgSlug}": {
            "get": {
                "summary": "Get an organization",
                "tags": [
                    "organizations"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Organization not found"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/statistics": {
            "get": {
                "summary": "Organization statistics",
                "tags": [
                    "organizations"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Organization not found"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/balance": {
            "post": {
                "summary": "Add balance",
                "tags": [
                    "organizations"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Amount not positive"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/balance/reconciliation": {
            "get": {
                "summary": "Compare balance with the ledger",
                "tags": [
                    "organizations"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/users": {
            "post": {
                "summary": "Create a user",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "User details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "403": {
                        "description": "Not an admin"
                    },
                    "409": {
                        "description": "Username taken"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/users/{userId}": {
            "delete": {
                "summary": "Delete a user",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "userId",
                        "name": "userId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "403": {
                        "description": "Last admin, self delete or not an admin"
                    },
                    "404": {
                        "description": "User not found"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/customers": {
            "post": {
                "summary": "Create a customer",
                "tags": [
                    "customers"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Customer details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "409": {
                        "description": "Name taken"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/customers/{customerId}": {
            "get": {
                "summary": "Get a customer with balance",
                "tags": [
                    "customers"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "customerId",
                        "name": "customerId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Customer not found"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/customers/{customerId}/collect": {
            "post": {
                "summary": "Collect money from a customer",
                "tags": [
                    "customers"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "customerId",
                        "name": "customerId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/customers/{customerId}/pay": {
            "post": {
                "summary": "Pay money to a customer",
                "tags": [
                    "customers"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "customerId",
                        "name": "customerId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/products": {
            "post": {
                "summary": "Create a product",
                "tags": [
                    "products"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Product details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "409": {
                        "description": "Barcode or description taken"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/products/{productId}": {
            "put": {
                "summary": "Update a product",
                "tags": [
                    "products"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "productId",
                        "name": "productId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Product details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Product not found"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/invoices": {
            "get": {
                "summary": "List invoices",
                "tags": [
                    "invoices"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Page, starting at 1",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Page size (default 20, max 100)",
                        "name": "pageSize",
                        "in": "query"
                    },
                    {
                        "enum": [
                            "SALE",
                            "PURCHASE"
                        ],
                        "type": "string",
                        "description": "Invoice type",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/invoices/sales": {
            "post": {
                "summary": "Create a sale invoice",
                "tags": [
                    "invoices"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Sale",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input, insufficient stock or paid out of range"
                    },
                    "404": {
                        "description": "Not found"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/invoices/purchases": {
            "post": {
                "summary": "Create a purchase invoice",
                "tags": [
                    "invoices"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Purchase",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid input or paid out of range"
                    },
                    "409": {
                        "description": "Barcode or description taken"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/invoices/{invoiceId}": {
            "get": {
                "summary": "Get an invoice",
                "tags": [
                    "invoices"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "invoiceId",
                        "name": "invoiceId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Invoice not found"
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orgs/{orgSlug}/expenses": {
            "post": {
                "summary": "Record an expense",
                "tags": [
                    "expenses"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "orgSlug",
                        "name": "orgSlug",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Expense",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Amount not positive"
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ERP Back Office API",
	Description:      "Invoices, inventory, customer balances and the organization ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
