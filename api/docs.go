// Package api contains the Swagger documentation of the handler annotations
// in internal/. Rebuild it with "swag init --outputTypes go -o api" after
// changing an annotation.
package api

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
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/budget-income/create": {
            "post": {
                "description": "Creates a budget income entry. The body can be wrapped in \"propertyData\".",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Income"
                ],
                "summary": "Create budget income",
                "parameters": [
                    {
                        "description": "Budget Income",
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetIncomeEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget-income/delete/{id}": {
            "delete": {
                "description": "Deletes a budget income entry",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Income"
                ],
                "summary": "Delete budget income",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget-income/get/{id}": {
            "get": {
                "description": "Returns a single budget income entry",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Income"
                ],
                "summary": "Get budget income entry",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget-income/getAll": {
            "get": {
                "description": "Returns all budget income entries, or those of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Income"
                ],
                "summary": "List budget income",
                "parameters": [
                    {
                        "description": "Glob pattern for the name",
                        "name": "match",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget-income/getAll/{categoryId}": {
            "get": {
                "description": "Returns all budget income entries, or those of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Income"
                ],
                "summary": "List budget income",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Glob pattern for the name",
                        "name": "match",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget-income/update/{id}": {
            "put": {
                "description": "Updates name, amount, document and status of a budget income entry and records the update in its audit log. Repeated updates with the same name amend the same log entry.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget Income"
                ],
                "summary": "Update budget income",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Budget Income",
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetIncomeEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget/create": {
            "post": {
                "description": "Creates a budget for a category. Every owner of the category gets a budget income entry with an amount of zero in the new budget.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Create budget",
                "parameters": [
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.BudgetCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget/delete/{id}": {
            "delete": {
                "description": "Deletes a budget. Its entries are kept and detached from it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Delete budget",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetDeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget/getAll/{categoryId}": {
            "get": {
                "description": "Returns the budgets of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Get budgets",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget/getData/{categoryId}": {
            "get": {
                "description": "Returns the budget income and outcome entries of a category with their totals, optionally limited to one budget",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Get budget data",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Only entries of this budget",
                        "name": "budgetId",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetDataResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/budget/update/{id}": {
            "put": {
                "description": "Renames a budget",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Update budget",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Budget, only the name is used",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.BudgetCreate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/category/create": {
            "post": {
                "description": "Creates a new category",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Create category",
                "parameters": [
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CategoryCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/category/delete/{id}": {
            "delete": {
                "description": "Deletes a category with its property information and committee members. Ledger entries of the category are kept and detached from it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Delete category",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryDeleteResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/category/getAll": {
            "get": {
                "description": "Returns all categories ordered by name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Get categories",
                "parameters": [
                    {
                        "description": "Glob pattern for the name",
                        "name": "match",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/category/update/{id}": {
            "put": {
                "description": "Replaces name and currency of a category. Existing ledger entries keep their currency.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Update category",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CategoryCreate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/committee/create": {
            "post": {
                "description": "Creates a committee member",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Committee"
                ],
                "summary": "Create committee member",
                "parameters": [
                    {
                        "description": "Committee member",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CommitteeMemberCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.CommitteeMemberResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/committee/delete/{id}": {
            "delete": {
                "description": "Deletes a committee member",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Committee"
                ],
                "summary": "Delete committee member",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CommitteeMemberResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/committee/get/{id}": {
            "get": {
                "description": "Returns a single committee member",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Committee"
                ],
                "summary": "Get committee member",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CommitteeMemberResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/committee/getAll": {
            "get": {
                "description": "Returns all committee members, or those of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Committee"
                ],
                "summary": "Get committee members",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CommitteeMemberListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/committee/getAll/{categoryId}": {
            "get": {
                "description": "Returns all committee members, or those of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Committee"
                ],
                "summary": "Get committee members",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CommitteeMemberListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/committee/update/{id}": {
            "put": {
                "description": "Replaces all fields of a committee member except its category",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Committee"
                ],
                "summary": "Update committee member",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Committee member",
                        "name": "member",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CommitteeMemberCreate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.CommitteeMemberResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/income/create": {
            "post": {
                "description": "Creates an income entry for an owner with all twelve months set to zero",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Income"
                ],
                "summary": "Create income",
                "parameters": [
                    {
                        "description": "Income",
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.IncomeCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/income/delete/{id}": {
            "delete": {
                "description": "Deletes an income entry",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Income"
                ],
                "summary": "Delete income",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/income/get/{id}": {
            "get": {
                "description": "Returns a single income entry",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Income"
                ],
                "summary": "Get income entry",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/income/getAll": {
            "get": {
                "description": "Returns all income entries, or those of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Income"
                ],
                "summary": "List income",
                "parameters": [
                    {
                        "description": "Glob pattern for the owner name",
                        "name": "match",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/income/getAll/{categoryId}": {
            "get": {
                "description": "Returns all income entries, or those of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Income"
                ],
                "summary": "List income",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Glob pattern for the owner name",
                        "name": "match",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/income/update/{id}": {
            "put": {
                "description": "Sets the amount paid and the payment status for one month and records it in the audit log",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Income"
                ],
                "summary": "Update income",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Month update",
                        "name": "income",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.IncomeUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/outcome/create": {
            "post": {
                "description": "Creates an outcome entry",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Outcome"
                ],
                "summary": "Create outcome",
                "parameters": [
                    {
                        "description": "Outcome",
                        "name": "outcome",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.OutcomeCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/outcome/delete/{id}": {
            "delete": {
                "description": "Deletes an outcome entry",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Outcome"
                ],
                "summary": "Delete outcome",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/outcome/get/{id}": {
            "get": {
                "description": "Returns a single outcome entry",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Outcome"
                ],
                "summary": "Get outcome entry",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/outcome/getAll": {
            "get": {
                "description": "Returns all outcome entries, or those of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Outcome"
                ],
                "summary": "List outcome",
                "parameters": [
                    {
                        "description": "Glob pattern for the name",
                        "name": "match",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/outcome/getAll/{categoryId}": {
            "get": {
                "description": "Returns all outcome entries, or those of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Outcome"
                ],
                "summary": "List outcome",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Glob pattern for the name",
                        "name": "match",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/outcome/update/{id}": {
            "put": {
                "description": "Sets the amount spent in one period and records it in the audit log",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Outcome"
                ],
                "summary": "Update outcome",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Period update",
                        "name": "outcome",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.OutcomeUpdate"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.LedgerEntryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/print/commiti": {
            "get": {
                "description": "Renders a list of all committee members, or those of a category",
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Committee listing",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/print/generate-pdf": {
            "get": {
                "description": "Renders the payments of all owners of a category for one month of the current year",
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Monthly report",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Month name, number or YYYY-MM",
                        "name": "month",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/print/generate-pdf-owner": {
            "get": {
                "description": "Renders the payments of one owner for all months of the year, optionally signed by a committee member",
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Owner report",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "ID of the income entry",
                        "name": "ownerId",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "ID of the signing committee member",
                        "name": "committeeId",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/print/generate-pdfYear": {
            "get": {
                "description": "Renders the payments of all owners of a category from January through the current month",
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Year to date report",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/print/owner": {
            "get": {
                "description": "Renders a list of all owners, or those of a category",
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Owner listing",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/print/propertyinformation": {
            "get": {
                "description": "Renders a list of all property information, or that of a category",
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Property information listing",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/print/units": {
            "get": {
                "description": "Renders a list of all units, or those of a category",
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Unit listing",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/property-information/create": {
            "post": {
                "description": "Creates the property information printed on reports of a category",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Property Information"
                ],
                "summary": "Create property information",
                "parameters": [
                    {
                        "description": "Property Information",
                        "name": "property",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.PropertyInformationCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.PropertyInformationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/property-information/delete/{id}": {
            "delete": {
                "description": "Deletes property information",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Property Information"
                ],
                "summary": "Delete property information",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.PropertyInformationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/property-information/getAll/{categoryId}": {
            "get": {
                "description": "Returns the property information of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Property Information"
                ],
                "summary": "Get property information",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.PropertyInformationListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/units/create": {
            "post": {
                "description": "Creates a unit with a generated six digit unit code",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Units"
                ],
                "summary": "Create unit",
                "parameters": [
                    {
                        "description": "Unit",
                        "name": "unit",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UnitCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/controllers.UnitResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/units/delete/{id}": {
            "delete": {
                "description": "Deletes a unit",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Units"
                ],
                "summary": "Delete unit",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UnitResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/units/getAll/{categoryId}": {
            "get": {
                "description": "Returns the units of a category",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Units"
                ],
                "summary": "Get units",
                "parameters": [
                    {
                        "description": "ID of the category",
                        "name": "categoryId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.UnitListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httperror.Error"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.BudgetData": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "number",
                    "description": "IncomeTotal minus OutcomeTotal",
                    "example": 250
                },
                "income": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.LedgerEntry"
                    },
                    "description": "Budget income entries"
                },
                "incomeTotal": {
                    "type": "number",
                    "description": "Sum of all budget income",
                    "example": 900
                },
                "outcome": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.LedgerEntry"
                    },
                    "description": "Outcome entries"
                },
                "outcomeTotal": {
                    "type": "number",
                    "example": 650
                }
            }
        },
        "controllers.BudgetDataResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/controllers.BudgetData"
                },
                "message": {
                    "type": "string",
                    "example": "Budget data fetched successfully"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.BudgetDeleteResponse": {
            "type": "object",
            "properties": {
                "category": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Budget"
                        }
                    ],
                    "description": "The deleted budget"
                },
                "detached": {
                    "type": "integer",
                    "description": "Number of ledger entries that were detached from the budget",
                    "example": 12
                },
                "message": {
                    "type": "string",
                    "example": "Budget deleted successfully"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.BudgetIncomeEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount, required. Zero is allowed",
                    "example": 150
                },
                "budgetId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the budget, ignored on update",
                    "example": "5c1a5a3e-8a8e-4b51-9a38-52b7b8f2de3c"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category, ignored on update",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "document": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Document"
                        }
                    ],
                    "description": "Attached document"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the owner",
                    "example": "Alice"
                },
                "status": {
                    "type": "string",
                    "description": "Payment status",
                    "example": "late paid"
                }
            }
        },
        "controllers.BudgetListResponse": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Budget"
                    },
                    "description": "Budgets of the category"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.BudgetResponse": {
            "type": "object",
            "properties": {
                "category": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Budget"
                        }
                    ],
                    "description": "The budget"
                },
                "message": {
                    "type": "string",
                    "example": "Budget created successfully"
                },
                "seeded": {
                    "type": "integer",
                    "description": "Number of budget income entries created for the owners of the category",
                    "example": 12
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.Category": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "currency": {
                    "type": "string",
                    "description": "ISO 4217 code copied to new ledger entries",
                    "example": "EUR"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/controllers.CategoryLinks"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Sunset Gardens"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "controllers.CategoryDeleteResponse": {
            "type": "object",
            "properties": {
                "detached": {
                    "type": "integer",
                    "description": "Number of ledger entries that were detached from the category",
                    "example": 12
                },
                "message": {
                    "type": "string",
                    "example": "Category deleted successfully"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.CategoryLinks": {
            "type": "object",
            "properties": {
                "budget": {
                    "type": "string",
                    "description": "Budget overview of the category",
                    "example": "https://example.com/api/budget/getData/1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "budgetIncome": {
                    "type": "string",
                    "description": "Budget income entries of the category",
                    "example": "https://example.com/api/budget-income/getAll/1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "income": {
                    "type": "string",
                    "description": "Income entries of the category",
                    "example": "https://example.com/api/income/getAll/1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "outcome": {
                    "type": "string",
                    "description": "Outcome entries of the category",
                    "example": "https://example.com/api/outcome/getAll/1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "self": {
                    "type": "string",
                    "example": "https://example.com/api/category/update/1e777d24-3f5b-4c43-8000-04f65f895578"
                }
            }
        },
        "controllers.CategoryListResponse": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.Category"
                    }
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.CategoryResponse": {
            "type": "object",
            "properties": {
                "category": {
                    "$ref": "#/definitions/controllers.Category"
                },
                "message": {
                    "type": "string",
                    "example": "Category created successfully!"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.CommitteeMemberListResponse": {
            "type": "object",
            "properties": {
                "properties": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CommitteeMember"
                    }
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.CommitteeMemberResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Property Committee created successfully!"
                },
                "property": {
                    "$ref": "#/definitions/models.CommitteeMember"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.IncomeCreate": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "contribution": {
                    "type": "number",
                    "description": "Expected amount per month",
                    "example": 50
                },
                "email": {
                    "type": "string",
                    "description": "Email of the owner",
                    "example": "alice@example.com"
                },
                "ownerName": {
                    "type": "string",
                    "description": "Name of the owner, required",
                    "example": "Alice"
                },
                "unit": {
                    "type": "string",
                    "description": "Unit of the owner",
                    "example": "A-12"
                }
            }
        },
        "controllers.IncomeUpdate": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount paid, required",
                    "example": 50
                },
                "month": {
                    "type": "string",
                    "description": "Month name, number or YYYY-MM",
                    "example": "March"
                },
                "status": {
                    "type": "string",
                    "description": "Payment status, defaults to normal",
                    "example": "pay in advance"
                }
            }
        },
        "controllers.LedgerEntry": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount, budget income only",
                    "example": 150
                },
                "budgetId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the budget, null if the entry is not part of one",
                    "example": "5c1a5a3e-8a8e-4b51-9a38-52b7b8f2de3c"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category, null if it was deleted",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "contribution": {
                    "type": "number",
                    "description": "Expected amount per month, income only",
                    "example": 50
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "currency": {
                    "type": "string",
                    "description": "ISO 4217 code",
                    "example": "USD"
                },
                "document": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Document"
                        }
                    ],
                    "description": "Attached document"
                },
                "email": {
                    "type": "string",
                    "description": "Owner email, income only",
                    "example": "alice@example.com"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "kind": {
                    "type": "string",
                    "description": "Kind of the entry",
                    "example": "income"
                },
                "links": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.LedgerEntryLinks"
                        }
                    ],
                    "description": "Links for the entry"
                },
                "name": {
                    "type": "string",
                    "description": "Owner name for income, label otherwise",
                    "example": "Alice"
                },
                "ownerName": {
                    "type": "string",
                    "description": "Owner name, income only",
                    "example": "Alice"
                },
                "periodAmounts": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    },
                    "description": "Amounts per period"
                },
                "status": {
                    "type": "string",
                    "description": "Payment status, budget income only",
                    "example": "Not Updated"
                },
                "statuses": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    },
                    "description": "Payment status per period"
                },
                "totalAmount": {
                    "type": "number",
                    "description": "Sum of all period amounts",
                    "example": 150
                },
                "unit": {
                    "type": "string",
                    "description": "Unit of the owner, income only",
                    "example": "A-12"
                },
                "updateLog": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.AuditLogEntry"
                    },
                    "description": "Audit log of all mutations"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                },
                "version": {
                    "type": "integer",
                    "description": "Incremented on every update",
                    "example": 3
                }
            }
        },
        "controllers.LedgerEntryLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The entry itself",
                    "example": "https://example.com/api/income/get/65392deb-5e92-4268-b114-297faad6cdce"
                }
            }
        },
        "controllers.LedgerEntryListResponse": {
            "type": "object",
            "properties": {
                "properties": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.LedgerEntry"
                    },
                    "description": "List of ledger entries"
                },
                "success": {
                    "type": "boolean",
                    "description": "If the request was successful",
                    "example": true
                }
            }
        },
        "controllers.LedgerEntryResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "description": "Human readable result",
                    "example": "Income updated successfully!"
                },
                "property": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/controllers.LedgerEntry"
                        }
                    ],
                    "description": "The ledger entry"
                },
                "success": {
                    "type": "boolean",
                    "description": "If the request was successful",
                    "example": true
                }
            }
        },
        "controllers.OutcomeCreate": {
            "type": "object",
            "properties": {
                "budgetId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the budget",
                    "example": "5c1a5a3e-8a8e-4b51-9a38-52b7b8f2de3c"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the expense, required",
                    "example": "Gardening"
                },
                "periodAmounts": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    },
                    "description": "Initial amounts per period"
                }
            }
        },
        "controllers.OutcomeUpdate": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount spent, required",
                    "example": 120
                },
                "month": {
                    "type": "string",
                    "description": "Period, free form",
                    "example": "Q2"
                }
            }
        },
        "controllers.PropertyInformationListResponse": {
            "type": "object",
            "properties": {
                "properties": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.PropertyInformation"
                    }
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.PropertyInformationResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Property Information created successfully!"
                },
                "property": {
                    "$ref": "#/definitions/models.PropertyInformation"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.UnitListResponse": {
            "type": "object",
            "properties": {
                "properties": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Unit"
                    }
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.UnitResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Units created successfully!"
                },
                "property": {
                    "$ref": "#/definitions/models.Unit"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "httperror.Error": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "description": "The error",
                    "example": "please provide all fields"
                },
                "success": {
                    "type": "boolean",
                    "description": "Always false",
                    "example": false
                }
            }
        },
        "models.AuditLogEntry": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "description": "Amount recorded by the mutation",
                    "example": 150
                },
                "currency": {
                    "type": "string",
                    "description": "Currency at the time of the mutation",
                    "example": "USD"
                },
                "date": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time of the last mutation recorded in this entry",
                    "example": "2024-05-03T08:12:44Z"
                },
                "kind": {
                    "type": "string",
                    "description": "Kind of operation",
                    "example": "updated"
                },
                "operation": {
                    "type": "string",
                    "description": "Human readable description",
                    "example": "Alice Budget Income updated"
                },
                "period": {
                    "type": "string",
                    "description": "The period the mutation affected, if any",
                    "example": "March"
                },
                "status": {
                    "type": "string",
                    "description": "Payment status at the time of the mutation",
                    "example": "late paid"
                },
                "subject": {
                    "type": "string",
                    "description": "Name the operation was recorded for",
                    "example": "Alice"
                }
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "currency": {
                    "type": "string",
                    "description": "Copied from the category on creation",
                    "example": "USD"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the budget",
                    "example": "Budget 2024"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.BudgetCreate": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category, required",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the budget, required",
                    "example": "Budget 2024"
                }
            }
        },
        "models.CategoryCreate": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "description": "ISO 4217 code copied to new ledger entries",
                    "example": "EUR"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the category",
                    "example": "Sunset Gardens"
                }
            }
        },
        "models.CommitteeMember": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string",
                    "description": "Bank account",
                    "example": "DE02120300000000202051"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "currency": {
                    "type": "string",
                    "description": "Currency of the account",
                    "example": "USD"
                },
                "email": {
                    "type": "string",
                    "description": "Email address",
                    "example": "bob@example.com"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the member",
                    "example": "Bob Miller"
                },
                "phone": {
                    "type": "string",
                    "description": "Phone number",
                    "example": "+1 555 0100"
                },
                "position": {
                    "type": "string",
                    "description": "Position in the committee",
                    "example": "Treasurer"
                },
                "signature": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Document"
                        }
                    ],
                    "description": "Signature image printed on reports"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.CommitteeMemberCreate": {
            "type": "object",
            "properties": {
                "account": {
                    "type": "string",
                    "description": "Bank account",
                    "example": "DE02120300000000202051"
                },
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "currency": {
                    "type": "string",
                    "description": "Currency of the account",
                    "example": "USD"
                },
                "email": {
                    "type": "string",
                    "description": "Email address",
                    "example": "bob@example.com"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the member",
                    "example": "Bob Miller"
                },
                "phone": {
                    "type": "string",
                    "description": "Phone number",
                    "example": "+1 555 0100"
                },
                "position": {
                    "type": "string",
                    "description": "Position in the committee",
                    "example": "Treasurer"
                },
                "signature": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Document"
                        }
                    ],
                    "description": "Signature image printed on reports"
                }
            }
        },
        "models.Document": {
            "type": "object",
            "properties": {
                "publicId": {
                    "type": "string",
                    "description": "ID of the file in the storage",
                    "example": "receipts/ab12cd"
                },
                "url": {
                    "type": "string",
                    "description": "Public URL of the file",
                    "example": "https://files.example.com/receipts/ab12cd.pdf"
                }
            }
        },
        "models.PropertyInformation": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "currency": {
                    "type": "string",
                    "description": "Currency of the property",
                    "example": "USD"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "logo": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Document"
                        }
                    ],
                    "description": "Logo printed on reports"
                },
                "numberOfUnits": {
                    "type": "string",
                    "description": "Number of units",
                    "example": "24"
                },
                "ownerTitle": {
                    "type": "string",
                    "description": "Title printed on reports",
                    "example": "Sunset Gardens Owners Association"
                },
                "pAddress": {
                    "type": "string",
                    "description": "Street address",
                    "example": "12 Harbor Road"
                },
                "pLocation": {
                    "type": "string",
                    "description": "City or area",
                    "example": "Springfield"
                },
                "pName": {
                    "type": "string",
                    "description": "Name of the property",
                    "example": "Sunset Gardens"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.PropertyInformationCreate": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "currency": {
                    "type": "string",
                    "description": "Currency of the property",
                    "example": "USD"
                },
                "logo": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Document"
                        }
                    ],
                    "description": "Logo printed on reports"
                },
                "numberOfUnits": {
                    "type": "string",
                    "description": "Number of units",
                    "example": "24"
                },
                "ownerTitle": {
                    "type": "string",
                    "description": "Title printed on reports",
                    "example": "Sunset Gardens Owners Association"
                },
                "pAddress": {
                    "type": "string",
                    "description": "Street address",
                    "example": "12 Harbor Road"
                },
                "pLocation": {
                    "type": "string",
                    "description": "City or area",
                    "example": "Springfield"
                },
                "pName": {
                    "type": "string",
                    "description": "Name of the property",
                    "example": "Sunset Gardens"
                }
            }
        },
        "models.Unit": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2024-04-02T19:28:44.491514Z"
                },
                "currency": {
                    "type": "string",
                    "description": "Currency of the fee",
                    "example": "USD"
                },
                "fee": {
                    "type": "number",
                    "description": "Monthly fee",
                    "example": 120
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "type": {
                    "type": "string",
                    "description": "Description of the unit",
                    "example": "Two bedroom apartment"
                },
                "unitCode": {
                    "type": "string",
                    "description": "Six digit code, generated on creation",
                    "example": "482913"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2024-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.UnitCreate": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the category",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "currency": {
                    "type": "string",
                    "description": "Defaults to the currency of the category",
                    "example": "USD"
                },
                "fee": {
                    "type": "number",
                    "description": "Monthly fee, required",
                    "example": 120
                },
                "type": {
                    "type": "string",
                    "description": "Description of the unit, required",
                    "example": "Two bedroom apartment"
                }
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "budgetIncome": {
                    "type": "string",
                    "description": "List of budget income entries",
                    "example": "https://example.com/api/budget-income/getAll"
                },
                "budgets": {
                    "type": "string",
                    "description": "Budget endpoints",
                    "example": "https://example.com/api/budget"
                },
                "categories": {
                    "type": "string",
                    "description": "List of categories",
                    "example": "https://example.com/api/category/getAll"
                },
                "committee": {
                    "type": "string",
                    "description": "Committee endpoints",
                    "example": "https://example.com/api/committee"
                },
                "docs": {
                    "type": "string",
                    "description": "Swagger API documentation",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "type": "string",
                    "description": "Healthz endpoint",
                    "example": "https://example.com/api/healthz"
                },
                "income": {
                    "type": "string",
                    "description": "List of income entries",
                    "example": "https://example.com/api/income/getAll"
                },
                "metrics": {
                    "type": "string",
                    "description": "Endpoint returning Prometheus metrics",
                    "example": "https://example.com/api/metrics"
                },
                "outcome": {
                    "type": "string",
                    "description": "List of outcome entries",
                    "example": "https://example.com/api/outcome/getAll"
                },
                "print": {
                    "type": "string",
                    "description": "Report endpoints",
                    "example": "https://example.com/api/print"
                },
                "propertyInformation": {
                    "type": "string",
                    "description": "Property information endpoints",
                    "example": "https://example.com/api/property-information"
                },
                "units": {
                    "type": "string",
                    "description": "Unit endpoints",
                    "example": "https://example.com/api/units"
                },
                "version": {
                    "type": "string",
                    "description": "Endpoint returning the version of the backend",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "description": "the running version of the backend",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ],
                    "description": "Data object for the version endpoint"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
