// Package docs registers the OpenAPI description of the dashboard API with swag.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.signupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.logoutResponse"}}
                }
            }
        },
        "/auth/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}
                }
            }
        },
        "/api/nav": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shell"],
                "summary": "Header navigation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.navResponse"}}
                }
            }
        },
        "/api/notifications": {
            "get": {
                "produces": ["application/json"],
                "tags": ["shell"],
                "summary": "Pending notifications",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.notificationsResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.CampaignSummary"}},
                    "302": {"description": "redirect to /login"}
                }
            }
        },
        "/campaigns": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List campaigns",
                "parameters": [
                    {"type": "string", "description": "Name search", "name": "q", "in": "query"},
                    {"type": "string", "description": "Status filter (All for any)", "name": "status", "in": "query"},
                    {"type": "string", "description": "Platform filter (All for any)", "name": "platform", "in": "query"},
                    {"type": "string", "description": "name, budget, spent, roi, ctr or start_date", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.campaignListResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Create campaign",
                "parameters": [
                    {"description": "Campaign", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createCampaignRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.campaignResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/ab-testing": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List A/B tests",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.abTestListResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Create A/B test",
                "parameters": [
                    {"description": "Test", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createTestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.abTestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/insights": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Audience insights",
                "parameters": [
                    {"type": "string", "description": "Segment (All Segments for any)", "name": "segment", "in": "query"},
                    {"type": "string", "description": "campaign, segment, ctr, conv_rate or roi", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc or desc (default desc)", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.insightsResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/reports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Reports",
                "parameters": [
                    {"type": "string", "description": "all, today or week", "name": "period", "in": "query"},
                    {"type": "string", "description": "all, campaign, audience, metric or system", "name": "type", "in": "query"},
                    {"type": "string", "description": "Search in title and description", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.reportsResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/ab-testing/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Get A/B test",
                "parameters": [
                    {"type": "integer", "description": "Test ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.abTestResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Identity": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["marketer", "analyst", "admin"]}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "from": {"type": "string"}
            }
        },
        "handler.signupRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "from": {"type": "string"}
            }
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/domain.Identity"},
                "redirect": {"type": "string"}
            }
        },
        "handler.logoutResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/domain.Identity"},
                "is_authenticated": {"type": "boolean"},
                "is_loading": {"type": "boolean"}
            }
        },
        "handler.link": {
            "type": "object",
            "properties": {"label": {"type": "string"}, "href": {"type": "string"}}
        },
        "handler.navResponse": {
            "type": "object",
            "properties": {
                "links": {"type": "array", "items": {"$ref": "#/definitions/handler.link"}},
                "user": {"$ref": "#/definitions/domain.Identity"},
                "initial": {"type": "string"},
                "is_loading": {"type": "boolean"}
            }
        },
        "handler.noticeResponse": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "message": {"type": "string"},
                "severity": {"type": "string", "enum": ["default", "destructive"]},
                "created_at": {"type": "string"}
            }
        },
        "handler.notificationsResponse": {
            "type": "object",
            "properties": {
                "notifications": {"type": "array", "items": {"$ref": "#/definitions/handler.noticeResponse"}}
            }
        },
        "ports.CampaignSummary": {
            "type": "object",
            "properties": {
                "campaigns": {"type": "integer"},
                "active": {"type": "integer"},
                "budget": {"type": "number"},
                "spent": {"type": "number"},
                "impressions": {"type": "integer"},
                "clicks": {"type": "integer"},
                "conversions": {"type": "integer"},
                "ctr": {"type": "number"},
                "conversion_rate": {"type": "number"}
            }
        },
        "handler.createCampaignRequest": {
            "type": "object",
            "required": ["name", "platform", "start_date", "end_date"],
            "properties": {
                "name": {"type": "string"},
                "platform": {"type": "string", "enum": ["Email", "Search", "Social", "Display"]},
                "budget": {"type": "number"},
                "start_date": {"type": "string", "example": "2025-06-01"},
                "end_date": {"type": "string", "example": "2025-08-31"},
                "segments": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.campaignResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "platform": {"type": "string"},
                "status": {"type": "string"},
                "start_date": {"type": "string"},
                "end_date": {"type": "string"},
                "budget": {"type": "number"},
                "spent": {"type": "number"},
                "roi": {"type": "number"},
                "impressions": {"type": "integer"},
                "clicks": {"type": "integer"},
                "conversions": {"type": "integer"},
                "ctr": {"type": "number"},
                "segments": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.campaignListResponse": {
            "type": "object",
            "properties": {
                "campaigns": {"type": "array", "items": {"$ref": "#/definitions/handler.campaignResponse"}},
                "total": {"type": "integer"}
            }
        },
        "handler.variantResponse": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "impressions": {"type": "integer"},
                "clicks": {"type": "integer"},
                "conversions": {"type": "integer"},
                "ctr": {"type": "number"},
                "conversion_rate": {"type": "number"}
            }
        },
        "handler.abTestResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "test_name": {"type": "string"},
                "target_audience": {"type": "string"},
                "start_date": {"type": "string"},
                "duration": {"type": "integer"},
                "variant_a": {"$ref": "#/definitions/handler.variantResponse"},
                "variant_b": {"$ref": "#/definitions/handler.variantResponse"},
                "winner": {"type": "string"},
                "improvement": {"type": "integer"},
                "ai_insights": {"type": "string"},
                "ai_tags": {"type": "array", "items": {"type": "string"}},
                "recommendations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.variantRequest": {
            "type": "object",
            "required": ["content", "title"],
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "content": {"type": "string"}
            }
        },
        "handler.createTestRequest": {
            "type": "object",
            "required": ["target_audience", "test_name"],
            "properties": {
                "test_name": {"type": "string", "maxLength": 120},
                "target_audience": {"type": "string"},
                "duration": {"type": "integer", "minimum": 0, "maximum": 90},
                "variant_a": {"$ref": "#/definitions/handler.variantRequest"},
                "variant_b": {"$ref": "#/definitions/handler.variantRequest"}
            }
        },
        "handler.insightsResponse": {
            "type": "object",
            "properties": {
                "segments": {"type": "array", "items": {"type": "string"}},
                "performance": {"type": "array", "items": {"$ref": "#/definitions/domain.SegmentPerformance"}},
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/domain.Recommendation"}}
            }
        },
        "domain.SegmentPerformance": {
            "type": "object",
            "properties": {
                "campaign": {"type": "string"},
                "segment": {"type": "string"},
                "ctr": {"type": "number"},
                "conv_rate": {"type": "number"},
                "roi": {"type": "number"}
            }
        },
        "domain.Recommendation": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "impact": {"type": "string"},
                "effort": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.ActivityMetric": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "value": {"type": "string"},
                "change": {"type": "integer"}
            }
        },
        "handler.activityResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "type": {"type": "string"},
                "status": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "occurred_at": {"type": "string"},
                "metrics": {"type": "array", "items": {"$ref": "#/definitions/domain.ActivityMetric"}},
                "actions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ports.ReportSummary": {
            "type": "object",
            "properties": {
                "positives": {"type": "array", "items": {"type": "string"}},
                "negatives": {"type": "array", "items": {"type": "string"}},
                "recommendations": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.reportsResponse": {
            "type": "object",
            "properties": {
                "activities": {"type": "array", "items": {"$ref": "#/definitions/handler.activityResponse"}},
                "total": {"type": "integer"},
                "summary": {"$ref": "#/definitions/ports.ReportSummary"}
            }
        },
        "handler.abTestListResponse": {
            "type": "object",
            "properties": {
                "tests": {"type": "array", "items": {"$ref": "#/definitions/handler.abTestResponse"}}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {"status": {"type": "string"}, "error": {"type": "string"}}
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}}
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
	Title:            "Prismatech Dashboard API",
	Description:      "Session gateway and mock marketing data for the Prismatech dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
