// Package docs provides the Swagger specification served at /swagger.
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
        "/api/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new account",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in with username and password",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out and revoke the session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/user": {
            "get": {
                "tags": ["auth"],
                "summary": "Get the authenticated user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/courses": {
            "get": {
                "tags": ["courses"],
                "summary": "List published courses",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["courses"],
                "summary": "Create a course",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/courses/{id}": {
            "get": {
                "tags": ["courses"],
                "summary": "Get course detail",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["courses"],
                "summary": "Update a course",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["courses"],
                "summary": "Delete a course",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/my-courses": {
            "get": {
                "tags": ["courses"],
                "summary": "List own courses",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/courses/{id}/lessons": {
            "get": {
                "tags": ["lessons"],
                "summary": "List lessons of a course",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["lessons"],
                "summary": "Create a lesson",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/lessons/{id}": {
            "put": {
                "tags": ["lessons"],
                "summary": "Update a lesson",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["lessons"],
                "summary": "Delete a lesson",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/courses/{id}/reviews": {
            "get": {
                "tags": ["reviews"],
                "summary": "List reviews of a course",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["reviews"],
                "summary": "Review a course",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/courses/{id}/enroll": {
            "post": {
                "tags": ["enrollments"],
                "summary": "Enroll in a course",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/courses/{id}/enrollments": {
            "get": {
                "tags": ["enrollments"],
                "summary": "List enrollments of a course",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/enrollments": {
            "get": {
                "tags": ["enrollments"],
                "summary": "List own enrollments",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["enrollments"],
                "summary": "Enroll in a course",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/reviews": {
            "post": {
                "tags": ["reviews"],
                "summary": "Review a course",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/enrollments/{courseId}/progress": {
            "put": {
                "tags": ["enrollments"],
                "summary": "Update enrollment progress",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/live-classes": {
            "get": {
                "tags": ["live-classes"],
                "summary": "List live classes",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["live-classes"],
                "summary": "Schedule a live class",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/live-classes/{id}": {
            "get": {
                "tags": ["live-classes"],
                "summary": "Get live class detail",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["live-classes"],
                "summary": "Update a live class",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["live-classes"],
                "summary": "Delete a live class",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/my-live-classes": {
            "get": {
                "tags": ["live-classes"],
                "summary": "List own live classes",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/live-classes/{id}/join": {
            "post": {
                "tags": ["live-classes"],
                "summary": "Join a live class",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/live-classes/{id}/leave": {
            "post": {
                "tags": ["live-classes"],
                "summary": "Leave a live class",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/ai/generate-quiz": {
            "post": {
                "tags": ["ai"],
                "summary": "Generate a quiz",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/ai/generate-structure": {
            "post": {
                "tags": ["ai"],
                "summary": "Generate a course structure",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/ai/analyze-content": {
            "post": {
                "tags": ["ai"],
                "summary": "Analyze educational content",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/ai/generate-summary": {
            "post": {
                "tags": ["ai"],
                "summary": "Summarize content",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/ai/moderate-content": {
            "post": {
                "tags": ["ai"],
                "summary": "Moderate content",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/ai/content": {
            "get": {
                "tags": ["ai"],
                "summary": "List stored AI artifacts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/dashboard/stats": {
            "get": {
                "tags": ["stats"],
                "summary": "Dashboard statistics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/upload": {
            "post": {
                "tags": ["uploads"],
                "summary": "Upload a file",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/uploads/{filename}": {
            "get": {
                "tags": ["uploads"],
                "summary": "Download an uploaded file",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "LearnHub API",
	Description:      "Online learning platform: courses, lessons, enrollments, live classes and AI content generation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
