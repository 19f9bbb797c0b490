// Package docs registers the OpenAPI document served at /swagger/. The path
// summaries here are maintained by hand alongside the controller annotations.
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
        "/auth/signin": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign up as an organizer",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/organizers/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["organizers"],
                "summary": "Get my profile",
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["organizers"],
                "summary": "Update my profile",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "List my events",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Create an event",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/events/{eventID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Get an event",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Update an event",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Delete an event",
                "responses": {"204": {"description": "No Content"}, "403": {"description": "Forbidden"}}
            }
        },
        "/events/{eventID}/publish": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Publish an event",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/{eventID}/cancel": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Cancel an event",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/{eventID}/gates": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "List gates for an event",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "Create a gate",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/events/{eventID}/guests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["guests"],
                "summary": "List guests for an event",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["guests"],
                "summary": "Register a guest",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/events/{eventID}/scans": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["scans"],
                "summary": "List scans for an event",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/gates/auth": {
            "post": {
                "tags": ["gates"],
                "summary": "Authenticate a gate device",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/gates/{gateID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "Get a gate",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "Update a gate",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "Delete a gate",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/gates/{gateID}/activate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "Activate a gate",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/gates/{gateID}/deactivate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "Deactivate a gate",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/gates/{gateID}/regenerate-code": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "Regenerate a gate's access code",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/gates/{gateID}/scans": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "List a gate's scan history",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/gates/{gateID}/session": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["gates"],
                "summary": "Revoke a gate's session",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/guests/{guestID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["guests"],
                "summary": "Get a guest",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "tags": ["guests"],
                "summary": "Update a guest",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["guests"],
                "summary": "Delete a guest",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/guests/{guestID}/rsvp": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["guests"],
                "summary": "Record a guest's RSVP",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/guests/{guestID}/checkout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["guests"],
                "summary": "Check a guest out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/guests/{guestID}/scans": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["guests"],
                "summary": "List a guest's scan history",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/scan": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["scans"],
                "summary": "Process a scan",
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/scans/{scanID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["scans"],
                "summary": "Get a scan",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EventGate API",
	Description:      "Event check-in platform: organizers manage events, gates, and guests; gate devices authenticate with access codes and process scans.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
