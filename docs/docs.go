// Package docs holds the swagger template for the FitCircle API.
// Regenerate with: swag init -g cmd/main.go -o docs
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "profile"},
        {"name": "progress"},
        {"name": "weight"},
        {"name": "workouts"},
        {"name": "meals"},
        {"name": "family"}
    ],
    "paths": {
        "/profile": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Get profile", "responses": {"200": {"description": "Profile retrieved successfully"}}},
            "patch": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Update personal data", "responses": {"200": {"description": "Profile updated successfully"}}}
        },
        "/profile/goals": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Update goals", "responses": {"200": {"description": "Goals updated successfully"}}}
        },
        "/profile/preferences": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Get dietary preferences", "responses": {"200": {"description": "Preferences retrieved successfully"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["profile"], "summary": "Save dietary preferences", "responses": {"200": {"description": "Preferences saved successfully"}}}
        },
        "/progress": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["progress"], "summary": "Get daily progress", "responses": {"200": {"description": "Progress retrieved successfully"}}}
        },
        "/progress/history": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["progress"], "summary": "Progress history", "responses": {"200": {"description": "Progress history retrieved successfully"}}}
        },
        "/progress/{field}": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["progress"], "summary": "Add to a daily counter", "parameters": [{"type": "string", "name": "field", "in": "path", "required": true, "enum": ["calories_consumed", "calories_burned", "steps", "water_ml"]}], "responses": {"200": {"description": "Progress logged successfully"}}}
        },
        "/weight": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["weight"], "summary": "Recent weight entries", "responses": {"200": {"description": "Weight history retrieved successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["weight"], "summary": "Log weight", "responses": {"201": {"description": "Weight logged successfully"}}}
        },
        "/workouts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["workouts"], "summary": "Workout plan of a day", "responses": {"200": {"description": "Workout plan retrieved successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["workouts"], "summary": "Add an exercise", "responses": {"201": {"description": "Exercise added successfully"}}}
        },
        "/workouts/log": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["workouts"], "summary": "Log burned calories", "responses": {"200": {"description": "Workout logged successfully"}}}
        },
        "/workouts/{id}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["workouts"], "summary": "Delete an exercise", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Exercise deleted successfully"}}}
        },
        "/workouts/{id}/toggle": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["workouts"], "summary": "Toggle an exercise", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "Exercise updated successfully"}}}
        },
        "/meals": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["meals"], "summary": "Logged meals of a day", "responses": {"200": {"description": "Meals retrieved successfully"}}}
        },
        "/meals/log": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["meals"], "summary": "Log a meal", "responses": {"201": {"description": "Meal logged successfully"}}}
        },
        "/meals/generate": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["meals"], "summary": "Generate a meal plan", "responses": {"200": {"description": "Meal plan generated successfully"}, "402": {"description": "AI credits exhausted"}, "429": {"description": "Rate limit exceeded"}}}
        },
        "/meals/plan": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["meals"], "summary": "Latest generated meal plan of a day", "responses": {"200": {"description": "Meal plan retrieved successfully"}, "404": {"description": "No meal plan generated for this day"}}}
        },
        "/family": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["family"], "summary": "Get my family", "responses": {"200": {"description": "Family retrieved successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["family"], "summary": "Create a family circle", "responses": {"201": {"description": "Family created successfully"}}}
        },
        "/family/join": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["family"], "summary": "Join a family by invite code", "responses": {"200": {"description": "Joined successfully"}, "404": {"description": "Invalid invite code"}, "409": {"description": "Already a member"}}}
        },
        "/family/membership": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["family"], "summary": "Leave the family", "responses": {"200": {"description": "Left family successfully"}}}
        },
        "/family/view": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["family"], "summary": "Family leaderboard", "responses": {"200": {"description": "Family view retrieved successfully"}}}
        },
        "/family/challenges": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["family"], "summary": "List challenges", "responses": {"200": {"description": "Challenges retrieved successfully"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["family"], "summary": "Create a weekly challenge", "responses": {"201": {"description": "Challenge created successfully"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "FitCircle API",
	Description:      "Family fitness tracking, leaderboards and AI meal plans.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
