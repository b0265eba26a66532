// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// UsersSpecJSON is a FastAPI-style OpenAPI 3.1 document for a two-route users
// API: GET /users/{user_id} and POST /users. Responses and the request body
// reference component schemas, and the validation error schema references
// another component.
const UsersSpecJSON = `{
  "openapi": "3.1.0",
  "info": {"title": "Users API", "version": "1.0.0"},
  "paths": {
    "/users/{user_id}": {
      "get": {
        "operationId": "get_user_users__user_id__get",
        "summary": "Get a user by ID.",
        "tags": ["users"],
        "parameters": [
          {"name": "user_id", "in": "path", "required": true, "schema": {"type": "integer", "title": "User Id"}},
          {"$ref": "#/components/parameters/Verbose"}
        ],
        "responses": {
          "200": {
            "description": "Successful Response",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/User"}}}
          },
          "404": {"$ref": "#/components/responses/NotFound"},
          "422": {
            "description": "Validation Error",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/HTTPValidationError"}}}
          }
        }
      }
    },
    "/users": {
      "post": {
        "operationId": "create_user_users_post",
        "summary": "Create a new user.",
        "description": "Creates a user and returns it.",
        "tags": ["users"],
        "requestBody": {"$ref": "#/components/requestBodies/UserCreate"},
        "responses": {
          "201": {
            "description": "Created",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/User"}}}
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "User": {
        "type": "object",
        "title": "User",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"},
          "email": {"type": "string", "format": "email"}
        }
      },
      "UserCreate": {
        "type": "object",
        "required": ["name"],
        "properties": {"name": {"type": "string"}, "email": {"type": "string"}}
      },
      "ValidationError": {
        "type": "object",
        "properties": {
          "loc": {"type": "array", "items": {"type": "string"}},
          "msg": {"type": "string"}
        }
      },
      "HTTPValidationError": {
        "type": "object",
        "properties": {
          "detail": {"type": "array", "items": {"$ref": "#/components/schemas/ValidationError"}}
        }
      }
    },
    "parameters": {
      "Verbose": {"name": "verbose", "in": "query", "required": false, "schema": {"type": "boolean"}}
    },
    "responses": {
      "NotFound": {"description": "User not found"}
    },
    "requestBodies": {
      "UserCreate": {
        "required": true,
        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/UserCreate"}}}
      }
    }
  }
}`

// CyclicSpecYAML describes a tree whose component schemas reference each other
// (A -> B -> A) and one self-referencing schema (Node -> Node).
const CyclicSpecYAML = `openapi: 3.0.3
info:
  title: Cyclic API
  version: "1.0.0"
paths:
  /tree:
    get:
      operationId: getTree
      summary: Fetch the tree.
      responses:
        200:
          description: OK
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/A'
        x-internal: true
  /nodes:
    get:
      summary: Fetch nodes.
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Node'
components:
  schemas:
    A:
      type: object
      properties:
        b:
          $ref: '#/components/schemas/B'
    B:
      type: object
      properties:
        a:
          $ref: '#/components/schemas/A'
    Node:
      type: object
      properties:
        children:
          type: array
          items:
            $ref: '#/components/schemas/Node'
`

// BrokenRefSpecJSON has one response whose schema points at a component that
// does not exist, next to a response that resolves normally.
const BrokenRefSpecJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "Broken API", "version": "0.1.0"},
  "paths": {
    "/items": {
      "parameters": [
        {"name": "X-Tenant", "in": "header", "required": true, "schema": {"type": "string"}}
      ],
      "get": {
        "summary": "List items.",
        "responses": {
          "200": {
            "description": "OK",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Item"}}}
          },
          "500": {
            "description": "Failure",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Gone"}}}
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Item": {"type": "object", "properties": {"id": {"type": "string"}}}
    }
  }
}`

// WriteTempFile writes content to a file named name in a test temp directory
// and returns its path. The file is removed when the test completes.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}
