// Package testutil provides shared testing utilities and fixtures.
package testutil

// MailAPISpec is a minimal OpenAPI 3.0 document with query parameters of
// every shape the importer maps, used by catalog import tests.
const MailAPISpec = `{
	"openapi": "3.0.0",
	"info": {
		"title": "Mail API",
		"version": "1.0.0"
	},
	"servers": [
		{"url": "https://mail.example.com/v1.0"}
	],
	"paths": {
		"/messages": {
			"get": {
				"operationId": "listMessages",
				"summary": "List messages",
				"parameters": [
					{
						"name": "unread",
						"in": "query",
						"schema": {"type": "boolean"}
					},
					{
						"name": "limit",
						"in": "query",
						"schema": {"type": "integer", "minimum": 1, "maximum": 500, "default": 25}
					},
					{
						"name": "importance",
						"in": "query",
						"schema": {"type": "string", "enum": ["low", "normal", "high"]}
					},
					{
						"name": "subject",
						"in": "query",
						"schema": {"type": "string"}
					}
				],
				"responses": {
					"200": {"description": "Success"}
				}
			}
		},
		"/folders": {
			"get": {
				"summary": "List folders",
				"responses": {
					"200": {"description": "Success"}
				}
			},
			"post": {
				"operationId": "createFolder",
				"summary": "Create a folder",
				"responses": {
					"201": {"description": "Created"}
				}
			}
		}
	}
}`

// FolderPage builds a Graph-shaped mailFolders response page.
func FolderPage(folders ...map[string]interface{}) map[string]interface{} {
	if folders == nil {
		folders = []map[string]interface{}{}
	}
	return map[string]interface{}{"value": folders}
}

// FolderEntry builds one folder object for FolderPage.
func FolderEntry(id, displayName string) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"displayName": displayName,
	}
}
