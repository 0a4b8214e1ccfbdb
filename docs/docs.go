package docs

import "github.com/swaggo/swag"

const docTemplate = `{
  "swagger": "2.0",
  "info": {
    "title": "Liquidacion Backend",
    "description": "Liquidation of inspector bonuses and allowances from timesheet exports",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/nomina": {
      "get": {
        "tags": ["liquidacion"],
        "summary": "Upload form description",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK"}}
      },
      "post": {
        "tags": ["liquidacion"],
        "summary": "Liquidate timesheet",
        "consumes": ["multipart/form-data"],
        "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
        "parameters": [
          {"name": "file", "in": "formData", "type": "file", "required": true, "description": "timesheet .xlsx or .csv"}
        ],
        "responses": {
          "200": {"description": "Liquidation workbook"},
          "400": {"description": "Invalid request"},
          "422": {"description": "Malformed input"}
        }
      }
    },
    "/api/liquidacion/preview": {
      "post": {
        "tags": ["liquidacion"],
        "summary": "Preview liquidation",
        "consumes": ["multipart/form-data"],
        "produces": ["application/json"],
        "parameters": [
          {"name": "file", "in": "formData", "type": "file", "required": true, "description": "timesheet .xlsx or .csv"}
        ],
        "responses": {
          "200": {"description": "Liquidation rows"},
          "400": {"description": "Invalid request"},
          "422": {"description": "Malformed input"}
        }
      }
    }
  }
}`

func init() {
	swag.Register(swag.Name, &s{})
}

type s struct{}

func (s *s) ReadDoc() string {
	return docTemplate
}
