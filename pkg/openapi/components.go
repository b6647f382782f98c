package openapi

import "maps"

// NewComponents returns the components shared by every API group: the error
// body schema and the standard error responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
				Required: []string{"error"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":     errorResponse("Invalid request parameters"),
			"NotFound":       errorResponse("Resource not found"),
			"NotImplemented": errorResponse("Storage type cannot be browsed"),
			"BadGateway":     errorResponse("Storage backend failed"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing same-named entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	if c.Schemas == nil {
		c.Schemas = make(map[string]*Schema, len(schemas))
	}
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges responses into the components, replacing same-named entries.
func (c *Components) AddResponses(responses map[string]*Response) {
	if c.Responses == nil {
		c.Responses = make(map[string]*Response, len(responses))
	}
	maps.Copy(c.Responses, responses)
}

func errorResponse(description string) *Response {
	return ResponseJSON(description, "Error")
}
