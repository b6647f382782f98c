package browser

import "github.com/JaimeStill/backup-service/pkg/openapi"

type spec struct {
	ListModels *openapi.Operation
	GetModel   *openapi.Operation
	ListFiles  *openapi.Operation
	Download   *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the browser endpoints.
var Spec = spec{
	ListModels: &openapi.Operation{
		Summary:     "List backup models",
		Description: "Returns every configured backup model sorted by name",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Configured models",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Model")}},
				},
			},
		},
	},
	GetModel: &openapi.Operation{
		Summary:     "Find backup model",
		Description: "Returns a model with its schedule and storages. Storage credentials are never included",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("model", "Model name"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Backup model", "Model"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ListFiles: &openapi.Operation{
		Summary:     "List backup files",
		Description: "Returns a page of the files held by one storage of a model. Defaults to the newest files of the default storage",
		Parameters: append(
			[]*openapi.Parameter{
				openapi.PathParam("model", "Model name"),
				openapi.QueryParam("storage", "string", "Storage name. Defaults to the model's default storage", false),
			},
			openapi.PageParams("Case-insensitive filename substring")...,
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of files", "Listing"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			501: openapi.ResponseRef("NotImplemented"),
			502: openapi.ResponseRef("BadGateway"),
		},
	},
	Download: &openapi.Operation{
		Summary:     "Download backup file",
		Description: "Streams the file, or redirects to a presigned URL when the storage is configured to presign",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("model", "Model name"),
			openapi.PathParam("filename", "File path relative to the storage root"),
			openapi.QueryParam("storage", "string", "Storage name. Defaults to the model's default storage", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseBinary("File contents"),
			302: openapi.ResponseRedirect("Presigned download URL"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			502: openapi.ResponseRef("BadGateway"),
		},
	},
}

// Schemas are the component schemas referenced by Spec.
var Schemas = map[string]*openapi.Schema{
	"Storage": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"name":     {Type: "string"},
			"type":     {Type: "string", Example: "s3"},
			"path":     {Type: "string"},
			"bucket":   {Type: "string"},
			"region":   {Type: "string"},
			"endpoint": {Type: "string"},
			"presign":  {Type: "boolean"},
		},
		Required: []string{"name", "type"},
	},
	"Schedule": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"cron":  {Type: "string", Example: "5 4 * * sun"},
			"every": {Type: "string", Example: "1day"},
			"at":    {Type: "string", Example: "0:30"},
		},
	},
	"Model": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"name":            {Type: "string"},
			"description":     {Type: "string"},
			"schedule":        openapi.SchemaRef("Schedule"),
			"storages":        {Type: "array", Items: openapi.SchemaRef("Storage")},
			"default_storage": {Type: "string"},
		},
		Required: []string{"name", "storages", "default_storage"},
	},
	"FileItem": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"filename":      {Type: "string"},
			"size":          {Type: "integer", Format: "int64"},
			"last_modified": {Type: "string", Format: "date-time"},
		},
		Required: []string{"filename", "size", "last_modified"},
	},
	"FilePage": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"data":        {Type: "array", Items: openapi.SchemaRef("FileItem")},
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
		},
	},
	"Listing": {
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"model":    {Type: "string"},
			"storage":  {Type: "string"},
			"storages": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			"files":    openapi.SchemaRef("FilePage"),
		},
	},
}
