// Package swagger embeds the OpenAPI document served next to the Swagger UI.
package swagger

import _ "embed"

// Doc is the OpenAPI 2.0 description of the REST API.
//
//go:embed land.swagger.json
var Doc []byte
