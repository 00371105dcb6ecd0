package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"devlogapi/internal/service"
)

// HealthCheck reports service health by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain liveness check with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers are
// thin; all business logic lives in the injected services.
func RegisterRoutes(app *fiber.App, db *sql.DB, contentSvc service.ContentService, projectSvc service.ProjectService, assetSvc service.AssetService) {
	// Serve the OpenAPI spec and a CDN-hosted Swagger UI over it.
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/projects", CreateProject(projectSvc))
	app.Get("/projects", ListProjects(projectSvc))
	app.Get("/projects/:id", GetProject(projectSvc))
	app.Delete("/projects/:id", DeleteProject(projectSvc))

	app.Post("/projects/:projectID/versions", CreateVersion(projectSvc))
	app.Get("/projects/:projectID/versions", ListVersionCards(contentSvc))

	app.Get("/projects/:projectID/versions/:versionID/content", GetContent(contentSvc))
	app.Put("/projects/:projectID/versions/:versionID/content", PutContent(contentSvc))
	app.Get("/projects/:projectID/versions/:versionID/preview", PreviewVersion(contentSvc))

	app.Post("/assets", UploadAsset(assetSvc))
	app.Get("/assets/url/*", AssetURL(assetSvc))
}
