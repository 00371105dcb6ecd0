package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"devlogapi/internal/model"
	"devlogapi/internal/render"
	"devlogapi/internal/service"
)

// contentEnvelope is the wire shape of version page content: the document or
// null when nothing is stored yet.
type contentEnvelope struct {
	Content *model.Document `json:"content"`
}

// GetContent returns the stored document for a (project, version) pair.
// Absent content is reported as {"content": null}; the editor starts from an
// empty document in that case.
func GetContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID, versionID, ok := contentIDs(c)
		if !ok {
			return nil
		}
		doc, err := svc.Load(c.UserContext(), projectID, versionID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(contentEnvelope{Content: doc})
	}
}

// PutContent upserts the document for a (project, version) pair. The store is
// an opaque passthrough: the body's content is persisted unchanged, last
// write wins.
func PutContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID, versionID, ok := contentIDs(c)
		if !ok {
			return nil
		}
		var body contentEnvelope
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if body.Content == nil {
			return writeError(c, fiber.StatusBadRequest, "CONTENT_REQUIRED", "content is required")
		}
		if err := svc.Save(c.UserContext(), projectID, versionID, *body.Content); err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListVersionCards returns a project's versions together with the change-card
// elements found in each stored document. This is the read-only lookup table
// behind the "load card from another version" pickers.
func ListVersionCards(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID := c.Params("projectID")
		if _, err := uuid.Parse(projectID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.VersionCards(c.UserContext(), projectID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"data": res})
	}
}

// PreviewVersion serves the published devlog page, rendered server-side from
// the stored document. Absent content renders an empty page.
func PreviewVersion(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		projectID, versionID, ok := contentIDs(c)
		if !ok {
			return nil
		}
		doc, err := svc.Load(c.UserContext(), projectID, versionID)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if doc == nil {
			empty := model.Empty()
			doc = &empty
		}
		return c.Type("html").SendString(render.Document(*doc))
	}
}

// contentIDs validates the projectID/versionID path params, writing the error
// response itself when one is malformed.
func contentIDs(c *fiber.Ctx) (projectID, versionID string, ok bool) {
	projectID = c.Params("projectID")
	versionID = c.Params("versionID")
	if _, err := uuid.Parse(projectID); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		return "", "", false
	}
	if _, err := uuid.Parse(versionID); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		return "", "", false
	}
	return projectID, versionID, true
}
