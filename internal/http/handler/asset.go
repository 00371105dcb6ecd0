package handler

import (
	"github.com/gofiber/fiber/v2"

	"devlogapi/internal/service"
)

// UploadAsset accepts a multipart image upload (field name: file) and stores
// it in the asset bucket, returning the key and a presigned download URL the
// editor can drop straight into an image element's src.
func UploadAsset(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		asset, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(asset)
	}
}

// AssetURL re-presigns a download URL for an existing asset key. Keys contain
// a path separator, so the route uses a wildcard segment.
func AssetURL(svc service.AssetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("*")
		if key == "" {
			return writeError(c, fiber.StatusBadRequest, "KEY_REQUIRED", "asset key is required")
		}
		url, err := svc.URL(c.UserContext(), key)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"key": key, "url": url})
	}
}
