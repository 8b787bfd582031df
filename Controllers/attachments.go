package Controllers

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Workshop/Config"
	"Workshop/Database"
	"Workshop/Models"
)

// AttachmentController stores uploaded line item and asset attachments under
// the assets directory. The returned path is what callers put in file_path
// fields.
type AttachmentController struct {
	Store *Database.Store
}

// NewAttachmentController creates a new AttachmentController
func NewAttachmentController(store *Database.Store) *AttachmentController {
	return &AttachmentController{Store: store}
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

// UploadAttachment stores a multipart file under ASSETS_DIR/wo_<id>/ with a
// uuid name. Image uploads also get a small thumbnail next to the original.
// POST /api/work-orders/:id/attachments
func (c *AttachmentController) UploadAttachment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid work order ID"})
	}

	if _, err := c.Store.GetWorkOrderDetails(uint(id)); err != nil {
		if err == Models.ErrWorkOrderNotFound {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve work order"})
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}

	subdir := fmt.Sprintf("wo_%d", id)

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.New().String() + ext
	destDir := filepath.Join(Config.AssetsDir, subdir)
	destPath := filepath.Join(destDir, name)

	if err := ctx.SaveFile(file, destPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store attachment"})
	}

	var thumbnail string
	if imageExtensions[ext] {
		if thumb, err := writeThumbnail(destPath); err == nil {
			thumbnail = thumb
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"file_path": destPath,
		"thumbnail": thumbnail,
	})
}

// UploadLogo stores the company logo, resized to a fixed width, and records
// its path in the settings.
// POST /api/settings/logo
func (c *AttachmentController) UploadLogo(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file provided"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !imageExtensions[ext] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Logo must be an image file"})
	}

	rawPath := filepath.Join(Config.LogosDir, "logo_upload"+ext)
	if err := ctx.SaveFile(file, rawPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store logo"})
	}

	img, err := imaging.Open(rawPath)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to read image"})
	}
	resized := imaging.Resize(img, 320, 0, imaging.Lanczos)
	logoPath := filepath.Join(Config.LogosDir, "logo.png")
	if err := imaging.Save(resized, logoPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save logo"})
	}

	if err := c.Store.SetSetting("company_logo", logoPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record logo setting"})
	}

	return ctx.JSON(fiber.Map{"file_path": logoPath})
}

// writeThumbnail saves a 160px-wide copy next to the original.
func writeThumbnail(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", err
	}
	thumb := imaging.Resize(img, 160, 0, imaging.Lanczos)

	ext := filepath.Ext(path)
	thumbPath := strings.TrimSuffix(path, ext) + "_thumb.png"
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", err
	}
	return thumbPath, nil
}
