package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"edugate/activity"
	"edugate/config"
	"edugate/importer"
	"edugate/middleware"
	"edugate/models"
	"edugate/utils"

	"github.com/gofiber/fiber/v2"
)

type ImportController struct {
	importer    *importer.Importer
	activityLog *activity.Logger
}

func NewImportController(imp *importer.Importer, activityLog *activity.Logger) *ImportController {
	return &ImportController{importer: imp, activityLog: activityLog}
}

// ImportCourses handles the multipart CSV upload. The admin gate runs as
// route middleware, so unauthorized callers are rejected before the file is
// touched. The response carries the importer result as-is:
// {success, processedCount, errors}.
func (ctl *ImportController) ImportCourses(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process the file!", nil)
	}
	defer file.Close()

	result, err := ctl.importer.Import(file)
	if err != nil {
		if errors.Is(err, importer.ErrEmptyFile) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV file is empty or has only headers!", nil)
		}
		if errors.Is(err, importer.ErrMalformedCSV) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Malformed CSV file!", nil)
		}
		log.Printf("Import failed for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process the file!", nil)
	}

	if !result.Success {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(result)
	}

	ctl.activityLog.Log(activity.Entry{
		UserID:  userId,
		Type:    models.ActivityImportData,
		Details: fmt.Sprintf("Imported %d courses from CSV", result.ProcessedCount),
		Metadata: map[string]interface{}{
			"batchId": result.BatchID,
			"count":   result.ProcessedCount,
		},
	})

	if url := config.AppConfig.ImportWebhookURL; url != "" {
		go utils.NotifyImport(url, utils.ImportNotification{
			BatchID:        result.BatchID,
			ProcessedCount: result.ProcessedCount,
			ImportedBy:     userId,
			ImportedAt:     time.Now(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
