package utils

import (
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// ImportNotification is the payload posted to the import webhook
type ImportNotification struct {
	BatchID        string    `json:"batchId"`
	ProcessedCount int       `json:"processedCount"`
	ImportedBy     uint      `json:"importedBy"`
	ImportedAt     time.Time `json:"importedAt"`
}

// NotifyImport posts an import summary to the configured webhook. It runs
// off the request path; failures are logged and dropped.
func NotifyImport(webhookURL string, payload ImportNotification) {
	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(webhookURL)
	if err != nil {
		log.Printf("Failed to notify import webhook: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Import webhook returned status %d", resp.StatusCode())
	}
}
