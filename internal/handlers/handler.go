package handlers

import (
	"attendance-registry/internal/services"
)

// Handler держит сервисы, которые нужны страницам.
type Handler struct {
	Auth            *services.AuthService
	Records         *services.RecordService
	ExportDir       string
	ChartAssetsHost string
}

func New(auth *services.AuthService, records *services.RecordService, exportDir, chartAssetsHost string) *Handler {
	return &Handler{Auth: auth, Records: records, ExportDir: exportDir, ChartAssetsHost: chartAssetsHost}
}
