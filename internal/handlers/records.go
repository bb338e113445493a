package handlers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"attendance-registry/internal/logger"
	"attendance-registry/internal/middleware"
	"attendance-registry/internal/models"
	"attendance-registry/internal/services"

	"github.com/gin-gonic/gin"
)

//
// ГЛАВНАЯ: форма регистрации + таблица
//

func (h *Handler) Home(c *gin.Context) {
	h.renderHome(c, http.StatusOK, models.RecordFields{Date: time.Now().Format(models.DateLayout)}, "")
}

func (h *Handler) renderHome(c *gin.Context, status int, form models.RecordFields, errMsg string) {
	records, err := h.Records.ListAll()
	if err != nil {
		renderFailure(c, models.PageHome, "list records", err)
		return
	}

	render(c, status, models.PageHome, "home.html", gin.H{
		"form":    form,
		"records": records,
		"error":   errMsg,
	})
}

func (h *Handler) CreateRecord(c *gin.Context) {
	var form models.RecordFields
	if err := c.ShouldBind(&form); err != nil {
		h.renderHome(c, http.StatusBadRequest, form, "Invalid form data.")
		return
	}

	rec, err := h.Records.Create(form)
	switch {
	case errors.Is(err, services.ErrAttendantRequired):
		h.renderHome(c, http.StatusBadRequest, form, "Please fill in the attendant name.")
		return
	case err != nil:
		renderFailure(c, models.PageHome, "create record", err)
		return
	}

	logger.L.Info().Uint("record_id", rec.ID).Str("user", middleware.CurrentSession(c).Username).Msg("record created")
	flash(c, "Thank you, "+rec.AttendantName+". The record was saved.")
	c.Redirect(http.StatusFound, "/")
}

//
// РЕДАКТИРОВАНИЕ
//

func (h *Handler) ShowEdit(c *gin.Context) {
	records, err := h.Records.ListAll()
	if err != nil {
		renderFailure(c, models.PageEdit, "list records", err)
		return
	}

	data := gin.H{"records": records}

	idStr := c.Query("id")
	if idStr == "" {
		render(c, http.StatusOK, models.PageEdit, "edit.html", data)
		return
	}
	data["id"] = idStr

	id, ok := services.ParseID(idStr)
	if !ok {
		data["warning"] = invalidIDMessage
		render(c, http.StatusBadRequest, models.PageEdit, "edit.html", data)
		return
	}

	rec, found, err := h.Records.GetByID(id)
	if err != nil {
		renderFailure(c, models.PageEdit, "get record", err)
		return
	}
	if !found {
		data["warning"] = invalidIDMessage
		render(c, http.StatusNotFound, models.PageEdit, "edit.html", data)
		return
	}

	data["record"] = rec
	data["form"] = rec.Fields()
	render(c, http.StatusOK, models.PageEdit, "edit.html", data)
}

const invalidIDMessage = "Invalid ID. Please choose an existing record."

func (h *Handler) UpdateRecord(c *gin.Context) {
	idStr := c.Param("id")
	id, ok := services.ParseID(idStr)
	if !ok {
		h.renderEditWarning(c, http.StatusBadRequest, idStr)
		return
	}

	var form models.RecordFields
	if err := c.ShouldBind(&form); err != nil {
		h.renderEditWarning(c, http.StatusBadRequest, idStr)
		return
	}

	rec, err := h.Records.Update(id, form)
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		h.renderEditWarning(c, http.StatusNotFound, idStr)
		return
	case err != nil:
		renderFailure(c, models.PageEdit, "update record", err)
		return
	}

	logger.L.Info().Uint("record_id", rec.ID).Str("user", middleware.CurrentSession(c).Username).Msg("record updated")
	flash(c, "Thank you, "+rec.AttendantName+". The record was updated.")
	c.Redirect(http.StatusFound, "/records/edit?id="+strconv.FormatUint(uint64(id), 10))
}

func (h *Handler) renderEditWarning(c *gin.Context, status int, idStr string) {
	records, err := h.Records.ListAll()
	if err != nil {
		renderFailure(c, models.PageEdit, "list records", err)
		return
	}
	render(c, status, models.PageEdit, "edit.html", gin.H{
		"records": records,
		"id":      idStr,
		"warning": invalidIDMessage,
	})
}

//
// ВЫГРУЗКА В EXCEL
//

func (h *Handler) ExportRecords(c *gin.Context) {
	records, err := h.Records.ListAll()
	if err != nil {
		renderFailure(c, models.PageHome, "export records", err)
		return
	}

	path, err := services.ExportFile(records, h.ExportDir)
	if err != nil {
		renderFailure(c, models.PageHome, "export records", err)
		return
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			logger.L.Warn().Err(err).Str("path", path).Msg("failed to remove export file")
		}
	}()

	logger.L.Info().Int("records", len(records)).Str("user", middleware.CurrentSession(c).Username).Msg("records exported")
	c.Header("Content-Type", services.ExportMIME)
	c.FileAttachment(path, services.ExportFileName)
}
