package http

import (
	"github.com/gin-gonic/gin"

	"taskbuster/internal/document"
	"taskbuster/pkg/response"
)

// HandleTask godoc
// @Summary     Execute a natural-language task
// @Description Classifies the task description into an intent and runs the matching handler against the optional uploaded document.
// @Tags        Task
// @Accept      multipart/form-data
// @Produce     json
// @Param       task formData string true  "Task description (1-500 characters)"
// @Param       file formData file   false "Plain text document, max 5 MB"
// @Success     200  {object} response.TaskResp
// @Failure     400  {object} response.ErrResp "Validation failure or unresolved intent"
// @Failure     500  {object} response.ErrResp "Upstream or internal failure"
// @Router      /api/task [POST]
func (h *handler) HandleTask(c *gin.Context) {
	ctx := c.Request.Context()

	// Temp storage for the upload is released exactly once, on every exit
	// path, after the handler is done with the document.
	defer func() {
		if c.Request.MultipartForm != nil {
			document.Cleanup(ctx, h.l, c.Request.MultipartForm)
		}
	}()

	input, err := h.processTaskReq(c)
	if err != nil {
		h.l.Warnf(ctx, "task handler: rejected request: %v", err)
		h.mapError(c, err)
		return
	}

	output, err := h.uc.Process(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newTaskResp(output))
}
