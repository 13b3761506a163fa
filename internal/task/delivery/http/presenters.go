package http

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"taskbuster/internal/document"
	"taskbuster/internal/task"
	"taskbuster/pkg/response"
)

// --- Request DTOs ---

type taskReq struct {
	Task string `form:"task"`
}

// processTaskReq binds and validates the multipart request, rejecting it
// before any external call is made.
func (h *handler) processTaskReq(c *gin.Context) (task.ProcessInput, error) {
	var req taskReq
	if err := c.ShouldBind(&req); err != nil {
		return task.ProcessInput{}, errTaskRequired
	}

	description := strings.TrimSpace(req.Task)
	if description == "" {
		return task.ProcessInput{}, errTaskRequired
	}
	if utf8.RuneCountInString(description) > task.MaxDescriptionLength {
		return task.ProcessInput{}, errTaskTooLong
	}

	fh, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return task.ProcessInput{Description: description}, nil
		}
		return task.ProcessInput{}, errors.Join(errBadUpload, err)
	}

	upload, err := document.FromMultipart(fh)
	if err != nil {
		return task.ProcessInput{}, err
	}

	return task.ProcessInput{
		Description: description,
		Upload:      upload,
	}, nil
}

// --- Response DTOs ---

func (h *handler) newTaskResp(output task.ProcessOutput) response.TaskResp {
	return response.TaskResp{
		Result:         output.Result,
		DetectedIntent: string(output.DetectedIntent),
	}
}
