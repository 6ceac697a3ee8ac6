package handlers

import (
	stderrors "errors"
	"net/http"

	"crm-service/internal/dto"
	"crm-service/internal/errors"
	"crm-service/internal/repositories"
	"crm-service/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TaskHandler handles task HTTP requests
type TaskHandler struct {
	taskService services.TaskServiceInterface
}

func NewTaskHandler(taskService services.TaskServiceInterface) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks returns tasks ordered by due date
// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Param customerId query string false "Customer ID (UUID)"
// @Param status query string false "Status" Enums(open, done)
// @Param kind query string false "Kind, e.g. followup"
// @Param dueBefore query string false "RFC 3339 date or epoch milliseconds"
// @Param limit query int false "Max results (max 500)" default(50)
// @Success 200 {array} dto.TaskResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	var req dto.ListTasksRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	filter := repositories.TaskFilter{
		Status: req.Status,
		Kind:   req.Kind,
		Limit:  req.Limit,
	}
	if req.CustomerID != "" {
		id, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return SendError(c, errors.CustomerInvalidID)
		}
		filter.CustomerID = &id
	}
	if req.DueBefore != "" {
		dueBefore, err := services.ParseTimestamp(req.DueBefore)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("dueBefore: "+err.Error()))
		}
		filter.DueBefore = &dueBefore
	}

	tasks, err := h.taskService.ListTasks(filter)
	if err != nil {
		return sendTaskError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}

// CreateTask adds a task to a customer
// @Summary Create task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task"
// @Success 201 {object} dto.TaskResponse
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), &req)
	if err != nil {
		return sendTaskError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTaskResponse(task))
}

// GetTask returns one task
// @Summary Get task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} dto.TaskResponse
// @Failure 404 {object} errors.ErrorResponse "TASK_001 - Task not found"
// @Router /tasks/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "id", errors.TaskInvalidID)
	if !ok {
		return err
	}

	task, err := h.taskService.GetTask(id)
	if err != nil {
		return sendTaskError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// UpdateTask changes the fields present in the body
// @Summary Update task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Param request body dto.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} dto.TaskResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "id", errors.TaskInvalidID)
	if !ok {
		return err
	}

	var req dto.UpdateTaskRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, &req)
	if err != nil {
		return sendTaskError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

// DeleteTask removes a task
// @Summary Delete task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID (UUID)"
// @Success 200 {object} dto.DeleteResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, ok, err := parseUUIDParam(c, "id", errors.TaskInvalidID)
	if !ok {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return sendTaskError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteResponse{OK: true})
}

func sendTaskError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrTaskNotFound):
		return SendError(c, errors.TaskNotFound)
	case stderrors.Is(err, services.ErrCustomerNotFound):
		return SendError(c, errors.CustomerNotFound)
	case stderrors.Is(err, services.ErrInvalidTaskStatus):
		return SendError(c, errors.TaskInvalidStatus)
	case stderrors.Is(err, services.ErrTaskTitleRequired):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("title: is required"))
	case stderrors.Is(err, services.ErrInvalidTimestamp):
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
