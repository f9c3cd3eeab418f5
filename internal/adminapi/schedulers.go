package adminapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rentalworks/partyrent/internal/app"
	"github.com/rentalworks/partyrent/internal/domain"
	"github.com/rentalworks/partyrent/internal/webserver"
	"github.com/rentalworks/partyrent/pkg/common"
)

type schedulerPayload struct {
	Name     string `json:"name"`
	TaskType string `json:"task_type"`
	Interval int    `json:"interval"`
	Status   string `json:"status"`
	Remark   string `json:"remark"`
}

func registerSchedulerRoutes() {
	webserver.ApiGET("/schedulers", listSchedulers)
	webserver.ApiGET("/schedulers/:id", getScheduler)
	webserver.ApiPOST("/schedulers", createScheduler)
	webserver.ApiPUT("/schedulers/:id", updateScheduler)
	webserver.ApiDELETE("/schedulers/:id", deleteScheduler)
	webserver.ApiPOST("/schedulers/:id/run", triggerScheduler)
}

func (p *schedulerPayload) validate() string {
	p.Name = strings.TrimSpace(p.Name)
	p.TaskType = strings.TrimSpace(p.TaskType)
	if p.Name == "" {
		return "Name is required"
	}
	switch p.TaskType {
	case app.TaskCalendarSnapshot, app.TaskOrdersRollup:
	default:
		return "Unknown task type"
	}
	if p.Interval < 10 {
		return "Interval must be >= 10 seconds"
	}
	switch p.Status {
	case "", common.ENABLED, common.DISABLED:
	default:
		return "Status must be 'enabled' or 'disabled'"
	}
	return ""
}

func listSchedulers(c echo.Context) error {
	page, pageSize := parsePagination(c)
	db := GetDB(c)

	query := db.Model(&domain.SysScheduler{})
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		query = query.Where("status = ?", status)
	}
	if taskType := strings.TrimSpace(c.QueryParam("task_type")); taskType != "" {
		query = query.Where("task_type = ?", taskType)
	}

	var total int64
	query.Count(&total)

	var schedulers []domain.SysScheduler
	if err := query.Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&schedulers).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query schedulers", err.Error())
	}
	return paged(c, schedulers, total, page, pageSize)
}

func getScheduler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid scheduler ID", nil)
	}
	var scheduler domain.SysScheduler
	if err := GetDB(c).First(&scheduler, id).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Scheduler not found", nil)
	}
	return ok(c, scheduler)
}

func createScheduler(c echo.Context) error {
	var payload schedulerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse scheduler", err.Error())
	}
	if msg := payload.validate(); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	var count int64
	GetDB(c).Model(&domain.SysScheduler{}).Where("name = ?", payload.Name).Count(&count)
	if count > 0 {
		return fail(c, http.StatusConflict, "NAME_EXISTS", "Scheduler name already exists", nil)
	}

	if payload.Status == "" {
		payload.Status = common.ENABLED
	}
	now := time.Now()
	scheduler := domain.SysScheduler{
		ID:        common.UUIDint64(),
		Name:      payload.Name,
		TaskType:  payload.TaskType,
		Interval:  payload.Interval,
		Status:    payload.Status,
		Remark:    strings.TrimSpace(payload.Remark),
		NextRunAt: now.Add(time.Duration(payload.Interval) * time.Second),
	}
	if err := GetDB(c).Create(&scheduler).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create scheduler", err.Error())
	}
	return ok(c, scheduler)
}

func updateScheduler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid scheduler ID", nil)
	}
	var scheduler domain.SysScheduler
	if err := GetDB(c).First(&scheduler, id).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Scheduler not found", nil)
	}

	var payload schedulerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse scheduler", err.Error())
	}
	if msg := payload.validate(); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}

	updates := map[string]interface{}{
		"name":       payload.Name,
		"task_type":  payload.TaskType,
		"interval":   payload.Interval,
		"remark":     strings.TrimSpace(payload.Remark),
		"updated_at": time.Now(),
	}
	if payload.Status != "" {
		updates["status"] = payload.Status
	}
	if payload.Interval != scheduler.Interval {
		updates["next_run_at"] = time.Now().Add(time.Duration(payload.Interval) * time.Second)
	}
	if err := GetDB(c).Model(&scheduler).Updates(updates).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update scheduler", err.Error())
	}

	GetDB(c).First(&scheduler, id)
	return ok(c, scheduler)
}

func deleteScheduler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid scheduler ID", nil)
	}
	if err := GetDB(c).Delete(&domain.SysScheduler{}, id).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete scheduler", err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// triggerScheduler runs the scheduler immediately
func triggerScheduler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid scheduler ID", nil)
	}
	if err := GetApp(c).RunSchedulerNow(id); err != nil {
		return fail(c, http.StatusInternalServerError, "RUN_FAILED", "Failed to run scheduler", err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
