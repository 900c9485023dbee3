package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/iceghosttth/bkalendar/internal/calendar"
	"github.com/iceghosttth/bkalendar/internal/db"
	"github.com/iceghosttth/bkalendar/internal/http/api"
	"github.com/iceghosttth/bkalendar/internal/schedule"
	"github.com/iceghosttth/bkalendar/internal/timetable"
)

type SharedController struct {
	store db.Store
}

// SharedModule exposes the read-only week views behind share tokens. No
// auth: the token is the capability. Visitors may supply their own clock
// (`now_ms`, `zone_offset_min`) and page with `offset` whole weeks; absent a
// clock the server's UTC now is used.
func SharedModule(store db.Store) api.Module {
	ctl := &SharedController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.RouterGroup.GET("/:token/week", api.ResolveEndpoint(ctl.weekJSON))
		c.RouterGroup.GET("/:token/view", ctl.weekHTML)
	})
}

// resolveView loads the shared timetable and renders the requested week.
func (s *SharedController) resolveView(ctx *gin.Context) (schedule.WeekView, *api.APIError) {
	share, err := s.store.GetShareByToken(ctx.Param("token"))
	if err != nil {
		return schedule.WeekView{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not resolve share"}
	}
	if share == nil {
		return schedule.WeekView{}, &api.APIError{Code: http.StatusNotFound, Message: "share not found"}
	}

	saved, err := s.store.GetTimetable(share.UserID)
	if err != nil {
		return schedule.WeekView{}, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load timetable"}
	}
	raw := ""
	if saved != nil {
		raw = saved.RawText
	}

	now := time.Now().UnixMilli()
	if v, err := strconv.ParseInt(ctx.Query("now_ms"), 10, 64); err == nil {
		now = v
	}
	zone := calendar.UTC
	if v, err := strconv.Atoi(ctx.Query("zone_offset_min")); err == nil {
		zone = calendar.Zone(v)
	}
	offset, _ := strconv.Atoi(ctx.Query("offset"))

	instant := calendar.AddWeeks(now, offset)
	return schedule.ViewAt(timetable.Parse(raw), instant, zone), nil
}

func (s *SharedController) weekJSON(ctx *gin.Context) (any, *api.APIError) {
	view, apiErr := s.resolveView(ctx)
	if apiErr != nil {
		return nil, apiErr
	}
	return view, nil
}

// weekHTML renders the same view as a server-side HTML grid for display
// devices that only fetch a page.
func (s *SharedController) weekHTML(ctx *gin.Context) {
	view, apiErr := s.resolveView(ctx)
	if apiErr != nil {
		ctx.HTML(apiErr.Code, "error.html", gin.H{"message": apiErr.Message})
		return
	}
	ctx.HTML(http.StatusOK, "week.html", view)
}
