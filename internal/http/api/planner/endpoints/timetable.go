package endpoints

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/iceghosttth/bkalendar/internal/calendar"
	"github.com/iceghosttth/bkalendar/internal/db"
	"github.com/iceghosttth/bkalendar/internal/http/api"
	"github.com/iceghosttth/bkalendar/internal/http/api/planner/packets"
	"github.com/iceghosttth/bkalendar/internal/model"
	"github.com/iceghosttth/bkalendar/internal/notify"
	"github.com/iceghosttth/bkalendar/internal/redis"
	"github.com/iceghosttth/bkalendar/internal/schedule"
)

type PlannerController struct {
	store    db.Store
	sessions *schedule.Registry
}

func NewPlannerController(store db.Store) *PlannerController {
	return &PlannerController{store: store, sessions: schedule.NewRegistry()}
}

// PlannerModule mounts the timetable session endpoints: save/fetch/clear the
// pasted text, the one-shot clock correction, and week navigation.
func PlannerModule(store db.Store) api.Module {
	ctl := NewPlannerController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/timetable", ctl.getTimetable)
		c.PUT("/timetable", ctl.saveTimetable)
		c.DELETE("/timetable", ctl.clearTimetable)

		c.POST("/clock", ctl.setClock)

		c.GET("/week", ctl.currentWeek)
		c.POST("/week/next", ctl.nextWeek)
		c.POST("/week/prev", ctl.prevWeek)
	})
}

// planner returns the user's session, rebuilding it from persisted text on
// first use. A fresh session starts at epoch-zero UTC until the client's
// clock correction arrives; that default is usable, never an error.
func (p *PlannerController) planner(user *model.User) *schedule.Planner {
	return p.sessions.Get(user.ID, func() *schedule.Planner {
		initial := ""
		if saved, err := p.store.GetTimetable(user.ID); err == nil && saved != nil {
			initial = saved.RawText
		}
		sink := schedule.SaveSinkFunc(func(text string) error {
			return p.store.SaveTimetable(user.ID, text)
		})
		pl := schedule.NewPlanner(initial, sink)
		if initial != "" {
			// A returning user lands on their parsed schedule, not the editor.
			if _, err := pl.Save(initial); err != nil {
				log.Error().Err(err).Int("user_id", user.ID).Msg("failed to restore saved timetable")
			}
		}
		return pl
	})
}

func (p *PlannerController) getTimetable(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	saved, err := p.store.GetTimetable(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load timetable"}
	}
	if saved == nil {
		return packets.TimetableResponse{}, nil
	}
	return packets.TimetableResponse{RawText: saved.RawText, UpdatedAt: saved.UpdatedAt}, nil
}

func (p *PlannerController) saveTimetable(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SaveTimetableRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	pl := p.planner(user)
	courses, err := pl.Save(request.RawText)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not persist timetable"}
	}

	// The course list changed: cached views are stale, displays want the
	// fresh snapshot. Both paths degrade silently on infrastructure trouble.
	redis.InvalidateWeekViews(ctx, user.ID)
	if payload, err := json.Marshal(pl.View()); err == nil {
		notify.PublishTimetable(user.ID, payload)
	}

	return packets.SaveResponse{
		Courses:      len(courses),
		DroppedLines: len(strings.Split(request.RawText, "\n")) - len(courses),
	}, nil
}

func (p *PlannerController) clearTimetable(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	pl := p.planner(user)
	pl.Reenter()
	if err := p.store.DeleteTimetable(user.ID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not clear timetable"}
	}
	redis.InvalidateWeekViews(ctx, user.ID)
	return gin.H{"message": "cleared"}, nil
}

func (p *PlannerController) setClock(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ClockRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	pl := p.planner(user)
	pl.SetClock(*request.NowMS, calendar.Zone(request.ZoneOffsetMin))
	return pl.View(), nil
}

func (p *PlannerController) currentWeek(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	offset, err := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "offset must be an integer"}
	}

	pl := p.planner(user)
	view, ts := pl.WeekPage(offset)

	// Cache on the week's Monday epoch day: week numbers repeat across
	// years, the Monday does not.
	weekday := calendar.DayOfWeek(ts.Instant, ts.Zone)
	mondayDay := calendar.EpochDay(ts.Instant, ts.Zone) - int64(weekday-1)

	if cached := redis.GetCachedWeekView(ctx, user.ID, mondayDay, weekday); cached != nil {
		var cachedView schedule.WeekView
		if err := json.Unmarshal(cached, &cachedView); err == nil {
			return cachedView, nil
		}
	}

	if payload, err := json.Marshal(view); err == nil {
		redis.CacheWeekView(ctx, user.ID, mondayDay, weekday, payload)
	}
	return view, nil
}

func (p *PlannerController) nextWeek(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	pl := p.planner(user)
	pl.NextWeek()
	return pl.View(), nil
}

func (p *PlannerController) prevWeek(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	pl := p.planner(user)
	pl.PrevWeek()
	return pl.View(), nil
}
