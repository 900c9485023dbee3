package main

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/iceghosttth/bkalendar/internal/db"
	"github.com/iceghosttth/bkalendar/internal/http/api"
	authapi "github.com/iceghosttth/bkalendar/internal/http/api/auth/endpoints"
	plannerapi "github.com/iceghosttth/bkalendar/internal/http/api/planner/endpoints"
	sharedapi "github.com/iceghosttth/bkalendar/internal/http/api/shared/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store, tmpl *template.Template) {
	r.SetHTMLTemplate(tmpl)

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		authapi.AuthSessionModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/planner",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		plannerapi.PlannerModule(store),
		plannerapi.ShareModule(store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/shared",
	},
		sharedapi.SharedModule(store),
	)
}
