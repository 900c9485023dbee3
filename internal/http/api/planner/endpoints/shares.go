package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iceghosttth/bkalendar/internal/db"
	"github.com/iceghosttth/bkalendar/internal/http/api"
	"github.com/iceghosttth/bkalendar/internal/http/api/planner/packets"
	"github.com/iceghosttth/bkalendar/internal/model"
)

type ShareController struct {
	store db.Store
}

// ShareModule mounts the share-link management endpoints. The read-only
// views the tokens unlock live in the public shared module.
func ShareModule(store db.Store) api.Module {
	ctl := &ShareController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/shares", ctl.listShares)
		c.POST("/shares", ctl.createShare)
		c.DELETE("/shares/:token", ctl.deleteShare)
	})
}

func (s *ShareController) listShares(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	shares, err := s.store.ListShares(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list shares"}
	}
	response := make([]packets.ShareResponse, 0, len(shares))
	for _, sh := range shares {
		response = append(response, packets.ShareResponse{Token: sh.Token, CreatedAt: sh.CreatedAt})
	}
	return response, nil
}

func (s *ShareController) createShare(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	sh, err := s.store.CreateShare(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create share"}
	}
	return packets.ShareResponse{Token: sh.Token, CreatedAt: sh.CreatedAt}, nil
}

func (s *ShareController) deleteShare(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	token := ctx.Param("token")
	if err := s.store.DeleteShare(user.ID, token); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete share"}
	}
	return gin.H{"message": "deleted"}, nil
}
