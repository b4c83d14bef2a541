// Package api serves the mock surface over real HTTP so a device build or
// frontend dev server can point at the gateway. Every unregistered path is
// fed through the prefix router, which keeps the surface's contract:
// unknown routes answer 200 with an empty object.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"sparkchats-gateway/internal/logging"
	"sparkchats-gateway/internal/mockapi"
	"sparkchats-gateway/internal/store"
	"sparkchats-gateway/internal/ws"
	apimodels "sparkchats-gateway/pkg/models"

	"github.com/gin-gonic/gin"
)

type Server struct {
	router *mockapi.Router
	store  *store.Store
	hub    *ws.Hub
	log    *logging.Logger
}

func NewServer(router *mockapi.Router, st *store.Store, hub *ws.Hub, log *logging.Logger) *Server {
	return &Server{router: router, store: st, hub: hub, log: log.Sub("api")}
}

// Engine assembles the gin engine with the mock dispatch catch-all.
func (s *Server) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/healthz", s.health)
	r.GET("/ws", func(c *gin.Context) {
		s.hub.ServeWs(c.Writer, c.Request)
	})
	r.GET("/contacts/export.csv", s.exportContacts)

	r.NoRoute(s.dispatch)
	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// dispatch feeds the request through the prefix router.
func (s *Server) dispatch(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		body = nil
	}

	data, err := s.router.Handle(c.Request.Method, c.Request.URL.Path, body)
	if errors.Is(err, store.ErrConversationNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("dispatch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// exportContacts streams the current contact collection as CSV.
func (s *Server) exportContacts(c *gin.Context) {
	contacts, err := s.store.SearchContacts(apimodels.ContactSearch{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	csv := "ID,Name,Phone,Email,Tags\n"
	for _, contact := range contacts {
		csv += fmt.Sprintf("%s,%s,%s,%s,%s\n",
			contact.ID, contact.Name, contact.Phone, contact.Email, joinTags(contact.Tags))
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=contacts.csv")
	c.String(http.StatusOK, csv)
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ";"
		}
		out += t
	}
	return out
}
