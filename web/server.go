// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package web exposes a controller session over HTTP: list commands,
// read a value, write a value. The session stays exclusively owned by
// the server, requests are serialized onto it.
package web

import (
	"errors"
	"net/http"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/thinkgos/go-optolink/catalog"
	"github.com/thinkgos/go-optolink/clog"
	"github.com/thinkgos/go-optolink/optolink"
	"github.com/thinkgos/go-optolink/vcontrol"
	"github.com/thinkgos/go-optolink/vdata"
)

// Server serves one controller session over HTTP.
type Server struct {
	vc *vcontrol.VControl
	// the session is single owner, transactions are strictly serial
	mu sync.Mutex
	clog.Clog
}

// New builds a server around an established session.
func New(vc *vcontrol.VControl) *Server {
	return &Server{vc: vc, Clog: clog.NewLogger("web ")}
}

// Router builds the HTTP routes.
func (sf *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/commands", sf.listCommands)
	r.GET("/commands/:name", sf.getCommand)
	r.PUT("/commands/:name", sf.setCommand)
	return r
}

// Run serves the routes on the given address until failure.
func (sf *Server) Run(addr string) error {
	return sf.Router().Run(addr)
}

type commandInfo struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
	Unit string `json:"unit,omitempty"`
}

func (sf *Server) listCommands(c *gin.Context) {
	var infos []commandInfo
	for name, command := range catalog.SystemCommands() {
		infos = append(infos, commandInfo{name, command.Mode.String(), command.Unit})
	}
	for name, command := range sf.vc.Device().Commands() {
		infos = append(infos, commandInfo{name, command.Mode.String(), command.Unit})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	c.JSON(http.StatusOK, infos)
}

func (sf *Server) getCommand(c *gin.Context) {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	value, err := sf.vc.Get(c.Param("name"))
	if err != nil {
		sf.Error("get %s: %v", c.Param("name"), err)
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, value)
}

func (sf *Server) setCommand(c *gin.Context) {
	var value vdata.Value
	if err := c.ShouldBindJSON(&value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sf.mu.Lock()
	defer sf.mu.Unlock()

	if err := sf.vc.Set(c.Param("name"), value); err != nil {
		// the property stays unchanged on failure
		sf.Error("set %s: %v", c.Param("name"), err)
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnsupportedCommand):
		return http.StatusNotFound
	case errors.Is(err, catalog.ErrUnsupportedMode),
		errors.Is(err, vdata.ErrInvalidArgument),
		errors.Is(err, vdata.ErrUnknownEnumVariant):
		return http.StatusBadRequest
	case errors.Is(err, optolink.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
