package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/vgvault-BE/internal/event"
	"github.com/katatrina/vgvault-BE/internal/token"
	"github.com/rs/zerolog/log"
)

const (
	sseClientBufferSize = 16
	sseHeartbeat        = 30 * time.Second
)

//	@Summary		Stream every auction event
//	@Description	Server-Sent Events for all auctions: bidUpdate, auctionEnded, auctionEndedEarly, auctionDeleted and auctionCompletelyDeleted.
//	@Tags			streams
//	@Produce		text/event-stream
//	@Success		200	{string}	string	"event: {eventType}\ndata: {jsonData}"
//	@Router			/auctions/stream [get]
func (server *Server) streamAllAuctionEvents(c *gin.Context) {
	server.serveEvents(c, event.TopicAuctions)
}

//	@Summary		Stream auction events
//	@Description	Server-Sent Events for one auction.
//	@Tags			streams
//	@Produce		text/event-stream
//	@Param			auctionID	path		string	true	"Auction ID"
//	@Success		200			{string}	string	"event: {eventType}\ndata: {jsonData}"
//	@Failure		400			{object}	errorBody
//	@Router			/auctions/{auctionID}/stream [get]
func (server *Server) streamAuctionEvents(c *gin.Context) {
	auctionID, ok := parseUUIDParam(c, "auctionID")
	if !ok {
		return
	}

	server.serveEvents(c, event.AuctionTopic(auctionID))
}

//	@Summary		Stream my notifications
//	@Description	Server-Sent newNotification events for the caller. Browsers authenticate with the access_token cookie.
//	@Tags			streams
//	@Produce		text/event-stream
//	@Success		200	{string}	string	"event: newNotification\ndata: {jsonData}"
//	@Security		accessToken
//	@Router			/users/me/stream [get]
func (server *Server) streamUserEvents(c *gin.Context) {
	authPayload := c.MustGet(authorizationPayloadKey).(*token.Payload)
	server.serveEvents(c, event.UserTopic(authPayload.UserID))
}

// serveEvents writes events of the topic until the client goes away.
func (server *Server) serveEvents(c *gin.Context, topic string) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	clientChan := make(chan event.Event, sseClientBufferSize)
	server.eventSender.Register(topic, clientChan)
	defer server.eventSender.Unregister(topic, clientChan)

	heartbeat := time.NewTicker(sseHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case evt, ok := <-clientChan:
			if !ok {
				return
			}

			data, err := json.Marshal(evt.Data)
			if err != nil {
				log.Err(err).Str("topic", topic).Str("type", evt.Type).Msg("failed to marshal event")
				continue
			}

			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", evt.Type, data)
			c.Writer.Flush()
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": ping\n\n")
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
