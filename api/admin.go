package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	db "github.com/katatrina/vgvault-BE/internal/db/sqlc"
)

type listAllAuctionsQuery struct {
	Limit  int32 `form:"limit" binding:"omitempty,min=1"`
	Offset int32 `form:"offset" binding:"omitempty,min=0"`
}

//	@Summary		List all auctions
//	@Description	Every auction in any state, newest first.
//	@Tags			admin
//	@Produce		json
//	@Param			limit	query	int	false	"Page size (default 100)"
//	@Param			offset	query	int	false	"Offset"
//	@Success		200		{array}	adminAuctionResponse
//	@Failure		403		{object}	errorBody
//	@Security		accessToken
//	@Router			/admin/auctions [get]
func (server *Server) listAllAuctions(c *gin.Context) {
	var query listAllAuctionsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortBadRequest(c, err)
		return
	}

	auctions, err := server.auctions.ListAllAuctions(c, query.Limit, query.Offset)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAdminAuctionResponses(auctions))
}

type deleteAuctionResponse struct {
	AuctionID            string `json:"auction_id"`
	DeletedBids          int64  `json:"deleted_bids"`
	DeletedNotifications int64  `json:"deleted_notifications"`
}

func newDeleteAuctionResponse(result db.DeleteAuctionTxResult) deleteAuctionResponse {
	return deleteAuctionResponse{
		AuctionID:            result.Auction.ID.String(),
		DeletedBids:          result.DeletedBids,
		DeletedNotifications: result.DeletedNotifications,
	}
}

//	@Summary		Delete an auction
//	@Description	Removes the auction with its bids, notifications and images, in any state.
//	@Tags			admin
//	@Produce		json
//	@Param			auctionID	path		string	true	"Auction ID"
//	@Success		200			{object}	deleteAuctionResponse
//	@Failure		404			{object}	errorBody
//	@Security		accessToken
//	@Router			/admin/auctions/{auctionID} [delete]
func (server *Server) deleteAuction(c *gin.Context) {
	auctionID, ok := parseUUIDParam(c, "auctionID")
	if !ok {
		return
	}

	result, err := server.auctions.AdminDelete(c, auctionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDeleteAuctionResponse(result))
}

//	@Summary		Terminate an auction
//	@Description	Same as delete: the auction and everything attached to it is removed.
//	@Tags			admin
//	@Produce		json
//	@Param			auctionID	path		string	true	"Auction ID"
//	@Success		200			{object}	deleteAuctionResponse
//	@Failure		404			{object}	errorBody
//	@Security		accessToken
//	@Router			/admin/auctions/{auctionID}/terminate [post]
func (server *Server) terminateAuction(c *gin.Context) {
	auctionID, ok := parseUUIDParam(c, "auctionID")
	if !ok {
		return
	}

	result, err := server.auctions.AdminTerminate(c, auctionID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDeleteAuctionResponse(result))
}
