package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homeledger/internal/services"
)

// RoomHandler handles rooms.
type RoomHandler struct {
	roomService  services.RoomServicer
	auditService services.AuditServicer
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(roomService services.RoomServicer, auditService services.AuditServicer) *RoomHandler {
	return &RoomHandler{roomService: roomService, auditService: auditService}
}

// ListRooms lists rooms, optionally for one area.
// @Summary     List rooms
// @Tags        rooms
// @Produce     json
// @Security    BearerAuth
// @Param       area_id query string false "Area ID"
// @Success     200 {array} models.Room
// @Failure     400 {object} ErrorResponse "Invalid area_id"
// @Router      /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	areaID, err := queryID(c, "area_id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	rooms, err := h.roomService.ListRooms(areaID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// CreateRoom creates a room inside an area.
// @Summary     Create a room
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body services.RoomInput true "Room details"
// @Success     201 {object} models.Room
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.RoomInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	room, err := h.roomService.CreateRoom(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "CREATE_ROOM", "room", room.ID, c.ClientIP(),
		map[string]interface{}{"name": room.Name, "area_id": room.AreaID})

	c.JSON(http.StatusCreated, gin.H{"room": room})
}

// GetRoom returns one room.
// @Summary     Get a room
// @Tags        rooms
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Room ID"
// @Success     200 {object} models.Room
// @Failure     404 {object} ErrorResponse "Room not found"
// @Router      /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	room, err := h.roomService.GetRoom(roomID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": room})
}

// UpdateRoom replaces a room's details; it may move to another area.
// @Summary     Update a room
// @Tags        rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Room ID"
// @Param       request body services.RoomInput true "Room details"
// @Success     200 {object} models.Room
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Room not found"
// @Router      /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	roomID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req services.RoomInput
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	room, err := h.roomService.UpdateRoom(roomID, req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "UPDATE_ROOM", "room", room.ID, c.ClientIP(),
		map[string]interface{}{"name": room.Name, "area_id": room.AreaID})

	c.JSON(http.StatusOK, gin.H{"room": room})
}

// DeleteRoom deletes a room and clears references to it.
// @Summary     Delete a room
// @Tags        rooms
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Room ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Room not found"
// @Router      /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	caller, err := getCaller(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	roomID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.roomService.DeleteRoom(roomID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(caller.ID, "DELETE_ROOM", "room", roomID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
