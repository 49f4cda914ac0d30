package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/roomrelay/roomrelay/internal/core"
)

// RoomHandlers provides REST handlers for room creation and room pages.
type RoomHandlers struct {
	directory  *core.Directory
	membership *core.Membership
	log        *zerolog.Logger
}

// NewRoomHandlers creates a new room handlers instance.
func NewRoomHandlers(directory *core.Directory, membership *core.Membership, logger *zerolog.Logger) *RoomHandlers {
	return &RoomHandlers{
		directory:  directory,
		membership: membership,
		log:        logger,
	}
}

// CreateRoomRequest represents the create room request body. Name is
// optional; blank names fall back to the default placeholder.
type CreateRoomRequest struct {
	Name    string `json:"name" binding:"max=64"`
	Creator string `json:"creator" binding:"max=64"`
}

// RoomResponse represents a room in API responses.
type RoomResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Creator      string `json:"creator,omitempty"`
	CreatedAt    string `json:"created_at"`
	MemberCount  int    `json:"member_count"`
	MessageCount int    `json:"message_count"`
}

// RoomDetailResponse adds members and message history for the chat page.
type RoomDetailResponse struct {
	RoomResponse
	Members  []string          `json:"members"`
	Messages []MessageResponse `json:"messages"`
}

// MessageResponse represents a stored message in API responses.
type MessageResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Message   string   `json:"message"`
	Type      string   `json:"type"`
	Timestamp int64    `json:"timestamp"`
	Edited    bool     `json:"edited"`
	SeenBy    []string `json:"seenBy"`
}

// CreateRoom handles room creation.
// POST /api/rooms
func (h *RoomHandlers) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("invalid create room request")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	room := h.directory.CreateRoom(req.Name, req.Creator)

	h.log.Info().Str("room_id", room.ID).Str("room_name", room.Name).Str("creator", room.Creator).Msg("room created")
	c.JSON(http.StatusCreated, h.roomResponse(room))
}

// GetRoom returns room metadata, members and message history.
// GET /api/rooms/:id
func (h *RoomHandlers) GetRoom(c *gin.Context) {
	room, ok := h.directory.Room(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "room not found"})
		return
	}

	history := room.History()
	messages := make([]MessageResponse, 0, len(history))
	for _, msg := range history {
		messages = append(messages, MessageResponse{
			ID:        msg.ID,
			Username:  msg.Username,
			Message:   msg.Body,
			Type:      string(msg.Kind),
			Timestamp: msg.Timestamp.Unix(),
			Edited:    msg.Edited,
			SeenBy:    msg.SeenBy,
		})
	}

	c.JSON(http.StatusOK, RoomDetailResponse{
		RoomResponse: h.roomResponse(room),
		Members:      h.membership.Members(room.ID),
		Messages:     messages,
	})
}

// ListRooms returns every room in the directory. Admin only.
// GET /api/rooms
func (h *RoomHandlers) ListRooms(c *gin.Context) {
	rooms := h.directory.Rooms()
	response := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, h.roomResponse(room))
	}

	h.log.Debug().Int("room_count", len(response)).Msg("rooms listed")
	c.JSON(http.StatusOK, response)
}

func (h *RoomHandlers) roomResponse(room *core.Room) RoomResponse {
	return RoomResponse{
		ID:           room.ID,
		Name:         room.Name,
		Creator:      room.Creator,
		CreatedAt:    room.CreatedAt.Format(time.RFC3339),
		MemberCount:  len(h.membership.Members(room.ID)),
		MessageCount: room.MessageCount(),
	}
}
